package domain

import "context"

// ServicePort defines the service contract for listings
type ServicePort interface {
	List(ctx context.Context, q ListQuery) ([]Listing, error)
	Detail(ctx context.Context, id string) (Detail, error)
	Create(ctx context.Context, userID string, in CreateInput) (Listing, error)
}
