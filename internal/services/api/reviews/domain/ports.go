package domain

import "context"

// ServicePort defines the service contract for reviews
type ServicePort interface {
	Submit(ctx context.Context, userID string, in SubmitInput) (Review, error)
	ForListing(ctx context.Context, listingID string) ([]Review, error)
}
