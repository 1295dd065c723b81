package module

import (
	"context"

	revdom "slugspot/internal/services/api/reviews/domain"
	revsvc "slugspot/internal/services/api/reviews/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptReviewsPort adapts the reviews service to the domain port interface
type adaptReviewsPort struct{ svc revsvc.Service }

func (a adaptReviewsPort) Submit(ctx context.Context, userID string, in revdom.SubmitInput) (revdom.Review, error) {
	return a.svc.Submit(ctx, userID, in)
}

func (a adaptReviewsPort) ForListing(ctx context.Context, listingID string) ([]revdom.Review, error) {
	return a.svc.ForListing(ctx, listingID)
}
