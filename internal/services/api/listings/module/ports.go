package module

import (
	"context"

	lstdom "slugspot/internal/services/api/listings/domain"
	lstsvc "slugspot/internal/services/api/listings/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptListingsPort adapts the listings service to the domain port interface
type adaptListingsPort struct{ svc lstsvc.Service }

func (a adaptListingsPort) List(ctx context.Context, q lstdom.ListQuery) ([]lstdom.Listing, error) {
	return a.svc.List(ctx, q)
}

func (a adaptListingsPort) Detail(ctx context.Context, id string) (lstdom.Detail, error) {
	return a.svc.Detail(ctx, id)
}

func (a adaptListingsPort) Create(ctx context.Context, userID string, in lstdom.CreateInput) (lstdom.Listing, error) {
	return a.svc.Create(ctx, userID, in)
}
