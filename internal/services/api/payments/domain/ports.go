package domain

import "context"

// ServicePort defines the service contract for payments
type ServicePort interface {
	Charge(ctx context.Context, userID string, in ChargeInput) (Receipt, error)
}

// Gateway abstracts the card processor. The shipped implementation is a
// simulator; a real processor slots in behind the same contract
type Gateway interface {
	Charge(ctx context.Context, amountCents int, card Card) (ref string, err error)
}
