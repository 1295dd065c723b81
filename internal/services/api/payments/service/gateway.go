package service

import (
	"context"
	"math/rand"
	"strings"

	"github.com/rs/xid"

	perr "slugspot/internal/platform/errors"
	"slugspot/internal/services/api/payments/domain"
)

// SimGateway is a simulated card processor. Charges succeed at the configured
// rate and otherwise decline; no network calls are made
type SimGateway struct {
	// SuccessRate is the probability in [0,1] that a charge goes through
	SuccessRate float64

	// roll is a test seam; defaults to the package rand
	roll func() float64
}

// NewSimGateway builds a simulator with the default 90 percent success rate
func NewSimGateway() *SimGateway {
	return &SimGateway{SuccessRate: 0.9, roll: rand.Float64}
}

// Charge implements the domain.Gateway interface
func (g *SimGateway) Charge(_ context.Context, amountCents int, card domain.Card) (string, error) {
	if amountCents <= 0 {
		return "", perr.InvalidArgf("charge amount must be positive")
	}
	if len(strings.TrimSpace(card.Number)) < 12 {
		return "", perr.PaymentDeclinedf("card number rejected")
	}

	roll := g.roll
	if roll == nil {
		roll = rand.Float64
	}
	if roll() >= g.SuccessRate {
		return "", perr.PaymentDeclinedf("card declined by processor")
	}
	return xid.New().String(), nil
}
