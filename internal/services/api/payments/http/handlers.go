// Package http provides http transport for payments
package http

import (
	stdhttp "net/http"

	"slugspot/internal/modkit/httpkit"
	"slugspot/internal/platform/net/middleware"
	"slugspot/internal/services/api/payments/domain"
	svc "slugspot/internal/services/api/payments/service"
)

// Register mounts payment endpoints on the given router
func Register(r httpkit.Router, s svc.Service, port middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.Protected(r, port, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.ChargeInput](pr, "/charge", h.charge)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /payments/charge Payments paymentsCharge
// @Summary Settle a pending booking
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.ChargeInput true "Charge"
// @Success 200 {object} domain.Receipt "ok"
// @Failure 402 {object} phttp.Envelope "declined"
// @Router /payments/charge [post]
func (h *handlers) charge(r *stdhttp.Request, in domain.ChargeInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Charge(r.Context(), uid, in)
}
