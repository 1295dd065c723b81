// Package http provides http transport for reviews
package http

import (
	stdhttp "net/http"

	"slugspot/internal/modkit/httpkit"
	"slugspot/internal/platform/net/middleware"
	"slugspot/internal/services/api/reviews/domain"
	svc "slugspot/internal/services/api/reviews/service"
)

// Register mounts review endpoints on the given router
func Register(r httpkit.Router, s svc.Service, port middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.Protected(r, port, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.SubmitInput](pr, "/", h.submit)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /reviews Reviews reviewsSubmit
// @Summary Submit a review for a listing
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.SubmitInput true "Review"
// @Success 201 {object} domain.Review "created"
// @Router /reviews [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	out, err := h.svc.Submit(r.Context(), uid, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}
