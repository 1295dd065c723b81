// Package http provides http transport for listings
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"slugspot/internal/modkit/httpkit"
	"slugspot/internal/platform/net/middleware"
	"slugspot/internal/services/api/listings/domain"
	svc "slugspot/internal/services/api/listings/service"
)

// Register mounts listing endpoints on the given router
func Register(r httpkit.Router, s svc.Service, port middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.detail)

	httpkit.Protected(r, port, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.CreateInput](pr, "/", h.create)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route GET /listings Listings listingsList
// @Summary Browse listings with optional filter and sort
// @Tags Listings
// @Produce json
// @Param q query string false "Case-insensitive free text filter"
// @Param sort query string false "newest | alphabetical | top_rated"
// @Success 200 {array} domain.Listing "ok"
// @Router /listings [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	return h.svc.List(r.Context(), domain.ListQuery{
		Q:    q.Get("q"),
		Sort: q.Get("sort"),
	})
}

// swagger:route GET /listings/{id} Listings listingsDetail
// @Summary Listing detail with reviews
// @Tags Listings
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} domain.Detail "ok"
// @Router /listings/{id} [get]
func (h *handlers) detail(r *stdhttp.Request) (any, error) {
	return h.svc.Detail(r.Context(), chi.URLParam(r, "id"))
}

// swagger:route POST /listings Listings listingsCreate
// @Summary Create a listing
// @Tags Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.CreateInput true "Listing"
// @Success 201 {object} domain.Listing "created"
// @Router /listings [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	out, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}
