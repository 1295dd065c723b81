// Package http provides http transport for bookings
package http

import (
	stdhttp "net/http"

	"slugspot/internal/modkit/httpkit"
	"slugspot/internal/platform/net/middleware"
	"slugspot/internal/services/api/bookings/domain"
	svc "slugspot/internal/services/api/bookings/service"
)

// Register mounts booking endpoints on the given router
func Register(r httpkit.Router, s svc.Service, port middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/services", h.services)
	httpkit.Get(r, "/slots", h.slots)

	httpkit.Protected(r, port, func(pr httpkit.Router) {
		httpkit.Get(pr, "/", h.mine)
		httpkit.PostJSON[domain.CreateInput](pr, "/", h.create)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route GET /bookings/services Bookings bookingsServices
// @Summary Bookable service catalog
// @Tags Bookings
// @Produce json
// @Success 200 {array} domain.ServiceInfo "ok"
// @Router /bookings/services [get]
func (h *handlers) services(_ *stdhttp.Request) (any, error) {
	return h.svc.Catalog(), nil
}

// swagger:route GET /bookings/slots Bookings bookingsSlots
// @Summary Available time slots
// @Tags Bookings
// @Produce json
// @Success 200 {array} string "ok"
// @Router /bookings/slots [get]
func (h *handlers) slots(_ *stdhttp.Request) (any, error) {
	return h.svc.Slots(), nil
}

// swagger:route GET /bookings Bookings bookingsMine
// @Summary The caller's bookings
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Booking "ok"
// @Router /bookings [get]
func (h *handlers) mine(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ForUser(r.Context(), uid)
}

// swagger:route POST /bookings Bookings bookingsCreate
// @Summary Reserve a service slot
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.CreateInput true "Booking"
// @Success 201 {object} domain.Booking "created"
// @Router /bookings [post]
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
