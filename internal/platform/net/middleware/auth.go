package middleware

import (
	"net/http"

	pnet "slugspot/internal/platform/net"
)

// AuthPort is the seam the auth service implements
type AuthPort interface {
	// Parse returns the authenticated user id and email from the request or an error
	Parse(r *http.Request) (userID string, email string, err error)
}

// Auth resolves the bearer identity through the port when provided.
// A nil port leaves the request anonymous
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, email, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), uid, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
