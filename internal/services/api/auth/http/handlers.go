// Package http provides http transport for auth
package http

import (
	stdhttp "net/http"

	"github.com/google/uuid"

	"slugspot/internal/modkit/httpkit"
	"slugspot/internal/platform/net/middleware"
	"slugspot/internal/services/api/auth/domain"
	svc "slugspot/internal/services/api/auth/service"
)

// Register mounts auth endpoints on the given router
// the /me route sits behind the bearer middleware built from the same token port
func Register(r httpkit.Router, s svc.Service, port middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.SignUpInput](r, "/signup", h.signUp)
	httpkit.PostJSON[domain.SignInInput](r, "/signin", h.signIn)
	httpkit.Get(r, "/oauth/google/begin", h.oauthBegin)
	httpkit.Get(r, "/oauth/google/callback", h.oauthCallback)

	httpkit.Protected(r, port, func(pr httpkit.Router) {
		httpkit.Get(pr, "/me", h.me)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /auth/signup Auth authSignUp
// @Summary Register with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.SignUpInput true "Registration"
// @Success 200 {object} domain.TokenOutput "ok"
// @Router /auth/signup [post]
func (h *handlers) signUp(r *stdhttp.Request, in domain.SignUpInput) (any, error) {
	return h.svc.SignUp(r.Context(), in)
}

// swagger:route POST /auth/signin Auth authSignIn
// @Summary Password sign-in
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.SignInInput true "Credentials"
// @Success 200 {object} domain.TokenOutput "ok"
// @Router /auth/signin [post]
func (h *handlers) signIn(r *stdhttp.Request, in domain.SignInInput) (any, error) {
	return h.svc.SignIn(r.Context(), in)
}

// swagger:route GET /auth/oauth/google/begin Auth authOAuthBegin
// @Summary Begin Google OAuth sign-in
// @Tags Auth
// @Produce json
// @Param state query string false "CSRF state"
// @Success 200 {object} domain.OAuthBeginOutput "ok"
// @Router /auth/oauth/google/begin [get]
func (h *handlers) oauthBegin(r *stdhttp.Request) (any, error) {
	state := r.URL.Query().Get("state")
	if state == "" {
		state = uuid.NewString()
	}
	return h.svc.OAuthBegin(state)
}

// swagger:route GET /auth/oauth/google/callback Auth authOAuthCallback
// @Summary Complete Google OAuth sign-in
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} domain.TokenOutput "ok"
// @Router /auth/oauth/google/callback [get]
func (h *handlers) oauthCallback(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	return h.svc.OAuthCallback(r.Context(), domain.OAuthCallbackInput{
		Code:  q.Get("code"),
		State: q.Get("state"),
	})
}

// swagger:route GET /auth/me Auth authMe
// @Summary Current session identity
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.SessionUser "ok"
// @Router /auth/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Me(r.Context(), uid)
}
