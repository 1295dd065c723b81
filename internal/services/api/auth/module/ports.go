package module

import (
	"context"

	authdom "slugspot/internal/services/api/auth/domain"
	authsvc "slugspot/internal/services/api/auth/service"
)

// Ports exposes the auth surfaces other modules may depend on
type Ports struct {
	// Tokens verifies bearer tokens for protected routes
	Tokens authdom.TokenPort

	// Sessions resolves user identities
	Sessions authdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptAuthPort exposes service methods as module ports for cross-module usage
type adaptAuthPort struct{ svc authsvc.Service }

func (a adaptAuthPort) SignUp(ctx context.Context, in authdom.SignUpInput) (authdom.TokenOutput, error) {
	return a.svc.SignUp(ctx, in)
}

func (a adaptAuthPort) SignIn(ctx context.Context, in authdom.SignInInput) (authdom.TokenOutput, error) {
	return a.svc.SignIn(ctx, in)
}

func (a adaptAuthPort) Me(ctx context.Context, userID string) (authdom.SessionUser, error) {
	return a.svc.Me(ctx, userID)
}

func (a adaptAuthPort) OAuthBegin(state string) (authdom.OAuthBeginOutput, error) {
	return a.svc.OAuthBegin(state)
}

func (a adaptAuthPort) OAuthCallback(ctx context.Context, in authdom.OAuthCallbackInput) (authdom.TokenOutput, error) {
	return a.svc.OAuthCallback(ctx, in)
}
