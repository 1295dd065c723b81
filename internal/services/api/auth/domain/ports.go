package domain

import "context"

// ServicePort defines the service contract for auth
type ServicePort interface {
	SignUp(ctx context.Context, in SignUpInput) (TokenOutput, error)
	SignIn(ctx context.Context, in SignInInput) (TokenOutput, error)
	Me(ctx context.Context, userID string) (SessionUser, error)
	OAuthBegin(state string) (OAuthBeginOutput, error)
	OAuthCallback(ctx context.Context, in OAuthCallbackInput) (TokenOutput, error)
}

// TokenPort issues and verifies session tokens
// the verify half backs the bearer middleware on protected routes
type TokenPort interface {
	Issue(user SessionUser) (token string, expiresAt string, err error)
	Verify(token string) (userID string, email string, err error)
}
