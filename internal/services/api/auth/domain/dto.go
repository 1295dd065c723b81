// Package domain holds DTOs for auth http and service contracts
package domain

// SignUpInput is the payload for email+password registration
type SignUpInput struct {
	Email       string `json:"email" validate:"required,email,max=254" example:"sam@ucsc.edu"`
	Password    string `json:"password" validate:"required,min=8,max=128" example:"hunter2hunter2"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=80" example:"Sam Slug"`
}

// SignInInput is the payload for password sign-in
type SignInInput struct {
	Email    string `json:"email" validate:"required,email,max=254" example:"sam@ucsc.edu"`
	Password string `json:"password" validate:"required,min=1,max=128" example:"hunter2hunter2"`
}

// SessionUser is the authenticated identity surfaced to clients
type SessionUser struct {
	ID          string `json:"id" example:"7b1f4c2e-3e0a-4f58-9f2e-1a2b3c4d5e6f"`
	Email       string `json:"email" example:"sam@ucsc.edu"`
	DisplayName string `json:"display_name" example:"Sam Slug"`
}

// TokenOutput carries an issued session token plus the user it names
type TokenOutput struct {
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expires_at" example:"2026-08-31T13:00:00Z"`
	User      SessionUser `json:"user"`
}

// OAuthBeginOutput carries the provider redirect URL
type OAuthBeginOutput struct {
	URL string `json:"url"`
}

// OAuthCallbackInput is the payload completing the OAuth code exchange
type OAuthCallbackInput struct {
	Code  string `json:"code" validate:"required,min=1"`
	State string `json:"state,omitempty"`
}
