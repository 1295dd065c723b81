// Package client is the in-process consumer of the slugspot API: a typed
// transport, a session gate, and the loaders the browse and detail screens
// render from
package client

import (
	"context"

	authdom "slugspot/internal/services/api/auth/domain"
)

// Client bundles the transport with the session gate
type Client struct {
	API  *API
	Gate *Gate
}

// New builds a client rooted at baseURL
func New(baseURL string, opts ...Option) *Client {
	api := NewAPI(baseURL, opts...)
	return &Client{API: api, Gate: NewGate(api)}
}

// SignIn exchanges credentials for a session and flows it through the gate
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	out, err := c.API.SignIn(ctx, authdom.SignInInput{Email: email, Password: password})
	if err != nil {
		return Session{}, err
	}
	return c.adopt(out), nil
}

// SignUp registers an account and flows the resulting session through the gate
func (c *Client) SignUp(ctx context.Context, email, password, displayName string) (Session, error) {
	out, err := c.API.SignUp(ctx, authdom.SignUpInput{Email: email, Password: password, DisplayName: displayName})
	if err != nil {
		return Session{}, err
	}
	return c.adopt(out), nil
}

// SignOut drops the token and transitions the gate to anonymous
func (c *Client) SignOut() {
	c.API.SetToken("")
	c.Gate.Set(Session{})
}

// Listings builds a loader for the browse screen
func (c *Client) Listings() *ListingsLoader { return NewListingsLoader(c.API, c.Gate) }

// Detail builds a loader for a listing detail screen
func (c *Client) Detail() *DetailLoader { return NewDetailLoader(c.API, c.Gate) }

func (c *Client) adopt(out authdom.TokenOutput) Session {
	c.API.SetToken(out.Token)
	s := Session{
		Authenticated: true,
		UserID:        out.User.ID,
		Email:         out.User.Email,
		DisplayName:   out.User.DisplayName,
	}
	c.Gate.Set(s)
	return s
}
