package service

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	perr "slugspot/internal/platform/errors"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleOAuth drives the Google sign-in flow with a hosted-domain restriction
type GoogleOAuth struct {
	cfg *oauth2.Config

	// HostedDomain is forwarded unmodified as the hd hint and enforced on callback
	HostedDomain string

	// userinfo is a seam so tests can stub the profile fetch
	userinfo func(ctx context.Context, tok *oauth2.Token) (googleProfile, error)
}

type googleProfile struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	HD            string `json:"hd"`
}

// NewGoogleOAuth builds the provider config
func NewGoogleOAuth(clientID, clientSecret, redirectURL, hostedDomain string) *GoogleOAuth {
	g := &GoogleOAuth{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		HostedDomain: hostedDomain,
	}
	g.userinfo = g.fetchUserinfo
	return g
}

// BeginURL returns the provider consent URL for the given CSRF state
func (g *GoogleOAuth) BeginURL(state string) string {
	opts := []oauth2.AuthCodeOption{oauth2.AccessTypeOnline}
	if g.HostedDomain != "" {
		opts = append(opts, oauth2.SetAuthURLParam("hd", g.HostedDomain))
	}
	return g.cfg.AuthCodeURL(state, opts...)
}

// Exchange trades the callback code for a verified profile
func (g *GoogleOAuth) Exchange(ctx context.Context, code string) (email, displayName string, err error) {
	tok, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return "", "", perr.Unauthorizedf("oauth code exchange failed")
	}
	prof, err := g.userinfo(ctx, tok)
	if err != nil {
		return "", "", err
	}
	if !prof.VerifiedEmail || prof.Email == "" {
		return "", "", perr.Unauthorizedf("oauth profile has no verified email")
	}
	return strings.ToLower(prof.Email), prof.Name, nil
}

func (g *GoogleOAuth) fetchUserinfo(ctx context.Context, tok *oauth2.Token) (googleProfile, error) {
	resp, err := g.cfg.Client(ctx, tok).Get(userinfoURL)
	if err != nil {
		return googleProfile{}, perr.Unavailablef("oauth userinfo fetch failed")
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return googleProfile{}, perr.Unavailablef("oauth userinfo read failed")
	}
	var prof googleProfile
	if err := json.Unmarshal(body, &prof); err != nil {
		return googleProfile{}, perr.JSONErrf("oauth userinfo decode failed")
	}
	return prof, nil
}
