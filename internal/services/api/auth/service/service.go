// Package service contains auth workflows
package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"slugspot/internal/modkit/repokit"
	perr "slugspot/internal/platform/errors"
	"slugspot/internal/services/api/auth/domain"
	"slugspot/internal/services/api/auth/repo"
)

// Service defines the service contract for auth
type Service interface{ domain.ServicePort }

// Options carries auth policy knobs resolved from config by the module
type Options struct {
	// AllowedEmailDomain restricts sign-up to one email domain (e.g. ucsc.edu)
	// empty means no restriction
	AllowedEmailDomain string

	// Google is nil when OAuth sign-in is not configured
	Google *GoogleOAuth
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	tokens domain.TokenPort
	opts   Options
}

// New creates a new auth service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], tokens domain.TokenPort, opts Options) *Svc {
	if db == nil {
		panic("auth.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("auth.Service requires a non nil Repo binder")
	}
	if tokens == nil {
		panic("auth.Service requires a non nil TokenPort")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, tokens: tokens, opts: opts}
}

// checkEmailDomain enforces the allow-list before any I/O happens
func (s *Svc) checkEmailDomain(email string) error {
	if s.opts.AllowedEmailDomain == "" {
		return nil
	}
	at := strings.LastIndex(email, "@")
	if at < 0 || !strings.EqualFold(email[at+1:], s.opts.AllowedEmailDomain) {
		return perr.WithField(
			perr.Validationf("email must belong to %s", s.opts.AllowedEmailDomain),
			"email",
		)
	}
	return nil
}

// SignUp registers a user with email and password and issues a session token
func (s *Svc) SignUp(ctx context.Context, in domain.SignUpInput) (domain.TokenOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := s.checkEmailDomain(email); err != nil {
		return domain.TokenOutput{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.TokenOutput{}, perr.Wrap(err, perr.ErrorCodeUnknown, "hash password")
	}

	row, err := s.Repo.Create(ctx, email, string(hash), strings.TrimSpace(in.DisplayName))
	if err != nil {
		if perr.CodeOf(err) == perr.ErrorCodeDuplicateKey {
			return domain.TokenOutput{}, perr.WithField(
				perr.Conflictf("an account with that email already exists"), "email")
		}
		return domain.TokenOutput{}, err
	}
	return s.issue(row)
}

// SignIn verifies credentials and issues a session token
// invalid email and wrong password are deliberately indistinguishable
func (s *Svc) SignIn(ctx context.Context, in domain.SignInInput) (domain.TokenOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	row, err := s.Repo.ByEmail(ctx, email)
	if err != nil {
		if perr.CodeOf(err) == perr.ErrorCodeNotFound {
			return domain.TokenOutput{}, perr.Unauthorizedf("invalid email or password")
		}
		return domain.TokenOutput{}, err
	}
	if row.PasswordHash == "" {
		// OAuth-only account
		return domain.TokenOutput{}, perr.Unauthorizedf("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(in.Password)) != nil {
		return domain.TokenOutput{}, perr.Unauthorizedf("invalid email or password")
	}
	return s.issue(row)
}

// Me returns the session identity for an authenticated user id
func (s *Svc) Me(ctx context.Context, userID string) (domain.SessionUser, error) {
	row, err := s.Repo.ByID(ctx, userID)
	if err != nil {
		return domain.SessionUser{}, err
	}
	return domain.SessionUser{ID: row.ID, Email: row.Email, DisplayName: row.DisplayName}, nil
}

// OAuthBegin returns the provider consent URL
func (s *Svc) OAuthBegin(state string) (domain.OAuthBeginOutput, error) {
	if s.opts.Google == nil {
		return domain.OAuthBeginOutput{}, perr.Unavailablef("oauth sign-in is not configured")
	}
	return domain.OAuthBeginOutput{URL: s.opts.Google.BeginURL(state)}, nil
}

// OAuthCallback completes the code exchange, enforces the email domain
// allow-list, upserts the user, and issues the same JWT as password sign-in
func (s *Svc) OAuthCallback(ctx context.Context, in domain.OAuthCallbackInput) (domain.TokenOutput, error) {
	if s.opts.Google == nil {
		return domain.TokenOutput{}, perr.Unavailablef("oauth sign-in is not configured")
	}
	if strings.TrimSpace(in.Code) == "" {
		return domain.TokenOutput{}, perr.WithField(perr.Validationf("code is required"), "code")
	}
	email, name, err := s.opts.Google.Exchange(ctx, in.Code)
	if err != nil {
		return domain.TokenOutput{}, err
	}
	if err := s.checkEmailDomain(email); err != nil {
		return domain.TokenOutput{}, err
	}
	if name == "" {
		name = email[:strings.LastIndex(email, "@")]
	}
	row, err := s.Repo.UpsertOAuth(ctx, email, name)
	if err != nil {
		return domain.TokenOutput{}, err
	}
	return s.issue(row)
}

func (s *Svc) issue(row repo.RowUser) (domain.TokenOutput, error) {
	user := domain.SessionUser{ID: row.ID, Email: row.Email, DisplayName: row.DisplayName}
	tok, exp, err := s.tokens.Issue(user)
	if err != nil {
		return domain.TokenOutput{}, err
	}
	return domain.TokenOutput{Token: tok, ExpiresAt: exp, User: user}, nil
}
