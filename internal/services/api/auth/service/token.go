package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	perr "slugspot/internal/platform/errors"
	"slugspot/internal/services/api/auth/domain"
)

// sessionClaims is the JWT payload for a signed-in user
type sessionClaims struct {
	Email       string `json:"email"`
	DisplayName string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Tokens implements domain.TokenPort with HS256 JWTs
type Tokens struct {
	secret []byte
	ttl    time.Duration
	issuer string

	// now is a seam for tests
	now func() time.Time
}

// NewTokens builds a token issuer/verifier from a shared secret and ttl
func NewTokens(secret string, ttl time.Duration) *Tokens {
	if secret == "" {
		panic("auth.Tokens requires a non empty secret")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, issuer: "slugspot", now: time.Now}
}

// Issue signs a session token for the given user
func (t *Tokens) Issue(user domain.SessionUser) (string, string, error) {
	now := t.now().UTC()
	exp := now.Add(t.ttl)
	claims := sessionClaims{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(t.secret)
	if err != nil {
		return "", "", perr.Wrap(err, perr.ErrorCodeUnknown, "sign session token")
	}
	return signed, exp.Format(time.RFC3339), nil
}

// Verify parses and validates a session token, returning the user id and email
func (t *Tokens) Verify(raw string) (string, string, error) {
	var claims sessionClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, perr.Unauthorizedf("unexpected signing method %v", tk.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return t.now() }))
	if err != nil || !tok.Valid {
		return "", "", perr.Unauthorizedf("invalid session token")
	}
	if claims.Subject == "" {
		return "", "", perr.Unauthorizedf("invalid session token")
	}
	return claims.Subject, claims.Email, nil
}
