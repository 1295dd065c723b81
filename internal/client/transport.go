package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	perr "slugspot/internal/platform/errors"
	authdom "slugspot/internal/services/api/auth/domain"
	bookdom "slugspot/internal/services/api/bookings/domain"
	listdom "slugspot/internal/services/api/listings/domain"
	paydom "slugspot/internal/services/api/payments/domain"
	revdom "slugspot/internal/services/api/reviews/domain"
)

// API is a thin typed client over the JSON envelope transport.
// Safe for concurrent use; the bearer token is swapped atomically
type API struct {
	base string
	http *http.Client

	mu    sync.RWMutex
	token string
}

// Option configures an API client
type Option func(*API)

// WithHTTPClient swaps the underlying http client
func WithHTTPClient(c *http.Client) Option {
	return func(a *API) {
		if c != nil {
			a.http = c
		}
	}
}

// WithToken seeds a bearer token, e.g. one restored from storage
func WithToken(tok string) Option {
	return func(a *API) { a.token = tok }
}

// NewAPI builds a client rooted at baseURL (scheme://host[:port], no path)
func NewAPI(baseURL string, opts ...Option) *API {
	a := &API{
		base: strings.TrimRight(baseURL, "/") + "/api/v1",
		http: &http.Client{},
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// SetToken replaces the bearer token; empty clears it
func (a *API) SetToken(tok string) {
	a.mu.Lock()
	a.token = tok
	a.mu.Unlock()
}

// Token returns the current bearer token
func (a *API) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// envelope mirrors the server response shape with a typed data slot
type envelope[T any] struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	Data       T              `json:"data,omitempty"`
}

// statusFallbackCode maps an http status to an error code when the
// envelope carries none (e.g. a proxy answered instead of the API)
func statusFallbackCode(status int) perr.ErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return perr.ErrorCodeUnauthorized
	case http.StatusForbidden:
		return perr.ErrorCodeForbidden
	case http.StatusNotFound:
		return perr.ErrorCodeNotFound
	case http.StatusConflict:
		return perr.ErrorCodeConflict
	case http.StatusPaymentRequired:
		return perr.ErrorCodePaymentDeclined
	case http.StatusUnprocessableEntity:
		return perr.ErrorCodeValidation
	default:
		return perr.ErrorCodeUnavailable
	}
}

func call[T any](ctx context.Context, a *API, method, path string, query url.Values, body any) (T, error) {
	var zero T

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return zero, perr.Wrap(err, perr.ErrorCodeUnknown, "encode request body")
		}
		rd = bytes.NewReader(buf)
	}

	u := a.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return zero, perr.Wrap(err, perr.ErrorCodeUnknown, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := a.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := a.http.Do(req)
	if err != nil {
		// network failures are retryable transport errors, never 401s
		return zero, perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s %s", method, path)
	}
	defer func() { _, _ = io.Copy(io.Discard, res.Body); _ = res.Body.Close() }()

	if res.StatusCode == http.StatusNoContent {
		return zero, nil
	}

	var env envelope[T]
	if derr := json.NewDecoder(res.Body).Decode(&env); derr != nil {
		if res.StatusCode >= 400 {
			return zero, perr.Newf(statusFallbackCode(res.StatusCode), "%s %s: status %d", method, path, res.StatusCode)
		}
		return zero, perr.Wrap(derr, perr.ErrorCodeJSON, "decode response")
	}

	if res.StatusCode >= 400 {
		code := env.Code
		if code == perr.ErrorCodeUnknown {
			code = statusFallbackCode(res.StatusCode)
		}
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(res.StatusCode)
		}
		err := perr.Newf(code, "%s", msg)
		if env.Field != "" {
			err = perr.WithField(err, env.Field)
		}
		return zero, err
	}
	return env.Data, nil
}

// SignUp registers a new account
func (a *API) SignUp(ctx context.Context, in authdom.SignUpInput) (authdom.TokenOutput, error) {
	return call[authdom.TokenOutput](ctx, a, http.MethodPost, "/auth/signup", nil, in)
}

// SignIn exchanges credentials for a session token
func (a *API) SignIn(ctx context.Context, in authdom.SignInInput) (authdom.TokenOutput, error) {
	return call[authdom.TokenOutput](ctx, a, http.MethodPost, "/auth/signin", nil, in)
}

// Me resolves the identity behind the current bearer token
func (a *API) Me(ctx context.Context) (authdom.SessionUser, error) {
	return call[authdom.SessionUser](ctx, a, http.MethodGet, "/auth/me", nil, nil)
}

// Listings fetches the collection with optional filter and sort
func (a *API) Listings(ctx context.Context, q, sort string) ([]listdom.Listing, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	if sort != "" {
		query.Set("sort", sort)
	}
	return call[[]listdom.Listing](ctx, a, http.MethodGet, "/listings", query, nil)
}

// ListingDetail fetches one listing with its reviews
func (a *API) ListingDetail(ctx context.Context, id string) (listdom.Detail, error) {
	return call[listdom.Detail](ctx, a, http.MethodGet, "/listings/"+url.PathEscape(id), nil, nil)
}

// CreateListing posts a new listing
func (a *API) CreateListing(ctx context.Context, in listdom.CreateInput) (listdom.Listing, error) {
	return call[listdom.Listing](ctx, a, http.MethodPost, "/listings", nil, in)
}

// SubmitReview posts a review for a listing
func (a *API) SubmitReview(ctx context.Context, in revdom.SubmitInput) (revdom.Review, error) {
	return call[revdom.Review](ctx, a, http.MethodPost, "/reviews", nil, in)
}

// BookingCatalog fetches the bookable service menu
func (a *API) BookingCatalog(ctx context.Context) ([]bookdom.ServiceInfo, error) {
	return call[[]bookdom.ServiceInfo](ctx, a, http.MethodGet, "/bookings/services", nil, nil)
}

// BookingSlots fetches the available time slots
func (a *API) BookingSlots(ctx context.Context) ([]string, error) {
	return call[[]string](ctx, a, http.MethodGet, "/bookings/slots", nil, nil)
}

// CreateBooking reserves a service slot
func (a *API) CreateBooking(ctx context.Context, in bookdom.CreateInput) (bookdom.Booking, error) {
	return call[bookdom.Booking](ctx, a, http.MethodPost, "/bookings", nil, in)
}

// MyBookings lists the caller's bookings
func (a *API) MyBookings(ctx context.Context) ([]bookdom.Booking, error) {
	return call[[]bookdom.Booking](ctx, a, http.MethodGet, "/bookings", nil, nil)
}

// Charge settles a pending booking
func (a *API) Charge(ctx context.Context, in paydom.ChargeInput) (paydom.Receipt, error) {
	return call[paydom.Receipt](ctx, a, http.MethodPost, "/payments/charge", nil, in)
}
