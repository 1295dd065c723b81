package client

import (
	"context"
	"errors"
	"strings"
	"sync"

	perr "slugspot/internal/platform/errors"
	listdom "slugspot/internal/services/api/listings/domain"
	revdom "slugspot/internal/services/api/reviews/domain"
)

// ErrAuthRequired marks operations refused locally because the session is
// anonymous. No request was made; the caller should redirect to sign-in
var ErrAuthRequired = perr.Unauthorizedf("sign in required")

// IsAuthRequired reports whether err is the local anonymous-session refusal
func IsAuthRequired(err error) bool { return errors.Is(err, ErrAuthRequired) }

// LoadState is the coarse view state a loader exposes
type LoadState int

// Loader view states
const (
	StateLoading LoadState = iota
	StateError
	StateData
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateData:
		return "data"
	default:
		return "unknown"
	}
}

// listingSource is the slice of the API the loaders consume
type listingSource interface {
	Listings(ctx context.Context, q, sort string) ([]listdom.Listing, error)
	ListingDetail(ctx context.Context, id string) (listdom.Detail, error)
	SubmitReview(ctx context.Context, in revdom.SubmitInput) (revdom.Review, error)
}

// ListingsView is what a listings screen renders from
type ListingsView struct {
	State    LoadState
	Err      error
	Listings []listdom.Listing

	// NoMatches is set when a non empty query filtered everything out,
	// distinct from an empty collection
	NoMatches bool
}

// ListingsLoader fetches the collection for the browse screen.
// Every Load bumps an internal generation; a completion whose generation
// has been superseded is dropped so late responses never clobber newer state
type ListingsLoader struct {
	api  listingSource
	gate *Gate

	mu     sync.Mutex
	gen    uint64
	closed bool
	view   ListingsView
}

// NewListingsLoader builds a loader; gate may be nil to skip the auth check
func NewListingsLoader(api listingSource, gate *Gate) *ListingsLoader {
	if api == nil {
		panic("client.ListingsLoader requires a non nil api")
	}
	return &ListingsLoader{api: api, gate: gate, view: ListingsView{State: StateLoading}}
}

// Load fetches the collection with the given filter and sort. An anonymous
// session short-circuits to ErrAuthRequired without touching the network
func (l *ListingsLoader) Load(ctx context.Context, q, sort string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.gen++
	gen := l.gen
	l.view = ListingsView{State: StateLoading}
	l.mu.Unlock()

	if l.gate != nil && !l.gate.Current().Authenticated {
		l.commit(gen, ListingsView{State: StateError, Err: ErrAuthRequired})
		return
	}

	items, err := l.api.Listings(ctx, q, sort)
	if err != nil {
		l.commit(gen, ListingsView{State: StateError, Err: err})
		return
	}
	l.commit(gen, ListingsView{
		State:     StateData,
		Listings:  items,
		NoMatches: len(items) == 0 && strings.TrimSpace(q) != "",
	})
}

// View returns the current view state
func (l *ListingsLoader) View() ListingsView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.view
}

// Close drops any in flight completion and freezes the loader
func (l *ListingsLoader) Close() {
	l.mu.Lock()
	l.closed = true
	l.gen++
	l.mu.Unlock()
}

func (l *ListingsLoader) commit(gen uint64, v ListingsView) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || gen != l.gen {
		return
	}
	l.view = v
}

// DetailView is what a listing detail screen renders from
type DetailView struct {
	State LoadState
	Err   error

	// NotFound distinguishes a missing listing from a transport failure
	NotFound bool

	Detail listdom.Detail
}

// DetailLoader fetches one listing plus reviews. Changing the id mid flight
// supersedes the previous fetch the same way a reload does
type DetailLoader struct {
	api  listingSource
	gate *Gate

	mu     sync.Mutex
	gen    uint64
	closed bool
	id     string
	view   DetailView
}

// NewDetailLoader builds a loader; gate may be nil to skip the auth check
func NewDetailLoader(api listingSource, gate *Gate) *DetailLoader {
	if api == nil {
		panic("client.DetailLoader requires a non nil api")
	}
	return &DetailLoader{api: api, gate: gate, view: DetailView{State: StateLoading}}
}

// Load fetches the detail for id; a missing listing lands in the NotFound
// state, anything else in the error state
func (l *DetailLoader) Load(ctx context.Context, id string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.gen++
	gen := l.gen
	l.id = id
	l.view = DetailView{State: StateLoading}
	l.mu.Unlock()

	d, err := l.api.ListingDetail(ctx, id)
	if err != nil {
		if perr.CodeOf(err) == perr.ErrorCodeNotFound {
			l.commit(gen, DetailView{State: StateError, Err: err, NotFound: true})
			return
		}
		l.commit(gen, DetailView{State: StateError, Err: err})
		return
	}
	l.commit(gen, DetailView{State: StateData, Detail: d})
}

// SubmitReview validates the rating locally, posts the review, then
// re-fetches the detail so the server stays the source of the aggregates.
// An out of range rating never reaches the network
func (l *DetailLoader) SubmitReview(ctx context.Context, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return perr.WithField(perr.Validationf("rating must be between 1 and 5"), "rating")
	}
	if l.gate != nil && !l.gate.Current().Authenticated {
		return ErrAuthRequired
	}

	l.mu.Lock()
	id := l.id
	closed := l.closed
	l.mu.Unlock()
	if closed || id == "" {
		return perr.InvalidArgf("no listing loaded")
	}

	if _, err := l.api.SubmitReview(ctx, revdom.SubmitInput{ListingID: id, Rating: rating, Comment: comment}); err != nil {
		return err
	}
	l.Load(ctx, id)
	return nil
}

// View returns the current view state
func (l *DetailLoader) View() DetailView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.view
}

// Close drops any in flight completion and freezes the loader
func (l *DetailLoader) Close() {
	l.mu.Lock()
	l.closed = true
	l.gen++
	l.mu.Unlock()
}

func (l *DetailLoader) commit(gen uint64, v DetailView) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || gen != l.gen {
		return
	}
	l.view = v
}
