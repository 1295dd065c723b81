package client

import (
	"context"
	"errors"
	"sync"
	"testing"

	perr "slugspot/internal/platform/errors"
	listdom "slugspot/internal/services/api/listings/domain"
	revdom "slugspot/internal/services/api/reviews/domain"
)

// fakeListingAPI scripts listing responses; an optional gate channel lets a
// test hold one call open to simulate a slow response
type fakeListingAPI struct {
	mu          sync.Mutex
	listings    []listdom.Listing
	listErr     error
	detail      listdom.Detail
	detailErr   error
	submitErr   error
	listCalls   int
	detailCalls int
	submitCalls int

	// holdList blocks one call until closed; started reports it is in flight
	holdList chan struct{}
	started  chan struct{}
}

func (f *fakeListingAPI) Listings(context.Context, string, string) ([]listdom.Listing, error) {
	f.mu.Lock()
	f.listCalls++
	hold := f.holdList
	f.holdList = nil
	started := f.started
	f.started = nil
	items, err := f.listings, f.listErr
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if hold != nil {
		<-hold
	}
	return items, err
}

func (f *fakeListingAPI) ListingDetail(context.Context, string) (listdom.Detail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls++
	return f.detail, f.detailErr
}

func (f *fakeListingAPI) SubmitReview(context.Context, revdom.SubmitInput) (revdom.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitCalls++
	return revdom.Review{}, f.submitErr
}

func authedGate() *Gate {
	g := NewGate(nil)
	g.Set(Session{Authenticated: true, UserID: "u-1", Email: "sam@ucsc.edu"})
	return g
}

func anonGate() *Gate {
	g := NewGate(nil)
	g.Set(Session{})
	return g
}

func TestListingsLoader_AnonymousNeverHitsTheWire(t *testing.T) {
	t.Parallel()

	api := &fakeListingAPI{}
	l := NewListingsLoader(api, anonGate())

	l.Load(context.Background(), "", "")

	v := l.View()
	if v.State != StateError || !errors.Is(v.Err, ErrAuthRequired) {
		t.Fatalf("expected auth required, got %+v", v)
	}
	if api.listCalls != 0 {
		t.Fatalf("anonymous load must not make a request, got %d", api.listCalls)
	}
}

func TestListingsLoader_LoadsData(t *testing.T) {
	t.Parallel()

	api := &fakeListingAPI{listings: []listdom.Listing{{ID: "a", Title: "Stevenson Coffee"}}}
	l := NewListingsLoader(api, authedGate())

	l.Load(context.Background(), "", "")

	v := l.View()
	if v.State != StateData || len(v.Listings) != 1 || v.Listings[0].ID != "a" {
		t.Fatalf("unexpected view: %+v", v)
	}
	if v.NoMatches {
		t.Fatalf("a populated result is not a no-matches state")
	}
}

func TestListingsLoader_NoMatchesIsDistinctFromEmpty(t *testing.T) {
	t.Parallel()

	api := &fakeListingAPI{}
	l := NewListingsLoader(api, authedGate())

	l.Load(context.Background(), "zzz", "")
	if v := l.View(); v.State != StateData || !v.NoMatches {
		t.Fatalf("a filtered-out result should report no matches, got %+v", v)
	}

	l.Load(context.Background(), "", "")
	if v := l.View(); v.State != StateData || v.NoMatches {
		t.Fatalf("an empty collection without a query is plain empty, got %+v", v)
	}
}

func TestListingsLoader_TransportErrorIsErrorState(t *testing.T) {
	t.Parallel()

	api := &fakeListingAPI{listErr: perr.Unavailablef("connection refused")}
	l := NewListingsLoader(api, authedGate())

	l.Load(context.Background(), "", "")

	v := l.View()
	if v.State != StateError || v.Err == nil {
		t.Fatalf("expected error state, got %+v", v)
	}
}

func TestListingsLoader_StaleResponseIsDropped(t *testing.T) {
	t.Parallel()

	hold := make(chan struct{})
	started := make(chan struct{})
	api := &fakeListingAPI{
		listings: []listdom.Listing{{ID: "old", Title: "Old Result"}},
		holdList: hold,
		started:  started,
	}
	l := NewListingsLoader(api, authedGate())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Load(context.Background(), "old", "")
	}()

	// wait for the first call to be in flight, then supersede it
	<-started
	api.mu.Lock()
	api.listings = []listdom.Listing{{ID: "new", Title: "New Result"}}
	api.mu.Unlock()
	l.Load(context.Background(), "new", "")

	close(hold)
	wg.Wait()

	v := l.View()
	if v.State != StateData || len(v.Listings) != 1 || v.Listings[0].ID != "new" {
		t.Fatalf("the superseded response must not clobber the newer one: %+v", v)
	}
}

func TestListingsLoader_NoWriteAfterClose(t *testing.T) {
	t.Parallel()

	hold := make(chan struct{})
	started := make(chan struct{})
	api := &fakeListingAPI{
		listings: []listdom.Listing{{ID: "a"}},
		holdList: hold,
		started:  started,
	}
	l := NewListingsLoader(api, authedGate())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Load(context.Background(), "", "")
	}()
	<-started

	l.Close()
	close(hold)
	wg.Wait()

	if v := l.View(); v.State == StateData {
		t.Fatalf("a closed loader must not apply the in flight result: %+v", v)
	}

	l.Load(context.Background(), "", "")
	api.mu.Lock()
	calls := api.listCalls
	api.mu.Unlock()
	if calls != 1 {
		t.Fatalf("load after close must be a no-op, got %d calls", calls)
	}
}

func TestDetailLoader_NotFoundIsDistinctFromTransportError(t *testing.T) {
	t.Parallel()

	api := &fakeListingAPI{detailErr: perr.NotFoundf("listing not found")}
	l := NewDetailLoader(api, authedGate())

	l.Load(context.Background(), "nope")
	if v := l.View(); v.State != StateError || !v.NotFound {
		t.Fatalf("missing listing should land in the not-found state, got %+v", v)
	}

	api.mu.Lock()
	api.detailErr = perr.Unavailablef("connection refused")
	api.mu.Unlock()
	l.Load(context.Background(), "nope")
	if v := l.View(); v.State != StateError || v.NotFound {
		t.Fatalf("a transport failure is not a not-found, got %+v", v)
	}
}

func TestDetailLoader_SubmitReviewRejectsBadRatingLocally(t *testing.T) {
	t.Parallel()

	api := &fakeListingAPI{detail: listdom.Detail{Listing: listdom.Listing{ID: "a"}}}
	l := NewDetailLoader(api, authedGate())
	l.Load(context.Background(), "a")

	for _, rating := range []int{0, 6, -3} {
		err := l.SubmitReview(context.Background(), rating, "nope")
		if perr.CodeOf(err) != perr.ErrorCodeValidation {
			t.Fatalf("rating %d should fail locally, got %v", rating, err)
		}
	}
	if api.submitCalls != 0 {
		t.Fatalf("an invalid rating must never reach the network, got %d calls", api.submitCalls)
	}
}

func TestDetailLoader_SubmitReviewRefetchesDetail(t *testing.T) {
	t.Parallel()

	api := &fakeListingAPI{detail: listdom.Detail{Listing: listdom.Listing{ID: "a"}}}
	l := NewDetailLoader(api, authedGate())
	l.Load(context.Background(), "a")

	if err := l.SubmitReview(context.Background(), 5, "great spot"); err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}
	if api.submitCalls != 1 {
		t.Fatalf("expected one submit, got %d", api.submitCalls)
	}
	if api.detailCalls != 2 {
		t.Fatalf("submit should re-fetch the detail, got %d detail calls", api.detailCalls)
	}
}

func TestDetailLoader_SubmitReviewRequiresSession(t *testing.T) {
	t.Parallel()

	api := &fakeListingAPI{detail: listdom.Detail{Listing: listdom.Listing{ID: "a"}}}
	l := NewDetailLoader(api, anonGate())
	l.Load(context.Background(), "a")

	err := l.SubmitReview(context.Background(), 4, "nice")
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected auth required, got %v", err)
	}
	if api.submitCalls != 0 {
		t.Fatalf("anonymous submit must not make a request")
	}
}
