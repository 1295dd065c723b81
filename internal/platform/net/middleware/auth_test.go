package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perr "slugspot/internal/platform/errors"
	"slugspot/internal/platform/net"
	"slugspot/internal/platform/net/middleware"
)

type fakeAuthPort struct {
	user  string
	email string
	err   error
}

func (f fakeAuthPort) Parse(r *http.Request) (string, string, error) {
	return f.user, f.email, f.err
}

func writeStub(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
}

func TestAuth_NilPortPassesThrough(t *testing.T) {
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(200)
	})

	mw := middleware.Auth(nil, writeStub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if !nextCalled {
		t.Fatal("expected next to be called")
	}
	if rr.Code != 200 {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func TestAuth_ErrorFromPortWritesMappedError(t *testing.T) {
	p := fakeAuthPort{err: perr.Unauthorizedf("bad token")}
	mw := middleware.Auth(p, writeStub)

	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if nextCalled {
		t.Fatal("did not expect next to be called on auth error")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}

func TestAuth_SetsUserOnContext(t *testing.T) {
	p := fakeAuthPort{user: "u1", email: "sammy@ucsc.edu"}
	mw := middleware.Auth(p, writeStub)

	var seenUser, seenEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser = net.UserID(r.Context())
		seenEmail = net.UserEmail(r.Context())
		w.WriteHeader(200)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if seenUser != "u1" || seenEmail != "sammy@ucsc.edu" {
		t.Fatalf("expected user on context, got %q %q", seenUser, seenEmail)
	}
}
