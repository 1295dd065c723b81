package client

import (
	"context"
	"sync"

	authdom "slugspot/internal/services/api/auth/domain"
)

// Session is the resolved authentication state. The zero value is anonymous
type Session struct {
	Authenticated bool
	UserID        string
	Email         string
	DisplayName   string
}

// sessionSource resolves the identity behind the stored token
type sessionSource interface {
	Me(ctx context.Context) (authdom.SessionUser, error)
}

// Gate owns the session state and fans transitions out to subscribers.
// Resolution is one-shot: until Init completes, Resolved reports false and
// callers must not make redirect decisions
type Gate struct {
	src sessionSource

	mu       sync.Mutex
	cur      Session
	seq      uint64
	resolved bool
	disposed bool
	nextID   uint64
	subs     map[uint64]func(Session)

	initOnce sync.Once
}

// NewGate builds a gate over the given session source
func NewGate(src sessionSource) *Gate {
	return &Gate{src: src, subs: map[uint64]func(Session){}}
}

// Init resolves the initial session exactly once. A transport failure
// resolves to anonymous rather than surfacing an error; the caller can
// always render something
func (g *Gate) Init(ctx context.Context) {
	g.initOnce.Do(func() {
		s := Session{}
		if g.src != nil {
			if u, err := g.src.Me(ctx); err == nil {
				s = Session{Authenticated: true, UserID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
			}
		}
		g.Set(s)
	})
}

// Current returns the session as of now; meaningful once Resolved is true
func (g *Gate) Current() Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cur
}

// Resolved reports whether the initial resolution has completed
func (g *Gate) Resolved() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.resolved
}

// Set installs a new session and notifies subscribers. Overlapping calls
// are last-write-wins: a notification for a superseded session is dropped
func (g *Gate) Set(s Session) {
	g.mu.Lock()
	if g.disposed {
		g.mu.Unlock()
		return
	}
	g.seq++
	mine := g.seq
	g.cur = s
	g.resolved = true
	snap := make([]func(Session), 0, len(g.subs))
	for _, fn := range g.subs {
		snap = append(snap, fn)
	}
	g.mu.Unlock()

	for _, fn := range snap {
		g.mu.Lock()
		stale := g.disposed || g.seq != mine
		g.mu.Unlock()
		if stale {
			return
		}
		fn(s)
	}
}

// Subscribe registers fn for future transitions and returns its cancel.
// fn is not called with the current state; read Current for that
func (g *Gate) Subscribe(fn func(Session)) func() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.disposed || fn == nil {
		return func() {}
	}
	g.nextID++
	id := g.nextID
	g.subs[id] = fn
	return func() {
		g.mu.Lock()
		delete(g.subs, id)
		g.mu.Unlock()
	}
}

// Dispose tears the gate down; no subscriber runs after it returns
func (g *Gate) Dispose() {
	g.mu.Lock()
	g.disposed = true
	g.subs = map[uint64]func(Session){}
	g.mu.Unlock()
}
