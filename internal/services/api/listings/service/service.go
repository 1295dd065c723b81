// Package service contains listing workflows
package service

import (
	"context"
	"strings"

	"slugspot/internal/core/search"
	"slugspot/internal/modkit/repokit"
	perr "slugspot/internal/platform/errors"
	"slugspot/internal/platform/logger"
	"slugspot/internal/services/api/listings/domain"
	"slugspot/internal/services/api/listings/repo"
	revdom "slugspot/internal/services/api/reviews/domain"
)

// Service defines the service contract for listings
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo    repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	reviews revdom.ServicePort
}

// New creates a new listings service
// reviews may be nil; detail pages then always render with empty reviews
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], reviews revdom.ServicePort) *Svc {
	if db == nil {
		panic("listings.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("listings.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, reviews: reviews}
}

// List returns the collection filtered and ordered by the shared pipeline.
// Zero matches is success with an empty slice, never an error
func (s *Svc) List(ctx context.Context, q domain.ListQuery) ([]domain.Listing, error) {
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]search.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, toEntry(r))
	}
	entries = search.Apply(entries, q.Q, search.ParseSortKey(q.Sort))

	byID := make(map[string]repo.RowListing, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	out := make([]domain.Listing, 0, len(entries))
	for _, e := range entries {
		out = append(out, toListing(byID[e.ID]))
	}
	return out, nil
}

// Detail returns one listing with its reviews, newest first.
// A missing id is NotFound; a failed review fetch degrades to empty reviews
// because the primary listing data already loaded
func (s *Svc) Detail(ctx context.Context, id string) (domain.Detail, error) {
	row, err := s.Repo.ByID(ctx, id)
	if err != nil {
		return domain.Detail{}, err
	}

	reviews := []revdom.Review{}
	if s.reviews != nil {
		if rs, err := s.reviews.ForListing(ctx, id); err != nil {
			logger.C(ctx).Warn().Err(err).Str("listing_id", id).Msg("review fetch failed, serving detail without reviews")
		} else if rs != nil {
			reviews = rs
		}
	}

	return domain.Detail{Listing: toListing(row), Reviews: reviews}, nil
}

// Create persists a new listing owned by userID
func (s *Svc) Create(ctx context.Context, userID string, in domain.CreateInput) (domain.Listing, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Listing{}, perr.WithField(perr.Validationf("title is required"), "title")
	}
	if userID == "" {
		return domain.Listing{}, perr.Unauthorizedf("missing bearer token")
	}
	row, err := s.Repo.Create(ctx, userID, title, strings.TrimSpace(in.Description))
	if err != nil {
		return domain.Listing{}, err
	}
	return toListing(row), nil
}

func toEntry(r repo.RowListing) search.Entry {
	return search.Entry{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		AuthorName:  r.AuthorName,
		AuthorEmail: r.AuthorEmail,
		CreatedAt:   r.CreatedAt,
		AvgRating:   r.AvgRating,
		ReviewCount: r.ReviewCount,
	}
}

func toListing(r repo.RowListing) domain.Listing {
	return domain.Listing{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		AuthorName:  r.AuthorName,
		AuthorEmail: r.AuthorEmail,
		CreatedAt:   r.CreatedAt,
		AvgRating:   r.AvgRating,
		ReviewCount: r.ReviewCount,
	}
}
