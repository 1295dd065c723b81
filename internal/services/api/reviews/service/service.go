// Package service contains review workflows
package service

import (
	"context"
	"strings"

	"slugspot/internal/modkit/repokit"
	perr "slugspot/internal/platform/errors"
	"slugspot/internal/services/api/reviews/domain"
	"slugspot/internal/services/api/reviews/repo"
)

// Service defines the service contract for reviews
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new reviews service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("reviews.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reviews.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Submit validates the rating range before touching storage, then inserts.
// A second review by the same user for the same listing is a conflict;
// an unknown listing id is invalid input (FK violation)
func (s *Svc) Submit(ctx context.Context, userID string, in domain.SubmitInput) (domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return domain.Review{}, perr.WithField(perr.Validationf("rating must be between 1 and 5"), "rating")
	}
	if userID == "" {
		return domain.Review{}, perr.Unauthorizedf("missing bearer token")
	}

	row, err := s.Repo.Insert(ctx, in.ListingID, userID, in.Rating, strings.TrimSpace(in.Comment))
	if err != nil {
		switch perr.CodeOf(err) {
		case perr.ErrorCodeDuplicateKey:
			return domain.Review{}, perr.Conflictf("you have already reviewed this listing")
		case perr.ErrorCodeInvalidArgument:
			return domain.Review{}, perr.WithField(perr.InvalidArgf("unknown listing"), "listing_id")
		}
		return domain.Review{}, err
	}
	return toReview(row), nil
}

// ForListing returns all reviews for a listing, newest first
func (s *Svc) ForListing(ctx context.Context, listingID string) ([]domain.Review, error) {
	rows, err := s.Repo.ForListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(rows))
	for _, r := range rows {
		out = append(out, toReview(r))
	}
	return out, nil
}

func toReview(r repo.RowReview) domain.Review {
	return domain.Review{
		ID:         r.ID,
		ListingID:  r.ListingID,
		UserID:     r.UserID,
		AuthorName: r.AuthorName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
