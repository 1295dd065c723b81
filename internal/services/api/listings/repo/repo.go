// Package repo provides postgres access for listings
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"slugspot/internal/modkit/repokit"
	perr "slugspot/internal/platform/errors"
)

// Repo defines the repository contract for listings
type Repo interface {
	List(ctx context.Context) ([]RowListing, error)
	ByID(ctx context.Context, id string) (RowListing, error)
	Create(ctx context.Context, authorID, title, description string) (RowListing, error)
}

// RowListing is the aggregate read row: listing joined with its author and
// review stats. avg_rating is coalesced to 0 when there are no reviews
type RowListing struct {
	ID          string
	Title       string
	Description string
	AuthorName  string
	AuthorEmail string
	CreatedAt   time.Time
	AvgRating   float64
	ReviewCount int
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const listingCols = `
select l.id::text, l.title, coalesce(l.description, ''),
	coalesce(u.display_name, ''), coalesce(u.email, ''),
	l.created_at,
	coalesce(avg(rv.rating), 0)::float8,
	count(rv.id)::int
from listings l
left join users u on u.id = l.author_id
left join reviews rv on rv.listing_id = l.id
`

func scanListing(row interface{ Scan(...any) error }) (RowListing, error) {
	var rl RowListing
	err := row.Scan(
		&rl.ID, &rl.Title, &rl.Description,
		&rl.AuthorName, &rl.AuthorEmail,
		&rl.CreatedAt, &rl.AvgRating, &rl.ReviewCount,
	)
	return rl, err
}

func (r *queries) List(ctx context.Context) ([]RowListing, error) {
	const sql = listingCols + `
group by l.id, u.display_name, u.email
order by l.created_at desc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "select listings")
	}
	defer rows.Close()
	var out []RowListing
	for rows.Next() {
		rl, err := scanListing(rows)
		if err != nil {
			return nil, perr.FromPostgres(err, "scan listing")
		}
		out = append(out, rl)
	}
	return out, rows.Err()
}

func (r *queries) ByID(ctx context.Context, id string) (RowListing, error) {
	const sql = listingCols + `
where l.id = $1
group by l.id, u.display_name, u.email
`
	rl, err := scanListing(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowListing{}, perr.NotFoundf("listing %s not found", id)
		}
		return RowListing{}, perr.FromPostgres(err, "select listing by id")
	}
	return rl, nil
}

func (r *queries) Create(ctx context.Context, authorID, title, description string) (RowListing, error) {
	const sql = `
with ins as (
	insert into listings (title, description, author_id)
	values ($1, nullif($2, ''), $3)
	returning id, title, description, author_id, created_at
)
select ins.id::text, ins.title, coalesce(ins.description, ''),
	coalesce(u.display_name, ''), coalesce(u.email, ''),
	ins.created_at, 0::float8, 0
from ins
left join users u on u.id = ins.author_id
`
	rl, err := scanListing(r.q.QueryRow(ctx, sql, title, description, authorID))
	if err != nil {
		return RowListing{}, perr.FromPostgresWithField(err, "insert listing")
	}
	return rl, nil
}
