// Package repo provides postgres access for auth
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"slugspot/internal/modkit/repokit"
	perr "slugspot/internal/platform/errors"
)

// Repo defines the repository contract for users
type Repo interface {
	Create(ctx context.Context, email, passwordHash, displayName string) (RowUser, error)
	UpsertOAuth(ctx context.Context, email, displayName string) (RowUser, error)
	ByEmail(ctx context.Context, email string) (RowUser, error)
	ByID(ctx context.Context, id string) (RowUser, error)
}

// RowUser represents a user row from the database
type RowUser struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	CreatedAt    string
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

func (r *queries) Create(ctx context.Context, email, passwordHash, displayName string) (RowUser, error) {
	const sql = `
insert into users (email, password_hash, display_name)
values ($1, $2, $3)
returning id::text, email, coalesce(password_hash, ''), display_name, created_at::text
`
	var u RowUser
	row := r.q.QueryRow(ctx, sql, email, passwordHash, displayName)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.CreatedAt); err != nil {
		return RowUser{}, perr.FromPostgresWithField(err, "insert user")
	}
	return u, nil
}

// UpsertOAuth creates or refreshes a user arriving via OAuth
// such users carry no password hash
func (r *queries) UpsertOAuth(ctx context.Context, email, displayName string) (RowUser, error) {
	const sql = `
insert into users (email, display_name)
values ($1, $2)
on conflict (email) do update set display_name = excluded.display_name
returning id::text, email, coalesce(password_hash, ''), display_name, created_at::text
`
	var u RowUser
	row := r.q.QueryRow(ctx, sql, email, displayName)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.CreatedAt); err != nil {
		return RowUser{}, perr.FromPostgres(err, "upsert oauth user")
	}
	return u, nil
}

func (r *queries) ByEmail(ctx context.Context, email string) (RowUser, error) {
	const sql = `
select id::text, email, coalesce(password_hash, ''), display_name, created_at::text
from users
where email = $1
`
	var u RowUser
	row := r.q.QueryRow(ctx, sql, email)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowUser{}, perr.NotFoundf("user %s not found", email)
		}
		return RowUser{}, perr.FromPostgres(err, "select user by email")
	}
	return u, nil
}

func (r *queries) ByID(ctx context.Context, id string) (RowUser, error) {
	const sql = `
select id::text, email, coalesce(password_hash, ''), display_name, created_at::text
from users
where id = $1
`
	var u RowUser
	row := r.q.QueryRow(ctx, sql, id)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowUser{}, perr.NotFoundf("user %s not found", id)
		}
		return RowUser{}, perr.FromPostgres(err, "select user by id")
	}
	return u, nil
}
