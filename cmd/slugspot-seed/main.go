// slugspot-seed creates the schema and loads a small campus data set so a
// fresh database is browsable immediately
package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"slugspot/internal/platform/config"
	"slugspot/internal/platform/logger"
	"slugspot/internal/platform/store"
)

var schema = []string{
	`create extension if not exists pgcrypto`,

	`create table if not exists users (
		id            uuid primary key default gen_random_uuid(),
		email         text not null,
		password_hash text,
		display_name  text not null default '',
		created_at    timestamptz not null default now(),
		constraint users_email_key unique (email)
	)`,

	`create table if not exists listings (
		id          uuid primary key default gen_random_uuid(),
		author_id   uuid references users(id),
		title       text not null,
		description text,
		created_at  timestamptz not null default now()
	)`,

	`create table if not exists reviews (
		id         uuid primary key default gen_random_uuid(),
		listing_id uuid not null references listings(id),
		user_id    uuid not null references users(id),
		rating     int not null check (rating between 1 and 5),
		comment    text,
		created_at timestamptz not null default now(),
		constraint reviews_listing_user_key unique (listing_id, user_id)
	)`,

	`create table if not exists bookings (
		id          uuid primary key default gen_random_uuid(),
		user_id     uuid not null references users(id),
		service_id  text not null,
		booked_date date not null,
		slot        text not null,
		price_cents int not null,
		status      text not null default 'pending',
		payment_ref text,
		created_at  timestamptz not null default now()
	)`,
}

type seedUser struct {
	email, password, name string
}

type seedListing struct {
	author, title, description string
}

type seedReview struct {
	listing, reviewer string
	rating            int
	comment           string
}

var (
	users = []seedUser{
		{"ana@ucsc.edu", "banana-slug-1", "Ana Rivera"},
		{"bo@ucsc.edu", "banana-slug-2", "Bo Chen"},
		{"mira@ucsc.edu", "banana-slug-3", "Mira Patel"},
	}
	listings = []seedListing{
		{"ana@ucsc.edu", "Stevenson Coffee Meetup", "Weekly coffee and study group at the Stevenson cafe"},
		{"bo@ucsc.edu", "Porter Meadow Picnic", "Bring a blanket, sunset views over the bay"},
		{"mira@ucsc.edu", "Quiet Study Nook", "Third floor of McHenry, usually empty after 6pm"},
		{"ana@ucsc.edu", "Campus Bike Co-op", "Free repairs on Fridays behind the Quarry"},
	}
	reviews = []seedReview{
		{"Stevenson Coffee Meetup", "bo@ucsc.edu", 4, "good crowd, strong coffee"},
		{"Stevenson Coffee Meetup", "mira@ucsc.edu", 4, "got actual studying done"},
		{"Porter Meadow Picnic", "ana@ucsc.edu", 5, "unbeatable sunset"},
		{"Porter Meadow Picnic", "mira@ucsc.edu", 5, "my favorite spot on campus"},
		{"Campus Bike Co-op", "bo@ucsc.edu", 3, "helpful but bring patience"},
	}
)

func main() {
	_ = godotenv.Load()

	drop := flag.Bool("drop", false, "drop existing tables first")
	flag.Parse()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "slugspot-seed",
			PG: store.PGConfig{
				Enabled: true,
				URL:     pgCfg.MustString("DBURL"),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() { _ = st.Close(context.Background()) }()

	ctx := context.Background()

	if *drop {
		for _, tbl := range []string{"bookings", "reviews", "listings", "users"} {
			if _, err := st.PG.Exec(ctx, "drop table if exists "+tbl+" cascade"); err != nil {
				l.Panic().Err(err).Str("table", tbl).Msg("drop failed")
			}
		}
	}

	for _, stmt := range schema {
		if _, err := st.PG.Exec(ctx, stmt); err != nil {
			l.Panic().Err(err).Msg("schema statement failed")
		}
	}

	err = st.PG.Tx(ctx, func(q store.RowQuerier) error {
		for _, u := range users {
			hash, herr := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
			if herr != nil {
				return herr
			}
			if _, err := q.Exec(ctx, `
insert into users (email, password_hash, display_name)
values ($1, $2, $3)
on conflict (email) do nothing`, u.email, string(hash), u.name); err != nil {
				return err
			}
		}
		for _, ls := range listings {
			if _, err := q.Exec(ctx, `
insert into listings (author_id, title, description)
select u.id, $2, $3 from users u
where u.email = $1
  and not exists (select 1 from listings where title = $2)`, ls.author, ls.title, ls.description); err != nil {
				return err
			}
		}
		for _, rv := range reviews {
			if _, err := q.Exec(ctx, `
insert into reviews (listing_id, user_id, rating, comment)
select l.id, u.id, $3, $4
from listings l, users u
where l.title = $1 and u.email = $2
on conflict on constraint reviews_listing_user_key do nothing`, rv.listing, rv.reviewer, rv.rating, rv.comment); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.Panic().Err(err).Msg("seed failed")
	}

	l.Info().
		Int("users", len(users)).
		Int("listings", len(listings)).
		Int("reviews", len(reviews)).
		Msg("seed complete")
}
