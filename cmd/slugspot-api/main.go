// @title         SlugSpot API
// @version       0.1.0
// @description   Campus listings, reviews, and service bookings

package main

import (
	"context"

	"github.com/joho/godotenv"

	"slugspot/internal/platform/config"
	"slugspot/internal/platform/logger"
	phttp "slugspot/internal/platform/net/http"
	"slugspot/internal/platform/store"

	"slugspot/internal/services/api"
)

func main() {
	// local development convenience; real deployments set the env directly
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (SLUGSPOT_API_*)
	root := config.New()
	apiCfg := root.Prefix("SLUGSPOT_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*

	// bring up logging early
	l := logger.Get()

	// open the platform store
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "slugspot-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads SLUGSPOT_API_PORT / SLUGSPOT_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
