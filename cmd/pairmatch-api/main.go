// @title         Pairmatch API
// @version       0.1.0
// @description   Pairwise record matching sessions and CSV bulk import

package main

import (
	"context"

	"pairmatch/internal/migrate"
	"pairmatch/internal/modkit/repokit"
	"pairmatch/internal/platform/config"
	"pairmatch/internal/platform/logger"
	phttp "pairmatch/internal/platform/net/http"
	"pairmatch/internal/platform/store"

	"pairmatch/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (PAIRMATCH_API_*)
	root := config.New()
	apiCfg := root.Prefix("PAIRMATCH_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	// bring up logging early
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
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

	// refuse to start until every configured backend answers
	repokit.MustGuard(context.Background(), st)

	// schema bootstrap is fatal on failure; running against a half
	// migrated database is worse than not starting
	if err := migrate.Apply(context.Background(), st.PG); err != nil {
		l.Panic().Err(err).Msg("schema migration failed")
	}

	// http server (reads PAIRMATCH_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        l,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
