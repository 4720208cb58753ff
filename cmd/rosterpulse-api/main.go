// @title         RosterPulse API
// @version       0.1.0
// @description   Availability timeline and event analytics exports

package main

import (
	"context"

	"rosterpulse/internal/platform/config"
	"rosterpulse/internal/platform/logger"
	phttp "rosterpulse/internal/platform/net/http"
	"rosterpulse/internal/platform/store"

	"rosterpulse/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")         // pgCfg lives under SERVICE_PGSQL_*
	localCfg := root.Prefix("SERVICE_LOCALSTORE_") // localCfg lives under SERVICE_LOCALSTORE_*

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// open the platform store for whichever backend is selected
	backend := store.Backend(root.MayEnum("SERVICE_STORE_BACKEND", "pg", "pg", "local"))
	storeCfg := store.Config{AppName: "rosterpulse-api"}
	switch backend {
	case store.BackendLocal:
		storeCfg.Local = store.LocalConfig{
			Enabled: true,
			Path:    localCfg.MayString("PATH", "./data/rosterpulse-state.json"),
		}
	default:
		storeCfg.PG = store.PGConfig{
			Enabled:  true,
			URL:      pgCfg.MustString("DBURL"),
			MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 4)),
		}
	}

	st, err := store.Open(context.Background(), storeCfg, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
