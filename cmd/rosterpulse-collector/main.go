package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"rosterpulse/internal/modkit"
	"rosterpulse/internal/modkit/module"
	"rosterpulse/internal/platform/config"
	"rosterpulse/internal/platform/logger"
	"rosterpulse/internal/platform/store"

	andomain "rosterpulse/internal/services/analytics/domain"
	collectordomain "rosterpulse/internal/services/collector/domain"
	collectormod "rosterpulse/internal/services/collector/module"
	rosterdomain "rosterpulse/internal/services/roster/domain"
	rostermod "rosterpulse/internal/services/roster/module"
)

func parseDay(l *logger.Logger, v string) time.Time {
	if v == "" {
		// default target is yesterday, the last fully elapsed day
		return andomain.Day(time.Now()).AddDate(0, 0, -1)
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		l.Panic().Str("date", v).Msg("bad -date, expected YYYY-MM-DD")
	}
	return andomain.Day(t)
}

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	localCfg := root.Prefix("SERVICE_LOCALSTORE_")

	logger.Init(logger.FromEnv())
	l := logger.Get()

	backend := store.Backend(root.MayEnum("SERVICE_STORE_BACKEND", "pg", "pg", "local"))
	storeCfg := store.Config{AppName: "rosterpulse-collector"}
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

	// Flags
	var (
		fOnce = flag.Bool("once", false, "run a single collection and exit")
		fDate = flag.String("date", "", "target day (UTC) YYYY-MM-DD, default yesterday; implies -once")
	)
	flag.Parse()

	deps := modkit.Deps{
		Cfg:   root,
		PG:    st.PG,
		Local: st.Local,
		Log:   *l,
	}

	roster := rostermod.New(deps)
	dir := module.MustPortsOf[rosterdomain.DirectoryPort](roster)

	cm := collectormod.New(deps, collectormod.In{Directory: dir})
	module.Register(cm.Name(), cm.Ports())
	trig := module.MustPortsOf[collectordomain.TriggerPort](cm)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := st.Guard(ctx); err != nil {
		l.Panic().Err(err).Msg("store not ready")
	}

	if *fOnce || *fDate != "" {
		day := parseDay(l, *fDate)
		if _, err := trig.Collect(ctx, day); err != nil {
			l.Fatal().Err(err).Str("day", day.Format("2006-01-02")).Msg("collection failed")
		}
		return
	}

	runDaemon(ctx, l, trig)
}

// runDaemon collects yesterday's snapshot at every UTC midnight until ctx ends.
// A failed run is logged and retried at the next midnight
func runDaemon(ctx context.Context, l *logger.Logger, trig collectordomain.TriggerPort) {
	for {
		now := time.Now().UTC()
		next := andomain.Day(now).AddDate(0, 0, 1)
		l.Info().Time("next_run", next).Msg("collector sleeping until midnight")

		t := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			t.Stop()
			l.Info().Msg("collector stopping")
			return
		case <-t.C:
		}

		day := next.AddDate(0, 0, -1)
		if _, err := trig.Collect(ctx, day); err != nil {
			l.Error().Err(err).Str("day", day.Format("2006-01-02")).Msg("collection failed")
		}
	}
}
