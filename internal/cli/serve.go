package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"symptomcheck/internal/config"
	"symptomcheck/internal/db"
	"symptomcheck/internal/handlers/api"
	"symptomcheck/internal/history"
	"symptomcheck/internal/jobs"
	"symptomcheck/internal/matcher"
	"symptomcheck/internal/metrics"
	"symptomcheck/internal/observability"
	"symptomcheck/internal/server"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the symptom checker API server",
		RunE:  runServe,
	}

	cmd.Flags().StringP("addr", "a", "", "Address to listen on (overrides SYMPTOMS_SERVER_ADDR)")
	cmd.Flags().Bool("no-migrate", false, "Skip automatic database migrations on startup")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.ServerAddr = addr
	}

	observability.InitLogger(cfg.Env)
	logger := observability.Component("server")

	flush := observability.InitSentry(observability.SentryConfig{
		DSN:              cfg.SentryDSN,
		Environment:      cfg.Env,
		TracesSampleRate: cfg.SentryTracesSampleRate,
	})
	defer flush()

	cat, seed, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	var store history.Store
	var pinger api.Pinger
	if cfg.HasDatabase() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if noMigrate, _ := cmd.Flags().GetBool("no-migrate"); !noMigrate {
			if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			logger.Info().Msg("migrations completed successfully")
		}

		store = database
		pinger = database
	} else {
		logger.Info().Msg("DATABASE_URL not set, keeping search history in memory")
		store = history.NewMemory()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(reg, store, cat.Keywords())

	m := matcher.New(cat, store,
		matcher.WithSeed(seed),
		matcher.WithObserver(recorder),
		matcher.WithLogger(observability.Component("matcher")),
	)

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, server.Deps{
		Matcher:  m,
		Pinger:   pinger,
		Gatherer: reg,
		Logger:   logger,
	}); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	scanner := jobs.NewAdvisoryScanner(store, recorder, cfg.AdvisoryInterval, cfg.RecurringThreshold, observability.Component("advisory"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		scanner.Start(gctx)
		return nil
	})
	g.Go(func() error {
		if err := srv.Start(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server")
		if err := srv.Shutdown(); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		log.Info().Msg("server exited")
		return nil
	})

	return g.Wait()
}
