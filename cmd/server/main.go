package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	addressmapper "alta/internal/address"
	"alta/internal/audit"
	"alta/internal/audit/outbox"
	"alta/internal/identity"
	"alta/internal/names"
	"alta/internal/onboarding"
	onboardingmetrics "alta/internal/onboarding/metrics"
	onboardingstore "alta/internal/onboarding/store"
	"alta/internal/platform/config"
	"alta/internal/platform/httpserver"
	"alta/internal/platform/logger"
	platformredis "alta/internal/platform/redis"
	"alta/internal/registry"
	registrycache "alta/internal/registry/cache"
	"alta/internal/risk"
	httptransport "alta/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	var registryClient registry.Client
	if cfg.Registry.BaseURL != "" {
		registryClient = registry.NewHTTPClient(cfg.Registry.BaseURL, cfg.Registry.Timeout)
	} else {
		log.Printf("no registry URL configured, using mock DGI client")
		registryClient = registry.MockClient{}
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		registryClient = registrycache.New(registryClient, redisClient.Client, cfg.Registry.CacheTTL, log)
	}

	var screener risk.Screener = risk.StaticScreener{}
	if cfg.Risk.BaseURL != "" {
		screener = risk.NewHTTPScreener(cfg.Risk.BaseURL, cfg.Risk.Timeout)
	}

	auditor := audit.NewPublisher(audit.NewPostgresStore(db, log))
	service := onboarding.NewService(
		onboarding.Config{ValidateName: cfg.ValidateName},
		onboardingstore.NewPostgres(db, log),
		auditor,
		identity.NewJWTCodec(cfg.TokenSigningKey),
		registryClient,
		screener,
		names.DefaultValidator{},
		addressmapper.DefaultMapper{},
		log,
		onboarding.WithMetrics(onboardingmetrics.New()),
	)

	handler := httptransport.NewHandler(service)
	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Printf("starting alta on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if len(cfg.Kafka.Brokers) > 0 {
		worker, err := outbox.NewWorker(db, cfg.Kafka, log)
		if err != nil {
			log.Fatalf("create outbox worker: %v", err)
		}
		group.Go(func() error {
			if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpserver.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
