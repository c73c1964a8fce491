package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"sigmahub/internal/platform/config"
	"sigmahub/internal/platform/httpserver"
	"sigmahub/internal/platform/logger"
	platformredis "sigmahub/internal/platform/redis"
	"sigmahub/internal/sigma/client"
	"sigmahub/internal/sigma/events"
	"sigmahub/internal/sigma/handler"
	"sigmahub/internal/sigma/metrics"
	"sigmahub/internal/sigma/ports"
	"sigmahub/internal/sigma/service"
	"sigmahub/internal/sigma/store"
	"sigmahub/pkg/platform/middleware/requestid"
	"sigmahub/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/sigma packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sigma persistence: Postgres when configured, in-memory otherwise.
	var sigmaStore store.Backend
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		pg := store.NewPostgresStore(db)
		if err := pg.Migrate(ctx); err != nil {
			log.Error("migrate database", "error", err)
			os.Exit(1)
		}
		sigmaStore = pg
		log.Info("using postgres sigma store")
	} else {
		sigmaStore = store.NewMemoryStore()
		log.Warn("no database configured, sigma values are kept in memory")
	}

	// Optional Redis cache in front of the primary store.
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		sigmaStore = store.NewCachingStore(
			store.NewRedisStore(redisClient.Client, cfg.Redis.CacheTTL),
			sigmaStore,
		)
		log.Info("redis sigma cache enabled")
	}

	// Indicator service boundary.
	var fetcher interface {
		ports.RegionalValueFetcher
		ports.ThresholdFetcher
	}
	if cfg.MockAii {
		fetcher = client.MockAiiClient{Latency: 50 * time.Millisecond}
		log.Warn("using mock indicator client")
	} else {
		fetcher = client.NewAiiClient(cfg.AiiBaseURL, log)
	}

	// Computed-sigma event stream, disabled without brokers.
	var publisher service.EventPublisher = events.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := events.NewKafkaPublisher(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Error("connect kafka", "error", err)
			os.Exit(1)
		}
		defer kafka.Close()
		publisher = kafka
	}

	sigmaMetrics := metrics.New()

	pm25, err := service.NewPM25Service(fetcher, fetcher, sigmaStore,
		service.WithLogger(log),
		service.WithMetrics(sigmaMetrics),
		service.WithEventPublisher(publisher),
	)
	if err != nil {
		log.Error("build pm25 service", "error", err)
		os.Exit(1)
	}

	dispatcher := service.NewRouter(log, pm25)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)

	handler.New(dispatcher, log).Register(r)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httpserver.New(cfg.Addr, r)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting sigmahub", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("sigmahub stopped")
}
