// Command server runs the KYC registry node: HTTP API, Prometheus metrics,
// optional Postgres persistence, Redis read cache, and Kafka audit sink.
// Wiring lives here; business logic stays in the internal services.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"kycnet/internal/audit"
	"kycnet/internal/jwt_token"
	"kycnet/internal/platform/config"
	"kycnet/internal/platform/database"
	"kycnet/internal/platform/health"
	"kycnet/internal/platform/kafka/producer"
	"kycnet/internal/platform/logger"
	platmetrics "kycnet/internal/platform/metrics"
	platredis "kycnet/internal/platform/redis"
	"kycnet/internal/registry/cache"
	"kycnet/internal/registry/engine"
	"kycnet/internal/registry/handler"
	regmetrics "kycnet/internal/registry/metrics"
	"kycnet/internal/registry/registrar"
	"kycnet/internal/registry/store"
	"kycnet/internal/registry/tracer"
	"kycnet/internal/seeder"
	httptransport "kycnet/internal/transport/http"
	"kycnet/migrations"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing kyc registry",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"admin", cfg.AdminIdentity,
		"postgres", cfg.PostgresDSN != "",
		"redis", cfg.RedisURL != "",
		"kafka", len(cfg.KafkaBrokers) > 0,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthHandler := health.New(cfg.Environment)

	// Store: Postgres when configured, in-memory otherwise.
	var st store.Store = store.NewInMemory()
	pool, err := database.New(database.DefaultConfig(cfg.PostgresDSN))
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
		if err := migrations.Apply(ctx, pool.DB()); err != nil {
			return err
		}
		st = store.NewPostgres(pool.DB())
		healthHandler.RegisterCheck("postgres", func() error { return pool.Health(context.Background()) })
		log.Info("using postgres store")
	} else {
		log.Info("using in-memory store")
	}

	// Audit: Kafka sink when brokers are configured, in-memory otherwise.
	var auditStore audit.Store = audit.NewInMemoryStore()
	if len(cfg.KafkaBrokers) > 0 {
		producerCfg := producer.DefaultConfig()
		producerCfg.Brokers = strings.Join(cfg.KafkaBrokers, ",")
		kafkaProducer, err := producer.New(producerCfg, log)
		if err != nil {
			return err
		}
		defer kafkaProducer.Close()
		auditStore = audit.NewKafkaStore(kafkaProducer, cfg.KafkaTopic)
		log.Info("audit events going to kafka", "topic", cfg.KafkaTopic)
	}
	publisher := audit.NewPublisher(auditStore,
		audit.WithAsyncBuffer(256),
		audit.WithPublisherLogger(log),
	)
	defer publisher.Close()

	registryMetrics := regmetrics.New()
	httpMetrics := platmetrics.New()

	engineOpts := []engine.Option{
		engine.WithLogger(log),
		engine.WithAuditPublisher(publisher),
		engine.WithMetrics(registryMetrics),
		engine.WithTracer(tracer.NewOTel()),
	}

	// Customer read cache when Redis is configured.
	redisClient, err := platredis.New(cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		engineOpts = append(engineOpts, engine.WithCustomerCache(cache.NewRedis(redisClient.Client, cfg.CacheTTL)))
		healthHandler.RegisterCheck("redis", func() error { return redisClient.Health(context.Background()) })
		log.Info("customer read cache enabled", "ttl", cfg.CacheTTL)
	}

	eng := engine.New(st, engineOpts...)
	reg := registrar.New(st, cfg.AdminIdentity,
		registrar.WithLogger(log),
		registrar.WithAuditPublisher(publisher),
		registrar.WithMetrics(registryMetrics),
	)

	if cfg.SeedDemoData {
		if err := seeder.Seed(ctx, cfg.AdminIdentity, reg, eng, log); err != nil {
			return err
		}
	}

	tokens := jwttoken.NewService(cfg.JWTSigningKey, cfg.TokenTTL)
	registryHandler := handler.New(reg, eng, log)
	router := httptransport.NewRouter(registryHandler, healthHandler, tokens, log, httpMetrics)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if redisClient != nil {
		g.Go(func() error {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					redisClient.RecordPoolStats()
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
