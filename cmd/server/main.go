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

	_ "github.com/jackc/pgx/v5/stdlib"

	"vigia/internal/alert"
	alerthandler "vigia/internal/alert/handler"
	alertmetrics "vigia/internal/alert/metrics"
	"vigia/internal/audit"
	"vigia/internal/operation"
	operationhandler "vigia/internal/operation/handler"
	operationmetrics "vigia/internal/operation/metrics"
	"vigia/internal/platform/config"
	"vigia/internal/platform/httpserver"
	"vigia/internal/platform/logger"
	redisplatform "vigia/internal/platform/redis"
	"vigia/internal/platform/token"
	"vigia/internal/risk"
	"vigia/internal/screening"
	screeninghandler "vigia/internal/screening/handler"
	screeningmetrics "vigia/internal/screening/metrics"
	"vigia/internal/screening/providers"
	httptransport "vigia/internal/transport/http"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	redisClient, err := redisplatform.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient == nil {
		log.Warn("redis not configured, screening reports will not be cached")
	}

	var db *sql.DB
	if cfg.PostgresDSN != "" {
		db, err = sql.Open("pgx", cfg.PostgresDSN)
		if err == nil {
			err = db.PingContext(ctx)
		}
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	} else {
		log.Warn("postgres not configured, using in-memory stores")
	}

	var publisher audit.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := audit.NewKafkaPublisher(cfg.KafkaBrokers, cfg.AuditTopic, log)
		if err != nil {
			log.Error("kafka connection failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := kafkaPublisher.Close(flushCtx); err != nil {
				log.Error("audit publisher close failed", "error", err)
			}
		}()
		publisher = kafkaPublisher
	} else {
		log.Warn("kafka not configured, audit events stay in memory")
		publisher = audit.NewMemorySink()
	}

	var (
		operationStore operation.Store
		alertStore     alert.Store
	)
	if db != nil {
		operationStore = operation.NewPostgres(db)
		alertStore = alert.NewPostgres(db)
	} else {
		operationStore = operation.NewInMemoryStore()
		alertStore = alert.NewInMemoryStore()
	}

	registry := screening.NewRegistry()
	for _, provider := range []screening.Provider{providers.NewUAFE(), providers.NewOFAC(), providers.NewUN()} {
		if err := registry.Register(provider); err != nil {
			log.Error("provider registration failed", "source", provider.Source(), "error", err)
			os.Exit(1)
		}
	}

	screeningMetrics := screeningmetrics.New()
	aggregator := screening.NewAggregator(registry, cfg.Screening.ProviderTimeout, log, screeningMetrics)
	var verifier screening.Verifier = aggregator
	if redisClient != nil {
		verifier = screening.NewCachedVerifier(aggregator, redisClient.Client, cfg.Screening.ReportTTL, log, screeningMetrics)
	}

	model := risk.NewModel(cfg.Risk)
	alertMetrics := alertmetrics.New()
	engine := alert.NewEngine(verifier, alertStore, publisher, log, alertMetrics)
	operationService := operation.NewService(model, operationStore, engine, log, operationmetrics.New())
	alertService := alert.NewService(alertStore, publisher, log, alertMetrics)
	tokenService := token.NewService(cfg.JWTSigningKey, "vigia")

	router := httptransport.NewRouter(httptransport.Deps{
		Operations:     operationhandler.New(operationService, log),
		Screening:      screeninghandler.New(verifier, log),
		Alerts:         alerthandler.New(alertService, log),
		TokenValidator: tokenService,
		Logger:         log,
		Health: func() error {
			if redisClient != nil {
				if err := redisClient.Health(context.Background()); err != nil {
					return err
				}
			}
			if db != nil {
				return db.Ping()
			}
			return nil
		},
	})

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting vigia", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
