package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	adminHandler "newsletter/internal/admin/handler"
	"newsletter/internal/audit"
	authHandler "newsletter/internal/auth/handler"
	authService "newsletter/internal/auth/service"
	"newsletter/internal/auth/store/session"
	"newsletter/internal/auth/store/user"
	"newsletter/internal/email"
	newsletterHandler "newsletter/internal/newsletter/handler"
	newsletterService "newsletter/internal/newsletter/service"
	"newsletter/internal/platform/config"
	"newsletter/internal/platform/httpserver"
	"newsletter/internal/platform/logger"
	"newsletter/internal/platform/metrics"
	"newsletter/internal/platform/postgres"
	"newsletter/internal/platform/redis"
	subscriptionHandler "newsletter/internal/subscription/handler"
	subscriptionService "newsletter/internal/subscription/service"
	subscriptionStore "newsletter/internal/subscription/store"
	httptransport "newsletter/internal/transport/http"
)

const sessionTTL = 24 * time.Hour

// main wires the dependency graph and owns the process lifecycle. Business
// logic lives in the internal services.
func main() {
	log := logger.Init()

	cfg, err := config.Load("configuration.yaml")
	if err != nil {
		log.Error("failed to load configuration", "error", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		log.Error("failed to connect to postgres", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(db, "migrations"); err != nil {
		log.Error("failed to run migrations", "error", err.Error())
		os.Exit(1)
	}

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err.Error())
		os.Exit(1)
	}

	var sessionStore session.Store
	if redisClient != nil {
		defer redisClient.Close()
		sessionStore = session.NewRedis(redisClient.Client)
		log.Info("session store: redis")
	} else {
		sessionStore = session.NewInMemory()
		log.Info("session store: memory")
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	auditor := audit.NewPublisher(log)
	var sink audit.Sink
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(cfg.Kafka)
		if err != nil {
			log.Error("failed to connect to kafka", "error", err.Error())
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
		log.Info("audit sink: kafka", "topic", cfg.Kafka.Topic)
	} else {
		sink = audit.NewMemorySink()
		log.Info("audit sink: memory")
	}
	go func() {
		if err := audit.NewWorker(sink, auditor.Inbox(), log).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err.Error())
		}
	}()

	templates, err := email.NewTemplates()
	if err != nil {
		log.Error("failed to parse email templates", "error", err.Error())
		os.Exit(1)
	}
	mailClient := email.NewClient(cfg.EmailClient, templates)

	subStore := subscriptionStore.NewPostgres(db)
	subService := subscriptionService.NewService(subStore, mailClient, auditor, m, log, cfg.Application.BaseURL)

	userStore := user.NewPostgres(db)
	authSvc := authService.NewService(userStore, sessionStore, auditor, log, sessionTTL)

	newsSvc := newsletterService.NewService(subStore, mailClient, auditor, m, log)

	router := httptransport.NewRouter(httptransport.Dependencies{
		Logger:       log,
		Metrics:      m,
		Gatherer:     registry,
		Subscription: subscriptionHandler.New(subService, log),
		Newsletter:   newsletterHandler.New(newsSvc, authSvc, log),
		Auth:         authHandler.New(authSvc, log),
		Admin:        adminHandler.New(authSvc, log),
	})

	srv := httpserver.New(cfg.Application.Addr(), router)

	go func() {
		log.Info("starting newsletter server", "addr", cfg.Application.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
	log.Info("server stopped")
}
