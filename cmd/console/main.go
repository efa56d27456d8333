package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/techexpo/console/internal/backend"
	"github.com/techexpo/console/internal/config"
	"github.com/techexpo/console/internal/guard"
	httpx "github.com/techexpo/console/internal/http"
	"github.com/techexpo/console/internal/loader"
	"github.com/techexpo/console/internal/notify"
	"github.com/techexpo/console/internal/observability"
	"github.com/techexpo/console/internal/redisclient"
	"github.com/techexpo/console/internal/routes"
	"github.com/techexpo/console/internal/screens"
	"github.com/techexpo/console/internal/session"
)

// instrumentedNotifier logs every toast and feeds the kind counter.
type instrumentedNotifier struct {
	log  notify.Notifier
	prom *observability.Prom
}

func (n instrumentedNotifier) Notify(x notify.Notification) {
	n.log.Notify(x)
	n.prom.CountNotification(string(x.Kind))
}

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	if err := cfg.Validate(); err != nil {
		log.Error("configuration invalid", "err", err)
		os.Exit(1)
	}

	if err := routes.Validate(); err != nil {
		log.Error("route table invalid", "err", err)
		os.Exit(1)
	}

	// tracing is optional; without an endpoint we skip the exporter
	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(context.Background(), "techexpo-console", cfg.OTLPEndpoint)
		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}
		defer func() {
			ctx, cancel := config.WithTimeout(5 * time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	registry := prometheus.NewRegistry()
	prom := observability.NewProm(registry)

	sessions, cleanup, err := newSessionStore(cfg)
	if err != nil {
		log.Error("session store init failed", "store", cfg.SessionStore, "err", err)
		os.Exit(1)
	}
	defer cleanup()

	ld := loader.New()
	prom.RegisterLoaderGauge(registry, ld.Active)

	hub := notify.NewHub(instrumentedNotifier{
		log:  notify.NewLogNotifier(log),
		prom: prom,
	}, 0)

	client := backend.NewClient(backend.Config{
		BaseURL:          cfg.BackendURL,
		BasePath:         cfg.BackendBasePath,
		Loader:           ld,
		Sessions:         sessions,
		Strict403:        cfg.Strict403,
		ObserveRoundTrip: prom.ObserveUpstream,
		OnAuthFailure: func() {
			log.Warn("session expired, operator sent back to login")
		},
	})

	router := httpx.NewRouter(httpx.Deps{
		Log:            log,
		Env:            cfg.Env,
		Sessions:       sessions,
		Guard:          guard.New(sessions),
		Hub:            hub,
		Prom:           prom,
		Registry:       registry,
		AllowedOrigins: cfg.AllowedOrigins,
		Ping:           backendPing(cfg.BackendURL),
		Login:          screens.NewLogin(client, sessions, hub),
		Dashboard:      screens.NewDashboard(client, hub),
		Exhibitions:    screens.NewExhibitions(client, sessions, hub),
		Products:       screens.NewProducts(client, hub),
		Accounts:       screens.NewAccounts(client, hub),
		Employees:      screens.NewEmployees(client, hub),
		Visitors:       screens.NewVisitors(client, hub),
		NewRegistration: func(exhibitionID int64) *screens.Registration {
			return screens.NewRegistration(client, exhibitionID)
		},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("console starting", "port", cfg.Port, "env", cfg.Env, "backend", cfg.BackendURL)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("console shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}

// newSessionStore picks the configured medium. cleanup is a no-op for
// everything but redis.
func newSessionStore(cfg config.Config) (session.Store, func(), error) {
	switch cfg.SessionStore {
	case "", "memory":
		return session.NewMemoryStore(), func() {}, nil

	case "file":
		return session.NewFileStore(cfg.StateDir, cfg.SessionSecret), func() {}, nil

	case "redis":
		rc := redisclient.New(redisclient.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := config.WithTimeout(2 * time.Second)
		defer cancel()
		if err := rc.Ping(ctx); err != nil {
			return nil, nil, fmt.Errorf("redis unreachable at %s: %w", cfg.RedisAddr, err)
		}

		return session.NewRedisStore(rc.Raw(), 0), func() { _ = rc.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}

// backendPing probes the backend origin for readiness reporting.
func backendPing(baseURL string) func() error {
	probe := &http.Client{Timeout: 2 * time.Second}

	return func() error {
		resp, err := probe.Get(baseURL + "/actuator/health")
		if err != nil {
			return err
		}
		_ = resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("backend returned %d", resp.StatusCode)
		}
		return nil
	}
}
