package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "herbmart/internal/app"
	"herbmart/internal/handlers/rest/admin_deliveries_get"
	"herbmart/internal/handlers/rest/admin_orders_get"
	"herbmart/internal/handlers/rest/assign_delivery_post"
	"herbmart/internal/handlers/rest/auto_assign_post"
	"herbmart/internal/handlers/rest/availability_put"
	"herbmart/internal/handlers/rest/available_orders_get"
	"herbmart/internal/handlers/rest/delivery_orders_get"
	"herbmart/internal/handlers/rest/delivery_status_put"
	"herbmart/internal/handlers/rest/healthcheck_head"
	"herbmart/internal/handlers/rest/leave_delete"
	"herbmart/internal/handlers/rest/leave_post"
	"herbmart/internal/handlers/rest/leaves_get"
	"herbmart/internal/handlers/rest/location_put"
	"herbmart/internal/handlers/rest/my_orders_get"
	"herbmart/internal/handlers/rest/nearest_deliveries_get"
	"herbmart/internal/handlers/rest/order_approve_patch"
	"herbmart/internal/handlers/rest/order_cancel_patch"
	"herbmart/internal/handlers/rest/order_claim_post"
	"herbmart/internal/handlers/rest/ping_get"
	"herbmart/internal/handlers/rest/profile_get"
	"herbmart/internal/handlers/rest/profile_put"
	"herbmart/internal/pkg/auth"
	"herbmart/internal/pkg/config"
	"herbmart/internal/pkg/dotenv"
	metrics_system "herbmart/internal/pkg/metrics"
	"herbmart/internal/pkg/middlewares/graceful_shutdown"
	"herbmart/internal/pkg/middlewares/metrics"
	"herbmart/internal/pkg/middlewares/rate_limiter"
	"herbmart/internal/pkg/middlewares/timeout"
	"herbmart/internal/pkg/postgres"
	"herbmart/pkg/logger"
	"herbmart/pkg/logger/zap_adapter"
	"herbmart/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting herbmart-delivery application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // inheriting from context.Background() here is part of the graceful shutdown flow
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must not be cancelled on SIGTERM.
	// It is cancelled only after server.Shutdown() so in-flight requests
	// can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must be independent of ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(auth.Middleware(log, cfg.Auth.JWTSecret))

	customer := api.PathPrefix("/orders").Subrouter()
	customer.Use(auth.RequireRole(auth.RoleCustomer))
	customer.Handle("/my-orders", my_orders_get.New(log, app.ServiceOrder)).Methods("GET")
	customer.Handle("/{id}/cancel", order_cancel_patch.New(log, app.ServiceOrder)).Methods("PATCH")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireRole(auth.RoleAdmin))
	admin.Handle("/orders", admin_orders_get.New(log, app.ServiceOrder)).Methods("GET")
	admin.Handle("/deliveries", admin_deliveries_get.New(log, app.ServiceAgent)).Methods("GET")
	admin.Handle("/orders/{id}/approve", order_approve_patch.New(log, app.ServiceOrder)).Methods("PATCH")
	admin.Handle("/orders/{id}/assign-delivery", assign_delivery_post.New(log, app.ServiceAssignment)).Methods("POST")
	admin.Handle("/orders/{id}/auto-assign-delivery", auto_assign_post.New(log, app.ServiceAssignment)).Methods("POST")
	admin.Handle("/orders/{id}/nearest-deliveries", nearest_deliveries_get.New(log, app.ServiceAssignment)).Methods("GET")

	delivery := api.PathPrefix("/delivery").Subrouter()
	delivery.Use(auth.RequireRole(auth.RoleDelivery))
	delivery.Handle("/orders", delivery_orders_get.New(log, app.ServiceAssignment)).Methods("GET")
	delivery.Handle("/orders/available", available_orders_get.New(log, app.ServiceAssignment)).Methods("GET")
	delivery.Handle("/orders/{id}/claim", order_claim_post.New(log, app.ServiceAssignment)).Methods("POST")
	delivery.Handle("/orders/{id}/status", delivery_status_put.New(log, app.ServiceAssignment)).Methods("PUT")
	delivery.Handle("/profile", profile_get.New(log, app.ServiceAgent)).Methods("GET")
	delivery.Handle("/profile", profile_put.New(log, app.ServiceAgent)).Methods("PUT")
	delivery.Handle("/location", location_put.New(log, app.ServiceAgent)).Methods("PUT")
	delivery.Handle("/availability", availability_put.New(log, app.ServiceAgent)).Methods("PUT")

	// Leave endpoints live under /api/seller for historical reasons; the
	// callers are still delivery agents.
	leaves := api.PathPrefix("/seller").Subrouter()
	leaves.Use(auth.RequireRole(auth.RoleDelivery))
	leaves.Handle("/leaves", leaves_get.New(log, app.ServiceLeave)).Methods("GET")
	leaves.Handle("/leaves", leave_post.New(log, app.ServiceLeave)).Methods("POST")
	leaves.Handle("/leaves/{id}", leave_delete.New(log, app.ServiceLeave)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
