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
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "parcelservice/internal/app"
	"parcelservice/internal/entities"
	"parcelservice/internal/handlers/rest/agent_delete"
	"parcelservice/internal/handlers/rest/agent_post"
	"parcelservice/internal/handlers/rest/agents_get"
	"parcelservice/internal/handlers/rest/healthcheck_head"
	"parcelservice/internal/handlers/rest/live_ws"
	"parcelservice/internal/handlers/rest/parcel_patch"
	"parcelservice/internal/handlers/rest/parcel_post"
	"parcelservice/internal/handlers/rest/parcels_assigned_get"
	"parcelservice/internal/handlers/rest/parcels_get"
	"parcelservice/internal/handlers/rest/ping_get"
	"parcelservice/internal/handlers/rest/update_status_post"
	"parcelservice/internal/handlers/rest/user_post"
	"parcelservice/internal/handlers/rest/user_role_get"
	"parcelservice/internal/handlers/rest/user_role_patch"
	"parcelservice/internal/handlers/rest/users_get"
	"parcelservice/internal/pkg/authtoken"
	"parcelservice/internal/pkg/config"
	"parcelservice/internal/pkg/dotenv"
	"parcelservice/internal/pkg/kafka"
	metrics_system "parcelservice/internal/pkg/metrics"
	"parcelservice/internal/pkg/middlewares/auth"
	"parcelservice/internal/pkg/middlewares/graceful_shutdown"
	"parcelservice/internal/pkg/middlewares/metrics"
	"parcelservice/internal/pkg/middlewares/rate_limiter"
	"parcelservice/internal/pkg/middlewares/timeout"
	"parcelservice/internal/pkg/postgres"
	"parcelservice/internal/pkg/ws"
	"parcelservice/pkg/logger"
	"parcelservice/pkg/logger/zap_adapter"
	"parcelservice/pkg/token_bucket"
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

	mainLog.Info("starting parcel-service application")

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

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka, brokers, cfg.Kafka.Topic)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	// ongoingCtx is the BaseContext of the HTTP server and must survive
	// SIGTERM. It is cancelled only after server.Shutdown() so in-flight
	// requests and connected websocket clients can finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	hub := ws.NewHub(log)
	go hub.Run(ongoingCtx)

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, hub, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, hub, cfg),
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

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, hub *ws.Hub, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")
	router.Handle("/live", live_ws.New(log, hub)).Methods("GET")

	verifier := authtoken.NewVerifier(cfg.Auth.TokenSecret)

	anyRole := auth.Middleware(log, verifier, app.ServiceUser,
		entities.RoleCustomer, entities.RoleDeliveryAgent, entities.RoleAdmin)
	adminOnly := auth.Middleware(log, verifier, app.ServiceUser,
		entities.RoleAdmin)
	agentOrAdmin := auth.Middleware(log, verifier, app.ServiceUser,
		entities.RoleDeliveryAgent, entities.RoleAdmin)
	customerOnly := auth.Middleware(log, verifier, app.ServiceUser,
		entities.RoleCustomer)

	router.Handle("/users", user_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/users", adminOnly(users_get.New(log, app.ServiceUser))).Methods("GET")
	router.Handle("/users/{email}/role", anyRole(user_role_get.New(log, app.ServiceUser))).Methods("GET")
	router.Handle("/users/role/{email}", adminOnly(user_role_patch.New(log, app.ServiceUser, app.ServiceAgent))).Methods("PATCH")

	router.Handle("/deliveryAgents", agent_post.New(log, app.ServiceAgent)).Methods("POST")
	router.Handle("/deliveryAgents", adminOnly(agents_get.New(log, app.ServiceAgent))).Methods("GET")
	router.Handle("/deliveryAgents/{id}", adminOnly(agent_delete.New(log, app.ServiceAgent))).Methods("DELETE")

	router.Handle("/parcels", customerOnly(parcel_post.New(log, app.ServiceParcel))).Methods("POST")
	router.Handle("/parcels", anyRole(parcels_get.New(log, app.ServiceParcel))).Methods("GET")
	router.Handle("/parcels/assigned", agentOrAdmin(parcels_assigned_get.New(log, app.ServiceParcel))).Methods("GET")
	router.Handle("/parcels/{id}", agentOrAdmin(parcel_patch.New(log, app.ServiceParcel))).Methods("PATCH")
	router.Handle("/update-status", anyRole(update_status_post.New(log, app.ServiceParcel, app.ServiceNotification))).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
