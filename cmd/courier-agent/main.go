package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	application "courier-sync/internal/app"
	"courier-sync/internal/handlers/rest/connectivity_put"
	"courier-sync/internal/handlers/rest/events_get"
	"courier-sync/internal/handlers/rest/healthcheck_head"
	"courier-sync/internal/handlers/rest/itinerary_finalize_post"
	"courier-sync/internal/handlers/rest/itinerary_get"
	"courier-sync/internal/handlers/rest/itinerary_post"
	"courier-sync/internal/handlers/rest/location_put"
	"courier-sync/internal/handlers/rest/offline_cities_get"
	"courier-sync/internal/handlers/rest/offline_city_post"
	"courier-sync/internal/handlers/rest/ping_get"
	"courier-sync/internal/handlers/rest/sector_delete"
	"courier-sync/internal/handlers/rest/sector_post"
	"courier-sync/internal/handlers/rest/sectors_get"
	"courier-sync/internal/handlers/rest/session_put"
	"courier-sync/internal/handlers/rest/settings_get"
	"courier-sync/internal/handlers/rest/settings_put"
	"courier-sync/internal/handlers/rest/stop_delete"
	"courier-sync/internal/handlers/rest/stop_packages_post"
	"courier-sync/internal/handlers/rest/stop_patch"
	"courier-sync/internal/handlers/rest/stop_post"
	"courier-sync/internal/handlers/rest/stop_set_current_post"
	"courier-sync/internal/handlers/rest/stop_status_patch"
	"courier-sync/internal/handlers/rest/stops_get"
	"courier-sync/internal/handlers/rest/stops_sequence_post"
	"courier-sync/internal/handlers/rest/sync_drain_post"
	"courier-sync/internal/handlers/rest/sync_status_get"
	"courier-sync/internal/handlers/rest/tile_get"
	"courier-sync/internal/handlers/rest/tile_put"
	"courier-sync/internal/pkg/config"
	"courier-sync/internal/pkg/dotenv"
	metrics_system "courier-sync/internal/pkg/metrics"
	"courier-sync/internal/pkg/middlewares/graceful_shutdown"
	"courier-sync/internal/pkg/middlewares/metrics"
	"courier-sync/internal/pkg/middlewares/rate_limiter"
	"courier-sync/internal/pkg/middlewares/timeout"
	"courier-sync/internal/store"
	"courier-sync/pkg/logger"
	"courier-sync/pkg/logger/zap_adapter"
	"courier-sync/pkg/token_bucket"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.LogLevel)
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

	mainLog.Info("starting courier-sync agent",
		logger.NewField("store", cfg.Store.Path),
		logger.NewField("remote", cfg.Remote.BaseURL),
	)

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("agent failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdown contexts derive from context.Background() on purpose
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 2 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	localStore := store.New(&cfg.Store, log)
	if err := localStore.Open(ctx); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer func() {
		if err := localStore.Close(); err != nil {
			runLog.Error("failed to close store", logger.NewField("error", err))
		}
	}()

	agent, err := application.InitializeApplication(ctx, log, localStore, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	// Воркеры останавливаются вместе с ctx и должны завершиться до закрытия хранилища.
	defer func() {
		stop()
		agent.BackgroundWorkers.Wait()
	}()

	metrics_system.StartSystemMetricsCollector(ctx, filepath.Dir(cfg.Store.Path))

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, localStore, agent, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		// No WriteTimeout: /events keeps its connection and sets per-write deadlines.
		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, localStore),
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
	case err := <-pprofServerErr: // если pprof выключен, канал nil и кейс игнорируется
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
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

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	localStore *store.Store,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, localStore)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/stops", stops_get.New(log, app.ServiceStops)).Methods("GET")
	router.Handle("/stops", stop_post.New(log, app.ServiceStops)).Methods("POST")
	router.Handle("/stops/sequence", stops_sequence_post.New(log, app.ServiceSequencing)).Methods("POST")
	router.Handle("/stops/{id}", stop_patch.New(log, app.ServiceStops)).Methods("PATCH")
	router.Handle("/stops/{id}", stop_delete.New(log, app.ServiceStops)).Methods("DELETE")
	router.Handle("/stops/{id}/status", stop_status_patch.New(log, app.ServiceStops)).Methods("PATCH")
	router.Handle("/stops/{id}/set-current", stop_set_current_post.New(log, app.ServiceStops)).Methods("POST")
	router.Handle("/stops/{id}/packages", stop_packages_post.New(log, app.ServiceStops)).Methods("POST")

	router.Handle("/sectors", sectors_get.New(log, app.ServiceSequencing)).Methods("GET")
	router.Handle("/sectors", sector_post.New(log, app.ServiceSequencing)).Methods("POST")
	router.Handle("/sectors/{id}", sector_delete.New(log, app.ServiceSequencing)).Methods("DELETE")

	router.Handle("/itinerary", itinerary_get.New(log, app.ServiceItinerary)).Methods("GET")
	router.Handle("/itinerary", itinerary_post.New(log, app.ServiceItinerary)).Methods("POST")
	router.Handle("/itinerary/finalize", itinerary_finalize_post.New(log, app.ServiceItinerary)).Methods("POST")

	router.Handle("/sync/status", sync_status_get.New(log, app.ServiceSync, app.ServiceConnectivity)).Methods("GET")
	router.Handle("/sync/drain", sync_drain_post.New(log, app.ServiceSync)).Methods("POST")
	router.Handle("/connectivity", connectivity_put.New(log, app.ServiceConnectivity)).Methods("PUT")
	router.Handle("/location", location_put.New(log, app.ServiceLocation)).Methods("PUT")

	router.Handle("/settings", settings_get.New(log, app.ServiceSettings)).Methods("GET")
	router.Handle("/settings", settings_put.New(log, app.ServiceSettings)).Methods("PUT")
	router.Handle("/session", session_put.New(log, app.ServiceSettings)).Methods("PUT")

	router.Handle("/tiles/{z}/{x}/{y}", tile_get.New(log, app.ServiceOffline)).Methods("GET")
	router.Handle("/tiles/{z}/{x}/{y}", tile_put.New(log, app.ServiceOffline)).Methods("PUT")
	router.Handle("/offline-cities", offline_cities_get.New(log, app.ServiceOffline)).Methods("GET")
	router.Handle("/offline-cities", offline_city_post.New(log, app.ServiceOffline)).Methods("POST")

	router.Handle("/events", events_get.New(log, app.Events)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, localStore *store.Store) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, localStore)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
