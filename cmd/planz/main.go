package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/planz/planz/pkg/catalog"
	"github.com/planz/planz/pkg/clock"
	"github.com/planz/planz/pkg/collectors"
	"github.com/planz/planz/pkg/config"
	"github.com/planz/planz/pkg/discovery"
	"github.com/planz/planz/pkg/domain"
	"github.com/planz/planz/pkg/interfaces"
	"github.com/planz/planz/pkg/logger"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.New("info", "json").Fatal("failed to load config", zap.Error(err))
	}

	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zl.Sync()
	log := logger.NewZapAdapter(zl)

	if err := cfg.Validate(); err != nil {
		zl.Fatal("invalid configuration", zap.Error(err))
	}

	log.Info("starting PlanZ", map[string]interface{}{"config": configPath})

	loc, err := cfg.Catalog.Location()
	if err != nil {
		zl.Fatal("invalid catalog time zone", zap.Error(err))
	}
	clk := clock.NewSystem(loc)

	// Initialize database
	db, err := collectors.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		zl.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	eventRepo, err := collectors.NewEventRepository(db)
	if err != nil {
		zl.Fatal("failed to create event repository", zap.Error(err))
	}
	appInfoRepo, err := collectors.NewAppInfoRepository(db)
	if err != nil {
		zl.Fatal("failed to create app info repository", zap.Error(err))
	}

	if cfg.Catalog.SeedFile != "" {
		n, err := collectors.LoadSeedFile(context.Background(), cfg.Catalog.SeedFile, clk.Now(), eventRepo, appInfoRepo)
		if err != nil {
			zl.Fatal("failed to seed catalog", zap.Error(err))
		}
		log.Info("catalog seeded", map[string]interface{}{"events": n, "file": cfg.Catalog.SeedFile})
	}

	// Redis cache is optional; the catalog reads SQLite directly without it
	var source domain.CatalogSource = eventRepo
	var cache interfaces.CacheInvalidator
	if cfg.Redis.Enabled {
		rdb := collectors.NewRedis(cfg.Redis)
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx); err != nil {
			log.WithError(err).Warn("redis unavailable, cache will fall back to the database", nil)
		}
		cancel()

		cached := collectors.NewCachedSource(eventRepo, rdb, cfg.Catalog.CacheTTL(), log)
		source, cache = cached, cached
	}

	// Catalog snapshot and periodic refresh
	cat := catalog.New()
	refresher := catalog.NewRefresher(source, cat, clk, log, cfg.Catalog.RefreshTimeout())
	if _, err := refresher.Refresh(context.Background()); err != nil {
		log.WithError(err).Error("initial catalog load failed, serving 503 until the next refresh", nil)
	}
	if err := refresher.Start(cfg.Catalog.RefreshSchedule); err != nil {
		zl.Fatal("failed to schedule catalog refresh", zap.Error(err))
	}

	// Initialize services
	sessions := discovery.NewSessions(clk, cfg.Catalog.SessionIdle())
	eventService := interfaces.NewEventService(cat, appInfoRepo, sessions, clk, log)
	sessionService := interfaces.NewSessionService(sessions, cat, clk, log)
	adminService := interfaces.NewAdminService(eventRepo, appInfoRepo, cache, refresher, log)

	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@every 1m", func() { sessionService.Sweep() }); err != nil {
		zl.Fatal("failed to schedule session sweep", zap.Error(err))
	}
	sweeper.Start()

	// Initialize HTTP handlers
	requestTimeout := time.Duration(cfg.Server.RequestTimeout) * time.Second
	eventHandler := interfaces.NewEventHandler(eventService, requestTimeout)
	sessionHandler := interfaces.NewSessionHandler(sessionService, requestTimeout)
	adminHandler := interfaces.NewAdminHandler(adminService, requestTimeout)

	// Setup router
	router := mux.NewRouter()
	router.Use(interfaces.RequestLogger(log))
	eventHandler.RegisterRoutes(router)
	sessionHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if cat.Current() == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"loading"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, _ := route.GetPathTemplate()
		methods, _ := route.GetMethods()
		log.Debug("route registered", map[string]interface{}{"path": path, "methods": methods})
		return nil
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      interfaces.CORS(cfg.Server.AllowedOrigins)(router),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", map[string]interface{}{"port": cfg.Server.Port})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down", nil)

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown", nil)
	}
	sweeper.Stop()
	if err := refresher.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("catalog refresher did not stop in time", nil)
	}

	log.Info("server stopped", nil)
}
