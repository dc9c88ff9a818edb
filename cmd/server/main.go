package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"launch-dashboard-service/internal/adapters/primary/http/handlers"
	"launch-dashboard-service/internal/adapters/primary/http/middleware"
	"launch-dashboard-service/internal/adapters/primary/http/web"
	"launch-dashboard-service/internal/adapters/primary/ws"
	"launch-dashboard-service/internal/adapters/secondary/datasource"
	"launch-dashboard-service/internal/adapters/secondary/prometheus"
	"launch-dashboard-service/internal/config"
	"launch-dashboard-service/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ============================================================================
	// Dataset (loaded once, read-only afterwards)
	// ============================================================================

	source, release, err := datasource.New(ctx, cfg.Dataset, cfg.Database)
	if err != nil {
		log.Fatalf("create dataset source: %v", err)
	}

	dataset, err := services.NewDatasetService(source, cfg.Dataset.Timeout).Load(ctx)
	release()
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters
	collector := prometheus.NewCollector()

	// Core Services (Application Layer)
	outcomeSvc := services.NewOutcomeService(dataset)
	payloadSvc := services.NewPayloadService(dataset)
	reportSvc := services.NewReportService(dataset)
	layoutSvc := services.NewLayoutService(dataset, services.SliderConfig{
		Min:      cfg.Dashboard.SliderMin,
		Max:      cfg.Dashboard.SliderMax,
		Step:     cfg.Dashboard.SliderStep,
		MarkStep: cfg.Dashboard.SliderMarkStep,
	})
	dashboardSvc := services.NewDashboardService(outcomeSvc, payloadSvc, collector)

	// Primary Adapters (HTTP Handlers, WebSocket sessions)
	h := handlers.New(dataset, outcomeSvc, payloadSvc, reportSvc, layoutSvc, cfg.Dashboard.ReportBandWidth)
	sessions := ws.NewServer(dashboardSvc, collector)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Metrics(collector), gin.Recovery())

	api := router.Group("/api/v1/dashboard")
	h.RegisterRoutes(api)
	api.GET("/ws", gin.WrapH(sessions))

	router.GET("/", web.Index)
	router.GET("/metrics", gin.WrapH(collector.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"records":  dataset.Len(),
			"sessions": sessions.Count(),
		})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(log.Fields{
			"addr":    addr,
			"records": dataset.Len(),
			"source":  dataset.Source(),
		}).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		sessions.Close()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
