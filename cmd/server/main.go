package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GiulianoD/vports/internal/config"
	"github.com/GiulianoD/vports/internal/database"
	"github.com/GiulianoD/vports/internal/handlers"
	"github.com/GiulianoD/vports/internal/logger"
	"github.com/GiulianoD/vports/internal/middleware"
	"github.com/GiulianoD/vports/internal/repository"
	"github.com/GiulianoD/vports/internal/services"
	"github.com/GiulianoD/vports/internal/storage"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting vports", map[string]interface{}{
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	// Ensure the record tables exist
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to run migrations", err, nil)
	}

	log.Info("Database ready", map[string]interface{}{
		"host":     cfg.Database.Host,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Create the upload store (uploads dir + staging area)
	store, err := storage.New(cfg.Upload)
	if err != nil {
		log.Fatal("Failed to initialize upload store", err, map[string]interface{}{
			"dir": cfg.Upload.Dir,
		})
	}

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS -> Metrics
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))
	router.Use(middleware.Metrics())

	// Templates and static assets for the admin UI and public forms
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "web/static")
	router.Static("/uploads", store.Dir())

	// Initialize repository and service layers
	vesselRepo := repository.NewVesselRepository(db)
	landingRepo := repository.NewLandingRepository(db)
	fisherRepo := repository.NewFisherRepository(db)

	vesselService := services.NewVesselService(vesselRepo, store, log)
	landingService := services.NewLandingService(landingRepo, vesselRepo, store, log)
	fisherService := services.NewFisherService(fisherRepo, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	vesselHandler := handlers.NewVesselHandler(vesselService)
	landingHandler := handlers.NewLandingHandler(landingService)
	fisherHandler := handlers.NewFisherHandler(fisherService)
	adminHandler := handlers.NewAdminHandler(vesselService, landingService, fisherService)

	// Register API routes
	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/database-info", healthHandler.DatabaseInfo)

		api.POST("/embarcacoes", vesselHandler.Submit)
		api.GET("/embarcacoes", vesselHandler.List)
		api.GET("/embarcacoes/export", vesselHandler.Export)
		api.GET("/embarcacoes/:id", vesselHandler.GetByID)
		api.PATCH("/embarcacoes/:id/status", vesselHandler.Review)
		api.GET("/embarcacoes-ativas", vesselHandler.ListActive)

		api.POST("/desembarques", landingHandler.Submit)
		api.GET("/desembarques", landingHandler.List)
		api.GET("/desembarques/export", landingHandler.Export)
		api.GET("/desembarques/:id", landingHandler.GetByID)
		api.PATCH("/desembarques/:id/status", landingHandler.Review)

		api.POST("/pescadores", fisherHandler.Submit)
		api.GET("/pescadores", fisherHandler.List)
		api.GET("/pescadores/export", fisherHandler.Export)
		api.GET("/pescadores/:id", fisherHandler.GetByID)
		api.PATCH("/pescadores/:id/status", fisherHandler.Review)
	}

	// Admin review UI and public forms (server-rendered)
	router.GET("/admin", adminHandler.Dashboard)
	router.GET("/admin/:dataset/:id", adminHandler.Detail)
	router.POST("/admin/:dataset/:id/review", adminHandler.Review)
	router.GET("/form/embarcacao", adminHandler.FormVessel)
	router.GET("/form/desembarque", adminHandler.FormLanding)
	router.GET("/form/pescadores", adminHandler.FormFisher)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
