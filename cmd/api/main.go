package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shelfwise/inventory-api/internal/config"
	"github.com/shelfwise/inventory-api/internal/database"
	"github.com/shelfwise/inventory-api/internal/handler"
	"github.com/shelfwise/inventory-api/internal/middleware"
	"github.com/shelfwise/inventory-api/internal/service"
	"github.com/shelfwise/inventory-api/internal/storage"
	"github.com/shelfwise/inventory-api/internal/store"
	"github.com/shelfwise/inventory-api/internal/utils"
)

// main is the application entrypoint for the inventory API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Str("backend", cfg.Storage.Backend).Msg("starting inventory api")

	utils.InitJWT(cfg.JWTSecret)

	// 3. Open the persistence backend
	kv, closeKV, err := openStorage(cfg)
	if err != nil {
		log.Error().Err(err).Msg("storage initialization failed")
		fmt.Fprintf(os.Stderr, "storage initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer closeKV()

	// 4. Initialize the store; falls back to seed data, never fails outward
	st := store.New(kv, cfg.Storage.Key)
	st.Initialize(context.Background())

	// 5. Initialize services
	inventorySvc := service.NewInventoryService(st)
	authSvc := service.NewAuthService(&cfg.Admin)

	// 6. Initialize handlers and middleware
	loginLimiter := middleware.NewLoginRateLimiter()
	inventoryHandler := handler.NewInventoryHandler(st, inventorySvc)
	authHandler := handler.NewAuthHandler(authSvc, loginLimiter)
	healthHandler := handler.NewHealthHandler(st, cfg.Storage.Backend)
	jwtMw := middleware.NewJWTMiddleware()

	// 7. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedHosts))
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, inventoryHandler, authHandler, healthHandler, jwtMw)

	// 8. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 9. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 10. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// setupRoutes registers all routes. Reads are public, matching the open
// dashboard view; mutations require an admin token.
func setupRoutes(router *gin.Engine, inventory *handler.InventoryHandler, auth *handler.AuthHandler, health *handler.HealthHandler, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", health.GetHealth)
	router.POST("/v1/auth/login", auth.Login)

	v1 := router.Group("/v1")
	{
		v1.GET("/products", inventory.ListProducts)
		v1.GET("/products/categories", inventory.GetCategories)
		v1.GET("/products/:id", inventory.GetProduct)
		v1.GET("/stats", inventory.GetStats)
	}

	admin := router.Group("/v1")
	admin.Use(jwtMiddleware.Handle())
	{
		admin.POST("/products", inventory.CreateProduct)
		admin.PUT("/products/:id", inventory.UpdateProduct)
		admin.DELETE("/products/:id", inventory.DeleteProduct)
	}
}

// openStorage builds the configured KV backend. The returned close function
// is a no-op for backends without a connection to release.
func openStorage(cfg *config.Config) (storage.KV, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		kv, err := storage.NewFile(cfg.Storage.File)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() {}, nil

	case config.BackendRedis:
		kv, err := storage.NewRedis(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Msg("redis connected successfully")
		return kv, func() { _ = kv.Close() }, nil

	case config.BackendPostgres:
		db, err := database.Connect(&cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := runMigrations(db.DB); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info().Msg("migrations completed successfully")
		return storage.NewPostgres(db), func() { _ = db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
