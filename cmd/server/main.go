package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"drivehub/internal/auth"
	"drivehub/internal/config"
	"drivehub/internal/handler"
	"drivehub/internal/identity"
	"drivehub/internal/middleware"
	"drivehub/internal/remote/googledrive"
	"drivehub/internal/repository/postgres"
	"drivehub/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Hierarchy settings (delimiter, path separator, walk depth)
	settings, err := config.LoadHierarchySettings()
	if err != nil {
		log.Fatalf("Failed to load hierarchy settings: %v", err)
	}

	// Session token service
	tokens, err := auth.NewTokenService(cfg.JWTSecret, logger)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	// OAuth identity provider
	identityProvider, err := identity.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, logger)
	if err != nil {
		log.Fatalf("Failed to create identity provider: %v", err)
	}

	// Remote drive provider
	ctx := context.Background()
	remoteProvider, err := googledrive.New(ctx, cfg.GoogleCredentialsJSON, logger)
	if err != nil {
		log.Fatalf("Failed to create drive client: %v", err)
	}

	// Create pgx connection pool
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	txManager := postgres.NewTransactionManager(pool)
	driveRepo := postgres.NewDriveRepository(repoConfig, txManager)
	folderRepo := postgres.NewFolderRepository(repoConfig)
	managerRepo := postgres.NewManagerRepository(repoConfig)
	syncRepo := postgres.NewSyncHistoryRepository(repoConfig)

	// Create services
	driveService := service.NewDriveService(driveRepo, managerRepo, remoteProvider, settings, cfg.RemoteTimeout, logger)
	folderService := service.NewFolderService(folderRepo, remoteProvider, settings, cfg.RemoteTimeout, logger)
	syncService := service.NewSyncService(syncRepo, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(identityProvider, tokens, cfg, logger)
	driveHandler := handler.NewDriveHandler(driveService, logger)
	folderHandler := handler.NewFolderHandler(folderService, logger)
	infoHandler := handler.NewInfoHandler(syncService, cfg, logger)

	logger.Info("services initialized")

	// API routes require a session token; everything else is open
	api := http.NewServeMux()
	api.HandleFunc("GET /api/shared-drives", driveHandler.ListDrives)
	api.HandleFunc("POST /api/shared-drives", driveHandler.CreateDrive)
	api.HandleFunc("GET /api/shared-drives/tree", driveHandler.GetDriveTree)
	api.HandleFunc("GET /api/shared-drives/{driveId}/folders", folderHandler.GetFolderTree)
	api.HandleFunc("POST /api/shared-drives/{driveId}/folders", folderHandler.CreateFolder)
	api.HandleFunc("GET /api/shared-drives/{driveId}/managers", driveHandler.ListManagers)
	api.HandleFunc("GET /api/sync-history", infoHandler.GetSyncHistory)
	api.HandleFunc("GET /api/user", infoHandler.GetUser)
	api.HandleFunc("GET /api/info", infoHandler.GetInfo)

	mux := http.NewServeMux()
	mux.Handle("/api/", middleware.AuthMiddleware(tokens)(api))

	// Auth flow and health check stay unauthenticated
	mux.HandleFunc("GET /auth/google", authHandler.Login)
	mux.HandleFunc("GET /auth/google/callback", authHandler.Callback)
	mux.HandleFunc("POST /auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /health", infoHandler.HealthCheck)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Logging → Recovery → Routes
	root = middleware.Recovery(logger)(root)
	root = middleware.RequestLogging(logger)(root)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
