// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_accreditation/internal/config"
	"go_accreditation/internal/handlers"
	"go_accreditation/internal/middleware"
	"go_accreditation/internal/repository"
	"go_accreditation/internal/service"
	"go_accreditation/internal/storage"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// temporary logger until config is loaded
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Database
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Storage
	store := storage.NewArtifactStore(config.Cfg.Storage.Root, config.Cfg.Storage.AllowedExtensions)
	qrCache := storage.NewQRCache(config.Cfg.Storage.Root)
	if err := os.MkdirAll(config.Cfg.Storage.Root, 0o755); err != nil {
		slog.Error("Error creating storage root", slog.Any("error", err))
		os.Exit(1)
	}

	// 4. Dependency injection
	tenantRepo := repository.NewGormTenantRepository()
	credRepo := repository.NewGormCredentialRepository()
	adminRepo := repository.NewGormAdminUserRepository()

	tenantService := service.NewTenantService(db, tenantRepo, credRepo, store)
	credentialService := service.NewCredentialService(db, tenantRepo, credRepo, store, qrCache, &config.Cfg)
	verificationService := service.NewVerificationService(db, tenantRepo, credRepo, store, qrCache, &config.Cfg)
	authService := service.NewAuthService(db, adminRepo, &config.Cfg)

	if err := authService.Bootstrap(context.Background()); err != nil {
		slog.Error("Error bootstrapping admin user", slog.Any("error", err))
		os.Exit(1)
	}

	tenantHandler := handlers.NewTenantHandler(tenantService, logger)
	credentialHandler := handlers.NewCredentialHandler(credentialService, logger)
	publicHandler := handlers.NewPublicHandler(verificationService, logger)
	authHandler := handlers.NewAuthHandler(authService, logger)

	// 5. Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Public verification surface
	r.Get("/a/{identifier}", publicHandler.VerifyCredential)
	r.Get("/uploads/{slug}/{identifier}/{filename}", publicHandler.ServeArtifact)
	r.Get("/qr/{identifier}.png", publicHandler.ServeQR)

	// Admin surface
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Put("/auth/password", authHandler.ChangePassword)

			r.Route("/tenants", func(r chi.Router) {
				r.Post("/", tenantHandler.CreateTenant)
				r.Get("/", tenantHandler.ListTenants)

				r.Route("/{slug}/credentials", func(r chi.Router) {
					r.Post("/", credentialHandler.CreateCredential)
					r.Get("/", credentialHandler.ListCredentials)
					r.Post("/{identifier}/toggle", credentialHandler.ToggleCredential)
					r.Delete("/{identifier}", credentialHandler.DeleteCredential)
				})
			})
		})
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 6. Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
