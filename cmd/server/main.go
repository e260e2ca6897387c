package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"changelog/internal/auth"
	"changelog/internal/config"
	"changelog/internal/domain"
	"changelog/internal/handler"
	"changelog/internal/middleware"
	"changelog/internal/repository/postgres"
	"changelog/internal/service"
	serviceAuth "changelog/internal/service/auth"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
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

	policy := domain.ParsePolicy(cfg.OwnershipPolicy)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"ownership_policy", policy.String(),
	)

	// Create JWT token service (mints and verifies session tokens)
	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT service: %v", err)
	}

	// Create pgx connection pool
	ctx := context.Background()
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
	userRepo := postgres.NewUserRepository(repoConfig)
	productRepo := postgres.NewProductRepository(repoConfig)
	updateRepo := postgres.NewUpdateRepository(repoConfig)
	pointRepo := postgres.NewUpdatePointRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Ownership chain authorizer (update → product → user)
	authorizer := serviceAuth.NewOwnerAuthorizer(productRepo, updateRepo, pointRepo, policy)

	// Create services
	userService := service.NewUserService(userRepo, txManager, jwtService, policy, logger)
	sessionService := service.NewSessionService(userRepo, jwtService, logger)
	productService := service.NewProductService(productRepo, logger)
	updateService := service.NewUpdateService(updateRepo, authorizer, logger)
	pointService := service.NewUpdatePointService(pointRepo, authorizer, logger)

	// Create handlers
	userHandler := handler.NewUserHandler(userService, logger)
	sessionHandler := handler.NewSessionHandler(sessionService, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	updateHandler := handler.NewUpdateHandler(updateService, logger)
	pointHandler := handler.NewUpdatePointHandler(pointService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.Health)

	// User routes (POST /users is public signup)
	mux.HandleFunc("GET /users", userHandler.ListUsers)
	mux.HandleFunc("POST /users", userHandler.Signup)
	mux.HandleFunc("GET /users/{id}", userHandler.GetUser)
	mux.HandleFunc("PUT /users/{id}", userHandler.UpdateUser)
	mux.HandleFunc("DELETE /users/{id}", userHandler.DeleteUser)

	// Session routes
	mux.HandleFunc("POST /session/signin", sessionHandler.Signin)

	// Product routes
	mux.HandleFunc("GET /product", productHandler.ListProducts)
	mux.HandleFunc("POST /product", productHandler.CreateProduct)
	mux.HandleFunc("GET /product/{id}", productHandler.GetProduct)
	mux.HandleFunc("PUT /product/{id}", productHandler.UpdateProduct)
	mux.HandleFunc("DELETE /product/{id}", productHandler.DeleteProduct)

	// Update routes
	mux.HandleFunc("GET /updates", updateHandler.ListUpdates)
	mux.HandleFunc("POST /updates", updateHandler.CreateUpdate)
	mux.HandleFunc("GET /updates/{id}", updateHandler.GetUpdate)
	mux.HandleFunc("PUT /updates/{id}", updateHandler.UpdateUpdate)
	mux.HandleFunc("DELETE /updates/{id}", updateHandler.DeleteUpdate)

	// Update point routes
	mux.HandleFunc("GET /updatePoints", pointHandler.ListUpdatePoints)
	mux.HandleFunc("POST /updatePoints", pointHandler.CreateUpdatePoint)
	mux.HandleFunc("GET /updatePoints/{id}", pointHandler.GetUpdatePoint)
	mux.HandleFunc("PUT /updatePoints/{id}", pointHandler.UpdateUpdatePoint)
	mux.HandleFunc("DELETE /updatePoints/{id}", pointHandler.DeleteUpdatePoint)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	httpHandler = middleware.Auth(jwtService, logger,
		middleware.PublicRoute{Method: http.MethodPost, Path: "/users"},
		middleware.PublicRoute{Method: http.MethodPost, Path: "/session/signin"},
		middleware.PublicRoute{Method: http.MethodGet, Path: "/health"},
	)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
