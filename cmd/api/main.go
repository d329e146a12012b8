package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/agroexpo/expogan-backend/api/routes"
	"github.com/agroexpo/expogan-backend/internal/config"
	"github.com/agroexpo/expogan-backend/internal/handlers"
	"github.com/agroexpo/expogan-backend/internal/repositories"
	mongorepo "github.com/agroexpo/expogan-backend/internal/repositories/mongodb"
	"github.com/agroexpo/expogan-backend/internal/scoring"
	"github.com/agroexpo/expogan-backend/internal/services"
	"github.com/agroexpo/expogan-backend/pkg/mongodb"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(context.Background(), cfg.MongoDB.URI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var contestRepo repositories.ContestRepository = mongorepo.NewContestRepository(db)
	var categoryRepo repositories.CategoryRepository = mongorepo.NewCategoryRepository(db)
	var entryRepo repositories.EntryRepository = mongorepo.NewEntryRepository(db)
	var adminUserRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)

	// Services
	contestService := services.NewContestService(contestRepo, categoryRepo)
	entryService := services.NewEntryService(contestRepo, categoryRepo, entryRepo)
	resultsService := services.NewResultsService(contestRepo, categoryRepo, entryRepo, championAxis(cfg.Results.ChampionAxis))
	authService := services.NewAuthService(adminUserRepo, cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	contestHandler := handlers.NewContestHandler(contestService)
	entryHandler := handlers.NewEntryHandler(entryService)
	resultsHandler := handlers.NewResultsHandler(resultsService, cfg.Results.DefaultLimit)
	taxonomyHandler := handlers.NewTaxonomyHandler()

	router := routes.SetupRouter(cfg, authHandler, contestHandler, entryHandler, resultsHandler, taxonomyHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}

// championAxis maps the configured axis name to a grouping function
func championAxis(axis string) scoring.GroupKeyFunc {
	switch axis {
	case "species":
		return scoring.GroupBySpecies
	default:
		return scoring.GroupBySpeciesSex
	}
}

// setupLogger configures the default slog logger at the configured level
func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
