// Command seed_admin creates the initial admin account. Run once against
// a fresh database:
//
//	ADMIN_EMAIL=admin@example.com ADMIN_PASSWORD=secret go run ./cmd/scripts
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"github.com/agroexpo/expogan-backend/internal/config"
	"github.com/agroexpo/expogan-backend/internal/models"
	mongorepo "github.com/agroexpo/expogan-backend/internal/repositories/mongodb"
	"github.com/agroexpo/expogan-backend/pkg/mongodb"
)

func main() {
	_ = godotenv.Load()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		slog.Error("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := mongorepo.NewAdminUserRepository(client.Database(cfg.MongoDB.Database))

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		slog.Error("Failed to check existing admin", "error", err)
		os.Exit(1)
	}
	if existing != nil {
		slog.Info("Admin account already exists", "email", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("Failed to hash password", "error", err)
		os.Exit(1)
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         os.Getenv("ADMIN_NAME"),
		Role:         "ADMIN",
	}
	if err := repo.Create(ctx, user); err != nil {
		slog.Error("Failed to create admin account", "error", err)
		os.Exit(1)
	}

	slog.Info("Admin account created", "email", email)
}
