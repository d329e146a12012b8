package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"github.com/agroexpo/expogan-backend/internal/config"
	"github.com/agroexpo/expogan-backend/internal/models"
	"github.com/agroexpo/expogan-backend/internal/repositories"
	"github.com/agroexpo/expogan-backend/pkg/jwt"
)

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// ErrInvalidCredentials is returned for any login failure; the cause is
// deliberately not distinguished to the caller
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthServiceImpl handles organizer authentication
type AuthServiceImpl struct {
	userRepo repositories.AdminUserRepository
	cfg      *config.Config
}

// NewAuthService creates a new AuthServiceImpl
func NewAuthService(userRepo repositories.AdminUserRepository, cfg *config.Config) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register creates a new organizer account
func (s *AuthServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, errors.New("an account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = "ORGANIZER"
	}
	user := &models.AdminUser{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Name:         req.Name,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		slog.Error("Failed to create admin user", "error", err, "email", req.Email)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	slog.Info("Admin user registered", "userId", user.ID, "role", user.Role)
	return user, nil
}

// Login verifies credentials and mints a session token
func (s *AuthServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		slog.Warn("Rejected login with bad password", "email", req.Email)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := jwt.Generate(jwt.Claims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
	}, s.cfg.JWT.Secret, time.Duration(s.cfg.JWT.ExpiresIn)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	user.LastLoginAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		slog.Warn("Failed to record last login", "error", err, "userId", user.ID)
	}

	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
