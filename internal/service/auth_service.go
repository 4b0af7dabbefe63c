//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_accreditation/internal/config"
	"go_accreditation/internal/middleware"
	"go_accreditation/internal/model"
	"go_accreditation/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
	Bootstrap(ctx context.Context) error
}

type authService struct {
	db       *gorm.DB
	userRepo repository.AdminUserRepository
	cfg      *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.AdminUserRepository, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Bootstrap creates the initial admin user from config when no user exists
// yet. With no password configured, admin/admin is created and a warning is
// logged telling the operator to change it.
func (s *authService) Bootstrap(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	count, err := s.userRepo.Count(ctx, s.db)
	if err != nil {
		return fmt.Errorf("authService.Bootstrap: %w", err)
	}
	if count > 0 {
		return nil
	}

	password := s.cfg.Admin.Password
	if password == "" {
		password = "admin"
		logger.Warn("No admin password configured, bootstrapping with default credentials; change the password immediately",
			"username", s.cfg.Admin.Username,
		)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("authService.Bootstrap: %w", err)
	}

	user := &model.AdminUser{
		UserID:       uuid.New(),
		Username:     s.cfg.Admin.Username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		return fmt.Errorf("authService.Bootstrap: %w", err)
	}

	logger.Info("Bootstrapped admin user", "username", user.Username)
	return nil
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	invalidCredentials := model.NewAppError("INVALID_CREDENTIALS", "Invalid username or password.", "", model.ErrForbidden)

	user, err := s.userRepo.FindByUsername(ctx, s.db, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// same response as a wrong password, no username probing
			return nil, invalidCredentials
		}
		logger.Error("Error finding admin user for login", "error", err)
		return nil, model.ErrInternalServer
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Failed login attempt", "username", req.Username)
		return nil, invalidCredentials
	}

	now := time.Now()
	claims := model.JWTCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.ExpireMinutes) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Error signing access token", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Admin logged in", "username", user.Username)
	return &model.LoginResponse{AccessToken: signed}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	logger := middleware.GetLogger(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error hashing new password", "error", err)
		return model.ErrInternalServer
	}

	if err := s.userRepo.UpdatePassword(ctx, s.db, userID, string(hash)); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		logger.Error("Error updating admin password", "error", err)
		return model.ErrInternalServer
	}

	logger.Info("Admin password changed", "user_id", userID.String())
	return nil
}
