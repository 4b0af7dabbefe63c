//go:generate mockery --name AdminUserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_accreditation/internal/middleware"
	"go_accreditation/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminUserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.AdminUser) error
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.AdminUser, error)
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.AdminUser, error)
	UpdatePassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, passwordHash string) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormAdminUserRepository struct{}

func NewGormAdminUserRepository() AdminUserRepository {
	return &gormAdminUserRepository{}
}

func (r *gormAdminUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.AdminUser) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		logger.Error("Error creating admin user in DB",
			"error", result.Error,
			"username", user.Username,
		)
		return fmt.Errorf("gormAdminUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAdminUserRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.AdminUser, error) {
	logger := middleware.GetLogger(ctx)
	var user model.AdminUser
	result := db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Admin user not found", "username", username)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding admin user in DB",
			"error", result.Error,
			"username", username,
		)
		return nil, fmt.Errorf("gormAdminUserRepository.FindByUsername: %w", result.Error)
	}
	return &user, nil
}

func (r *gormAdminUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.AdminUser, error) {
	var user model.AdminUser
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormAdminUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormAdminUserRepository) UpdatePassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, passwordHash string) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).
		Model(&model.AdminUser{}).
		Where("user_id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		logger.Error("Error updating admin password in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return fmt.Errorf("gormAdminUserRepository.UpdatePassword: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormAdminUserRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.AdminUser{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormAdminUserRepository.Count: %w", result.Error)
	}
	return count, nil
}
