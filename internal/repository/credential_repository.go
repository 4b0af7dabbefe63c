//go:generate mockery --name CredentialRepository --output ./mocks --outpkg mocks --case=underscore
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

type CredentialRepository interface {
	Create(ctx context.Context, tx *gorm.DB, cred *model.Credential) error
	FindByIdentifier(ctx context.Context, db *gorm.DB, identifier uuid.UUID) (*model.Credential, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Credential, error)
	SetActive(ctx context.Context, tx *gorm.DB, identifier uuid.UUID, active bool) error
	Delete(ctx context.Context, tx *gorm.DB, identifier uuid.UUID) error
	CountByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (int64, error)
}

type gormCredentialRepository struct{}

func NewGormCredentialRepository() CredentialRepository {
	return &gormCredentialRepository{}
}

func (r *gormCredentialRepository) Create(ctx context.Context, tx *gorm.DB, cred *model.Credential) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(cred)
	if result.Error != nil {
		logger.Error("Error creating credential in DB",
			"error", result.Error,
			"tenant_id", cred.TenantID.String(),
			"identifier", cred.Identifier.String(),
		)
		return fmt.Errorf("gormCredentialRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCredentialRepository) FindByIdentifier(ctx context.Context, db *gorm.DB, identifier uuid.UUID) (*model.Credential, error) {
	logger := middleware.GetLogger(ctx)
	var cred model.Credential
	result := db.WithContext(ctx).Where("identifier = ?", identifier).First(&cred)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding credential by identifier in DB",
			"error", result.Error,
			"identifier", identifier.String(),
		)
		return nil, fmt.Errorf("gormCredentialRepository.FindByIdentifier: %w", result.Error)
	}
	return &cred, nil
}

func (r *gormCredentialRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Credential, error) {
	logger := middleware.GetLogger(ctx)
	var creds []*model.Credential
	// identifier tie-breaks equal timestamps so the admin listing order is stable
	result := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Order("identifier DESC").
		Find(&creds)
	if result.Error != nil {
		logger.Error("Error finding credentials by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormCredentialRepository.FindByTenant: %w", result.Error)
	}
	return creds, nil
}

// SetActive is idempotent: writing the current value succeeds without error.
// RowsAffected==0 therefore means the row is gone, which must surface as
// ErrNotFound so a toggle racing a delete cannot resurrect anything.
func (r *gormCredentialRepository) SetActive(ctx context.Context, tx *gorm.DB, identifier uuid.UUID, active bool) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.Credential{}).
		Where("identifier = ?", identifier).
		Update("active", active)
	if result.Error != nil {
		logger.Error("Error updating credential active flag in DB",
			"error", result.Error,
			"identifier", identifier.String(),
		)
		return fmt.Errorf("gormCredentialRepository.SetActive: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCredentialRepository) Delete(ctx context.Context, tx *gorm.DB, identifier uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("identifier = ?", identifier).Delete(&model.Credential{})
	if result.Error != nil {
		logger.Error("Error deleting credential in DB",
			"error", result.Error,
			"identifier", identifier.String(),
		)
		return fmt.Errorf("gormCredentialRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCredentialRepository) CountByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).
		Model(&model.Credential{}).
		Where("tenant_id = ?", tenantID).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting credentials by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return 0, fmt.Errorf("gormCredentialRepository.CountByTenant: %w", result.Error)
	}
	return count, nil
}
