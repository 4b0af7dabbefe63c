//go:generate mockery --name TenantRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_accreditation/internal/middleware"
	"go_accreditation/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type TenantRepository interface {
	Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Tenant, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Tenant, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Tenant, error)
}

type gormTenantRepository struct{}

func NewGormTenantRepository() TenantRepository {
	return &gormTenantRepository{}
}

func (r *gormTenantRepository) Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(tenant)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn(
				"Duplicate key error on create tenant",
				"error", result.Error,
				"tenant_name", tenant.Name,
				"slug", tenant.Slug,
			)
			return model.ErrConflict
		}
		// sqlite (tests) reports constraint violations as gorm.ErrDuplicatedKey
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}

		logger.Error(
			"Error creating tenant in DB",
			"error", result.Error,
			"tenant_name", tenant.Name,
		)
		return fmt.Errorf("gormTenantRepository.Create: %w", result.Error)
	}

	return nil
}

func (r *gormTenantRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var tenant model.Tenant

	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&tenant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding tenant by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormTenantRepository.FindByID: %w", result.Error)
	}
	return &tenant, nil
}

func (r *gormTenantRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var tenant model.Tenant

	result := db.WithContext(ctx).Where("slug = ?", slug).First(&tenant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Tenant not found by slug", "slug", slug)
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding tenant by slug in DB",
			"error", result.Error,
			"slug", slug,
		)
		return nil, fmt.Errorf("gormTenantRepository.FindBySlug: %w", result.Error)
	}
	return &tenant, nil
}

func (r *gormTenantRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var tenant model.Tenant

	result := db.WithContext(ctx).Where("name = ?", name).First(&tenant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Tenant not found by name", "name", name)
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding tenant by name in DB",
			"error", result.Error,
			"name", name,
		)
		return nil, fmt.Errorf("gormTenantRepository.FindByName: %w", result.Error)
	}
	return &tenant, nil
}

func (r *gormTenantRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var tenants []*model.Tenant

	result := db.WithContext(ctx).Order("name ASC").Find(&tenants)
	if result.Error != nil {
		logger.Error("Error listing tenants in DB", "error", result.Error)
		return nil, fmt.Errorf("gormTenantRepository.FindAll: %w", result.Error)
	}
	return tenants, nil
}
