//go:generate mockery --name TenantService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"go_accreditation/internal/middleware"
	"go_accreditation/internal/model"
	"go_accreditation/internal/repository"
	"go_accreditation/internal/storage"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type TenantService interface {
	CreateTenant(ctx context.Context, req *model.CreateTenantRequest) (*model.Tenant, error)
	ListTenants(ctx context.Context) ([]*model.TenantSummary, error)
	GetTenantBySlug(ctx context.Context, slugStr string) (*model.Tenant, error)
}

type tenantService struct {
	db         *gorm.DB
	tenantRepo repository.TenantRepository
	credRepo   repository.CredentialRepository
	store      *storage.ArtifactStore
}

func NewTenantService(db *gorm.DB, tenantRepo repository.TenantRepository, credRepo repository.CredentialRepository, store *storage.ArtifactStore) TenantService {
	return &tenantService{
		db:         db,
		tenantRepo: tenantRepo,
		credRepo:   credRepo,
		store:      store,
	}
}

// DeriveSlug turns a tenant name into its URL-safe slug: lowercase,
// non-alphanumeric runs collapsed to single hyphens, trimmed. An empty result
// (e.g. a name of only symbols) falls back to a short random token so the
// slug is never empty.
func DeriveSlug(name string) string {
	s := slug.Make(name)
	if s == "" {
		s = uuid.New().String()[:8]
	}
	return s
}

func (s *tenantService) CreateTenant(ctx context.Context, req *model.CreateTenantRequest) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "Tenant name must not be empty.", "name", model.ErrInvalidInput)
	}

	slugStr := strings.TrimSpace(req.Slug)
	if slugStr == "" {
		slugStr = DeriveSlug(name)
	} else {
		// explicit slugs are normalized the same way derived ones are
		slugStr = DeriveSlug(slugStr)
	}

	var createdTenant *model.Tenant

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.tenantRepo.FindByName(ctx, tx, name)
		if err == nil {
			logger.Warn("Tenant name already exists", "name", name)
			return model.NewAppError("DUPLICATE_NAME", "A tenant with this name already exists.", "name", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check tenant name existence", "error", err)
			return model.ErrInternalServer
		}

		_, err = s.tenantRepo.FindBySlug(ctx, tx, slugStr)
		if err == nil {
			logger.Warn("Tenant slug already exists", "slug", slugStr)
			return model.NewAppError("DUPLICATE_SLUG", "A tenant with this slug already exists.", "slug", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check tenant slug existence", "error", err)
			return model.ErrInternalServer
		}

		tenant := &model.Tenant{
			TenantID: uuid.New(),
			Name:     name,
			Slug:     slugStr,
		}
		if err := s.tenantRepo.Create(ctx, tx, tenant); err != nil {
			// the unique constraints catch what the pre-checks raced past
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_TENANT", "A tenant with this name or slug already exists.", "", model.ErrConflict)
			}
			return model.ErrInternalServer
		}

		createdTenant = tenant
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		logger.Error("Transaction failed for CreateTenant", "error", err)
		return nil, model.ErrInternalServer
	}

	// Pre-create the tenant's namespace directory. Failure is recoverable:
	// Save creates intermediate directories anyway.
	if err := s.store.EnsureTenantDir(createdTenant.Slug); err != nil {
		logger.Warn("Could not pre-create tenant storage directory", "error", err, "slug", createdTenant.Slug)
	}

	return createdTenant, nil
}

func (s *tenantService) ListTenants(ctx context.Context) ([]*model.TenantSummary, error) {
	logger := middleware.GetLogger(ctx)

	tenants, err := s.tenantRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Error listing tenants", "error", err)
		return nil, model.ErrInternalServer
	}

	summaries := make([]*model.TenantSummary, 0, len(tenants))
	for _, t := range tenants {
		count, err := s.credRepo.CountByTenant(ctx, s.db, t.TenantID)
		if err != nil {
			logger.Error("Error counting credentials for tenant", "error", err, "tenant_id", t.TenantID.String())
			return nil, model.ErrInternalServer
		}
		summaries = append(summaries, &model.TenantSummary{
			TenantID:        t.TenantID,
			Name:            t.Name,
			Slug:            t.Slug,
			CredentialCount: count,
			CreatedAt:       t.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *tenantService) GetTenantBySlug(ctx context.Context, slugStr string) (*model.Tenant, error) {
	tenant, err := s.tenantRepo.FindBySlug(ctx, s.db, slugStr)
	if err != nil {
		return nil, err
	}
	return tenant, nil
}
