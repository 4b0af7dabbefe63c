//go:generate mockery --name CredentialService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"go_accreditation/internal/config"
	"go_accreditation/internal/middleware"
	"go_accreditation/internal/model"
	"go_accreditation/internal/repository"
	"go_accreditation/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CredentialService interface {
	CreateCredential(ctx context.Context, slug, title string, content io.Reader, originalName string) (*model.Credential, error)
	ListCredentials(ctx context.Context, slug string) ([]*model.Credential, error)
	ToggleCredential(ctx context.Context, slug string, identifier uuid.UUID) (*model.Credential, error)
	DeleteCredential(ctx context.Context, slug string, identifier uuid.UUID) error
}

type credentialService struct {
	db         *gorm.DB
	tenantRepo repository.TenantRepository
	credRepo   repository.CredentialRepository
	store      *storage.ArtifactStore
	qr         *storage.QRCache
	cfg        *config.Config
}

func NewCredentialService(db *gorm.DB, tenantRepo repository.TenantRepository, credRepo repository.CredentialRepository, store *storage.ArtifactStore, qr *storage.QRCache, cfg *config.Config) CredentialService {
	return &credentialService{
		db:         db,
		tenantRepo: tenantRepo,
		credRepo:   credRepo,
		store:      store,
		qr:         qr,
		cfg:        cfg,
	}
}

// CreateCredential stores the uploaded artifact, inserts the registry row and
// pre-warms the QR cache. The artifact is written before the row exists: a
// file without a row is recoverable residue, a row without a file is a
// verification failure.
func (s *credentialService) CreateCredential(ctx context.Context, slug, title string, content io.Reader, originalName string) (*model.Credential, error) {
	logger := middleware.GetLogger(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "Title must not be empty.", "title", model.ErrInvalidInput)
	}
	if content == nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "A file upload is required.", "file", model.ErrInvalidInput)
	}

	tenant, err := s.tenantRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}

	identifier := uuid.New()

	filename, err := s.store.Save(ctx, tenant.Slug, identifier, content, originalName)
	if err != nil {
		if errors.Is(err, model.ErrUnsupportedType) {
			return nil, err
		}
		logger.Error("Error storing artifact", "error", err, "identifier", identifier.String())
		return nil, model.ErrInternalServer
	}

	cred := &model.Credential{
		CredentialID: uuid.New(),
		Identifier:   identifier,
		TenantID:     tenant.TenantID,
		Title:        title,
		Filename:     filename,
		Active:       true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.credRepo.Create(ctx, tx, cred)
	})
	if err != nil {
		// compensate: the stored file must not outlive a failed insert
		if remErr := s.store.Remove(ctx, tenant.Slug, identifier); remErr != nil {
			logger.Error("Error removing artifact after failed insert", "error", remErr, "identifier", identifier.String())
		}
		logger.Error("Transaction failed for CreateCredential", "error", err)
		return nil, model.ErrInternalServer
	}

	// Best effort: a missing cache entry regenerates on first public read.
	publicURL := PublicVerificationURL(s.cfg.App.PublicBaseURL, identifier)
	if _, err := s.qr.GetOrCreate(ctx, tenant.Slug, identifier, publicURL); err != nil {
		logger.Warn("Could not pre-warm QR cache", "error", err, "identifier", identifier.String())
	}

	return cred, nil
}

func (s *credentialService) ListCredentials(ctx context.Context, slug string) ([]*model.Credential, error) {
	logger := middleware.GetLogger(ctx)

	tenant, err := s.tenantRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}

	creds, err := s.credRepo.FindByTenant(ctx, s.db, tenant.TenantID)
	if err != nil {
		logger.Error("Error listing credentials", "error", err)
		return nil, model.ErrInternalServer
	}
	return creds, nil
}

// findScoped resolves a credential by identifier and verifies it belongs to
// the slug's tenant. A mismatch is indistinguishable from absence.
func (s *credentialService) findScoped(ctx context.Context, db *gorm.DB, slug string, identifier uuid.UUID) (*model.Tenant, *model.Credential, error) {
	tenant, err := s.tenantRepo.FindBySlug(ctx, db, slug)
	if err != nil {
		return nil, nil, err
	}
	cred, err := s.credRepo.FindByIdentifier(ctx, db, identifier)
	if err != nil {
		return nil, nil, err
	}
	if cred.TenantID != tenant.TenantID {
		return nil, nil, model.ErrNotFound
	}
	return tenant, cred, nil
}

func (s *credentialService) ToggleCredential(ctx context.Context, slug string, identifier uuid.UUID) (*model.Credential, error) {
	logger := middleware.GetLogger(ctx)

	var toggled *model.Credential

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, cred, err := s.findScoped(ctx, tx, slug, identifier)
		if err != nil {
			return err
		}
		if err := s.credRepo.SetActive(ctx, tx, identifier, !cred.Active); err != nil {
			return err
		}
		toggled, err = s.credRepo.FindByIdentifier(ctx, tx, identifier)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for ToggleCredential", "error", err)
		return nil, model.ErrInternalServer
	}

	return toggled, nil
}

// DeleteCredential removes the registry row first, then the artifact
// directory. The public view flips to not-found the moment the transaction
// commits; a failed directory removal is logged and left as recoverable
// residue, never surfaced to the caller.
func (s *credentialService) DeleteCredential(ctx context.Context, slug string, identifier uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	var tenantSlug string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tenant, _, err := s.findScoped(ctx, tx, slug, identifier)
		if err != nil {
			return err
		}
		tenantSlug = tenant.Slug
		return s.credRepo.Delete(ctx, tx, identifier)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Transaction failed for DeleteCredential", "error", err)
		return model.ErrInternalServer
	}

	if err := s.store.Remove(ctx, tenantSlug, identifier); err != nil {
		logger.Error("Orphaned artifact directory left after delete",
			"error", err,
			"slug", tenantSlug,
			"identifier", identifier.String(),
		)
	}

	return nil
}
