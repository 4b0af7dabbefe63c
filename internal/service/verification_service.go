//go:generate mockery --name VerificationService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_accreditation/internal/config"
	"go_accreditation/internal/middleware"
	"go_accreditation/internal/model"
	"go_accreditation/internal/repository"
	"go_accreditation/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationService is the public read path. Every failure it returns is
// ErrNotFound: the caller can never distinguish a deleted credential from one
// that never existed, nor learn whether a tenant exists.
type VerificationService interface {
	ResolvePublicView(ctx context.Context, identifier uuid.UUID) (*model.PublicView, error)
	ResolveArtifact(ctx context.Context, slug string, identifier uuid.UUID, filename string) (*storage.Artifact, error)
	QRCode(ctx context.Context, identifier uuid.UUID) ([]byte, error)
}

type verificationService struct {
	db         *gorm.DB
	tenantRepo repository.TenantRepository
	credRepo   repository.CredentialRepository
	store      *storage.ArtifactStore
	qr         *storage.QRCache
	cfg        *config.Config
}

func NewVerificationService(db *gorm.DB, tenantRepo repository.TenantRepository, credRepo repository.CredentialRepository, store *storage.ArtifactStore, qr *storage.QRCache, cfg *config.Config) VerificationService {
	return &verificationService{
		db:         db,
		tenantRepo: tenantRepo,
		credRepo:   credRepo,
		store:      store,
		qr:         qr,
		cfg:        cfg,
	}
}

// lookup joins credential and owning tenant. A credential whose tenant is
// missing is a referential integrity fault, logged distinctly but still
// reported as not-found to the public caller.
func (s *verificationService) lookup(ctx context.Context, identifier uuid.UUID) (*model.Tenant, *model.Credential, error) {
	logger := middleware.GetLogger(ctx)

	cred, err := s.credRepo.FindByIdentifier(ctx, s.db, identifier)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, model.ErrNotFound
		}
		logger.Error("Error looking up credential", "error", err)
		return nil, nil, model.ErrNotFound
	}

	tenant, err := s.tenantRepo.FindByID(ctx, s.db, cred.TenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Error("Referential integrity fault: credential without tenant",
				"identifier", identifier.String(),
				"tenant_id", cred.TenantID.String(),
			)
		} else {
			logger.Error("Error looking up owning tenant", "error", err)
		}
		return nil, nil, model.ErrNotFound
	}

	return tenant, cred, nil
}

func (s *verificationService) ResolvePublicView(ctx context.Context, identifier uuid.UUID) (*model.PublicView, error) {
	logger := middleware.GetLogger(ctx)

	tenant, cred, err := s.lookup(ctx, identifier)
	if err != nil {
		return nil, err
	}

	// an unviewable credential is not verifiable
	if !s.store.Exists(ctx, tenant.Slug, identifier) {
		logger.Warn("Credential artifact missing on disk",
			"identifier", identifier.String(),
			"slug", tenant.Slug,
		)
		return nil, model.ErrNotFound
	}

	status := model.StatusInactive
	if cred.Active {
		status = model.StatusActive
	}

	return &model.PublicView{
		TenantName: tenant.Name,
		Title:      cred.Title,
		Active:     cred.Active,
		Status:     status,
		CreatedAt:  cred.CreatedAt,
		FileURL:    ArtifactURL(tenant.Slug, cred.Identifier, cred.Filename),
		QRURL:      QRImageURL(cred.Identifier),
	}, nil
}

// ResolveArtifact opens the stored file for public serving. The filename in
// the URL must match the stored one exactly.
func (s *verificationService) ResolveArtifact(ctx context.Context, slug string, identifier uuid.UUID, filename string) (*storage.Artifact, error) {
	artifact, err := s.store.Resolve(ctx, slug, identifier)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error resolving artifact", "error", err)
		return nil, model.ErrNotFound
	}
	if artifact.Filename != filename {
		artifact.File.Close()
		return nil, model.ErrNotFound
	}
	return artifact, nil
}

// QRCode returns the credential's QR proof image, generating it on first
// access.
func (s *verificationService) QRCode(ctx context.Context, identifier uuid.UUID) ([]byte, error) {
	tenant, _, err := s.lookup(ctx, identifier)
	if err != nil {
		return nil, err
	}

	publicURL := PublicVerificationURL(s.cfg.App.PublicBaseURL, identifier)
	return s.qr.GetOrCreate(ctx, tenant.Slug, identifier, publicURL)
}
