// internal/storage/artifact_store.go
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"go_accreditation/internal/middleware"
	"go_accreditation/internal/model"
)

const (
	// sourceBasename is the fixed name the uploaded artifact is stored under;
	// only the extension is taken from the original filename.
	sourceBasename = "source"
)

// Artifact is a resolved on-disk artifact, ready for http.ServeContent.
// Callers own File and must close it.
type Artifact struct {
	File        *os.File
	Filename    string
	ContentType string
	ModTime     time.Time
}

// ArtifactStore persists uploaded credential files under
// <root>/<tenant_slug>/<identifier>/source.<ext>.
type ArtifactStore struct {
	root       string
	allowedExt map[string]bool
}

func NewArtifactStore(root string, allowedExtensions []string) *ArtifactStore {
	allowed := make(map[string]bool, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	return &ArtifactStore{root: root, allowedExt: allowed}
}

// Root returns the configured storage root.
func (s *ArtifactStore) Root() string {
	return s.root
}

func (s *ArtifactStore) dir(slug string, identifier uuid.UUID) string {
	return filepath.Join(s.root, slug, identifier.String())
}

// EnsureTenantDir creates the tenant's namespace directory. Idempotent.
func (s *ArtifactStore) EnsureTenantDir(slug string) error {
	if err := os.MkdirAll(filepath.Join(s.root, slug), 0o755); err != nil {
		return fmt.Errorf("ArtifactStore.EnsureTenantDir: %w", err)
	}
	return nil
}

// Save validates the extension of originalName against the allow-list and
// writes the content as source.<ext> under the (slug, identifier) directory.
// Returns the stored filename.
func (s *ArtifactStore) Save(ctx context.Context, slug string, identifier uuid.UUID, content io.Reader, originalName string) (string, error) {
	logger := middleware.GetLogger(ctx)

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	if ext == "" || !s.allowedExt[ext] {
		logger.Warn("Rejected upload with disallowed extension",
			"original_name", originalName,
			"extension", ext,
		)
		return "", model.NewAppError(
			"UNSUPPORTED_FILE_TYPE",
			"Unsupported file type.",
			"file",
			model.ErrUnsupportedType,
		)
	}

	dir := s.dir(slug, identifier)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("Error creating artifact directory", "error", err, "dir", dir)
		return "", fmt.Errorf("ArtifactStore.Save: %w", err)
	}

	filename := sourceBasename + "." + ext
	dst := filepath.Join(dir, filename)

	f, err := os.Create(dst)
	if err != nil {
		logger.Error("Error creating artifact file", "error", err, "path", dst)
		return "", fmt.Errorf("ArtifactStore.Save: %w", err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(dst)
		logger.Error("Error writing artifact file", "error", err, "path", dst)
		return "", fmt.Errorf("ArtifactStore.Save: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("ArtifactStore.Save: %w", err)
	}

	return filename, nil
}

// Resolve opens the stored artifact for the (slug, identifier) pair. A missing
// directory or file is ErrNotFound: a registry row whose file was removed out
// of band surfaces here as a missing artifact, never as a crash.
func (s *ArtifactStore) Resolve(ctx context.Context, slug string, identifier uuid.UUID) (*Artifact, error) {
	logger := middleware.GetLogger(ctx)

	matches, err := filepath.Glob(filepath.Join(s.dir(slug, identifier), sourceBasename+".*"))
	if err != nil {
		return nil, fmt.Errorf("ArtifactStore.Resolve: %w", err)
	}
	if len(matches) == 0 {
		logger.Debug("Artifact not found on disk",
			"slug", slug,
			"identifier", identifier.String(),
		)
		return nil, model.ErrNotFound
	}
	path := matches[0]

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("ArtifactStore.Resolve: %w", err)
	}

	mtype, err := mimetype.DetectFile(path)
	contentType := "application/octet-stream"
	if err == nil {
		contentType = mtype.String()
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error opening artifact file", "error", err, "path", path)
		return nil, fmt.Errorf("ArtifactStore.Resolve: %w", err)
	}

	return &Artifact{
		File:        f,
		Filename:    filepath.Base(path),
		ContentType: contentType,
		ModTime:     info.ModTime(),
	}, nil
}

// Exists reports whether an artifact is present without opening it.
func (s *ArtifactStore) Exists(ctx context.Context, slug string, identifier uuid.UUID) bool {
	matches, err := filepath.Glob(filepath.Join(s.dir(slug, identifier), sourceBasename+".*"))
	return err == nil && len(matches) > 0
}

// Remove deletes the credential's directory and everything in it, including
// the cached QR image. Already-missing paths are not an error.
func (s *ArtifactStore) Remove(ctx context.Context, slug string, identifier uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	dir := s.dir(slug, identifier)
	if err := os.RemoveAll(dir); err != nil {
		logger.Error("Error removing artifact directory", "error", err, "dir", dir)
		return fmt.Errorf("ArtifactStore.Remove: %w", err)
	}
	return nil
}
