// internal/storage/qr_cache.go
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"go_accreditation/internal/middleware"
	"go_accreditation/internal/model"
)

const (
	qrFilename = "qr.png"
	qrSizePx   = 256
)

// QRCache serves the QR proof image for a credential, generating and caching
// it on first use. The image is a pure function of the public URL, so a
// cached copy is never stale and can always be regenerated after deletion.
type QRCache struct {
	root string
}

func NewQRCache(root string) *QRCache {
	return &QRCache{root: root}
}

func (c *QRCache) path(slug string, identifier uuid.UUID) string {
	return filepath.Join(c.root, slug, identifier.String(), qrFilename)
}

// GetOrCreate returns the cached QR PNG for the credential, encoding and
// persisting it first when absent. Concurrent first reads may both generate;
// they produce identical bytes and the rename makes last-writer-wins safe.
func (c *QRCache) GetOrCreate(ctx context.Context, slug string, identifier uuid.UUID, publicURL string) ([]byte, error) {
	logger := middleware.GetLogger(ctx)

	cached := c.path(slug, identifier)
	if png, err := os.ReadFile(cached); err == nil {
		return png, nil
	}

	png, err := qrcode.Encode(publicURL, qrcode.Medium, qrSizePx)
	if err != nil {
		logger.Error("Error encoding QR code",
			"error", err,
			"identifier", identifier.String(),
			"url", publicURL,
		)
		return nil, model.NewAppError(
			"QR_ENCODING_FAILED",
			"Could not generate QR code.",
			"",
			model.ErrInternalServer,
		)
	}

	if err := c.persist(cached, png); err != nil {
		// a failed cache write is not fatal, the image regenerates next time
		logger.Warn("Error persisting QR code cache",
			"error", err,
			"identifier", identifier.String(),
		)
	}

	return png, nil
}

func (c *QRCache) persist(path string, png []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("QRCache.persist: %w", err)
	}

	tmp, err := os.CreateTemp(dir, qrFilename+".tmp-*")
	if err != nil {
		return fmt.Errorf("QRCache.persist: %w", err)
	}
	if _, err := tmp.Write(png); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("QRCache.persist: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("QRCache.persist: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("QRCache.persist: %w", err)
	}
	return nil
}
