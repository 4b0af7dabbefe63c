package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PublicVerificationURL builds the absolute URL a QR code points at. With no
// base URL configured the path is returned relative, which still verifies
// when scanned on the same host.
func PublicVerificationURL(baseURL string, identifier uuid.UUID) string {
	path := "/a/" + identifier.String()
	if baseURL == "" {
		return path
	}
	return strings.TrimRight(baseURL, "/") + path
}

// ArtifactURL is the public path the stored file is served from.
func ArtifactURL(slug string, identifier uuid.UUID, filename string) string {
	return fmt.Sprintf("/uploads/%s/%s/%s", slug, identifier.String(), filename)
}

// QRImageURL is the public path of the credential's QR image.
func QRImageURL(identifier uuid.UUID) string {
	return "/qr/" + identifier.String() + ".png"
}
