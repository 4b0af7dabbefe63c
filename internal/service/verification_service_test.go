// internal/service/verification_service_test.go
package service

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_accreditation/internal/model"
)

func TestVerificationService_ResolvePublicView(t *testing.T) {
	ctx := context.Background()

	t.Run("active credential", func(t *testing.T) {
		env := setupTestEnv(t)
		_, err := env.tenants.CreateTenant(ctx, &model.CreateTenantRequest{Name: "Festival XYZ s.r.o."})
		require.NoError(t, err)
		cred, err := env.creds.CreateCredential(ctx, "festival-xyz-s-r-o", "Jan Novák – Crew", bytes.NewReader(pngBytes), "badge.png")
		require.NoError(t, err)

		view, err := env.verify.ResolvePublicView(ctx, cred.Identifier)
		require.NoError(t, err)
		assert.Equal(t, "Festival XYZ s.r.o.", view.TenantName)
		assert.Equal(t, "Jan Novák – Crew", view.Title)
		assert.True(t, view.Active)
		assert.Equal(t, model.StatusActive, view.Status)
		assert.Equal(t, "/uploads/festival-xyz-s-r-o/"+cred.Identifier.String()+"/source.png", view.FileURL)
		assert.Equal(t, "/qr/"+cred.Identifier.String()+".png", view.QRURL)
	})

	t.Run("inactive credential still resolves", func(t *testing.T) {
		env := setupTestEnv(t)
		_, err := env.tenants.CreateTenant(ctx, &model.CreateTenantRequest{Name: "Acme"})
		require.NoError(t, err)
		cred, err := env.creds.CreateCredential(ctx, "acme", "Crew", bytes.NewReader(pngBytes), "badge.png")
		require.NoError(t, err)
		_, err = env.creds.ToggleCredential(ctx, "acme", cred.Identifier)
		require.NoError(t, err)

		view, err := env.verify.ResolvePublicView(ctx, cred.Identifier)
		require.NoError(t, err)
		assert.False(t, view.Active)
		assert.Equal(t, model.StatusInactive, view.Status)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		env := setupTestEnv(t)

		_, err := env.verify.ResolvePublicView(ctx, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("deleted credential is indistinguishable from unknown", func(t *testing.T) {
		env := setupTestEnv(t)
		_, err := env.tenants.CreateTenant(ctx, &model.CreateTenantRequest{Name: "Acme"})
		require.NoError(t, err)
		cred, err := env.creds.CreateCredential(ctx, "acme", "Crew", bytes.NewReader(pngBytes), "badge.png")
		require.NoError(t, err)
		require.NoError(t, env.creds.DeleteCredential(ctx, "acme", cred.Identifier))

		_, deletedErr := env.verify.ResolvePublicView(ctx, cred.Identifier)
		_, unknownErr := env.verify.ResolvePublicView(ctx, uuid.New())
		assert.Equal(t, unknownErr, deletedErr)
	})

	t.Run("credential whose tenant row vanished reports not-found", func(t *testing.T) {
		env := setupTestEnv(t)
		_, err := env.tenants.CreateTenant(ctx, &model.CreateTenantRequest{Name: "Acme"})
		require.NoError(t, err)
		cred, err := env.creds.CreateCredential(ctx, "acme", "Crew", bytes.NewReader(pngBytes), "badge.png")
		require.NoError(t, err)

		// break referential integrity behind the registry's back
		require.NoError(t, env.db.Where("slug = ?", "acme").Delete(&model.Tenant{}).Error)

		_, err = env.verify.ResolvePublicView(ctx, cred.Identifier)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("artifact missing on disk", func(t *testing.T) {
		env := setupTestEnv(t)
		_, err := env.tenants.CreateTenant(ctx, &model.CreateTenantRequest{Name: "Acme"})
		require.NoError(t, err)
		cred, err := env.creds.CreateCredential(ctx, "acme", "Crew", bytes.NewReader(pngBytes), "badge.png")
		require.NoError(t, err)

		// out-of-band removal: the row survives, the view must not
		require.NoError(t, os.RemoveAll(filepath.Join(env.store.Root(), "acme", cred.Identifier.String())))

		_, err = env.verify.ResolvePublicView(ctx, cred.Identifier)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestVerificationService_ResolveArtifact(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)

	_, err := env.tenants.CreateTenant(ctx, &model.CreateTenantRequest{Name: "Acme"})
	require.NoError(t, err)
	cred, err := env.creds.CreateCredential(ctx, "acme", "Crew", bytes.NewReader(pngBytes), "badge.png")
	require.NoError(t, err)

	t.Run("serves the stored bytes", func(t *testing.T) {
		artifact, err := env.verify.ResolveArtifact(ctx, "acme", cred.Identifier, "source.png")
		require.NoError(t, err)
		defer artifact.File.Close()

		got, err := io.ReadAll(artifact.File)
		require.NoError(t, err)
		assert.Equal(t, pngBytes, got)
		assert.Equal(t, "image/png", artifact.ContentType)
	})

	t.Run("filename must match exactly", func(t *testing.T) {
		_, err := env.verify.ResolveArtifact(ctx, "acme", cred.Identifier, "source.pdf")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := env.verify.ResolveArtifact(ctx, "acme", uuid.New(), "source.png")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestVerificationService_QRCode(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)

	_, err := env.tenants.CreateTenant(ctx, &model.CreateTenantRequest{Name: "Acme"})
	require.NoError(t, err)
	cred, err := env.creds.CreateCredential(ctx, "acme", "Crew", bytes.NewReader(pngBytes), "badge.png")
	require.NoError(t, err)

	t.Run("serves the cached image", func(t *testing.T) {
		first, err := env.verify.QRCode(ctx, cred.Identifier)
		require.NoError(t, err)
		require.NotEmpty(t, first)

		second, err := env.verify.QRCode(ctx, cred.Identifier)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("regenerates after cache loss", func(t *testing.T) {
		first, err := env.verify.QRCode(ctx, cred.Identifier)
		require.NoError(t, err)

		cached := filepath.Join(env.store.Root(), "acme", cred.Identifier.String(), "qr.png")
		require.NoError(t, os.Remove(cached))

		again, err := env.verify.QRCode(ctx, cred.Identifier)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := env.verify.QRCode(ctx, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestPublicVerificationURL(t *testing.T) {
	id := uuid.MustParse("2b7e1c1e-9a5f-4f6e-8a2d-0c3b4d5e6f70")

	tests := []struct {
		name string
		base string
		want string
	}{
		{name: "absolute base", base: "https://badges.example.com", want: "https://badges.example.com/a/2b7e1c1e-9a5f-4f6e-8a2d-0c3b4d5e6f70"},
		{name: "trailing slash trimmed", base: "https://badges.example.com/", want: "https://badges.example.com/a/2b7e1c1e-9a5f-4f6e-8a2d-0c3b4d5e6f70"},
		{name: "empty base falls back to relative", base: "", want: "/a/2b7e1c1e-9a5f-4f6e-8a2d-0c3b4d5e6f70"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicVerificationURL(tt.base, id))
		})
	}
}
