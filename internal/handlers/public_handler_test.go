// internal/handlers/public_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_accreditation/internal/handlers"
	"go_accreditation/internal/model"
	"go_accreditation/internal/service/mocks"
	"go_accreditation/internal/storage"
)

func newPublicRouter(m *mocks.VerificationService) *chi.Mux {
	handler := handlers.NewPublicHandler(m, testLogger)
	router := chi.NewRouter()
	router.Get("/a/{identifier}", handler.VerifyCredential)
	router.Get("/uploads/{slug}/{identifier}/{filename}", handler.ServeArtifact)
	router.Get("/qr/{identifier}.png", handler.ServeQR)
	return router
}

func TestPublicHandler_VerifyCredential(t *testing.T) {
	t.Run("renders the public view", func(t *testing.T) {
		identifier := uuid.New()
		mockService := mocks.NewVerificationService(t)
		mockService.On("ResolvePublicView", mock.Anything, identifier).
			Return(&model.PublicView{
				TenantName: "Festival XYZ s.r.o.",
				Title:      "Jan Novák – Crew",
				Active:     true,
				Status:     model.StatusActive,
				CreatedAt:  time.Now(),
				FileURL:    "/uploads/festival-xyz-s-r-o/" + identifier.String() + "/source.png",
				QRURL:      "/qr/" + identifier.String() + ".png",
			}, nil).Once()
		router := newPublicRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/a/"+identifier.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.PublicView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Festival XYZ s.r.o.", got.TenantName)
		assert.Equal(t, model.StatusActive, got.Status)
		assert.True(t, got.Active)
	})

	t.Run("inactive credential still renders", func(t *testing.T) {
		identifier := uuid.New()
		mockService := mocks.NewVerificationService(t)
		mockService.On("ResolvePublicView", mock.Anything, identifier).
			Return(&model.PublicView{TenantName: "Acme", Title: "Crew", Status: model.StatusInactive}, nil).Once()
		router := newPublicRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/a/"+identifier.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.PublicView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.False(t, got.Active)
		assert.Equal(t, model.StatusInactive, got.Status)
	})

	t.Run("malformed identifier never reaches the service", func(t *testing.T) {
		mockService := mocks.NewVerificationService(t)
		router := newPublicRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/a/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertNotCalled(t, "ResolvePublicView", mock.Anything, mock.Anything)
	})

	t.Run("unknown and malformed identifiers are indistinguishable", func(t *testing.T) {
		identifier := uuid.New()
		mockService := mocks.NewVerificationService(t)
		mockService.On("ResolvePublicView", mock.Anything, identifier).
			Return(nil, model.ErrNotFound).Once()
		router := newPublicRouter(mockService)

		unknownReq := httptest.NewRequest(http.MethodGet, "/a/"+identifier.String(), nil)
		unknownRec := httptest.NewRecorder()
		router.ServeHTTP(unknownRec, unknownReq)

		malformedReq := httptest.NewRequest(http.MethodGet, "/a/not-a-uuid", nil)
		malformedRec := httptest.NewRecorder()
		router.ServeHTTP(malformedRec, malformedReq)

		assert.Equal(t, http.StatusNotFound, unknownRec.Code)
		assert.Equal(t, unknownRec.Body.String(), malformedRec.Body.String())
	})
}

func TestPublicHandler_ServeArtifact(t *testing.T) {
	t.Run("streams the stored bytes", func(t *testing.T) {
		identifier := uuid.New()
		content := []byte("artifact payload")

		path := filepath.Join(t.TempDir(), "source.png")
		require.NoError(t, os.WriteFile(path, content, 0o644))
		file, err := os.Open(path)
		require.NoError(t, err)

		mockService := mocks.NewVerificationService(t)
		mockService.On("ResolveArtifact", mock.Anything, "acme", identifier, "source.png").
			Return(&storage.Artifact{
				File:        file,
				Filename:    "source.png",
				ContentType: "image/png",
				ModTime:     time.Now(),
			}, nil).Once()
		router := newPublicRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/uploads/acme/"+identifier.String()+"/source.png", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, content, rec.Body.Bytes())
	})

	t.Run("unknown artifact", func(t *testing.T) {
		identifier := uuid.New()
		mockService := mocks.NewVerificationService(t)
		mockService.On("ResolveArtifact", mock.Anything, "acme", identifier, "source.png").
			Return(nil, model.ErrNotFound).Once()
		router := newPublicRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/uploads/acme/"+identifier.String()+"/source.png", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed identifier", func(t *testing.T) {
		mockService := mocks.NewVerificationService(t)
		router := newPublicRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/uploads/acme/not-a-uuid/source.png", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertNotCalled(t, "ResolveArtifact", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPublicHandler_ServeQR(t *testing.T) {
	t.Run("serves the QR image", func(t *testing.T) {
		identifier := uuid.New()
		png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x01}
		mockService := mocks.NewVerificationService(t)
		mockService.On("QRCode", mock.Anything, identifier).Return(png, nil).Once()
		router := newPublicRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/qr/"+identifier.String()+".png", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("unknown identifier", func(t *testing.T) {
		identifier := uuid.New()
		mockService := mocks.NewVerificationService(t)
		mockService.On("QRCode", mock.Anything, identifier).Return(nil, model.ErrNotFound).Once()
		router := newPublicRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/qr/"+identifier.String()+".png", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
