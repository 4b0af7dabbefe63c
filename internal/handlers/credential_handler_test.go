// internal/handlers/credential_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
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
)

func newCredentialRouter(m *mocks.CredentialService) *chi.Mux {
	handler := handlers.NewCredentialHandler(m, testLogger)
	router := chi.NewRouter()
	router.Route("/api/v1/tenants/{slug}/credentials", func(r chi.Router) {
		r.Post("/", handler.CreateCredential)
		r.Get("/", handler.ListCredentials)
		r.Post("/{identifier}/toggle", handler.ToggleCredential)
		r.Delete("/{identifier}", handler.DeleteCredential)
	})
	return router
}

// multipartBody builds a title+file upload form.
func multipartBody(t *testing.T, title, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if title != "" {
		require.NoError(t, writer.WriteField("title", title))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCredentialHandler_CreateCredential(t *testing.T) {
	t.Run("creates credential from upload", func(t *testing.T) {
		identifier := uuid.New()
		mockService := mocks.NewCredentialService(t)
		mockService.On("CreateCredential", mock.Anything, "acme", "Crew Badge", mock.Anything, "badge.png").
			Return(&model.Credential{
				Identifier: identifier,
				TenantID:   uuid.New(),
				Title:      "Crew Badge",
				Filename:   "source.png",
				Active:     true,
				CreatedAt:  time.Now(),
			}, nil).Once()
		router := newCredentialRouter(mockService)

		body, contentType := multipartBody(t, "Crew Badge", "badge.png", []byte("image bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/acme/credentials/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got model.Credential
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, identifier, got.Identifier)
		assert.True(t, got.Active)
	})

	t.Run("missing file part", func(t *testing.T) {
		mockService := mocks.NewCredentialService(t)
		router := newCredentialRouter(mockService)

		body, contentType := multipartBody(t, "Crew Badge", "", nil)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/acme/credentials/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var got model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "VALIDATION_ERROR", got.Error.Code)
		mockService.AssertNotCalled(t, "CreateCredential", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-multipart body", func(t *testing.T) {
		mockService := mocks.NewCredentialService(t)
		router := newCredentialRouter(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/acme/credentials/", bytes.NewReader([]byte(`{"title":"x"}`)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var got model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "INVALID_REQUEST_BODY", got.Error.Code)
	})

	t.Run("unsupported file type", func(t *testing.T) {
		mockService := mocks.NewCredentialService(t)
		mockService.On("CreateCredential", mock.Anything, "acme", "Crew Badge", mock.Anything, "payload.exe").
			Return(nil, model.NewAppError("UNSUPPORTED_FILE_TYPE", "Unsupported file type.", "file", model.ErrUnsupportedType)).Once()
		router := newCredentialRouter(mockService)

		body, contentType := multipartBody(t, "Crew Badge", "payload.exe", []byte("mz"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/acme/credentials/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var got model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "UNSUPPORTED_FILE_TYPE", got.Error.Code)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		mockService := mocks.NewCredentialService(t)
		mockService.On("CreateCredential", mock.Anything, "ghost", "Crew Badge", mock.Anything, "badge.png").
			Return(nil, model.ErrNotFound).Once()
		router := newCredentialRouter(mockService)

		body, contentType := multipartBody(t, "Crew Badge", "badge.png", []byte("image bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/ghost/credentials/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCredentialHandler_ListCredentials(t *testing.T) {
	t.Run("returns credentials", func(t *testing.T) {
		mockService := mocks.NewCredentialService(t)
		mockService.On("ListCredentials", mock.Anything, "acme").Return([]*model.Credential{
			{Identifier: uuid.New(), Title: "Newest", Active: true},
			{Identifier: uuid.New(), Title: "Oldest", Active: false},
		}, nil).Once()
		router := newCredentialRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/acme/credentials/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []*model.Credential
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Newest", got[0].Title)
	})

	t.Run("empty tenant renders a JSON array", func(t *testing.T) {
		mockService := mocks.NewCredentialService(t)
		mockService.On("ListCredentials", mock.Anything, "acme").Return(nil, nil).Once()
		router := newCredentialRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/acme/credentials/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestCredentialHandler_ToggleCredential(t *testing.T) {
	t.Run("toggles and returns the updated credential", func(t *testing.T) {
		identifier := uuid.New()
		mockService := mocks.NewCredentialService(t)
		mockService.On("ToggleCredential", mock.Anything, "acme", identifier).
			Return(&model.Credential{Identifier: identifier, Title: "Crew", Active: false}, nil).Once()
		router := newCredentialRouter(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/acme/credentials/"+identifier.String()+"/toggle", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.Credential
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.False(t, got.Active)
	})

	t.Run("malformed identifier", func(t *testing.T) {
		mockService := mocks.NewCredentialService(t)
		router := newCredentialRouter(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/acme/credentials/not-a-uuid/toggle", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var got model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "INVALID_URL_PARAM", got.Error.Code)
		mockService.AssertNotCalled(t, "ToggleCredential", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		identifier := uuid.New()
		mockService := mocks.NewCredentialService(t)
		mockService.On("ToggleCredential", mock.Anything, "acme", identifier).
			Return(nil, model.ErrNotFound).Once()
		router := newCredentialRouter(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/acme/credentials/"+identifier.String()+"/toggle", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCredentialHandler_DeleteCredential(t *testing.T) {
	t.Run("deletes and returns no content", func(t *testing.T) {
		identifier := uuid.New()
		mockService := mocks.NewCredentialService(t)
		mockService.On("DeleteCredential", mock.Anything, "acme", identifier).Return(nil).Once()
		router := newCredentialRouter(mockService)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/tenants/acme/credentials/"+identifier.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
	})

	t.Run("unknown identifier", func(t *testing.T) {
		identifier := uuid.New()
		mockService := mocks.NewCredentialService(t)
		mockService.On("DeleteCredential", mock.Anything, "acme", identifier).
			Return(model.ErrNotFound).Once()
		router := newCredentialRouter(mockService)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/tenants/acme/credentials/"+identifier.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
