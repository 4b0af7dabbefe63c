// internal/handlers/credential_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_accreditation/internal/model"
	"go_accreditation/internal/service"
	"go_accreditation/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxUploadBytes caps multipart parsing memory; larger files spill to disk.
const maxUploadBytes = 32 << 20

type CredentialHandler struct {
	service service.CredentialService
	logger  *slog.Logger
}

func NewCredentialHandler(s service.CredentialService, logger *slog.Logger) *CredentialHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CredentialHandler{
		service: s,
		logger:  logger,
	}
}

// CreateCredential handles the multipart upload (title + file) creating a new
// credential under the tenant in the URL.
func (h *CredentialHandler) CreateCredential(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateCredential"))

	slug := chi.URLParam(r, "slug")
	logger = logger.With(slog.String("slug", slug))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Expected a multipart form with 'title' and 'file'.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	title := r.FormValue("title")
	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn("Missing file in multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("VALIDATION_ERROR", "A file upload is required.", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer file.Close()

	cred, err := h.service.CreateCredential(r.Context(), slug, title, file, header.Filename)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrUnsupportedType) || errors.Is(err, model.ErrNotFound) {
			logger.Warn("Credential creation rejected", slog.Any("error", err))
		} else {
			logger.Error("Error creating credential in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Credential created successfully", slog.String("identifier", cred.Identifier.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, cred, logger)
}

// ListCredentials returns the tenant's credentials, newest first.
func (h *CredentialHandler) ListCredentials(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListCredentials"))

	slug := chi.URLParam(r, "slug")
	logger = logger.With(slog.String("slug", slug))

	creds, err := h.service.ListCredentials(r.Context(), slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Tenant not found", slog.Any("error", err))
		} else {
			logger.Error("Error listing credentials in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if creds == nil {
		creds = []*model.Credential{}
	}
	logger.Info("Credentials listed successfully", slog.Int("count", len(creds)))
	webutil.RespondWithJSON(w, http.StatusOK, creds, logger)
}

// ToggleCredential flips the credential's active flag.
func (h *CredentialHandler) ToggleCredential(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ToggleCredential"))

	slug := chi.URLParam(r, "slug")
	identifier, ok := h.parseIdentifier(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("slug", slug), slog.String("identifier", identifier.String()))

	cred, err := h.service.ToggleCredential(r.Context(), slug, identifier)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Credential not found for toggle", slog.Any("error", err))
		} else {
			logger.Error("Error toggling credential in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Credential toggled successfully", slog.Bool("active", cred.Active))
	webutil.RespondWithJSON(w, http.StatusOK, cred, logger)
}

// DeleteCredential removes the credential and its stored artifact.
func (h *CredentialHandler) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCredential"))

	slug := chi.URLParam(r, "slug")
	identifier, ok := h.parseIdentifier(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("slug", slug), slog.String("identifier", identifier.String()))

	if err := h.service.DeleteCredential(r.Context(), slug, identifier); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Credential not found for delete", slog.Any("error", err))
		} else {
			logger.Error("Error deleting credential in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Credential deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

func (h *CredentialHandler) parseIdentifier(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	identifierStr := chi.URLParam(r, "identifier")
	identifier, err := uuid.Parse(identifierStr)
	if err != nil {
		logger.Warn("Invalid identifier format in URL", slog.String("identifier_str", identifierStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "Identifier is not a valid UUID.", "identifier", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return identifier, true
}
