// internal/handlers/public_handler.go
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

// PublicHandler is the unauthenticated verification surface. Everything that
// goes wrong here degrades to a generic not-found; no response distinguishes
// "never existed" from "deleted" or leaks whether a tenant exists.
type PublicHandler struct {
	service service.VerificationService
	logger  *slog.Logger
}

func NewPublicHandler(s service.VerificationService, logger *slog.Logger) *PublicHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PublicHandler{
		service: s,
		logger:  logger,
	}
}

func (h *PublicHandler) notFound(w http.ResponseWriter, logger *slog.Logger) {
	appErr := model.NewAppError("NOT_FOUND", "Not found.", "", model.ErrNotFound)
	webutil.HandleError(w, logger, appErr)
}

// VerifyCredential renders the public verification view for an identifier.
func (h *PublicHandler) VerifyCredential(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "VerifyCredential"))

	identifier, err := uuid.Parse(chi.URLParam(r, "identifier"))
	if err != nil {
		// a malformed identifier is indistinguishable from an unknown one
		h.notFound(w, logger)
		return
	}
	logger = logger.With(slog.String("identifier", identifier.String()))

	view, err := h.service.ResolvePublicView(r.Context(), identifier)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error resolving public view", slog.Any("error", err))
		}
		h.notFound(w, logger)
		return
	}

	logger.Info("Public verification served", slog.Bool("active", view.Active))
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// ServeArtifact streams the stored artifact bytes for public display.
func (h *PublicHandler) ServeArtifact(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ServeArtifact"))

	slug := chi.URLParam(r, "slug")
	filename := chi.URLParam(r, "filename")
	identifier, err := uuid.Parse(chi.URLParam(r, "identifier"))
	if err != nil {
		h.notFound(w, logger)
		return
	}

	artifact, err := h.service.ResolveArtifact(r.Context(), slug, identifier, filename)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error resolving artifact", slog.Any("error", err))
		}
		h.notFound(w, logger)
		return
	}
	defer artifact.File.Close()

	w.Header().Set("Content-Type", artifact.ContentType)
	http.ServeContent(w, r, artifact.Filename, artifact.ModTime, artifact.File)
}

// ServeQR returns the credential's QR proof image, cached or generated.
func (h *PublicHandler) ServeQR(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ServeQR"))

	identifier, err := uuid.Parse(chi.URLParam(r, "identifier"))
	if err != nil {
		h.notFound(w, logger)
		return
	}
	logger = logger.With(slog.String("identifier", identifier.String()))

	png, err := h.service.QRCode(r.Context(), identifier)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.notFound(w, logger)
			return
		}
		logger.Error("Error producing QR image", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
