// internal/handlers/tenant_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_accreditation/internal/model"
	"go_accreditation/internal/service"
	"go_accreditation/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type TenantHandler struct {
	service service.TenantService
	logger  *slog.Logger
}

func NewTenantHandler(s service.TenantService, logger *slog.Logger) *TenantHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TenantHandler{
		service: s,
		logger:  logger,
	}
}

// CreateTenant creates a new company. The slug is optional and derived from
// the name when absent.
func (h *TenantHandler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateTenant"))

	var req model.CreateTenantRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	tenant, err := h.service.CreateTenant(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Tenant already exists", slog.String("name", req.Name))
		} else {
			logger.Error("Error creating tenant in service", slog.Any("error", err), slog.Any("request", req))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Tenant created successfully", slog.String("tenant_id", tenant.TenantID.String()), slog.String("slug", tenant.Slug))
	webutil.RespondWithJSON(w, http.StatusCreated, tenant, logger)
}

// ListTenants returns all tenants with their credential counts.
func (h *TenantHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListTenants"))

	tenants, err := h.service.ListTenants(r.Context())
	if err != nil {
		logger.Error("Error listing tenants in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if tenants == nil {
		tenants = []*model.TenantSummary{}
	}
	logger.Info("Tenants listed successfully", slog.Int("count", len(tenants)))
	webutil.RespondWithJSON(w, http.StatusOK, tenants, logger)
}
