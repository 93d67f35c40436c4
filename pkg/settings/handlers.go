// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package settings

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/workforce-service/internal/http/types"
	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/tracing"
	internalTypes "github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authentication"
	"github.com/canonical/workforce-service/pkg/authorization"
)

type CompanySettingsRequest struct {
	CompanyName  string `json:"company_name" validate:"required,max=200"`
	Address      string `json:"address" validate:"max=500"`
	Timezone     string `json:"timezone" validate:"required,max=100"`
	WeekStartsOn string `json:"week_starts_on" validate:"required,oneof=monday sunday"`
}

type API struct {
	service ServiceInterface
	authz   *authorization.Middleware

	validate *validator.Validate
	tracer   tracing.TracingInterface
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, authz *authorization.Middleware, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		authz:    authz,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.With(a.authz.RequirePermissions(authorization.PermCompanySettingsRead)).
		Get("/api/v1/settings/company", a.getCompanySettings)
	mux.With(a.authz.RequirePermissions(authorization.PermCompanySettingsWrite)).
		Put("/api/v1/settings/company", a.updateCompanySettings)
}

func (a *API) getCompanySettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "settings.API.getCompanySettings")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	companySettings, err := a.service.GetCompanySettings(ctx, principal.TenantID)
	if err != nil {
		a.logger.Errorf("failed to get company settings: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	types.WriteJSON(w, http.StatusOK, companySettings)
}

func (a *API) updateCompanySettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "settings.API.updateCompanySettings")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req CompanySettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	companySettings, err := a.service.UpdateCompanySettings(ctx, &internalTypes.CompanySettings{
		TenantID:     principal.TenantID,
		CompanyName:  req.CompanyName,
		Address:      req.Address,
		Timezone:     req.Timezone,
		WeekStartsOn: req.WeekStartsOn,
	})
	if err != nil {
		a.logger.Errorf("failed to update company settings: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	types.WriteJSON(w, http.StatusOK, companySettings)
}
