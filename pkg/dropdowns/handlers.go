// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dropdowns

import (
	"encoding/json"
	"errors"
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

type OptionRequest struct {
	Category  string `json:"category" validate:"required,max=100"`
	Value     string `json:"value" validate:"required,max=200"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
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
	mux.With(a.authz.RequirePermissions(authorization.PermDropdownsRead)).
		Get("/api/v1/dropdown-options", a.listOptions)
	mux.With(a.authz.RequirePermissions(authorization.PermDropdownsWrite)).
		Post("/api/v1/dropdown-options", a.createOption)
	mux.With(a.authz.RequirePermissions(authorization.PermDropdownsWrite)).
		Delete("/api/v1/dropdown-options/{id}", a.deleteOption)
}

func (a *API) listOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "dropdowns.API.listOptions")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	options, err := a.service.ListOptions(ctx, principal.TenantID, r.URL.Query().Get("category"))
	if err != nil {
		a.logger.Errorf("failed to list dropdown options: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if options == nil {
		options = []*internalTypes.DropdownOption{}
	}

	types.WriteJSON(w, http.StatusOK, options)
}

func (a *API) createOption(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "dropdowns.API.createOption")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req OptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	option, err := a.service.CreateOption(ctx, &internalTypes.DropdownOption{
		TenantID:  principal.TenantID,
		Category:  req.Category,
		Value:     req.Value,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateOption) {
			types.WriteError(w, http.StatusConflict, err.Error())
			return
		}
		a.logger.Errorf("failed to create dropdown option: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	types.WriteJSON(w, http.StatusCreated, option)
}

func (a *API) deleteOption(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "dropdowns.API.deleteOption")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	if err := a.service.DeleteOption(ctx, principal.TenantID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrOptionNotFound) {
			types.WriteError(w, http.StatusNotFound, "dropdown option not found")
			return
		}
		a.logger.Errorf("failed to delete dropdown option: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
