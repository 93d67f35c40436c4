// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schedules

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

type GroupRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=500"`
}

type ScheduleDayRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	DayType   string `json:"day_type" validate:"required"`
}

type ScheduleRequest struct {
	Days []ScheduleDayRequest `json:"days" validate:"required"`
}

type IDFormatRequest struct {
	IDPrefix     string `json:"id_prefix" validate:"required,max=10"`
	ZeroPadding  int    `json:"zero_padding" validate:"gte=1,lte=10"`
	NextSequence int    `json:"next_sequence" validate:"gte=1"`
}

// IDFormatResponse includes a rendered sample of the next employee number.
type IDFormatResponse struct {
	*internalTypes.EmployeeIDFormat
	Preview string `json:"preview"`
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
	mux.With(a.authz.RequirePermissions(authorization.PermWorkScheduleGroupsRead)).
		Get("/api/v1/employee/settings/work-schedule-groups", a.listGroups)
	mux.With(a.authz.RequirePermissions(authorization.PermWorkScheduleGroupsWrite)).
		Post("/api/v1/employee/settings/work-schedule-groups", a.createGroup)
	mux.With(a.authz.RequirePermissions(authorization.PermWorkScheduleGroupsWrite)).
		Put("/api/v1/employee/settings/work-schedule-groups/{id}", a.updateGroup)
	mux.With(a.authz.RequirePermissions(authorization.PermWorkScheduleGroupsWrite)).
		Delete("/api/v1/employee/settings/work-schedule-groups/{id}", a.deleteGroup)
	mux.With(a.authz.RequirePermissions(authorization.PermWorkScheduleGroupsRead)).
		Get("/api/v1/employee/settings/work-schedule-groups/{id}/schedule", a.getSchedule)
	mux.With(a.authz.RequirePermissions(authorization.PermWorkScheduleGroupsWrite)).
		Put("/api/v1/employee/settings/work-schedule-groups/{id}/schedule", a.replaceSchedule)
	mux.With(a.authz.RequirePermissions(authorization.PermEmployeeSettingsRead)).
		Get("/api/v1/employee/settings/id-format", a.getIDFormat)
	mux.With(a.authz.RequirePermissions(authorization.PermEmployeeSettingsWrite)).
		Put("/api/v1/employee/settings/id-format", a.updateIDFormat)
}

func (a *API) listGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "schedules.API.listGroups")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	groups, err := a.service.ListGroups(ctx, principal.TenantID)
	if err != nil {
		a.logger.Errorf("failed to list work schedule groups: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if groups == nil {
		groups = []*internalTypes.WorkScheduleGroup{}
	}

	types.WriteJSON(w, http.StatusOK, groups)
}

func (a *API) createGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "schedules.API.createGroup")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	req, ok := a.decodeGroup(w, r)
	if !ok {
		return
	}

	group, err := a.service.CreateGroup(ctx, principal.TenantID, req.Name, req.Description)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, group)
}

func (a *API) updateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "schedules.API.updateGroup")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	req, ok := a.decodeGroup(w, r)
	if !ok {
		return
	}

	group, err := a.service.UpdateGroup(ctx, principal.TenantID, chi.URLParam(r, "id"), req.Name, req.Description)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, group)
}

func (a *API) deleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "schedules.API.deleteGroup")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	if err := a.service.DeleteGroup(ctx, principal.TenantID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) getSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "schedules.API.getSchedule")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	days, err := a.service.GetSchedule(ctx, principal.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, days)
}

func (a *API) replaceSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "schedules.API.replaceSchedule")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	days := make([]internalTypes.WorkScheduleDay, 0, len(req.Days))
	for _, day := range req.Days {
		days = append(days, internalTypes.WorkScheduleDay{DayOfWeek: day.DayOfWeek, DayType: day.DayType})
	}

	week, err := a.service.ReplaceSchedule(ctx, principal.TenantID, chi.URLParam(r, "id"), days)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, week)
}

func (a *API) getIDFormat(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "schedules.API.getIDFormat")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	format, err := a.service.GetIDFormat(ctx, principal.TenantID)
	if err != nil {
		a.logger.Errorf("failed to get employee ID format: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	types.WriteJSON(w, http.StatusOK, IDFormatResponse{EmployeeIDFormat: format, Preview: PreviewID(format)})
}

func (a *API) updateIDFormat(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "schedules.API.updateIDFormat")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req IDFormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	format, err := a.service.UpdateIDFormat(ctx, &internalTypes.EmployeeIDFormat{
		TenantID:     principal.TenantID,
		IDPrefix:     req.IDPrefix,
		ZeroPadding:  req.ZeroPadding,
		NextSequence: req.NextSequence,
	})
	if err != nil {
		a.logger.Errorf("failed to update employee ID format: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	types.WriteJSON(w, http.StatusOK, IDFormatResponse{EmployeeIDFormat: format, Preview: PreviewID(format)})
}

func (a *API) decodeGroup(w http.ResponseWriter, r *http.Request) (*GroupRequest, bool) {
	var req GroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &req, true
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrGroupNotFound):
		types.WriteError(w, http.StatusNotFound, "work schedule group not found")
	case errors.Is(err, ErrDuplicateGroupName):
		types.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrGroupInUse):
		types.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidSchedule):
		types.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		a.logger.Errorf("employee settings request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
