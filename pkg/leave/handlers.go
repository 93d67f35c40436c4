// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leave

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/workforce-service/internal/http/types"
	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/tracing"
	internalTypes "github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authentication"
	"github.com/canonical/workforce-service/pkg/authorization"
)

type LeaveTypeRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	DefaultDays int    `json:"default_days" validate:"gte=0,lte=366"`
	Paid        bool   `json:"paid"`
}

type EntitlementRequest struct {
	EmployeeID  string `json:"employee_id" validate:"required,uuid"`
	LeaveTypeID string `json:"leave_type_id" validate:"required,uuid"`
	Year        int    `json:"year" validate:"required,gte=2000,lte=2200"`
	Days        int    `json:"days" validate:"gte=0,lte=366"`
}

type DefaultTierRequest struct {
	ServiceYear int     `json:"service_year" validate:"gte=0,lte=60"`
	Days        float64 `json:"days" validate:"gte=0,lte=366"`
}

type DefaultsRequest struct {
	LeaveTypeID string               `json:"leave_type_id" validate:"required,uuid"`
	Tiers       []DefaultTierRequest `json:"tiers" validate:"required,dive"`
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
	mux.With(a.authz.RequirePermissions(authorization.PermLeaveTypesRead)).
		Get("/api/v1/leave/types", a.listLeaveTypes)
	mux.With(a.authz.RequirePermissions(authorization.PermLeaveTypesWrite)).
		Post("/api/v1/leave/types", a.createLeaveType)
	mux.With(a.authz.RequirePermissions(authorization.PermLeaveTypesWrite)).
		Put("/api/v1/leave/types/{id}", a.updateLeaveType)
	mux.With(a.authz.RequirePermissions(authorization.PermLeaveTypesWrite)).
		Delete("/api/v1/leave/types/{id}", a.deleteLeaveType)

	mux.With(a.authz.RequirePermissions(authorization.PermLeaveEntitlementsRead)).
		Get("/api/v1/leave/entitlements", a.listEntitlements)
	mux.With(a.authz.RequirePermissions(authorization.PermLeaveEntitlementsWrite)).
		Put("/api/v1/leave/entitlements", a.setEntitlement)
	mux.With(a.authz.RequirePermissions(authorization.PermLeaveEntitlementsWrite)).
		Delete("/api/v1/leave/entitlements/{id}", a.deleteEntitlement)

	mux.With(a.authz.RequirePermissions(authorization.PermLeaveDefaultsRead)).
		Get("/api/v1/leave/defaults", a.listDefaults)
	mux.With(a.authz.RequirePermissions(authorization.PermLeaveDefaultsWrite)).
		Put("/api/v1/leave/defaults", a.replaceDefaults)
}

func (a *API) listLeaveTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leave.API.listLeaveTypes")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	leaveTypes, err := a.service.ListLeaveTypes(ctx, principal.TenantID)
	if err != nil {
		a.logger.Errorf("failed to list leave types: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if leaveTypes == nil {
		leaveTypes = []*internalTypes.LeaveType{}
	}

	types.WriteJSON(w, http.StatusOK, leaveTypes)
}

func (a *API) createLeaveType(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leave.API.createLeaveType")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req LeaveTypeRequest
	if !a.decode(w, r, &req) {
		return
	}

	leaveType, err := a.service.CreateLeaveType(ctx, principal.TenantID, req.Name, req.DefaultDays, req.Paid)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, leaveType)
}

func (a *API) updateLeaveType(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leave.API.updateLeaveType")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req LeaveTypeRequest
	if !a.decode(w, r, &req) {
		return
	}

	leaveType, err := a.service.UpdateLeaveType(ctx, principal.TenantID, chi.URLParam(r, "id"), req.Name, req.DefaultDays, req.Paid)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, leaveType)
}

func (a *API) deleteLeaveType(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leave.API.deleteLeaveType")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	if err := a.service.DeleteLeaveType(ctx, principal.TenantID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listEntitlements(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leave.API.listEntitlements")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	employeeID := r.URL.Query().Get("employee_id")
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	entitlements, err := a.service.ListEntitlements(ctx, principal.TenantID, employeeID, year)
	if err != nil {
		a.logger.Errorf("failed to list entitlements: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if entitlements == nil {
		entitlements = []*internalTypes.LeaveEntitlement{}
	}

	types.WriteJSON(w, http.StatusOK, entitlements)
}

func (a *API) setEntitlement(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leave.API.setEntitlement")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req EntitlementRequest
	if !a.decode(w, r, &req) {
		return
	}

	entitlement, err := a.service.SetEntitlement(ctx, &internalTypes.LeaveEntitlement{
		TenantID:    principal.TenantID,
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		Year:        req.Year,
		Days:        req.Days,
	})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, entitlement)
}

func (a *API) deleteEntitlement(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leave.API.deleteEntitlement")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	if err := a.service.DeleteEntitlement(ctx, principal.TenantID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listDefaults(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leave.API.listDefaults")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	defaults, err := a.service.ListDefaults(ctx, principal.TenantID, r.URL.Query().Get("leave_type_id"))
	if err != nil {
		a.logger.Errorf("failed to list leave defaults: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if defaults == nil {
		defaults = []*internalTypes.LeaveDefault{}
	}

	types.WriteJSON(w, http.StatusOK, defaults)
}

func (a *API) replaceDefaults(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leave.API.replaceDefaults")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req DefaultsRequest
	if !a.decode(w, r, &req) {
		return
	}

	tiers := make([]*internalTypes.LeaveDefault, 0, len(req.Tiers))
	for _, tier := range req.Tiers {
		tiers = append(tiers, &internalTypes.LeaveDefault{
			TenantID:    principal.TenantID,
			LeaveTypeID: req.LeaveTypeID,
			ServiceYear: tier.ServiceYear,
			Days:        tier.Days,
		})
	}

	defaults, err := a.service.ReplaceDefaults(ctx, principal.TenantID, req.LeaveTypeID, tiers)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	if defaults == nil {
		defaults = []*internalTypes.LeaveDefault{}
	}

	types.WriteJSON(w, http.StatusOK, defaults)
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := a.validate.Struct(dst); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrLeaveTypeNotFound), errors.Is(err, ErrEntitlementNotFound):
		types.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateLeaveType):
		types.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrLeaveTypeInUse), errors.Is(err, ErrUnknownReference):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDuplicateServiceYear):
		types.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		a.logger.Errorf("leave request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
