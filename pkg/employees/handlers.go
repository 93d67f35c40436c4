// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package employees

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/workforce-service/internal/db"
	"github.com/canonical/workforce-service/internal/http/types"
	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/tracing"
	internalTypes "github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authentication"
	"github.com/canonical/workforce-service/pkg/authorization"
)

const dateLayout = "2006-01-02"

type EmployeeRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Position   string `json:"position" validate:"max=200"`
	Department string `json:"department" validate:"max=200"`
	HiredOn    string `json:"hired_on" validate:"omitempty,datetime=2006-01-02"`

	WorkScheduleGroupID string `json:"work_schedule_group_id" validate:"omitempty,uuid"`
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
	mux.With(a.authz.RequirePermissions(authorization.PermEmployeesRead)).
		Get("/api/v1/employees", a.listEmployees)
	mux.With(a.authz.RequirePermissions(authorization.PermEmployeesRead)).
		Get("/api/v1/employees/{id}", a.getEmployee)
	mux.With(a.authz.RequirePermissions(authorization.PermEmployeesWrite)).
		Post("/api/v1/employees", a.createEmployee)
	mux.With(a.authz.RequirePermissions(authorization.PermEmployeesWrite)).
		Put("/api/v1/employees/{id}", a.updateEmployee)
	mux.With(a.authz.RequirePermissions(authorization.PermEmployeesWrite)).
		Delete("/api/v1/employees/{id}", a.deleteEmployee)
}

func (a *API) listEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "employees.API.listEmployees")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	pageParam, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	sizeParam, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)
	if sizeParam > 500 {
		sizeParam = 0
	}
	size := db.PageSize(sizeParam)
	offset := db.Offset(pageParam, size)

	employees, err := a.service.ListEmployees(ctx, principal.TenantID, offset, size)
	if err != nil {
		a.logger.Errorf("failed to list employees: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if employees == nil {
		employees = []*internalTypes.Employee{}
	}

	types.WriteJSON(w, http.StatusOK, employees)
}

func (a *API) getEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "employees.API.getEmployee")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	employee, err := a.service.GetEmployee(ctx, principal.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, employee)
}

func (a *API) createEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "employees.API.createEmployee")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	employee, ok := a.decodeEmployee(w, r, principal.TenantID)
	if !ok {
		return
	}

	created, err := a.service.CreateEmployee(ctx, employee)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) updateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "employees.API.updateEmployee")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	employee, ok := a.decodeEmployee(w, r, principal.TenantID)
	if !ok {
		return
	}
	employee.ID = chi.URLParam(r, "id")

	updated, err := a.service.UpdateEmployee(ctx, employee)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "employees.API.deleteEmployee")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	if err := a.service.DeleteEmployee(ctx, principal.TenantID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decodeEmployee(w http.ResponseWriter, r *http.Request, tenantID string) (*internalTypes.Employee, bool) {
	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	employee := &internalTypes.Employee{
		TenantID:   tenantID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
	}
	if req.HiredOn != "" {
		hiredOn, _ := time.Parse(dateLayout, req.HiredOn)
		employee.HiredOn = &hiredOn
	}
	if req.WorkScheduleGroupID != "" {
		employee.WorkScheduleGroupID = &req.WorkScheduleGroupID
	}

	return employee, true
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrEmployeeNotFound):
		types.WriteError(w, http.StatusNotFound, "employee not found")
	case errors.Is(err, ErrDuplicateEmail):
		types.WriteError(w, http.StatusConflict, "employee email already exists")
	case errors.Is(err, ErrUnknownReference):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("employee request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
