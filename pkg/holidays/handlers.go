// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package holidays

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/workforce-service/internal/http/types"
	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/tracing"
	internalTypes "github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authentication"
	"github.com/canonical/workforce-service/pkg/authorization"
)

const dateLayout = "2006-01-02"

type HolidayRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Recurring bool   `json:"recurring"`
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
	mux.With(a.authz.RequirePermissions(authorization.PermHolidaysRead)).
		Get("/api/v1/holidays", a.listHolidays)
	mux.With(a.authz.RequirePermissions(authorization.PermHolidaysWrite)).
		Post("/api/v1/holidays", a.createHoliday)
	mux.With(a.authz.RequirePermissions(authorization.PermHolidaysWrite)).
		Put("/api/v1/holidays/{id}", a.updateHoliday)
	mux.With(a.authz.RequirePermissions(authorization.PermHolidaysWrite)).
		Delete("/api/v1/holidays/{id}", a.deleteHoliday)
}

func (a *API) listHolidays(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "holidays.API.listHolidays")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	holidays, err := a.service.ListHolidays(ctx, principal.TenantID, year)
	if err != nil {
		a.logger.Errorf("failed to list holidays: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if holidays == nil {
		holidays = []*internalTypes.Holiday{}
	}

	types.WriteJSON(w, http.StatusOK, holidays)
}

func (a *API) createHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "holidays.API.createHoliday")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	req, date, ok := a.decodeHoliday(w, r)
	if !ok {
		return
	}

	holiday, err := a.service.CreateHoliday(ctx, principal.TenantID, req.Name, date, req.Recurring)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, holiday)
}

func (a *API) updateHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "holidays.API.updateHoliday")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	req, date, ok := a.decodeHoliday(w, r)
	if !ok {
		return
	}

	holiday, err := a.service.UpdateHoliday(ctx, principal.TenantID, chi.URLParam(r, "id"), req.Name, date, req.Recurring)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, holiday)
}

func (a *API) deleteHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "holidays.API.deleteHoliday")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	if err := a.service.DeleteHoliday(ctx, principal.TenantID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decodeHoliday(w http.ResponseWriter, r *http.Request) (*HolidayRequest, time.Time, bool) {
	var req HolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return nil, time.Time{}, false
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return nil, time.Time{}, false
	}

	date, _ := time.Parse(dateLayout, req.Date)
	return &req, date, true
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrHolidayNotFound):
		types.WriteError(w, http.StatusNotFound, "holiday not found")
	case errors.Is(err, ErrDuplicateHoliday):
		types.WriteError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("holiday request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
