// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/workforce-service/internal/http/types"
	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/pkg/authentication"
	"github.com/canonical/workforce-service/pkg/authorization"
)

type CreateWorkspaceRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=200"`
}

type SelectWorkspaceRequest struct {
	TenantID string `json:"tenant_id" validate:"required,uuid"`
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
	mux.With(a.authz.RequirePermissions(authorization.PermWorkspacesRead)).
		Get("/api/v1/workspaces", a.listWorkspaces)
	mux.With(a.authz.RequirePermissions(authorization.PermWorkspacesWrite)).
		Post("/api/v1/workspaces", a.createWorkspace)
	// Selecting a workspace needs authentication only, the membership check
	// is the authorization.
	mux.Post("/api/v1/workspaces/select", a.selectWorkspace)
}

func (a *API) listWorkspaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspaces.API.listWorkspaces")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	workspaces, err := a.service.ListWorkspaces(ctx, principal.UserID)
	if err != nil {
		a.logger.Errorf("failed to list workspaces: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	types.WriteJSON(w, http.StatusOK, workspaces)
}

func (a *API) createWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspaces.API.createWorkspace")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req CreateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	workspace, err := a.service.CreateWorkspace(ctx, principal.UserID, req.CompanyName)
	if err != nil {
		a.logger.Errorf("failed to create workspace: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	types.WriteJSON(w, http.StatusCreated, workspace)
}

func (a *API) selectWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspaces.API.selectWorkspace")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	var req SelectWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, workspace, err := a.service.SelectWorkspace(ctx, principal.UserID, req.TenantID)
	if err != nil {
		if errors.Is(err, ErrNotAMember) {
			// Same body as a bad token, membership state is not leaked.
			types.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		a.logger.Errorf("failed to select workspace: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]any{
		"token":     token,
		"workspace": workspace,
	})
}
