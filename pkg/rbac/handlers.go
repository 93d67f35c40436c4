// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/workforce-service/internal/http/types"
	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/pkg/authentication"
	"github.com/canonical/workforce-service/pkg/authorization"
)

type PermissionResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type RoleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required,max=150"`
	Description string   `json:"description" validate:"max=500"`
	Permissions []string `json:"permissions"`
}

type UpdateRoleRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=150"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Permissions []string `json:"permissions"`
}

type SetUserRolesRequest struct {
	RoleIDs []string `json:"role_ids" validate:"required"`
	Mode    string   `json:"mode" validate:"omitempty,oneof=replace add remove"`
}

type API struct {
	service  ServiceInterface
	resolver authorization.ResolverInterface
	authz    *authorization.Middleware

	validate *validator.Validate
	tracer   tracing.TracingInterface
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, resolver authorization.ResolverInterface, authz *authorization.Middleware, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		resolver: resolver,
		authz:    authz,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	// Authenticated, no permission required: callers always may see their
	// own effective permission set.
	mux.Get("/api/v1/rbac/me", a.me)

	mux.With(a.authz.RequirePermissions(authorization.PermPermissionsRead)).
		Get("/api/v1/rbac/permissions", a.listPermissions)

	mux.With(a.authz.RequirePermissions(authorization.PermRolesRead)).
		Get("/api/v1/rbac/roles", a.listRoles)
	mux.With(a.authz.RequirePermissions(authorization.PermRolesRead)).
		Get("/api/v1/rbac/roles/{id}", a.getRole)
	mux.With(a.authz.RequirePermissions(authorization.PermRolesWrite)).
		Post("/api/v1/rbac/roles", a.createRole)
	mux.With(a.authz.RequirePermissions(authorization.PermRolesWrite)).
		Patch("/api/v1/rbac/roles/{id}", a.updateRole)
	mux.With(a.authz.RequirePermissions(authorization.PermRolesWrite)).
		Delete("/api/v1/rbac/roles/{id}", a.deleteRole)

	mux.With(a.authz.RequirePermissions(authorization.PermRolesRead)).
		Get("/api/v1/rbac/roles/{id}/permissions", a.getRolePermissions)
	mux.With(a.authz.RequirePermissions(authorization.PermRolesWrite)).
		Post("/api/v1/rbac/roles/{id}/permissions", a.setRolePermissions)

	mux.With(a.authz.RequirePermissions(authorization.PermTenantUsersRead)).
		Get("/api/v1/rbac/users", a.listUsers)
	mux.With(a.authz.RequirePermissions(authorization.PermRolesRead)).
		Get("/api/v1/rbac/users/{id}/roles", a.getUserRoles)
	mux.With(a.authz.RequirePermissions(authorization.PermUsersAssignRoles)).
		Put("/api/v1/rbac/users/{id}/roles", a.setUserRoles)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.me")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	permissions, err := a.resolver.EffectivePermissions(ctx, principal.UserID, principal.TenantID)
	if err != nil {
		a.logger.Errorf("failed to resolve permissions: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if permissions == nil {
		permissions = []string{}
	}

	types.WriteJSON(w, http.StatusOK, map[string]any{
		"user_id":     principal.UserID,
		"tenant_id":   principal.TenantID,
		"permissions": permissions,
	})
}

func (a *API) getRolePermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.getRolePermissions")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	codes, err := a.service.GetRolePermissions(ctx, principal.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	if codes == nil {
		codes = []string{}
	}

	types.WriteJSON(w, http.StatusOK, map[string]any{"permissions": codes})
}

func (a *API) setRolePermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.setRolePermissions")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req struct {
		Permissions []string `json:"permissions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	codes, err := a.service.SetRolePermissions(ctx, principal.TenantID, chi.URLParam(r, "id"), req.Permissions)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	if codes == nil {
		codes = []string{}
	}

	types.WriteJSON(w, http.StatusOK, map[string]any{"permissions": codes})
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.listUsers")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	users, err := a.service.ListTenantUsers(ctx, principal.TenantID)
	if err != nil {
		a.logger.Errorf("failed to list tenant users: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	types.WriteJSON(w, http.StatusOK, users)
}

func (a *API) listPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.listPermissions")
	defer span.End()

	permissions, err := a.service.ListPermissions(ctx)
	if err != nil {
		a.logger.Errorf("failed to list permissions: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]PermissionResponse, 0, len(permissions))
	for _, p := range permissions {
		response = append(response, PermissionResponse{ID: p.ID, Code: p.Code, Description: p.Description})
	}

	types.WriteJSON(w, http.StatusOK, response)
}

func (a *API) listRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.listRoles")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	roles, err := a.service.ListRoles(ctx, principal.TenantID)
	if err != nil {
		a.logger.Errorf("failed to list roles: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		response = append(response, roleResponse(role))
	}

	types.WriteJSON(w, http.StatusOK, response)
}

func (a *API) getRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.getRole")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	role, err := a.service.GetRole(ctx, principal.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, roleResponse(role))
}

func (a *API) createRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.createRole")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	role, err := a.service.CreateRole(ctx, principal.TenantID, req.Name, req.Description, req.Permissions)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, roleResponse(role))
}

func (a *API) updateRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.updateRole")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	role, err := a.service.UpdateRole(ctx, principal.TenantID, chi.URLParam(r, "id"), req.Name, req.Description, req.Permissions)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, roleResponse(role))
}

func (a *API) deleteRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.deleteRole")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	if err := a.service.DeleteRole(ctx, principal.TenantID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) getUserRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.getUserRoles")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	roles, err := a.service.GetUserRoles(ctx, principal.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		a.logger.Errorf("failed to get user roles: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		response = append(response, RoleResponse{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
			Permissions: []string{},
			CreatedAt:   role.CreatedAt,
		})
	}

	types.WriteJSON(w, http.StatusOK, response)
}

func (a *API) setUserRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.setUserRoles")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req SetUserRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeReplace
	}

	roles, err := a.service.SetUserRoles(ctx, principal.TenantID, chi.URLParam(r, "id"), req.RoleIDs, mode)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	response := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		response = append(response, RoleResponse{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
			Permissions: []string{},
			CreatedAt:   role.CreatedAt,
		})
	}

	types.WriteJSON(w, http.StatusOK, response)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrRoleNotFound):
		types.WriteError(w, http.StatusNotFound, "role not found")
	case errors.Is(err, ErrDuplicateRoleName):
		types.WriteError(w, http.StatusConflict, "role name already exists")
	case errors.Is(err, ErrUnknownPermission):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnknownMode), errors.Is(err, ErrNotAMember):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("rbac request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

func roleResponse(role *Role) RoleResponse {
	permissions := role.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	return RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Permissions: permissions,
		CreatedAt:   role.CreatedAt,
	}
}
