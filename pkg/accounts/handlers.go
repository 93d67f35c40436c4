// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

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
	internalTypes "github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authentication"
	"github.com/canonical/workforce-service/pkg/authorization"
)

type RegisterRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=200"`
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type CreateTenantUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"omitempty,max=150"`
}

type UserResponse struct {
	ID                 string    `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	AccountType        string    `json:"account_type"`
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ProvisionResponse struct {
	User              UserResponse `json:"user"`
	TemporaryPassword string       `json:"temporary_password"`
}

// PublicAPI serves the unauthenticated subscriber endpoints.
type PublicAPI struct {
	service ServiceInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	logger   logging.LoggerInterface
}

func NewPublicAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *PublicAPI {
	return &PublicAPI{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		logger:   logger,
	}
}

func (a *PublicAPI) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v1/subscriber/register", a.register)
	mux.Post("/api/v1/subscriber/login", a.login)
}

func (a *PublicAPI) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.PublicAPI.register")
	defer span.End()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.service.Register(ctx, req.CompanyName, req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		writeAccountError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, TokenResponse{
		Token: result.Token,
		User:  userResponse(result.User),
	})
}

func (a *PublicAPI) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.PublicAPI.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.service.Login(ctx, req.Email, req.Password, req.RememberMe)
	if err != nil {
		writeAccountError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, TokenResponse{
		Token: result.Token,
		User:  userResponse(result.User),
	})
}

// API serves the authenticated account endpoints.
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
	// Profile endpoints require authentication only, any member may manage
	// their own account.
	mux.Get("/api/v1/profile", a.getProfile)
	mux.Put("/api/v1/profile", a.updateProfile)
	mux.Post("/api/v1/profile/change-password", a.changePassword)

	mux.With(a.authz.RequirePermissions(authorization.PermTenantUsersRead)).
		Get("/api/v1/tenant/users", a.listTenantUsers)
	mux.With(a.authz.RequirePermissions(authorization.PermTenantUsersWrite)).
		Post("/api/v1/tenant/users", a.createTenantUser)
	mux.With(a.authz.RequirePermissions(authorization.PermTenantUsersResetPassword)).
		Post("/api/v1/tenant/users/{id}/reset-password", a.resetTenantUserPassword)
}

func (a *API) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.getProfile")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	user, err := a.service.GetProfile(ctx, principal.UserID)
	if err != nil {
		writeAccountError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, userResponse(user))
}

func (a *API) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.updateProfile")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.service.UpdateProfile(ctx, principal.UserID, req.FirstName, req.LastName, req.Email)
	if err != nil {
		writeAccountError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, userResponse(user))
}

func (a *API) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.changePassword")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.ChangePassword(ctx, principal.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		writeAccountError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listTenantUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.listTenantUsers")
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

func (a *API) createTenantUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.createTenantUser")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	var req CreateTenantUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.service.CreateTenantUser(ctx, principal.TenantID, req.FirstName, req.LastName, req.Email, req.Role)
	if err != nil {
		writeAccountError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, ProvisionResponse{
		User:              userResponse(result.User),
		TemporaryPassword: result.TemporaryPassword,
	})
}

func (a *API) resetTenantUserPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.resetTenantUserPassword")
	defer span.End()

	principal, _ := authentication.PrincipalFromContext(ctx)

	result, err := a.service.ResetTenantUserPassword(ctx, principal.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		writeAccountError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, ProvisionResponse{
		User:              userResponse(result.User),
		TemporaryPassword: result.TemporaryPassword,
	})
}

func writeAccountError(w http.ResponseWriter, logger logging.LoggerInterface, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		types.WriteError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, ErrDuplicateEmail):
		types.WriteError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, ErrUserNotFound):
		types.WriteError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, ErrPasswordTooLong):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Errorf("account request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

func userResponse(u *internalTypes.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		FullName:           u.FullName,
		Email:              u.Email,
		AccountType:        u.AccountType,
		MustChangePassword: u.MustChangePassword,
		CreatedAt:          u.CreatedAt,
	}
}
