// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package accounts covers subscriber signup and login, profile management
// and workspace user provisioning.
package accounts

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authentication"
)

// bcrypt truncates beyond 72 bytes, reject instead of silently truncating.
const maxPasswordBytes = 72

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

// RegisterResult is the outcome of a subscriber signup.
type RegisterResult struct {
	Token  string
	User   *types.User
	Tenant *types.Tenant
}

// LoginResult carries the minted token and the account it belongs to.
type LoginResult struct {
	Token string
	User  *types.User
}

// ProvisionResult is returned when an admin creates a workspace user or
// resets their password. TemporaryPassword is shown exactly once.
type ProvisionResult struct {
	User              *types.User
	TemporaryPassword string
}

type Service struct {
	storage         StorageInterface
	roles           RoleSeederInterface
	tokens          TokenIssuerInterface
	defaultUserRole string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	roles RoleSeederInterface,
	tokens TokenIssuerInterface,
	defaultUserRole string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:         storage,
		roles:           roles,
		tokens:          tokens,
		defaultUserRole: defaultUserRole,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}

// Register provisions a subscriber account: tenant, user, owner membership
// and the bootstrap roles. The caller's transaction middleware makes the
// whole sequence atomic, a bootstrap failure rolls back every row.
func (s *Service) Register(ctx context.Context, companyName, firstName, lastName, email, password string) (*RegisterResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Register")
	defer span.End()

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	tenant, err := s.storage.CreateTenant(ctx, companyName)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	user, err := s.storage.CreateUser(ctx, &types.User{
		TenantID:     tenant.ID,
		FirstName:    firstName,
		LastName:     lastName,
		FullName:     fullName(firstName, lastName),
		Email:        strings.ToLower(email),
		AccountType:  types.AccountTypeSubscriber,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := s.storage.CreateMembership(ctx, user.ID, tenant.ID, true); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	if err := s.roles.SeedDefaultRoles(ctx, tenant.ID, user.ID); err != nil {
		return nil, fmt.Errorf("failed to bootstrap roles: %w", err)
	}

	token, err := s.tokens.IssueToken(ctx, user.ID, tenant.ID, authentication.DefaultTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Security().AuthSuccess(user.ID)

	return &RegisterResult{Token: token, User: user, Tenant: tenant}, nil
}

// Login authenticates a subscriber against their home tenant.
func (s *Service) Login(ctx context.Context, email, password string, rememberMe bool) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Login")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.AccountType != types.AccountTypeSubscriber {
		s.logger.Security().AuthFailure(user.ID)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Security().AuthFailure(user.ID)
		return nil, ErrInvalidCredentials
	}

	ttl := authentication.DefaultTokenTTL
	if rememberMe {
		ttl = authentication.RememberMeTokenTTL
	}

	token, err := s.tokens.IssueToken(ctx, user.ID, user.TenantID, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Security().AuthSuccess(user.ID)

	return &LoginResult{Token: token, User: user}, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.GetProfile")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID, firstName, lastName, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.UpdateProfile")
	defer span.End()

	user, err := s.storage.UpdateUserProfile(ctx, userID, firstName, lastName, fullName(firstName, lastName), strings.ToLower(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the current password and replaces it, clearing the
// must-change flag set by provisioning.
func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.ChangePassword")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		s.logger.Security().AuthFailure(user.ID)
		return ErrInvalidCredentials
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.storage.UpdateUserPassword(ctx, userID, hash, false)
}

func (s *Service) ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.ListTenantUsers")
	defer span.End()

	users, err := s.storage.ListUsersByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(users))
	for _, u := range users {
		userIDs = append(userIDs, u.ID)
	}

	roleNames, err := s.storage.ListRoleNamesByUserIDs(ctx, tenantID, userIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*types.TenantUser, 0, len(users))
	for _, u := range users {
		roles := roleNames[u.ID]
		if roles == nil {
			roles = []string{}
		}
		result = append(result, &types.TenantUser{
			ID:                 u.ID,
			FirstName:          u.FirstName,
			LastName:           u.LastName,
			FullName:           u.FullName,
			Email:              u.Email,
			AccountType:        u.AccountType,
			MustChangePassword: u.MustChangePassword,
			CreatedAt:          u.CreatedAt,
			Roles:              roles,
		})
	}

	return result, nil
}

// CreateTenantUser provisions a workspace user with a one-time temporary
// password, a membership and a default role, all in one request transaction.
func (s *Service) CreateTenantUser(ctx context.Context, tenantID, firstName, lastName, email, roleName string) (*ProvisionResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.CreateTenantUser")
	defer span.End()

	if roleName == "" {
		roleName = s.defaultUserRole
	}

	role, err := s.storage.GetRoleByName(ctx, tenantID, roleName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("role %q does not exist in tenant", roleName)
		}
		return nil, err
	}

	tempPassword, err := generateTemporaryPassword()
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.CreateUser(ctx, &types.User{
		TenantID:           tenantID,
		FirstName:          firstName,
		LastName:           lastName,
		FullName:           fullName(firstName, lastName),
		Email:              strings.ToLower(email),
		AccountType:        types.AccountTypeUser,
		MustChangePassword: true,
		PasswordHash:       hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := s.storage.CreateMembership(ctx, user.ID, tenantID, false); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	if err := s.storage.AssignRolesToUser(ctx, user.ID, []string{role.ID}); err != nil {
		return nil, fmt.Errorf("failed to assign default role: %w", err)
	}

	return &ProvisionResult{User: user, TemporaryPassword: tempPassword}, nil
}

// ResetTenantUserPassword replaces a workspace user's password with a fresh
// temporary one and forces a change on next login.
func (s *Service) ResetTenantUserPassword(ctx context.Context, tenantID, userID string) (*ProvisionResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.ResetTenantUserPassword")
	defer span.End()

	isMember, err := s.storage.IsMember(ctx, userID, tenantID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrUserNotFound
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	tempPassword, err := generateTemporaryPassword()
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	if err := s.storage.UpdateUserPassword(ctx, userID, hash, true); err != nil {
		return nil, err
	}

	return &ProvisionResult{User: user, TemporaryPassword: tempPassword}, nil
}

func hashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

func generateTemporaryPassword() (string, error) {
	raw := make([]byte, 12)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate temporary password: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func fullName(firstName, lastName string) string {
	return strings.TrimSpace(firstName + " " + lastName)
}
