// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"time"

	"github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authentication"
)

type ServiceInterface interface {
	Register(ctx context.Context, companyName, firstName, lastName, email, password string) (*RegisterResult, error)
	Login(ctx context.Context, email, password string, rememberMe bool) (*LoginResult, error)
	GetProfile(ctx context.Context, userID string) (*types.User, error)
	UpdateProfile(ctx context.Context, userID, firstName, lastName, email string) (*types.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error)
	CreateTenantUser(ctx context.Context, tenantID, firstName, lastName, email, roleName string) (*ProvisionResult, error)
	ResetTenantUserPassword(ctx context.Context, tenantID, userID string) (*ProvisionResult, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, companyName string) (*types.Tenant, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateUserProfile(ctx context.Context, id, firstName, lastName, fullName, email string) (*types.User, error)
	UpdateUserPassword(ctx context.Context, id, passwordHash string, mustChange bool) error
	ListUsersByTenantID(ctx context.Context, tenantID string) ([]*types.User, error)
	CreateMembership(ctx context.Context, userID, tenantID string, isOwner bool) (string, error)
	IsMember(ctx context.Context, userID, tenantID string) (bool, error)
	GetRoleByName(ctx context.Context, tenantID, name string) (*types.Role, error)
	AssignRolesToUser(ctx context.Context, userID string, roleIDs []string) error
	ListRoleNamesByUserIDs(ctx context.Context, tenantID string, userIDs []string) (map[string][]string, error)
}

type RoleSeederInterface interface {
	SeedDefaultRoles(ctx context.Context, tenantID, ownerUserID string) error
}

type TokenIssuerInterface interface {
	IssueToken(ctx context.Context, userID, tenantID string, ttl time.Duration) (string, error)
}

var _ TokenIssuerInterface = (*authentication.TokenService)(nil)
