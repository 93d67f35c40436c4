// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"context"

	"github.com/canonical/workforce-service/internal/types"
)

type ServiceInterface interface {
	ListPermissions(ctx context.Context) ([]*types.Permission, error)
	ListRoles(ctx context.Context, tenantID string) ([]*Role, error)
	GetRole(ctx context.Context, tenantID, roleID string) (*Role, error)
	CreateRole(ctx context.Context, tenantID, name, description string, permissionCodes []string) (*Role, error)
	UpdateRole(ctx context.Context, tenantID, roleID string, name, description *string, permissionCodes []string) (*Role, error)
	DeleteRole(ctx context.Context, tenantID, roleID string) error
	GetRolePermissions(ctx context.Context, tenantID, roleID string) ([]string, error)
	SetRolePermissions(ctx context.Context, tenantID, roleID string, permissionCodes []string) ([]string, error)
	ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error)
	GetUserRoles(ctx context.Context, tenantID, userID string) ([]*types.Role, error)
	SetUserRoles(ctx context.Context, tenantID, userID string, roleIDs []string, mode string) ([]*types.Role, error)
	SeedDefaultRoles(ctx context.Context, tenantID, ownerUserID string) error
}

type StorageInterface interface {
	ListPermissions(ctx context.Context) ([]*types.Permission, error)
	GetPermissionsByCodes(ctx context.Context, codes []string) ([]*types.Permission, error)
	CreateRole(ctx context.Context, tenantID, name, description string) (*types.Role, error)
	GetRoleByID(ctx context.Context, tenantID, roleID string) (*types.Role, error)
	LockRoleByID(ctx context.Context, tenantID, roleID string) (*types.Role, error)
	ListRolesByTenantID(ctx context.Context, tenantID string) ([]*types.Role, error)
	UpdateRole(ctx context.Context, tenantID, roleID, name, description string) (*types.Role, error)
	DeleteRole(ctx context.Context, tenantID, roleID string) error
	ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error
	ListRolePermissionCodes(ctx context.Context, roleID string) ([]string, error)
	ListRolesByUserID(ctx context.Context, tenantID, userID string) ([]*types.Role, error)
	ListRoleNamesByUserIDs(ctx context.Context, tenantID string, userIDs []string) (map[string][]string, error)
	ListUsersByTenantID(ctx context.Context, tenantID string) ([]*types.User, error)
	AssignRolesToUser(ctx context.Context, userID string, roleIDs []string) error
	RemoveRolesFromUser(ctx context.Context, userID string, roleIDs []string) error
	ClearUserRolesInTenant(ctx context.Context, tenantID, userID string) error
	IsMember(ctx context.Context, userID, tenantID string) (bool, error)
}
