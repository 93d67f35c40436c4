// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package rbac manages tenant roles, their permission grants and user role
// assignments.
package rbac

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authorization"
)

// Role assignment update modes.
const (
	ModeReplace = "replace"
	ModeAdd     = "add"
	ModeRemove  = "remove"
)

// Bootstrap role names created for every new tenant.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleStaff   = "Staff"
)

var (
	ErrRoleNotFound      = errors.New("role not found")
	ErrDuplicateRoleName = errors.New("role name already exists")
	ErrUnknownPermission = errors.New("unknown permission code")
	ErrUnknownMode       = errors.New("unknown update mode")
	ErrNotAMember        = errors.New("user is not a member of the tenant")
	// ErrMissingBootstrapPermissions aborts tenant bootstrap when the
	// catalog lacks codes the default roles depend on.
	ErrMissingBootstrapPermissions = errors.New("permission catalog is missing bootstrap codes")
)

// Role is a tenant role together with its granted permission codes.
type Role struct {
	*types.Role
	Permissions []string
}

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListPermissions(ctx context.Context) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.ListPermissions")
	defer span.End()

	return s.storage.ListPermissions(ctx)
}

func (s *Service) ListRoles(ctx context.Context, tenantID string) ([]*Role, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.ListRoles")
	defer span.End()

	roles, err := s.storage.ListRolesByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	result := make([]*Role, 0, len(roles))
	for _, role := range roles {
		codes, err := s.storage.ListRolePermissionCodes(ctx, role.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &Role{Role: role, Permissions: codes})
	}

	return result, nil
}

func (s *Service) GetRole(ctx context.Context, tenantID, roleID string) (*Role, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.GetRole")
	defer span.End()

	role, err := s.storage.GetRoleByID(ctx, tenantID, roleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	codes, err := s.storage.ListRolePermissionCodes(ctx, role.ID)
	if err != nil {
		return nil, err
	}

	return &Role{Role: role, Permissions: codes}, nil
}

func (s *Service) CreateRole(ctx context.Context, tenantID, name, description string, permissionCodes []string) (*Role, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.CreateRole")
	defer span.End()

	permissionIDs, err := s.resolvePermissionIDs(ctx, permissionCodes)
	if err != nil {
		return nil, err
	}

	role, err := s.storage.CreateRole(ctx, tenantID, name, description)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateRoleName
		}
		return nil, err
	}

	if err := s.storage.ReplaceRolePermissions(ctx, role.ID, permissionIDs); err != nil {
		return nil, err
	}

	return &Role{Role: role, Permissions: permissionCodes}, nil
}

// UpdateRole patches name and description when provided, and replaces the
// grant set when permissionCodes is non-nil.
func (s *Service) UpdateRole(ctx context.Context, tenantID, roleID string, name, description *string, permissionCodes []string) (*Role, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.UpdateRole")
	defer span.End()

	current, err := s.storage.GetRoleByID(ctx, tenantID, roleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	newName := current.Name
	if name != nil {
		newName = *name
	}
	newDescription := current.Description
	if description != nil {
		newDescription = *description
	}

	role, err := s.storage.UpdateRole(ctx, tenantID, roleID, newName, newDescription)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateRoleName
		}
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	if permissionCodes != nil {
		permissionIDs, err := s.resolvePermissionIDs(ctx, permissionCodes)
		if err != nil {
			return nil, err
		}
		if err := s.storage.ReplaceRolePermissions(ctx, role.ID, permissionIDs); err != nil {
			return nil, err
		}
	}

	codes, err := s.storage.ListRolePermissionCodes(ctx, role.ID)
	if err != nil {
		return nil, err
	}

	return &Role{Role: role, Permissions: codes}, nil
}

func (s *Service) DeleteRole(ctx context.Context, tenantID, roleID string) error {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.DeleteRole")
	defer span.End()

	if err := s.storage.DeleteRole(ctx, tenantID, roleID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRoleNotFound
		}
		return err
	}

	return nil
}

func (s *Service) GetRolePermissions(ctx context.Context, tenantID, roleID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.GetRolePermissions")
	defer span.End()

	if _, err := s.storage.GetRoleByID(ctx, tenantID, roleID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	return s.storage.ListRolePermissionCodes(ctx, roleID)
}

// SetRolePermissions replaces a role's grant set with the given codes and
// returns the resulting set. The role row is locked first so two concurrent
// replacements resolve to exactly one caller's set, never a merge.
func (s *Service) SetRolePermissions(ctx context.Context, tenantID, roleID string, permissionCodes []string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.SetRolePermissions")
	defer span.End()

	if _, err := s.storage.LockRoleByID(ctx, tenantID, roleID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	permissionIDs, err := s.resolvePermissionIDs(ctx, permissionCodes)
	if err != nil {
		return nil, err
	}

	if err := s.storage.ReplaceRolePermissions(ctx, roleID, permissionIDs); err != nil {
		return nil, err
	}

	return s.storage.ListRolePermissionCodes(ctx, roleID)
}

// ListTenantUsers returns the tenant's users decorated with their role names.
func (s *Service) ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.ListTenantUsers")
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

func (s *Service) GetUserRoles(ctx context.Context, tenantID, userID string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.GetUserRoles")
	defer span.End()

	return s.storage.ListRolesByUserID(ctx, tenantID, userID)
}

// SetUserRoles applies a role assignment update and returns the user's
// resulting roles in the tenant. Every referenced role must belong to the
// tenant and the user must be a member.
func (s *Service) SetUserRoles(ctx context.Context, tenantID, userID string, roleIDs []string, mode string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.SetUserRoles")
	defer span.End()

	isMember, err := s.storage.IsMember(ctx, userID, tenantID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotAMember
	}

	for _, roleID := range roleIDs {
		if _, err := s.storage.GetRoleByID(ctx, tenantID, roleID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, roleID)
			}
			return nil, err
		}
	}

	switch mode {
	case ModeReplace:
		if err := s.storage.ClearUserRolesInTenant(ctx, tenantID, userID); err != nil {
			return nil, err
		}
		if err := s.storage.AssignRolesToUser(ctx, userID, roleIDs); err != nil {
			return nil, err
		}
	case ModeAdd:
		if err := s.storage.AssignRolesToUser(ctx, userID, roleIDs); err != nil {
			return nil, err
		}
	case ModeRemove:
		if err := s.storage.RemoveRolesFromUser(ctx, userID, roleIDs); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	return s.storage.ListRolesByUserID(ctx, tenantID, userID)
}

// SeedDefaultRoles creates the Admin, Manager and Staff roles for a fresh
// tenant and assigns Admin to the owner. Admin receives the entire catalog
// as it stands, the other two get fixed code sets. Missing fixed codes abort
// the bootstrap.
func (s *Service) SeedDefaultRoles(ctx context.Context, tenantID, ownerUserID string) error {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.SeedDefaultRoles")
	defer span.End()

	catalog, err := s.storage.ListPermissions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load permission catalog: %w", err)
	}

	adminIDs := make([]string, 0, len(catalog))
	for _, p := range catalog {
		adminIDs = append(adminIDs, p.ID)
	}

	managerIDs, err := s.resolvePermissionIDs(ctx, authorization.DefaultManagerPermissions)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingBootstrapPermissions, err)
	}
	staffIDs, err := s.resolvePermissionIDs(ctx, authorization.DefaultStaffPermissions)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingBootstrapPermissions, err)
	}

	seeds := []struct {
		name          string
		description   string
		permissionIDs []string
	}{
		{RoleAdmin, "Full access to the workspace", adminIDs},
		{RoleManager, "Read access to dashboards and role definitions", managerIDs},
		{RoleStaff, "Dashboard access", staffIDs},
	}

	var adminRoleID string
	for _, seed := range seeds {
		role, err := s.storage.CreateRole(ctx, tenantID, seed.name, seed.description)
		if err != nil {
			return fmt.Errorf("failed to create %s role: %w", seed.name, err)
		}
		if err := s.storage.ReplaceRolePermissions(ctx, role.ID, seed.permissionIDs); err != nil {
			return fmt.Errorf("failed to grant %s permissions: %w", seed.name, err)
		}
		if seed.name == RoleAdmin {
			adminRoleID = role.ID
		}
	}

	if err := s.storage.AssignRolesToUser(ctx, ownerUserID, []string{adminRoleID}); err != nil {
		return fmt.Errorf("failed to assign Admin role to owner: %w", err)
	}

	return nil
}

// resolvePermissionIDs maps codes to catalog IDs, failing on any code the
// catalog does not know.
func (s *Service) resolvePermissionIDs(ctx context.Context, codes []string) ([]string, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	permissions, err := s.storage.GetPermissionsByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]string, len(permissions))
	for _, p := range permissions {
		byCode[p.Code] = p.ID
	}

	ids := make([]string, 0, len(codes))
	for _, code := range codes {
		id, ok := byCode[code]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPermission, code)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
