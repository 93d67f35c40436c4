// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authorization"
)

//go:generate mockgen -build_flags=--mod=mod -package rbac -destination ./mock_rbac.go -source=./interfaces.go

func newTestService(mockStorage *MockStorageInterface) *Service {
	return NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func permissionsByCodes(codes []string) []*types.Permission {
	result := make([]*types.Permission, 0, len(codes))
	for _, code := range codes {
		result = append(result, &types.Permission{ID: "id-" + code, Code: code})
	}
	return result
}

func TestService_CreateRole(t *testing.T) {
	tenantID := "tenant-1"

	testCases := []struct {
		name        string
		codes       []string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:  "success with permissions",
			codes: []string{authorization.PermEmployeesRead},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPermissionsByCodes(gomock.Any(), []string{authorization.PermEmployeesRead}).
					Return(permissionsByCodes([]string{authorization.PermEmployeesRead}), nil)
				mockStorage.EXPECT().CreateRole(gomock.Any(), tenantID, "Auditor", "read only").
					Return(&types.Role{ID: "role-1", TenantID: tenantID, Name: "Auditor"}, nil)
				mockStorage.EXPECT().ReplaceRolePermissions(gomock.Any(), "role-1", []string{"id-" + authorization.PermEmployeesRead}).
					Return(nil)
			},
		},
		{
			name:  "duplicate name",
			codes: nil,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateRole(gomock.Any(), tenantID, "Auditor", "read only").
					Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrDuplicateRoleName,
		},
		{
			name:  "unknown permission code",
			codes: []string{"no:such:code"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPermissionsByCodes(gomock.Any(), []string{"no:such:code"}).
					Return([]*types.Permission{}, nil)
			},
			expectedErr: ErrUnknownPermission,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			role, err := newTestService(mockStorage).CreateRole(context.Background(), tenantID, "Auditor", "read only", tc.codes)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role.Name != "Auditor" {
				t.Errorf("expected role name Auditor, got %q", role.Name)
			}
		})
	}
}

func TestService_SetUserRoles(t *testing.T) {
	tenantID := "tenant-1"
	userID := "user-1"
	roleIDs := []string{"role-1"}
	role := &types.Role{ID: "role-1", TenantID: tenantID, Name: "Auditor"}
	resulting := []*types.Role{role}

	testCases := []struct {
		name        string
		mode        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "replace clears tenant assignments first",
			mode: ModeReplace,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().IsMember(gomock.Any(), userID, tenantID).Return(true, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), tenantID, "role-1").Return(role, nil)
				mockStorage.EXPECT().ClearUserRolesInTenant(gomock.Any(), tenantID, userID).Return(nil)
				mockStorage.EXPECT().AssignRolesToUser(gomock.Any(), userID, roleIDs).Return(nil)
				mockStorage.EXPECT().ListRolesByUserID(gomock.Any(), tenantID, userID).Return(resulting, nil)
			},
		},
		{
			name: "add",
			mode: ModeAdd,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().IsMember(gomock.Any(), userID, tenantID).Return(true, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), tenantID, "role-1").Return(role, nil)
				mockStorage.EXPECT().AssignRolesToUser(gomock.Any(), userID, roleIDs).Return(nil)
				mockStorage.EXPECT().ListRolesByUserID(gomock.Any(), tenantID, userID).Return(resulting, nil)
			},
		},
		{
			name: "remove",
			mode: ModeRemove,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().IsMember(gomock.Any(), userID, tenantID).Return(true, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), tenantID, "role-1").Return(role, nil)
				mockStorage.EXPECT().RemoveRolesFromUser(gomock.Any(), userID, roleIDs).Return(nil)
				mockStorage.EXPECT().ListRolesByUserID(gomock.Any(), tenantID, userID).Return([]*types.Role{}, nil)
			},
		},
		{
			name: "user is not a member",
			mode: ModeReplace,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().IsMember(gomock.Any(), userID, tenantID).Return(false, nil)
			},
			expectedErr: ErrNotAMember,
		},
		{
			name: "role from another tenant",
			mode: ModeReplace,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().IsMember(gomock.Any(), userID, tenantID).Return(true, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), tenantID, "role-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrRoleNotFound,
		},
		{
			name: "unknown mode",
			mode: "toggle",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().IsMember(gomock.Any(), userID, tenantID).Return(true, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), tenantID, "role-1").Return(role, nil)
			},
			expectedErr: ErrUnknownMode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			_, err := newTestService(mockStorage).SetUserRoles(context.Background(), tenantID, userID, roleIDs, tc.mode)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_SeedDefaultRoles(t *testing.T) {
	tenantID := "tenant-1"
	ownerID := "owner-1"

	catalogCodes := []string{
		authorization.PermDashboardRead,
		authorization.PermPermissionsRead,
		authorization.PermRolesRead,
		authorization.PermEmployeesRead,
	}
	catalog := permissionsByCodes(catalogCodes)

	catalogIDs := make([]string, 0, len(catalog))
	for _, p := range catalog {
		catalogIDs = append(catalogIDs, p.ID)
	}

	t.Run("creates the three default roles and assigns Admin to the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)

		mockStorage.EXPECT().ListPermissions(gomock.Any()).Return(catalog, nil)
		mockStorage.EXPECT().GetPermissionsByCodes(gomock.Any(), authorization.DefaultManagerPermissions).
			Return(permissionsByCodes(authorization.DefaultManagerPermissions), nil)
		mockStorage.EXPECT().GetPermissionsByCodes(gomock.Any(), authorization.DefaultStaffPermissions).
			Return(permissionsByCodes(authorization.DefaultStaffPermissions), nil)

		mockStorage.EXPECT().CreateRole(gomock.Any(), tenantID, RoleAdmin, gomock.Any()).
			Return(&types.Role{ID: "admin-role", TenantID: tenantID, Name: RoleAdmin}, nil)
		mockStorage.EXPECT().ReplaceRolePermissions(gomock.Any(), "admin-role", catalogIDs).Return(nil)

		mockStorage.EXPECT().CreateRole(gomock.Any(), tenantID, RoleManager, gomock.Any()).
			Return(&types.Role{ID: "manager-role", TenantID: tenantID, Name: RoleManager}, nil)
		mockStorage.EXPECT().ReplaceRolePermissions(gomock.Any(), "manager-role", gomock.Any()).Return(nil)

		mockStorage.EXPECT().CreateRole(gomock.Any(), tenantID, RoleStaff, gomock.Any()).
			Return(&types.Role{ID: "staff-role", TenantID: tenantID, Name: RoleStaff}, nil)
		mockStorage.EXPECT().ReplaceRolePermissions(gomock.Any(), "staff-role", gomock.Any()).Return(nil)

		mockStorage.EXPECT().AssignRolesToUser(gomock.Any(), ownerID, []string{"admin-role"}).Return(nil)

		if err := newTestService(mockStorage).SeedDefaultRoles(context.Background(), tenantID, ownerID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("aborts when a bootstrap code is missing from the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)

		mockStorage.EXPECT().ListPermissions(gomock.Any()).Return(catalog, nil)
		// Catalog answer is missing rbac:permissions:read.
		mockStorage.EXPECT().GetPermissionsByCodes(gomock.Any(), authorization.DefaultManagerPermissions).
			Return(permissionsByCodes([]string{authorization.PermDashboardRead, authorization.PermRolesRead}), nil)

		err := newTestService(mockStorage).SeedDefaultRoles(context.Background(), tenantID, ownerID)
		if !errors.Is(err, ErrMissingBootstrapPermissions) {
			t.Errorf("expected ErrMissingBootstrapPermissions, got %v", err)
		}
	})
}

func TestService_ListTenantUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)

	users := []*types.User{
		{ID: "user-1", Email: "a@example.com"},
		{ID: "user-2", Email: "b@example.com"},
	}
	mockStorage.EXPECT().ListUsersByTenantID(gomock.Any(), "tenant-1").Return(users, nil)
	mockStorage.EXPECT().ListRoleNamesByUserIDs(gomock.Any(), "tenant-1", []string{"user-1", "user-2"}).
		Return(map[string][]string{"user-1": {RoleAdmin}}, nil)

	result, err := newTestService(mockStorage).ListTenantUsers(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("expected 2 users, got %d", len(result))
	}
	if len(result[0].Roles) != 1 || result[0].Roles[0] != RoleAdmin {
		t.Errorf("expected user-1 roles [Admin], got %v", result[0].Roles)
	}
	if result[1].Roles == nil || len(result[1].Roles) != 0 {
		t.Errorf("expected user-2 roles to be an empty list, got %v", result[1].Roles)
	}
}

func TestService_SetRolePermissions(t *testing.T) {
	tenantID := "tenant-1"

	t.Run("locks the role before replacing grants", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)

		lock := mockStorage.EXPECT().LockRoleByID(gomock.Any(), tenantID, "role-1").
			Return(&types.Role{ID: "role-1", TenantID: tenantID, Name: "Auditor"}, nil)
		mockStorage.EXPECT().GetPermissionsByCodes(gomock.Any(), []string{authorization.PermEmployeesRead}).
			Return(permissionsByCodes([]string{authorization.PermEmployeesRead}), nil).
			After(lock)
		mockStorage.EXPECT().ReplaceRolePermissions(gomock.Any(), "role-1", []string{"id-" + authorization.PermEmployeesRead}).
			Return(nil).
			After(lock)
		mockStorage.EXPECT().ListRolePermissionCodes(gomock.Any(), "role-1").
			Return([]string{authorization.PermEmployeesRead}, nil)

		codes, err := newTestService(mockStorage).SetRolePermissions(context.Background(), tenantID, "role-1", []string{authorization.PermEmployeesRead})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(codes) != 1 || codes[0] != authorization.PermEmployeesRead {
			t.Errorf("expected resulting codes [%s], got %v", authorization.PermEmployeesRead, codes)
		}
	})

	t.Run("role in another tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().LockRoleByID(gomock.Any(), tenantID, "role-9").
			Return(nil, storage.ErrNotFound)

		_, err := newTestService(mockStorage).SetRolePermissions(context.Background(), tenantID, "role-9", nil)
		if !errors.Is(err, ErrRoleNotFound) {
			t.Errorf("expected ErrRoleNotFound, got %v", err)
		}
	})

	t.Run("empty set clears all grants", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().LockRoleByID(gomock.Any(), tenantID, "role-1").
			Return(&types.Role{ID: "role-1", TenantID: tenantID}, nil)
		mockStorage.EXPECT().ReplaceRolePermissions(gomock.Any(), "role-1", gomock.Nil()).
			Return(nil)
		mockStorage.EXPECT().ListRolePermissionCodes(gomock.Any(), "role-1").
			Return([]string{}, nil)

		codes, err := newTestService(mockStorage).SetRolePermissions(context.Background(), tenantID, "role-1", []string{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(codes) != 0 {
			t.Errorf("expected no codes, got %v", codes)
		}
	})
}
