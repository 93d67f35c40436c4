// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/workforce-service/internal/types"
)

type StorageInterface interface {
	// Tenants
	CreateTenant(ctx context.Context, companyName string) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)

	// Users
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateUserProfile(ctx context.Context, id, firstName, lastName, fullName, email string) (*types.User, error)
	UpdateUserPassword(ctx context.Context, id, passwordHash string, mustChange bool) error
	ListUsersByTenantID(ctx context.Context, tenantID string) ([]*types.User, error)

	// Memberships
	CreateMembership(ctx context.Context, userID, tenantID string, isOwner bool) (string, error)
	ListWorkspacesByUserID(ctx context.Context, userID string) ([]*types.Workspace, error)
	GetMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error)
	IsMember(ctx context.Context, userID, tenantID string) (bool, error)

	// Permission catalog
	ListPermissions(ctx context.Context) ([]*types.Permission, error)
	GetPermissionsByCodes(ctx context.Context, codes []string) ([]*types.Permission, error)

	// Roles
	CreateRole(ctx context.Context, tenantID, name, description string) (*types.Role, error)
	GetRoleByID(ctx context.Context, tenantID, roleID string) (*types.Role, error)
	LockRoleByID(ctx context.Context, tenantID, roleID string) (*types.Role, error)
	GetRoleByName(ctx context.Context, tenantID, name string) (*types.Role, error)
	ListRolesByTenantID(ctx context.Context, tenantID string) ([]*types.Role, error)
	UpdateRole(ctx context.Context, tenantID, roleID, name, description string) (*types.Role, error)
	DeleteRole(ctx context.Context, tenantID, roleID string) error
	ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error
	ListRolePermissionCodes(ctx context.Context, roleID string) ([]string, error)

	// Role assignments
	ListRolesByUserID(ctx context.Context, tenantID, userID string) ([]*types.Role, error)
	ListRoleNamesByUserIDs(ctx context.Context, tenantID string, userIDs []string) (map[string][]string, error)
	AssignRolesToUser(ctx context.Context, userID string, roleIDs []string) error
	RemoveRolesFromUser(ctx context.Context, userID string, roleIDs []string) error
	ClearUserRolesInTenant(ctx context.Context, tenantID, userID string) error
	ListEffectivePermissionCodes(ctx context.Context, userID, tenantID string) ([]string, error)

	// Employees
	CreateEmployee(ctx context.Context, employee *types.Employee) (*types.Employee, error)
	GetEmployeeByID(ctx context.Context, tenantID, employeeID string) (*types.Employee, error)
	ListEmployeesByTenantID(ctx context.Context, tenantID string, offset, size uint64) ([]*types.Employee, error)
	UpdateEmployee(ctx context.Context, employee *types.Employee) (*types.Employee, error)
	DeleteEmployee(ctx context.Context, tenantID, employeeID string) error

	// Holidays
	CreateHoliday(ctx context.Context, tenantID, name string, date time.Time, recurring bool) (*types.Holiday, error)
	ListHolidaysByTenantID(ctx context.Context, tenantID string) ([]*types.Holiday, error)
	UpdateHoliday(ctx context.Context, tenantID, holidayID, name string, date time.Time, recurring bool) (*types.Holiday, error)
	DeleteHoliday(ctx context.Context, tenantID, holidayID string) error

	// Leave
	CreateLeaveType(ctx context.Context, tenantID, name string, defaultDays int, paid bool) (*types.LeaveType, error)
	ListLeaveTypesByTenantID(ctx context.Context, tenantID string) ([]*types.LeaveType, error)
	UpdateLeaveType(ctx context.Context, tenantID, leaveTypeID, name string, defaultDays int, paid bool) (*types.LeaveType, error)
	DeleteLeaveType(ctx context.Context, tenantID, leaveTypeID string) error
	LockLeaveTypeByID(ctx context.Context, tenantID, leaveTypeID string) (*types.LeaveType, error)
	UpsertLeaveEntitlement(ctx context.Context, entitlement *types.LeaveEntitlement) (*types.LeaveEntitlement, error)
	ListLeaveEntitlements(ctx context.Context, tenantID, employeeID string, year int) ([]*types.LeaveEntitlement, error)
	DeleteLeaveEntitlement(ctx context.Context, tenantID, entitlementID string) error
	ListLeaveDefaults(ctx context.Context, tenantID, leaveTypeID string) ([]*types.LeaveDefault, error)
	ReplaceLeaveDefaults(ctx context.Context, tenantID, leaveTypeID string, defaults []*types.LeaveDefault) error

	// Dropdown options
	CreateDropdownOption(ctx context.Context, option *types.DropdownOption) (*types.DropdownOption, error)
	ListDropdownOptions(ctx context.Context, tenantID, category string) ([]*types.DropdownOption, error)
	DeleteDropdownOption(ctx context.Context, tenantID, optionID string) error

	// Work schedules
	CreateWorkScheduleGroup(ctx context.Context, tenantID, name, description string) (*types.WorkScheduleGroup, error)
	ListWorkScheduleGroups(ctx context.Context, tenantID string) ([]*types.WorkScheduleGroup, error)
	GetWorkScheduleGroupByID(ctx context.Context, tenantID, groupID string) (*types.WorkScheduleGroup, error)
	LockWorkScheduleGroupByID(ctx context.Context, tenantID, groupID string) (*types.WorkScheduleGroup, error)
	UpdateWorkScheduleGroup(ctx context.Context, tenantID, groupID, name, description string) (*types.WorkScheduleGroup, error)
	DeleteWorkScheduleGroup(ctx context.Context, tenantID, groupID string) error
	ListWorkScheduleDays(ctx context.Context, groupID string) ([]types.WorkScheduleDay, error)
	ReplaceWorkScheduleDays(ctx context.Context, groupID string, days []types.WorkScheduleDay) error

	// Employee ID format
	GetEmployeeIDFormat(ctx context.Context, tenantID string) (*types.EmployeeIDFormat, error)
	UpsertEmployeeIDFormat(ctx context.Context, format *types.EmployeeIDFormat) (*types.EmployeeIDFormat, error)

	// Settings
	GetCompanySettings(ctx context.Context, tenantID string) (*types.CompanySettings, error)
	UpsertCompanySettings(ctx context.Context, settings *types.CompanySettings) (*types.CompanySettings, error)
}
