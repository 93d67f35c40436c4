// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authorization resolves a principal's effective permissions and
// gates requests on them.
package authorization

// Permission codes known to the catalog. The catalog rows are seeded by
// migration, these constants keep handler wiring typo-safe.
const (
	PermDashboardRead = "erp:dashboard:read"

	PermPermissionsRead  = "rbac:permissions:read"
	PermRolesRead        = "rbac:roles:read"
	PermRolesWrite       = "rbac:roles:write"
	PermUsersAssignRoles = "rbac:users:assign_roles"

	PermEmployeesRead  = "employees:read"
	PermEmployeesWrite = "employees:write"

	PermHolidaysRead  = "holidays:read"
	PermHolidaysWrite = "holidays:write"

	PermLeaveTypesRead         = "leave_types:read"
	PermLeaveTypesWrite        = "leave_types:write"
	PermLeaveEntitlementsRead  = "leave_entitlements:read"
	PermLeaveEntitlementsWrite = "leave_entitlements:write"
	PermLeaveDefaultsRead      = "leave_defaults:read"
	PermLeaveDefaultsWrite     = "leave_defaults:write"

	PermWorkScheduleGroupsRead  = "work_schedule_groups:read"
	PermWorkScheduleGroupsWrite = "work_schedule_groups:write"

	PermDropdownsRead  = "dropdowns:read"
	PermDropdownsWrite = "dropdowns:write"

	PermCompanySettingsRead  = "settings:company:read"
	PermCompanySettingsWrite = "settings:company:write"

	PermEmployeeSettingsRead  = "employee_settings:read"
	PermEmployeeSettingsWrite = "employee_settings:write"

	PermTenantUsersRead          = "tenant_users:read"
	PermTenantUsersWrite         = "tenant_users:write"
	PermTenantUsersResetPassword = "tenant_users:reset_password"

	PermWorkspacesRead  = "workspaces:read"
	PermWorkspacesWrite = "workspaces:write"

	PermProfileRead  = "profile:read"
	PermProfileWrite = "profile:write"
)

// DefaultManagerPermissions and DefaultStaffPermissions are the fixed grants
// for the bootstrap roles of a new tenant. The Admin role is granted the
// entire catalog at bootstrap time instead of a fixed list, so a catalog
// migration automatically widens new Admin roles.
var (
	DefaultManagerPermissions = []string{
		PermDashboardRead,
		PermPermissionsRead,
		PermRolesRead,
	}

	DefaultStaffPermissions = []string{
		PermDashboardRead,
	}
)
