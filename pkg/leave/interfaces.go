// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leave

import (
	"context"

	"github.com/canonical/workforce-service/internal/types"
)

type ServiceInterface interface {
	ListLeaveTypes(ctx context.Context, tenantID string) ([]*types.LeaveType, error)
	CreateLeaveType(ctx context.Context, tenantID, name string, defaultDays int, paid bool) (*types.LeaveType, error)
	UpdateLeaveType(ctx context.Context, tenantID, leaveTypeID, name string, defaultDays int, paid bool) (*types.LeaveType, error)
	DeleteLeaveType(ctx context.Context, tenantID, leaveTypeID string) error
	SetEntitlement(ctx context.Context, entitlement *types.LeaveEntitlement) (*types.LeaveEntitlement, error)
	ListEntitlements(ctx context.Context, tenantID, employeeID string, year int) ([]*types.LeaveEntitlement, error)
	DeleteEntitlement(ctx context.Context, tenantID, entitlementID string) error
	ListDefaults(ctx context.Context, tenantID, leaveTypeID string) ([]*types.LeaveDefault, error)
	ReplaceDefaults(ctx context.Context, tenantID, leaveTypeID string, defaults []*types.LeaveDefault) ([]*types.LeaveDefault, error)
}

type StorageInterface interface {
	CreateLeaveType(ctx context.Context, tenantID, name string, defaultDays int, paid bool) (*types.LeaveType, error)
	ListLeaveTypesByTenantID(ctx context.Context, tenantID string) ([]*types.LeaveType, error)
	UpdateLeaveType(ctx context.Context, tenantID, leaveTypeID, name string, defaultDays int, paid bool) (*types.LeaveType, error)
	DeleteLeaveType(ctx context.Context, tenantID, leaveTypeID string) error
	UpsertLeaveEntitlement(ctx context.Context, entitlement *types.LeaveEntitlement) (*types.LeaveEntitlement, error)
	ListLeaveEntitlements(ctx context.Context, tenantID, employeeID string, year int) ([]*types.LeaveEntitlement, error)
	DeleteLeaveEntitlement(ctx context.Context, tenantID, entitlementID string) error
	LockLeaveTypeByID(ctx context.Context, tenantID, leaveTypeID string) (*types.LeaveType, error)
	ListLeaveDefaults(ctx context.Context, tenantID, leaveTypeID string) ([]*types.LeaveDefault, error)
	ReplaceLeaveDefaults(ctx context.Context, tenantID, leaveTypeID string, defaults []*types.LeaveDefault) error
}
