// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schedules

import (
	"context"

	"github.com/canonical/workforce-service/internal/types"
)

type ServiceInterface interface {
	ListGroups(ctx context.Context, tenantID string) ([]*types.WorkScheduleGroup, error)
	CreateGroup(ctx context.Context, tenantID, name, description string) (*types.WorkScheduleGroup, error)
	UpdateGroup(ctx context.Context, tenantID, groupID, name, description string) (*types.WorkScheduleGroup, error)
	DeleteGroup(ctx context.Context, tenantID, groupID string) error
	GetSchedule(ctx context.Context, tenantID, groupID string) ([]types.WorkScheduleDay, error)
	ReplaceSchedule(ctx context.Context, tenantID, groupID string, days []types.WorkScheduleDay) ([]types.WorkScheduleDay, error)
	GetIDFormat(ctx context.Context, tenantID string) (*types.EmployeeIDFormat, error)
	UpdateIDFormat(ctx context.Context, format *types.EmployeeIDFormat) (*types.EmployeeIDFormat, error)
}

type StorageInterface interface {
	CreateWorkScheduleGroup(ctx context.Context, tenantID, name, description string) (*types.WorkScheduleGroup, error)
	ListWorkScheduleGroups(ctx context.Context, tenantID string) ([]*types.WorkScheduleGroup, error)
	GetWorkScheduleGroupByID(ctx context.Context, tenantID, groupID string) (*types.WorkScheduleGroup, error)
	LockWorkScheduleGroupByID(ctx context.Context, tenantID, groupID string) (*types.WorkScheduleGroup, error)
	UpdateWorkScheduleGroup(ctx context.Context, tenantID, groupID, name, description string) (*types.WorkScheduleGroup, error)
	DeleteWorkScheduleGroup(ctx context.Context, tenantID, groupID string) error
	ListWorkScheduleDays(ctx context.Context, groupID string) ([]types.WorkScheduleDay, error)
	ReplaceWorkScheduleDays(ctx context.Context, groupID string, days []types.WorkScheduleDay) error
	GetEmployeeIDFormat(ctx context.Context, tenantID string) (*types.EmployeeIDFormat, error)
	UpsertEmployeeIDFormat(ctx context.Context, format *types.EmployeeIDFormat) (*types.EmployeeIDFormat, error)
}
