// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package employees

import (
	"context"

	"github.com/canonical/workforce-service/internal/types"
)

type ServiceInterface interface {
	ListEmployees(ctx context.Context, tenantID string, offset, size uint64) ([]*types.Employee, error)
	GetEmployee(ctx context.Context, tenantID, employeeID string) (*types.Employee, error)
	CreateEmployee(ctx context.Context, employee *types.Employee) (*types.Employee, error)
	UpdateEmployee(ctx context.Context, employee *types.Employee) (*types.Employee, error)
	DeleteEmployee(ctx context.Context, tenantID, employeeID string) error
}

type StorageInterface interface {
	CreateEmployee(ctx context.Context, employee *types.Employee) (*types.Employee, error)
	GetEmployeeByID(ctx context.Context, tenantID, employeeID string) (*types.Employee, error)
	ListEmployeesByTenantID(ctx context.Context, tenantID string, offset, size uint64) ([]*types.Employee, error)
	UpdateEmployee(ctx context.Context, employee *types.Employee) (*types.Employee, error)
	DeleteEmployee(ctx context.Context, tenantID, employeeID string) error
}
