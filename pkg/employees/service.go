// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package employees

import (
	"context"
	"errors"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
)

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrDuplicateEmail       = errors.New("employee email already exists")
	ErrUnknownReference     = errors.New("linked user or work schedule group does not exist")
)

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

func (s *Service) ListEmployees(ctx context.Context, tenantID string, offset, size uint64) ([]*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "employees.Service.ListEmployees")
	defer span.End()

	return s.storage.ListEmployeesByTenantID(ctx, tenantID, offset, size)
}

func (s *Service) GetEmployee(ctx context.Context, tenantID, employeeID string) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "employees.Service.GetEmployee")
	defer span.End()

	employee, err := s.storage.GetEmployeeByID(ctx, tenantID, employeeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	return employee, nil
}

func (s *Service) CreateEmployee(ctx context.Context, employee *types.Employee) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "employees.Service.CreateEmployee")
	defer span.End()

	created, err := s.storage.CreateEmployee(ctx, employee)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, ErrUnknownReference
		}
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, employee *types.Employee) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "employees.Service.UpdateEmployee")
	defer span.End()

	updated, err := s.storage.UpdateEmployee(ctx, employee)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, ErrUnknownReference
		}
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, tenantID, employeeID string) error {
	ctx, span := s.tracer.Start(ctx, "employees.Service.DeleteEmployee")
	defer span.End()

	if err := s.storage.DeleteEmployee(ctx, tenantID, employeeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}

	return nil
}
