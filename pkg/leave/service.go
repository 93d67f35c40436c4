// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package leave manages leave types and per-employee entitlements.
package leave

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
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrDuplicateLeaveType   = errors.New("leave type already exists")
	ErrLeaveTypeInUse       = errors.New("leave type has entitlements")
	ErrEntitlementNotFound  = errors.New("leave entitlement not found")
	ErrUnknownReference     = errors.New("employee or leave type does not exist")
	ErrDuplicateServiceYear = errors.New("service year listed more than once")
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

func (s *Service) ListLeaveTypes(ctx context.Context, tenantID string) ([]*types.LeaveType, error) {
	ctx, span := s.tracer.Start(ctx, "leave.Service.ListLeaveTypes")
	defer span.End()

	return s.storage.ListLeaveTypesByTenantID(ctx, tenantID)
}

func (s *Service) CreateLeaveType(ctx context.Context, tenantID, name string, defaultDays int, paid bool) (*types.LeaveType, error) {
	ctx, span := s.tracer.Start(ctx, "leave.Service.CreateLeaveType")
	defer span.End()

	leaveType, err := s.storage.CreateLeaveType(ctx, tenantID, name, defaultDays, paid)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateLeaveType
		}
		return nil, err
	}

	return leaveType, nil
}

func (s *Service) UpdateLeaveType(ctx context.Context, tenantID, leaveTypeID, name string, defaultDays int, paid bool) (*types.LeaveType, error) {
	ctx, span := s.tracer.Start(ctx, "leave.Service.UpdateLeaveType")
	defer span.End()

	leaveType, err := s.storage.UpdateLeaveType(ctx, tenantID, leaveTypeID, name, defaultDays, paid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrLeaveTypeNotFound
		}
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateLeaveType
		}
		return nil, err
	}

	return leaveType, nil
}

func (s *Service) DeleteLeaveType(ctx context.Context, tenantID, leaveTypeID string) error {
	ctx, span := s.tracer.Start(ctx, "leave.Service.DeleteLeaveType")
	defer span.End()

	if err := s.storage.DeleteLeaveType(ctx, tenantID, leaveTypeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrLeaveTypeNotFound
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return ErrLeaveTypeInUse
		}
		return err
	}

	return nil
}

// SetEntitlement writes an employee's allowance for one leave type and year,
// overwriting a previous allocation.
func (s *Service) SetEntitlement(ctx context.Context, entitlement *types.LeaveEntitlement) (*types.LeaveEntitlement, error) {
	ctx, span := s.tracer.Start(ctx, "leave.Service.SetEntitlement")
	defer span.End()

	result, err := s.storage.UpsertLeaveEntitlement(ctx, entitlement)
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, ErrUnknownReference
		}
		return nil, err
	}

	return result, nil
}

func (s *Service) ListEntitlements(ctx context.Context, tenantID, employeeID string, year int) ([]*types.LeaveEntitlement, error) {
	ctx, span := s.tracer.Start(ctx, "leave.Service.ListEntitlements")
	defer span.End()

	return s.storage.ListLeaveEntitlements(ctx, tenantID, employeeID, year)
}

func (s *Service) DeleteEntitlement(ctx context.Context, tenantID, entitlementID string) error {
	ctx, span := s.tracer.Start(ctx, "leave.Service.DeleteEntitlement")
	defer span.End()

	if err := s.storage.DeleteLeaveEntitlement(ctx, tenantID, entitlementID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrEntitlementNotFound
		}
		return err
	}

	return nil
}

// ListDefaults returns the tenant's default entitlement tiers, all leave
// types when leaveTypeID is empty.
func (s *Service) ListDefaults(ctx context.Context, tenantID, leaveTypeID string) ([]*types.LeaveDefault, error) {
	ctx, span := s.tracer.Start(ctx, "leave.Service.ListDefaults")
	defer span.End()

	return s.storage.ListLeaveDefaults(ctx, tenantID, leaveTypeID)
}

// ReplaceDefaults rewrites one leave type's default entitlement tiers. The
// leave type row is locked first so two concurrent replacements resolve to
// exactly one caller's set, never a merge.
func (s *Service) ReplaceDefaults(ctx context.Context, tenantID, leaveTypeID string, defaults []*types.LeaveDefault) ([]*types.LeaveDefault, error) {
	ctx, span := s.tracer.Start(ctx, "leave.Service.ReplaceDefaults")
	defer span.End()

	seen := make(map[int]struct{}, len(defaults))
	for _, def := range defaults {
		if _, ok := seen[def.ServiceYear]; ok {
			return nil, ErrDuplicateServiceYear
		}
		seen[def.ServiceYear] = struct{}{}
	}

	if _, err := s.storage.LockLeaveTypeByID(ctx, tenantID, leaveTypeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrLeaveTypeNotFound
		}
		return nil, err
	}

	if err := s.storage.ReplaceLeaveDefaults(ctx, tenantID, leaveTypeID, defaults); err != nil {
		return nil, err
	}

	return s.storage.ListLeaveDefaults(ctx, tenantID, leaveTypeID)
}
