// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package schedules covers the employee settings surface: weekly work
// schedule groups and the employee ID numbering format.
package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
)

// Day types a schedule entry can take.
const (
	DayTypeOff  = "off"
	DayTypeFull = "full"
	DayTypeHalf = "half"
)

const daysPerWeek = 7

// Defaults applied when a tenant has never configured an ID format.
const (
	defaultIDPrefix     = "EMP"
	defaultZeroPadding  = 5
	defaultNextSequence = 1
)

var (
	ErrGroupNotFound      = errors.New("work schedule group not found")
	ErrDuplicateGroupName = errors.New("work schedule group name already in use")
	ErrGroupInUse         = errors.New("work schedule group is referenced by employees")
	ErrInvalidSchedule    = errors.New("invalid weekly schedule")
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

func (s *Service) ListGroups(ctx context.Context, tenantID string) ([]*types.WorkScheduleGroup, error) {
	ctx, span := s.tracer.Start(ctx, "schedules.Service.ListGroups")
	defer span.End()

	return s.storage.ListWorkScheduleGroups(ctx, tenantID)
}

func (s *Service) CreateGroup(ctx context.Context, tenantID, name, description string) (*types.WorkScheduleGroup, error) {
	ctx, span := s.tracer.Start(ctx, "schedules.Service.CreateGroup")
	defer span.End()

	group, err := s.storage.CreateWorkScheduleGroup(ctx, tenantID, name, description)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateGroupName
		}
		return nil, err
	}

	return group, nil
}

func (s *Service) UpdateGroup(ctx context.Context, tenantID, groupID, name, description string) (*types.WorkScheduleGroup, error) {
	ctx, span := s.tracer.Start(ctx, "schedules.Service.UpdateGroup")
	defer span.End()

	group, err := s.storage.UpdateWorkScheduleGroup(ctx, tenantID, groupID, name, description)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateGroupName
		}
		return nil, err
	}

	return group, nil
}

func (s *Service) DeleteGroup(ctx context.Context, tenantID, groupID string) error {
	ctx, span := s.tracer.Start(ctx, "schedules.Service.DeleteGroup")
	defer span.End()

	if err := s.storage.DeleteWorkScheduleGroup(ctx, tenantID, groupID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrGroupNotFound
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return ErrGroupInUse
		}
		return err
	}

	return nil
}

// GetSchedule returns the group's full week. Days never stored are reported
// as off, so callers always see seven entries.
func (s *Service) GetSchedule(ctx context.Context, tenantID, groupID string) ([]types.WorkScheduleDay, error) {
	ctx, span := s.tracer.Start(ctx, "schedules.Service.GetSchedule")
	defer span.End()

	if _, err := s.storage.GetWorkScheduleGroupByID(ctx, tenantID, groupID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	days, err := s.storage.ListWorkScheduleDays(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return normalizeWeek(days), nil
}

// ReplaceSchedule validates and stores a full week for the group. The group
// row is locked first so two concurrent replacements resolve to exactly one
// caller's week, never a merge.
func (s *Service) ReplaceSchedule(ctx context.Context, tenantID, groupID string, days []types.WorkScheduleDay) ([]types.WorkScheduleDay, error) {
	ctx, span := s.tracer.Start(ctx, "schedules.Service.ReplaceSchedule")
	defer span.End()

	if err := validateWeek(days); err != nil {
		return nil, err
	}

	if _, err := s.storage.LockWorkScheduleGroupByID(ctx, tenantID, groupID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	week := normalizeWeek(days)
	if err := s.storage.ReplaceWorkScheduleDays(ctx, groupID, week); err != nil {
		return nil, err
	}

	return week, nil
}

func (s *Service) GetIDFormat(ctx context.Context, tenantID string) (*types.EmployeeIDFormat, error) {
	ctx, span := s.tracer.Start(ctx, "schedules.Service.GetIDFormat")
	defer span.End()

	format, err := s.storage.GetEmployeeIDFormat(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &types.EmployeeIDFormat{
				TenantID:     tenantID,
				IDPrefix:     defaultIDPrefix,
				ZeroPadding:  defaultZeroPadding,
				NextSequence: defaultNextSequence,
			}, nil
		}
		return nil, err
	}

	return format, nil
}

func (s *Service) UpdateIDFormat(ctx context.Context, format *types.EmployeeIDFormat) (*types.EmployeeIDFormat, error) {
	ctx, span := s.tracer.Start(ctx, "schedules.Service.UpdateIDFormat")
	defer span.End()

	return s.storage.UpsertEmployeeIDFormat(ctx, format)
}

// PreviewID renders the next employee number the format would produce, e.g.
// EMP00042.
func PreviewID(format *types.EmployeeIDFormat) string {
	return fmt.Sprintf("%s%0*d", format.IDPrefix, format.ZeroPadding, format.NextSequence)
}

// validateWeek requires exactly seven entries covering days 0 through 6 once
// each, every entry carrying a known day type.
func validateWeek(days []types.WorkScheduleDay) error {
	if len(days) > daysPerWeek {
		return fmt.Errorf("%w: expected at most %d entries, got %d", ErrInvalidSchedule, daysPerWeek, len(days))
	}

	var seen [daysPerWeek]bool
	for _, day := range days {
		if day.DayOfWeek < 0 || day.DayOfWeek >= daysPerWeek {
			return fmt.Errorf("%w: day_of_week %d out of range", ErrInvalidSchedule, day.DayOfWeek)
		}
		if seen[day.DayOfWeek] {
			return fmt.Errorf("%w: day_of_week %d listed twice", ErrInvalidSchedule, day.DayOfWeek)
		}
		seen[day.DayOfWeek] = true

		switch day.DayType {
		case DayTypeOff, DayTypeFull, DayTypeHalf:
		default:
			return fmt.Errorf("%w: unknown day type %q", ErrInvalidSchedule, day.DayType)
		}
	}

	return nil
}

// normalizeWeek returns seven entries ordered by day, filling days the input
// omits with off.
func normalizeWeek(days []types.WorkScheduleDay) []types.WorkScheduleDay {
	week := make([]types.WorkScheduleDay, daysPerWeek)
	for i := range week {
		week[i] = types.WorkScheduleDay{DayOfWeek: i, DayType: DayTypeOff}
	}
	for _, day := range days {
		if day.DayOfWeek >= 0 && day.DayOfWeek < daysPerWeek {
			week[day.DayOfWeek] = day
		}
	}
	return week
}
