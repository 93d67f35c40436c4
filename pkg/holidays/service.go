// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package holidays

import (
	"context"
	"errors"
	"time"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
)

var (
	ErrHolidayNotFound  = errors.New("holiday not found")
	ErrDuplicateHoliday = errors.New("holiday already exists on that date")
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

// ListHolidays returns the tenant's holidays, optionally restricted to one
// year. Recurring holidays match every year.
func (s *Service) ListHolidays(ctx context.Context, tenantID string, year int) ([]*types.Holiday, error) {
	ctx, span := s.tracer.Start(ctx, "holidays.Service.ListHolidays")
	defer span.End()

	holidays, err := s.storage.ListHolidaysByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		return holidays, nil
	}

	filtered := make([]*types.Holiday, 0, len(holidays))
	for _, h := range holidays {
		if h.Date.Year() == year || h.Recurring {
			filtered = append(filtered, h)
		}
	}

	return filtered, nil
}

func (s *Service) CreateHoliday(ctx context.Context, tenantID, name string, date time.Time, recurring bool) (*types.Holiday, error) {
	ctx, span := s.tracer.Start(ctx, "holidays.Service.CreateHoliday")
	defer span.End()

	holiday, err := s.storage.CreateHoliday(ctx, tenantID, name, date, recurring)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateHoliday
		}
		return nil, err
	}

	return holiday, nil
}

func (s *Service) UpdateHoliday(ctx context.Context, tenantID, holidayID, name string, date time.Time, recurring bool) (*types.Holiday, error) {
	ctx, span := s.tracer.Start(ctx, "holidays.Service.UpdateHoliday")
	defer span.End()

	holiday, err := s.storage.UpdateHoliday(ctx, tenantID, holidayID, name, date, recurring)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrHolidayNotFound
		}
		return nil, err
	}

	return holiday, nil
}

func (s *Service) DeleteHoliday(ctx context.Context, tenantID, holidayID string) error {
	ctx, span := s.tracer.Start(ctx, "holidays.Service.DeleteHoliday")
	defer span.End()

	if err := s.storage.DeleteHoliday(ctx, tenantID, holidayID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrHolidayNotFound
		}
		return err
	}

	return nil
}
