// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dropdowns

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
	ErrOptionNotFound  = errors.New("dropdown option not found")
	ErrDuplicateOption = errors.New("dropdown option already exists in that category")
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

// ListOptions returns the tenant's dropdown options, all categories when
// category is empty.
func (s *Service) ListOptions(ctx context.Context, tenantID, category string) ([]*types.DropdownOption, error) {
	ctx, span := s.tracer.Start(ctx, "dropdowns.Service.ListOptions")
	defer span.End()

	return s.storage.ListDropdownOptions(ctx, tenantID, category)
}

func (s *Service) CreateOption(ctx context.Context, option *types.DropdownOption) (*types.DropdownOption, error) {
	ctx, span := s.tracer.Start(ctx, "dropdowns.Service.CreateOption")
	defer span.End()

	created, err := s.storage.CreateDropdownOption(ctx, option)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrDuplicateOption
		}
		return nil, err
	}

	return created, nil
}

func (s *Service) DeleteOption(ctx context.Context, tenantID, optionID string) error {
	ctx, span := s.tracer.Start(ctx, "dropdowns.Service.DeleteOption")
	defer span.End()

	if err := s.storage.DeleteDropdownOption(ctx, tenantID, optionID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrOptionNotFound
		}
		return err
	}

	return nil
}
