// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package settings

import (
	"context"
	"errors"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
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

// GetCompanySettings returns the saved settings, falling back to defaults
// derived from the tenant when nothing has been saved yet.
func (s *Service) GetCompanySettings(ctx context.Context, tenantID string) (*types.CompanySettings, error) {
	ctx, span := s.tracer.Start(ctx, "settings.Service.GetCompanySettings")
	defer span.End()

	saved, err := s.storage.GetCompanySettings(ctx, tenantID)
	if err == nil {
		return saved, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &types.CompanySettings{
		TenantID:     tenantID,
		CompanyName:  tenant.CompanyName,
		Timezone:     "UTC",
		WeekStartsOn: "monday",
	}, nil
}

func (s *Service) UpdateCompanySettings(ctx context.Context, settings *types.CompanySettings) (*types.CompanySettings, error) {
	ctx, span := s.tracer.Start(ctx, "settings.Service.UpdateCompanySettings")
	defer span.End()

	return s.storage.UpsertCompanySettings(ctx, settings)
}
