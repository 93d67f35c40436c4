// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package holidays

import (
	"context"
	"time"

	"github.com/canonical/workforce-service/internal/types"
)

type ServiceInterface interface {
	ListHolidays(ctx context.Context, tenantID string, year int) ([]*types.Holiday, error)
	CreateHoliday(ctx context.Context, tenantID, name string, date time.Time, recurring bool) (*types.Holiday, error)
	UpdateHoliday(ctx context.Context, tenantID, holidayID, name string, date time.Time, recurring bool) (*types.Holiday, error)
	DeleteHoliday(ctx context.Context, tenantID, holidayID string) error
}

type StorageInterface interface {
	CreateHoliday(ctx context.Context, tenantID, name string, date time.Time, recurring bool) (*types.Holiday, error)
	ListHolidaysByTenantID(ctx context.Context, tenantID string) ([]*types.Holiday, error)
	UpdateHoliday(ctx context.Context, tenantID, holidayID, name string, date time.Time, recurring bool) (*types.Holiday, error)
	DeleteHoliday(ctx context.Context, tenantID, holidayID string) error
}
