// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package settings

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package settings -destination ./mock_settings.go -source=./interfaces.go

func newTestService(mockStorage *MockStorageInterface) *Service {
	return NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestService_GetCompanySettings(t *testing.T) {
	t.Run("returns saved settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		saved := &types.CompanySettings{TenantID: "tenant-1", CompanyName: "Acme", Timezone: "Europe/London", WeekStartsOn: "sunday"}
		mockStorage.EXPECT().GetCompanySettings(gomock.Any(), "tenant-1").Return(saved, nil)

		settings, err := newTestService(mockStorage).GetCompanySettings(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if settings.Timezone != "Europe/London" {
			t.Errorf("expected saved timezone, got %q", settings.Timezone)
		}
	})

	t.Run("falls back to tenant defaults when nothing is saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().GetCompanySettings(gomock.Any(), "tenant-1").Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1", CompanyName: "Acme"}, nil)

		settings, err := newTestService(mockStorage).GetCompanySettings(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if settings.CompanyName != "Acme" {
			t.Errorf("expected company name from tenant, got %q", settings.CompanyName)
		}
		if settings.Timezone != "UTC" || settings.WeekStartsOn != "monday" {
			t.Errorf("expected default timezone and week start, got %q and %q", settings.Timezone, settings.WeekStartsOn)
		}
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dbErr := errors.New("db error")
		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().GetCompanySettings(gomock.Any(), "tenant-1").Return(nil, dbErr)

		if _, err := newTestService(mockStorage).GetCompanySettings(context.Background(), "tenant-1"); !errors.Is(err, dbErr) {
			t.Errorf("expected db error, got %v", err)
		}
	})
}
