// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package holidays

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package holidays -destination ./mock_holidays.go -source=./interfaces.go

func newTestService(mockStorage *MockStorageInterface) *Service {
	return NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestService_ListHolidays(t *testing.T) {
	date := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}

	all := []*types.Holiday{
		{ID: "h-1", Name: "Company Day", Date: date(2025, time.March, 3)},
		{ID: "h-2", Name: "Founding Day", Date: date(2026, time.June, 9)},
		{ID: "h-3", Name: "New Year", Date: date(2024, time.January, 1), Recurring: true},
	}

	testCases := []struct {
		name        string
		year        int
		expectedIDs []string
	}{
		{
			name:        "no year filter returns everything",
			year:        0,
			expectedIDs: []string{"h-1", "h-2", "h-3"},
		},
		{
			name:        "year filter keeps matching and recurring holidays",
			year:        2026,
			expectedIDs: []string{"h-2", "h-3"},
		},
		{
			name:        "year with only recurring matches",
			year:        2030,
			expectedIDs: []string{"h-3"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().ListHolidaysByTenantID(gomock.Any(), "tenant-1").Return(all, nil)

			holidays, err := newTestService(mockStorage).ListHolidays(context.Background(), "tenant-1", tc.year)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(holidays) != len(tc.expectedIDs) {
				t.Fatalf("expected %d holidays, got %d", len(tc.expectedIDs), len(holidays))
			}
			for i, id := range tc.expectedIDs {
				if holidays[i].ID != id {
					t.Errorf("expected holiday %q at index %d, got %q", id, i, holidays[i].ID)
				}
			}
		})
	}
}

func TestService_CreateHoliday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CreateHoliday(gomock.Any(), "tenant-1", "Company Day", gomock.Any(), false).
		Return(nil, storage.ErrDuplicateKey)

	_, err := newTestService(mockStorage).CreateHoliday(context.Background(), "tenant-1", "Company Day", time.Now(), false)
	if !errors.Is(err, ErrDuplicateHoliday) {
		t.Errorf("expected ErrDuplicateHoliday, got %v", err)
	}
}

func TestService_DeleteHoliday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().DeleteHoliday(gomock.Any(), "tenant-1", "h-9").Return(storage.ErrNotFound)

	err := newTestService(mockStorage).DeleteHoliday(context.Background(), "tenant-1", "h-9")
	if !errors.Is(err, ErrHolidayNotFound) {
		t.Errorf("expected ErrHolidayNotFound, got %v", err)
	}
}
