// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schedules

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

//go:generate mockgen -build_flags=--mod=mod -package schedules -destination ./mock_schedules.go -source=./interfaces.go

func newTestService(mockStorage *MockStorageInterface) *Service {
	return NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func fullWeek() []types.WorkScheduleDay {
	return []types.WorkScheduleDay{
		{DayOfWeek: 0, DayType: DayTypeFull},
		{DayOfWeek: 1, DayType: DayTypeFull},
		{DayOfWeek: 2, DayType: DayTypeFull},
		{DayOfWeek: 3, DayType: DayTypeFull},
		{DayOfWeek: 4, DayType: DayTypeHalf},
		{DayOfWeek: 5, DayType: DayTypeOff},
		{DayOfWeek: 6, DayType: DayTypeOff},
	}
}

func TestService_CreateGroup(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(mockStorage *MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().
					CreateWorkScheduleGroup(gomock.Any(), "tenant-1", "Head Office", "Mon-Fri").
					Return(&types.WorkScheduleGroup{ID: "grp-1", Name: "Head Office"}, nil)
			},
		},
		{
			name: "duplicate name",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().
					CreateWorkScheduleGroup(gomock.Any(), "tenant-1", "Head Office", "Mon-Fri").
					Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrDuplicateGroupName,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			group, err := newTestService(mockStorage).CreateGroup(context.Background(), "tenant-1", "Head Office", "Mon-Fri")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if group.ID != "grp-1" {
				t.Errorf("expected group ID grp-1, got %q", group.ID)
			}
		})
	}
}

func TestService_DeleteGroup(t *testing.T) {
	testCases := []struct {
		name        string
		storageErr  error
		expectedErr error
	}{
		{name: "success"},
		{name: "unknown group", storageErr: storage.ErrNotFound, expectedErr: ErrGroupNotFound},
		{name: "group still assigned to employees", storageErr: storage.ErrForeignKeyViolation, expectedErr: ErrGroupInUse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().DeleteWorkScheduleGroup(gomock.Any(), "tenant-1", "grp-1").Return(tc.storageErr)

			err := newTestService(mockStorage).DeleteGroup(context.Background(), "tenant-1", "grp-1")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_GetSchedule(t *testing.T) {
	t.Run("fills unstored days with off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().
			GetWorkScheduleGroupByID(gomock.Any(), "tenant-1", "grp-1").
			Return(&types.WorkScheduleGroup{ID: "grp-1"}, nil)
		mockStorage.EXPECT().
			ListWorkScheduleDays(gomock.Any(), "grp-1").
			Return([]types.WorkScheduleDay{
				{DayOfWeek: 0, DayType: DayTypeFull},
				{DayOfWeek: 4, DayType: DayTypeHalf},
			}, nil)

		days, err := newTestService(mockStorage).GetSchedule(context.Background(), "tenant-1", "grp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(days) != 7 {
			t.Fatalf("expected 7 days, got %d", len(days))
		}
		if days[0].DayType != DayTypeFull || days[4].DayType != DayTypeHalf {
			t.Errorf("stored days not preserved: %+v", days)
		}
		for _, i := range []int{1, 2, 3, 5, 6} {
			if days[i].DayType != DayTypeOff {
				t.Errorf("expected day %d to default to off, got %q", i, days[i].DayType)
			}
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().
			GetWorkScheduleGroupByID(gomock.Any(), "tenant-1", "grp-404").
			Return(nil, storage.ErrNotFound)

		if _, err := newTestService(mockStorage).GetSchedule(context.Background(), "tenant-1", "grp-404"); !errors.Is(err, ErrGroupNotFound) {
			t.Fatalf("expected ErrGroupNotFound, got %v", err)
		}
	})
}

func TestService_ReplaceSchedule(t *testing.T) {
	t.Run("locks the group before rewriting the week", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		lock := mockStorage.EXPECT().
			LockWorkScheduleGroupByID(gomock.Any(), "tenant-1", "grp-1").
			Return(&types.WorkScheduleGroup{ID: "grp-1"}, nil)
		mockStorage.EXPECT().
			ReplaceWorkScheduleDays(gomock.Any(), "grp-1", fullWeek()).
			Return(nil).
			After(lock)

		week, err := newTestService(mockStorage).ReplaceSchedule(context.Background(), "tenant-1", "grp-1", fullWeek())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(week) != 7 {
			t.Fatalf("expected 7 days, got %d", len(week))
		}
	})

	t.Run("partial week is padded with off before storing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		expected := []types.WorkScheduleDay{
			{DayOfWeek: 0, DayType: DayTypeFull},
			{DayOfWeek: 1, DayType: DayTypeOff},
			{DayOfWeek: 2, DayType: DayTypeOff},
			{DayOfWeek: 3, DayType: DayTypeOff},
			{DayOfWeek: 4, DayType: DayTypeOff},
			{DayOfWeek: 5, DayType: DayTypeOff},
			{DayOfWeek: 6, DayType: DayTypeOff},
		}

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().
			LockWorkScheduleGroupByID(gomock.Any(), "tenant-1", "grp-1").
			Return(&types.WorkScheduleGroup{ID: "grp-1"}, nil)
		mockStorage.EXPECT().ReplaceWorkScheduleDays(gomock.Any(), "grp-1", expected).Return(nil)

		week, err := newTestService(mockStorage).ReplaceSchedule(context.Background(), "tenant-1", "grp-1",
			[]types.WorkScheduleDay{{DayOfWeek: 0, DayType: DayTypeFull}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if week[6].DayType != DayTypeOff {
			t.Errorf("expected trailing day to default to off, got %q", week[6].DayType)
		}
	})

	invalidCases := []struct {
		name string
		days []types.WorkScheduleDay
	}{
		{
			name: "day listed twice",
			days: []types.WorkScheduleDay{
				{DayOfWeek: 0, DayType: DayTypeFull},
				{DayOfWeek: 0, DayType: DayTypeOff},
			},
		},
		{
			name: "day out of range",
			days: []types.WorkScheduleDay{{DayOfWeek: 7, DayType: DayTypeFull}},
		},
		{
			name: "unknown day type",
			days: []types.WorkScheduleDay{{DayOfWeek: 0, DayType: "weekend"}},
		},
		{
			name: "too many entries",
			days: append(fullWeek(), types.WorkScheduleDay{DayOfWeek: 0, DayType: DayTypeOff}),
		},
	}

	for _, tc := range invalidCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)

			if _, err := newTestService(mockStorage).ReplaceSchedule(context.Background(), "tenant-1", "grp-1", tc.days); !errors.Is(err, ErrInvalidSchedule) {
				t.Fatalf("expected ErrInvalidSchedule, got %v", err)
			}
		})
	}
}

func TestService_GetIDFormat(t *testing.T) {
	t.Run("returns stored format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().
			GetEmployeeIDFormat(gomock.Any(), "tenant-1").
			Return(&types.EmployeeIDFormat{TenantID: "tenant-1", IDPrefix: "STAFF", ZeroPadding: 4, NextSequence: 12}, nil)

		format, err := newTestService(mockStorage).GetIDFormat(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if format.IDPrefix != "STAFF" {
			t.Errorf("expected prefix STAFF, got %q", format.IDPrefix)
		}
	})

	t.Run("defaults when never configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().GetEmployeeIDFormat(gomock.Any(), "tenant-1").Return(nil, storage.ErrNotFound)

		format, err := newTestService(mockStorage).GetIDFormat(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if format.IDPrefix != "EMP" || format.ZeroPadding != 5 || format.NextSequence != 1 {
			t.Errorf("unexpected defaults: %+v", format)
		}
	})
}

func TestPreviewID(t *testing.T) {
	testCases := []struct {
		name     string
		format   types.EmployeeIDFormat
		expected string
	}{
		{
			name:     "defaults",
			format:   types.EmployeeIDFormat{IDPrefix: "EMP", ZeroPadding: 5, NextSequence: 1},
			expected: "EMP00001",
		},
		{
			name:     "sequence wider than padding",
			format:   types.EmployeeIDFormat{IDPrefix: "S", ZeroPadding: 2, NextSequence: 12345},
			expected: "S12345",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PreviewID(&tc.format); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
