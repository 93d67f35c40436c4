// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leave

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

//go:generate mockgen -build_flags=--mod=mod -package leave -destination ./mock_leave.go -source=./interfaces.go

func newTestService(mockStorage *MockStorageInterface) *Service {
	return NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestService_DeleteLeaveType(t *testing.T) {
	testCases := []struct {
		name        string
		storageErr  error
		expectedErr error
	}{
		{name: "success"},
		{name: "not found", storageErr: storage.ErrNotFound, expectedErr: ErrLeaveTypeNotFound},
		{name: "in use by entitlements", storageErr: storage.ErrForeignKeyViolation, expectedErr: ErrLeaveTypeInUse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().DeleteLeaveType(gomock.Any(), "tenant-1", "lt-1").Return(tc.storageErr)

			err := newTestService(mockStorage).DeleteLeaveType(context.Background(), "tenant-1", "lt-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_SetEntitlement(t *testing.T) {
	t.Run("upserts the entitlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entitlement := &types.LeaveEntitlement{TenantID: "tenant-1", EmployeeID: "emp-1", LeaveTypeID: "lt-1", Year: 2026, Days: 25}
		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().UpsertLeaveEntitlement(gomock.Any(), entitlement).Return(entitlement, nil)

		result, err := newTestService(mockStorage).SetEntitlement(context.Background(), entitlement)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Days != 25 {
			t.Errorf("expected 25 days, got %d", result.Days)
		}
	})

	t.Run("dangling employee or leave type reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entitlement := &types.LeaveEntitlement{TenantID: "tenant-1", EmployeeID: "ghost", LeaveTypeID: "lt-1", Year: 2026, Days: 25}
		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().UpsertLeaveEntitlement(gomock.Any(), entitlement).Return(nil, storage.ErrForeignKeyViolation)

		_, err := newTestService(mockStorage).SetEntitlement(context.Background(), entitlement)
		if !errors.Is(err, ErrUnknownReference) {
			t.Errorf("expected ErrUnknownReference, got %v", err)
		}
	})
}

func TestService_CreateLeaveType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CreateLeaveType(gomock.Any(), "tenant-1", "Annual", 25, true).
		Return(nil, storage.ErrDuplicateKey)

	_, err := newTestService(mockStorage).CreateLeaveType(context.Background(), "tenant-1", "Annual", 25, true)
	if !errors.Is(err, ErrDuplicateLeaveType) {
		t.Errorf("expected ErrDuplicateLeaveType, got %v", err)
	}
}

func TestService_ReplaceDefaults(t *testing.T) {
	tiers := []*types.LeaveDefault{
		{TenantID: "tenant-1", LeaveTypeID: "lt-1", ServiceYear: 0, Days: 20},
		{TenantID: "tenant-1", LeaveTypeID: "lt-1", ServiceYear: 5, Days: 25},
	}

	t.Run("locks the leave type before rewriting tiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		lock := mockStorage.EXPECT().
			LockLeaveTypeByID(gomock.Any(), "tenant-1", "lt-1").
			Return(&types.LeaveType{ID: "lt-1"}, nil)
		mockStorage.EXPECT().
			ReplaceLeaveDefaults(gomock.Any(), "tenant-1", "lt-1", tiers).
			Return(nil).
			After(lock)
		mockStorage.EXPECT().
			ListLeaveDefaults(gomock.Any(), "tenant-1", "lt-1").
			Return(tiers, nil)

		defaults, err := newTestService(mockStorage).ReplaceDefaults(context.Background(), "tenant-1", "lt-1", tiers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(defaults) != 2 {
			t.Fatalf("expected 2 tiers, got %d", len(defaults))
		}
	})

	t.Run("unknown leave type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().
			LockLeaveTypeByID(gomock.Any(), "tenant-1", "lt-404").
			Return(nil, storage.ErrNotFound)

		if _, err := newTestService(mockStorage).ReplaceDefaults(context.Background(), "tenant-1", "lt-404", tiers); !errors.Is(err, ErrLeaveTypeNotFound) {
			t.Fatalf("expected ErrLeaveTypeNotFound, got %v", err)
		}
	})

	t.Run("duplicate service year is rejected before touching storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)

		duplicated := []*types.LeaveDefault{
			{TenantID: "tenant-1", LeaveTypeID: "lt-1", ServiceYear: 3, Days: 22},
			{TenantID: "tenant-1", LeaveTypeID: "lt-1", ServiceYear: 3, Days: 24},
		}

		if _, err := newTestService(mockStorage).ReplaceDefaults(context.Background(), "tenant-1", "lt-1", duplicated); !errors.Is(err, ErrDuplicateServiceYear) {
			t.Fatalf("expected ErrDuplicateServiceYear, got %v", err)
		}
	})
}
