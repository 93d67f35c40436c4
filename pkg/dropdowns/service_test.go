// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dropdowns

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

//go:generate mockgen -build_flags=--mod=mod -package dropdowns -destination ./mock_dropdowns.go -source=./interfaces.go

func newTestService(mockStorage *MockStorageInterface) *Service {
	return NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestService_ListOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := []*types.DropdownOption{
		{ID: "opt-1", Category: "department", Value: "Engineering", SortOrder: 1},
		{ID: "opt-2", Category: "department", Value: "Finance", SortOrder: 2},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListDropdownOptions(gomock.Any(), "tenant-1", "department").Return(expected, nil)

	options, err := newTestService(mockStorage).ListOptions(context.Background(), "tenant-1", "department")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 2 || options[0].ID != "opt-1" {
		t.Errorf("unexpected options: %+v", options)
	}
}

func TestService_CreateOption(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(mockStorage *MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().
					CreateDropdownOption(gomock.Any(), &types.DropdownOption{TenantID: "tenant-1", Category: "department", Value: "Engineering"}).
					Return(&types.DropdownOption{ID: "opt-1", TenantID: "tenant-1", Category: "department", Value: "Engineering"}, nil)
			},
		},
		{
			name: "duplicate value in category",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().
					CreateDropdownOption(gomock.Any(), gomock.Any()).
					Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrDuplicateOption,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			option, err := newTestService(mockStorage).CreateOption(context.Background(), &types.DropdownOption{
				TenantID: "tenant-1",
				Category: "department",
				Value:    "Engineering",
			})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if option.ID != "opt-1" {
				t.Errorf("expected option ID opt-1, got %q", option.ID)
			}
		})
	}
}

func TestService_DeleteOption(t *testing.T) {
	testCases := []struct {
		name        string
		storageErr  error
		expectedErr error
	}{
		{
			name: "success",
		},
		{
			name:        "unknown option",
			storageErr:  storage.ErrNotFound,
			expectedErr: ErrOptionNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().DeleteDropdownOption(gomock.Any(), "tenant-1", "opt-1").Return(tc.storageErr)

			err := newTestService(mockStorage).DeleteOption(context.Background(), "tenant-1", "opt-1")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
