// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_authorization.go -source=./interfaces.go

func newTestResolver(storage StorageInterface) *Resolver {
	return NewResolver(storage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestResolver_EffectivePermissions(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name          string
		setupMocks    func(*MockStorageInterface)
		expectedCodes []string
		expectedErr   error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListEffectivePermissionCodes(gomock.Any(), "user-1", "tenant-1").
					Return([]string{"erp:dashboard:read", "rbac:roles:read"}, nil)
			},
			expectedCodes: []string{"erp:dashboard:read", "rbac:roles:read"},
		},
		{
			name: "no roles assigned",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListEffectivePermissionCodes(gomock.Any(), "user-1", "tenant-1").
					Return([]string{}, nil)
			},
			expectedCodes: []string{},
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListEffectivePermissionCodes(gomock.Any(), "user-1", "tenant-1").
					Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			codes, err := newTestResolver(mockStorage).EffectivePermissions(context.Background(), "user-1", "tenant-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(codes, tc.expectedCodes) {
				t.Errorf("expected codes %v, got %v", tc.expectedCodes, codes)
			}
		})
	}
}

func TestResolver_Check(t *testing.T) {
	testCases := []struct {
		name            string
		held            []string
		required        []string
		expectedMissing []string
	}{
		{
			name:            "all held",
			held:            []string{"employees:read", "employees:write"},
			required:        []string{"employees:read"},
			expectedMissing: nil,
		},
		{
			name:            "one missing",
			held:            []string{"employees:read"},
			required:        []string{"employees:read", "employees:write"},
			expectedMissing: []string{"employees:write"},
		},
		{
			name:            "missing codes are sorted",
			held:            []string{},
			required:        []string{"settings:company:write", "employees:write", "holidays:write"},
			expectedMissing: []string{"employees:write", "holidays:write", "settings:company:write"},
		},
		{
			name:            "nothing required",
			held:            []string{},
			required:        nil,
			expectedMissing: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().ListEffectivePermissionCodes(gomock.Any(), "user-1", "tenant-1").
				Return(tc.held, nil)

			missing, err := newTestResolver(mockStorage).Check(context.Background(), "user-1", "tenant-1", tc.required)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(missing, tc.expectedMissing) {
				t.Errorf("expected missing %v, got %v", tc.expectedMissing, missing)
			}
		})
	}
}
