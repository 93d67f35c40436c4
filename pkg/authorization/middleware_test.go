// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workforce-service/internal/http/types"
	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/pkg/authentication"
)

func TestMiddleware_RequirePermissions(t *testing.T) {
	principal := &authentication.Principal{UserID: "user-1", TenantID: "tenant-1"}

	testCases := []struct {
		name               string
		principal          *authentication.Principal
		setupMocks         func(*MockResolverInterface)
		expectedStatusCode int
		expectedMissing    []string
	}{
		{
			name:               "no principal in context",
			principal:          nil,
			setupMocks:         func(mockResolver *MockResolverInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:      "permission held",
			principal: principal,
			setupMocks: func(mockResolver *MockResolverInterface) {
				mockResolver.EXPECT().Check(gomock.Any(), "user-1", "tenant-1", []string{"employees:read"}).
					Return(nil, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:      "permission missing",
			principal: principal,
			setupMocks: func(mockResolver *MockResolverInterface) {
				mockResolver.EXPECT().Check(gomock.Any(), "user-1", "tenant-1", []string{"employees:read"}).
					Return([]string{"employees:read"}, nil)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedMissing:    []string{"employees:read"},
		},
		{
			name:      "resolver error",
			principal: principal,
			setupMocks: func(mockResolver *MockResolverInterface) {
				mockResolver.EXPECT().Check(gomock.Any(), "user-1", "tenant-1", []string{"employees:read"}).
					Return(nil, errors.New("db error"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockResolver := NewMockResolverInterface(ctrl)
			tc.setupMocks(mockResolver)

			m := NewMiddleware(mockResolver, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
			if tc.principal != nil {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), tc.principal))
			}
			rec := httptest.NewRecorder()

			m.RequirePermissions("employees:read")(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.expectedStatusCode, rec.Code)
			}

			if tc.expectedStatusCode == http.StatusForbidden {
				var body types.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if !reflect.DeepEqual(body.MissingPermissions, tc.expectedMissing) {
					t.Errorf("expected missing permissions %v, got %v", tc.expectedMissing, body.MissingPermissions)
				}
			}
		})
	}
}
