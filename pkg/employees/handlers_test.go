// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package employees

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authentication"
	"github.com/canonical/workforce-service/pkg/authorization"
)

//go:generate mockgen -build_flags=--mod=mod -package employees -destination ./mock_employees.go -source=./interfaces.go

func newTestHandler(t *testing.T, ctrl *gomock.Controller, mockService *MockServiceInterface) http.Handler {
	t.Helper()

	mockResolver := authorization.NewMockResolverInterface(ctrl)
	mockResolver.EXPECT().Check(gomock.Any(), "user-1", "tenant-1", gomock.Any()).
		Return([]string{}, nil).
		AnyTimes()

	authz := authorization.NewMiddleware(mockResolver, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	mux := chi.NewMux()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := authentication.WithPrincipal(r.Context(), &authentication.Principal{UserID: "user-1", TenantID: "tenant-1"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})

	NewAPI(mockService, authz, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mux
}

func TestAPI_ListEmployees_Paging(t *testing.T) {
	testCases := []struct {
		name           string
		query          string
		expectedOffset uint64
		expectedSize   uint64
	}{
		{
			name:           "no paging params",
			query:          "",
			expectedOffset: 0,
			expectedSize:   100,
		},
		{
			name:           "first page is not skipped",
			query:          "?page=1&size=50",
			expectedOffset: 0,
			expectedSize:   50,
		},
		{
			name:           "second page offsets by one page",
			query:          "?page=2&size=50",
			expectedOffset: 50,
			expectedSize:   50,
		},
		{
			name:           "default size with a later page",
			query:          "?page=3",
			expectedOffset: 200,
			expectedSize:   100,
		},
		{
			name:           "oversized page size falls back to the default",
			query:          "?page=2&size=1000",
			expectedOffset: 100,
			expectedSize:   100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockService.EXPECT().ListEmployees(gomock.Any(), "tenant-1", tc.expectedOffset, tc.expectedSize).
				Return([]*types.Employee{}, nil)

			handler := newTestHandler(t, ctrl, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/employees"+tc.query, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
			}
		})
	}
}
