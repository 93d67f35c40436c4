// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schedules

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httpTypes "github.com/canonical/workforce-service/internal/http/types"
	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authentication"
	"github.com/canonical/workforce-service/pkg/authorization"
)

func newTestHandler(t *testing.T, ctrl *gomock.Controller, mockService *MockServiceInterface, missing []string) http.Handler {
	t.Helper()

	mockResolver := authorization.NewMockResolverInterface(ctrl)
	mockResolver.EXPECT().Check(gomock.Any(), "user-1", "tenant-1", gomock.Any()).
		Return(missing, nil).
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

func TestAPI_GetIDFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().
		GetIDFormat(gomock.Any(), "tenant-1").
		Return(&types.EmployeeIDFormat{TenantID: "tenant-1", IDPrefix: "EMP", ZeroPadding: 5, NextSequence: 42}, nil)

	rr := httptest.NewRecorder()
	handler := newTestHandler(t, ctrl, mockService, []string{})
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/employee/settings/id-format", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp IDFormatResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Preview != "EMP00042" {
		t.Errorf("expected preview EMP00042, got %q", resp.Preview)
	}
}

func TestAPI_ReplaceSchedule_InvalidWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().
		ReplaceSchedule(gomock.Any(), "tenant-1", "grp-1", gomock.Any()).
		Return(nil, ErrInvalidSchedule)

	body := `{"days":[{"day_of_week":0,"day_type":"weekend"}]}`
	rr := httptest.NewRecorder()
	handler := newTestHandler(t, ctrl, mockService, []string{})
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/v1/employee/settings/work-schedule-groups/grp-1/schedule", strings.NewReader(body)))

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAPI_PermissionsGateEndpoints(t *testing.T) {
	testCases := []struct {
		name    string
		method  string
		target  string
		missing string
	}{
		{
			name:    "listing groups requires the group read grant",
			method:  http.MethodGet,
			target:  "/api/v1/employee/settings/work-schedule-groups",
			missing: authorization.PermWorkScheduleGroupsRead,
		},
		{
			name:    "rewriting a schedule requires the group write grant",
			method:  http.MethodPut,
			target:  "/api/v1/employee/settings/work-schedule-groups/grp-1/schedule",
			missing: authorization.PermWorkScheduleGroupsWrite,
		},
		{
			name:    "reading the ID format requires the settings read grant",
			method:  http.MethodGet,
			target:  "/api/v1/employee/settings/id-format",
			missing: authorization.PermEmployeeSettingsRead,
		},
		{
			name:    "updating the ID format requires the settings write grant",
			method:  http.MethodPut,
			target:  "/api/v1/employee/settings/id-format",
			missing: authorization.PermEmployeeSettingsWrite,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// The service must never be reached on a denial.
			mockService := NewMockServiceInterface(ctrl)

			rr := httptest.NewRecorder()
			handler := newTestHandler(t, ctrl, mockService, []string{tc.missing})
			handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.target, strings.NewReader("{}")))

			if rr.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d: %s", rr.Code, rr.Body.String())
			}

			var resp httpTypes.ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(resp.MissingPermissions) != 1 || resp.MissingPermissions[0] != tc.missing {
				t.Errorf("expected missing permissions [%s], got %v", tc.missing, resp.MissingPermissions)
			}
		})
	}
}
