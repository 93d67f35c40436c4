// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dropdowns

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

func TestAPI_ListOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().
		ListOptions(gomock.Any(), "tenant-1", "department").
		Return([]*types.DropdownOption{{ID: "opt-1", Category: "department", Value: "Engineering"}}, nil)

	rr := httptest.NewRecorder()
	handler := newTestHandler(t, ctrl, mockService, []string{})
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dropdown-options?category=department", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAPI_CreateOption(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().
		CreateOption(gomock.Any(), &types.DropdownOption{TenantID: "tenant-1", Category: "department", Value: "Finance", SortOrder: 3}).
		Return(&types.DropdownOption{ID: "opt-2", TenantID: "tenant-1", Category: "department", Value: "Finance", SortOrder: 3}, nil)

	body := `{"category":"department","value":"Finance","sort_order":3}`
	rr := httptest.NewRecorder()
	handler := newTestHandler(t, ctrl, mockService, []string{})
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/dropdown-options", strings.NewReader(body)))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAPI_DeleteOption(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().DeleteOption(gomock.Any(), "tenant-1", "opt-1").Return(nil)

	rr := httptest.NewRecorder()
	handler := newTestHandler(t, ctrl, mockService, []string{})
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/dropdown-options/opt-1", nil))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rr.Code, rr.Body.String())
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
			name:    "list requires the read grant",
			method:  http.MethodGet,
			target:  "/api/v1/dropdown-options",
			missing: authorization.PermDropdownsRead,
		},
		{
			name:    "create requires the write grant",
			method:  http.MethodPost,
			target:  "/api/v1/dropdown-options",
			missing: authorization.PermDropdownsWrite,
		},
		{
			name:    "delete requires the write grant",
			method:  http.MethodDelete,
			target:  "/api/v1/dropdown-options/opt-1",
			missing: authorization.PermDropdownsWrite,
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
