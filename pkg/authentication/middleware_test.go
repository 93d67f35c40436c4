// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/tracing"
)

func TestMiddleware_Authenticate(t *testing.T) {
	claims := &Claims{UserID: "user-1", TenantID: "tenant-1"}

	testCases := []struct {
		name               string
		authHeader         string
		setupMocks         func(*MockTokenServiceInterface, *MockMembershipCheckerInterface)
		expectedStatusCode int
		expectPrincipal    bool
	}{
		{
			name:               "missing authorization header",
			authHeader:         "",
			setupMocks:         func(tokens *MockTokenServiceInterface, memberships *MockMembershipCheckerInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "non-bearer scheme",
			authHeader:         "Basic dXNlcjpwYXNz",
			setupMocks:         func(tokens *MockTokenServiceInterface, memberships *MockMembershipCheckerInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupMocks: func(tokens *MockTokenServiceInterface, memberships *MockMembershipCheckerInterface) {
				tokens.EXPECT().ValidateToken(gomock.Any(), "bad-token").Return(nil, ErrInvalidToken)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "membership revoked",
			authHeader: "Bearer valid-token",
			setupMocks: func(tokens *MockTokenServiceInterface, memberships *MockMembershipCheckerInterface) {
				tokens.EXPECT().ValidateToken(gomock.Any(), "valid-token").Return(claims, nil)
				memberships.EXPECT().IsMember(gomock.Any(), "user-1", "tenant-1").Return(false, nil)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "membership check error",
			authHeader: "Bearer valid-token",
			setupMocks: func(tokens *MockTokenServiceInterface, memberships *MockMembershipCheckerInterface) {
				tokens.EXPECT().ValidateToken(gomock.Any(), "valid-token").Return(claims, nil)
				memberships.EXPECT().IsMember(gomock.Any(), "user-1", "tenant-1").Return(false, errors.New("db error"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:       "valid token and active membership",
			authHeader: "Bearer valid-token",
			setupMocks: func(tokens *MockTokenServiceInterface, memberships *MockMembershipCheckerInterface) {
				tokens.EXPECT().ValidateToken(gomock.Any(), "valid-token").Return(claims, nil)
				memberships.EXPECT().IsMember(gomock.Any(), "user-1", "tenant-1").Return(true, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectPrincipal:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokens := NewMockTokenServiceInterface(ctrl)
			mockMemberships := NewMockMembershipCheckerInterface(ctrl)
			tc.setupMocks(mockTokens, mockMemberships)

			m := NewMiddleware(mockTokens, mockMemberships, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			var gotPrincipal *Principal
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPrincipal, _ = PrincipalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			m.Authenticate()(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.expectedStatusCode, rec.Code)
			}

			if rec.Code == http.StatusUnauthorized && !strings.Contains(rec.Body.String(), unauthorizedMessage) {
				t.Errorf("expected body to contain %q, got %q", unauthorizedMessage, rec.Body.String())
			}

			if tc.expectPrincipal {
				if gotPrincipal == nil {
					t.Fatal("expected principal in request context")
				}
				if gotPrincipal.UserID != "user-1" || gotPrincipal.TenantID != "tenant-1" {
					t.Errorf("unexpected principal %+v", gotPrincipal)
				}
			}
		})
	}
}
