// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
)

func TestPublicAPI_Register(t *testing.T) {
	validBody := `{"company_name":"Acme","first_name":"Jane","last_name":"Doe","email":"jane@acme.example","password":"hunter2hunter2"}`

	testCases := []struct {
		name               string
		body               string
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name: "success",
			body: validBody,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Register(gomock.Any(), "Acme", "Jane", "Doe", "jane@acme.example", "hunter2hunter2").
					Return(&RegisterResult{
						Token:  "signed-token",
						User:   &types.User{ID: "user-1", Email: "jane@acme.example"},
						Tenant: &types.Tenant{ID: "tenant-1", CompanyName: "Acme"},
					}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "malformed body",
			body:               "{not json",
			setupMocks:         func(mockService *MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "password below minimum length",
			body:               `{"company_name":"Acme","first_name":"Jane","last_name":"Doe","email":"jane@acme.example","password":"short"}`,
			setupMocks:         func(mockService *MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: validBody,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Register(gomock.Any(), "Acme", "Jane", "Doe", "jane@acme.example", "hunter2hunter2").
					Return(nil, ErrDuplicateEmail)
			},
			expectedStatusCode: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			mux := chi.NewMux()
			NewPublicAPI(mockService, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/subscriber/register", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.expectedStatusCode, rec.Code)
			}

			if tc.expectedStatusCode == http.StatusCreated {
				var body TokenResponse
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if body.Token != "signed-token" {
					t.Errorf("expected token in response, got %q", body.Token)
				}
			}
		})
	}
}

func TestPublicAPI_Login(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name: "success",
			body: `{"email":"jane@acme.example","password":"hunter2hunter2"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Login(gomock.Any(), "jane@acme.example", "hunter2hunter2", false).
					Return(&LoginResult{Token: "signed-token", User: &types.User{ID: "user-1"}}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "remember me is forwarded",
			body: `{"email":"jane@acme.example","password":"hunter2hunter2","remember_me":true}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Login(gomock.Any(), "jane@acme.example", "hunter2hunter2", true).
					Return(&LoginResult{Token: "signed-token", User: &types.User{ID: "user-1"}}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "bad credentials",
			body: `{"email":"jane@acme.example","password":"wrong"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Login(gomock.Any(), "jane@acme.example", "wrong", false).
					Return(nil, ErrInvalidCredentials)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "missing email",
			body:               `{"password":"hunter2hunter2"}`,
			setupMocks:         func(mockService *MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			mux := chi.NewMux()
			NewPublicAPI(mockService, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/subscriber/login", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.expectedStatusCode, rec.Code)
			}
		})
	}
}
