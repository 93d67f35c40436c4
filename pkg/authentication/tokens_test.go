// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go

const (
	testUserID   = "018f2f3c-6f1e-7aaa-8000-000000000001"
	testTenantID = "018f2f3c-6f1e-7aaa-8000-000000000002"
)

func newTestTokenService(secret string) *TokenService {
	return NewTokenService(secret, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	s := newTestTokenService("test-secret")
	ctx := context.Background()

	token, err := s.IssueToken(ctx, testUserID, testTenantID, DefaultTokenTTL)
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	claims, err := s.ValidateToken(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error validating token: %v", err)
	}

	if claims.UserID != testUserID {
		t.Errorf("expected user ID %q, got %q", testUserID, claims.UserID)
	}
	if claims.TenantID != testTenantID {
		t.Errorf("expected tenant ID %q, got %q", testTenantID, claims.TenantID)
	}

	ttl := claims.Expiry.Sub(claims.IssuedAt)
	if ttl != DefaultTokenTTL {
		t.Errorf("expected token lifetime %v, got %v", DefaultTokenTTL, ttl)
	}
}

func TestTokenService_ValidateToken_Failures(t *testing.T) {
	s := newTestTokenService("test-secret")
	ctx := context.Background()

	sign := func(secret string, claims jwt.MapClaims) string {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			t.Fatal(err)
		}
		return signed
	}

	expired := func() string {
		now := time.Now().Add(-2 * time.Hour)
		return sign("test-secret", jwt.MapClaims{
			"sub":       testUserID,
			"tenant_id": testTenantID,
			"iat":       now.Unix(),
			"exp":       now.Add(time.Hour).Unix(),
		})
	}

	wrongSecret := func() string {
		other := newTestTokenService("other-secret")
		signed, err := other.IssueToken(ctx, testUserID, testTenantID, DefaultTokenTTL)
		if err != nil {
			t.Fatal(err)
		}
		return signed
	}

	noExpiry := func() string {
		return sign("test-secret", jwt.MapClaims{
			"sub":       testUserID,
			"tenant_id": testTenantID,
			"iat":       time.Now().Unix(),
		})
	}

	unsignedAlg := func() string {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub":       testUserID,
			"tenant_id": testTenantID,
			"exp":       time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatal(err)
		}
		return signed
	}

	missingTenant := func() string {
		return sign("test-secret", jwt.MapClaims{
			"sub": testUserID,
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})
	}

	nonUUIDSubject := func() string {
		return sign("test-secret", jwt.MapClaims{
			"sub":       "definitely-not-a-uuid",
			"tenant_id": testTenantID,
			"iat":       time.Now().Unix(),
			"exp":       time.Now().Add(time.Hour).Unix(),
		})
	}

	nonUUIDTenant := func() string {
		return sign("test-secret", jwt.MapClaims{
			"sub":       testUserID,
			"tenant_id": "also-not-a-uuid",
			"iat":       time.Now().Unix(),
			"exp":       time.Now().Add(time.Hour).Unix(),
		})
	}

	testCases := []struct {
		name  string
		token func() string
	}{
		{name: "garbage token", token: func() string { return "not-a-token" }},
		{name: "expired token", token: expired},
		{name: "wrong secret", token: wrongSecret},
		{name: "missing expiry claim", token: noExpiry},
		{name: "none signing method", token: unsignedAlg},
		{name: "missing tenant claim", token: missingTenant},
		{name: "non-uuid subject claim", token: nonUUIDSubject},
		{name: "non-uuid tenant claim", token: nonUUIDTenant},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.ValidateToken(ctx, tc.token())
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
