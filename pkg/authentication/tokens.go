// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/tracing"
)

const (
	// DefaultTokenTTL is the access token lifetime for a normal login.
	DefaultTokenTTL = 12 * time.Hour
	// RememberMeTokenTTL is the extended lifetime for remember-me logins.
	RememberMeTokenTTL = 7 * 24 * time.Hour
)

// ErrInvalidToken covers every token validation failure. Callers must not
// leak the underlying reason to clients.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload carried by every access token.
type Claims struct {
	UserID   string
	TenantID string
	IssuedAt time.Time
	Expiry   time.Time
}

type TokenService struct {
	secret []byte

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewTokenService(secret string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *TokenService {
	return &TokenService{
		secret:  []byte(secret),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// IssueToken mints an HS256 token scoped to one user inside one tenant.
func (t *TokenService) IssueToken(ctx context.Context, userID, tenantID string, ttl time.Duration) (string, error) {
	_, span := t.tracer.Start(ctx, "authentication.TokenService.IssueToken")
	defer span.End()

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       userID,
		"tenant_id": tenantID,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken parses and verifies a raw token. Every failure mode maps to
// ErrInvalidToken so the caller cannot tell an expired token from a forged one.
func (t *TokenService) ValidateToken(ctx context.Context, raw string) (*Claims, error) {
	_, span := t.tracer.Start(ctx, "authentication.TokenService.ValidateToken")
	defer span.End()

	token, err := jwt.Parse(
		raw,
		func(token *jwt.Token) (any, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		t.logger.Debugf("token validation failed: %v", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrInvalidToken
	}
	if _, err := uuid.Parse(sub); err != nil {
		return nil, ErrInvalidToken
	}

	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return nil, ErrInvalidToken
	}
	if _, err := uuid.Parse(tenantID); err != nil {
		return nil, ErrInvalidToken
	}

	result := &Claims{
		UserID:   sub,
		TenantID: tenantID,
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		result.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		result.Expiry = exp.Time
	}

	return result, nil
}
