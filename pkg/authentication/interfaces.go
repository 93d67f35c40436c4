// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"
)

type TokenServiceInterface interface {
	// IssueToken mints a signed access token for a user acting in a tenant.
	IssueToken(ctx context.Context, userID, tenantID string, ttl time.Duration) (string, error)
	// ValidateToken verifies a raw token and returns its claims.
	// Returns ErrInvalidToken on any failure.
	ValidateToken(ctx context.Context, raw string) (*Claims, error)
}

type MembershipCheckerInterface interface {
	// IsMember reports whether the user belongs to the tenant.
	IsMember(ctx context.Context, userID, tenantID string) (bool, error)
}
