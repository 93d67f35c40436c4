// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "context"

type ResolverInterface interface {
	// EffectivePermissions returns the distinct permission codes a user
	// holds in a tenant, resolved from role assignments on every call.
	EffectivePermissions(ctx context.Context, userID, tenantID string) ([]string, error)
	// Check returns the subset of required codes the user does not hold,
	// empty when access is allowed.
	Check(ctx context.Context, userID, tenantID string, required []string) ([]string, error)
}

type StorageInterface interface {
	ListEffectivePermissionCodes(ctx context.Context, userID, tenantID string) ([]string, error)
}
