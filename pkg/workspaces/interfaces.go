// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"
	"time"

	"github.com/canonical/workforce-service/internal/types"
)

type ServiceInterface interface {
	ListWorkspaces(ctx context.Context, userID string) ([]*types.Workspace, error)
	CreateWorkspace(ctx context.Context, userID, companyName string) (*types.Workspace, error)
	SelectWorkspace(ctx context.Context, userID, tenantID string) (string, *types.Workspace, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, companyName string) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	CreateMembership(ctx context.Context, userID, tenantID string, isOwner bool) (string, error)
	ListWorkspacesByUserID(ctx context.Context, userID string) ([]*types.Workspace, error)
	GetMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error)
}

type RoleSeederInterface interface {
	SeedDefaultRoles(ctx context.Context, tenantID, ownerUserID string) error
}

type TokenIssuerInterface interface {
	IssueToken(ctx context.Context, userID, tenantID string, ttl time.Duration) (string, error)
}
