// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package settings

import (
	"context"

	"github.com/canonical/workforce-service/internal/types"
)

type ServiceInterface interface {
	GetCompanySettings(ctx context.Context, tenantID string) (*types.CompanySettings, error)
	UpdateCompanySettings(ctx context.Context, settings *types.CompanySettings) (*types.CompanySettings, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetCompanySettings(ctx context.Context, tenantID string) (*types.CompanySettings, error)
	UpsertCompanySettings(ctx context.Context, settings *types.CompanySettings) (*types.CompanySettings, error)
}
