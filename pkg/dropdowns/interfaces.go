// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dropdowns

import (
	"context"

	"github.com/canonical/workforce-service/internal/types"
)

type ServiceInterface interface {
	ListOptions(ctx context.Context, tenantID, category string) ([]*types.DropdownOption, error)
	CreateOption(ctx context.Context, option *types.DropdownOption) (*types.DropdownOption, error)
	DeleteOption(ctx context.Context, tenantID, optionID string) error
}

type StorageInterface interface {
	CreateDropdownOption(ctx context.Context, option *types.DropdownOption) (*types.DropdownOption, error)
	ListDropdownOptions(ctx context.Context, tenantID, category string) ([]*types.DropdownOption, error)
	DeleteDropdownOption(ctx context.Context, tenantID, optionID string) error
}
