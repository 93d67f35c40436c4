// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workforce-service/internal/types"
)

var settingsColumns = []string{"tenant_id", "company_name", "address", "timezone", "week_starts_on", "updated_at"}

func scanSettings(row sq.RowScanner) (*types.CompanySettings, error) {
	var cs types.CompanySettings
	if err := row.Scan(&cs.TenantID, &cs.CompanyName, &cs.Address, &cs.Timezone, &cs.WeekStartsOn, &cs.UpdatedAt); err != nil {
		return nil, err
	}
	return &cs, nil
}

func (s *Storage) GetCompanySettings(ctx context.Context, tenantID string) (*types.CompanySettings, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanySettings")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(settingsColumns...).
		From("company_settings").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx)

	settings, err := scanSettings(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company settings: %w", err)
	}

	return settings, nil
}

// UpsertCompanySettings writes the tenant's settings row, creating it on
// first save.
func (s *Storage) UpsertCompanySettings(ctx context.Context, settings *types.CompanySettings) (*types.CompanySettings, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertCompanySettings")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("company_settings").
		Columns("tenant_id", "company_name", "address", "timezone", "week_starts_on", "updated_at").
		Values(settings.TenantID, settings.CompanyName, settings.Address, settings.Timezone, settings.WeekStartsOn, sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (tenant_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			address = EXCLUDED.address,
			timezone = EXCLUDED.timezone,
			week_starts_on = EXCLUDED.week_starts_on,
			updated_at = NOW()
		RETURNING ` + joinColumns(settingsColumns)).
		QueryRowContext(ctx)

	upserted, err := scanSettings(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to upsert company settings: %w", err)
	}

	return upserted, nil
}
