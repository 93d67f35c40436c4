// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/workforce-service/internal/types"
)

var dropdownColumns = []string{"id", "tenant_id", "category", "value", "sort_order"}

func scanDropdownOption(row sq.RowScanner) (*types.DropdownOption, error) {
	var o types.DropdownOption
	if err := row.Scan(&o.ID, &o.TenantID, &o.Category, &o.Value, &o.SortOrder); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Storage) CreateDropdownOption(ctx context.Context, option *types.DropdownOption) (*types.DropdownOption, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDropdownOption")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate dropdown option ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("dropdown_options").
		Columns("id", "tenant_id", "category", "value", "sort_order").
		Values(id.String(), option.TenantID, option.Category, option.Value, option.SortOrder).
		Suffix("RETURNING " + joinColumns(dropdownColumns)).
		QueryRowContext(ctx)

	created, err := scanDropdownOption(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to create dropdown option: %w", err)
	}

	return created, nil
}

// ListDropdownOptions returns the tenant's options, optionally restricted to
// one category, ordered for direct rendering.
func (s *Storage) ListDropdownOptions(ctx context.Context, tenantID, category string) ([]*types.DropdownOption, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDropdownOptions")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(dropdownColumns...).
		From("dropdown_options").
		Where(sq.Eq{"tenant_id": tenantID})
	if category != "" {
		query = query.Where(sq.Eq{"category": category})
	}

	rows, err := query.OrderBy("category", "sort_order", "value").QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dropdown options: %w", err)
	}
	defer rows.Close()

	var options []*types.DropdownOption
	for rows.Next() {
		option, err := scanDropdownOption(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dropdown option: %w", err)
		}
		options = append(options, option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return options, nil
}

func (s *Storage) DeleteDropdownOption(ctx context.Context, tenantID, optionID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteDropdownOption")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("dropdown_options").
		Where(sq.Eq{"id": optionID, "tenant_id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete dropdown option: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
