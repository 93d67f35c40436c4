// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/workforce-service/internal/types"
)

var holidayColumns = []string{"id", "tenant_id", "name", "date", "recurring", "created_at"}

func scanHoliday(row sq.RowScanner) (*types.Holiday, error) {
	var h types.Holiday
	if err := row.Scan(&h.ID, &h.TenantID, &h.Name, &h.Date, &h.Recurring, &h.CreatedAt); err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Storage) CreateHoliday(ctx context.Context, tenantID, name string, date time.Time, recurring bool) (*types.Holiday, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateHoliday")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate holiday ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("holidays").
		Columns("id", "tenant_id", "name", "date", "recurring").
		Values(id.String(), tenantID, name, date, recurring).
		Suffix("RETURNING " + joinColumns(holidayColumns)).
		QueryRowContext(ctx)

	holiday, err := scanHoliday(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday, nil
}

func (s *Storage) ListHolidaysByTenantID(ctx context.Context, tenantID string) ([]*types.Holiday, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListHolidaysByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(holidayColumns...).
		From("holidays").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("date").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []*types.Holiday
	for rows.Next() {
		holiday, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return holidays, nil
}

func (s *Storage) UpdateHoliday(ctx context.Context, tenantID, holidayID, name string, date time.Time, recurring bool) (*types.Holiday, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateHoliday")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("holidays").
		Set("name", name).
		Set("date", date).
		Set("recurring", recurring).
		Where(sq.Eq{"id": holidayID, "tenant_id": tenantID}).
		Suffix("RETURNING " + joinColumns(holidayColumns)).
		QueryRowContext(ctx)

	holiday, err := scanHoliday(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update holiday: %w", err)
	}

	return holiday, nil
}

func (s *Storage) DeleteHoliday(ctx context.Context, tenantID, holidayID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteHoliday")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("holidays").
		Where(sq.Eq{"id": holidayID, "tenant_id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
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
