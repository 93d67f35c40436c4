// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/workforce-service/internal/types"
)

var scheduleGroupColumns = []string{"id", "tenant_id", "name", "description", "created_at"}

func scanScheduleGroup(row sq.RowScanner) (*types.WorkScheduleGroup, error) {
	var g types.WorkScheduleGroup
	if err := row.Scan(&g.ID, &g.TenantID, &g.Name, &g.Description, &g.CreatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Storage) CreateWorkScheduleGroup(ctx context.Context, tenantID, name, description string) (*types.WorkScheduleGroup, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkScheduleGroup")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate work schedule group ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("work_schedule_groups").
		Columns("id", "tenant_id", "name", "description").
		Values(id.String(), tenantID, name, description).
		Suffix("RETURNING " + joinColumns(scheduleGroupColumns)).
		QueryRowContext(ctx)

	group, err := scanScheduleGroup(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to create work schedule group: %w", err)
	}

	return group, nil
}

func (s *Storage) ListWorkScheduleGroups(ctx context.Context, tenantID string) ([]*types.WorkScheduleGroup, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkScheduleGroups")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(scheduleGroupColumns...).
		From("work_schedule_groups").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedule groups: %w", err)
	}
	defer rows.Close()

	var groups []*types.WorkScheduleGroup
	for rows.Next() {
		group, err := scanScheduleGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work schedule group: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return groups, nil
}

func (s *Storage) GetWorkScheduleGroupByID(ctx context.Context, tenantID, groupID string) (*types.WorkScheduleGroup, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkScheduleGroupByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(scheduleGroupColumns...).
		From("work_schedule_groups").
		Where(sq.Eq{"id": groupID, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	group, err := scanScheduleGroup(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get work schedule group: %w", err)
	}

	return group, nil
}

// LockWorkScheduleGroupByID fetches a group with FOR UPDATE, serializing
// writers that rewrite the group's weekly pattern.
func (s *Storage) LockWorkScheduleGroupByID(ctx context.Context, tenantID, groupID string) (*types.WorkScheduleGroup, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockWorkScheduleGroupByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(scheduleGroupColumns...).
		From("work_schedule_groups").
		Where(sq.Eq{"id": groupID, "tenant_id": tenantID}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx)

	group, err := scanScheduleGroup(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock work schedule group: %w", err)
	}

	return group, nil
}

func (s *Storage) UpdateWorkScheduleGroup(ctx context.Context, tenantID, groupID, name, description string) (*types.WorkScheduleGroup, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateWorkScheduleGroup")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("work_schedule_groups").
		Set("name", name).
		Set("description", description).
		Where(sq.Eq{"id": groupID, "tenant_id": tenantID}).
		Suffix("RETURNING " + joinColumns(scheduleGroupColumns)).
		QueryRowContext(ctx)

	group, err := scanScheduleGroup(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to update work schedule group: %w", err)
	}

	return group, nil
}

func (s *Storage) DeleteWorkScheduleGroup(ctx context.Context, tenantID, groupID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWorkScheduleGroup")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("work_schedule_groups").
		Where(sq.Eq{"id": groupID, "tenant_id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to delete work schedule group: %w", err)
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

func (s *Storage) ListWorkScheduleDays(ctx context.Context, groupID string) ([]types.WorkScheduleDay, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkScheduleDays")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("day_of_week", "day_type").
		From("work_schedule_group_days").
		Where(sq.Eq{"group_id": groupID}).
		OrderBy("day_of_week").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedule days: %w", err)
	}
	defer rows.Close()

	var days []types.WorkScheduleDay
	for rows.Next() {
		var day types.WorkScheduleDay
		if err := rows.Scan(&day.DayOfWeek, &day.DayType); err != nil {
			return nil, fmt.Errorf("failed to scan work schedule day: %w", err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return days, nil
}

// ReplaceWorkScheduleDays rewrites a group's weekly pattern in one pass. The
// caller is expected to hold the group row lock when replacements can race.
func (s *Storage) ReplaceWorkScheduleDays(ctx context.Context, groupID string, days []types.WorkScheduleDay) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReplaceWorkScheduleDays")
	defer span.End()

	if _, err := s.db.Statement(ctx).
		Delete("work_schedule_group_days").
		Where(sq.Eq{"group_id": groupID}).
		ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to clear work schedule days: %w", err)
	}

	if len(days) == 0 {
		return nil
	}

	insert := s.db.Statement(ctx).
		Insert("work_schedule_group_days").
		Columns("group_id", "day_of_week", "day_type")
	for _, day := range days {
		insert = insert.Values(groupID, day.DayOfWeek, day.DayType)
	}

	if _, err := insert.ExecContext(ctx); err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert work schedule days: %w", err)
	}

	return nil
}

var idFormatColumns = []string{"tenant_id", "id_prefix", "zero_padding", "next_sequence", "updated_at"}

func scanIDFormat(row sq.RowScanner) (*types.EmployeeIDFormat, error) {
	var f types.EmployeeIDFormat
	if err := row.Scan(&f.TenantID, &f.IDPrefix, &f.ZeroPadding, &f.NextSequence, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Storage) GetEmployeeIDFormat(ctx context.Context, tenantID string) (*types.EmployeeIDFormat, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEmployeeIDFormat")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(idFormatColumns...).
		From("employee_id_formats").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx)

	format, err := scanIDFormat(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employee ID format: %w", err)
	}

	return format, nil
}

func (s *Storage) UpsertEmployeeIDFormat(ctx context.Context, format *types.EmployeeIDFormat) (*types.EmployeeIDFormat, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertEmployeeIDFormat")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("employee_id_formats").
		Columns("tenant_id", "id_prefix", "zero_padding", "next_sequence").
		Values(format.TenantID, format.IDPrefix, format.ZeroPadding, format.NextSequence).
		Suffix("ON CONFLICT (tenant_id) DO UPDATE SET id_prefix = EXCLUDED.id_prefix, zero_padding = EXCLUDED.zero_padding, next_sequence = EXCLUDED.next_sequence, updated_at = NOW() RETURNING " + joinColumns(idFormatColumns)).
		QueryRowContext(ctx)

	upserted, err := scanIDFormat(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert employee ID format: %w", err)
	}

	return upserted, nil
}
