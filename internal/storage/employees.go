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

var employeeColumns = []string{
	"id", "tenant_id", "user_id", "first_name", "last_name", "email",
	"position", "department", "hired_on", "work_schedule_group_id", "created_at",
}

func scanEmployee(row sq.RowScanner) (*types.Employee, error) {
	var e types.Employee
	err := row.Scan(
		&e.ID, &e.TenantID, &e.UserID, &e.FirstName, &e.LastName, &e.Email,
		&e.Position, &e.Department, &e.HiredOn, &e.WorkScheduleGroupID, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Storage) CreateEmployee(ctx context.Context, employee *types.Employee) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateEmployee")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate employee ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("employees").
		Columns("id", "tenant_id", "user_id", "first_name", "last_name", "email", "position", "department", "hired_on", "work_schedule_group_id").
		Values(id.String(), employee.TenantID, employee.UserID, employee.FirstName, employee.LastName, employee.Email, employee.Position, employee.Department, employee.HiredOn, employee.WorkScheduleGroupID).
		Suffix("RETURNING " + joinColumns(employeeColumns)).
		QueryRowContext(ctx)

	created, err := scanEmployee(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (s *Storage) GetEmployeeByID(ctx context.Context, tenantID, employeeID string) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEmployeeByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(employeeColumns...).
		From("employees").
		Where(sq.Eq{"id": employeeID, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	employee, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

func (s *Storage) ListEmployeesByTenantID(ctx context.Context, tenantID string, offset, size uint64) ([]*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEmployeesByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(employeeColumns...).
		From("employees").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("last_name", "first_name").
		Offset(offset).
		Limit(size).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*types.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

func (s *Storage) UpdateEmployee(ctx context.Context, employee *types.Employee) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateEmployee")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("employees").
		Set("first_name", employee.FirstName).
		Set("last_name", employee.LastName).
		Set("email", employee.Email).
		Set("position", employee.Position).
		Set("department", employee.Department).
		Set("hired_on", employee.HiredOn).
		Set("work_schedule_group_id", employee.WorkScheduleGroupID).
		Where(sq.Eq{"id": employee.ID, "tenant_id": employee.TenantID}).
		Suffix("RETURNING " + joinColumns(employeeColumns)).
		QueryRowContext(ctx)

	updated, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

func (s *Storage) DeleteEmployee(ctx context.Context, tenantID, employeeID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteEmployee")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("employees").
		Where(sq.Eq{"id": employeeID, "tenant_id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
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
