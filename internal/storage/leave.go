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

var leaveTypeColumns = []string{"id", "tenant_id", "name", "default_days", "paid", "created_at"}

func scanLeaveType(row sq.RowScanner) (*types.LeaveType, error) {
	var lt types.LeaveType
	if err := row.Scan(&lt.ID, &lt.TenantID, &lt.Name, &lt.DefaultDays, &lt.Paid, &lt.CreatedAt); err != nil {
		return nil, err
	}
	return &lt, nil
}

func (s *Storage) CreateLeaveType(ctx context.Context, tenantID, name string, defaultDays int, paid bool) (*types.LeaveType, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLeaveType")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate leave type ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("leave_types").
		Columns("id", "tenant_id", "name", "default_days", "paid").
		Values(id.String(), tenantID, name, defaultDays, paid).
		Suffix("RETURNING " + joinColumns(leaveTypeColumns)).
		QueryRowContext(ctx)

	leaveType, err := scanLeaveType(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to create leave type: %w", err)
	}

	return leaveType, nil
}

func (s *Storage) ListLeaveTypesByTenantID(ctx context.Context, tenantID string) ([]*types.LeaveType, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLeaveTypesByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(leaveTypeColumns...).
		From("leave_types").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var leaveTypes []*types.LeaveType
	for rows.Next() {
		leaveType, err := scanLeaveType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		leaveTypes = append(leaveTypes, leaveType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return leaveTypes, nil
}

func (s *Storage) UpdateLeaveType(ctx context.Context, tenantID, leaveTypeID, name string, defaultDays int, paid bool) (*types.LeaveType, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLeaveType")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("leave_types").
		Set("name", name).
		Set("default_days", defaultDays).
		Set("paid", paid).
		Where(sq.Eq{"id": leaveTypeID, "tenant_id": tenantID}).
		Suffix("RETURNING " + joinColumns(leaveTypeColumns)).
		QueryRowContext(ctx)

	leaveType, err := scanLeaveType(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to update leave type: %w", err)
	}

	return leaveType, nil
}

func (s *Storage) DeleteLeaveType(ctx context.Context, tenantID, leaveTypeID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLeaveType")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("leave_types").
		Where(sq.Eq{"id": leaveTypeID, "tenant_id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to delete leave type: %w", err)
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

// LockLeaveTypeByID fetches a leave type with FOR UPDATE, serializing writers
// that rewrite its default entitlement set.
func (s *Storage) LockLeaveTypeByID(ctx context.Context, tenantID, leaveTypeID string) (*types.LeaveType, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockLeaveTypeByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(leaveTypeColumns...).
		From("leave_types").
		Where(sq.Eq{"id": leaveTypeID, "tenant_id": tenantID}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx)

	leaveType, err := scanLeaveType(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock leave type: %w", err)
	}

	return leaveType, nil
}

var entitlementColumns = []string{"id", "tenant_id", "employee_id", "leave_type_id", "year", "days", "created_at"}

func scanEntitlement(row sq.RowScanner) (*types.LeaveEntitlement, error) {
	var e types.LeaveEntitlement
	if err := row.Scan(&e.ID, &e.TenantID, &e.EmployeeID, &e.LeaveTypeID, &e.Year, &e.Days, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpsertLeaveEntitlement sets an employee's allowance for one leave type and
// year, replacing any previous allocation.
func (s *Storage) UpsertLeaveEntitlement(ctx context.Context, entitlement *types.LeaveEntitlement) (*types.LeaveEntitlement, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertLeaveEntitlement")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate entitlement ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("leave_entitlements").
		Columns("id", "tenant_id", "employee_id", "leave_type_id", "year", "days").
		Values(id.String(), entitlement.TenantID, entitlement.EmployeeID, entitlement.LeaveTypeID, entitlement.Year, entitlement.Days).
		Suffix("ON CONFLICT (employee_id, leave_type_id, year) DO UPDATE SET days = EXCLUDED.days RETURNING " + joinColumns(entitlementColumns)).
		QueryRowContext(ctx)

	upserted, err := scanEntitlement(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to upsert leave entitlement: %w", err)
	}

	return upserted, nil
}

func (s *Storage) ListLeaveEntitlements(ctx context.Context, tenantID, employeeID string, year int) ([]*types.LeaveEntitlement, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLeaveEntitlements")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(entitlementColumns...).
		From("leave_entitlements").
		Where(sq.Eq{"tenant_id": tenantID})
	if employeeID != "" {
		query = query.Where(sq.Eq{"employee_id": employeeID})
	}
	if year != 0 {
		query = query.Where(sq.Eq{"year": year})
	}

	rows, err := query.OrderBy("year", "employee_id").QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave entitlements: %w", err)
	}
	defer rows.Close()

	var entitlements []*types.LeaveEntitlement
	for rows.Next() {
		entitlement, err := scanEntitlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave entitlement: %w", err)
		}
		entitlements = append(entitlements, entitlement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entitlements, nil
}

func (s *Storage) DeleteLeaveEntitlement(ctx context.Context, tenantID, entitlementID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLeaveEntitlement")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("leave_entitlements").
		Where(sq.Eq{"id": entitlementID, "tenant_id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete leave entitlement: %w", err)
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

var leaveDefaultColumns = []string{"id", "tenant_id", "leave_type_id", "service_year", "days"}

func scanLeaveDefault(row sq.RowScanner) (*types.LeaveDefault, error) {
	var d types.LeaveDefault
	if err := row.Scan(&d.ID, &d.TenantID, &d.LeaveTypeID, &d.ServiceYear, &d.Days); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Storage) ListLeaveDefaults(ctx context.Context, tenantID, leaveTypeID string) ([]*types.LeaveDefault, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLeaveDefaults")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(leaveDefaultColumns...).
		From("leave_defaults").
		Where(sq.Eq{"tenant_id": tenantID})
	if leaveTypeID != "" {
		query = query.Where(sq.Eq{"leave_type_id": leaveTypeID})
	}

	rows, err := query.OrderBy("leave_type_id", "service_year").QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave defaults: %w", err)
	}
	defer rows.Close()

	var defaults []*types.LeaveDefault
	for rows.Next() {
		def, err := scanLeaveDefault(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave default: %w", err)
		}
		defaults = append(defaults, def)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return defaults, nil
}

// ReplaceLeaveDefaults rewrites the default entitlement tiers for one leave
// type. The caller is expected to hold the leave type row lock.
func (s *Storage) ReplaceLeaveDefaults(ctx context.Context, tenantID, leaveTypeID string, defaults []*types.LeaveDefault) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReplaceLeaveDefaults")
	defer span.End()

	if _, err := s.db.Statement(ctx).
		Delete("leave_defaults").
		Where(sq.Eq{"tenant_id": tenantID, "leave_type_id": leaveTypeID}).
		ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to clear leave defaults: %w", err)
	}

	if len(defaults) == 0 {
		return nil
	}

	insert := s.db.Statement(ctx).
		Insert("leave_defaults").
		Columns("id", "tenant_id", "leave_type_id", "service_year", "days")
	for _, def := range defaults {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate leave default ID: %w", err)
		}
		insert = insert.Values(id.String(), tenantID, leaveTypeID, def.ServiceYear, def.Days)
	}

	if _, err := insert.ExecContext(ctx); err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert leave defaults: %w", err)
	}

	return nil
}
