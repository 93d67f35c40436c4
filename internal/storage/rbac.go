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

var roleColumns = []string{"id", "tenant_id", "name", "description", "created_at"}

func scanRole(row sq.RowScanner) (*types.Role, error) {
	var r types.Role
	if err := row.Scan(&r.ID, &r.TenantID, &r.Name, &r.Description, &r.CreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListPermissions returns the full permission catalog ordered by code.
func (s *Storage) ListPermissions(ctx context.Context) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "code", "description", "created_at").
		From("permissions").
		OrderBy("code").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	var permissions []*types.Permission
	for rows.Next() {
		var p types.Permission
		if err := rows.Scan(&p.ID, &p.Code, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return permissions, nil
}

// GetPermissionsByCodes resolves catalog entries for the given codes. Codes
// with no catalog entry are silently absent from the result, callers decide
// whether that is an error.
func (s *Storage) GetPermissionsByCodes(ctx context.Context, codes []string) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPermissionsByCodes")
	defer span.End()

	if len(codes) == 0 {
		return nil, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("id", "code", "description", "created_at").
		From("permissions").
		Where(sq.Eq{"code": codes}).
		OrderBy("code").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get permissions by codes: %w", err)
	}
	defer rows.Close()

	var permissions []*types.Permission
	for rows.Next() {
		var p types.Permission
		if err := rows.Scan(&p.ID, &p.Code, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return permissions, nil
}

func (s *Storage) CreateRole(ctx context.Context, tenantID, name, description string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRole")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate role ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("roles").
		Columns("id", "tenant_id", "name", "description").
		Values(id.String(), tenantID, name, description).
		Suffix("RETURNING " + joinColumns(roleColumns)).
		QueryRowContext(ctx)

	role, err := scanRole(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	return role, nil
}

// GetRoleByID fetches a role scoped to a tenant. A role belonging to another
// tenant is reported as not found.
func (s *Storage) GetRoleByID(ctx context.Context, tenantID, roleID string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRoleByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(roleColumns...).
		From("roles").
		Where(sq.Eq{"id": roleID, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	role, err := scanRole(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return role, nil
}

// LockRoleByID fetches a role with FOR UPDATE, serializing writers that
// rewrite the role's grant set. Without the row lock two concurrent
// delete+insert passes under read committed interleave into a merged set.
func (s *Storage) LockRoleByID(ctx context.Context, tenantID, roleID string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockRoleByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(roleColumns...).
		From("roles").
		Where(sq.Eq{"id": roleID, "tenant_id": tenantID}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx)

	role, err := scanRole(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock role: %w", err)
	}

	return role, nil
}

func (s *Storage) GetRoleByName(ctx context.Context, tenantID, name string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRoleByName")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(roleColumns...).
		From("roles").
		Where(sq.Eq{"tenant_id": tenantID, "name": name}).
		QueryRowContext(ctx)

	role, err := scanRole(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}

	return role, nil
}

func (s *Storage) ListRolesByTenantID(ctx context.Context, tenantID string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRolesByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(roleColumns...).
		From("roles").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []*types.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

func (s *Storage) UpdateRole(ctx context.Context, tenantID, roleID, name, description string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateRole")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("roles").
		Set("name", name).
		Set("description", description).
		Where(sq.Eq{"id": roleID, "tenant_id": tenantID}).
		Suffix("RETURNING " + joinColumns(roleColumns)).
		QueryRowContext(ctx)

	role, err := scanRole(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	return role, nil
}

// DeleteRole removes a role together with its permission grants and user
// assignments, which cascade at the schema level.
func (s *Storage) DeleteRole(ctx context.Context, tenantID, roleID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRole")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("roles").
		Where(sq.Eq{"id": roleID, "tenant_id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
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

// ReplaceRolePermissions swaps the role's grants for the given permission IDs.
// Callers are expected to run this inside a request transaction so a failed
// insert does not leave the role stripped.
func (s *Storage) ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReplaceRolePermissions")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("role_permissions").
		Where(sq.Eq{"role_id": roleID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear role permissions: %w", err)
	}

	if len(permissionIDs) == 0 {
		return nil
	}

	insert := s.db.Statement(ctx).
		Insert("role_permissions").
		Columns("role_id", "permission_id")
	for _, permissionID := range permissionIDs {
		insert = insert.Values(roleID, permissionID)
	}

	if _, err := insert.ExecContext(ctx); err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to grant role permissions: %w", err)
	}

	return nil
}

func (s *Storage) ListRolePermissionCodes(ctx context.Context, roleID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRolePermissionCodes")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("p.code").
		From("role_permissions rp").
		Join("permissions p ON p.id = rp.permission_id").
		Where(sq.Eq{"rp.role_id": roleID}).
		OrderBy("p.code").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list role permission codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan permission code: %w", err)
		}
		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return codes, nil
}

// ListRolesByUserID returns the roles assigned to a user within a tenant.
func (s *Storage) ListRolesByUserID(ctx context.Context, tenantID, userID string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRolesByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("r.id", "r.tenant_id", "r.name", "r.description", "r.created_at").
		From("user_roles ur").
		Join("roles r ON r.id = ur.role_id").
		Where(sq.Eq{"ur.user_id": userID, "r.tenant_id": tenantID}).
		OrderBy("r.name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}
	defer rows.Close()

	var roles []*types.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

// ListRoleNamesByUserIDs returns tenant-scoped role names per user, used to
// decorate tenant user listings without one query per user.
func (s *Storage) ListRoleNamesByUserIDs(ctx context.Context, tenantID string, userIDs []string) (map[string][]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoleNamesByUserIDs")
	defer span.End()

	result := make(map[string][]string, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("ur.user_id", "r.name").
		From("user_roles ur").
		Join("roles r ON r.id = ur.role_id").
		Where(sq.Eq{"ur.user_id": userIDs, "r.tenant_id": tenantID}).
		OrderBy("r.name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list role names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID, name string
		if err := rows.Scan(&userID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan role name: %w", err)
		}
		result[userID] = append(result[userID], name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// AssignRolesToUser links the given roles to a user, skipping links that
// already exist.
func (s *Storage) AssignRolesToUser(ctx context.Context, userID string, roleIDs []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AssignRolesToUser")
	defer span.End()

	if len(roleIDs) == 0 {
		return nil
	}

	insert := s.db.Statement(ctx).
		Insert("user_roles").
		Columns("user_id", "role_id")
	for _, roleID := range roleIDs {
		insert = insert.Values(userID, roleID)
	}

	_, err := insert.
		Suffix("ON CONFLICT (user_id, role_id) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to assign roles: %w", err)
	}

	return nil
}

// RemoveRolesFromUser unlinks the given roles from a user. Missing links are
// not an error.
func (s *Storage) RemoveRolesFromUser(ctx context.Context, userID string, roleIDs []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveRolesFromUser")
	defer span.End()

	if len(roleIDs) == 0 {
		return nil
	}

	_, err := s.db.Statement(ctx).
		Delete("user_roles").
		Where(sq.Eq{"user_id": userID, "role_id": roleIDs}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove roles: %w", err)
	}

	return nil
}

// ClearUserRolesInTenant removes every role link a user holds within one
// tenant, leaving links to other tenants' roles untouched.
func (s *Storage) ClearUserRolesInTenant(ctx context.Context, tenantID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClearUserRolesInTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("user_roles").
		Where(sq.Eq{"user_id": userID}).
		Where("role_id IN (SELECT id FROM roles WHERE tenant_id = ?)", tenantID).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear user roles: %w", err)
	}

	return nil
}

// ListEffectivePermissionCodes resolves the distinct permission codes a user
// holds in a tenant by walking role assignments to granted permissions.
func (s *Storage) ListEffectivePermissionCodes(ctx context.Context, userID, tenantID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEffectivePermissionCodes")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT p.code").
		From("user_roles ur").
		Join("roles r ON r.id = ur.role_id").
		Join("role_permissions rp ON rp.role_id = r.id").
		Join("permissions p ON p.id = rp.permission_id").
		Where(sq.Eq{"ur.user_id": userID, "r.tenant_id": tenantID}).
		OrderBy("p.code").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve effective permissions: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan permission code: %w", err)
		}
		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return codes, nil
}
