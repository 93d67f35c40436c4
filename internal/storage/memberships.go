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

func (s *Storage) CreateMembership(ctx context.Context, userID, tenantID string, isOwner bool) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("user_workspaces").
		Columns("id", "user_id", "tenant_id", "is_owner").
		Values(id.String(), userID, tenantID, isOwner).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add membership: %w", err)
	}

	return id.String(), nil
}

// ListWorkspacesByUserID returns every tenant the user can act in, with the
// ownership flag, ordered by company name for stable presentation.
func (s *Storage) ListWorkspacesByUserID(ctx context.Context, userID string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkspacesByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("w.tenant_id", "t.company_name", "w.is_owner").
		From("user_workspaces w").
		Join("tenants t ON t.id = w.tenant_id").
		Where(sq.Eq{"w.user_id": userID}).
		OrderBy("t.company_name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []*types.Workspace
	for rows.Next() {
		var w types.Workspace
		if err := rows.Scan(&w.TenantID, &w.CompanyName, &w.IsOwner); err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workspaces, nil
}

// GetMembership fetches one user's membership row in a tenant, including the
// ownership flag. Absence is reported as ErrNotFound.
func (s *Storage) GetMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "user_id", "tenant_id", "is_owner", "created_at").
		From("user_workspaces").
		Where(sq.Eq{"user_id": userID, "tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.UserID, &m.TenantID, &m.IsOwner, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) IsMember(ctx context.Context, userID, tenantID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsMember")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("user_workspaces").
		Where(sq.Eq{"user_id": userID, "tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}

	return count > 0, nil
}
