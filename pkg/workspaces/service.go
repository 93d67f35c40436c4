// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package workspaces lets a user enumerate, create and switch between the
// tenants they belong to.
package workspaces

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authentication"
)

// ErrNotAMember is returned when a user selects a workspace they do not
// belong to. Handlers surface it as the generic 401.
var ErrNotAMember = errors.New("not a member of the workspace")

type Service struct {
	storage StorageInterface
	roles   RoleSeederInterface
	tokens  TokenIssuerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	roles RoleSeederInterface,
	tokens TokenIssuerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		roles:   roles,
		tokens:  tokens,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListWorkspaces(ctx context.Context, userID string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.ListWorkspaces")
	defer span.End()

	return s.storage.ListWorkspacesByUserID(ctx, userID)
}

// CreateWorkspace provisions a new tenant owned by the caller, with the
// bootstrap roles. Runs inside the request transaction, a bootstrap failure
// rolls back the tenant and membership rows.
func (s *Service) CreateWorkspace(ctx context.Context, userID, companyName string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.CreateWorkspace")
	defer span.End()

	tenant, err := s.storage.CreateTenant(ctx, companyName)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	if _, err := s.storage.CreateMembership(ctx, userID, tenant.ID, true); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	if err := s.roles.SeedDefaultRoles(ctx, tenant.ID, userID); err != nil {
		return nil, fmt.Errorf("failed to bootstrap roles: %w", err)
	}

	return &types.Workspace{TenantID: tenant.ID, CompanyName: tenant.CompanyName, IsOwner: true}, nil
}

// SelectWorkspace exchanges the caller's token for one scoped to the chosen
// tenant, after confirming membership.
func (s *Service) SelectWorkspace(ctx context.Context, userID, tenantID string) (string, *types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.SelectWorkspace")
	defer span.End()

	membership, err := s.storage.GetMembership(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthFailure(userID)
			return "", nil, ErrNotAMember
		}
		return "", nil, err
	}

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.IssueToken(ctx, userID, tenantID, authentication.DefaultTokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, &types.Workspace{TenantID: tenant.ID, CompanyName: tenant.CompanyName, IsOwner: membership.IsOwner}, nil
}
