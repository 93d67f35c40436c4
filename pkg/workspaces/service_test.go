// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package workspaces -destination ./mock_workspaces.go -source=./interfaces.go

type serviceMocks struct {
	storage *MockStorageInterface
	roles   *MockRoleSeederInterface
	tokens  *MockTokenIssuerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	mocks := serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		roles:   NewMockRoleSeederInterface(ctrl),
		tokens:  NewMockTokenIssuerInterface(ctrl),
	}
	s := NewService(mocks.storage, mocks.roles, mocks.tokens, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mocks
}

func TestService_CreateWorkspace(t *testing.T) {
	t.Run("provisions tenant, owner membership and bootstrap roles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		tenant := &types.Tenant{ID: "tenant-2", CompanyName: "Second Venture"}
		mocks.storage.EXPECT().CreateTenant(gomock.Any(), "Second Venture").Return(tenant, nil)
		mocks.storage.EXPECT().CreateMembership(gomock.Any(), "user-1", "tenant-2", true).Return("membership-1", nil)
		mocks.roles.EXPECT().SeedDefaultRoles(gomock.Any(), "tenant-2", "user-1").Return(nil)

		workspace, err := s.CreateWorkspace(context.Background(), "user-1", "Second Venture")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if workspace.TenantID != "tenant-2" {
			t.Errorf("expected tenant ID tenant-2, got %q", workspace.TenantID)
		}
		if !workspace.IsOwner {
			t.Error("expected the creator to be the owner")
		}
	})

	t.Run("bootstrap failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		bootstrapErr := errors.New("catalog incomplete")
		mocks.storage.EXPECT().CreateTenant(gomock.Any(), "Second Venture").Return(&types.Tenant{ID: "tenant-2"}, nil)
		mocks.storage.EXPECT().CreateMembership(gomock.Any(), "user-1", "tenant-2", true).Return("membership-1", nil)
		mocks.roles.EXPECT().SeedDefaultRoles(gomock.Any(), "tenant-2", "user-1").Return(bootstrapErr)

		if _, err := s.CreateWorkspace(context.Background(), "user-1", "Second Venture"); !errors.Is(err, bootstrapErr) {
			t.Errorf("expected bootstrap error, got %v", err)
		}
	})
}

func TestService_SelectWorkspace(t *testing.T) {
	t.Run("mints a token scoped to the chosen tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		mocks.storage.EXPECT().GetMembership(gomock.Any(), "user-1", "tenant-2").
			Return(&types.Membership{UserID: "user-1", TenantID: "tenant-2", IsOwner: true}, nil)
		mocks.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-2").Return(&types.Tenant{ID: "tenant-2", CompanyName: "Second Venture"}, nil)
		mocks.tokens.EXPECT().IssueToken(gomock.Any(), "user-1", "tenant-2", authentication.DefaultTokenTTL).Return("scoped-token", nil)

		token, workspace, err := s.SelectWorkspace(context.Background(), "user-1", "tenant-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "scoped-token" {
			t.Errorf("expected token %q, got %q", "scoped-token", token)
		}
		if workspace.CompanyName != "Second Venture" {
			t.Errorf("expected company name Second Venture, got %q", workspace.CompanyName)
		}
		if !workspace.IsOwner {
			t.Error("expected ownership flag to be carried over from the membership")
		}
	})

	t.Run("rejects tenants the user does not belong to", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		mocks.storage.EXPECT().GetMembership(gomock.Any(), "user-1", "tenant-9").Return(nil, storage.ErrNotFound)

		_, _, err := s.SelectWorkspace(context.Background(), "user-1", "tenant-9")
		if !errors.Is(err, ErrNotAMember) {
			t.Errorf("expected ErrNotAMember, got %v", err)
		}
	})
}
