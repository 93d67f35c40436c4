// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/workforce-service/internal/logging"
	"github.com/canonical/workforce-service/internal/monitoring"
	"github.com/canonical/workforce-service/internal/storage"
	"github.com/canonical/workforce-service/internal/tracing"
	"github.com/canonical/workforce-service/internal/types"
	"github.com/canonical/workforce-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_accounts.go -source=./interfaces.go

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
	s := NewService(mocks.storage, mocks.roles, mocks.tokens, "Staff", tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mocks
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(hash)
}

func TestService_Register(t *testing.T) {
	t.Run("provisions tenant, owner and bootstrap roles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		tenant := &types.Tenant{ID: "tenant-1", CompanyName: "Acme"}
		mocks.storage.EXPECT().CreateTenant(gomock.Any(), "Acme").Return(tenant, nil)
		mocks.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *types.User) (*types.User, error) {
				if u.Email != "jane@acme.example" {
					t.Errorf("expected lowercased email, got %q", u.Email)
				}
				if u.AccountType != types.AccountTypeSubscriber {
					t.Errorf("expected subscriber account type, got %q", u.AccountType)
				}
				if u.FullName != "Jane Doe" {
					t.Errorf("expected full name %q, got %q", "Jane Doe", u.FullName)
				}
				u.ID = "user-1"
				return u, nil
			})
		mocks.storage.EXPECT().CreateMembership(gomock.Any(), "user-1", "tenant-1", true).Return("membership-1", nil)
		mocks.roles.EXPECT().SeedDefaultRoles(gomock.Any(), "tenant-1", "user-1").Return(nil)
		mocks.tokens.EXPECT().IssueToken(gomock.Any(), "user-1", "tenant-1", authentication.DefaultTokenTTL).Return("signed-token", nil)

		result, err := s.Register(context.Background(), "Acme", "Jane", "Doe", "Jane@Acme.example", "hunter2hunter2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Token != "signed-token" {
			t.Errorf("expected token %q, got %q", "signed-token", result.Token)
		}
		if result.Tenant.ID != "tenant-1" {
			t.Errorf("expected tenant ID tenant-1, got %q", result.Tenant.ID)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		mocks.storage.EXPECT().CreateTenant(gomock.Any(), "Acme").Return(&types.Tenant{ID: "tenant-1"}, nil)
		mocks.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

		_, err := s.Register(context.Background(), "Acme", "Jane", "Doe", "jane@acme.example", "hunter2hunter2")
		if !errors.Is(err, ErrDuplicateEmail) {
			t.Errorf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("rejects passwords beyond the bcrypt limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _ := newTestService(ctrl)

		_, err := s.Register(context.Background(), "Acme", "Jane", "Doe", "jane@acme.example", strings.Repeat("a", 73))
		if !errors.Is(err, ErrPasswordTooLong) {
			t.Errorf("expected ErrPasswordTooLong, got %v", err)
		}
	})

	t.Run("role bootstrap failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		bootstrapErr := errors.New("catalog incomplete")
		mocks.storage.EXPECT().CreateTenant(gomock.Any(), "Acme").Return(&types.Tenant{ID: "tenant-1"}, nil)
		mocks.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *types.User) (*types.User, error) {
				u.ID = "user-1"
				return u, nil
			})
		mocks.storage.EXPECT().CreateMembership(gomock.Any(), "user-1", "tenant-1", true).Return("membership-1", nil)
		mocks.roles.EXPECT().SeedDefaultRoles(gomock.Any(), "tenant-1", "user-1").Return(bootstrapErr)

		_, err := s.Register(context.Background(), "Acme", "Jane", "Doe", "jane@acme.example", "hunter2hunter2")
		if !errors.Is(err, bootstrapErr) {
			t.Errorf("expected bootstrap error, got %v", err)
		}
	})
}

func TestService_Login(t *testing.T) {
	subscriber := func(t *testing.T) *types.User {
		return &types.User{
			ID:           "user-1",
			TenantID:     "tenant-1",
			Email:        "jane@acme.example",
			AccountType:  types.AccountTypeSubscriber,
			PasswordHash: mustHash(t, "hunter2hunter2"),
		}
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		mocks.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.example").Return(subscriber(t), nil)
		mocks.tokens.EXPECT().IssueToken(gomock.Any(), "user-1", "tenant-1", authentication.DefaultTokenTTL).Return("signed-token", nil)

		result, err := s.Login(context.Background(), "Jane@Acme.example", "hunter2hunter2", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Token != "signed-token" {
			t.Errorf("expected token %q, got %q", "signed-token", result.Token)
		}
	})

	t.Run("remember me extends the token lifetime", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		mocks.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.example").Return(subscriber(t), nil)
		mocks.tokens.EXPECT().IssueToken(gomock.Any(), "user-1", "tenant-1", authentication.RememberMeTokenTTL).Return("signed-token", nil)

		if _, err := s.Login(context.Background(), "jane@acme.example", "hunter2hunter2", true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		mocks.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.example").Return(subscriber(t), nil)

		_, err := s.Login(context.Background(), "jane@acme.example", "wrong", false)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		mocks.storage.EXPECT().GetUserByEmail(gomock.Any(), "ghost@acme.example").Return(nil, storage.ErrNotFound)

		_, err := s.Login(context.Background(), "ghost@acme.example", "hunter2hunter2", false)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("workspace users cannot use subscriber login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		user := subscriber(t)
		user.AccountType = types.AccountTypeUser
		mocks.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.example").Return(user, nil)

		_, err := s.Login(context.Background(), "jane@acme.example", "hunter2hunter2", false)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestService_ChangePassword(t *testing.T) {
	t.Run("clears the must-change flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		user := &types.User{ID: "user-1", PasswordHash: mustHash(t, "old-password"), MustChangePassword: true}
		mocks.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
		mocks.storage.EXPECT().UpdateUserPassword(gomock.Any(), "user-1", gomock.Any(), false).Return(nil)

		if err := s.ChangePassword(context.Background(), "user-1", "old-password", "new-password"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		user := &types.User{ID: "user-1", PasswordHash: mustHash(t, "old-password")}
		mocks.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)

		err := s.ChangePassword(context.Background(), "user-1", "wrong", "new-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestService_CreateTenantUser(t *testing.T) {
	t.Run("provisions a user with a temporary password and default role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		role := &types.Role{ID: "staff-role", TenantID: "tenant-1", Name: "Staff"}
		mocks.storage.EXPECT().GetRoleByName(gomock.Any(), "tenant-1", "Staff").Return(role, nil)
		mocks.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *types.User) (*types.User, error) {
				if u.AccountType != types.AccountTypeUser {
					t.Errorf("expected user account type, got %q", u.AccountType)
				}
				if !u.MustChangePassword {
					t.Error("expected must-change-password to be set")
				}
				u.ID = "user-2"
				return u, nil
			})
		mocks.storage.EXPECT().CreateMembership(gomock.Any(), "user-2", "tenant-1", false).Return("membership-2", nil)
		mocks.storage.EXPECT().AssignRolesToUser(gomock.Any(), "user-2", []string{"staff-role"}).Return(nil)

		// Empty role name falls back to the configured default.
		result, err := s.CreateTenantUser(context.Background(), "tenant-1", "John", "Smith", "john@acme.example", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.TemporaryPassword == "" {
			t.Error("expected a temporary password")
		}
	})

	t.Run("unknown role name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		mocks.storage.EXPECT().GetRoleByName(gomock.Any(), "tenant-1", "Ghost").Return(nil, storage.ErrNotFound)

		if _, err := s.CreateTenantUser(context.Background(), "tenant-1", "John", "Smith", "john@acme.example", "Ghost"); err == nil {
			t.Error("expected an error for an unknown role")
		}
	})
}

func TestService_ResetTenantUserPassword(t *testing.T) {
	t.Run("forces a change on next login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		mocks.storage.EXPECT().IsMember(gomock.Any(), "user-2", "tenant-1").Return(true, nil)
		mocks.storage.EXPECT().GetUserByID(gomock.Any(), "user-2").Return(&types.User{ID: "user-2"}, nil)
		mocks.storage.EXPECT().UpdateUserPassword(gomock.Any(), "user-2", gomock.Any(), true).Return(nil)

		result, err := s.ResetTenantUserPassword(context.Background(), "tenant-1", "user-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.TemporaryPassword == "" {
			t.Error("expected a temporary password")
		}
	})

	t.Run("user outside the tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newTestService(ctrl)

		mocks.storage.EXPECT().IsMember(gomock.Any(), "user-9", "tenant-1").Return(false, nil)

		_, err := s.ResetTenantUserPassword(context.Background(), "tenant-1", "user-9")
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
