// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package userstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/identity-store/internal/logging"
	"github.com/canonical/identity-store/internal/types"
)

func TestStore_SavingSetters(t *testing.T) {
	testCases := []struct {
		name      string
		apply     func(*Store, context.Context, *types.User) error
		checkUser func(*testing.T, *types.User)
	}{
		{
			name: "SetUserName",
			apply: func(s *Store, ctx context.Context, u *types.User) error {
				return s.SetUserName(ctx, u, "bob")
			},
			checkUser: func(t *testing.T, u *types.User) {
				if u.LoginName != "bob" {
					t.Errorf("expected login name bob, got %q", u.LoginName)
				}
			},
		},
		{
			name: "SetNormalizedUserName",
			apply: func(s *Store, ctx context.Context, u *types.User) error {
				return s.SetNormalizedUserName(ctx, u, "bob")
			},
			checkUser: func(t *testing.T, u *types.User) {
				if u.LoginName != "bob" {
					t.Errorf("expected login name bob, got %q", u.LoginName)
				}
			},
		},
		{
			name: "SetEmail lowers the email for matching",
			apply: func(s *Store, ctx context.Context, u *types.User) error {
				return s.SetEmail(ctx, u, "Bob@Example.com")
			},
			checkUser: func(t *testing.T, u *types.User) {
				if u.Email != "Bob@Example.com" {
					t.Errorf("expected email Bob@Example.com, got %q", u.Email)
				}
				if u.LoweredEmail != "bob@example.com" {
					t.Errorf("expected lowered email bob@example.com, got %q", u.LoweredEmail)
				}
			},
		},
		{
			name: "SetNormalizedEmail",
			apply: func(s *Store, ctx context.Context, u *types.User) error {
				return s.SetNormalizedEmail(ctx, u, "Bob@Example.com")
			},
			checkUser: func(t *testing.T, u *types.User) {
				if u.LoweredEmail != "bob@example.com" {
					t.Errorf("expected lowered email bob@example.com, got %q", u.LoweredEmail)
				}
			},
		},
		{
			name: "SetEmailConfirmed",
			apply: func(s *Store, ctx context.Context, u *types.User) error {
				return s.SetEmailConfirmed(ctx, u, true)
			},
			checkUser: func(t *testing.T, u *types.User) {
				if !u.EmailConfirmed {
					t.Error("expected email confirmed")
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSites := NewMockSiteResolverInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			expectSpans(mockTracer)
			mockStorage.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)

			s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

			user := boundUser()
			if err := tc.apply(s, context.Background(), user); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			tc.checkUser(t, user)
		})
	}
}

// In-memory setters must not touch storage at all; the mock controller
// fails the test if any storage call is made.
func TestStore_InMemorySetters(t *testing.T) {
	lockoutEnd := time.Now().Add(time.Hour).UTC()

	testCases := []struct {
		name      string
		apply     func(*Store, context.Context, *types.User) error
		checkUser func(*testing.T, *types.User)
	}{
		{
			name: "SetPasswordHash",
			apply: func(s *Store, ctx context.Context, u *types.User) error {
				return s.SetPasswordHash(ctx, u, "$2a$10$hash")
			},
			checkUser: func(t *testing.T, u *types.User) {
				if u.PasswordHash != "$2a$10$hash" {
					t.Errorf("expected password hash to be set, got %q", u.PasswordHash)
				}
			},
		},
		{
			name: "SetTwoFactorEnabled",
			apply: func(s *Store, ctx context.Context, u *types.User) error {
				return s.SetTwoFactorEnabled(ctx, u, true)
			},
			checkUser: func(t *testing.T, u *types.User) {
				if !u.TwoFactorEnabled {
					t.Error("expected two factor enabled")
				}
			},
		},
		{
			name: "SetPhoneNumber",
			apply: func(s *Store, ctx context.Context, u *types.User) error {
				return s.SetPhoneNumber(ctx, u, "+44 20 7946 0958")
			},
			checkUser: func(t *testing.T, u *types.User) {
				if u.PhoneNumber != "+44 20 7946 0958" {
					t.Errorf("expected phone number to be set, got %q", u.PhoneNumber)
				}
			},
		},
		{
			name: "SetPhoneNumberConfirmed",
			apply: func(s *Store, ctx context.Context, u *types.User) error {
				return s.SetPhoneNumberConfirmed(ctx, u, true)
			},
			checkUser: func(t *testing.T, u *types.User) {
				if !u.PhoneNumberConfirmed {
					t.Error("expected phone number confirmed")
				}
			},
		},
		{
			name: "SetLockoutEndDate",
			apply: func(s *Store, ctx context.Context, u *types.User) error {
				return s.SetLockoutEndDate(ctx, u, &lockoutEnd)
			},
			checkUser: func(t *testing.T, u *types.User) {
				if u.LockoutEndUTC == nil || !u.LockoutEndUTC.Equal(lockoutEnd) {
					t.Errorf("expected lockout end %v, got %v", lockoutEnd, u.LockoutEndUTC)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSites := NewMockSiteResolverInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			expectSpans(mockTracer)

			s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

			user := boundUser()
			if err := tc.apply(s, context.Background(), user); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			tc.checkUser(t, user)
		})
	}
}

func TestStore_SetLockoutEnabled(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		enabled     bool
		setupMocks  func(*MockStorageInterface, *types.User)
		checkUser   func(*testing.T, *types.User)
		expectedErr error
	}{
		{
			name:    "lock",
			enabled: true,
			setupMocks: func(mockStorage *MockStorageInterface, u *types.User) {
				mockStorage.EXPECT().LockAccount(gomock.Any(), u.UserGUID).Return(nil)
			},
			checkUser: func(t *testing.T, u *types.User) {
				if !u.IsLockedOut {
					t.Error("expected user to be locked out")
				}
			},
		},
		{
			name:    "unlock clears the failed attempt counter",
			enabled: false,
			setupMocks: func(mockStorage *MockStorageInterface, u *types.User) {
				u.IsLockedOut = true
				u.FailedPasswordAttemptCount = 5
				mockStorage.EXPECT().UnlockAccount(gomock.Any(), u.UserGUID).Return(nil)
			},
			checkUser: func(t *testing.T, u *types.User) {
				if u.IsLockedOut {
					t.Error("expected user to be unlocked")
				}
				if u.FailedPasswordAttemptCount != 0 {
					t.Errorf("expected counter 0, got %d", u.FailedPasswordAttemptCount)
				}
			},
		},
		{
			name:    "lock failure leaves the record untouched",
			enabled: true,
			setupMocks: func(mockStorage *MockStorageInterface, u *types.User) {
				mockStorage.EXPECT().LockAccount(gomock.Any(), u.UserGUID).Return(dbErr)
			},
			checkUser: func(t *testing.T, u *types.User) {
				if u.IsLockedOut {
					t.Error("expected user to stay unlocked")
				}
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSites := NewMockSiteResolverInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			expectSpans(mockTracer)

			user := boundUser()
			tc.setupMocks(mockStorage, user)

			s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

			err := s.SetLockoutEnabled(context.Background(), user, tc.enabled)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			tc.checkUser(t, user)
		})
	}
}

func TestStore_IncrementAccessFailedCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockSites := NewMockSiteResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	expectSpans(mockTracer)

	user := boundUser()
	gomock.InOrder(
		mockStorage.EXPECT().UpdateFailedPasswordAttemptCount(gomock.Any(), user.UserGUID, int32(1)).Return(nil),
		mockStorage.EXPECT().UpdateFailedPasswordAttemptCount(gomock.Any(), user.UserGUID, int32(2)).Return(nil),
	)

	s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

	for want := int32(1); want <= 2; want++ {
		got, err := s.IncrementAccessFailedCount(context.Background(), user)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != want {
			t.Fatalf("expected count %d, got %d", want, got)
		}
	}
}

func TestStore_ResetAccessFailedCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockSites := NewMockSiteResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	expectSpans(mockTracer)

	user := boundUser()
	user.FailedPasswordAttemptCount = 4
	mockStorage.EXPECT().UpdateFailedPasswordAttemptCount(gomock.Any(), user.UserGUID, int32(0)).Return(nil)

	s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

	if err := s.ResetAccessFailedCount(context.Background(), user); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.FailedPasswordAttemptCount != 0 {
		t.Fatalf("expected counter 0, got %d", user.FailedPasswordAttemptCount)
	}
}
