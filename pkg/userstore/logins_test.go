// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package userstore

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/identity-store/internal/logging"
	"github.com/canonical/identity-store/internal/storage"
	"github.com/canonical/identity-store/internal/types"
)

func TestStore_AddLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockSites := NewMockSiteResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	expectSpans(mockTracer)

	user := boundUser()
	mockStorage.EXPECT().CreateLogin(gomock.Any(), &types.UserLogin{
		LoginProvider: "github",
		ProviderKey:   "gh-12345",
		UserID:        user.UserGUID.String(),
	}).Return(nil)

	s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

	if err := s.AddLogin(context.Background(), user, "github", "gh-12345"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStore_FindByLogin(t *testing.T) {
	dbErr := errors.New("db error")
	site := testSite()
	user := boundUser()

	testCases := []struct {
		name         string
		setupMocks   func(*MockStorageInterface, *MockSiteResolverInterface)
		expectedUser *types.User
		expectedErr  error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockSites *MockSiteResolverInterface) {
				mockStorage.EXPECT().FindLogin(gomock.Any(), "github", "gh-12345").Return(&types.UserLogin{
					LoginProvider: "github",
					ProviderKey:   "gh-12345",
					UserID:        user.UserGUID.String(),
				}, nil)
				mockSites.EXPECT().Resolve(gomock.Any()).Return(site, nil)
				mockStorage.EXPECT().GetUserByGUID(gomock.Any(), site.ID, user.UserGUID).Return(user, nil)
			},
			expectedUser: user,
		},
		{
			name: "unknown login yields nil user",
			setupMocks: func(mockStorage *MockStorageInterface, mockSites *MockSiteResolverInterface) {
				mockStorage.EXPECT().FindLogin(gomock.Any(), "github", "gh-12345").Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "stored user id of the wrong length yields nil user",
			setupMocks: func(mockStorage *MockStorageInterface, mockSites *MockSiteResolverInterface) {
				mockStorage.EXPECT().FindLogin(gomock.Any(), "github", "gh-12345").Return(&types.UserLogin{
					LoginProvider: "github",
					ProviderKey:   "gh-12345",
					UserID:        "42",
				}, nil)
			},
		},
		{
			name: "stored user id that is not a guid yields nil user",
			setupMocks: func(mockStorage *MockStorageInterface, mockSites *MockSiteResolverInterface) {
				mockStorage.EXPECT().FindLogin(gomock.Any(), "github", "gh-12345").Return(&types.UserLogin{
					LoginProvider: "github",
					ProviderKey:   "gh-12345",
					UserID:        "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz",
				}, nil)
			},
		},
		{
			name: "dangling guid yields nil user",
			setupMocks: func(mockStorage *MockStorageInterface, mockSites *MockSiteResolverInterface) {
				mockStorage.EXPECT().FindLogin(gomock.Any(), "github", "gh-12345").Return(&types.UserLogin{
					LoginProvider: "github",
					ProviderKey:   "gh-12345",
					UserID:        user.UserGUID.String(),
				}, nil)
				mockSites.EXPECT().Resolve(gomock.Any()).Return(site, nil)
				mockStorage.EXPECT().GetUserByGUID(gomock.Any(), site.ID, user.UserGUID).Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "storage error is surfaced",
			setupMocks: func(mockStorage *MockStorageInterface, mockSites *MockSiteResolverInterface) {
				mockStorage.EXPECT().FindLogin(gomock.Any(), "github", "gh-12345").Return(nil, dbErr)
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
			tc.setupMocks(mockStorage, mockSites)

			s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

			got, err := s.FindByLogin(context.Background(), "github", "gh-12345")

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if got != tc.expectedUser {
				t.Fatalf("expected user %v, got %v", tc.expectedUser, got)
			}
		})
	}
}

func TestStore_RemoveLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockSites := NewMockSiteResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	expectSpans(mockTracer)

	user := boundUser()
	mockStorage.EXPECT().DeleteLogin(gomock.Any(), "github", "gh-12345", user.UserGUID.String()).Return(nil)

	s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

	if err := s.RemoveLogin(context.Background(), user, "github", "gh-12345"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStore_GetLogins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockSites := NewMockSiteResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	expectSpans(mockTracer)

	user := boundUser()
	expectedLogins := []*types.UserLogin{
		{LoginProvider: "github", ProviderKey: "gh-12345", UserID: user.UserGUID.String()},
	}
	mockStorage.EXPECT().GetLoginsByUser(gomock.Any(), user.UserGUID.String()).Return(expectedLogins, nil)

	s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

	got, err := s.GetLogins(context.Background(), user)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0] != expectedLogins[0] {
		t.Fatalf("expected logins %v, got %v", expectedLogins, got)
	}
}
