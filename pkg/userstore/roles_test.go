// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package userstore

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/canonical/identity-store/internal/storage"
	"github.com/canonical/identity-store/internal/types"
)

func testRole() *types.Role {
	return &types.Role{
		ID:       7,
		RoleGUID: uuid.MustParse("2c1f8a3e-1111-4f8e-bb1c-6a2f8a333333"),
		SiteID:   1,
		RoleName: "Editors",
	}
}

func TestStore_AddToRole(t *testing.T) {
	dbErr := errors.New("db error")
	site := testSite()
	role := testRole()

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface, *types.User)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, u *types.User) {
				mockStorage.EXPECT().GetRoleByName(gomock.Any(), site.ID, "Editors").Return(role, nil)
				mockStorage.EXPECT().AddUserToRole(gomock.Any(), role.ID, role.RoleGUID, u.ID, u.UserGUID).Return(nil)
			},
		},
		{
			name: "unknown role is ignored",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, u *types.User) {
				mockStorage.EXPECT().GetRoleByName(gomock.Any(), site.ID, "Editors").Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name: "existing membership is ignored",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, u *types.User) {
				mockStorage.EXPECT().GetRoleByName(gomock.Any(), site.ID, "Editors").Return(role, nil)
				mockStorage.EXPECT().AddUserToRole(gomock.Any(), role.ID, role.RoleGUID, u.ID, u.UserGUID).Return(storage.ErrDuplicateKey)
			},
		},
		{
			name: "storage error is surfaced",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, u *types.User) {
				mockStorage.EXPECT().GetRoleByName(gomock.Any(), site.ID, "Editors").Return(nil, dbErr)
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
			mockLogger := NewMockLoggerInterface(ctrl)

			expectSpans(mockTracer)

			user := boundUser()
			mockSites.EXPECT().Resolve(gomock.Any()).Return(site, nil)
			tc.setupMocks(mockStorage, mockLogger, user)

			s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, mockLogger)

			err := s.AddToRole(context.Background(), user, "Editors")

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestStore_RemoveFromRole(t *testing.T) {
	site := testSite()
	role := testRole()

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockLoggerInterface, *types.User)
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, u *types.User) {
				mockStorage.EXPECT().GetRoleByName(gomock.Any(), site.ID, "Editors").Return(role, nil)
				mockStorage.EXPECT().RemoveUserFromRole(gomock.Any(), role.ID, u.ID).Return(nil)
			},
		},
		{
			name: "unknown role is ignored",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, u *types.User) {
				mockStorage.EXPECT().GetRoleByName(gomock.Any(), site.ID, "Editors").Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
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
			mockLogger := NewMockLoggerInterface(ctrl)

			expectSpans(mockTracer)

			user := boundUser()
			mockSites.EXPECT().Resolve(gomock.Any()).Return(site, nil)
			tc.setupMocks(mockStorage, mockLogger, user)

			s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, mockLogger)

			if err := s.RemoveFromRole(context.Background(), user, "Editors"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestStore_GetRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockSites := NewMockSiteResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	expectSpans(mockTracer)

	site := testSite()
	user := boundUser()
	mockSites.EXPECT().Resolve(gomock.Any()).Return(site, nil)
	mockStorage.EXPECT().GetUserRoleNames(gomock.Any(), site.ID, user.ID).Return([]string{"Editors", "Admins"}, nil)

	s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, mockLogger)

	got, err := s.GetRoles(context.Background(), user)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Editors", "Admins"}) {
		t.Fatalf("unexpected roles %v", got)
	}
}

func TestStore_IsInRole(t *testing.T) {
	site := testSite()

	testCases := []struct {
		name     string
		roleName string
		expected bool
	}{
		{name: "exact match", roleName: "Editors", expected: true},
		{name: "case-insensitive match", roleName: "editors", expected: true},
		{name: "no match", roleName: "Admins", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSites := NewMockSiteResolverInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			expectSpans(mockTracer)

			user := boundUser()
			mockSites.EXPECT().Resolve(gomock.Any()).Return(site, nil)
			mockStorage.EXPECT().GetUserRoleNames(gomock.Any(), site.ID, user.ID).Return([]string{"Editors"}, nil)

			s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, mockLogger)

			got, err := s.IsInRole(context.Background(), user, tc.roleName)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestStore_GetUsersInRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockSites := NewMockSiteResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	expectSpans(mockTracer)

	site := testSite()
	expectedUsers := []*types.User{boundUser()}
	mockSites.EXPECT().Resolve(gomock.Any()).Return(site, nil)
	mockStorage.EXPECT().GetUsersInRole(gomock.Any(), site.ID, "Editors").Return(expectedUsers, nil)

	s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, mockLogger)

	got, err := s.GetUsersInRole(context.Background(), "Editors")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, expectedUsers) {
		t.Fatalf("expected users %v, got %v", expectedUsers, got)
	}
}
