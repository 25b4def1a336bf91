// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package userstore

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/identity-store/internal/logging"
	"github.com/canonical/identity-store/internal/types"
)

func TestStore_AddClaims(t *testing.T) {
	dbErr := errors.New("db error")
	user := boundUser()
	claims := []types.Claim{
		{Type: "email", Value: "alice@example.com"},
		{Type: "role", Value: "editor"},
	}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "saves one row per claim",
			setupMocks: func(mockStorage *MockStorageInterface) {
				gomock.InOrder(
					mockStorage.EXPECT().SaveClaim(gomock.Any(), &types.UserClaim{
						UserGUID:   user.UserGUID,
						ClaimType:  "email",
						ClaimValue: "alice@example.com",
					}).Return(nil),
					mockStorage.EXPECT().SaveClaim(gomock.Any(), &types.UserClaim{
						UserGUID:   user.UserGUID,
						ClaimType:  "role",
						ClaimValue: "editor",
					}).Return(nil),
				)
			},
		},
		{
			name: "stops at the first failure",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SaveClaim(gomock.Any(), gomock.Any()).Return(dbErr)
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
			tc.setupMocks(mockStorage)

			s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

			err := s.AddClaims(context.Background(), user, claims)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestStore_RemoveClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockSites := NewMockSiteResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	expectSpans(mockTracer)

	user := boundUser()
	mockStorage.EXPECT().DeleteClaimByUser(gomock.Any(), user.UserGUID, "email").Return(nil)
	mockStorage.EXPECT().DeleteClaimByUser(gomock.Any(), user.UserGUID, "role").Return(nil)

	s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

	claims := []types.Claim{
		{Type: "email", Value: "ignored"},
		{Type: "role", Value: "ignored"},
	}
	if err := s.RemoveClaims(context.Background(), user, claims); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStore_ReplaceClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockSites := NewMockSiteResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	expectSpans(mockTracer)

	user := boundUser()
	gomock.InOrder(
		mockStorage.EXPECT().DeleteClaimByUser(gomock.Any(), user.UserGUID, "email").Return(nil),
		mockStorage.EXPECT().SaveClaim(gomock.Any(), &types.UserClaim{
			UserGUID:   user.UserGUID,
			ClaimType:  "email",
			ClaimValue: "new@example.com",
		}).Return(nil),
	)

	s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

	oldClaim := types.Claim{Type: "email", Value: "old@example.com"}
	newClaim := types.Claim{Type: "email", Value: "new@example.com"}
	if err := s.ReplaceClaim(context.Background(), user, oldClaim, newClaim); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStore_GetClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockSites := NewMockSiteResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	expectSpans(mockTracer)

	user := boundUser()
	mockStorage.EXPECT().GetClaimsByUser(gomock.Any(), user.UserGUID).Return([]*types.UserClaim{
		{ID: 1, UserGUID: user.UserGUID, ClaimType: "email", ClaimValue: "alice@example.com"},
		{ID: 2, UserGUID: user.UserGUID, ClaimType: "role", ClaimValue: "editor"},
	}, nil)

	s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

	got, err := s.GetClaims(context.Background(), user)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []types.Claim{
		{Type: "email", Value: "alice@example.com"},
		{Type: "role", Value: "editor"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected claims %v, got %v", want, got)
	}
}

func TestStore_GetUsersForClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockSites := NewMockSiteResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	expectSpans(mockTracer)

	site := testSite()
	expectedUsers := []*types.User{boundUser()}

	mockSites.EXPECT().Resolve(gomock.Any()).Return(site, nil)
	mockStorage.EXPECT().GetUsersForClaim(gomock.Any(), site.ID, "role", "editor").Return(expectedUsers, nil)

	s := NewStore(mockStorage, mockSites, mockTracer, mockMonitor, logging.NewNoopLogger())

	got, err := s.GetUsersForClaim(context.Background(), types.Claim{Type: "role", Value: "editor"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, expectedUsers) {
		t.Fatalf("expected users %v, got %v", expectedUsers, got)
	}
}
