// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package site

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/identity-store/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package site -destination ./mock_site.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package site -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package site -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package site -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestResolver_Resolve(t *testing.T) {
	dbErr := errors.New("db error")
	site := &types.Site{
		ID:       1,
		SiteGUID: uuid.MustParse("8f9a3a3e-3f09-4f8e-bb1c-6a2f8a111111"),
		Host:     "example.com",
		Name:     "Example",
	}

	testCases := []struct {
		name         string
		setupMocks   func(*MockStorageInterface, *MockLoggerInterface)
		expectedSite *types.Site
		expectedErr  error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetSiteByID(gomock.Any(), int64(1)).Return(site, nil)
			},
			expectedSite: site,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetSiteByID(gomock.Any(), int64(1)).Return(nil, dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().
				Start(gomock.Any(), "site.Resolver.Resolve").
				DoAndReturn(func(ctx context.Context, _ string) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})
			tc.setupMocks(mockStorage, mockLogger)

			r := NewResolver(mockStorage, 1, mockTracer, mockMonitor, mockLogger)

			got, err := r.Resolve(context.Background())

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if got != tc.expectedSite {
				t.Fatalf("expected site %v, got %v", tc.expectedSite, got)
			}
		})
	}
}

func TestResolver_ResolveSeesFreshSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().
		Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).
		Times(2)

	before := &types.Site{ID: 1, ReallyDeleteUsers: false}
	after := &types.Site{ID: 1, ReallyDeleteUsers: true}
	gomock.InOrder(
		mockStorage.EXPECT().GetSiteByID(gomock.Any(), int64(1)).Return(before, nil),
		mockStorage.EXPECT().GetSiteByID(gomock.Any(), int64(1)).Return(after, nil),
	)

	r := NewResolver(mockStorage, 1, mockTracer, mockMonitor, mockLogger)

	got, err := r.Resolve(context.Background())
	if err != nil || got.ReallyDeleteUsers {
		t.Fatalf("expected soft delete policy first, got %v, err %v", got, err)
	}

	got, err = r.Resolve(context.Background())
	if err != nil || !got.ReallyDeleteUsers {
		t.Fatalf("expected hard delete policy after change, got %v, err %v", got, err)
	}
}
