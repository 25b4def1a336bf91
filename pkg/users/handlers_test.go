// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/identity-store/internal/types"
	"github.com/canonical/identity-store/pkg/userstore"
)

//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_users.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_handlers_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_handlers_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_handlers_tracing.go -source=../../internal/tracing/interfaces.go

func apiUser() *types.User {
	return &types.User{
		ID:           42,
		UserGUID:     uuid.MustParse("0195b8d1-9fd2-7cf0-8c1e-3a2f8a222222"),
		SiteID:       1,
		LoginName:    "alice",
		DisplayName:  "alice",
		Email:        "alice@example.com",
		LoweredEmail: "alice@example.com",
	}
}

func setupAPITest(t *testing.T) (*MockServiceInterface, *MockLoggerInterface, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().
		Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).
		AnyTimes()

	mux := chi.NewMux()
	NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	return mockService, mockLogger, mux
}

func TestAPI_handleCreate(t *testing.T) {
	serviceErr := errors.New("service error")

	testCases := []struct {
		name           string
		requestBody    any
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: CreateUserRequest{Email: "bob@example.com"},
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *types.User) error {
						if u.Email != "bob@example.com" {
							t.Errorf("expected email bob@example.com, got %q", u.Email)
						}
						u.UserGUID = uuid.New()
						return nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid body",
			requestBody:    "not-json",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing email fails validation",
			requestBody:    CreateUserRequest{LoginName: "bob"},
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "service error",
			requestBody: CreateUserRequest{Email: "bob@example.com"},
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(serviceErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mockLogger, mux := setupAPITest(t)
			tc.setupMocks(mockService, mockLogger)

			var body []byte
			if s, ok := tc.requestBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tc.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v0/users", bytes.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.expectedStatus {
				b, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tc.expectedStatus, res.StatusCode, string(b))
			}
		})
	}
}

func TestAPI_handleDetail(t *testing.T) {
	user := apiUser()

	testCases := []struct {
		name           string
		id             string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name: "success",
			id:   user.UserGUID.String(),
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   user.UserGUID.String(),
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "malformed id",
			id:   "not-a-guid",
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().FindByID(gomock.Any(), "not-a-guid").Return(nil, userstore.ErrMalformedUserID)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mockLogger, mux := setupAPITest(t)
			tc.setupMocks(mockService, mockLogger)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/users/"+tc.id, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, res.StatusCode)
			}

			if tc.expectedStatus == http.StatusOK {
				var envelope struct {
					Data UserResponse `json:"data"`
				}
				if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if envelope.Data.ID != user.UserGUID.String() {
					t.Errorf("expected id %s, got %s", user.UserGUID, envelope.Data.ID)
				}
				if envelope.Data.LoginName != "alice" {
					t.Errorf("expected login name alice, got %q", envelope.Data.LoginName)
				}
			}
		})
	}
}

func TestAPI_handleList(t *testing.T) {
	user := apiUser()

	testCases := []struct {
		name           string
		query          string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedCount  int
	}{
		{
			name:  "by email",
			query: "?email=alice%40example.com",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:  "by login name misses",
			query: "?login_name=nobody",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().FindByName(gomock.Any(), "nobody").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:  "by provider login",
			query: "?provider=github&key=gh-12345",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().FindByLogin(gomock.Any(), "github", "gh-12345").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:  "by claim",
			query: "?claim_type=role&claim_value=editor",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GetUsersForClaim(gomock.Any(), types.Claim{Type: "role", Value: "editor"}).
					Return([]*types.User{user}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:  "by role",
			query: "?role=Editors",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GetUsersInRole(gomock.Any(), "Editors").Return([]*types.User{user}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "missing filter",
			query:          "",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, _, mux := setupAPITest(t)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/users"+tc.query, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, res.StatusCode)
			}

			if tc.expectedStatus == http.StatusOK {
				var envelope struct {
					Data []UserResponse `json:"data"`
				}
				if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if len(envelope.Data) != tc.expectedCount {
					t.Errorf("expected %d users, got %d", tc.expectedCount, len(envelope.Data))
				}
			}
		})
	}
}

func TestAPI_handleUpdate(t *testing.T) {
	mockService, _, mux := setupAPITest(t)

	user := apiUser()
	mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
	mockService.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *types.User) error {
			if u.Email != "New@Example.com" {
				t.Errorf("expected updated email, got %q", u.Email)
			}
			if u.LoweredEmail != "new@example.com" {
				t.Errorf("expected lowered email, got %q", u.LoweredEmail)
			}
			if u.LoginName != "alice" {
				t.Errorf("expected untouched login name, got %q", u.LoginName)
			}
			return nil
		})

	body, _ := json.Marshal(UpdateUserRequest{Email: strPtr("New@Example.com")})
	req := httptest.NewRequest(http.MethodPatch, "/api/v0/users/"+user.UserGUID.String(), bytes.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Result().StatusCode)
	}
}

func strPtr(s string) *string { return &s }

func TestAPI_handleRemove(t *testing.T) {
	mockService, _, mux := setupAPITest(t)

	user := apiUser()
	mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
	mockService.EXPECT().DeleteUser(gomock.Any(), user).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/users/"+user.UserGUID.String(), nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Result().StatusCode)
	}
}

func TestAPI_claims(t *testing.T) {
	user := apiUser()
	claims := []types.Claim{{Type: "role", Value: "editor"}}

	t.Run("add", func(t *testing.T) {
		mockService, _, mux := setupAPITest(t)
		mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
		mockService.EXPECT().AddClaims(gomock.Any(), user, claims).Return(nil)

		body, _ := json.Marshal(ClaimsRequest{Claims: claims})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v0/users/%s/claims", user.UserGUID), bytes.NewReader(body))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", w.Result().StatusCode)
		}
	})

	t.Run("replace", func(t *testing.T) {
		mockService, _, mux := setupAPITest(t)
		oldClaim := types.Claim{Type: "role", Value: "editor"}
		newClaim := types.Claim{Type: "role", Value: "admin"}
		mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
		mockService.EXPECT().ReplaceClaim(gomock.Any(), user, oldClaim, newClaim).Return(nil)

		body, _ := json.Marshal(ReplaceClaimRequest{Old: oldClaim, New: newClaim})
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v0/users/%s/claims", user.UserGUID), bytes.NewReader(body))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Result().StatusCode)
		}
	})

	t.Run("list", func(t *testing.T) {
		mockService, _, mux := setupAPITest(t)
		mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
		mockService.EXPECT().GetClaims(gomock.Any(), user).Return(claims, nil)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v0/users/%s/claims", user.UserGUID), nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Result().StatusCode)
		}

		var envelope struct {
			Data []types.Claim `json:"data"`
		}
		if err := json.NewDecoder(w.Result().Body).Decode(&envelope); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(envelope.Data) != 1 || envelope.Data[0].Value != "editor" {
			t.Fatalf("unexpected claims %v", envelope.Data)
		}
	})
}

func TestAPI_logins(t *testing.T) {
	user := apiUser()

	t.Run("add", func(t *testing.T) {
		mockService, _, mux := setupAPITest(t)
		mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
		mockService.EXPECT().AddLogin(gomock.Any(), user, "github", "gh-12345").Return(nil)

		body, _ := json.Marshal(AddLoginRequest{Provider: "github", Key: "gh-12345"})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v0/users/%s/logins", user.UserGUID), bytes.NewReader(body))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", w.Result().StatusCode)
		}
	})

	t.Run("remove", func(t *testing.T) {
		mockService, _, mux := setupAPITest(t)
		mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
		mockService.EXPECT().RemoveLogin(gomock.Any(), user, "github", "gh-12345").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v0/users/%s/logins/github/gh-12345", user.UserGUID), nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Result().StatusCode)
		}
	})
}

func TestAPI_roles(t *testing.T) {
	user := apiUser()

	t.Run("add", func(t *testing.T) {
		mockService, _, mux := setupAPITest(t)
		mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
		mockService.EXPECT().AddToRole(gomock.Any(), user, "Editors").Return(nil)

		body, _ := json.Marshal(RoleRequest{Role: "Editors"})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v0/users/%s/roles", user.UserGUID), bytes.NewReader(body))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", w.Result().StatusCode)
		}
	})

	t.Run("remove", func(t *testing.T) {
		mockService, _, mux := setupAPITest(t)
		mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
		mockService.EXPECT().RemoveFromRole(gomock.Any(), user, "Editors").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v0/users/%s/roles/Editors", user.UserGUID), nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Result().StatusCode)
		}
	})
}

func TestAPI_lockout(t *testing.T) {
	user := apiUser()

	t.Run("lock", func(t *testing.T) {
		mockService, _, mux := setupAPITest(t)
		mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
		mockService.EXPECT().SetLockoutEnabled(gomock.Any(), user, true).Return(nil)

		enabled := true
		body, _ := json.Marshal(LockoutRequest{Enabled: &enabled})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v0/users/%s/lockout", user.UserGUID), bytes.NewReader(body))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Result().StatusCode)
		}
	})

	t.Run("increment failed attempts", func(t *testing.T) {
		mockService, _, mux := setupAPITest(t)
		mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
		mockService.EXPECT().IncrementAccessFailedCount(gomock.Any(), user).Return(int32(3), nil)

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v0/users/%s/failed-attempts", user.UserGUID), nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Result().StatusCode)
		}

		var envelope struct {
			Data FailedCountResponse `json:"data"`
		}
		if err := json.NewDecoder(w.Result().Body).Decode(&envelope); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if envelope.Data.Count != 3 {
			t.Fatalf("expected count 3, got %d", envelope.Data.Count)
		}
	})

	t.Run("reset failed attempts", func(t *testing.T) {
		mockService, _, mux := setupAPITest(t)
		mockService.EXPECT().FindByID(gomock.Any(), user.UserGUID.String()).Return(user, nil)
		mockService.EXPECT().ResetAccessFailedCount(gomock.Any(), user).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v0/users/%s/failed-attempts", user.UserGUID), nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Result().StatusCode)
		}
	})
}
