// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	httpTypes "github.com/canonical/identity-store/internal/http/types"
	"github.com/canonical/identity-store/internal/logging"
	"github.com/canonical/identity-store/internal/monitoring"
	"github.com/canonical/identity-store/internal/tracing"
	"github.com/canonical/identity-store/internal/types"
	"github.com/canonical/identity-store/pkg/userstore"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/users", a.handleCreate)
	mux.Get("/api/v0/users", a.handleList)
	mux.Get("/api/v0/users/{id}", a.handleDetail)
	mux.Patch("/api/v0/users/{id}", a.handleUpdate)
	mux.Delete("/api/v0/users/{id}", a.handleRemove)

	mux.Get("/api/v0/users/{id}/claims", a.handleListClaims)
	mux.Post("/api/v0/users/{id}/claims", a.handleAddClaims)
	mux.Put("/api/v0/users/{id}/claims", a.handleReplaceClaim)
	mux.Delete("/api/v0/users/{id}/claims", a.handleRemoveClaims)

	mux.Get("/api/v0/users/{id}/logins", a.handleListLogins)
	mux.Post("/api/v0/users/{id}/logins", a.handleAddLogin)
	mux.Delete("/api/v0/users/{id}/logins/{provider}/{key}", a.handleRemoveLogin)

	mux.Get("/api/v0/users/{id}/roles", a.handleListRoles)
	mux.Post("/api/v0/users/{id}/roles", a.handleAddToRole)
	mux.Delete("/api/v0/users/{id}/roles/{role}", a.handleRemoveFromRole)

	mux.Post("/api/v0/users/{id}/lockout", a.handleSetLockout)
	mux.Post("/api/v0/users/{id}/failed-attempts", a.handleIncrementFailedCount)
	mux.Delete("/api/v0/users/{id}/failed-attempts", a.handleResetFailedCount)
}

// userFromPath loads the user addressed by the {id} path parameter. On
// failure the response is already written and the second return is false.
func (a *API) userFromPath(w http.ResponseWriter, r *http.Request) (*types.User, bool) {
	id := chi.URLParam(r, "id")

	user, err := a.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, userstore.ErrMalformedUserID) {
			_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		a.logger.Errorf("failed to load user %s: %v", id, err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if user == nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusNotFound, "user not found")
		return nil, false
	}

	return user, true
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleCreate")
	defer span.End()

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user := types.User{
		Email:        req.Email,
		LoginName:    req.LoginName,
		DisplayName:  req.DisplayName,
		PasswordHash: req.PasswordHash,
	}

	if err := a.service.CreateUser(ctx, &user); err != nil {
		a.logger.Errorf("failed to create user: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusCreated, newUserResponse(&user), "")
}

// handleList dispatches on the filter query parameters; exactly one
// filter family is honored per request.
func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleList")
	defer span.End()

	q := r.URL.Query()

	switch {
	case q.Get("email") != "":
		a.writeSingleUserList(w, func() (*types.User, error) {
			return a.service.FindByEmail(ctx, q.Get("email"))
		})
	case q.Get("login_name") != "":
		a.writeSingleUserList(w, func() (*types.User, error) {
			return a.service.FindByName(ctx, q.Get("login_name"))
		})
	case q.Get("provider") != "" && q.Get("key") != "":
		a.writeSingleUserList(w, func() (*types.User, error) {
			return a.service.FindByLogin(ctx, q.Get("provider"), q.Get("key"))
		})
	case q.Get("claim_type") != "":
		users, err := a.service.GetUsersForClaim(ctx, types.Claim{
			Type:  q.Get("claim_type"),
			Value: q.Get("claim_value"),
		})
		if err != nil {
			a.logger.Errorf("failed to list users for claim: %v", err)
			_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		_ = httpTypes.WriteResponse(w, http.StatusOK, newUserListResponse(users), "")
	case q.Get("role") != "":
		users, err := a.service.GetUsersInRole(ctx, q.Get("role"))
		if err != nil {
			a.logger.Errorf("failed to list users in role: %v", err)
			_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		_ = httpTypes.WriteResponse(w, http.StatusOK, newUserListResponse(users), "")
	default:
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "a filter is required: email, login_name, provider+key, claim_type or role")
	}
}

// writeSingleUserList renders a point lookup as a zero or one element
// list, keeping the list endpoint's response shape uniform.
func (a *API) writeSingleUserList(w http.ResponseWriter, find func() (*types.User, error)) {
	user, err := find()
	if err != nil {
		a.logger.Errorf("failed to find user: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	users := []*types.User{}
	if user != nil {
		users = append(users, user)
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, newUserListResponse(users), "")
}

func (a *API) handleDetail(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "users.API.handleDetail")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, newUserResponse(user), "")
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleUpdate")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.LoginName != nil {
		user.LoginName = *req.LoginName
	}
	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		user.Email = *req.Email
		user.LoweredEmail = strings.ToLower(*req.Email)
	}
	if req.EmailConfirmed != nil {
		user.EmailConfirmed = *req.EmailConfirmed
	}
	if req.PasswordHash != nil {
		user.PasswordHash = *req.PasswordHash
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.PhoneNumberConfirmed != nil {
		user.PhoneNumberConfirmed = *req.PhoneNumberConfirmed
	}
	if req.TwoFactorEnabled != nil {
		user.TwoFactorEnabled = *req.TwoFactorEnabled
	}

	if err := a.service.UpdateUser(ctx, user); err != nil {
		a.logger.Errorf("failed to update user: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, newUserResponse(user), "")
}

func (a *API) handleRemove(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleRemove")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteUser(ctx, user); err != nil {
		a.logger.Errorf("failed to delete user: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, nil, "user deleted")
}

func (a *API) handleListClaims(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleListClaims")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	claims, err := a.service.GetClaims(ctx, user)
	if err != nil {
		a.logger.Errorf("failed to list claims: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, claims, "")
}

func (a *API) handleAddClaims(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleAddClaims")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	var req ClaimsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.AddClaims(ctx, user, req.Claims); err != nil {
		a.logger.Errorf("failed to add claims: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusCreated, req.Claims, "")
}

func (a *API) handleReplaceClaim(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleReplaceClaim")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	var req ReplaceClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.service.ReplaceClaim(ctx, user, req.Old, req.New); err != nil {
		a.logger.Errorf("failed to replace claim: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, req.New, "")
}

func (a *API) handleRemoveClaims(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleRemoveClaims")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	var req ClaimsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.RemoveClaims(ctx, user, req.Claims); err != nil {
		a.logger.Errorf("failed to remove claims: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, nil, "claims removed")
}

func (a *API) handleListLogins(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleListLogins")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	logins, err := a.service.GetLogins(ctx, user)
	if err != nil {
		a.logger.Errorf("failed to list logins: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]*LoginResponse, len(logins))
	for i, l := range logins {
		out[i] = &LoginResponse{Provider: l.LoginProvider, Key: l.ProviderKey}
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, out, "")
}

func (a *API) handleAddLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleAddLogin")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	var req AddLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.AddLogin(ctx, user, req.Provider, req.Key); err != nil {
		a.logger.Errorf("failed to add login: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusCreated, &LoginResponse{Provider: req.Provider, Key: req.Key}, "")
}

func (a *API) handleRemoveLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleRemoveLogin")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	provider := chi.URLParam(r, "provider")
	key := chi.URLParam(r, "key")

	if err := a.service.RemoveLogin(ctx, user, provider, key); err != nil {
		a.logger.Errorf("failed to remove login: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, nil, "login removed")
}

func (a *API) handleListRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleListRoles")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	roles, err := a.service.GetRoles(ctx, user)
	if err != nil {
		a.logger.Errorf("failed to list roles: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, roles, "")
}

func (a *API) handleAddToRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleAddToRole")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	var req RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.AddToRole(ctx, user, req.Role); err != nil {
		a.logger.Errorf("failed to add user to role: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusCreated, nil, "user added to role")
}

func (a *API) handleRemoveFromRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleRemoveFromRole")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	if err := a.service.RemoveFromRole(ctx, user, chi.URLParam(r, "role")); err != nil {
		a.logger.Errorf("failed to remove user from role: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, nil, "user removed from role")
}

func (a *API) handleSetLockout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleSetLockout")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	var req LockoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		_ = httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.SetLockoutEnabled(ctx, user, *req.Enabled); err != nil {
		a.logger.Errorf("failed to change lockout state: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, newUserResponse(user), "")
}

func (a *API) handleIncrementFailedCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleIncrementFailedCount")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	count, err := a.service.IncrementAccessFailedCount(ctx, user)
	if err != nil {
		a.logger.Errorf("failed to increment failed attempt count: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, &FailedCountResponse{Count: count}, "")
}

func (a *API) handleResetFailedCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleResetFailedCount")
	defer span.End()

	user, ok := a.userFromPath(w, r)
	if !ok {
		return
	}

	if err := a.service.ResetAccessFailedCount(ctx, user); err != nil {
		a.logger.Errorf("failed to reset failed attempt count: %v", err)
		_ = httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = httpTypes.WriteResponse(w, http.StatusOK, &FailedCountResponse{Count: 0}, "")
}
