// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/canonical/identity-store/internal/types"
)

// ServiceInterface is the slice of the user store the HTTP surface
// consumes. Field setters with in-memory semantics are absent on
// purpose, the API updates whole records.
type ServiceInterface interface {
	CreateUser(ctx context.Context, user *types.User) error
	UpdateUser(ctx context.Context, user *types.User) error
	DeleteUser(ctx context.Context, user *types.User) error
	FindByID(ctx context.Context, id string) (*types.User, error)
	FindByName(ctx context.Context, loginName string) (*types.User, error)
	FindByEmail(ctx context.Context, email string) (*types.User, error)
	FindByLogin(ctx context.Context, provider, key string) (*types.User, error)

	AddClaims(ctx context.Context, user *types.User, claims []types.Claim) error
	RemoveClaims(ctx context.Context, user *types.User, claims []types.Claim) error
	ReplaceClaim(ctx context.Context, user *types.User, oldClaim, newClaim types.Claim) error
	GetClaims(ctx context.Context, user *types.User) ([]types.Claim, error)
	GetUsersForClaim(ctx context.Context, claim types.Claim) ([]*types.User, error)

	AddLogin(ctx context.Context, user *types.User, provider, key string) error
	GetLogins(ctx context.Context, user *types.User) ([]*types.UserLogin, error)
	RemoveLogin(ctx context.Context, user *types.User, provider, key string) error

	AddToRole(ctx context.Context, user *types.User, roleName string) error
	RemoveFromRole(ctx context.Context, user *types.User, roleName string) error
	GetRoles(ctx context.Context, user *types.User) ([]string, error)
	GetUsersInRole(ctx context.Context, roleName string) ([]*types.User, error)

	SetLockoutEnabled(ctx context.Context, user *types.User, enabled bool) error
	IncrementAccessFailedCount(ctx context.Context, user *types.User) (int32, error)
	ResetAccessFailedCount(ctx context.Context, user *types.User) error
}
