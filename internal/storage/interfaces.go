// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/canonical/identity-store/internal/types"
)

// UserStorageInterface is the persistence contract the identity store is
// built on. The general SaveUser deliberately does not persist lockout
// bookkeeping (failed attempt counter, locked-out flag, lockout end);
// those fields have dedicated operations.
type UserStorageInterface interface {
	SaveUser(ctx context.Context, user *types.User) error
	DeleteUser(ctx context.Context, userID int64) error
	FlagUserAsDeleted(ctx context.Context, userID int64) error
	GetUserByGUID(ctx context.Context, siteID int64, userGUID uuid.UUID) (*types.User, error)
	GetUserByEmail(ctx context.Context, siteID int64, email string) (*types.User, error)
	GetUserByLoginName(ctx context.Context, siteID int64, loginName string, normalized bool) (*types.User, error)
	LoginNameExists(ctx context.Context, siteID int64, loginName string) (bool, error)
	AddUserToDefaultRoles(ctx context.Context, user *types.User) error

	UpdateFailedPasswordAttemptCount(ctx context.Context, userGUID uuid.UUID, count int32) error
	LockAccount(ctx context.Context, userGUID uuid.UUID) error
	UnlockAccount(ctx context.Context, userGUID uuid.UUID) error

	SaveClaim(ctx context.Context, claim *types.UserClaim) error
	DeleteClaimByUser(ctx context.Context, userGUID uuid.UUID, claimType string) error
	DeleteClaimsByUser(ctx context.Context, userGUID uuid.UUID) error
	GetClaimsByUser(ctx context.Context, userGUID uuid.UUID) ([]*types.UserClaim, error)
	GetUsersForClaim(ctx context.Context, siteID int64, claimType, claimValue string) ([]*types.User, error)

	CreateLogin(ctx context.Context, login *types.UserLogin) error
	FindLogin(ctx context.Context, provider, key string) (*types.UserLogin, error)
	GetLoginsByUser(ctx context.Context, userID string) ([]*types.UserLogin, error)
	DeleteLogin(ctx context.Context, provider, key, userID string) error
	DeleteLoginsByUser(ctx context.Context, userID string) error

	GetRoleByName(ctx context.Context, siteID int64, roleName string) (*types.Role, error)
	AddUserToRole(ctx context.Context, roleID int64, roleGUID uuid.UUID, userID int64, userGUID uuid.UUID) error
	RemoveUserFromRole(ctx context.Context, roleID, userID int64) error
	DeleteUserRoles(ctx context.Context, userID int64) error
	GetUserRoleNames(ctx context.Context, siteID, userID int64) ([]string, error)
	GetUsersInRole(ctx context.Context, siteID int64, roleName string) ([]*types.User, error)
}

type SiteStorageInterface interface {
	GetSiteByID(ctx context.Context, id int64) (*types.Site, error)
	GetSiteByHost(ctx context.Context, host string) (*types.Site, error)
}
