// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package userstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/identity-store/internal/types"
)

// ServiceInterface is the capability set an authentication framework
// expects from a user store: account lifecycle, field setters with their
// documented persistence behaviour, and claim/login/role management.
type ServiceInterface interface {
	CreateUser(ctx context.Context, user *types.User) error
	UpdateUser(ctx context.Context, user *types.User) error
	DeleteUser(ctx context.Context, user *types.User) error
	FindByID(ctx context.Context, id string) (*types.User, error)
	FindByName(ctx context.Context, loginName string) (*types.User, error)
	FindByEmail(ctx context.Context, email string) (*types.User, error)
	SuggestLoginName(ctx context.Context, siteID int64, email string) (string, error)

	SetUserName(ctx context.Context, user *types.User, loginName string) error
	SetNormalizedUserName(ctx context.Context, user *types.User, loginName string) error
	SetEmail(ctx context.Context, user *types.User, email string) error
	SetNormalizedEmail(ctx context.Context, user *types.User, email string) error
	SetEmailConfirmed(ctx context.Context, user *types.User, confirmed bool) error
	SetPasswordHash(ctx context.Context, user *types.User, passwordHash string) error
	SetTwoFactorEnabled(ctx context.Context, user *types.User, enabled bool) error
	SetPhoneNumber(ctx context.Context, user *types.User, phoneNumber string) error
	SetPhoneNumberConfirmed(ctx context.Context, user *types.User, confirmed bool) error
	SetLockoutEndDate(ctx context.Context, user *types.User, end *time.Time) error
	SetLockoutEnabled(ctx context.Context, user *types.User, enabled bool) error
	IncrementAccessFailedCount(ctx context.Context, user *types.User) (int32, error)
	ResetAccessFailedCount(ctx context.Context, user *types.User) error

	AddClaims(ctx context.Context, user *types.User, claims []types.Claim) error
	RemoveClaims(ctx context.Context, user *types.User, claims []types.Claim) error
	ReplaceClaim(ctx context.Context, user *types.User, oldClaim, newClaim types.Claim) error
	GetClaims(ctx context.Context, user *types.User) ([]types.Claim, error)
	GetUsersForClaim(ctx context.Context, claim types.Claim) ([]*types.User, error)

	AddLogin(ctx context.Context, user *types.User, provider, key string) error
	FindByLogin(ctx context.Context, provider, key string) (*types.User, error)
	GetLogins(ctx context.Context, user *types.User) ([]*types.UserLogin, error)
	RemoveLogin(ctx context.Context, user *types.User, provider, key string) error

	AddToRole(ctx context.Context, user *types.User, roleName string) error
	RemoveFromRole(ctx context.Context, user *types.User, roleName string) error
	GetRoles(ctx context.Context, user *types.User) ([]string, error)
	IsInRole(ctx context.Context, user *types.User, roleName string) (bool, error)
	GetUsersInRole(ctx context.Context, roleName string) ([]*types.User, error)
}

type StorageInterface interface {
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

// SiteResolverInterface supplies the active site's settings for the
// current operation.
type SiteResolverInterface interface {
	Resolve(ctx context.Context) (*types.Site, error)
}
