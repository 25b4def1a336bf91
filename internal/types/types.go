// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"

	"github.com/google/uuid"
)

// Site is an isolated namespace of users, roles and claims. Policy flags
// are resolved once per store operation and treated as immutable for its
// duration.
type Site struct {
	ID       int64     `db:"id"`
	SiteGUID uuid.UUID `db:"site_guid"`
	Host     string    `db:"host"`
	Name     string    `db:"name"`
	// ReallyDeleteUsers selects hard delete over the soft-delete flag.
	ReallyDeleteUsers bool      `db:"really_delete_users"`
	CreatedAt         time.Time `db:"created_at"`
}

// User is a site-scoped account record. SiteID and SiteGUID are stored
// denormalized on the user; the zero values mark an unbound user that
// inherits the resolved site at save time.
type User struct {
	ID           int64     `db:"id"`
	UserGUID     uuid.UUID `db:"user_guid"`
	SiteID       int64     `db:"site_id"`
	SiteGUID     uuid.UUID `db:"site_guid"`
	LoginName    string    `db:"login_name"`
	DisplayName  string    `db:"display_name"`
	Email        string    `db:"email"`
	LoweredEmail string    `db:"lowered_email"`

	EmailConfirmed       bool   `db:"email_confirmed"`
	PasswordHash         string `db:"password_hash"`
	PhoneNumber          string `db:"phone_number"`
	PhoneNumberConfirmed bool   `db:"phone_number_confirmed"`
	TwoFactorEnabled     bool   `db:"two_factor_enabled"`

	FailedPasswordAttemptCount int32      `db:"failed_password_attempt_count"`
	IsLockedOut                bool       `db:"is_locked_out"`
	LockoutEndUTC              *time.Time `db:"lockout_end_utc"`

	IsDeleted bool      `db:"is_deleted"`
	CreatedAt time.Time `db:"created_at"`
}

type Role struct {
	ID       int64     `db:"id"`
	RoleGUID uuid.UUID `db:"role_guid"`
	SiteID   int64     `db:"site_id"`
	RoleName string    `db:"role_name"`
	// IsDefault roles are granted to every newly created user on the site.
	IsDefault bool      `db:"is_default"`
	CreatedAt time.Time `db:"created_at"`
}

// Claim is a typed attribute asserted about a user. A user may hold
// several claims of the same type.
type Claim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type UserClaim struct {
	ID         int64     `db:"id"`
	UserGUID   uuid.UUID `db:"user_guid"`
	ClaimType  string    `db:"claim_type"`
	ClaimValue string    `db:"claim_value"`
}

// UserLogin links a user to an external identity provider credential.
// UserID holds the owning user's guid in its 36-character string form;
// consumers must validate it before resolving the user.
type UserLogin struct {
	LoginProvider string `db:"login_provider"`
	ProviderKey   string `db:"provider_key"`
	UserID        string `db:"user_id"`
}
