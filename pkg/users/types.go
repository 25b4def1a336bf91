// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"time"

	"github.com/canonical/identity-store/internal/types"
)

type CreateUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	LoginName    string `json:"login_name" validate:"omitempty,min=1,max=50"`
	DisplayName  string `json:"display_name" validate:"omitempty,max=100"`
	PasswordHash string `json:"password_hash"`
}

// UpdateUserRequest carries partial updates; nil fields are left as they
// are on the stored record.
type UpdateUserRequest struct {
	LoginName            *string `json:"login_name" validate:"omitempty,min=1,max=50"`
	DisplayName          *string `json:"display_name" validate:"omitempty,max=100"`
	Email                *string `json:"email" validate:"omitempty,email"`
	EmailConfirmed       *bool   `json:"email_confirmed"`
	PasswordHash         *string `json:"password_hash"`
	PhoneNumber          *string `json:"phone_number"`
	PhoneNumberConfirmed *bool   `json:"phone_number_confirmed"`
	TwoFactorEnabled     *bool   `json:"two_factor_enabled"`
}

type ClaimsRequest struct {
	Claims []types.Claim `json:"claims" validate:"required,min=1,dive"`
}

type ReplaceClaimRequest struct {
	Old types.Claim `json:"old" validate:"required"`
	New types.Claim `json:"new" validate:"required"`
}

type AddLoginRequest struct {
	Provider string `json:"provider" validate:"required"`
	Key      string `json:"key" validate:"required"`
}

type RoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type LockoutRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type UserResponse struct {
	ID                         string     `json:"id"`
	LoginName                  string     `json:"login_name"`
	DisplayName                string     `json:"display_name"`
	Email                      string     `json:"email"`
	EmailConfirmed             bool       `json:"email_confirmed"`
	PhoneNumber                string     `json:"phone_number,omitempty"`
	PhoneNumberConfirmed       bool       `json:"phone_number_confirmed"`
	TwoFactorEnabled           bool       `json:"two_factor_enabled"`
	IsLockedOut                bool       `json:"is_locked_out"`
	FailedPasswordAttemptCount int32      `json:"failed_password_attempt_count"`
	LockoutEnd                 *time.Time `json:"lockout_end,omitempty"`
	IsDeleted                  bool       `json:"is_deleted"`
	CreatedAt                  time.Time  `json:"created_at"`
}

type LoginResponse struct {
	Provider string `json:"provider"`
	Key      string `json:"key"`
}

type FailedCountResponse struct {
	Count int32 `json:"count"`
}

func newUserResponse(u *types.User) *UserResponse {
	return &UserResponse{
		ID:                         u.UserGUID.String(),
		LoginName:                  u.LoginName,
		DisplayName:                u.DisplayName,
		Email:                      u.Email,
		EmailConfirmed:             u.EmailConfirmed,
		PhoneNumber:                u.PhoneNumber,
		PhoneNumberConfirmed:       u.PhoneNumberConfirmed,
		TwoFactorEnabled:           u.TwoFactorEnabled,
		IsLockedOut:                u.IsLockedOut,
		FailedPasswordAttemptCount: u.FailedPasswordAttemptCount,
		LockoutEnd:                 u.LockoutEndUTC,
		IsDeleted:                  u.IsDeleted,
		CreatedAt:                  u.CreatedAt,
	}
}

func newUserListResponse(us []*types.User) []*UserResponse {
	out := make([]*UserResponse, len(us))
	for i, u := range us {
		out[i] = newUserResponse(u)
	}
	return out
}
