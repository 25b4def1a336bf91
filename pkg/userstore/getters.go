// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package userstore

import (
	"context"
	"time"

	"github.com/canonical/identity-store/internal/types"
)

// Pure accessors over the in-memory record, provided for symmetry with
// the setters. None of them touch storage.

func (s *Store) GetUserID(_ context.Context, user *types.User) (string, error) {
	if user == nil {
		return "", ErrNilUser
	}
	return user.UserGUID.String(), nil
}

func (s *Store) GetUserName(_ context.Context, user *types.User) (string, error) {
	if user == nil {
		return "", ErrNilUser
	}
	return user.LoginName, nil
}

func (s *Store) GetEmail(_ context.Context, user *types.User) (string, error) {
	if user == nil {
		return "", ErrNilUser
	}
	return user.Email, nil
}

func (s *Store) GetNormalizedEmail(_ context.Context, user *types.User) (string, error) {
	if user == nil {
		return "", ErrNilUser
	}
	return user.LoweredEmail, nil
}

func (s *Store) GetEmailConfirmed(_ context.Context, user *types.User) (bool, error) {
	if user == nil {
		return false, ErrNilUser
	}
	return user.EmailConfirmed, nil
}

func (s *Store) GetPasswordHash(_ context.Context, user *types.User) (string, error) {
	if user == nil {
		return "", ErrNilUser
	}
	return user.PasswordHash, nil
}

func (s *Store) HasPassword(_ context.Context, user *types.User) (bool, error) {
	if user == nil {
		return false, ErrNilUser
	}
	return user.PasswordHash != "", nil
}

func (s *Store) GetPhoneNumber(_ context.Context, user *types.User) (string, error) {
	if user == nil {
		return "", ErrNilUser
	}
	return user.PhoneNumber, nil
}

func (s *Store) GetPhoneNumberConfirmed(_ context.Context, user *types.User) (bool, error) {
	if user == nil {
		return false, ErrNilUser
	}
	return user.PhoneNumberConfirmed, nil
}

func (s *Store) GetTwoFactorEnabled(_ context.Context, user *types.User) (bool, error) {
	if user == nil {
		return false, ErrNilUser
	}
	return user.TwoFactorEnabled, nil
}

func (s *Store) GetLockoutEnabled(_ context.Context, user *types.User) (bool, error) {
	if user == nil {
		return false, ErrNilUser
	}
	return user.IsLockedOut, nil
}

func (s *Store) GetLockoutEndDate(_ context.Context, user *types.User) (*time.Time, error) {
	if user == nil {
		return nil, ErrNilUser
	}
	return user.LockoutEndUTC, nil
}

func (s *Store) GetAccessFailedCount(_ context.Context, user *types.User) (int32, error) {
	if user == nil {
		return 0, ErrNilUser
	}
	return user.FailedPasswordAttemptCount, nil
}
