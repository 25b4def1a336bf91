// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package userstore

import (
	"context"
	"strings"
	"time"

	"github.com/canonical/identity-store/internal/types"
)

// The setters below implement the store's persistence matrix. Identity
// key changes (login name, email, email confirmation) are saved
// immediately; password hash, two-factor flag, phone fields and the
// lockout end date only mutate the in-memory record and rely on a later
// save; the lockout flag and the failed attempt counter use dedicated
// storage operations because the general save does not write those
// columns. Callers depend on this timing, do not change it per field.

// SetUserName changes the login name and saves, a login name change must
// be durable immediately.
func (s *Store) SetUserName(ctx context.Context, user *types.User, loginName string) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.SetUserName")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := s.bindSite(ctx, user); err != nil {
		return err
	}

	user.LoginName = loginName

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.storage.SaveUser(ctx, user)
}

// SetNormalizedUserName behaves like SetUserName; the normalized form is
// not stored separately, lookups normalize on the fly.
func (s *Store) SetNormalizedUserName(ctx context.Context, user *types.User, loginName string) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.SetNormalizedUserName")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := s.bindSite(ctx, user); err != nil {
		return err
	}

	user.LoginName = loginName

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.storage.SaveUser(ctx, user)
}

// SetEmail changes the email and its lowered form and saves.
func (s *Store) SetEmail(ctx context.Context, user *types.User, email string) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.SetEmail")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := s.bindSite(ctx, user); err != nil {
		return err
	}

	user.Email = email
	user.LoweredEmail = strings.ToLower(email)

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.storage.SaveUser(ctx, user)
}

// SetNormalizedEmail changes only the lowered email and saves.
func (s *Store) SetNormalizedEmail(ctx context.Context, user *types.User, email string) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.SetNormalizedEmail")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := s.bindSite(ctx, user); err != nil {
		return err
	}

	user.LoweredEmail = strings.ToLower(email)

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.storage.SaveUser(ctx, user)
}

func (s *Store) SetEmailConfirmed(ctx context.Context, user *types.User, confirmed bool) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.SetEmailConfirmed")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := s.bindSite(ctx, user); err != nil {
		return err
	}

	user.EmailConfirmed = confirmed

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.storage.SaveUser(ctx, user)
}

// SetPasswordHash mutates the in-memory record only. The framework calls
// this before CreateUser, whose save persists the hash.
func (s *Store) SetPasswordHash(ctx context.Context, user *types.User, passwordHash string) error {
	_, span := s.tracer.Start(ctx, "userstore.Store.SetPasswordHash")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	user.PasswordHash = passwordHash

	return nil
}

// SetTwoFactorEnabled mutates the in-memory record only.
func (s *Store) SetTwoFactorEnabled(ctx context.Context, user *types.User, enabled bool) error {
	_, span := s.tracer.Start(ctx, "userstore.Store.SetTwoFactorEnabled")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	user.TwoFactorEnabled = enabled

	return nil
}

// SetPhoneNumber mutates the in-memory record only.
func (s *Store) SetPhoneNumber(ctx context.Context, user *types.User, phoneNumber string) error {
	_, span := s.tracer.Start(ctx, "userstore.Store.SetPhoneNumber")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	user.PhoneNumber = phoneNumber

	return nil
}

// SetPhoneNumberConfirmed mutates the in-memory record only.
func (s *Store) SetPhoneNumberConfirmed(ctx context.Context, user *types.User, confirmed bool) error {
	_, span := s.tracer.Start(ctx, "userstore.Store.SetPhoneNumberConfirmed")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	user.PhoneNumberConfirmed = confirmed

	return nil
}

// SetLockoutEndDate mutates the in-memory record only; the general save
// does not write this column and no dedicated operation exists for it,
// so the value lives for the request unless a later save includes it.
func (s *Store) SetLockoutEndDate(ctx context.Context, user *types.User, end *time.Time) error {
	_, span := s.tracer.Start(ctx, "userstore.Store.SetLockoutEndDate")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	user.LockoutEndUTC = end

	return nil
}

// SetLockoutEnabled goes through the dedicated lock/unlock storage
// operations, the general save does not persist the lockout flag.
func (s *Store) SetLockoutEnabled(ctx context.Context, user *types.User, enabled bool) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.SetLockoutEnabled")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if enabled {
		if err := s.storage.LockAccount(ctx, user.UserGUID); err != nil {
			return err
		}
		user.IsLockedOut = true
		s.logger.Security().AccountLocked(user.UserGUID.String())
		return nil
	}

	if err := s.storage.UnlockAccount(ctx, user.UserGUID); err != nil {
		return err
	}
	user.IsLockedOut = false
	user.FailedPasswordAttemptCount = 0
	s.logger.Security().AccountUnlocked(user.UserGUID.String())

	return nil
}

// IncrementAccessFailedCount bumps the counter and persists it through
// the dedicated counter operation, returning the new value.
func (s *Store) IncrementAccessFailedCount(ctx context.Context, user *types.User) (int32, error) {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.IncrementAccessFailedCount")
	defer span.End()

	if user == nil {
		return 0, ErrNilUser
	}

	user.FailedPasswordAttemptCount++

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := s.storage.UpdateFailedPasswordAttemptCount(ctx, user.UserGUID, user.FailedPasswordAttemptCount); err != nil {
		return 0, err
	}

	return user.FailedPasswordAttemptCount, nil
}

func (s *Store) ResetAccessFailedCount(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.ResetAccessFailedCount")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}

	user.FailedPasswordAttemptCount = 0

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.storage.UpdateFailedPasswordAttemptCount(ctx, user.UserGUID, 0)
}
