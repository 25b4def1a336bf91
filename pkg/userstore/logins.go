// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package userstore

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/canonical/identity-store/internal/storage"
	"github.com/canonical/identity-store/internal/types"
)

// userGUIDLength is the length of a user guid in its canonical string
// form. Login rows carry the guid as text; anything of a different
// length cannot reference a user and is treated as a lookup miss.
const userGUIDLength = 36

// AddLogin links an external provider login to the user.
func (s *Store) AddLogin(ctx context.Context, user *types.User, provider, key string) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.AddLogin")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	login := types.UserLogin{
		LoginProvider: provider,
		ProviderKey:   key,
		UserID:        user.UserGUID.String(),
	}

	return s.storage.CreateLogin(ctx, &login)
}

// FindByLogin resolves a user from an external provider login. A missing
// login, a login row whose stored user id is not a well formed guid, or
// a dangling guid all yield a nil user rather than a fault.
func (s *Store) FindByLogin(ctx context.Context, provider, key string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.FindByLogin")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	login, err := s.storage.FindLogin(ctx, provider, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if len(login.UserID) != userGUIDLength {
		return nil, nil
	}

	userGUID, err := uuid.Parse(login.UserID)
	if err != nil {
		return nil, nil
	}

	site, err := s.sites.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.GetUserByGUID(ctx, site.ID, userGUID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (s *Store) GetLogins(ctx context.Context, user *types.User) ([]*types.UserLogin, error) {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.GetLogins")
	defer span.End()

	if user == nil {
		return nil, ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.storage.GetLoginsByUser(ctx, user.UserGUID.String())
}

func (s *Store) RemoveLogin(ctx context.Context, user *types.User, provider, key string) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.RemoveLogin")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.storage.DeleteLogin(ctx, provider, key, user.UserGUID.String())
}
