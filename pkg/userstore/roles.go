// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package userstore

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/identity-store/internal/storage"
	"github.com/canonical/identity-store/internal/types"
)

// AddToRole enrolls the user in a site role. A role name that does not
// exist on the site is ignored, as is a membership that is already
// present; neither is a fault.
func (s *Store) AddToRole(ctx context.Context, user *types.User, roleName string) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.AddToRole")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	site, err := s.sites.Resolve(ctx)
	if err != nil {
		return err
	}

	role, err := s.storage.GetRoleByName(ctx, site.ID, roleName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Debugf("role %q not found on site %d, skipping enrollment", roleName, site.ID)
			return nil
		}
		return err
	}

	if err := s.storage.AddUserToRole(ctx, role.ID, role.RoleGUID, user.ID, user.UserGUID); err != nil {
		if storage.IsDuplicateKeyError(err) {
			return nil
		}
		return err
	}

	return nil
}

// RemoveFromRole drops the user's membership in a site role. An unknown
// role name is ignored.
func (s *Store) RemoveFromRole(ctx context.Context, user *types.User, roleName string) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.RemoveFromRole")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	site, err := s.sites.Resolve(ctx)
	if err != nil {
		return err
	}

	role, err := s.storage.GetRoleByName(ctx, site.ID, roleName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Debugf("role %q not found on site %d, skipping removal", roleName, site.ID)
			return nil
		}
		return err
	}

	return s.storage.RemoveUserFromRole(ctx, role.ID, user.ID)
}

func (s *Store) GetRoles(ctx context.Context, user *types.User) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.GetRoles")
	defer span.End()

	if user == nil {
		return nil, ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	site, err := s.sites.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	return s.storage.GetUserRoleNames(ctx, site.ID, user.ID)
}

// IsInRole reports membership by case-insensitive role name comparison.
func (s *Store) IsInRole(ctx context.Context, user *types.User, roleName string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.IsInRole")
	defer span.End()

	roles, err := s.GetRoles(ctx, user)
	if err != nil {
		return false, err
	}

	for _, r := range roles {
		if strings.EqualFold(r, roleName) {
			return true, nil
		}
	}

	return false, nil
}

func (s *Store) GetUsersInRole(ctx context.Context, roleName string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.GetUsersInRole")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	site, err := s.sites.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	return s.storage.GetUsersInRole(ctx, site.ID, roleName)
}
