// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package userstore

import (
	"context"

	"github.com/canonical/identity-store/internal/types"
)

// AddClaims attaches claims to the user one at a time. Claims are not
// deduplicated, adding the same claim twice yields two rows.
func (s *Store) AddClaims(ctx context.Context, user *types.User, claims []types.Claim) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.AddClaims")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}

	for _, claim := range claims {
		if err := ctx.Err(); err != nil {
			return err
		}

		c := types.UserClaim{
			UserGUID:   user.UserGUID,
			ClaimType:  claim.Type,
			ClaimValue: claim.Value,
		}
		if err := s.storage.SaveClaim(ctx, &c); err != nil {
			return err
		}
	}

	return nil
}

// RemoveClaims removes the user's claims by type. Every claim of a
// listed type goes, regardless of value.
func (s *Store) RemoveClaims(ctx context.Context, user *types.User, claims []types.Claim) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.RemoveClaims")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}

	for _, claim := range claims {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.storage.DeleteClaimByUser(ctx, user.UserGUID, claim.Type); err != nil {
			return err
		}
	}

	return nil
}

// ReplaceClaim removes every claim of the old claim's type and writes
// the new claim in its place. It is remove-then-add, not an update, so
// sibling claims sharing the old type are removed as well.
func (s *Store) ReplaceClaim(ctx context.Context, user *types.User, oldClaim, newClaim types.Claim) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.ReplaceClaim")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.storage.DeleteClaimByUser(ctx, user.UserGUID, oldClaim.Type); err != nil {
		return err
	}

	c := types.UserClaim{
		UserGUID:   user.UserGUID,
		ClaimType:  newClaim.Type,
		ClaimValue: newClaim.Value,
	}

	return s.storage.SaveClaim(ctx, &c)
}

func (s *Store) GetClaims(ctx context.Context, user *types.User) ([]types.Claim, error) {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.GetClaims")
	defer span.End()

	if user == nil {
		return nil, ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	userClaims, err := s.storage.GetClaimsByUser(ctx, user.UserGUID)
	if err != nil {
		return nil, err
	}

	claims := make([]types.Claim, 0, len(userClaims))
	for _, c := range userClaims {
		claims = append(claims, types.Claim{Type: c.ClaimType, Value: c.ClaimValue})
	}

	return claims, nil
}

// GetUsersForClaim lists the current site's users holding the claim,
// matched on both type and value.
func (s *Store) GetUsersForClaim(ctx context.Context, claim types.Claim) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.GetUsersForClaim")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	site, err := s.sites.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	return s.storage.GetUsersForClaim(ctx, site.ID, claim.Type, claim.Value)
}
