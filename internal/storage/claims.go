// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/identity-store/internal/types"
)

func (s *Storage) SaveClaim(ctx context.Context, claim *types.UserClaim) error {
	ctx, span := s.tracer.Start(ctx, "storage.SaveClaim")
	defer span.End()

	err := s.db.Statement(ctx).
		Insert("user_claims").
		Columns("user_guid", "claim_type", "claim_value").
		Values(claim.UserGUID, claim.ClaimType, claim.ClaimValue).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&claim.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to save claim: %w", err)
	}

	return nil
}

// DeleteClaimByUser removes every claim of the given type held by the
// user, however many instances there are.
func (s *Storage) DeleteClaimByUser(ctx context.Context, userGUID uuid.UUID, claimType string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteClaimByUser")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("user_claims").
		Where(sq.Eq{"user_guid": userGUID, "claim_type": claimType}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete claims: %w", err)
	}
	return nil
}

func (s *Storage) DeleteClaimsByUser(ctx context.Context, userGUID uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteClaimsByUser")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("user_claims").
		Where(sq.Eq{"user_guid": userGUID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete user claims: %w", err)
	}
	return nil
}

func (s *Storage) GetClaimsByUser(ctx context.Context, userGUID uuid.UUID) ([]*types.UserClaim, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetClaimsByUser")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "user_guid", "claim_type", "claim_value").
		From("user_claims").
		Where(sq.Eq{"user_guid": userGUID}).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	defer rows.Close()

	var claims []*types.UserClaim
	for rows.Next() {
		var c types.UserClaim
		if err := rows.Scan(&c.ID, &c.UserGUID, &c.ClaimType, &c.ClaimValue); err != nil {
			return nil, fmt.Errorf("failed to scan claim: %w", err)
		}
		claims = append(claims, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return claims, nil
}

func (s *Storage) GetUsersForClaim(ctx context.Context, siteID int64, claimType, claimValue string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUsersForClaim")
	defer span.End()

	cols := make([]string, 0, len(userColumns))
	for _, c := range userColumns {
		cols = append(cols, "u."+c)
	}

	rows, err := s.db.Statement(ctx).
		Select(cols...).
		From("users u").
		Join("user_claims c ON c.user_guid = u.user_guid").
		Where(sq.Eq{
			"u.site_id":     siteID,
			"c.claim_type":  claimType,
			"c.claim_value": claimValue,
		}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users for claim: %w", err)
	}

	return s.scanUserRows(rows)
}
