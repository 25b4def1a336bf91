// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/identity-store/internal/types"
)

func (s *Storage) GetRoleByName(ctx context.Context, siteID int64, roleName string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRoleByName")
	defer span.End()

	var r types.Role
	err := s.db.Statement(ctx).
		Select("id", "role_guid", "site_id", "role_name", "is_default", "created_at").
		From("roles").
		Where(sq.Eq{"site_id": siteID, "role_name": roleName}).
		QueryRowContext(ctx).
		Scan(&r.ID, &r.RoleGUID, &r.SiteID, &r.RoleName, &r.IsDefault, &r.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return &r, nil
}

func (s *Storage) AddUserToRole(ctx context.Context, roleID int64, roleGUID uuid.UUID, userID int64, userGUID uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddUserToRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_roles").
		Columns("role_id", "role_guid", "user_id", "user_guid").
		Values(roleID, roleGUID, userID, userGUID).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add user to role: %w", err)
	}

	return nil
}

func (s *Storage) RemoveUserFromRole(ctx context.Context, roleID, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveUserFromRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("user_roles").
		Where(sq.Eq{"role_id": roleID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove user from role: %w", err)
	}
	return nil
}

func (s *Storage) DeleteUserRoles(ctx context.Context, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUserRoles")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("user_roles").
		Where(sq.Eq{"user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete user roles: %w", err)
	}
	return nil
}

func (s *Storage) GetUserRoleNames(ctx context.Context, siteID, userID int64) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserRoleNames")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("r.role_name").
		From("roles r").
		Join("user_roles ur ON ur.role_id = r.id").
		Where(sq.Eq{"r.site_id": siteID, "ur.user_id": userID}).
		OrderBy("r.role_name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan role name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return names, nil
}

func (s *Storage) GetUsersInRole(ctx context.Context, siteID int64, roleName string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUsersInRole")
	defer span.End()

	cols := make([]string, 0, len(userColumns))
	for _, c := range userColumns {
		cols = append(cols, "u."+c)
	}

	rows, err := s.db.Statement(ctx).
		Select(cols...).
		From("users u").
		Join("user_roles ur ON ur.user_id = u.id").
		Join("roles r ON r.id = ur.role_id").
		Where(sq.Eq{"u.site_id": siteID, "r.role_name": roleName}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users in role: %w", err)
	}

	return s.scanUserRows(rows)
}
