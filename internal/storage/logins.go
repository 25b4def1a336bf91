// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/identity-store/internal/types"
)

func (s *Storage) CreateLogin(ctx context.Context, login *types.UserLogin) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLogin")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_logins").
		Columns("login_provider", "provider_key", "user_id").
		Values(login.LoginProvider, login.ProviderKey, login.UserID).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create login: %w", err)
	}

	return nil
}

func (s *Storage) FindLogin(ctx context.Context, provider, key string) (*types.UserLogin, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindLogin")
	defer span.End()

	var l types.UserLogin
	err := s.db.Statement(ctx).
		Select("login_provider", "provider_key", "user_id").
		From("user_logins").
		Where(sq.Eq{"login_provider": provider, "provider_key": key}).
		QueryRowContext(ctx).
		Scan(&l.LoginProvider, &l.ProviderKey, &l.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find login: %w", err)
	}

	return &l, nil
}

func (s *Storage) GetLoginsByUser(ctx context.Context, userID string) ([]*types.UserLogin, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLoginsByUser")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("login_provider", "provider_key", "user_id").
		From("user_logins").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("login_provider", "provider_key").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list logins: %w", err)
	}
	defer rows.Close()

	var logins []*types.UserLogin
	for rows.Next() {
		var l types.UserLogin
		if err := rows.Scan(&l.LoginProvider, &l.ProviderKey, &l.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan login: %w", err)
		}
		logins = append(logins, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return logins, nil
}

func (s *Storage) DeleteLogin(ctx context.Context, provider, key, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLogin")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("user_logins").
		Where(sq.Eq{
			"login_provider": provider,
			"provider_key":   key,
			"user_id":        userID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete login: %w", err)
	}
	return nil
}

func (s *Storage) DeleteLoginsByUser(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLoginsByUser")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("user_logins").
		Where(sq.Eq{"user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete user logins: %w", err)
	}
	return nil
}
