// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/identity-store/internal/db"
	"github.com/canonical/identity-store/internal/logging"
	"github.com/canonical/identity-store/internal/monitoring"
	"github.com/canonical/identity-store/internal/tracing"
	"github.com/canonical/identity-store/internal/types"
)

var _ UserStorageInterface = (*Storage)(nil)
var _ SiteStorageInterface = (*Storage)(nil)

var userColumns = []string{
	"id", "user_guid", "site_id", "site_guid",
	"login_name", "display_name", "email", "lowered_email",
	"email_confirmed", "password_hash", "phone_number", "phone_number_confirmed",
	"two_factor_enabled", "failed_password_attempt_count", "is_locked_out",
	"lockout_end_utc", "is_deleted", "created_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(scanner rowScanner) (*types.User, error) {
	var u types.User
	var lockoutEnd sql.NullTime

	err := scanner.Scan(
		&u.ID, &u.UserGUID, &u.SiteID, &u.SiteGUID,
		&u.LoginName, &u.DisplayName, &u.Email, &u.LoweredEmail,
		&u.EmailConfirmed, &u.PasswordHash, &u.PhoneNumber, &u.PhoneNumberConfirmed,
		&u.TwoFactorEnabled, &u.FailedPasswordAttemptCount, &u.IsLockedOut,
		&lockoutEnd, &u.IsDeleted, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lockoutEnd.Valid {
		t := lockoutEnd.Time
		u.LockoutEndUTC = &t
	}

	return &u, nil
}

func (s *Storage) scanUserRows(rows *sql.Rows) ([]*types.User, error) {
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// SaveUser inserts the user when it has no id yet and updates the general
// account columns otherwise. Lockout bookkeeping columns are never
// written here, they belong to the dedicated lockout operations.
func (s *Storage) SaveUser(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "storage.SaveUser")
	defer span.End()

	if user.ID == 0 {
		return s.insertUser(ctx, user)
	}
	return s.updateUser(ctx, user)
}

func (s *Storage) insertUser(ctx context.Context, user *types.User) error {
	if user.UserGUID == uuid.Nil {
		guid, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate user guid: %w", err)
		}
		user.UserGUID = guid
	}

	err := s.db.Statement(ctx).
		Insert("users").
		Columns(
			"user_guid", "site_id", "site_guid",
			"login_name", "display_name", "email", "lowered_email",
			"email_confirmed", "password_hash", "phone_number", "phone_number_confirmed",
			"two_factor_enabled",
		).
		Values(
			user.UserGUID, user.SiteID, user.SiteGUID,
			user.LoginName, user.DisplayName, user.Email, user.LoweredEmail,
			user.EmailConfirmed, user.PasswordHash, user.PhoneNumber, user.PhoneNumberConfirmed,
			user.TwoFactorEnabled,
		).
		Suffix("RETURNING id, created_at").
		QueryRowContext(ctx).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (s *Storage) updateUser(ctx context.Context, user *types.User) error {
	res, err := s.db.Statement(ctx).
		Update("users").
		SetMap(map[string]interface{}{
			"site_id":                user.SiteID,
			"site_guid":              user.SiteGUID,
			"login_name":             user.LoginName,
			"display_name":           user.DisplayName,
			"email":                  user.Email,
			"lowered_email":          user.LoweredEmail,
			"email_confirmed":        user.EmailConfirmed,
			"password_hash":          user.PasswordHash,
			"phone_number":           user.PhoneNumber,
			"phone_number_confirmed": user.PhoneNumberConfirmed,
			"two_factor_enabled":     user.TwoFactorEnabled,
			"is_deleted":             user.IsDeleted,
		}).
		Where(sq.Eq{"id": user.ID}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteUser(ctx context.Context, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUser")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("users").
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *Storage) FlagUserAsDeleted(ctx context.Context, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.FlagUserAsDeleted")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("is_deleted", true).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to flag user as deleted: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetUserByGUID(ctx context.Context, siteID int64, userGUID uuid.UUID) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByGUID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"site_id": siteID, "user_guid": userGUID})
}

func (s *Storage) GetUserByEmail(ctx context.Context, siteID int64, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"site_id": siteID, "lowered_email": strings.ToLower(email)})
}

func (s *Storage) GetUserByLoginName(ctx context.Context, siteID int64, loginName string, normalized bool) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByLoginName")
	defer span.End()

	where := sq.And{sq.Eq{"site_id": siteID}}
	if normalized {
		where = append(where, sq.Eq{"LOWER(login_name)": strings.ToLower(loginName)})
	} else {
		where = append(where, sq.Eq{"login_name": loginName})
	}

	return s.getUser(ctx, where)
}

func (s *Storage) getUser(ctx context.Context, pred interface{}) (*types.User, error) {
	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(pred).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) LoginNameExists(ctx context.Context, siteID int64, loginName string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LoginNameExists")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("users").
		Where(sq.Eq{"site_id": siteID, "LOWER(login_name)": strings.ToLower(loginName)}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check login name: %w", err)
	}

	return count > 0, nil
}

// AddUserToDefaultRoles grants every default role of the user's site in a
// single transaction.
func (s *Storage) AddUserToDefaultRoles(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddUserToDefaultRoles")
	defer span.End()

	return s.db.WithTx(ctx, func(txCtx context.Context) error {
		rows, err := s.db.Statement(txCtx).
			Select("id", "role_guid").
			From("roles").
			Where(sq.Eq{"site_id": user.SiteID, "is_default": true}).
			QueryContext(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list default roles: %w", err)
		}
		defer rows.Close()

		type defaultRole struct {
			id   int64
			guid uuid.UUID
		}

		var defaults []defaultRole
		for rows.Next() {
			var r defaultRole
			if err := rows.Scan(&r.id, &r.guid); err != nil {
				return fmt.Errorf("failed to scan role: %w", err)
			}
			defaults = append(defaults, r)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows iteration error: %w", err)
		}

		for _, r := range defaults {
			if err := s.AddUserToRole(txCtx, r.id, r.guid, user.ID, user.UserGUID); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *Storage) UpdateFailedPasswordAttemptCount(ctx context.Context, userGUID uuid.UUID, count int32) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateFailedPasswordAttemptCount")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("failed_password_attempt_count", count).
		Where(sq.Eq{"user_guid": userGUID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update failed attempt count: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) LockAccount(ctx context.Context, userGUID uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "storage.LockAccount")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("is_locked_out", true).
		Where(sq.Eq{"user_guid": userGUID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to lock account: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// UnlockAccount clears the locked-out flag together with the failed
// attempt counter and lockout end, so a reinstated account starts clean.
func (s *Storage) UnlockAccount(ctx context.Context, userGUID uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "storage.UnlockAccount")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		SetMap(map[string]interface{}{
			"is_locked_out":                 false,
			"failed_password_attempt_count": 0,
			"lockout_end_utc":               nil,
		}).
		Where(sq.Eq{"user_guid": userGUID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to unlock account: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
