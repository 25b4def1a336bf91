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

	"github.com/canonical/identity-store/internal/types"
)

var siteColumns = []string{"id", "site_guid", "host", "name", "really_delete_users", "created_at"}

func (s *Storage) GetSiteByID(ctx context.Context, id int64) (*types.Site, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSiteByID")
	defer span.End()

	return s.getSite(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetSiteByHost(ctx context.Context, host string) (*types.Site, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSiteByHost")
	defer span.End()

	return s.getSite(ctx, sq.Eq{"host": strings.ToLower(strings.TrimSpace(host))})
}

func (s *Storage) getSite(ctx context.Context, pred interface{}) (*types.Site, error) {
	var site types.Site
	err := s.db.Statement(ctx).
		Select(siteColumns...).
		From("sites").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&site.ID, &site.SiteGUID, &site.Host, &site.Name, &site.ReallyDeleteUsers, &site.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}

	return &site, nil
}
