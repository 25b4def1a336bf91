// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package site

import (
	"context"

	"github.com/canonical/identity-store/internal/types"
)

type StorageInterface interface {
	GetSiteByID(ctx context.Context, id int64) (*types.Site, error)
	GetSiteByHost(ctx context.Context, host string) (*types.Site, error)
}

type ResolverInterface interface {
	Resolve(ctx context.Context) (*types.Site, error)
}
