// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package site

import (
	"context"
	"fmt"

	"github.com/canonical/identity-store/internal/logging"
	"github.com/canonical/identity-store/internal/monitoring"
	"github.com/canonical/identity-store/internal/tracing"
	"github.com/canonical/identity-store/internal/types"
)

var _ ResolverInterface = (*Resolver)(nil)

// Resolver loads the settings of the site this instance serves. Settings
// are fetched fresh on every call so policy changes take effect without a
// restart; callers resolve once per operation and hold the result for its
// duration.
type Resolver struct {
	storage StorageInterface
	siteID  int64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(storage StorageInterface, siteID int64, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	r := new(Resolver)

	r.storage = storage
	r.siteID = siteID

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}

func (r *Resolver) Resolve(ctx context.Context) (*types.Site, error) {
	ctx, span := r.tracer.Start(ctx, "site.Resolver.Resolve")
	defer span.End()

	s, err := r.storage.GetSiteByID(ctx, r.siteID)
	if err != nil {
		r.logger.Errorf("failed to resolve site %d: %v", r.siteID, err)
		return nil, fmt.Errorf("failed to resolve site: %w", err)
	}

	return s, nil
}
