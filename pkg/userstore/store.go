// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package userstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/identity-store/internal/logging"
	"github.com/canonical/identity-store/internal/monitoring"
	"github.com/canonical/identity-store/internal/storage"
	"github.com/canonical/identity-store/internal/tracing"
	"github.com/canonical/identity-store/internal/types"
)

// maxSuggestAttempts bounds the numeric-suffix search in
// SuggestLoginName. Without a bound a site where every suffix is taken
// would loop forever.
const maxSuggestAttempts = 100

var _ ServiceInterface = (*Store)(nil)

// Store is a site-scoped facade over the user repository. It validates
// arguments, binds unbound users to the resolved site and delegates
// persistence to storage; it holds no state of its own and performs no
// retries, so every storage fault reaches the caller unmodified.
type Store struct {
	storage StorageInterface
	sites   SiteResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewStore(
	storage StorageInterface,
	sites SiteResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Store {
	return &Store{
		storage: storage,
		sites:   sites,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// bindSite fills the user's site id and guid from the resolved site when
// they carry their zero values. Already bound users are left untouched.
func (s *Store) bindSite(ctx context.Context, user *types.User) error {
	if user.SiteID != 0 && user.SiteGUID != uuid.Nil {
		return nil
	}

	site, err := s.sites.Resolve(ctx)
	if err != nil {
		return err
	}

	if user.SiteID == 0 {
		user.SiteID = site.ID
	}
	if user.SiteGUID == uuid.Nil {
		user.SiteGUID = site.SiteGUID
	}

	return nil
}

// CreateUser binds the user to the current site, derives login and
// display names from the email when absent, saves the record and enrolls
// it in the site's default roles. Unlike the save call, default-role
// enrollment happens after the user exists, so a fault there leaves a
// role-less but persisted user.
func (s *Store) CreateUser(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.CreateUser")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.bindSite(ctx, user); err != nil {
		return err
	}

	if user.LoginName == "" || user.DisplayName == "" {
		suggested, err := s.SuggestLoginName(ctx, user.SiteID, user.Email)
		if err != nil {
			return err
		}
		if user.LoginName == "" {
			user.LoginName = suggested
		}
		if user.DisplayName == "" {
			user.DisplayName = suggested
		}
	}

	if user.LoweredEmail == "" {
		user.LoweredEmail = strings.ToLower(user.Email)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.storage.AddUserToDefaultRoles(ctx, user); err != nil {
		return err
	}

	s.logger.Security().UserCreated(user.SiteID, user.UserGUID.String())

	return nil
}

// UpdateUser persists the full user record. The user must already be
// site-bound; no re-binding is performed.
func (s *Store) UpdateUser(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.UpdateUser")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.storage.SaveUser(ctx, user)
}

// DeleteUser removes the user according to the site's delete policy.
// Under hard delete the logins, claims, role memberships and the user
// row are removed concurrently; the call waits for all four but there is
// no rollback, so a partial failure leaves whichever removals succeeded
// in place. Under soft delete only the deleted flag is flipped.
func (s *Store) DeleteUser(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.DeleteUser")
	defer span.End()

	if user == nil {
		return ErrNilUser
	}

	site, err := s.sites.Resolve(ctx)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if site.ReallyDeleteUsers {
		userID := user.ID
		userGUID := user.UserGUID

		var g errgroup.Group
		g.Go(func() error {
			return s.storage.DeleteLoginsByUser(ctx, userGUID.String())
		})
		g.Go(func() error {
			return s.storage.DeleteClaimsByUser(ctx, userGUID)
		})
		g.Go(func() error {
			return s.storage.DeleteUserRoles(ctx, userID)
		})
		g.Go(func() error {
			return s.storage.DeleteUser(ctx, userID)
		})

		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		if err := s.storage.FlagUserAsDeleted(ctx, user.ID); err != nil {
			return err
		}
	}

	s.logger.Security().UserDeleted(site.ID, user.UserGUID.String(), site.ReallyDeleteUsers)

	return nil
}

// FindByID resolves a user by its guid within the current site. A
// malformed identifier is a fault; a lookup miss returns a nil user.
func (s *Store) FindByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.FindByID")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	userGUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedUserID, id)
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

// FindByName resolves a user by login name with normalized matching.
func (s *Store) FindByName(ctx context.Context, loginName string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.FindByName")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	site, err := s.sites.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.GetUserByLoginName(ctx, site.ID, loginName, true)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.FindByEmail")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	site, err := s.sites.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.GetUserByEmail(ctx, site.ID, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// SuggestLoginName derives a login name from the email's local part,
// appending an increasing numeric suffix (starting at 2) until a free
// name is found. The existence checks run sequentially on purpose, each
// iteration depends on the previous result. The search is capped at
// maxSuggestAttempts.
func (s *Store) SuggestLoginName(ctx context.Context, siteID int64, email string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "userstore.Store.SuggestLoginName")
	defer span.End()

	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}

	name := local
	for offset := 1; ; offset++ {
		exists, err := s.storage.LoginNameExists(ctx, siteID, name)
		if err != nil {
			return "", err
		}
		if !exists {
			return name, nil
		}
		if offset >= maxSuggestAttempts {
			return "", ErrNameSuggestionExhausted
		}
		name = local + strconv.Itoa(offset+1)
	}
}
