// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package userstore

import (
	"errors"
)

var (
	// ErrNilUser is returned when a required user argument is missing,
	// before any storage call is made.
	ErrNilUser = errors.New("user is required")

	// ErrMalformedUserID is returned when an identifier cannot be parsed
	// as a user guid. Unlike a lookup miss this is a fault, not a
	// not-found result.
	ErrMalformedUserID = errors.New("malformed user id")

	// ErrNameSuggestionExhausted is returned when no free login name was
	// found within the capped number of suggestion attempts.
	ErrNameSuggestionExhausted = errors.New("exhausted login name suggestion attempts")
)
