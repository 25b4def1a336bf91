// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit events on a dedicated "security" key so they
// can be filtered out of the regular application log stream.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("security", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("security", "system.shutdown"))
}

func (s *SecurityLogger) UserCreated(siteID int64, userGUID string) {
	s.l.Info("user created",
		zap.String("security", "user.created"),
		zap.Int64("site_id", siteID),
		zap.String("user_guid", userGUID),
	)
}

func (s *SecurityLogger) UserDeleted(siteID int64, userGUID string, hard bool) {
	s.l.Info("user deleted",
		zap.String("security", "user.deleted"),
		zap.Int64("site_id", siteID),
		zap.String("user_guid", userGUID),
		zap.Bool("hard_delete", hard),
	)
}

func (s *SecurityLogger) AccountLocked(userGUID string) {
	s.l.Warn("account locked",
		zap.String("security", "account.locked"),
		zap.String("user_guid", userGUID),
	)
}

func (s *SecurityLogger) AccountUnlocked(userGUID string) {
	s.l.Info("account unlocked",
		zap.String("security", "account.unlocked"),
		zap.String("user_guid", userGUID),
	)
}
