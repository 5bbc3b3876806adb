package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/drivesync/internal/cache"
	"github.com/iudanet/drivesync/internal/models"
)

// DefaultWarningWindow is how long a logged warning suppresses identical ones.
const DefaultWarningWindow = 5 * time.Minute

// WarnLogger logs warnings about versions that cannot be synchronized.
// Conflicts tend to repeat on every poll until the user resolves them, so an
// identical warning (same user, context, error code and version checksum) is
// logged at WARN once per window and at DEBUG otherwise.
//
// A single WarnLogger is shared by all synchronizers of the process.
type WarnLogger struct {
	logger *slog.Logger
	seen   *cache.Expiring[string, time.Time]
	now    func() time.Time
	window time.Duration
}

// WarnOption configures a WarnLogger.
type WarnOption func(*WarnLogger)

// WithWarnClock sets the time source.
func WithWarnClock(now func() time.Time) WarnOption {
	return func(w *WarnLogger) {
		w.now = now
	}
}

// WithWarnWindow overrides the suppression window.
func WithWarnWindow(d time.Duration) WarnOption {
	return func(w *WarnLogger) {
		w.window = d
	}
}

// NewWarnLogger creates a warning logger backed by seen. When seen is nil a
// cache is created; its entries outlive the window so the window comparison
// in Warn stays exact.
func NewWarnLogger(logger *slog.Logger, seen *cache.Expiring[string, time.Time], opts ...WarnOption) *WarnLogger {
	w := &WarnLogger{
		logger: logger,
		seen:   seen,
		now:    time.Now,
		window: DefaultWarningWindow,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.seen == nil {
		w.seen = cache.New[string, time.Time](2*w.window, cache.WithClock(w.now))
	}
	return w
}

// Warn logs msg for version with cause err. It returns the level used.
func (w *WarnLogger) Warn(ctx context.Context, session *Session, msg string, version models.Version, err error) slog.Level {
	key := warningKey(session, version, err)
	now := w.now()

	level := slog.LevelDebug
	w.seen.Compute(key, func(last time.Time, found bool) (time.Time, bool) {
		if found && now.Sub(last) <= w.window {
			return last, false
		}
		level = slog.LevelWarn
		return now, true
	})

	attrs := []any{
		"user_id", session.UserID,
		"context_id", session.ContextID,
		"error", err,
	}
	if version != nil {
		attrs = append(attrs, "path", version.Path(), "checksum", version.Checksum())
	}
	w.logger.Log(ctx, level, msg, attrs...)

	return level
}

// warningKey builds "user@context:DRV0404:checksum".
func warningKey(session *Session, version models.Version, err error) string {
	prefix, code := "", 0
	if e, ok := AsError(err); ok {
		prefix, code = e.Prefix, e.Code
	}
	checksum := ""
	if version != nil {
		checksum = version.Checksum()
	}
	return fmt.Sprintf("%d@%d:%s%d:%s", session.UserID, session.ContextID, prefix, code, checksum)
}
