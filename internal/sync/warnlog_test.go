package sync

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	gosync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/drivesync/internal/cache"
	"github.com/iudanet/drivesync/internal/models"
)

type testClock struct {
	now time.Time
	mu  gosync.Mutex
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestWarnLogger(buf *bytes.Buffer) (*WarnLogger, *testClock) {
	clock := &testClock{now: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	seen := cache.New[string, time.Time](2*DefaultWarningWindow, cache.WithClock(clock.Now))
	return NewWarnLogger(logger, seen, WithWarnClock(clock.Now)), clock
}

func TestWarnLogger_SuppressesRepeatsWithinWindow(t *testing.T) {
	var buf bytes.Buffer
	w, clock := newTestWarnLogger(&buf)
	session := NewSession(7, 3, nil)
	version := models.FileVersion{Name: "report.txt", MD5: "abc"}

	assert.Equal(t, slog.LevelWarn, w.Warn(context.Background(), session, "Invalid file name", version, ErrInvalidName))

	clock.Advance(time.Minute)
	assert.Equal(t, slog.LevelDebug, w.Warn(context.Background(), session, "Invalid file name", version, ErrInvalidName))

	clock.Advance(DefaultWarningWindow)
	assert.Equal(t, slog.LevelWarn, w.Warn(context.Background(), session, "Invalid file name", version, ErrInvalidName),
		"warning should be logged again after the window")

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "path=report.txt")
}

func TestWarnLogger_ExactWindowIsStillSuppressed(t *testing.T) {
	var buf bytes.Buffer
	w, clock := newTestWarnLogger(&buf)
	session := NewSession(7, 3, nil)
	version := models.FileVersion{Name: "a", MD5: "abc"}

	w.Warn(context.Background(), session, "msg", version, ErrNotFound)
	clock.Advance(DefaultWarningWindow)
	assert.Equal(t, slog.LevelDebug, w.Warn(context.Background(), session, "msg", version, ErrNotFound))
}

func TestWarnLogger_KeyComponents(t *testing.T) {
	var buf bytes.Buffer
	w, _ := newTestWarnLogger(&buf)
	ctx := context.Background()
	version := models.FileVersion{Name: "a", MD5: "abc"}

	require.Equal(t, slog.LevelWarn, w.Warn(ctx, NewSession(7, 3, nil), "msg", version, ErrNotFound))

	tests := []struct {
		session *Session
		version models.Version
		err     error
		name    string
	}{
		{name: "other user", session: NewSession(8, 3, nil), version: version, err: ErrNotFound},
		{name: "other context", session: NewSession(7, 4, nil), version: version, err: ErrNotFound},
		{name: "other code", session: NewSession(7, 3, nil), version: version, err: ErrPermissionDenied},
		{name: "other checksum", session: NewSession(7, 3, nil), version: models.FileVersion{Name: "a", MD5: "def"}, err: ErrNotFound},
		{name: "plain error", session: NewSession(7, 3, nil), version: version, err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, slog.LevelWarn, w.Warn(ctx, tt.session, "msg", tt.version, tt.err))
		})
	}
}

func TestWarnLogger_WrappedErrorSharesKey(t *testing.T) {
	var buf bytes.Buffer
	w, _ := newTestWarnLogger(&buf)
	session := NewSession(7, 3, nil)
	version := models.FileVersion{Name: "a", MD5: "abc"}

	w.Warn(context.Background(), session, "msg", version, ErrNotFound.Withf("file a"))
	assert.Equal(t, slog.LevelDebug, w.Warn(context.Background(), session, "msg", version, ErrNotFound.Wrap(errors.New("io"))))
}

func TestWarnLogger_SharedAcrossSynchronizers(t *testing.T) {
	var buf bytes.Buffer
	w, clock := newTestWarnLogger(&buf)
	version := models.FileVersion{Name: "a", MD5: "abc"}

	levels := make(chan slog.Level, 2)
	var wg gosync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// отдельная сессия на каждый проход синхронизации
			levels <- w.Warn(context.Background(), NewSession(7, 3, nil), "not found", version, ErrNotFound)
		}()
	}
	wg.Wait()
	close(levels)

	var warn, debug int
	for l := range levels {
		switch l {
		case slog.LevelWarn:
			warn++
		case slog.LevelDebug:
			debug++
		}
	}
	assert.Equal(t, 1, warn)
	assert.Equal(t, 1, debug)

	clock.Advance(time.Minute)
	assert.Equal(t, slog.LevelDebug, w.Warn(context.Background(), NewSession(7, 3, nil), "not found", version, ErrNotFound))
}

func TestWarnLogger_DefaultCache(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	w := NewWarnLogger(logger, nil, WithWarnWindow(time.Hour))
	session := NewSession(1, 1, nil)

	assert.Equal(t, slog.LevelWarn, w.Warn(context.Background(), session, "msg", nil, ErrConflict))
	assert.Equal(t, slog.LevelDebug, w.Warn(context.Background(), session, "msg", nil, ErrConflict))
}

func TestWarningKey(t *testing.T) {
	key := warningKey(NewSession(7, 3, nil), models.FileVersion{Name: "a", MD5: "abc"}, ErrNotFound)
	assert.Equal(t, "7@3:DRV404:abc", key)
}
