package drive

import (
	"context"
	"maps"
	"slices"
	"strings"
	gosync "sync"
	"time"
)

// FolderEvent is a consolidated change notification for one context. It lists,
// per user, the changed directories together with all their ancestors.
type FolderEvent struct {
	FoldersPerUser map[int][]string
	ContextID      int
}

// BufferOption configures an EventBuffer.
type BufferOption func(*EventBuffer)

// WithBufferClock sets the time source.
func WithBufferClock(now func() time.Time) BufferOption {
	return func(b *EventBuffer) {
		b.now = now
	}
}

// EventBuffer collects directory changes per context and releases them as a
// single FolderEvent once the changes have settled.
//
// A context buffer is ready when the first change is older than maxDelay, or
// when it is older than defaultDelay and no change arrived for consolidation.
type EventBuffer struct {
	buffers       map[int]*folderBuffer
	now           func() time.Time
	consolidation time.Duration
	maxDelay      time.Duration
	defaultDelay  time.Duration
	mu            gosync.Mutex
}

type folderBuffer struct {
	affected map[int]map[string]struct{}
	first    time.Time
	last     time.Time
}

// NewEventBuffer creates an empty buffer.
func NewEventBuffer(consolidation, maxDelay, defaultDelay time.Duration, opts ...BufferOption) *EventBuffer {
	b := &EventBuffer{
		buffers:       make(map[int]*folderBuffer),
		now:           time.Now,
		consolidation: consolidation,
		maxDelay:      maxDelay,
		defaultDelay:  defaultDelay,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add records a change of dirPath made by userID in contextID.
func (b *EventBuffer) Add(contextID, userID int, dirPath string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	fb, ok := b.buffers[contextID]
	if !ok {
		fb = &folderBuffer{affected: make(map[int]map[string]struct{}), first: now}
		b.buffers[contextID] = fb
	}
	fb.last = now

	folders, ok := fb.affected[userID]
	if !ok {
		folders = make(map[string]struct{})
		fb.affected[userID] = folders
	}
	for _, p := range withAncestors(dirPath) {
		folders[p] = struct{}{}
	}
}

// Drain removes and returns the events of all ready contexts, ordered by
// context id.
func (b *EventBuffer) Drain() []FolderEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	var events []FolderEvent
	for _, contextID := range slices.Sorted(maps.Keys(b.buffers)) {
		fb := b.buffers[contextID]
		if !b.ready(fb, now) {
			continue
		}
		delete(b.buffers, contextID)

		event := FolderEvent{ContextID: contextID, FoldersPerUser: make(map[int][]string, len(fb.affected))}
		for userID, folders := range fb.affected {
			event.FoldersPerUser[userID] = slices.Sorted(maps.Keys(folders))
		}
		events = append(events, event)
	}
	return events
}

// Pending returns the number of contexts with undrained changes.
func (b *EventBuffer) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buffers)
}

// Run drains the buffer every interval and passes ready events to handle
// until ctx is done.
func (b *EventBuffer) Run(ctx context.Context, interval time.Duration, handle func(FolderEvent)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, event := range b.Drain() {
				handle(event)
			}
		}
	}
}

func (b *EventBuffer) ready(fb *folderBuffer, now time.Time) bool {
	sinceFirst := now.Sub(fb.first)
	if sinceFirst > b.maxDelay {
		return true
	}
	return sinceFirst > b.defaultDelay && now.Sub(fb.last) > b.consolidation
}

// withAncestors returns p and every parent directory up to "/".
func withAncestors(p string) []string {
	paths := []string{p}
	for p != "/" && p != "" {
		i := strings.LastIndex(p, "/")
		if i <= 0 {
			p = "/"
		} else {
			p = p[:i]
		}
		paths = append(paths, p)
	}
	return paths
}
