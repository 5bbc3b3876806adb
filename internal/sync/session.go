package sync

import (
	"fmt"
	"log/slog"
	"strings"
	gosync "sync"
	"time"
)

// Session identifies the client that requested a sync pass and collects an
// optional diagnostics trace for it.
type Session struct {
	logger      *slog.Logger
	trace       *strings.Builder
	DeviceName  string
	UserID      int
	ContextID   int
	mu          gosync.Mutex
	diagnostics bool
}

// NewSession creates a session for user in context. A nil logger discards
// output.
func NewSession(userID, contextID int, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		UserID:    userID,
		ContextID: contextID,
		logger:    logger.With("user_id", userID, "context_id", contextID),
	}
}

// EnableDiagnostics makes Trace also record messages for Diagnostics.
func (s *Session) EnableDiagnostics() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.diagnostics = true
	if s.trace == nil {
		s.trace = &strings.Builder{}
	}
}

// Logger returns the session scoped logger.
func (s *Session) Logger() *slog.Logger {
	return s.logger
}

// Trace записывает диагностическое сообщение в лог (DEBUG) и, если включена
// диагностика, в буфер, который возвращается клиенту.
func (s *Session) Trace(msg string, args ...any) {
	s.logger.Debug(msg, args...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.diagnostics {
		return
	}

	fmt.Fprintf(s.trace, "%s %s", time.Now().UTC().Format(time.RFC3339Nano), msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(s.trace, " %v=%v", args[i], args[i+1])
	}
	s.trace.WriteByte('\n')
}

// Diagnostics returns the collected trace, empty when diagnostics are off.
func (s *Session) Diagnostics() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trace == nil {
		return ""
	}
	return s.trace.String()
}

// String returns "user@context".
func (s *Session) String() string {
	return fmt.Sprintf("%d@%d", s.UserID, s.ContextID)
}
