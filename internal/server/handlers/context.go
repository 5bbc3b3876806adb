package handlers

import (
	"context"

	"github.com/iudanet/drivesync/internal/sync"
)

// contextKey тип для ключей контекста
type contextKey string

// SessionKey ключ для хранения сессии синхронизации в контексте
const SessionKey contextKey = "drive_session"

// WithSession возвращает контекст с сессией
func WithSession(ctx context.Context, session *sync.Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

// GetSession извлекает сессию из контекста запроса
func GetSession(ctx context.Context) (*sync.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*sync.Session)
	return session, ok
}
