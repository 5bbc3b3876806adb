package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/drivesync/internal/server/handlers"
	"github.com/iudanet/drivesync/internal/sync"
	"github.com/iudanet/drivesync/pkg/api"
)

// SessionMiddleware создает сессию синхронизации из заголовков клиента
// X-Drive-User и X-Drive-Context обязательны, X-Drive-Device опционален
func SessionMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := headerID(r, api.HeaderUser)
			if err != nil {
				rejectSession(w, r, logger, err)
				return
			}
			contextID, err := headerID(r, api.HeaderContext)
			if err != nil {
				rejectSession(w, r, logger, err)
				return
			}

			session := sync.NewSession(userID, contextID, logger.With("request_id", RequestID(r.Context())))
			session.DeviceName = r.Header.Get(api.HeaderDevice)

			session.Logger().Debug("Drive session started", "device", session.DeviceName)

			next.ServeHTTP(w, r.WithContext(handlers.WithSession(r.Context(), session)))
		})
	}
}

func rejectSession(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger.Warn("Invalid session headers", "error", err, "path", r.URL.Path)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "invalid session headers", Message: err.Error()})
}

func headerID(r *http.Request, name string) (int, error) {
	raw := r.Header.Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s header", name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, raw)
	}
	return id, nil
}
