package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/drivesync/internal/server/handlers"
	"github.com/iudanet/drivesync/internal/sync"
	"github.com/iudanet/drivesync/pkg/api"
)

func TestSessionMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var session *sync.Session
	handler := SessionMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		session, ok = handlers.GetSession(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/folders", nil)
		req.Header.Set(api.HeaderUser, "7")
		req.Header.Set(api.HeaderContext, "3")
		req.Header.Set(api.HeaderDevice, "laptop")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 7, session.UserID)
		assert.Equal(t, 3, session.ContextID)
		assert.Equal(t, "laptop", session.DeviceName)
	})

	tests := []struct {
		name    string
		user    string
		context string
		message string
	}{
		{name: "missing user", context: "3", message: "missing X-Drive-User header"},
		{name: "missing context", user: "7", message: "missing X-Drive-Context header"},
		{name: "non numeric user", user: "bob", context: "3", message: `X-Drive-User must be a positive integer, got "bob"`},
		{name: "zero context", user: "7", context: "0", message: `X-Drive-Context must be a positive integer, got "0"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/folders", nil)
			if tt.user != "" {
				req.Header.Set(api.HeaderUser, tt.user)
			}
			if tt.context != "" {
				req.Header.Set(api.HeaderContext, tt.context)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}
