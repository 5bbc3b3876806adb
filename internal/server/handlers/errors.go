package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/drivesync/internal/sync"
	"github.com/iudanet/drivesync/pkg/api"
)

// writeJSON пишет ответ в формате JSON
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError отображает ошибку синхронизации на HTTP статус
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := http.StatusInternalServerError
	resp := api.ErrorResponse{Error: "internal server error"}

	if e, ok := sync.AsError(err); ok {
		status = statusFor(e)
		resp.Code = e.CodeString()
		resp.Error = e.Message
		if status < http.StatusInternalServerError {
			resp.Message = err.Error()
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", "error", err, "status", status)
	} else {
		logger.Warn("Request rejected", "error", err, "status", status)
	}

	writeJSON(w, logger, status, resp)
}

func statusFor(e *sync.Error) int {
	switch e.Kind {
	case sync.KindNotFound:
		return http.StatusNotFound
	case sync.KindForbidden:
		return http.StatusForbidden
	case sync.KindCorrupt:
		return http.StatusUnprocessableEntity
	case sync.KindUnavailable:
		return http.StatusServiceUnavailable
	case sync.KindInvalidInput, sync.KindContractBreach:
		return http.StatusBadRequest
	case sync.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
