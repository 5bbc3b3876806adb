package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/drivesync/internal/drive"
	"github.com/iudanet/drivesync/internal/models"
	"github.com/iudanet/drivesync/internal/sync"
	"github.com/iudanet/drivesync/pkg/api"
)

// maxRequestBody ограничивает размер тела запроса синхронизации
const maxRequestBody = 32 << 20

//go:generate moq -out drive_mock_test.go . DriveService

// DriveService определяет операции синхронизации, доступные через API
type DriveService interface {
	SyncFolders(ctx context.Context, session *sync.Session, original, client []models.DirectoryVersion) (*drive.Result[models.DirectoryVersion], error)
	SyncFiles(ctx context.Context, session *sync.Session, dirPath string, original, client []models.FileVersion) (*drive.Result[models.FileVersion], error)
	Upload(ctx context.Context, session *sync.Session, dirPath string, file models.FileVersion) error
}

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger  *slog.Logger
	service DriveService
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, service DriveService) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		service: service,
	}
}

// HandleFolders обрабатывает POST /api/v1/sync/folders
func (h *SyncHandler) HandleFolders(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req api.SyncFoldersRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Diagnostics {
		session.EnableDiagnostics()
	}

	session.Logger().Info("Folder sync request",
		"original_count", len(req.OriginalVersions),
		"client_count", len(req.ClientVersions))

	result, err := h.service.SyncFolders(r.Context(), session,
		toDirectoryVersions(req.OriginalVersions), toDirectoryVersions(req.ClientVersions))
	if err != nil {
		writeError(w, session.Logger(), err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.SyncResponse{
		Actions:     toAPIActions(result.Actions, directoryVersion),
		Diagnostics: result.Diagnostics,
		Deferred:    result.Deferred,
	})

	session.Logger().Info("Folder sync completed", "actions", len(result.Actions), "deferred", result.Deferred)
}

// HandleFiles обрабатывает POST /api/v1/sync/files
func (h *SyncHandler) HandleFiles(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req api.SyncFilesRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Diagnostics {
		session.EnableDiagnostics()
	}

	session.Logger().Info("File sync request",
		"path", req.Path,
		"original_count", len(req.OriginalVersions),
		"client_count", len(req.ClientVersions))

	result, err := h.service.SyncFiles(r.Context(), session, req.Path,
		toFileVersions(req.OriginalVersions), toFileVersions(req.ClientVersions))
	if err != nil {
		writeError(w, session.Logger(), err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.SyncResponse{
		Actions:     toAPIActions(result.Actions, fileVersion),
		Diagnostics: result.Diagnostics,
		Deferred:    result.Deferred,
	})

	session.Logger().Info("File sync completed", "path", req.Path, "actions", len(result.Actions), "deferred", result.Deferred)
}

// HandleUpload обрабатывает PUT /api/v1/files
func (h *SyncHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req api.UploadRequest
	if !h.decode(w, r, &req) {
		return
	}

	file := models.FileVersion{Name: req.Name, MD5: req.Checksum}
	if err := h.service.Upload(r.Context(), session, req.Path, file); err != nil {
		writeError(w, session.Logger(), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SyncHandler) session(w http.ResponseWriter, r *http.Request) (*sync.Session, bool) {
	session, ok := GetSession(r.Context())
	if !ok {
		h.logger.Error("Session not found in context")
		writeJSON(w, h.logger, http.StatusUnauthorized, api.ErrorResponse{Error: "missing drive session"})
		return nil, false
	}
	return session, true
}

func (h *SyncHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(v); err != nil {
		h.logger.Warn("Failed to decode request", "error", err, "path", r.URL.Path)
		writeJSON(w, h.logger, http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return false
	}
	return true
}
