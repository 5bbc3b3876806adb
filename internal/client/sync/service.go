package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	httpClient "github.com/iudanet/drivesync/internal/client/api"
	"github.com/iudanet/drivesync/internal/client/scan"
	"github.com/iudanet/drivesync/internal/client/storage"
	"github.com/iudanet/drivesync/internal/models"
	engine "github.com/iudanet/drivesync/internal/sync"
	"github.com/iudanet/drivesync/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync выполняет один проход синхронизации с сервером
	Sync(ctx context.Context) (*SyncResult, error)

	// Status возвращает локальные изменения относительно последней синхронизации
	Status(ctx context.Context) (*StatusReport, error)
}

// APIClient is the part of the server API the sync service uses.
type APIClient interface {
	SyncFolders(ctx context.Context, req api.SyncFoldersRequest) (*api.SyncResponse, error)
	SyncFiles(ctx context.Context, req api.SyncFilesRequest) (*api.SyncResponse, error)
	Upload(ctx context.Context, req api.UploadRequest) error
}

// Option настраивает service
type Option func(*service)

// WithDiagnostics просит сервер вернуть трассировку проходов
func WithDiagnostics() Option {
	return func(s *service) {
		s.diagnostics = true
	}
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// service handles synchronization between the local folder and the server
type service struct {
	apiClient   APIClient
	fs          billy.Filesystem
	state       storage.StateStorage
	metadata    storage.MetadataStorage
	scanner     *scan.Scanner
	logger      *slog.Logger
	now         func() time.Time
	diagnostics bool
}

// NewService creates a new sync service over the folder fs
func NewService(apiClient APIClient, fs billy.Filesystem, state storage.StateStorage, metadata storage.MetadataStorage, logger *slog.Logger, opts ...Option) Service {
	s := &service{
		apiClient: apiClient,
		fs:        fs,
		state:     state,
		metadata:  metadata,
		scanner:   scan.New(fs, logger),
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PendingAction действие сервера, которое клиент не выполнил
type PendingAction struct {
	Path   string // путь директории или файла
	Action string // тип действия
	Reason string // причина, если сервер ее сообщил
}

// SyncResult contains sync pass results
type SyncResult struct {
	Pending      []PendingAction // действия, оставленные на следующий проход
	Directories  int             // количество синхронизированных директорий
	Acknowledged int             // количество подтвержденных версий
	Uploaded     int             // количество зарегистрированных на сервере файлов
	Removed      int             // количество удаленных локально файлов и директорий
	Renamed      int             // количество переименованных конфликтных копий
	Deferred     bool            // сервер отложил часть путей
}

// Complete reports whether the local folder matches the server after the pass.
func (r *SyncResult) Complete() bool {
	return !r.Deferred && len(r.Pending) == 0
}

func (r *SyncResult) pend(p string, a api.Action) {
	r.Pending = append(r.Pending, PendingAction{
		Path:   p,
		Action: a.Type,
		Reason: a.Parameters[engine.ParamReason],
	})
}

// Sync performs one synchronization pass:
// 1. Scans the local folder
// 2. Reconciles directories with the server
// 3. Reconciles files of every directory the server asked to sync
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	s.logger.Info("Starting synchronization")

	tree, err := s.scanner.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan local folder: %w", err)
	}

	originals, err := s.state.ListDirectories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get original directories: %w", err)
	}

	resp, err := s.apiClient.SyncFolders(ctx, api.SyncFoldersRequest{
		OriginalVersions: directoryVersions(originals),
		ClientVersions:   directoryVersions(tree.Directories),
		Diagnostics:      s.diagnostics,
	})
	if err != nil {
		return nil, err
	}
	s.logDiagnostics("/", resp)

	result := &SyncResult{Deferred: resp.Deferred}
	for _, action := range resp.Actions {
		if err := s.applyDirectoryAction(ctx, tree, action, result); err != nil {
			return nil, err
		}
	}

	if result.Complete() {
		if err := s.metadata.SaveLastSync(ctx, s.now()); err != nil {
			s.logger.Warn("Failed to save last sync time", "error", err)
		}
	}

	s.logger.Info("Synchronization completed",
		"directories", result.Directories,
		"acknowledged", result.Acknowledged,
		"uploaded", result.Uploaded,
		"removed", result.Removed,
		"renamed", result.Renamed,
		"pending", len(result.Pending),
		"deferred", result.Deferred)

	return result, nil
}

func (s *service) applyDirectoryAction(ctx context.Context, tree *scan.Tree, a api.Action, result *SyncResult) error {
	dirPath := models.NormalizeDirPath(actionPath(a))

	switch engine.ActionType(a.Type) {
	case engine.ActionAcknowledge:
		if a.NewVersion == nil {
			if err := s.state.DeleteDirectory(ctx, dirPath); err != nil {
				return fmt.Errorf("failed to drop original directory %s: %w", dirPath, err)
			}
		} else {
			dir := models.DirectoryVersion{DirPath: dirPath, MD5: a.NewVersion.Checksum}
			if err := s.saveDirectoryState(ctx, dir, tree.Files(dirPath)); err != nil {
				return err
			}
		}
		result.Acknowledged++

	case engine.ActionSync:
		if !tree.Has(dirPath) {
			if err := s.fs.MkdirAll(dirPath, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
			}
		}
		if err := s.syncDirectory(ctx, dirPath, tree.Files(dirPath), result); err != nil {
			return err
		}

	case engine.ActionRemove:
		if dirPath == "/" {
			s.logger.Warn("Refusing to remove the root directory")
			result.pend(dirPath, a)
			return nil
		}
		if err := util.RemoveAll(s.fs, dirPath); err != nil {
			return fmt.Errorf("failed to remove directory %s: %w", dirPath, err)
		}
		if err := s.state.DeleteDirectory(ctx, dirPath); err != nil {
			return fmt.Errorf("failed to drop original directory %s: %w", dirPath, err)
		}
		s.logger.Info("Directory removed", "path", dirPath)
		result.Removed++

	default:
		s.reportUnapplied(dirPath, a)
		result.pend(dirPath, a)
	}
	return nil
}

// syncDirectory reconciles the files of one directory. The original directory
// version is stored only when every file action was applied.
func (s *service) syncDirectory(ctx context.Context, dirPath string, files []models.FileVersion, result *SyncResult) error {
	originals, err := s.state.ListFiles(ctx, dirPath)
	if err != nil {
		return fmt.Errorf("failed to get original files of %s: %w", dirPath, err)
	}

	resp, err := s.apiClient.SyncFiles(ctx, api.SyncFilesRequest{
		Path:             dirPath,
		OriginalVersions: fileVersions(originals),
		ClientVersions:   fileVersions(files),
		Diagnostics:      s.diagnostics,
	})
	if err != nil {
		if httpClient.IsStatus(err, http.StatusNotFound) {
			// директория еще не создана на сервере, например отложена бюджетом
			result.Pending = append(result.Pending, PendingAction{
				Path:   dirPath,
				Action: string(engine.ActionSync),
				Reason: err.Error(),
			})
			return nil
		}
		return err
	}
	s.logDiagnostics(dirPath, resp)

	pending := len(result.Pending)
	for _, action := range resp.Actions {
		if err := s.applyFileAction(ctx, dirPath, action, result); err != nil {
			return err
		}
	}
	if resp.Deferred {
		result.Deferred = true
	}
	result.Directories++

	if resp.Deferred || len(result.Pending) > pending {
		return nil
	}

	current, err := s.scanner.ScanDir(ctx, dirPath)
	if err != nil {
		return err
	}
	dir := models.DirectoryVersion{DirPath: dirPath, MD5: models.DirectoryChecksum(current)}
	if err := s.state.SaveDirectory(ctx, dir); err != nil {
		return fmt.Errorf("failed to save original directory %s: %w", dirPath, err)
	}
	return nil
}

func (s *service) applyFileAction(ctx context.Context, dirPath string, a api.Action, result *SyncResult) error {
	filePath := path.Join(dirPath, actionPath(a))

	switch engine.ActionType(a.Type) {
	case engine.ActionAcknowledge:
		var err error
		if a.NewVersion == nil {
			err = s.state.DeleteFile(ctx, dirPath, a.Version.Name)
		} else {
			err = s.state.SaveFile(ctx, dirPath, toFileVersion(a.NewVersion))
		}
		if err != nil {
			return fmt.Errorf("failed to acknowledge %s: %w", filePath, err)
		}
		result.Acknowledged++

	case engine.ActionUpload:
		file := toFileVersion(a.NewVersion)
		err := s.apiClient.Upload(ctx, api.UploadRequest{Path: dirPath, Name: file.Name, Checksum: file.MD5})
		if err != nil {
			return err
		}
		if err := s.state.SaveFile(ctx, dirPath, file); err != nil {
			return fmt.Errorf("failed to save original file %s: %w", filePath, err)
		}
		s.logger.Info("File uploaded", "path", filePath, "checksum", file.MD5)
		result.Uploaded++

	case engine.ActionRemove:
		if err := s.fs.Remove(filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", filePath, err)
		}
		if err := s.state.DeleteFile(ctx, dirPath, a.Version.Name); err != nil {
			return fmt.Errorf("failed to drop original file %s: %w", filePath, err)
		}
		s.logger.Info("File removed", "path", filePath)
		result.Removed++

	case engine.ActionEdit:
		target := path.Join(dirPath, a.NewVersion.Name)
		if err := s.fs.Rename(filePath, target); err != nil {
			return fmt.Errorf("failed to rename %s: %w", filePath, err)
		}
		s.logger.Info("File renamed", "from", filePath, "to", target, "conflict", a.Parameters[engine.ParamConflict])
		result.Renamed++

	default:
		s.reportUnapplied(filePath, a)
		result.pend(filePath, a)
	}
	return nil
}

func (s *service) reportUnapplied(p string, a api.Action) {
	if engine.ActionType(a.Type) != engine.ActionError {
		s.logger.Info("Action left for a later pass", "path", p, "action", a.Type)
		return
	}

	level := slog.LevelWarn
	if a.Parameters[engine.ParamQuiet] == "true" {
		level = slog.LevelDebug
	}
	s.logger.Log(context.Background(), level, "Path cannot be synchronized",
		"path", p,
		"error", a.Parameters[engine.ParamError],
		"reason", a.Parameters[engine.ParamReason])
}

// saveDirectoryState replaces the original state of a directory with the
// given version and files.
func (s *service) saveDirectoryState(ctx context.Context, dir models.DirectoryVersion, files []models.FileVersion) error {
	stored, err := s.state.ListFiles(ctx, dir.DirPath)
	if err != nil {
		return fmt.Errorf("failed to get original files of %s: %w", dir.DirPath, err)
	}

	keep := make(map[string]struct{}, len(files))
	for _, f := range files {
		keep[f.Name] = struct{}{}
		if err := s.state.SaveFile(ctx, dir.DirPath, f); err != nil {
			return fmt.Errorf("failed to save original file %s: %w", path.Join(dir.DirPath, f.Name), err)
		}
	}
	for _, f := range stored {
		if _, ok := keep[f.Name]; ok {
			continue
		}
		if err := s.state.DeleteFile(ctx, dir.DirPath, f.Name); err != nil {
			return fmt.Errorf("failed to drop original file %s: %w", path.Join(dir.DirPath, f.Name), err)
		}
	}

	if err := s.state.SaveDirectory(ctx, dir); err != nil {
		return fmt.Errorf("failed to save original directory %s: %w", dir.DirPath, err)
	}
	return nil
}

func (s *service) logDiagnostics(scope string, resp *api.SyncResponse) {
	if resp.Diagnostics == "" {
		return
	}
	s.logger.Debug("Server diagnostics", "scope", scope, "trace", resp.Diagnostics)
}
