// Package drive implements file and directory synchronization on top of the
// reconciliation engine in package sync.
package drive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/drivesync/internal/metrics"
	"github.com/iudanet/drivesync/internal/models"
	"github.com/iudanet/drivesync/internal/server/storage"
	"github.com/iudanet/drivesync/internal/sync"
	"github.com/iudanet/drivesync/internal/validation"
)

const (
	kindFiles   = "files"
	kindFolders = "folders"
)

// Limits bounds the non-trivial actions of a single pass.
type Limits struct {
	MaxFileActions      int
	MaxDirectoryActions int
}

// Result is the outcome of a sync pass as returned to the client.
type Result[T models.Version] struct {
	Actions     []sync.Action[T]
	Diagnostics string
	Deferred    bool
}

// Service runs sync passes against the server-side version storage.
type Service struct {
	store  storage.VersionStorage
	warn   *sync.WarnLogger
	events *EventBuffer
	logger *slog.Logger
	limits Limits
}

// NewService creates a drive service. events may be nil.
func NewService(store storage.VersionStorage, warn *sync.WarnLogger, events *EventBuffer, limits Limits, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		warn:   warn,
		events: events,
		logger: logger,
		limits: limits,
	}
}

// SyncFolders runs a directory sync pass.
func (s *Service) SyncFolders(ctx context.Context, session *sync.Session, original, client []models.DirectoryVersion) (*Result[models.DirectoryVersion], error) {
	start := time.Now()

	server, err := s.store.ListDirectories(ctx, session.UserID, session.ContextID)
	if err != nil {
		return nil, s.fail(kindFolders, start, sync.ErrDataUnavailable.Wrap(err))
	}

	mapper, err := sync.NewVersionMapper(normalizeDirs(original), normalizeDirs(client), server)
	if err != nil {
		return nil, s.fail(kindFolders, start, err)
	}

	session.Trace("Folder sync started", "directories", mapper.Len())
	processor := NewDirectoryProcessor(session, s.warn, s.limits.MaxDirectoryActions)
	result, err := sync.NewSynchronizer(session, mapper, processor).Sync(ctx)
	if err != nil {
		return nil, s.fail(kindFolders, start, err)
	}

	for _, action := range result.ServerActions() {
		if err := s.applyDirectoryAction(ctx, session, action); err != nil {
			return nil, s.fail(kindFolders, start, err)
		}
	}

	return finish(kindFolders, start, session, result), nil
}

// SyncFiles runs a file sync pass for the directory dirPath, which must exist
// on the server.
func (s *Service) SyncFiles(ctx context.Context, session *sync.Session, dirPath string, original, client []models.FileVersion) (*Result[models.FileVersion], error) {
	start := time.Now()

	dirPath = models.NormalizeDirPath(dirPath)
	if err := validation.ValidateDirPath(dirPath); err != nil {
		return nil, s.fail(kindFiles, start, sync.ErrInvalidName.Withf("%s", dirPath).Wrap(err))
	}

	server, err := s.store.ListFiles(ctx, session.UserID, session.ContextID, dirPath)
	if err != nil {
		if errors.Is(err, storage.ErrDirectoryNotFound) {
			return nil, s.fail(kindFiles, start, sync.ErrNotFound.Withf("directory %s", dirPath))
		}
		return nil, s.fail(kindFiles, start, sync.ErrDataUnavailable.Wrap(err))
	}

	mapper, err := sync.NewVersionMapper(original, client, server)
	if err != nil {
		return nil, s.fail(kindFiles, start, err)
	}

	session.Trace("File sync started", "dir", dirPath, "files", mapper.Len())
	processor := NewFileProcessor(session, s.warn, dirPath, s.limits.MaxFileActions)
	result, err := sync.NewSynchronizer(session, mapper, processor).Sync(ctx)
	if err != nil {
		return nil, s.fail(kindFiles, start, err)
	}

	for _, action := range result.ServerActions() {
		if err := s.applyFileAction(ctx, session, dirPath, action); err != nil {
			return nil, s.fail(kindFiles, start, err)
		}
	}

	return finish(kindFiles, start, session, result), nil
}

// Upload registers an uploaded file version in dirPath. The directory
// checksum is refreshed by the storage.
func (s *Service) Upload(ctx context.Context, session *sync.Session, dirPath string, file models.FileVersion) error {
	dirPath = models.NormalizeDirPath(dirPath)
	if err := validation.ValidateFileName(file.Name); err != nil {
		return sync.ErrInvalidName.Withf("%s", file.Name).Wrap(err)
	}
	if file.MD5 == "" {
		return sync.ErrCorruptVersion.Withf("empty checksum for %s", file.Name)
	}

	err := s.store.SaveFile(ctx, session.UserID, session.ContextID, dirPath, file)
	if err != nil {
		if errors.Is(err, storage.ErrDirectoryNotFound) {
			return sync.ErrNotFound.Withf("directory %s", dirPath)
		}
		return sync.ErrDataUnavailable.Wrap(err)
	}

	session.Logger().Info("File version registered", "dir", dirPath, "name", file.Name, "checksum", file.MD5)
	s.notify(session, dirPath)
	return nil
}

func (s *Service) applyDirectoryAction(ctx context.Context, session *sync.Session, action sync.Action[models.DirectoryVersion]) error {
	switch action.Type {
	case sync.ActionRemove:
		p := action.Path()
		err := s.store.DeleteDirectory(ctx, session.UserID, session.ContextID, p)
		if err != nil && !errors.Is(err, storage.ErrDirectoryNotFound) {
			return sync.ErrDataUnavailable.Wrap(fmt.Errorf("remove directory %s: %w", p, err))
		}
		session.Logger().Info("Directory removed", "path", p)
		s.notify(session, parentDir(p))
	case sync.ActionSync:
		p := action.Path()
		created, err := s.store.CreateDirectory(ctx, session.UserID, session.ContextID, p)
		if err != nil {
			return sync.ErrDataUnavailable.Wrap(fmt.Errorf("create directory %s: %w", p, err))
		}
		if created {
			session.Logger().Info("Directory created", "path", p)
			s.notify(session, p)
		}
	default:
		return fmt.Errorf("unsupported server action %s for directory %s", action.Type, action.Path())
	}
	return nil
}

func (s *Service) applyFileAction(ctx context.Context, session *sync.Session, dirPath string, action sync.Action[models.FileVersion]) error {
	switch action.Type {
	case sync.ActionRemove:
		name := action.Path()
		err := s.store.DeleteFile(ctx, session.UserID, session.ContextID, dirPath, name)
		if err != nil && !errors.Is(err, storage.ErrFileNotFound) {
			return sync.ErrDataUnavailable.Wrap(fmt.Errorf("remove file %s/%s: %w", dirPath, name, err))
		}
		session.Logger().Info("File removed", "dir", dirPath, "name", name)
		s.notify(session, dirPath)
	default:
		return fmt.Errorf("unsupported server action %s for file %s", action.Type, action.Path())
	}
	return nil
}

func (s *Service) notify(session *sync.Session, dirPath string) {
	if s.events == nil {
		return
	}
	s.events.Add(session.ContextID, session.UserID, dirPath)
}

func (s *Service) fail(kind string, start time.Time, err error) error {
	metrics.SyncPassObserve(kind, "error", time.Since(start))
	s.logger.Error("Sync pass failed", "kind", kind, "error", err)
	return err
}

func finish[T models.Version](kind string, start time.Time, session *sync.Session, result *sync.IntermediateSyncResult[T]) *Result[T] {
	for _, a := range result.ServerActions() {
		metrics.ActionInc(kind, "server", string(a.Type))
	}
	for _, a := range result.ClientActions() {
		metrics.ActionInc(kind, "client", string(a.Type))
	}

	outcome := "ok"
	if result.Deferred() {
		outcome = "deferred"
	}
	metrics.SyncPassObserve(kind, outcome, time.Since(start))

	return &Result[T]{
		Actions:     result.ClientActions(),
		Diagnostics: session.Diagnostics(),
		Deferred:    result.Deferred(),
	}
}

func normalizeDirs(dirs []models.DirectoryVersion) []models.DirectoryVersion {
	out := make([]models.DirectoryVersion, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, models.DirectoryVersion{DirPath: models.NormalizeDirPath(d.DirPath), MD5: d.MD5})
	}
	return out
}

func parentDir(p string) string {
	i := strings.LastIndex(p, "/")
	if i <= 0 {
		return "/"
	}
	return p[:i]
}

func observeWarning(level slog.Level) {
	metrics.WarningInc(strings.ToLower(level.String()))
}

func quiet(level slog.Level) string {
	return strconv.FormatBool(level < slog.LevelWarn)
}
