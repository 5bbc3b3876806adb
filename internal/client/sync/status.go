package sync

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/iudanet/drivesync/internal/models"
	engine "github.com/iudanet/drivesync/internal/sync"
)

// LocalChange изменение локального пути относительно последней синхронизации
type LocalChange struct {
	Path   string
	Change engine.Change
	Dir    bool
}

// StatusReport содержит локальные изменения, еще не отправленные на сервер
type StatusReport struct {
	LastSync time.Time // нулевое время, если синхронизации не было
	Changes  []LocalChange
}

// Status compares the local folder with the stored original versions.
func (s *service) Status(ctx context.Context) (*StatusReport, error) {
	lastSync, err := s.metadata.GetLastSync(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get last sync time: %w", err)
	}

	tree, err := s.scanner.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan local folder: %w", err)
	}

	originals, err := s.state.ListDirectories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get original directories: %w", err)
	}

	dirs, err := engine.NewVersionMapper(originals, tree.Directories, nil)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{LastSync: lastSync}
	for dirPath, cmp := range dirs.All() {
		if cmp.ClientChange.IsNone() {
			continue
		}
		report.Changes = append(report.Changes, LocalChange{Path: dirPath, Change: cmp.ClientChange, Dir: true})
		if cmp.ClientChange == engine.ChangeDeleted {
			continue
		}

		changes, err := s.fileChanges(ctx, dirPath, tree.Files(dirPath))
		if err != nil {
			return nil, err
		}
		report.Changes = append(report.Changes, changes...)
	}
	return report, nil
}

func (s *service) fileChanges(ctx context.Context, dirPath string, files []models.FileVersion) ([]LocalChange, error) {
	originals, err := s.state.ListFiles(ctx, dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get original files of %s: %w", dirPath, err)
	}

	mapper, err := engine.NewVersionMapper(originals, files, nil)
	if err != nil {
		return nil, err
	}

	var changes []LocalChange
	for name, cmp := range mapper.All() {
		if cmp.ClientChange.IsNone() {
			continue
		}
		changes = append(changes, LocalChange{Path: path.Join(dirPath, name), Change: cmp.ClientChange})
	}
	return changes, nil
}
