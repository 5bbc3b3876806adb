package storage

import (
	"context"

	"github.com/iudanet/drivesync/internal/models"
)

//go:generate moq -out state_mock.go . StateStorage

// StateStorage хранит оригинальные версии: состояние директорий и файлов на
// момент последней успешной синхронизации
type StateStorage interface {
	// ListDirectories returns original directory versions sorted by path
	ListDirectories(ctx context.Context) ([]models.DirectoryVersion, error)

	// SaveDirectory stores the original version of a directory
	SaveDirectory(ctx context.Context, dir models.DirectoryVersion) error

	// DeleteDirectory drops the directory, its subdirectories and their files
	DeleteDirectory(ctx context.Context, dirPath string) error

	// ListFiles returns original file versions of a directory sorted by name
	ListFiles(ctx context.Context, dirPath string) ([]models.FileVersion, error)

	// SaveFile stores the original version of a file
	SaveFile(ctx context.Context, dirPath string, file models.FileVersion) error

	// DeleteFile drops the original version of a file, missing files are ignored
	DeleteFile(ctx context.Context, dirPath, name string) error
}
