package storage

import (
	"context"

	"github.com/iudanet/drivesync/internal/models"
)

//go:generate moq -out versions_mock.go . VersionStorage

// VersionStorage defines interface for server-side directory and file versions.
// All versions are scoped by user and context.
type VersionStorage interface {
	// ListDirectories retrieves all directory versions ordered by path
	// Returns empty slice if no directories found
	ListDirectories(ctx context.Context, userID, contextID int) ([]models.DirectoryVersion, error)

	// GetDirectory retrieves a single directory version
	// Returns ErrDirectoryNotFound if directory doesn't exist
	GetDirectory(ctx context.Context, userID, contextID int, path string) (*models.DirectoryVersion, error)

	// CreateDirectory creates an empty directory if it doesn't exist yet
	// Returns true if directory was created
	CreateDirectory(ctx context.Context, userID, contextID int, path string) (bool, error)

	// DeleteDirectory removes the directory, its subdirectories and their files
	// Returns ErrDirectoryNotFound if directory doesn't exist
	DeleteDirectory(ctx context.Context, userID, contextID int, path string) error

	// ListFiles retrieves file versions of a directory ordered by name
	// Returns ErrDirectoryNotFound if directory doesn't exist
	ListFiles(ctx context.Context, userID, contextID int, dirPath string) ([]models.FileVersion, error)

	// SaveFile creates or updates a file version and refreshes the directory checksum
	// Returns ErrDirectoryNotFound if directory doesn't exist
	SaveFile(ctx context.Context, userID, contextID int, dirPath string, file models.FileVersion) error

	// DeleteFile removes a file version and refreshes the directory checksum
	// Returns ErrFileNotFound if file doesn't exist
	DeleteFile(ctx context.Context, userID, contextID int, dirPath, name string) error

	// Ping checks that storage is reachable
	Ping(ctx context.Context) error
}
