package storage

import "errors"

// Common storage errors
var (
	// ErrDirectoryNotFound indicates that directory was not found in storage
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrFileNotFound indicates that file was not found in its directory
	ErrFileNotFound = errors.New("file not found")
)
