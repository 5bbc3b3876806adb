// Package scan builds the current client versions of a local tree.
package scan

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/iudanet/drivesync/internal/models"
	"github.com/iudanet/drivesync/internal/validation"
)

// Tree is a snapshot of the local directories and their files.
type Tree struct {
	files       map[string][]models.FileVersion
	Directories []models.DirectoryVersion
}

// Files returns the file versions of dirPath, nil for an unknown directory.
func (t *Tree) Files(dirPath string) []models.FileVersion {
	return t.files[dirPath]
}

// Has reports whether the snapshot contains dirPath.
func (t *Tree) Has(dirPath string) bool {
	_, ok := t.files[dirPath]
	return ok
}

// Scanner walks a billy filesystem rooted at the synchronized folder.
type Scanner struct {
	fs     billy.Filesystem
	logger *slog.Logger
}

// New creates a scanner over fs.
func New(fs billy.Filesystem, logger *slog.Logger) *Scanner {
	return &Scanner{fs: fs, logger: logger}
}

// Scan walks the whole tree starting at "/". Ignored system files and
// non-regular files are skipped.
func (s *Scanner) Scan(ctx context.Context) (*Tree, error) {
	tree := &Tree{files: make(map[string][]models.FileVersion)}
	if err := s.walk(ctx, "/", tree); err != nil {
		return nil, err
	}

	slices.SortFunc(tree.Directories, func(a, b models.DirectoryVersion) int {
		return strings.Compare(a.DirPath, b.DirPath)
	})

	s.logger.Debug("Local tree scanned", "directories", len(tree.Directories))
	return tree, nil
}

// ScanDir returns the file versions of a single directory.
func (s *Scanner) ScanDir(ctx context.Context, dirPath string) ([]models.FileVersion, error) {
	files, _, err := s.readDir(ctx, dirPath)
	return files, err
}

func (s *Scanner) walk(ctx context.Context, dirPath string, tree *Tree) error {
	files, subdirs, err := s.readDir(ctx, dirPath)
	if err != nil {
		return err
	}

	tree.files[dirPath] = files
	tree.Directories = append(tree.Directories, models.DirectoryVersion{
		DirPath: dirPath,
		MD5:     models.DirectoryChecksum(files),
	})

	for _, sub := range subdirs {
		if err := s.walk(ctx, sub, tree); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) readDir(ctx context.Context, dirPath string) ([]models.FileVersion, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	entries, err := s.fs.ReadDir(dirPath)
	if err != nil {
		if dirPath == "/" && errors.Is(err, os.ErrNotExist) {
			// пустая файловая система без корня
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	files := make([]models.FileVersion, 0, len(entries))
	var subdirs []string
	for _, fi := range entries {
		name := fi.Name()
		if validation.IsIgnoredName(name) {
			continue
		}

		full := path.Join(dirPath, name)
		switch {
		case fi.IsDir():
			subdirs = append(subdirs, full)
		case fi.Mode().IsRegular():
			sum, err := Checksum(s.fs, full)
			if err != nil {
				return nil, nil, err
			}
			files = append(files, models.FileVersion{Name: name, MD5: sum})
		default:
			s.logger.Debug("Skipping non-regular file", "path", full, "mode", fi.Mode().String())
		}
	}

	slices.SortFunc(files, func(a, b models.FileVersion) int {
		return strings.Compare(a.Name, b.Name)
	})
	return files, subdirs, nil
}

// Checksum returns the hex md5 of a file's content.
func Checksum(fs billy.Filesystem, name string) (string, error) {
	f, err := fs.Open(name)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer func() {
		_ = f.Close()
	}()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
