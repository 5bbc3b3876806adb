package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/drivesync/internal/models"
	"github.com/iudanet/drivesync/internal/server/storage"
)

// ListDirectories retrieves all directory versions ordered by path
func (s *Storage) ListDirectories(ctx context.Context, userID, contextID int) ([]models.DirectoryVersion, error) {
	query := `
		SELECT path, checksum
		FROM directory_versions
		WHERE context_id = ? AND user_id = ?
		ORDER BY path
	`

	rows, err := s.db.QueryContext(ctx, query, contextID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query directories: %w", err)
	}
	defer rows.Close()

	dirs := make([]models.DirectoryVersion, 0)
	for rows.Next() {
		var dir models.DirectoryVersion
		if err := rows.Scan(&dir.DirPath, &dir.MD5); err != nil {
			return nil, fmt.Errorf("failed to scan directory: %w", err)
		}
		dirs = append(dirs, dir)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate directories: %w", err)
	}

	return dirs, nil
}

// GetDirectory retrieves a single directory version
// Returns ErrDirectoryNotFound if directory doesn't exist
func (s *Storage) GetDirectory(ctx context.Context, userID, contextID int, path string) (*models.DirectoryVersion, error) {
	query := `
		SELECT path, checksum
		FROM directory_versions
		WHERE context_id = ? AND user_id = ? AND path = ?
	`

	dir := &models.DirectoryVersion{}
	err := s.db.QueryRowContext(ctx, query, contextID, userID, path).Scan(&dir.DirPath, &dir.MD5)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDirectoryNotFound
		}
		return nil, fmt.Errorf("failed to get directory: %w", err)
	}

	return dir, nil
}

// CreateDirectory creates an empty directory if it doesn't exist yet
func (s *Storage) CreateDirectory(ctx context.Context, userID, contextID int, path string) (bool, error) {
	query := `
		INSERT INTO directory_versions (context_id, user_id, path, checksum, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (context_id, user_id, path) DO NOTHING
	`

	res, err := s.db.ExecContext(ctx, query, contextID, userID, path, models.EmptyChecksum, time.Now().Unix())
	if err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return n > 0, nil
}

// DeleteDirectory removes the directory and everything below it.
// Файлы удаляются каскадно через внешний ключ.
func (s *Storage) DeleteDirectory(ctx context.Context, userID, contextID int, path string) error {
	query := `
		DELETE FROM directory_versions
		WHERE context_id = ? AND user_id = ? AND (path = ? OR path LIKE ? ESCAPE '\')
	`

	prefix := escapeLike(strings.TrimSuffix(path, "/")) + "/%"
	res, err := s.db.ExecContext(ctx, query, contextID, userID, path, prefix)
	if err != nil {
		return fmt.Errorf("failed to delete directory: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if n == 0 {
		return storage.ErrDirectoryNotFound
	}

	return nil
}

// ListFiles retrieves file versions of a directory ordered by name
// Returns ErrDirectoryNotFound if directory doesn't exist
func (s *Storage) ListFiles(ctx context.Context, userID, contextID int, dirPath string) ([]models.FileVersion, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := directoryExists(ctx, tx, userID, contextID, dirPath); err != nil {
		return nil, err
	}

	files, err := listFiles(ctx, tx, userID, contextID, dirPath)
	if err != nil {
		return nil, err
	}

	return files, tx.Commit()
}

// SaveFile creates or updates a file version and refreshes the directory checksum
// Returns ErrDirectoryNotFound if directory doesn't exist
func (s *Storage) SaveFile(ctx context.Context, userID, contextID int, dirPath string, file models.FileVersion) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := directoryExists(ctx, tx, userID, contextID, dirPath); err != nil {
			return err
		}

		query := `
			INSERT INTO file_versions (context_id, user_id, dir_path, name, checksum, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (context_id, user_id, dir_path, name)
			DO UPDATE SET checksum = excluded.checksum, updated_at = excluded.updated_at
		`
		if _, err := tx.ExecContext(ctx, query, contextID, userID, dirPath, file.Name, file.MD5, time.Now().Unix()); err != nil {
			return fmt.Errorf("failed to save file: %w", err)
		}

		return refreshChecksum(ctx, tx, userID, contextID, dirPath)
	})
}

// DeleteFile removes a file version and refreshes the directory checksum
// Returns ErrFileNotFound if file doesn't exist
func (s *Storage) DeleteFile(ctx context.Context, userID, contextID int, dirPath, name string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			DELETE FROM file_versions
			WHERE context_id = ? AND user_id = ? AND dir_path = ? AND name = ?
		`
		res, err := tx.ExecContext(ctx, query, contextID, userID, dirPath, name)
		if err != nil {
			return fmt.Errorf("failed to delete file: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if n == 0 {
			return storage.ErrFileNotFound
		}

		return refreshChecksum(ctx, tx, userID, contextID, dirPath)
	})
}

// Ping checks the database connection
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func directoryExists(ctx context.Context, tx *sql.Tx, userID, contextID int, path string) error {
	query := `
		SELECT 1 FROM directory_versions
		WHERE context_id = ? AND user_id = ? AND path = ?
	`

	var one int
	if err := tx.QueryRowContext(ctx, query, contextID, userID, path).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrDirectoryNotFound
		}
		return fmt.Errorf("failed to check directory: %w", err)
	}
	return nil
}

func listFiles(ctx context.Context, tx *sql.Tx, userID, contextID int, dirPath string) ([]models.FileVersion, error) {
	query := `
		SELECT name, checksum
		FROM file_versions
		WHERE context_id = ? AND user_id = ? AND dir_path = ?
		ORDER BY name
	`

	rows, err := tx.QueryContext(ctx, query, contextID, userID, dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	files := make([]models.FileVersion, 0)
	for rows.Next() {
		var f models.FileVersion
		if err := rows.Scan(&f.Name, &f.MD5); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate files: %w", err)
	}

	return files, nil
}

// refreshChecksum пересчитывает checksum директории по текущим версиям файлов
func refreshChecksum(ctx context.Context, tx *sql.Tx, userID, contextID int, dirPath string) error {
	files, err := listFiles(ctx, tx, userID, contextID, dirPath)
	if err != nil {
		return err
	}

	query := `
		UPDATE directory_versions
		SET checksum = ?, updated_at = ?
		WHERE context_id = ? AND user_id = ? AND path = ?
	`
	if _, err := tx.ExecContext(ctx, query, models.DirectoryChecksum(files), time.Now().Unix(), contextID, userID, dirPath); err != nil {
		return fmt.Errorf("failed to update directory checksum: %w", err)
	}
	return nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
