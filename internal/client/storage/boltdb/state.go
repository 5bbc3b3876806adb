package boltdb

import (
	"bytes"
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/drivesync/internal/client/storage"
	"github.com/iudanet/drivesync/internal/models"
)

// ListDirectories returns original directory versions sorted by path
func (s *Storage) ListDirectories(ctx context.Context) ([]models.DirectoryVersion, error) {
	var dirs []models.DirectoryVersion

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDirectories)
		if bucket == nil {
			return fmt.Errorf("directories %w", storage.ErrBucketMissing)
		}

		// bbolt хранит ключи в лексикографическом порядке
		return bucket.ForEach(func(k, v []byte) error {
			dirs = append(dirs, models.DirectoryVersion{DirPath: string(k), MD5: string(v)})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list directories: %w", err)
	}

	return dirs, nil
}

// SaveDirectory stores the original version of a directory
func (s *Storage) SaveDirectory(ctx context.Context, dir models.DirectoryVersion) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDirectories)
		if bucket == nil {
			return fmt.Errorf("directories %w", storage.ErrBucketMissing)
		}
		return bucket.Put([]byte(dir.DirPath), []byte(dir.MD5))
	})
	if err != nil {
		return fmt.Errorf("failed to save directory %s: %w", dir.DirPath, err)
	}
	return nil
}

// DeleteDirectory drops the directory, its subdirectories and their files
func (s *Storage) DeleteDirectory(ctx context.Context, dirPath string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		dirs := tx.Bucket(bucketDirectories)
		files := tx.Bucket(bucketFiles)
		if dirs == nil || files == nil {
			return storage.ErrBucketMissing
		}

		for _, b := range []*bbolt.Bucket{dirs, files} {
			var keys [][]byte
			c := b.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				if inSubtree(k, dirPath) {
					keys = append(keys, bytes.Clone(k))
				}
			}

			// удаление вне итерации курсора
			for _, k := range keys {
				var err error
				if b == files {
					err = b.DeleteBucket(k)
				} else {
					err = b.Delete(k)
				}
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete directory %s: %w", dirPath, err)
	}
	return nil
}

// ListFiles returns original file versions of a directory sorted by name
func (s *Storage) ListFiles(ctx context.Context, dirPath string) ([]models.FileVersion, error) {
	var files []models.FileVersion

	err := s.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketFiles)
		if root == nil {
			return fmt.Errorf("files %w", storage.ErrBucketMissing)
		}

		bucket := root.Bucket([]byte(dirPath))
		if bucket == nil {
			// директория без сохраненных файлов
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			files = append(files, models.FileVersion{Name: string(k), MD5: string(v)})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files of %s: %w", dirPath, err)
	}

	return files, nil
}

// SaveFile stores the original version of a file
func (s *Storage) SaveFile(ctx context.Context, dirPath string, file models.FileVersion) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketFiles)
		if root == nil {
			return fmt.Errorf("files %w", storage.ErrBucketMissing)
		}

		bucket, err := root.CreateBucketIfNotExists([]byte(dirPath))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(file.Name), []byte(file.MD5))
	})
	if err != nil {
		return fmt.Errorf("failed to save file %s in %s: %w", file.Name, dirPath, err)
	}
	return nil
}

// DeleteFile drops the original version of a file, missing files are ignored
func (s *Storage) DeleteFile(ctx context.Context, dirPath, name string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketFiles)
		if root == nil {
			return fmt.Errorf("files %w", storage.ErrBucketMissing)
		}

		bucket := root.Bucket([]byte(dirPath))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(name))
	})
	if err != nil {
		return fmt.Errorf("failed to delete file %s in %s: %w", name, dirPath, err)
	}
	return nil
}

// inSubtree сообщает, лежит ли key в поддереве dirPath (включая саму директорию)
func inSubtree(key []byte, dirPath string) bool {
	k := string(key)
	if k == dirPath || dirPath == "/" {
		return true
	}
	return len(k) > len(dirPath) && k[:len(dirPath)] == dirPath && k[len(dirPath)] == '/'
}
