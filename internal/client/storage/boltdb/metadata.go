package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/drivesync/internal/client/storage"
)

const (
	keyLastSync = "last_sync"
	keyDeviceID = "device_id"
)

// SaveLastSync saves the time of the last completed sync
func (s *Storage) SaveLastSync(ctx context.Context, at time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata %w", storage.ErrBucketMissing)
		}

		// Храним unix nano в big endian
		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, uint64(at.UnixNano()))

		if err := bucket.Put([]byte(keyLastSync), value); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSync returns the time of the last completed sync
// Returns zero time if no sync has been performed yet
func (s *Storage) GetLastSync(ctx context.Context) (time.Time, error) {
	var at time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata %w", storage.ErrBucketMissing)
		}

		value := bucket.Get([]byte(keyLastSync))
		if value == nil {
			return nil
		}

		at = time.Unix(0, int64(binary.BigEndian.Uint64(value)))
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return at, nil
}

// DeviceID returns the persistent device identifier, generating it on first use
func (s *Storage) DeviceID(ctx context.Context) (string, error) {
	var id string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata %w", storage.ErrBucketMissing)
		}

		if value := bucket.Get([]byte(keyDeviceID)); value != nil {
			id = string(value)
			return nil
		}

		id = uuid.NewString()
		return bucket.Put([]byte(keyDeviceID), []byte(id))
	})
	if err != nil {
		return "", fmt.Errorf("failed to get device id: %w", err)
	}

	return id, nil
}
