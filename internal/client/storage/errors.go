package storage

import "errors"

// ErrBucketMissing indicates a corrupted state database
var ErrBucketMissing = errors.New("bucket not found")
