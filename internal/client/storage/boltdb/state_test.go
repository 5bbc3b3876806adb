package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/drivesync/internal/client/storage"
	"github.com/iudanet/drivesync/internal/models"
)

func TestDirectories_SaveListDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	dirs, err := store.ListDirectories(ctx)
	require.NoError(t, err)
	assert.Empty(t, dirs)

	for _, d := range []models.DirectoryVersion{
		{DirPath: "/docs/work", MD5: "w"},
		{DirPath: "/", MD5: "r"},
		{DirPath: "/docs", MD5: "d"},
		{DirPath: "/docs2", MD5: "d2"},
	} {
		require.NoError(t, store.SaveDirectory(ctx, d))
	}
	// перезапись версии
	require.NoError(t, store.SaveDirectory(ctx, models.DirectoryVersion{DirPath: "/docs", MD5: "d-new"}))

	dirs, err = store.ListDirectories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.DirectoryVersion{
		{DirPath: "/", MD5: "r"},
		{DirPath: "/docs", MD5: "d-new"},
		{DirPath: "/docs/work", MD5: "w"},
		{DirPath: "/docs2", MD5: "d2"},
	}, dirs)

	require.NoError(t, store.SaveFile(ctx, "/docs/work", models.FileVersion{Name: "a", MD5: "1"}))
	require.NoError(t, store.SaveFile(ctx, "/docs2", models.FileVersion{Name: "b", MD5: "2"}))

	require.NoError(t, store.DeleteDirectory(ctx, "/docs"))

	dirs, err = store.ListDirectories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.DirectoryVersion{
		{DirPath: "/", MD5: "r"},
		{DirPath: "/docs2", MD5: "d2"},
	}, dirs, "subtree is removed, sibling with common prefix is kept")

	files, err := store.ListFiles(ctx, "/docs/work")
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = store.ListFiles(ctx, "/docs2")
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestFiles_SaveListDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveFile(ctx, "/docs", models.FileVersion{Name: "b.txt", MD5: "2"}))
	require.NoError(t, store.SaveFile(ctx, "/docs", models.FileVersion{Name: "a.txt", MD5: "1"}))
	require.NoError(t, store.SaveFile(ctx, "/other", models.FileVersion{Name: "a.txt", MD5: "x"}))

	files, err := store.ListFiles(ctx, "/docs")
	require.NoError(t, err)
	assert.Equal(t, []models.FileVersion{{Name: "a.txt", MD5: "1"}, {Name: "b.txt", MD5: "2"}}, files)

	require.NoError(t, store.DeleteFile(ctx, "/docs", "a.txt"))
	require.NoError(t, store.DeleteFile(ctx, "/docs", "missing"))
	require.NoError(t, store.DeleteFile(ctx, "/nowhere", "a.txt"))

	files, err = store.ListFiles(ctx, "/docs")
	require.NoError(t, err)
	assert.Equal(t, []models.FileVersion{{Name: "b.txt", MD5: "2"}}, files)

	files, err = store.ListFiles(ctx, "/other")
	require.NoError(t, err)
	assert.Equal(t, []models.FileVersion{{Name: "a.txt", MD5: "x"}}, files)
}

func TestDeleteDirectory_Root(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveDirectory(ctx, models.DirectoryVersion{DirPath: "/", MD5: "r"}))
	require.NoError(t, store.SaveDirectory(ctx, models.DirectoryVersion{DirPath: "/a", MD5: "a"}))
	require.NoError(t, store.SaveFile(ctx, "/", models.FileVersion{Name: "x", MD5: "1"}))

	require.NoError(t, store.DeleteDirectory(ctx, "/"))

	dirs, err := store.ListDirectories(ctx)
	require.NoError(t, err)
	assert.Empty(t, dirs)

	files, err := store.ListFiles(ctx, "/")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestState_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketDirectories); err != nil {
			return err
		}
		return tx.DeleteBucket(bucketFiles)
	})
	require.NoError(t, err)

	_, err = store.ListDirectories(ctx)
	assert.ErrorIs(t, err, storage.ErrBucketMissing)
	assert.ErrorIs(t, store.SaveDirectory(ctx, models.DirectoryVersion{DirPath: "/"}), storage.ErrBucketMissing)
	assert.ErrorIs(t, store.DeleteDirectory(ctx, "/"), storage.ErrBucketMissing)
	_, err = store.ListFiles(ctx, "/")
	assert.ErrorIs(t, err, storage.ErrBucketMissing)
	assert.ErrorIs(t, store.SaveFile(ctx, "/", models.FileVersion{Name: "a"}), storage.ErrBucketMissing)
	assert.ErrorIs(t, store.DeleteFile(ctx, "/", "a"), storage.ErrBucketMissing)
}

func TestInSubtree(t *testing.T) {
	tests := []struct {
		key  string
		dir  string
		want bool
	}{
		{key: "/docs", dir: "/docs", want: true},
		{key: "/docs/a", dir: "/docs", want: true},
		{key: "/docs2", dir: "/docs", want: false},
		{key: "/doc", dir: "/docs", want: false},
		{key: "/anything", dir: "/", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.key+" in "+tt.dir, func(t *testing.T) {
			assert.Equal(t, tt.want, inSubtree([]byte(tt.key), tt.dir))
		})
	}
}
