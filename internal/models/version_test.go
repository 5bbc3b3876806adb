package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryChecksum(t *testing.T) {
	a := []FileVersion{{Name: "a.txt", MD5: "1"}, {Name: "b.txt", MD5: "2"}}
	b := []FileVersion{{Name: "b.txt", MD5: "2"}, {Name: "a.txt", MD5: "1"}}

	assert.Equal(t, DirectoryChecksum(a), DirectoryChecksum(b), "order must not matter")
	assert.NotEqual(t, DirectoryChecksum(a), DirectoryChecksum([]FileVersion{{Name: "a.txt", MD5: "1"}}))
	assert.NotEqual(t, DirectoryChecksum(a), DirectoryChecksum([]FileVersion{{Name: "a.txt", MD5: "1"}, {Name: "b.txt", MD5: "3"}}))
	assert.Equal(t, EmptyChecksum, DirectoryChecksum(nil))
	assert.Equal(t, "a.txt", a[0].Name, "input must not be reordered")
}

func TestNormalizeDirPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "/"},
		{in: "/", want: "/"},
		{in: "docs", want: "/docs"},
		{in: "/docs/", want: "/docs"},
		{in: "/docs//work/../notes", want: "/docs/notes"},
		{in: `docs\work`, want: "/docs/work"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirPath(tt.in))
		})
	}
}

func TestVersionAccessors(t *testing.T) {
	var v Version = FileVersion{Name: "a", MD5: "x"}
	assert.Equal(t, "a", v.Path())
	assert.Equal(t, "x", v.Checksum())

	v = DirectoryVersion{DirPath: "/a", MD5: "y"}
	assert.Equal(t, "/a", v.Path())
	assert.Equal(t, "y", v.Checksum())
}
