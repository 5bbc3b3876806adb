package models

import (
	"crypto/md5"
	"encoding/hex"
	"path"
	"slices"
	"strings"
)

// Version описывает версию синхронизируемого объекта.
// Две версии с одинаковым checksum считаются идентичными по содержимому.
type Version interface {
	// Path возвращает ключ версии в рамках одного прохода синхронизации
	Path() string
	// Checksum возвращает отпечаток содержимого (md5 в hex)
	Checksum() string
}

// FileVersion представляет версию файла внутри директории.
type FileVersion struct {
	Name string `json:"name"`     // Name имя файла внутри директории
	MD5  string `json:"checksum"` // MD5 контрольная сумма содержимого
}

// Path returns the file name, which is the key of a file within its directory.
func (v FileVersion) Path() string { return v.Name }

// Checksum returns the content checksum.
func (v FileVersion) Checksum() string { return v.MD5 }

// DirectoryVersion представляет версию директории.
// Checksum директории вычисляется из версий файлов внутри нее (см. DirectoryChecksum).
type DirectoryVersion struct {
	DirPath string `json:"path"`     // DirPath абсолютный путь директории, начинается с "/"
	MD5     string `json:"checksum"` // MD5 контрольная сумма содержимого директории
}

// Path returns the normalized directory path.
func (v DirectoryVersion) Path() string { return v.DirPath }

// Checksum returns the directory checksum.
func (v DirectoryVersion) Checksum() string { return v.MD5 }

// EmptyChecksum is the md5 of no content, used for empty directories.
const EmptyChecksum = "d41d8cd98f00b204e9800998ecf8427e"

// DirectoryChecksum вычисляет checksum директории из версий ее файлов.
// Порядок входных версий не важен: файлы сортируются по имени.
func DirectoryChecksum(files []FileVersion) string {
	sorted := slices.Clone(files)
	slices.SortFunc(sorted, func(a, b FileVersion) int {
		return strings.Compare(a.Name, b.Name)
	})

	h := md5.New()
	for _, f := range sorted {
		h.Write([]byte(f.Name))
		h.Write([]byte{0})
		h.Write([]byte(f.MD5))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// NormalizeDirPath приводит путь директории к виду "/a/b" (без завершающего слэша).
func NormalizeDirPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
