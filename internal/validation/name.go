package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxNameLen максимальная длина имени файла или сегмента пути в байтах
	MaxNameLen = 255
	// MaxPathLen максимальная длина пути директории в байтах
	MaxPathLen = 4096
)

// InvalidNameChars символы, недопустимые в имени файла хотя бы на одной из клиентских платформ
const InvalidNameChars = `<>:"/\|?*`

// ReservedNamePattern зарезервированные имена устройств Windows (с расширением или без)
var ReservedNamePattern = regexp.MustCompile(`(?i)^(con|prn|aux|nul|com[1-9]|lpt[1-9])(\..*)?$`)

// ignoredNames служебные файлы операционных систем, которые не синхронизируются
var ignoredNames = map[string]struct{}{
	".ds_store":   {},
	"thumbs.db":   {},
	"desktop.ini": {},
	".drive-meta": {},
}

// ValidateFileName проверяет, что имя файла можно синхронизировать на всех платформах.
func ValidateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("file name cannot be empty")
	}

	if name == "." || name == ".." {
		return fmt.Errorf("file name %q is reserved", name)
	}

	if len(name) > MaxNameLen {
		return fmt.Errorf("file name must not exceed %d bytes", MaxNameLen)
	}

	if !utf8.ValidString(name) {
		return fmt.Errorf("file name must be valid UTF-8")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("file name must not contain control characters")
		}
		if strings.ContainsRune(InvalidNameChars, r) {
			return fmt.Errorf("file name must not contain %q", r)
		}
	}

	if strings.HasSuffix(name, " ") || strings.HasSuffix(name, ".") {
		return fmt.Errorf("file name must not end with a space or a dot")
	}

	if ReservedNamePattern.MatchString(name) {
		return fmt.Errorf("file name %q is reserved", name)
	}

	return nil
}

// ValidateDirPath проверяет нормализованный путь директории вида "/a/b".
// Корень "/" допустим, каждый сегмент проверяется как имя файла.
func ValidateDirPath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if len(p) > MaxPathLen {
		return fmt.Errorf("path must not exceed %d bytes", MaxPathLen)
	}

	if p == "/" {
		return nil
	}

	if strings.HasSuffix(p, "/") {
		return fmt.Errorf("path must not end with /")
	}

	for _, segment := range strings.Split(p[1:], "/") {
		if err := ValidateFileName(segment); err != nil {
			return fmt.Errorf("invalid path segment: %w", err)
		}
	}

	return nil
}

// IsIgnoredName сообщает, что файл является служебным и пропускается при сканировании.
func IsIgnoredName(name string) bool {
	_, ok := ignoredNames[strings.ToLower(name)]
	return ok
}
