package api

// Заголовки, идентифицирующие клиента
const (
	HeaderUser      = "X-Drive-User"
	HeaderContext   = "X-Drive-Context"
	HeaderDevice    = "X-Drive-Device"
	HeaderRequestID = "X-Request-ID"
)

// Version представляет версию файла (name) или директории (path)
type Version struct {
	Name     string `json:"name,omitempty"` // имя файла
	Path     string `json:"path,omitempty"` // путь директории
	Checksum string `json:"checksum"`       // md5 содержимого в hex
}

// Action представляет одно действие, которое клиент должен выполнить
type Action struct {
	Version    *Version          `json:"version,omitempty"`
	NewVersion *Version          `json:"new_version,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
	Type       string            `json:"action"`
}

// SyncFoldersRequest представляет запрос на синхронизацию директорий
type SyncFoldersRequest struct {
	OriginalVersions []Version `json:"original_versions"` // версии на момент последней синхронизации
	ClientVersions   []Version `json:"client_versions"`   // текущие версии клиента
	Diagnostics      bool      `json:"diagnostics"`       // вернуть трассировку прохода
}

// SyncFilesRequest представляет запрос на синхронизацию файлов одной директории
type SyncFilesRequest struct {
	Path             string    `json:"path"`
	OriginalVersions []Version `json:"original_versions"`
	ClientVersions   []Version `json:"client_versions"`
	Diagnostics      bool      `json:"diagnostics"`
}

// SyncResponse представляет ответ сервера на синхронизацию
type SyncResponse struct {
	Diagnostics string   `json:"diagnostics,omitempty"`
	Actions     []Action `json:"actions"`
	Deferred    bool     `json:"deferred"` // часть путей отложена до следующего прохода
}

// UploadRequest регистрирует загруженную версию файла
type UploadRequest struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Checksum string `json:"checksum"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
