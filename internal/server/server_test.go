package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	gosync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/drivesync/internal/config"
	"github.com/iudanet/drivesync/internal/drive"
	"github.com/iudanet/drivesync/internal/server/storage/sqlite"
	"github.com/iudanet/drivesync/internal/sync"
	"github.com/iudanet/drivesync/pkg/api"
)

// lockedBuffer is a log sink safe for concurrent writers
type lockedBuffer struct {
	buf bytes.Buffer
	mu  gosync.Mutex
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testConfig() config.ServerConfig {
	return config.ServerConfig{
		Addr:            "127.0.0.1:0",
		RateLimit:       1000,
		RateWindow:      time.Minute,
		ShutdownTimeout: 5 * time.Second,
	}
}

func setupServer(t *testing.T, logger *slog.Logger, events *drive.EventBuffer) *Server {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	warn := sync.NewWarnLogger(logger, nil)
	service := drive.NewService(store, warn, events, drive.Limits{MaxFileActions: 100, MaxDirectoryActions: 100}, logger)

	return New(testConfig(), 10*time.Millisecond, service, store, events, logger, "test")
}

func doJSON(t *testing.T, ts *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(api.HeaderUser, "7")
	req.Header.Set(api.HeaderContext, "3")
	req.Header.Set(api.HeaderDevice, "test")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeSync(t *testing.T, resp *http.Response) api.SyncResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out api.SyncResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestServer_SyncFlow(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(setupServer(t, logger, nil).Handler())
	defer ts.Close()

	// новая директория клиента создается на сервере
	folders := decodeSync(t, doJSON(t, ts, http.MethodPost, PathSyncFolders, api.SyncFoldersRequest{
		ClientVersions: []api.Version{{Path: "/docs", Checksum: "c1"}},
	}))
	require.Len(t, folders.Actions, 1)
	assert.Equal(t, "sync", folders.Actions[0].Type)
	assert.Equal(t, "/docs", folders.Actions[0].Version.Path)
	assert.False(t, folders.Deferred)

	// клиент загружает файл
	resp := doJSON(t, ts, http.MethodPut, PathFiles, api.UploadRequest{Path: "/docs", Name: "a.txt", Checksum: "m1"})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// другое устройство без файлов получает download
	files := decodeSync(t, doJSON(t, ts, http.MethodPost, PathSyncFiles, api.SyncFilesRequest{Path: "/docs"}))
	require.Len(t, files.Actions, 1)
	assert.Equal(t, "download", files.Actions[0].Type)
	assert.Equal(t, &api.Version{Name: "a.txt", Checksum: "m1"}, files.Actions[0].NewVersion)

	// и создание директории при синхронизации директорий
	folders = decodeSync(t, doJSON(t, ts, http.MethodPost, PathSyncFolders, api.SyncFoldersRequest{Diagnostics: true}))
	require.Len(t, folders.Actions, 1)
	assert.Equal(t, "sync", folders.Actions[0].Type)
	assert.Equal(t, "/docs", folders.Actions[0].NewVersion.Path)
	assert.NotEmpty(t, folders.Diagnostics)
}

func TestServer_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(setupServer(t, logger, nil).Handler())
	defer ts.Close()

	t.Run("unknown directory", func(t *testing.T) {
		resp := doJSON(t, ts, http.MethodPost, PathSyncFiles, api.SyncFilesRequest{Path: "/missing"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var errResp api.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, "DRV-0404", errResp.Code)
	})

	t.Run("duplicate client path", func(t *testing.T) {
		resp := doJSON(t, ts, http.MethodPost, PathSyncFolders, api.SyncFoldersRequest{
			ClientVersions: []api.Version{{Path: "/a", Checksum: "1"}, {Path: "/a/", Checksum: "2"}},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing session headers", func(t *testing.T) {
		resp, err := ts.Client().Post(ts.URL+PathSyncFolders, "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("wrong method", func(t *testing.T) {
		resp := doJSON(t, ts, http.MethodGet, PathSyncFolders, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestServer_HealthAndMetrics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(setupServer(t, logger, nil).Handler())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + PathHealth)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(api.HeaderRequestID))
	var health api.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "test", health.Version)

	// запросы к health не попадают в метрики, в отличие от API
	doJSON(t, ts, http.MethodPost, PathSyncFolders, api.SyncFoldersRequest{})

	metricsResp, err := ts.Client().Get(ts.URL + PathMetrics)
	require.NoError(t, err)
	defer metricsResp.Body.Close()

	body, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "drivesync_http_request_duration_seconds")
}

func TestServer_ServeDrainsNotificationsAndShutsDown(t *testing.T) {
	var logs lockedBuffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	events := drive.NewEventBuffer(0, 0, 0)
	srv := setupServer(t, logger, events)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	body, err := json.Marshal(api.SyncFoldersRequest{ClientVersions: []api.Version{{Path: "/docs", Checksum: "1"}}})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, "http://"+ln.Addr().String()+PathSyncFolders, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set(api.HeaderUser, "7")
	req.Header.Set(api.HeaderContext, "3")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "Folder change notification")
	}, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, logs.String(), "context_id=3")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Contains(t, logs.String(), "Server stopped")
}

func TestServer_RunInvalidAddr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := setupServer(t, logger, nil)
	srv.cfg.Addr = "256.0.0.1:bad"

	err := srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
