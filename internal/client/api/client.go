package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/drivesync/pkg/api"
)

// Identity идентифицирует клиента перед сервером
type Identity struct {
	Device    string
	UserID    int
	ContextID int
}

// Error ошибка, возвращенная сервером
type Error struct {
	Code       string // код ошибки синхронизации, например DRV-0404
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server error (%d %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsStatus сообщает, является ли err ошибкой сервера с данным HTTP статусом
func IsStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode == status
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	identity   Identity
}

// NewClient создает новый API клиент
func NewClient(baseURL string, identity Identity, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		identity: identity,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Заголовки сессии сохраняются при редиректе
				if len(via) > 0 {
					for _, h := range []string{api.HeaderUser, api.HeaderContext, api.HeaderDevice} {
						req.Header.Set(h, via[0].Header.Get(h))
					}
				}
				return nil
			},
		},
	}
}

// SyncFolders отправляет версии директорий и получает действия
func (c *Client) SyncFolders(ctx context.Context, req api.SyncFoldersRequest) (*api.SyncResponse, error) {
	var resp api.SyncResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/folders", req, &resp); err != nil {
		return nil, fmt.Errorf("folder sync request failed: %w", err)
	}
	return &resp, nil
}

// SyncFiles отправляет версии файлов одной директории и получает действия
func (c *Client) SyncFiles(ctx context.Context, req api.SyncFilesRequest) (*api.SyncResponse, error) {
	var resp api.SyncResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/files", req, &resp); err != nil {
		return nil, fmt.Errorf("file sync request failed for %s: %w", req.Path, err)
	}
	return &resp, nil
}

// Upload регистрирует загруженную версию файла
func (c *Client) Upload(ctx context.Context, req api.UploadRequest) error {
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/files", req, nil); err != nil {
		return fmt.Errorf("upload request failed for %s/%s: %w", req.Path, req.Name, err)
	}
	return nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(api.HeaderUser, strconv.Itoa(c.identity.UserID))
	req.Header.Set(api.HeaderContext, strconv.Itoa(c.identity.ContextID))
	if c.identity.Device != "" {
		req.Header.Set(api.HeaderDevice, c.identity.Device)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: string(respBody)}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Code = errResp.Code
			apiErr.Message = errResp.Error
			if errResp.Message != "" {
				apiErr.Message = errResp.Message
			}
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
