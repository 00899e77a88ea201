package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	apperrors "inventory-manager/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader is sent with every outgoing request
const RequestIDHeader = "X-Request-ID"

// Credentials supplies access tokens to the client. Refresh is called with the
// token that was rejected; implementations must return an AuthExpired error when
// the session cannot be renewed.
type Credentials interface {
	Token(ctx context.Context) string
	Refresh(ctx context.Context, stale string) error
}

// Client performs authenticated JSON requests against the inventory API.
// A 401 or 403 response triggers one credential refresh and one retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      Credentials
	logger     *zap.Logger
}

// NewClient creates a client. The session is passed in explicitly through creds;
// a client built with nil creds only serves DoWithToken.
func NewClient(baseURL string, httpClient *http.Client, creds Credentials, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		creds:      creds,
		logger:     logger,
	}
}

// Do sends body (if non-nil) as JSON and decodes a successful response into out
// (if non-nil). Empty and 204 responses are accepted.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	payload, err := encode(body)
	if err != nil {
		return err
	}

	token := c.creds.Token(ctx)
	status, data, err := c.send(ctx, method, path, token, payload)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		c.logger.Debug("Credential rejected, refreshing",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
		if err := c.creds.Refresh(ctx, token); err != nil {
			c.logger.Warn("Credential refresh failed", zap.String("path", path), zap.Error(err))
			if apperrors.IsAuthExpired(err) {
				return err
			}
			return apperrors.NewAuthExpired(err)
		}

		status, data, err = c.send(ctx, method, path, c.creds.Token(ctx), payload)
		if err != nil {
			return err
		}
	}

	return c.decode(method, path, status, data, out)
}

// DoWithToken sends one request with a fixed token (none when empty) and never
// refreshes. The auth endpoints use it: a 401 there is a failed login, not an
// expired session.
func (c *Client) DoWithToken(ctx context.Context, token, method, path string, body, out interface{}) error {
	payload, err := encode(body)
	if err != nil {
		return err
	}
	status, data, err := c.send(ctx, method, path, token, payload)
	if err != nil {
		return err
	}
	return c.decode(method, path, status, data, out)
}

func encode(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode request", err)
	}
	return payload, nil
}

func (c *Client) decode(method, path string, status int, data []byte, out interface{}) error {
	if status < 200 || status >= 300 {
		reqErr := apperrors.FromResponse(status, data)
		c.logger.Warn("API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.String("message", reqErr.Message),
		)
		return reqErr
	}

	if out == nil || status == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.NewRequestFailed(status, "invalid response from server", err.Error())
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path, token string, payload []byte) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, apperrors.NewInternalError("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, uuid.New().String())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("API request error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return 0, nil, apperrors.NewRequestFailed(0, "", err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, apperrors.NewRequestFailed(resp.StatusCode, "", err.Error())
	}
	return resp.StatusCode, data, nil
}
