// Package repository reads computers and tickets from the inventory REST
// backend.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Sapuran-Berperan/inventory-console/internal/model"
	"github.com/google/uuid"
)

// defaultMaxBodySize bounds how much of a response body is read
const defaultMaxBodySize = 8 << 20

type contextKey string

const credentialsKey contextKey = "credentials"

// Credentials are forwarded to the backend with every request so that the
// backend sees the browser's own session
type Credentials struct {
	Cookie        string
	Authorization string
	RequestID     string
}

// WithCredentials returns a context carrying creds
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey, creds)
}

// CredentialsFrom returns the credentials stored in ctx
func CredentialsFrom(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey).(Credentials)
	return creds, ok
}

// Client talks to the REST backend
type Client struct {
	baseURL     string
	httpClient  *http.Client
	maxBodySize int64
}

// New returns a Client for baseURL. A zero timeout means requests are
// bounded only by their context.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme and host are required", baseURL)
	}

	return &Client{
		baseURL:     strings.TrimRight(u.String(), "/"),
		maxBodySize: defaultMaxBodySize,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

// BaseURL is the backend root the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	creds, _ := CredentialsFrom(ctx)
	if creds.Cookie != "" {
		req.Header.Set("Cookie", creds.Cookie)
	}
	if creds.Authorization != "" {
		req.Header.Set("Authorization", creds.Authorization)
	}
	requestID := creds.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)

	return req, nil
}

// get fetches path and decodes the result block of the envelope into out
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		return fmt.Errorf("%s: %w", path, ErrUnexpectedRedirect)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody model.ErrorBody
		name := ""
		if json.Unmarshal(body, &errBody) == nil && errBody.Error != nil {
			name = errBody.Error.Name
		}
		return statusError(resp.StatusCode, name)
	}

	if int64(len(body)) > c.maxBodySize {
		return fmt.Errorf("%s: %w (limit %d bytes)", path, ErrResponseTooLarge, c.maxBodySize)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
