// Package client talks to the notes API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ferdiebergado/jobnotes/internal/access"
	"github.com/ferdiebergado/jobnotes/internal/note"
	"github.com/ferdiebergado/jobnotes/internal/pkg/web"
)

const defaultTimeout = 10 * time.Second

var ErrNotFound = errors.New("client: note not found")

// APIError is a non-2xx response other than 404.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d: %s %v", e.StatusCode, e.Message, e.Errors)
}

type Client struct {
	baseURL *url.URL
	http    *http.Client

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("client: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("client: unsupported base url scheme %q", u.Scheme)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetToken replaces the bearer token sent with write requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) endpoint(segments ...string) string {
	u := *c.baseURL
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.Join(segments, "/")
	return u.String()
}

func (c *Client) do(ctx context.Context, method, target string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("client: new request: %w", err)
	}
	if in != nil {
		req.Header.Set(web.HeaderContentType, web.MimeJSON)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, target, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeAPIError(res)
	}

	switch v := out.(type) {
	case nil:
		_, _ = io.Copy(io.Discard, res.Body)
	case *string:
		data, err := io.ReadAll(res.Body)
		if err != nil {
			return fmt.Errorf("client: read response: %w", err)
		}
		*v = string(data)
	default:
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("client: decode response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(res *http.Response) error {
	apiErr := &APIError{StatusCode: res.StatusCode}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		apiErr.Message = http.StatusText(res.StatusCode)
		return apiErr
	}

	var body web.ErrorResponse
	if err := json.Unmarshal(data, &body); err != nil || body.Message == "" {
		apiErr.Message = strings.TrimSpace(string(data))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(res.StatusCode)
		}
		return apiErr
	}

	apiErr.Message = body.Message
	apiErr.Errors = body.Errors
	return apiErr
}

// itemError maps a 404 on a single note to ErrNotFound.
func itemError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Message)
	}
	return err
}

func (c *Client) List(ctx context.Context) ([]note.Note, error) {
	var notes []note.Note
	if err := c.do(ctx, http.MethodGet, c.endpoint("api"), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) Create(ctx context.Context, title, body string) (note.Note, error) {
	var res note.CreateResponse
	req := note.CreateRequest{Title: title, Body: body}
	if err := c.do(ctx, http.MethodPost, c.endpoint("api"), req, &res); err != nil {
		return note.Note{}, err
	}
	return res.Record, nil
}

func (c *Client) Get(ctx context.Context, id string) (note.Note, error) {
	var n note.Note
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", id), nil, &n); err != nil {
		return note.Note{}, itemError(err)
	}
	return n, nil
}

// Update sends only the non-nil fields.
func (c *Client) Update(ctx context.Context, id string, title, body *string) (note.Note, error) {
	var n note.Note
	req := note.UpdateRequest{Title: title, Body: body}
	if err := c.do(ctx, http.MethodPut, c.endpoint("api", id), req, &n); err != nil {
		return note.Note{}, itemError(err)
	}
	return n, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	var msg string
	if err := c.do(ctx, http.MethodDelete, c.endpoint("api", id), nil, &msg); err != nil {
		return itemError(err)
	}
	return nil
}

// Unlock exchanges the condition text for an access token and keeps it for
// later write requests.
func (c *Client) Unlock(ctx context.Context, conditionText string) (string, error) {
	var res web.OKResponse[*access.UnlockResponse]
	req := access.UnlockRequest{ConditionText: conditionText}
	if err := c.do(ctx, http.MethodPost, c.endpoint("auth", "unlock"), req, &res); err != nil {
		return "", err
	}
	if res.Data == nil || res.Data.AccessToken == "" {
		return "", errors.New("client: unlock response has no access token")
	}

	c.SetToken(res.Data.AccessToken)
	return res.Data.AccessToken, nil
}
