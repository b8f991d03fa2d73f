package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	apiVersion     = "2022-06-28"
)

// APIError is a non-2xx response from the record store.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// IsNotFound reports whether err is the store saying the record does
// not exist.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Config holds client settings.
type Config struct {
	APIKey       string
	BaseURL      string // empty for the real API
	Timeout      time.Duration
	MaxRetryWait time.Duration
}

// Client is a minimal Notion API client covering page creation,
// update, retrieval and database queries. Requests retry with
// exponential backoff on 429, 5xx and transport errors.
type Client struct {
	httpClient   *http.Client
	apiKey       string
	baseURL      string
	maxRetryWait time.Duration
	logger       zerolog.Logger
}

// NewClient creates a Notion client.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	maxWait := cfg.MaxRetryWait
	if maxWait == 0 {
		maxWait = 30 * time.Second
	}
	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		apiKey:       cfg.APIKey,
		baseURL:      baseURL,
		maxRetryWait: maxWait,
		logger:       logger,
	}
}

type createPageRequest struct {
	Parent     parent                   `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
}

type parent struct {
	DatabaseID string `json:"database_id"`
}

type updatePageRequest struct {
	Properties map[string]PropertyValue `json:"properties"`
}

type queryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

type queryResponse struct {
	Results    []*Page `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor"`
}

// CreatePage inserts a row into the given database.
func (c *Client) CreatePage(ctx context.Context, databaseID string, properties map[string]PropertyValue) (*Page, error) {
	body := createPageRequest{
		Parent:     parent{DatabaseID: databaseID},
		Properties: properties,
	}
	page := &Page{}
	if err := c.do(ctx, http.MethodPost, "/pages", body, page); err != nil {
		return nil, err
	}
	return page, nil
}

// UpdatePage patches properties of an existing page.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties map[string]PropertyValue) (*Page, error) {
	body := updatePageRequest{Properties: properties}
	page := &Page{}
	if err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, body, page); err != nil {
		return nil, err
	}
	return page, nil
}

// RetrievePage fetches a single page by ID.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (*Page, error) {
	page := &Page{}
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, page); err != nil {
		return nil, err
	}
	return page, nil
}

// QueryDatabase runs a filtered, sorted query and follows pagination
// to the end.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, filter *Filter, sorts ...Sort) ([]*Page, error) {
	var pages []*Page
	cursor := ""
	for {
		req := queryRequest{Filter: filter, Sorts: sorts, StartCursor: cursor}
		resp := &queryResponse{}
		if err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", req, resp); err != nil {
			return nil, err
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore {
			return pages, nil
		}
		cursor = resp.NextCursor
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = c.maxRetryWait

	return backoff.Retry(func() error {
		err := c.doOnce(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return backoff.Permanent(err)
		}
		c.logger.Warn().Err(err).Str("path", path).Msg("record store request failed, retrying")
		return err
	}, backoff.WithContext(b, ctx))
}

func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", apiVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil {
			apiErr.Message = string(data)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// isRetryable treats rate limits, server errors and transport errors
// as transient. Other API errors are the caller's problem.
func isRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}
	return true
}
