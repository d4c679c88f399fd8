// Package github provides a read-only client for the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/runoshun/issue-browser/internal/domain"
)

// Ensure Client implements domain.IssueSource.
var _ domain.IssueSource = (*Client)(nil)

const apiVersion = "2022-11-28"

// Client fetches repositories and issues over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithBaseURL sets the API root (useful for testing and GitHub Enterprise).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new Client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: domain.DefaultAPITimeout},
		baseURL:    domain.DefaultAPIBaseURL,
		userAgent:  domain.AppName,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetRepository fetches GET /repos/{owner}/{repo}.
func (c *Client) GetRepository(ctx context.Context, repo domain.RepoIdentifier) (*domain.RepositoryInfo, error) {
	var info domain.RepositoryInfo
	if err := c.get(ctx, repoPath(repo), "", &info); err != nil {
		return nil, fmt.Errorf("get repository %s: %w", repo, err)
	}
	return &info, nil
}

// ListIssues fetches GET /repos/{owner}/{repo}/issues for one page.
func (c *Client) ListIssues(ctx context.Context, repo domain.RepoIdentifier, q domain.IssueQuery) ([]domain.Issue, error) {
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = domain.PerPage
	}
	// Parameters are kept in state, per_page, page order.
	rawQuery := fmt.Sprintf("state=%s&per_page=%d&page=%d", url.QueryEscape(string(q.State)), perPage, q.Page.Int())

	var issues []domain.Issue
	if err := c.get(ctx, repoPath(repo)+"/issues", rawQuery, &issues); err != nil {
		return nil, fmt.Errorf("list issues of %s: %w", repo, err)
	}
	if issues == nil {
		issues = []domain.Issue{}
	}
	return issues, nil
}

func repoPath(repo domain.RepoIdentifier) string {
	return "/repos/" + url.PathEscape(repo.Owner) + "/" + url.PathEscape(repo.Name)
}

func (c *Client) get(ctx context.Context, path, rawQuery string, out any) error {
	u := c.baseURL + path
	if rawQuery != "" {
		u += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// APIError is a non-2xx response from the API.
type APIError struct {
	kind             error
	Message          string
	DocumentationURL string
	StatusCode       int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// Unwrap exposes domain.ErrNotFound or domain.ErrRateLimited when they apply.
func (e *APIError) Unwrap() error {
	return e.kind
}

type errorBody struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

// parseAPIError builds an APIError from a GitHub error response.
func parseAPIError(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		apiErr.Message = eb.Message
		apiErr.DocumentationURL = eb.DocumentationURL
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		apiErr.kind = domain.ErrNotFound
	case http.StatusTooManyRequests:
		apiErr.kind = domain.ErrRateLimited
	case http.StatusForbidden:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			apiErr.kind = domain.ErrRateLimited
		}
	}
	return apiErr
}
