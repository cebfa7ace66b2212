package randomuser

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the interface for fetching one batch of users.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]User, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Query holds the fixed request parameters for a run.
type Query struct {
	Results     int
	Nationality string
	Seed        string
}

// Client talks to a randomuser.me compatible listing API.
type Client struct {
	endpoint  *url.URL
	query     Query
	http      *http.Client
	userAgent string
}

const (
	DefaultEndpoint    = "https://randomuser.me/api/"
	DefaultResults     = 12
	DefaultNationality = "gb"

	defaultUserAgent = "crew/0.1"
	requestTimeout   = 10 * time.Second
)

// StatusError reports a non-success HTTP status from the listing API.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	text := strings.TrimSpace(e.Status)
	if text == "" {
		text = http.StatusText(e.Code)
	}
	return fmt.Sprintf("api returned status %d: %s", e.Code, text)
}

// NewClient builds a Client for the given endpoint and query.
func NewClient(endpoint string, query Query) (*Client, error) {
	base, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	if query.Results <= 0 {
		query.Results = DefaultResults
	}
	if strings.TrimSpace(query.Nationality) == "" {
		query.Nationality = DefaultNationality
	}
	return &Client{
		endpoint: base,
		query:    query,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// WithUserAgent overrides the User-Agent header sent with each request.
func (c *Client) WithUserAgent(ua string) *Client {
	if ua = strings.TrimSpace(ua); ua != "" {
		c.userAgent = ua
	}
	return c
}

// RequestURL returns the fully formed URL FetchUsers will request.
func (c *Client) RequestURL() string {
	if c == nil {
		return ""
	}
	return c.requestURL().String()
}

// FetchUsers retrieves one batch of users in the order the API returns them.
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Response
	if err := c.do(ctx, c.requestURL(), &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *Client) requestURL() *url.URL {
	values := url.Values{}
	values.Set("results", strconv.Itoa(c.query.Results))
	values.Set("nat", strings.ToLower(strings.TrimSpace(c.query.Nationality)))
	if seed := strings.TrimSpace(c.query.Seed); seed != "" {
		values.Set("seed", seed)
	}
	u := *c.endpoint
	u.RawQuery = values.Encode()
	return &u
}

func (c *Client) do(ctx context.Context, reqURL *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Status: statusText(resp.Status)}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusText strips the numeric prefix net/http puts on Response.Status.
func statusText(status string) string {
	code, rest, ok := strings.Cut(status, " ")
	if ok {
		if _, err := strconv.Atoi(code); err == nil {
			return rest
		}
	}
	return status
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
