package randomuser

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultBaseURL is the public API endpoint.
	DefaultBaseURL = "https://randomuser.me/api/"
	// DefaultResults is the batch size requested per fetch.
	DefaultResults = 24

	maxBodySize = 8 << 20
)

// DefaultNationalities is the allow-list sent as the nat parameter.
var DefaultNationalities = []string{
	"us", "gb", "ca", "au", "nl", "fr", "de", "es",
	"br", "dk", "ie", "fi", "nz", "ch", "be", "tr",
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the endpoint. Empty values are ignored.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithResults sets the batch size. Non-positive values are ignored.
func WithResults(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.results = n
		}
	}
}

// WithNationalities replaces the nationality allow-list. Codes are lowercased
// and blanks dropped; an empty list keeps the current one.
func WithNationalities(codes ...string) Option {
	return func(c *Client) {
		clean := make([]string, 0, len(codes))
		for _, code := range codes {
			if code = strings.ToLower(strings.TrimSpace(code)); code != "" {
				clean = append(clean, code)
			}
		}
		if len(clean) > 0 {
			c.nationalities = clean
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests. Nil is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// Client fetches profile batches. It is safe for concurrent use.
type Client struct {
	baseURL       string
	results       int
	nationalities []string
	httpClient    *http.Client
}

// New returns a Client with the package defaults, adjusted by opts.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:       DefaultBaseURL,
		results:       DefaultResults,
		nationalities: append([]string(nil), DefaultNationalities...),
		httpClient:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Nationalities returns a copy of the allow-list, lowercased.
func (c *Client) Nationalities() []string {
	return append([]string(nil), c.nationalities...)
}

// URL returns the request URL with the results and nat parameters applied.
func (c *Client) URL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("results", strconv.Itoa(c.results))
	q.Set("nat", strings.Join(c.nationalities, ","))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch performs one request and returns the validated batch.
func (c *Client) Fetch(ctx context.Context) ([]Result, error) {
	endpoint, err := c.URL()
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return Decode(io.LimitReader(resp.Body, maxBodySize))
}
