// Package swapi is a small typed client for the Star Wars API.
package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public SWAPI root.
const DefaultBaseURL = "https://swapi.dev/api"

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.Code, e.URL)
}

// Client issues GET requests against a SWAPI-compatible server.
type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
}

// NewClient creates a client rooted at baseURL. A zero timeout disables the
// per-request deadline; callers still bound requests through their context.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the root the client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// peopleResponse matches people/.
type peopleResponse struct {
	Count   int      `json:"count"`
	Results []Person `json:"results"`
}

// ListPeople fetches the character list endpoint. Only the first page is
// read; the API's next links are not followed.
func (c *Client) ListPeople(ctx context.Context) ([]Person, error) {
	var res peopleResponse
	if err := c.get(ctx, c.baseURL+"/people/", &res); err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return res.Results, nil
}

// resource matches any of films/{id}, species/{id}, vehicles/{id} and
// starships/{id}. Films carry a title, everything else a name.
type resource struct {
	Title string `json:"title"`
	Name  string `json:"name"`
}

// Resolve fetches a single resource reference and returns its display label.
func (c *Client) Resolve(ctx context.Context, kind Kind, ref string) (string, error) {
	u, err := c.resolveRef(ref)
	if err != nil {
		return "", err
	}

	var res resource
	if err := c.get(ctx, u, &res); err != nil {
		return "", fmt.Errorf("resolve %s: %w", kind, err)
	}

	label := res.Name
	if kind == KindFilm {
		label = res.Title
	}
	if label == "" {
		return "", fmt.Errorf("resolve %s %s: empty %s", kind, ref, kind.LabelField())
	}
	return label, nil
}

// resolveRef turns a reference into an absolute URL. SWAPI hands out absolute
// URLs already; relative ones are resolved against the base URL.
func (c *Client) resolveRef(ref string) (string, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse reference %q: %w", ref, err)
	}
	if r.IsAbs() {
		return ref, nil
	}
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	return base.ResolveReference(r).String(), nil
}

func (c *Client) get(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: url, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
