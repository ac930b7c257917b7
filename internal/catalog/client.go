package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"armory/internal/config"
)

// Category endpoints probed for every lookup. Order matters: when several
// endpoints answer for the same slug, the earliest-listed one wins.
var defaultEndpoints = []string{"equipment", "magic-items", "weapon-properties"}

type Client struct {
	httpClient *http.Client
	baseURL    string
	endpoints  []string
}

func NewClient(cfg config.CatalogConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		endpoints:  defaultEndpoints,
	}
}

type EndpointFailure struct {
	Endpoint string `json:"endpoint"`
	Reason   string `json:"reason"`
}

// NotFoundError reports that every category endpoint failed for a slug.
type NotFoundError struct {
	Slug     string
	Failures []EndpointFailure
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog: no endpoint matched slug %q", e.Slug)
}

// TransportError reports that the lookup fan-out could not be issued at all,
// as opposed to endpoints answering with failures.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("catalog: lookup could not be issued: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Slugify normalizes a human-entered query into a catalog slug: lowercase,
// whitespace runs collapsed to single hyphens.
func Slugify(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), "-")
}

// Lookup queries every category endpoint for the slugified query concurrently,
// waits for all of them to settle, and returns the payload of the first
// endpoint (in declaration order, not response order) that succeeded. When no
// endpoint succeeds the returned NotFoundError carries every endpoint's
// failure reason.
func (c *Client) Lookup(ctx context.Context, query string) (json.RawMessage, error) {
	slug := Slugify(query)

	requests := make([]*http.Request, len(c.endpoints))
	for i, endpoint := range c.endpoints {
		target := fmt.Sprintf("%s/%s/%s", c.baseURL, endpoint, url.PathEscape(slug))
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, &TransportError{Err: err}
		}
		requests[i] = req
	}

	type outcome struct {
		payload json.RawMessage
		failure string
	}

	outcomes := make([]outcome, len(requests))
	var wg sync.WaitGroup
	for i := range requests {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload, failure := c.fetch(requests[i])
			outcomes[i] = outcome{payload: payload, failure: failure}
		}(i)
	}
	wg.Wait()

	for _, o := range outcomes {
		if o.failure == "" {
			return o.payload, nil
		}
	}

	failures := make([]EndpointFailure, len(outcomes))
	for i, o := range outcomes {
		failures[i] = EndpointFailure{Endpoint: requests[i].URL.String(), Reason: o.failure}
	}

	return nil, &NotFoundError{Slug: slug, Failures: failures}
}

func (c *Client) fetch(req *http.Request) (json.RawMessage, string) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err.Error()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Sprintf("request failed with status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err.Error()
	}

	return json.RawMessage(body), ""
}
