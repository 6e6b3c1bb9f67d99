package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound is returned by single lookups when the catalog has no match.
// It is a miss, not a transport failure; the resolver falls through to the
// next tier instead of logging it.
var ErrNotFound = errors.New("catalog: no matching card")

// Config holds configuration for the external card catalog API.
type Config struct {
	// BaseURL is the catalog API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.scryfall.com"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent identifies this application to the catalog.
	UserAgent string `mapstructure:"user_agent" default:"deck-reconciler/1.0"`
}

// Client defines the two catalog lookup calls the resolver depends on.
type Client interface {
	// Collection performs one bulk lookup keyed by exact name for up to
	// MaxCollectionSize identifiers.
	Collection(ctx context.Context, names []string) (*CollectionResult, error)
	// NamedExact looks up a single card by exact name.
	NamedExact(ctx context.Context, name string) (*Record, error)
	// NamedFuzzy looks up a single card by approximate name.
	NamedFuzzy(ctx context.Context, name string) (*Record, error)
}

// MaxCollectionSize is the catalog's bulk endpoint request cap.
const MaxCollectionSize = 70

// CollectionResult is the bulk endpoint response: matched records plus the
// identifiers the catalog explicitly reports as not found.
type CollectionResult struct {
	Data     []Record     `json:"data"`
	NotFound []Identifier `json:"not_found"`
}

// Identifier is one bulk-lookup request entry.
type Identifier struct {
	Name string `json:"name"`
}

type httpClient struct {
	base      string
	userAgent string
	hc        *http.Client
}

// NewClient creates an HTTP catalog client from the configuration.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		base:      cfg.BaseURL,
		userAgent: cfg.UserAgent,
		hc: &http.Client{
			Timeout:   timeoutDuration,
			Transport: transport,
		},
	}
}

func (c *httpClient) Collection(ctx context.Context, names []string) (*CollectionResult, error) {
	identifiers := make([]Identifier, 0, len(names))
	for _, name := range names {
		identifiers = append(identifiers, Identifier{Name: name})
	}
	body, err := json.Marshal(map[string][]Identifier{"identifiers": identifiers})
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/cards/collection", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("collection request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("collection request returned status %d", resp.StatusCode)
	}

	var result CollectionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode collection response: %w", err)
	}
	return &result, nil
}

func (c *httpClient) NamedExact(ctx context.Context, name string) (*Record, error) {
	return c.named(ctx, "exact", name)
}

func (c *httpClient) NamedFuzzy(ctx context.Context, name string) (*Record, error) {
	return c.named(ctx, "fuzzy", name)
}

func (c *httpClient) named(ctx context.Context, mode, name string) (*Record, error) {
	u := fmt.Sprintf("%s/cards/named?%s=%s", c.base, mode, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("named %s request failed: %w", mode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("named %s request returned status %d", mode, resp.StatusCode)
	}

	var record Record
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode named response: %w", err)
	}
	return &record, nil
}
