package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"game-data-pipeline/internal/metrics"
	"game-data-pipeline/internal/providers"
)

// Config controls how the PokeAPI client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Delay is the fixed pause between successive item requests. Zero selects
	// the default; a negative value disables pacing (used by tests).
	Delay   time.Duration
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Client fetches creature-catalog data from PokeAPI and maps it to flat
// domain records. The API requires no authentication.
type Client struct {
	baseURL    string
	httpClient httpDoer
	delay      time.Duration
	logger     *slog.Logger
	metrics    *metrics.Recorder
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewClient constructs a PokeAPI client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		delay:      resolveDelay(cfg.Delay),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		sleep:      sleepCtx,
	}
}

// fetchList retrieves the first page of a kind's list endpoint. Entries come
// back in the source API's list order.
func (c *Client) fetchList(ctx context.Context, kind string) ([]namedResource, error) {
	url := fmt.Sprintf("%s/%s?limit=%d", c.baseURL, kind, defaultListLimit)
	var payload listResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *Client) pokemonURL(id int) string {
	return fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Resource:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("pokeapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// pace applies the fixed inter-request delay.
func (c *Client) pace(ctx context.Context) error {
	return c.sleep(ctx, c.delay)
}

// observe records one item fetch. On a rate-limit error it also records the
// hit and honors Retry-After before the next item.
func (c *Client) observe(ctx context.Context, resource string, start time.Time, err error) {
	if c.metrics != nil {
		c.metrics.RecordFetchAttempt(resource, time.Since(start), err)
	}
	if rl, ok := providers.AsRateLimitError(err); ok {
		if c.metrics != nil {
			c.metrics.RecordRateLimit(resource, rl.RetryAfter)
		}
		if rl.RetryAfter > 0 {
			_ = c.sleep(ctx, rl.RetryAfter)
		}
	}
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
