package chesscom

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

	"game-data-pipeline/internal/domain/chess"
	"game-data-pipeline/internal/metrics"
	"game-data-pipeline/internal/providers"
)

// Config controls how the chess.com client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Delay is the fixed pause between successive item requests. Zero selects
	// the default; a negative value disables pacing (used by tests).
	Delay   time.Duration
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Client fetches player data from the chess.com public API and maps it to
// flat domain records. The API requires no authentication.
type Client struct {
	baseURL    string
	httpClient httpDoer
	delay      time.Duration
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewClient constructs a chess.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		delay:      resolveDelay(cfg.Delay),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
		sleep:      sleepCtx,
	}
}

// FetchProfile retrieves one player's profile.
func (c *Client) FetchProfile(ctx context.Context, username string) (chess.PlayerProfile, error) {
	var payload profileResponse
	if err := c.getJSON(ctx, c.playerURL(username), &payload); err != nil {
		return chess.PlayerProfile{}, err
	}
	return mapProfile(username, payload), nil
}

// FetchOnlineStatus probes one player's profile and derives whether they look
// active at probe time.
func (c *Client) FetchOnlineStatus(ctx context.Context, username string) (chess.OnlineStatus, error) {
	var payload profileResponse
	if err := c.getJSON(ctx, c.playerURL(username), &payload); err != nil {
		return chess.OnlineStatus{}, err
	}
	return mapOnlineStatus(username, payload, c.now().UTC()), nil
}

// FetchArchives retrieves the list of monthly archive URLs for one player.
func (c *Client) FetchArchives(ctx context.Context, username string) ([]chess.Archive, error) {
	var payload archivesResponse
	if err := c.getJSON(ctx, c.playerURL(username)+"/games/archives", &payload); err != nil {
		return nil, err
	}
	archives := make([]chess.Archive, 0, len(payload.Archives))
	for _, url := range payload.Archives {
		archives = append(archives, mapArchive(username, url))
	}
	return archives, nil
}

// FetchMonthlyGames retrieves every game one player finished in the given
// YYYY/MM month.
func (c *Client) FetchMonthlyGames(ctx context.Context, username, month string) ([]chess.GameRecord, error) {
	var payload monthlyGamesResponse
	if err := c.getJSON(ctx, c.playerURL(username)+"/games/"+month, &payload); err != nil {
		return nil, err
	}
	games := make([]chess.GameRecord, 0, len(payload.Games))
	for _, g := range payload.Games {
		games = append(games, mapGame(username, g))
	}
	return games, nil
}

func (c *Client) playerURL(username string) string {
	return c.baseURL + "/player/" + username
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
		return fmt.Errorf("chesscom: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
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
