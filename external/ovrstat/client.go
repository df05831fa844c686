package ovrstat

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/michelleon/overwatch-stats/internal/domain/careerstats"
	"github.com/michelleon/overwatch-stats/internal/platform/logging"
	"github.com/michelleon/overwatch-stats/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL = "https://ovrstat.com/stats/pc/us"
	maxBodyBytes   = 6 << 20
)

// ErrTransport marks failures reaching the provider at all.
var ErrTransport = crerr.Wrap(usecase.ErrDependencyUnavailable, "ovrstat transport failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
	flight     singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// FetchPlayerStats issues GET {baseURL}/{playerID}. Any status other than 200
// is reported as usecase.ErrPlayerUnavailable.
func (c *Client) FetchPlayerStats(ctx context.Context, playerID string) (careerstats.Document, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return careerstats.Document{}, fmt.Errorf("%w: player id is required", usecase.ErrInvalidInput)
	}

	out, err, shared := c.flight.Do(playerID, func() (any, error) {
		return c.fetch(ctx, playerID)
	})
	if err != nil {
		return careerstats.Document{}, err
	}
	if shared {
		c.logger.DebugContext(ctx, "ovrstat request shared", "player", playerID)
	}

	raw, ok := out.(map[string]any)
	if !ok {
		return careerstats.Document{}, fmt.Errorf("unexpected response payload type %T", out)
	}
	return careerstats.Document{PlayerID: playerID, Raw: raw}, nil
}

func (c *Client) fetch(ctx context.Context, playerID string) (map[string]any, error) {
	fullURL := c.baseURL + "/" + url.PathEscape(playerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: send request player=%s: %v", ErrTransport, playerID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body player=%s: %v", ErrTransport, playerID, err)
	}

	c.logger.DebugContext(ctx, "ovrstat response",
		"player", playerID,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrPlayerUnavailable, resp.StatusCode, abbreviateBody(body))
	}

	var doc map[string]any
	if err := sonic.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrMalformedDocument, crerr.Wrapf(err, "decode provider payload player=%s", playerID))
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: player=%s body is not a JSON object", usecase.ErrMalformedDocument, playerID)
	}
	return doc, nil
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
