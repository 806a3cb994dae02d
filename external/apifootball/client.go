package apifootball

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/riskibarqy/livematch/internal/platform/resilience"
	"github.com/riskibarqy/livematch/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL  = "https://v3.football.api-sports.io"
	apiKeyHeader    = "x-apisports-key"
	maxBodyPreview  = 240
	defaultTimeout  = 10 * time.Second
	defaultMaxRetry = 2
)

var apiKeyRegex = regexp.MustCompile(`(?i)x-apisports-key[=:]\s*\S+`)
var errTransient = crerr.New("live feed transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches full fixture snapshots from an api-football compatible
// endpoint. It satisfies usecase.SnapshotSource.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
	maxRetries int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	breakerOn  bool
	backoff    func(attempt int) time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{Name: "livematch", MaxResponseBodySize: 6 << 20}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = defaultMaxRetry
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		timeout:    timeout,
		maxRetries: maxRetries,
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		breakerOn:  cfg.CircuitBreaker.Enabled,
		backoff: func(attempt int) time.Duration {
			return time.Duration(attempt+1) * time.Second
		},
	}
}

func (c *Client) FetchSnapshot(ctx context.Context, fixtureID int64) (livefeed.Snapshot, error) {
	if fixtureID <= 0 {
		return livefeed.Snapshot{}, fmt.Errorf("%w: fixture id must be greater than zero", usecase.ErrInvalidInput)
	}
	if c.breakerOn {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "live feed circuit breaker rejected request", "fixture_id", fixtureID, "state", c.breaker.State())
			return livefeed.Snapshot{}, fmt.Errorf("%w: live feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	values.Set("id", strconv.FormatInt(fixtureID, 10))
	fullURL := c.baseURL + "/fixtures?" + values.Encode()

	raw, err := c.executeRequest(ctx, fullURL)
	if c.breakerOn {
		c.breaker.Record(stderrors.Is(err, errTransient))
	}
	if err != nil {
		return livefeed.Snapshot{}, fmt.Errorf("fetch fixture_id=%d: %w", fixtureID, err)
	}

	snapshot, err := DecodeSnapshot(raw)
	if err != nil {
		return livefeed.Snapshot{}, fmt.Errorf("fixture_id=%d: %w", fixtureID, err)
	}
	return snapshot, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, status, err := c.do(ctx, fullURL)
		switch {
		case err != nil:
			lastErr = fmt.Errorf("%w: send request: %s", errTransient, c.sanitize(err.Error()))
		case status >= 200 && status < 300:
			return raw, nil
		case isRetryableStatus(status):
			lastErr = fmt.Errorf("%w: provider status=%d body=%s", errTransient, status, abbreviateBody(raw))
		default:
			return nil, fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(raw))
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(c.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "live feed request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, fullURL string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return nil, 0, err
	}

	body := append([]byte(nil), resp.Body()...)
	return body, resp.StatusCode(), nil
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return apiKeyRegex.ReplaceAllString(value, apiKeyHeader+"=REDACTED")
}

func isRetryableStatus(code int) bool {
	return code == fasthttp.StatusTooManyRequests || code >= fasthttp.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= maxBodyPreview {
		return text
	}
	return text[:maxBodyPreview] + "..."
}
