package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/retry"
)

const (
	DefaultAPIURL    = "https://api.telegram.org"
	maxResponseBytes = 1 << 20
	redactedToken    = "<token>"
)

var ErrMissingToken = errors.New("telegram bot token is required")

type ClientConfig struct {
	APIURL         string
	Token          string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	MaxAttempts    int
	InitialDelay   time.Duration
	Logger         *slog.Logger
}

// Client talks to the Bot API. Calls that fail with 429 or 5xx are retried
// with exponential backoff; repeated transport failures open a circuit breaker.
type Client struct {
	baseURL        string
	token          string
	httpClient     *http.Client
	requestTimeout time.Duration
	retrier        retry.Retry[json.RawMessage]
	circuitBreaker circuitbreaker.CircuitBreaker[json.RawMessage]
	logger         *slog.Logger
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrMissingToken
	}

	baseURL, err := parseAPIURL(cfg.APIURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:        baseURL,
		token:          cfg.Token,
		httpClient:     cfg.HTTPClient,
		requestTimeout: cfg.RequestTimeout,
		logger:         cfg.Logger,
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.requestTimeout <= 0 {
		c.requestTimeout = 15 * time.Second
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	initialDelay := cfg.InitialDelay
	if initialDelay <= 0 {
		initialDelay = time.Second
	}

	c.circuitBreaker = circuitbreaker.New[json.RawMessage](circuitbreaker.Config{
		MaxRequests: 2,
		Interval:    10 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(from, to circuitbreaker.State) {
			c.logger.Warn("telegram circuit breaker state change",
				"from", from.String(),
				"to", to.String())
		},
	})
	c.retrier = retry.New[json.RawMessage](retry.Config{
		MaxAttempts:   attempts,
		InitialDelay:  initialDelay,
		MaxDelay:      30 * time.Second,
		Multiplier:    2.0,
		BackoffPolicy: retry.BackoffExponential,
		Jitter:        true,
		IsRetryable:   isRetryable,
	})

	return c, nil
}

func (c *Client) GetMe(ctx context.Context) (User, error) {
	var user User
	err := c.call(ctx, "getMe", nil, &user, c.requestTimeout)
	return user, err
}

// GetUpdates long-polls for updates. The request deadline is extended past
// the server-side poll timeout.
func (c *Client) GetUpdates(ctx context.Context, req GetUpdatesRequest) ([]Update, error) {
	var updates []Update
	timeout := c.requestTimeout + time.Duration(req.Timeout)*time.Second
	if err := c.call(ctx, "getUpdates", req, &updates, timeout); err != nil {
		return nil, err
	}
	return updates, nil
}

func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) (Message, error) {
	var msg Message
	err := c.call(ctx, "sendMessage", req, &msg, c.requestTimeout)
	return msg, err
}

func (c *Client) EditMessageText(ctx context.Context, req EditMessageTextRequest) (Message, error) {
	// Inline-message edits answer with a bare true; only chat edits are used here.
	var msg Message
	err := c.call(ctx, "editMessageText", req, &msg, c.requestTimeout)
	return msg, err
}

func (c *Client) AnswerCallbackQuery(ctx context.Context, req AnswerCallbackQueryRequest) error {
	return c.call(ctx, "answerCallbackQuery", req, nil, c.requestTimeout)
}

func (c *Client) SetWebhook(ctx context.Context, req SetWebhookRequest) error {
	if strings.TrimSpace(req.URL) == "" {
		return errors.New("webhook url is required")
	}
	return c.call(ctx, "setWebhook", req, nil, c.requestTimeout)
}

func (c *Client) DeleteWebhook(ctx context.Context, dropPending bool) error {
	return c.call(ctx, "deleteWebhook", deleteWebhookRequest{DropPendingUpdates: dropPending}, nil, c.requestTimeout)
}

func (c *Client) GetWebhookInfo(ctx context.Context) (WebhookInfo, error) {
	var info WebhookInfo
	err := c.call(ctx, "getWebhookInfo", nil, &info, c.requestTimeout)
	return info, err
}

func (c *Client) call(ctx context.Context, method string, payload any, out any, timeout time.Duration) error {
	body := []byte("{}")
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode telegram %s request: %w", method, err)
		}
		body = encoded
	}

	// Permanent API errors (bad request, forbidden) are the caller's problem,
	// not a sign of an unhealthy API, so they bypass the breaker's failure count.
	var clientErr error
	result, err := c.circuitBreaker.Execute(ctx, func(ctx context.Context) (json.RawMessage, error) {
		clientErr = nil
		return c.retrier.Do(ctx, func(ctx context.Context) (json.RawMessage, error) {
			raw, err := c.do(ctx, method, body, timeout)
			var apiErr *APIError
			if errors.As(err, &apiErr) && !apiErr.Temporary() {
				clientErr = err
				return nil, nil
			}
			return raw, err
		})
	})
	if err != nil {
		return err
	}
	if clientErr != nil {
		return clientErr
	}

	if out == nil || len(result) == 0 {
		return nil
	}
	if err := json.Unmarshal(result, out); err != nil {
		return fmt.Errorf("decode telegram %s result: %w", method, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method string, body []byte, timeout time.Duration) (json.RawMessage, error) {
	requestCtx, cancel := requestContext(ctx, timeout)
	defer cancel()

	endpoint := c.baseURL + "/bot" + c.token + "/" + method
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create telegram %s request: %w", method, c.redact(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telegram %s: %w", method, c.redact(err))
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read telegram %s response: %w", method, c.redact(err))
	}
	if len(data) > maxResponseBytes {
		return nil, fmt.Errorf("telegram %s: %w", method, ErrResponseTooLarge)
	}

	var envelope apiResponse
	decodeErr := json.Unmarshal(data, &envelope)

	ok2xx := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if ok2xx && decodeErr == nil && envelope.OK {
		return envelope.Result, nil
	}
	if ok2xx && decodeErr != nil {
		return nil, fmt.Errorf("decode telegram %s response: %w", method, decodeErr)
	}

	apiErr := &APIError{
		Method:      method,
		StatusCode:  resp.StatusCode,
		Code:        envelope.ErrorCode,
		Description: envelope.Description,
	}
	if envelope.Parameters != nil {
		apiErr.RetryAfter = envelope.Parameters.RetryAfter
	}
	if apiErr.Description == "" {
		apiErr.Description = http.StatusText(resp.StatusCode)
	}
	return nil, apiErr
}

// redact strips the bot token from transport errors, which embed the request URL.
func (c *Client) redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, c.token, redactedToken)
		return err
	}
	if strings.Contains(err.Error(), c.token) {
		return errors.New(strings.ReplaceAll(err.Error(), c.token, redactedToken))
	}
	return err
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrResponseTooLarge) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func requestContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func parseAPIURL(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultAPIURL
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse telegram api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("telegram api url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("telegram api url host is required")
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}
