package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"checkout_core/internal/usecase/interfaces"
	"checkout_core/pkg/logger"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	defaultTimeout    = 10 * time.Second
	idempotencyHeader = "Idempotency-Key"
	maxErrorBody      = 4 << 10
)

// ErrBackendUnavailable is returned while the circuit breaker is open.
var ErrBackendUnavailable = errors.New("backend unavailable")

// Options configures a Client. Zero values fall back to sensible defaults.
type Options struct {
	BaseURL            string
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
	// Transport overrides the instrumented default, mostly for tests.
	Transport http.RoundTripper
}

// Client talks to the marketplace backend REST API. It serves the product catalog,
// order creation and payment endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

var (
	_ interfaces.IProductCatalog       = (*Client)(nil)
	_ interfaces.IOrderGateway         = (*Client)(nil)
	_ interfaces.IPaymentGateway       = (*Client)(nil)
	_ interfaces.IPaymentMethodCatalog = (*Client)(nil)
)

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := opts.Transport
	if transport == nil {
		transport = otelhttp.NewTransport(http.DefaultTransport)
	}
	maxFailures := opts.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	settings := gobreaker.Settings{
		Name:    "backend",
		Timeout: opts.BreakerOpenTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= maxFailures
		},
		// client errors are answers, only transport failures and 5xx trip the breaker
		IsSuccessful: func(err error) bool {
			var be *interfaces.BackendError
			if errors.As(err, &be) {
				return be.StatusCode < http.StatusInternalServerError
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warn("[backend][client] circuit breaker state changed",
				zap.String("breaker", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	}

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		http:    &http.Client{Timeout: timeout, Transport: transport},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

type tokenKey struct{}

// WithBearerToken stores the caller's Authorization header value so it is forwarded on
// every backend call made with ctx.
func WithBearerToken(ctx context.Context, authorization string) context.Context {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, authorization)
}

// BearerToken returns the Authorization header value carried by ctx.
func BearerToken(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey{}).(string); ok {
		return v
	}
	return ""
}

type requestOptions struct {
	idempotent bool
}

// do sends body as JSON and decodes a successful response into out (when non-nil).
func (c *Client) do(ctx context.Context, method string, segments []string, query url.Values, body, out any, ro requestOptions) error {
	endpoint, err := url.JoinPath(c.baseURL, segments...)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	raw, err := c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token := BearerToken(ctx); token != "" {
			req.Header.Set("Authorization", token)
		}
		if ro.idempotent {
			req.Header.Set(idempotencyHeader, uuid.NewString())
		}
		if id := logger.RequestID(ctx); id != "unknown" {
			req.Header.Set(logger.RequestIDHeader, id)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("backend %s %s: %w", method, endpoint, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return nil, &interfaces.BackendError{StatusCode: resp.StatusCode, Message: drainError(resp.Body)}
		}
		return io.ReadAll(resp.Body)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if err != nil {
		logger.Debug(ctx, "[backend][client] request failed", zap.String("method", method), zap.String("endpoint", endpoint), zap.Error(err))
		return err
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend %s %s: decode response: %w", method, endpoint, err)
	}
	return nil
}

// drainError extracts the human readable detail of an error body.
func drainError(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return strings.TrimSpace(string(b))
	}
	if msg := detailMessage(payload.Detail); msg != "" {
		return msg
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// detailMessage accepts both a plain string detail and a list of {msg} entries.
func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &list); err == nil {
		msgs := make([]string, 0, len(list))
		for _, it := range list {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
