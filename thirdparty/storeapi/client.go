package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const maxErrorBody = 4 << 10

// Request describes one call to the commerce API. Op names the call in logs and metrics.
type Request struct {
	Op     string
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	Header http.Header
}

// StatusError is a non-2xx answer from the commerce API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("store api status %d: %s", e.Code, e.Message)
}

// callerGone marks a call abandoned by its own context. The upstream said nothing
// about its health, so the breaker does not count it.
type callerGone struct {
	err error
}

func (e *callerGone) Error() string { return e.err.Error() }
func (e *callerGone) Unwrap() error { return e.err }

// Caller is the transport the repositories depend on.
type Caller interface {
	Do(ctx context.Context, req Request, out interface{}) error
}

type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(cfg config.StoreAPIConfig) *Client {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	settings := gobreaker.Settings{
		Name:        "store-api",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// client errors are answers, not outages
		IsSuccessful: func(err error) bool {
			var gone *callerGone
			if stderrors.As(err, &gone) {
				return true
			}
			var se *StatusError
			if stderrors.As(err, &se) {
				return se.Code < http.StatusInternalServerError
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("[storeapi] circuit state change", zap.String("name", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

// Do sends req and decodes a 2xx JSON answer into out (which may be nil). Failures
// come back as CustomError: ErrNotFound for 404, ErrUpstreamUnavailable while the
// breaker is open, ErrUpstream otherwise with the upstream message as detail. When ctx
// ends first, its error is returned as is.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		raw, err := c.roundTrip(ctx, req)
		if err != nil && ctx.Err() != nil {
			return nil, &callerGone{err: ctx.Err()}
		}
		return raw, err
	})
	if err != nil {
		return c.mapError(req, err)
	}
	metrics.UpstreamRequests.WithLabelValues(req.Op, "ok").Inc()

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		logger.Error("[storeapi] decode response", zap.String("op", req.Op), zap.String("error", err.Error()))
		return errors.SetCustomErrorWithDetails(constant.ErrUpstream, "malformed response")
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, req Request) ([]byte, error) {
	endpoint, err := url.JoinPath(c.baseURL, req.Path)
	if err != nil {
		return nil, err
	}
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var payload io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, payload)
	if err != nil {
		return nil, err
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Code: resp.StatusCode, Message: errorMessage(raw)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	logger.Debug("[storeapi] call", zap.String("op", req.Op), zap.Int("status", resp.StatusCode), zap.Duration("duration", time.Since(start)))
	return raw, nil
}

// errorMessage pulls the message out of an upstream error body, which is either
// {"error": "..."} or {"message": "..."}, falling back to the raw text.
func errorMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return string(bytes.TrimSpace(raw))
}

func (c *Client) mapError(req Request, err error) error {
	if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.UpstreamRequests.WithLabelValues(req.Op, "rejected").Inc()
		return errors.SetCustomError(constant.ErrUpstreamUnavailable)
	}
	var gone *callerGone
	if stderrors.As(err, &gone) {
		metrics.UpstreamRequests.WithLabelValues(req.Op, "canceled").Inc()
		logger.Debug("[storeapi] call abandoned by caller", zap.String("op", req.Op), zap.String("error", gone.err.Error()))
		return gone.err
	}
	metrics.UpstreamRequests.WithLabelValues(req.Op, "error").Inc()

	var se *StatusError
	if stderrors.As(err, &se) {
		if se.Code == http.StatusNotFound {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Warn("[storeapi] upstream rejected request", zap.String("op", req.Op), zap.Int("status", se.Code), zap.String("error", se.Message))
		if se.Message == "" {
			return errors.SetCustomError(constant.ErrUpstream)
		}
		return errors.SetCustomErrorWithDetails(constant.ErrUpstream, se.Message)
	}

	logger.Error("[storeapi] call failed", zap.String("op", req.Op), zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrUpstream)
}
