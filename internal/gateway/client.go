package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	sandboxHost    = "apitest.cardlink.com"
	productionHost = "api.cardlink.com"

	apiVersion       = "v1"
	resourcePayments = "payments"
	actionCapture    = "capture"
	actionRefund     = "refund"
)

// ErrCommunication wraps every transport-level failure: connection,
// timeout, unreadable or undecodable body. Gateway business errors are
// not Go errors; they travel inside the decoded envelope.
var ErrCommunication = errors.New("gateway communication failure")

// Timeouts is the per-call budget. The values are policy, not hard
// limits: zero fields fall back to the defaults.
type Timeouts struct {
	Connect        time.Duration
	ResponseHeader time.Duration
	Overall        time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Connect:        2 * time.Second,
		ResponseHeader: 3 * time.Second,
		Overall:        4 * time.Second,
	}
}

func (t Timeouts) withDefaults() Timeouts {
	d := DefaultTimeouts()
	if t.Connect <= 0 {
		t.Connect = d.Connect
	}
	if t.ResponseHeader <= 0 {
		t.ResponseHeader = d.ResponseHeader
	}
	if t.Overall <= 0 {
		t.Overall = d.Overall
	}
	return t
}

// Client is the stateless transport wrapper around the gateway API. It
// holds one pooled http.Client for its whole life and performs no
// retries; retry policy belongs to the caller.
type Client struct {
	http    *http.Client
	logger  *zap.SugaredLogger
	baseURL string
}

func NewClient(t Timeouts, logger *zap.SugaredLogger) *Client {
	t = t.withDefaults()
	transport := &http.Transport{
		DialContext:           (&net.Dialer{Timeout: t.Connect}).DialContext,
		TLSHandshakeTimeout:   t.Connect,
		ResponseHeaderTimeout: t.ResponseHeader,
		MaxIdleConns:          10,
		IdleConnTimeout:       time.Minute,
	}
	return &Client{
		http:   &http.Client{Timeout: t.Overall, Transport: transport},
		logger: logger,
	}
}

// WithBaseURL overrides host selection so the client can be pointed at a
// local mock server. Production callers never set it.
func (c *Client) WithBaseURL(raw string) *Client {
	c.baseURL = strings.TrimSuffix(raw, "/")
	return c
}

func (c *Client) host(sandbox bool) string {
	if sandbox {
		return sandboxHost
	}
	return productionHost
}

func createPath(parts ...string) string {
	return "/" + strings.Join(parts, "/")
}

// Initiate opens a payment session. POST /v1/payments
func (c *Client) Initiate(ctx context.Context, req InitiateRequest, sandbox bool) (PaymentResponse, error) {
	return c.do(ctx, http.MethodPost, sandbox, createPath(apiVersion, resourcePayments), req.AuthenticationHeader(), req)
}

// Retrieve fetches the current payment state. GET /v1/payments/{id}
func (c *Client) Retrieve(ctx context.Context, req CaptureRequest, sandbox bool) (PaymentResponse, error) {
	return c.do(ctx, http.MethodGet, sandbox, createPath(apiVersion, resourcePayments, req.PaymentID()), req.AuthenticationHeader(), nil)
}

// Capture settles an authorized payment. POST /v1/payments/{id}/capture
// with an empty body.
func (c *Client) Capture(ctx context.Context, req CaptureRequest, sandbox bool) (PaymentResponse, error) {
	return c.do(ctx, http.MethodPost, sandbox, createPath(apiVersion, resourcePayments, req.PaymentID(), actionCapture), req.AuthenticationHeader(), nil)
}

// Refund pays a captured payment back. POST /v1/payments/{id}/refund
func (c *Client) Refund(ctx context.Context, req RefundRequest, sandbox bool) (PaymentResponse, error) {
	return c.do(ctx, http.MethodPost, sandbox, createPath(apiVersion, resourcePayments, req.PaymentID(), actionRefund), req.AuthenticationHeader(), req)
}

func (c *Client) do(ctx context.Context, method string, sandbox bool, path, auth string, body any) (PaymentResponse, error) {
	endpoint := c.baseURL + path
	if c.baseURL == "" {
		u := url.URL{Scheme: "https", Host: c.host(sandbox), Path: path}
		endpoint = u.String()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return PaymentResponse{}, fmt.Errorf("%w: encode request: %v", ErrCommunication, err)
		}
		reader = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return PaymentResponse{}, fmt.Errorf("%w: build request: %v", ErrCommunication, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", auth)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Errorw("gateway call failed", "method", method, "path", path, "err", err)
		return PaymentResponse{}, fmt.Errorf("%w: %v", ErrCommunication, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Errorw("gateway response unreadable", "method", method, "path", path, "err", err)
		return PaymentResponse{}, fmt.Errorf("%w: read response: %v", ErrCommunication, err)
	}

	var out PaymentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logger.Errorw("gateway response undecodable", "method", method, "path", path, "http_status", resp.StatusCode, "body", string(raw))
		return PaymentResponse{}, fmt.Errorf("%w: decode response: http=%d: %v", ErrCommunication, resp.StatusCode, err)
	}
	return out, nil
}
