package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every request issued through Client.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent identifies this client to the advocacy service.
const DefaultUserAgent = "advocacy-api-go-client/1.0"

// FormContentType selects urlencoded bodies in buildRequest.
const FormContentType = "application/x-www-form-urlencoded"

type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

type RequestOptions struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    interface{}
	Context context.Context
}

type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// NewClientWithLogger creates a new HTTP client with a custom logger
func NewClientWithLogger(logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: logger,
	}
}

// NewClientWithHTTPClient wraps a caller-provided *http.Client. A zero
// Timeout on hc is replaced by DefaultTimeout.
func NewClientWithHTTPClient(hc *http.Client, logger *zap.Logger) *Client {
	if hc == nil {
		hc = &http.Client{}
	}
	if hc.Timeout == 0 {
		hc.Timeout = DefaultTimeout
	}
	return &Client{httpClient: hc, logger: logger}
}

// Timeout reports the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// Do performs exactly one round trip. Any status code is returned to the
// caller; only failures to build, send or read the request are errors.
func (c *Client) Do(opts RequestOptions) (*Response, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	safeURL := RedactURL(opts.URL)

	req, err := c.buildRequest(ctx, opts)
	if err != nil {
		c.logger.Error("Failed to build request", zap.Error(err), zap.String("method", opts.Method), zap.String("url", safeURL))
		return nil, err
	}

	c.logger.Debug("Making HTTP request",
		zap.String("method", req.Method),
		zap.String("url", safeURL))

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("HTTP request failed",
			zap.Error(err),
			zap.String("method", req.Method),
			zap.String("url", safeURL))
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.logger.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("HTTP request completed",
		zap.Int("status_code", httpResp.StatusCode),
		zap.String("method", req.Method),
		zap.String("url", safeURL))

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

func (c *Client) buildRequest(ctx context.Context, opts RequestOptions) (*http.Request, error) {
	var bodyReader io.Reader
	if opts.Body != nil {
		// If Content-Type explicitly requests form encoding, honor it.
		if strings.HasPrefix(strings.ToLower(headerValue(opts.Headers, "Content-Type")), FormContentType) {
			form, err := toForm(opts.Body)
			if err != nil {
				return nil, err
			}
			bodyReader = strings.NewReader(form.Encode())
		} else {
			bodyJSON, err := json.Marshal(opts.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal request body: %w", err)
			}
			bodyReader = bytes.NewReader(bodyJSON)
		}
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, opts.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set default headers
	if opts.Body != nil && headerValue(opts.Headers, "Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", DefaultUserAgent)

	// Set custom headers
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

func headerValue(headers map[string]string, key string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

func toForm(body interface{}) (url.Values, error) {
	form, ok := body.(url.Values)
	if !ok {
		return nil, fmt.Errorf("cannot form-encode request body of type %T", body)
	}
	return form, nil
}
