// Package advocacy provides a client for the advocacy data service.
//
// The service exposes legislators, districts, custom targets, target groups,
// deliverability and usage metrics over a small JSON REST API under
// /api/v1. Every call is validated against a fixed table of supported
// (verb, path) pairs before it reaches the network, authenticated with an
// API key query parameter and/or an OAuth bearer token, and its response
// normalized to a decoded JSON value or one of the typed errors in this
// package.
//
// A Client is safe for concurrent use. The access token is read once per
// call, so SetToken never affects a request that is already in flight.
package advocacy

import (
	"strings"
	"sync"

	httpclient "github.com/natserract/advocacy/pkg/http"
	"go.uber.org/zap"
)

// Client is the main client for interacting with the advocacy API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *httpclient.Client
	tokenCache *tokenCache
	debug      *debugState
	logger     *zap.Logger
}

// tokenCache holds the bearer token with thread-safe access
type tokenCache struct {
	mu          sync.RWMutex
	accessToken string
}

func (t *tokenCache) get() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.accessToken
}

func (t *tokenCache) set(token string) {
	t.mu.Lock()
	t.accessToken = token
	t.mu.Unlock()
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(hc *httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithDebugSink adds a sink that receives a DebugRecord after every call
// while debug mode is on.
func WithDebugSink(sink DebugSink) Option {
	return func(c *Client) {
		if sink != nil {
			c.debug.sinks = append(c.debug.sinks, sink)
		}
	}
}

// New creates a new Client with default production logger
func New(cfg *Config, opts ...Option) (*Client, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	return NewWithLogger(cfg, logger, opts...)
}

// NewWithLogger creates a new Client with a custom logger
func NewWithLogger(cfg *Config, logger *zap.Logger, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpclient.NewClientWithLogger(logger),
		tokenCache: &tokenCache{accessToken: cfg.AccessToken},
		debug:      &debugState{},
		logger:     logger,
	}
	c.debug.setEnabled(cfg.Debug)

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the normalized service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken replaces the bearer token used by subsequent calls. An empty
// token disables the Authorization header. It performs no network I/O.
func (c *Client) SetToken(token string) {
	c.tokenCache.set(token)
	c.logger.Debug("Access token updated", zap.Bool("has_token", token != ""))
}

// Token returns the bearer token currently held.
func (c *Client) Token() string {
	return c.tokenCache.get()
}

// SetDebug toggles debug capture.
func (c *Client) SetDebug(enabled bool) {
	c.debug.setEnabled(enabled)
}

// Debug reports whether debug capture is on.
func (c *Client) Debug() bool {
	return c.debug.isEnabled()
}

// DebugInfo returns the record of the most recent call made while debug
// mode was on.
func (c *Client) DebugInfo() (DebugRecord, bool) {
	return c.debug.last()
}
