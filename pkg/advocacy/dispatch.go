package advocacy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	httpclient "github.com/natserract/advocacy/pkg/http"
	"go.uber.org/zap"
)

const maxErrorBodyLen = 512

// execute is the single path every service call takes: validate, build the
// URL, encode the body, send, normalize.
func (c *Client) execute(ctx context.Context, verb, path string, query Params, body Fields) (*Response, error) {
	if !supportedVerb(verb) {
		return nil, &UnsupportedVerbError{Verb: verb}
	}
	path = strings.Trim(path, "/")
	if !Supported(verb, path) {
		return nil, &UnknownEndpointError{Verb: verb, Path: path}
	}

	endpoint, err := c.buildURL(path, query)
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	// Snapshot the token so a concurrent SetToken cannot split this call.
	token := c.tokenCache.get()

	opts := httpclient.RequestOptions{
		// PUT and DELETE go out as themselves, never tunnelled through POST.
		Method:  verb,
		URL:     endpoint,
		Headers: map[string]string{},
		Context: ctx,
	}
	if token != "" {
		opts.Headers["Authorization"] = "Bearer " + token
	}
	switch verb {
	case http.MethodPut:
		opts.Headers["Content-Type"] = httpclient.FormContentType
		opts.Body = formValues(body)
	case http.MethodPost:
		// The transport serializes the raw field map itself.
		if body == nil {
			body = Fields{}
		}
		opts.Body = map[string]string(body)
	}

	debugOn := c.debug.isEnabled()
	start := time.Now()

	c.logger.Debug("Dispatching request",
		zap.String("verb", verb),
		zap.String("path", path),
		zap.Int("query_params", len(query)),
		zap.Int("body_fields", len(body)))

	resp, callErr := c.do(opts)

	if debugOn {
		rec := DebugRecord{
			RequestID:   uuid.New(),
			Method:      verb,
			Path:        path,
			URL:         endpoint,
			AccessToken: token,
			Query:       query.clone(),
			Body:        body.clone(),
			Err:         callErr,
			Duration:    time.Since(start),
			At:          start,
		}
		if resp != nil {
			rec.StatusCode = resp.StatusCode
			rec.Response = resp.Value
		} else {
			var malformed *MalformedResponseError
			if errors.As(callErr, &malformed) {
				rec.StatusCode = malformed.StatusCode
				rec.Response = malformed.Body
			}
		}
		c.capture(ctx, rec)
	}

	if callErr != nil {
		return nil, callErr
	}
	return resp, nil
}

func (c *Client) do(opts httpclient.RequestOptions) (*Response, error) {
	raw, err := c.httpClient.Do(opts)
	if err != nil {
		return nil, &TransportError{Method: opts.Method, URL: httpclient.RedactURL(opts.URL), Err: err}
	}
	return normalize(raw)
}

// normalize decodes the body. Empty bodies and JSON null are failures;
// empty objects and arrays are valid payloads.
func normalize(raw *httpclient.Response) (*Response, error) {
	trimmed := bytes.TrimSpace(raw.Body)
	if len(trimmed) == 0 {
		return nil, &MalformedResponseError{StatusCode: raw.StatusCode}
	}

	var value interface{}
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return nil, &MalformedResponseError{
			StatusCode: raw.StatusCode,
			Body:       truncate(string(trimmed), maxErrorBodyLen),
			Err:        err,
		}
	}
	if value == nil {
		return nil, &MalformedResponseError{StatusCode: raw.StatusCode, Body: string(trimmed)}
	}

	return &Response{
		StatusCode: raw.StatusCode,
		Header:     raw.Headers,
		Raw:        json.RawMessage(trimmed),
		Value:      value,
	}, nil
}

func (c *Client) buildURL(path string, query Params) (string, error) {
	params := make([]httpclient.QueryParam, 0, len(query)+1)
	if c.apiKey != "" {
		params = append(params, httpclient.QueryParam{Key: "apikey", Value: c.apiKey})
	}
	params = append(params, query...)
	return httpclient.BuildURL(c.baseURL, apiVersionPrefix+"/"+path, params)
}

func (c *Client) capture(ctx context.Context, rec DebugRecord) {
	c.debug.store(rec)
	for _, sink := range c.debug.sinks {
		if err := sink.Record(ctx, rec); err != nil {
			c.logger.Warn("Failed to record debug info",
				zap.String("request_id", rec.RequestID.String()),
				zap.Error(err))
		}
	}
}

// formValues converts body fields for the transport, which does the
// urlencoding.
func formValues(body Fields) url.Values {
	form := make(url.Values, len(body))
	for k, v := range body {
		form.Set(k, v)
	}
	return form
}

// idPath escapes each identifier and appends it to base. Blank and
// dot-segment identifiers would resolve onto the collection path (or above
// it), so they are rejected.
func idPath(verb, base string, ids ...string) (string, error) {
	var b strings.Builder
	b.WriteString(base)
	for _, id := range ids {
		switch strings.TrimSpace(id) {
		case "", ".", "..":
			return "", &UnknownEndpointError{Verb: verb, Path: base + "/" + id}
		}
		b.WriteString("/")
		b.WriteString(url.PathEscape(id))
	}
	return b.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
