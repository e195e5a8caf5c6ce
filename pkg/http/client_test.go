package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestBuildURL(t *testing.T) {
	got, err := BuildURL("https://svc.example.com/", "/api/v1/districts", []QueryParam{
		{Key: "zip", Value: "02115"},
		{Key: "apikey", Value: "a&b"},
	})
	require.NoError(t, err)
	require.Equal(t, "https://svc.example.com/api/v1/districts?zip=02115&apikey=a%26b", got)

	got, err = BuildURL("https://svc.example.com/root", "api/v1/subscription", nil)
	require.NoError(t, err)
	require.Equal(t, "https://svc.example.com/root/api/v1/subscription", got)

	_, err = BuildURL("not a url", "x", nil)
	require.Error(t, err)

	_, err = BuildURL("https://svc.example.com/?x=1", "api/v1/districts", nil)
	require.ErrorContains(t, err, "query or fragment")

	_, err = BuildURL("https://svc.example.com/#top", "api/v1/districts", nil)
	require.ErrorContains(t, err, "query or fragment")
}

func TestRedactURL(t *testing.T) {
	require.Equal(t,
		"https://svc.example.com/api/v1/districts?apikey=REDACTED&zip=02115",
		RedactURL("https://svc.example.com/api/v1/districts?apikey=K1&zip=02115"))
	require.Equal(t, "https://svc.example.com/x", RedactURL("https://svc.example.com/x"))
}

func TestDoSingleAttempt(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":"busy"}`)
	}))
	defer srv.Close()

	c := NewClientWithLogger(zaptest.NewLogger(t))
	resp, err := c.Do(RequestOptions{Method: http.MethodGet, URL: srv.URL, Context: context.Background()})
	require.NoError(t, err)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	require.Equal(t, `{"error":"busy"}`, string(resp.Body))
	require.Equal(t, 1, calls)
}

func TestBodyEncoding(t *testing.T) {
	type seen struct {
		method, contentType, body string
	}
	var got seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got = seen{r.Method, r.Header.Get("Content-Type"), string(raw)}
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	c := NewClientWithLogger(zaptest.NewLogger(t))
	ctx := context.Background()
	form := map[string]string{"Content-Type": FormContentType}

	_, err := c.Do(RequestOptions{Method: http.MethodPost, URL: srv.URL, Body: map[string]string{"a": "1"}, Context: ctx})
	require.NoError(t, err)
	require.Equal(t, seen{http.MethodPost, "application/json", `{"a":"1"}`}, got)

	_, err = c.Do(RequestOptions{Method: http.MethodPut, URL: srv.URL, Headers: form, Body: url.Values{"b": {"2 3"}}, Context: ctx})
	require.NoError(t, err)
	require.Equal(t, seen{http.MethodPut, FormContentType, "b=2+3"}, got)

	_, err = c.Do(RequestOptions{Method: http.MethodDelete, URL: srv.URL, Context: ctx})
	require.NoError(t, err)
	require.Equal(t, seen{http.MethodDelete, "", ""}, got)
}

func TestFormBodyMustBeValues(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewClientWithLogger(zaptest.NewLogger(t))
	_, err := c.Do(RequestOptions{
		Method:  http.MethodPut,
		URL:     srv.URL,
		Headers: map[string]string{"content-type": FormContentType},
		Body:    map[string]string{"a": "1"},
		Context: context.Background(),
	})
	require.ErrorContains(t, err, "cannot form-encode")
	require.Zero(t, calls)
}

func TestNewClientWithHTTPClientDefaultsTimeout(t *testing.T) {
	c := NewClientWithHTTPClient(&http.Client{}, zaptest.NewLogger(t))
	require.Equal(t, DefaultTimeout, c.Timeout())
}
