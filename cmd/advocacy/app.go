package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/natserract/advocacy/pkg/advocacy"
	"github.com/natserract/advocacy/pkg/config"
	"github.com/natserract/advocacy/pkg/debugstore/postgres"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

type app struct {
	client   *advocacy.Client
	settings *config.Config
	store    *postgres.DB
	retry    retrier
	logger   *zap.Logger
	out      io.Writer
}

func newApp(client *advocacy.Client, settings *config.Config, logger *zap.Logger, out io.Writer) *app {
	return &app{
		client:   client,
		settings: settings,
		logger:   logger,
		out:      out,
		retry: retrier{
			retries:    settings.Retries,
			maxElapsed: settings.RetryMaxElapsed,
			logger:     logger,
		},
	}
}

// authenticate fetches a token with the configured client credentials
// unless one is already held.
func (a *app) authenticate(ctx context.Context) error {
	if a.client.Token() != "" || !a.settings.HasClientCredentials() {
		return nil
	}
	tok, err := retry(ctx, a.retry, "token", func() (*advocacy.TokenResponse, error) {
		return a.client.GetToken(ctx, a.settings.ClientID, a.settings.ClientSecret)
	})
	if err != nil {
		return fmt.Errorf("failed to obtain access token: %w", err)
	}
	a.client.SetToken(tok.AccessToken)
	return nil
}

// call runs one client operation with retries and prints its payload.
func (a *app) call(ctx context.Context, name string, op func() (*advocacy.Response, error)) error {
	resp, err := retry(ctx, a.retry, name, op)
	if err != nil {
		return err
	}
	return a.print(resp.Value)
}

// deleteAll deletes ids concurrently and prints the per-id payloads.
func (a *app) deleteAll(ctx context.Context, name string, ids []string, del func(context.Context, string) (*advocacy.Response, error)) error {
	results := make([]interface{}, len(ids))
	p := pool.New().WithMaxGoroutines(a.settings.Concurrency).WithErrors()
	for i, id := range ids {
		p.Go(func() error {
			resp, err := retry(ctx, a.retry, name, func() (*advocacy.Response, error) {
				return del(ctx, id)
			})
			if err != nil {
				a.logger.Error("Delete failed", zap.String("operation", name), zap.String("id", id), zap.Error(err))
				return fmt.Errorf("%s %s: %w", name, id, err)
			}
			results[i] = resp.Value
			return nil
		})
	}
	err := p.Wait()

	out := make(map[string]interface{}, len(ids))
	for i, id := range ids {
		if results[i] != nil {
			out[id] = results[i]
		}
	}
	if printErr := a.print(out); printErr != nil {
		return printErr
	}
	return err
}

func (a *app) print(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parsePairs splits key=value arguments, keeping their order.
func parsePairs(args []string) (advocacy.Params, error) {
	var params advocacy.Params
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		params = params.Add(k, v)
	}
	return params, nil
}

func parseFields(args []string) (advocacy.Fields, error) {
	params, err := parsePairs(args)
	if err != nil {
		return nil, err
	}
	fields := make(advocacy.Fields, len(params))
	for _, p := range params {
		fields[p.Key] = p.Value
	}
	return fields, nil
}
