package advocacy

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// GetLegislators returns the legislators representing a ZIP code (ZIP+4
// accepted).
func (c *Client) GetLegislators(ctx context.Context, zip string) (*Response, error) {
	c.logger.Info("Getting legislators")
	return c.execute(ctx, http.MethodGet, "targets/legislators", NewParams("zip", zip), nil)
}

// SearchTargets searches legislators and custom targets. Params are
// forwarded verbatim as query parameters.
func (c *Client) SearchTargets(ctx context.Context, params Params) (*Response, error) {
	c.logger.Info("Searching targets", zap.Int("param_count", len(params)))
	return c.execute(ctx, http.MethodGet, "targets/search", params, nil)
}

// GetCustomTargets lists custom targets matching params.
func (c *Client) GetCustomTargets(ctx context.Context, params Params) (*Response, error) {
	return c.execute(ctx, http.MethodGet, "targets/custom", params, nil)
}

// GetCustomTarget fetches one custom target.
func (c *Client) GetCustomTarget(ctx context.Context, id string) (*Response, error) {
	path, err := idPath(http.MethodGet, "targets/custom", id)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, http.MethodGet, path, nil, nil)
}

// CreateCustomTarget creates a custom target from the given fields.
func (c *Client) CreateCustomTarget(ctx context.Context, target Fields) (*Response, error) {
	c.logger.Info("Creating custom target", zap.Int("field_count", len(target)))
	return c.execute(ctx, http.MethodPost, "targets/custom", nil, target)
}

// UpdateCustomTarget replaces the fields of custom target id.
func (c *Client) UpdateCustomTarget(ctx context.Context, target Fields, id string) (*Response, error) {
	path, err := idPath(http.MethodPut, "targets/custom", id)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Updating custom target", zap.String("target_id", id))
	return c.execute(ctx, http.MethodPut, path, nil, target)
}

// DeleteCustomTarget deletes custom target id.
func (c *Client) DeleteCustomTarget(ctx context.Context, id string) (*Response, error) {
	path, err := idPath(http.MethodDelete, "targets/custom", id)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Deleting custom target", zap.String("target_id", id))
	return c.execute(ctx, http.MethodDelete, path, nil, nil)
}

// ResolveTargets resolves an action submission (address, form id, ...) to
// the targets it should reach.
func (c *Client) ResolveTargets(ctx context.Context, submission Fields) (*Response, error) {
	return c.execute(ctx, http.MethodPost, "targets/resolve", nil, submission)
}
