package advocacy

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

func (c *Client) GetDistricts(ctx context.Context, zip string) (*Response, error) {
	return c.execute(ctx, http.MethodGet, "districts", NewParams("zip", zip), nil)
}

// GetDistrictsByState takes a two-letter state abbreviation.
func (c *Client) GetDistrictsByState(ctx context.Context, state string) (*Response, error) {
	return c.execute(ctx, http.MethodGet, "districts/state", NewParams("state", state), nil)
}

func (c *Client) GetCommitteeList(ctx context.Context) (*Response, error) {
	return c.execute(ctx, http.MethodGet, "committees/list", nil, nil)
}

// GetTargetDeliverability reports delivery results for every target of an
// action form.
func (c *Client) GetTargetDeliverability(ctx context.Context, formID string) (*Response, error) {
	path, err := idPath(http.MethodGet, "deliverability/action", formID)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, http.MethodGet, path, nil, nil)
}

// GetSingleTargetDeliverability narrows GetTargetDeliverability to one
// target.
func (c *Client) GetSingleTargetDeliverability(ctx context.Context, formID, targetID string) (*Response, error) {
	path, err := idPath(http.MethodGet, "deliverability/action", formID)
	if err != nil {
		return nil, err
	}
	path, err = idPath(http.MethodGet, path+"/target", targetID)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, http.MethodGet, path, nil, nil)
}

// GetMetrics returns usage metrics for one of the Metrics* periods.
func (c *Client) GetMetrics(ctx context.Context, period string) (*Response, error) {
	period = strings.ToLower(strings.TrimSpace(period))
	return c.execute(ctx, http.MethodGet, "metrics/"+url.PathEscape(period), nil, nil)
}

func (c *Client) GetSubscription(ctx context.Context) (*Response, error) {
	return c.execute(ctx, http.MethodGet, "subscription", nil, nil)
}
