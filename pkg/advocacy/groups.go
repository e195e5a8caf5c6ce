package advocacy

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

func (c *Client) GetTargetGroups(ctx context.Context) (*Response, error) {
	return c.execute(ctx, http.MethodGet, "target-groups", nil, nil)
}

func (c *Client) SearchTargetGroups(ctx context.Context, params Params) (*Response, error) {
	return c.execute(ctx, http.MethodGet, "target-groups/search", params, nil)
}

func (c *Client) GetTargetGroup(ctx context.Context, id string) (*Response, error) {
	path, err := idPath(http.MethodGet, "target-groups/group", id)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, http.MethodGet, path, nil, nil)
}

// GetTargetGroupByMessageID fetches the group attached to an advocacy
// message.
func (c *Client) GetTargetGroupByMessageID(ctx context.Context, messageID string) (*Response, error) {
	path, err := idPath(http.MethodGet, "target-groups/message", messageID)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, http.MethodGet, path, nil, nil)
}

func (c *Client) CreateTargetGroup(ctx context.Context, group Fields) (*Response, error) {
	c.logger.Info("Creating target group", zap.Int("field_count", len(group)))
	return c.execute(ctx, http.MethodPost, "target-groups", nil, group)
}

func (c *Client) UpdateTargetGroup(ctx context.Context, group Fields, id string) (*Response, error) {
	path, err := idPath(http.MethodPut, "target-groups/group", id)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Updating target group", zap.String("group_id", id))
	return c.execute(ctx, http.MethodPut, path, nil, group)
}

func (c *Client) DeleteTargetGroup(ctx context.Context, id string) (*Response, error) {
	path, err := idPath(http.MethodDelete, "target-groups/group", id)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Deleting target group", zap.String("group_id", id))
	return c.execute(ctx, http.MethodDelete, path, nil, nil)
}
