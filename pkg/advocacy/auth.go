package advocacy

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// GetToken exchanges client credentials for an access token. The token is
// returned, not stored; pass it to SetToken to use it.
func (c *Client) GetToken(ctx context.Context, clientID, clientSecret string) (*TokenResponse, error) {
	c.logger.Info("Requesting access token", zap.String("client_id", clientID))

	resp, err := c.execute(ctx, http.MethodPost, "oauth/access-token", nil, Fields{
		"grant_type":    "client_credentials",
		"client_id":     clientID,
		"client_secret": clientSecret,
	})
	if err != nil {
		c.logger.Error("Token request failed", zap.Error(err))
		return nil, err
	}

	var tokenResp TokenResponse
	if err := resp.Decode(&tokenResp); err != nil {
		return nil, &MalformedResponseError{StatusCode: resp.StatusCode, Body: truncate(resp.String(), maxErrorBodyLen), Err: err}
	}
	if tokenResp.AccessToken == "" {
		return nil, &MalformedResponseError{
			StatusCode: resp.StatusCode,
			Body:       truncate(resp.String(), maxErrorBodyLen),
			Err:        fmt.Errorf("response has no access_token"),
		}
	}

	c.logger.Info("Successfully obtained access token",
		zap.String("token_type", tokenResp.TokenType),
		zap.Int("expires_in", tokenResp.ExpiresIn))

	return &tokenResp, nil
}
