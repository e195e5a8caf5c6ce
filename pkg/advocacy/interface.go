package advocacy

import "context"

// AdvocacyClient defines the interface for advocacy API operations
type AdvocacyClient interface {
	// GetToken exchanges client credentials for an access token
	GetToken(ctx context.Context, clientID, clientSecret string) (*TokenResponse, error)

	// SetToken replaces the bearer token used by later calls
	SetToken(token string)

	GetLegislators(ctx context.Context, zip string) (*Response, error)
	GetDistricts(ctx context.Context, zip string) (*Response, error)
	GetDistrictsByState(ctx context.Context, state string) (*Response, error)
	GetCommitteeList(ctx context.Context) (*Response, error)

	SearchTargets(ctx context.Context, params Params) (*Response, error)
	GetCustomTargets(ctx context.Context, params Params) (*Response, error)
	GetCustomTarget(ctx context.Context, id string) (*Response, error)
	CreateCustomTarget(ctx context.Context, target Fields) (*Response, error)
	UpdateCustomTarget(ctx context.Context, target Fields, id string) (*Response, error)
	DeleteCustomTarget(ctx context.Context, id string) (*Response, error)
	ResolveTargets(ctx context.Context, submission Fields) (*Response, error)

	GetTargetGroups(ctx context.Context) (*Response, error)
	SearchTargetGroups(ctx context.Context, params Params) (*Response, error)
	GetTargetGroup(ctx context.Context, id string) (*Response, error)
	GetTargetGroupByMessageID(ctx context.Context, messageID string) (*Response, error)
	CreateTargetGroup(ctx context.Context, group Fields) (*Response, error)
	UpdateTargetGroup(ctx context.Context, group Fields, id string) (*Response, error)
	DeleteTargetGroup(ctx context.Context, id string) (*Response, error)

	GetTargetDeliverability(ctx context.Context, formID string) (*Response, error)
	GetSingleTargetDeliverability(ctx context.Context, formID, targetID string) (*Response, error)
	GetMetrics(ctx context.Context, period string) (*Response, error)
	GetSubscription(ctx context.Context) (*Response, error)
}

var _ AdvocacyClient = (*Client)(nil)
