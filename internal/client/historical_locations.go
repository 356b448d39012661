package client

import (
	"context"
	"fmt"
	"time"

	"github.com/netcloudkit/ncm-client/internal/constants"
	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// HistoricalLocationsClient implements ncm.HistoricalLocationsClient.
type HistoricalLocationsClient struct {
	client *Client
}

// NewHistoricalLocationsClient creates a new historical locations client.
func NewHistoricalLocationsClient(client *Client) *HistoricalLocationsClient {
	return &HistoricalLocationsClient{client: client}
}

var historicalLocationsAllowedParams = []string{
	"router",
	"created_at__gt", "created_at_timeuuid__gt", "created_at__lte", "fields", "limit", "offset",
}

// ForRouter implements ncm.HistoricalLocationsClient.ForRouter.
func (c *HistoricalLocationsClient) ForRouter(ctx context.Context, routerID string, params ncm.Params) (*ncm.ResultSet, error) {
	merged := mergeParams(params, ncm.Params{"router": routerID})

	return c.client.list(ctx, "/historical_locations/", "Historical Locations", merged, historicalLocationsAllowedParams)
}

// ForRouterAndDate implements ncm.HistoricalLocationsClient.ForRouterAndDate.
// The full day's trail is returned unless the caller narrows the limit.
func (c *HistoricalLocationsClient) ForRouterAndDate(ctx context.Context, routerID, date string, tzOffsetHours int, params ncm.Params) (*ncm.ResultSet, error) {
	day, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	start := day.Add(time.Duration(tzOffsetHours) * time.Hour)
	end := start.Add(24 * time.Hour)
	startStr, endStr := timeWindow(start, end)

	merged := mergeParams(params, ncm.Params{
		"router":          routerID,
		"created_at__lte": endStr,
		"created_at__gt":  startStr,
	})
	if _, ok := merged["limit"]; !ok {
		merged["limit"] = ncm.LimitAll
	}

	return c.client.list(ctx, "/historical_locations/", "Historical Locations", merged, historicalLocationsAllowedParams)
}
