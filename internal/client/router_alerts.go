package client

import (
	"context"
	"fmt"
	"time"

	"github.com/netcloudkit/ncm-client/internal/constants"
	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// RouterAlertsClient implements ncm.RouterAlertsClient.
type RouterAlertsClient struct {
	client *Client
	now    func() time.Time
}

// NewRouterAlertsClient creates a new router alerts client.
func NewRouterAlertsClient(client *Client) *RouterAlertsClient {
	return &RouterAlertsClient{client: client, now: time.Now}
}

var routerAlertsAllowedParams = []string{
	"router", "router__in", "created_at", "created_at__lt", "created_at__gt",
	"created_at_timeuuid", "created_at_timeuuid__in", "created_at_timeuuid__gt",
	"created_at_timeuuid__gte", "created_at_timeuuid__lt", "created_at_timeuuid__lte",
	"order_by", "limit", "offset",
}

// Date-window helpers accept only the router filters; the window pins
// everything else.
var routerAlertsWindowParams = []string{
	"router", "router__in",
	"created_at__lt", "created_at__gt", "order_by", "limit",
}

// List implements ncm.RouterAlertsClient.List.
func (c *RouterAlertsClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/router_alerts/", "Router Alerts", params, routerAlertsAllowedParams)
}

// Last24Hours implements ncm.RouterAlertsClient.Last24Hours.
func (c *RouterAlertsClient) Last24Hours(ctx context.Context, tzOffsetHours int, params ncm.Params) (*ncm.ResultSet, error) {
	end := c.now().UTC().Add(time.Duration(tzOffsetHours) * time.Hour)
	start := end.Add(-24 * time.Hour)

	merged := mergeParams(params, windowParams(start, end))

	return c.client.list(ctx, "/router_alerts/", "Router Alerts", merged, routerAlertsWindowParams)
}

// ForDate implements ncm.RouterAlertsClient.ForDate.
func (c *RouterAlertsClient) ForDate(ctx context.Context, date string, tzOffsetHours int, params ncm.Params) (*ncm.ResultSet, error) {
	day, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	start := day.Add(time.Duration(tzOffsetHours) * time.Hour)
	end := start.Add(24 * time.Hour)

	merged := mergeParams(params, windowParams(start, end))

	return c.client.list(ctx, "/router_alerts/", "Router Alerts", merged, routerAlertsWindowParams)
}

// windowParams pins a created-at window ordered oldest first.
func windowParams(start, end time.Time) ncm.Params {
	startStr, endStr := timeWindow(start, end)

	return ncm.Params{
		"created_at__lt": endStr,
		"created_at__gt": startStr,
		"order_by":       "created_at_timeuuid",
		"limit":          ncm.DefaultLimit,
	}
}
