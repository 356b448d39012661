package client

import (
	"context"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// AlertsClient implements ncm.AlertsClient.
type AlertsClient struct {
	client *Client
}

// NewAlertsClient creates a new alerts client.
func NewAlertsClient(client *Client) *AlertsClient {
	return &AlertsClient{client: client}
}

var alertsAllowedParams = []string{
	"account", "created_at", "created_at_timeuuid", "detected_at", "friendly_info", "info",
	"router", "type", "order_by", "limit", "offset",
}

// List implements ncm.AlertsClient.List.
func (c *AlertsClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/alerts/", "Alerts", params, alertsAllowedParams)
}
