package client

import (
	"context"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// ActivityLogsClient implements ncm.ActivityLogsClient.
type ActivityLogsClient struct {
	client *Client
}

// NewActivityLogsClient creates a new activity logs client.
func NewActivityLogsClient(client *Client) *ActivityLogsClient {
	return &ActivityLogsClient{client: client}
}

var activityLogsAllowedParams = []string{
	"account", "created_at__exact", "created_at__lt", "created_at__lte", "created_at__gt",
	"created_at__gte", "action__timestamp__exact", "action__timestamp__lt",
	"action__timestamp__lte", "action__timestamp__gt", "action__timestamp__gte", "actor__id",
	"object__id", "action__id__exact", "actor__type",
	"action__type", "object__type", "order_by",
	"limit",
}

// List implements ncm.ActivityLogsClient.List.
func (c *ActivityLogsClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/activity_logs/", "Activity Logs", params, activityLogsAllowedParams)
}
