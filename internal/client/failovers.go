package client

import (
	"context"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// FailoversClient implements ncm.FailoversClient.
type FailoversClient struct {
	client *Client
}

// NewFailoversClient creates a new failovers client.
func NewFailoversClient(client *Client) *FailoversClient {
	return &FailoversClient{client: client}
}

var failoversAllowedParams = []string{
	"account_id", "group_id", "router_id", "started_at", "ended_at", "order_by", "limit", "offset",
}

// List implements ncm.FailoversClient.List.
func (c *FailoversClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/failovers/", "Failovers", params, failoversAllowedParams)
}
