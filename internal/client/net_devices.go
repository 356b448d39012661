package client

import (
	"context"
	"strings"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// NetDevicesClient implements ncm.NetDevicesClient.
type NetDevicesClient struct {
	client *Client
}

// NewNetDevicesClient creates a new net devices client.
func NewNetDevicesClient(client *Client) *NetDevicesClient {
	return &NetDevicesClient{client: client}
}

var netDevicesAllowedParams = []string{
	"account", "account__in", "connection_state", "connection_state__in", "id", "id__in",
	"is_asset", "ipv4_address", "mode", "mode__in", "router", "router__in",
	"expand", "limit", "offset",
}

var netDeviceHealthAllowedParams = []string{
	"net_device",
}

var netDeviceMetricsAllowedParams = []string{
	"net_device", "net_device__in", "update_ts__lt", "update_ts__gt", "limit", "offset",
}

var netDeviceSamplesAllowedParams = []string{
	"net_device", "net_device__in", "created_at", "created_at__lt", "created_at__gt",
	"created_at_timeuuid", "created_at_timeuuid__in", "created_at_timeuuid__gt",
	"created_at_timeuuid__gte", "created_at_timeuuid__lt", "created_at_timeuuid__lte",
	"order_by", "limit", "offset",
}

// List implements ncm.NetDevicesClient.List.
func (c *NetDevicesClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/net_devices/", "Net Devices", params, netDevicesAllowedParams)
}

// ForRouter implements ncm.NetDevicesClient.ForRouter.
func (c *NetDevicesClient) ForRouter(ctx context.Context, routerID string, params ncm.Params) (*ncm.ResultSet, error) {
	return c.List(ctx, mergeParams(params, ncm.Params{"router": routerID}))
}

// ForRouterByMode implements ncm.NetDevicesClient.ForRouterByMode. mode is
// "lan" or "wan".
func (c *NetDevicesClient) ForRouterByMode(ctx context.Context, routerID, mode string, params ncm.Params) (*ncm.ResultSet, error) {
	return c.List(ctx, mergeParams(params, ncm.Params{"router": routerID, "mode": mode}))
}

// Health implements ncm.NetDevicesClient.Health.
func (c *NetDevicesClient) Health(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/net_device_health/", "Net Device Health", params, netDeviceHealthAllowedParams)
}

// Metrics implements ncm.NetDevicesClient.Metrics.
func (c *NetDevicesClient) Metrics(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/net_device_metrics/", "Net Device Metrics", params, netDeviceMetricsAllowedParams)
}

// MetricsForWAN implements ncm.NetDevicesClient.MetricsForWAN.
func (c *NetDevicesClient) MetricsForWAN(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.metricsFor(ctx, ncm.Params{"mode": "wan"}, params)
}

// MetricsForMDM implements ncm.NetDevicesClient.MetricsForMDM.
func (c *NetDevicesClient) MetricsForMDM(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.metricsFor(ctx, ncm.Params{"is_asset": true}, params)
}

// metricsFor resolves the matching interface IDs, then queries the latest
// metrics for them in one IN-filtered call. The ID list routinely exceeds
// the per-request filter cap on large accounts; the fetcher chunks it.
func (c *NetDevicesClient) metricsFor(ctx context.Context, selector, params ncm.Params) (*ncm.ResultSet, error) {
	devices, err := c.List(ctx, mergeParams(selector, ncm.Params{"limit": ncm.LimitAll}))
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, devices.Len())
	for _, device := range devices.Records {
		ids = append(ids, device.ID())
	}

	merged := mergeParams(params, ncm.Params{"net_device__in": strings.Join(ids, ",")})

	return c.Metrics(ctx, merged)
}

// SignalSamples implements ncm.NetDevicesClient.SignalSamples.
func (c *NetDevicesClient) SignalSamples(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/net_device_signal_samples/", "Net Device Signal Samples", params, netDeviceSamplesAllowedParams)
}

// UsageSamples implements ncm.NetDevicesClient.UsageSamples.
func (c *NetDevicesClient) UsageSamples(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/net_device_usage_samples/", "Net Device Usage Samples", params, netDeviceSamplesAllowedParams)
}
