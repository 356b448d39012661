package client

import (
	"context"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// DeviceAppsClient implements ncm.DeviceAppsClient.
type DeviceAppsClient struct {
	client *Client
}

// NewDeviceAppsClient creates a new device apps client.
func NewDeviceAppsClient(client *Client) *DeviceAppsClient {
	return &DeviceAppsClient{client: client}
}

var deviceAppsAllowedParams = []string{
	"account", "account__in", "name", "name__in", "id", "id__in", "uuid", "uuid__in",
	"expand", "order_by", "limit", "offset",
}

var deviceAppVersionsAllowedParams = []string{
	"account", "account__in", "app", "app__in", "id", "id__in", "state", "state__in",
	"expand", "limit", "offset",
}

var deviceAppBindingsAllowedParams = []string{
	"account", "account__in", "group", "group__in", "app_version", "app_version__in",
	"id", "id__in", "state", "state__in", "expand", "limit", "offset",
}

var deviceAppStatesAllowedParams = []string{
	"account", "account__in", "router", "router__in", "app_version", "app_version__in",
	"id", "id__in", "state", "state__in", "expand", "limit", "offset",
}

// List implements ncm.DeviceAppsClient.List.
func (c *DeviceAppsClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/device_apps/", "Device Apps", params, deviceAppsAllowedParams)
}

// Versions implements ncm.DeviceAppsClient.Versions.
func (c *DeviceAppsClient) Versions(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/device_app_versions/", "Device App Versions", params, deviceAppVersionsAllowedParams)
}

// Bindings implements ncm.DeviceAppsClient.Bindings. Bindings attach an
// app version to a group.
func (c *DeviceAppsClient) Bindings(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/device_app_bindings/", "Device App Bindings", params, deviceAppBindingsAllowedParams)
}

// States implements ncm.DeviceAppsClient.States. States report per-router
// installation progress of an app version.
func (c *DeviceAppsClient) States(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/device_app_states/", "Device App States", params, deviceAppStatesAllowedParams)
}
