package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// ConfigManagersClient implements ncm.ConfigManagersClient.
//
// A configuration manager is the per-device resource controlling config
// sync; every router has exactly one.
type ConfigManagersClient struct {
	client *Client
}

// NewConfigManagersClient creates a new configuration managers client.
func NewConfigManagersClient(client *Client) *ConfigManagersClient {
	return &ConfigManagersClient{client: client}
}

var configManagersAllowedParams = []string{
	"account", "account__in", "fields", "id", "id__in", "router", "router__in", "synched",
	"suspended", "expand", "limit", "offset",
}

// List implements ncm.ConfigManagersClient.List.
func (c *ConfigManagersClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/configuration_managers/", "Configuration Managers", params, configManagersAllowedParams)
}

// IDForRouter implements ncm.ConfigManagersClient.IDForRouter.
func (c *ConfigManagersClient) IDForRouter(ctx context.Context, routerID string) (string, error) {
	resultSet, err := c.List(ctx, ncm.Params{"router": routerID, "fields": "id"})
	if err != nil {
		return "", err
	}

	record, err := resultSet.First()
	if err != nil {
		return "", fmt.Errorf("router %s: %w", routerID, ncm.ErrConfigManagerNotFound)
	}

	return record.ID(), nil
}

// Update implements ncm.ConfigManagersClient.Update.
func (c *ConfigManagersClient) Update(ctx context.Context, managerID string, configuration interface{}) (*ncm.CallResult, error) {
	return c.client.do(ctx, http.MethodPut, "/configuration_managers/"+managerID+"/", configuration, "Configuration Manager")
}

// PatchForRouter implements ncm.ConfigManagersClient.PatchForRouter.
func (c *ConfigManagersClient) PatchForRouter(ctx context.Context, routerID string, configuration interface{}) (*ncm.CallResult, error) {
	managerID, err := c.IDForRouter(ctx, routerID)
	if err != nil {
		return nil, err
	}

	return c.client.do(ctx, http.MethodPatch, "/configuration_managers/"+managerID+"/", configuration, "Configuration Manager")
}

// CopyRouterConfiguration implements ncm.ConfigManagersClient.CopyRouterConfiguration.
//
// Masked secrets (passwords, WPA keys) are stripped from the source
// configuration before applying; the API stores them write-only and returns
// "*" placeholders that must not be written back.
func (c *ConfigManagersClient) CopyRouterConfiguration(ctx context.Context, srcRouterID, dstRouterID string) (*ncm.CallResult, error) {
	srcSet, err := c.List(ctx, ncm.Params{"router": srcRouterID, "fields": "configuration"})
	if err != nil {
		return nil, err
	}

	src, err := srcSet.First()
	if err != nil {
		return nil, fmt.Errorf("router %s: %w", srcRouterID, ncm.ErrConfigManagerNotFound)
	}

	stripMaskedSecrets(src)

	dstManagerID, err := c.IDForRouter(ctx, dstRouterID)
	if err != nil {
		return nil, err
	}

	return c.client.do(ctx, http.MethodPatch, "/configuration_managers/"+dstManagerID+"/", src, "Configuration Manager")
}

// SetLANIPAddress implements ncm.ConfigManagersClient.SetLANIPAddress.
func (c *ConfigManagersClient) SetLANIPAddress(ctx context.Context, routerID, ipAddress, netmask string) (*ncm.CallResult, error) {
	lan := map[string]interface{}{"ip_address": ipAddress}
	if netmask != "" {
		lan["netmask"] = netmask
	}

	payload := map[string]interface{}{
		"configuration": []interface{}{
			map[string]interface{}{
				"lan": map[string]interface{}{"0": lan},
			},
			[]interface{}{},
		},
	}

	return c.PatchForRouter(ctx, routerID, payload)
}

// Suspend implements ncm.ConfigManagersClient.Suspend.
func (c *ConfigManagersClient) Suspend(ctx context.Context, routerID string, suspended bool) (*ncm.CallResult, error) {
	managerID, err := c.IDForRouter(ctx, routerID)
	if err != nil {
		return nil, err
	}

	body := map[string]bool{"suspended": suspended}

	return c.client.do(ctx, http.MethodPut, "/configuration_managers/"+managerID+"/", body, "Configuration Manager")
}

// stripMaskedSecrets removes "*" placeholder credentials in place.
func stripMaskedSecrets(value interface{}) {
	switch v := value.(type) {
	case ncm.Record:
		stripMaskedMap(v)
	case map[string]interface{}:
		stripMaskedMap(v)
	case []interface{}:
		for _, item := range v {
			stripMaskedSecrets(item)
		}
	}
}

func stripMaskedMap(m map[string]interface{}) {
	for key, val := range m {
		if key == "password" || key == "wpapsk" {
			if s, ok := val.(string); ok && s == "*" {
				delete(m, key)

				continue
			}
		}

		stripMaskedSecrets(val)
	}
}
