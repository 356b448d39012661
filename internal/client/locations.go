package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// LocationsClient implements ncm.LocationsClient.
type LocationsClient struct {
	client *Client
}

// NewLocationsClient creates a new locations client.
func NewLocationsClient(client *Client) *LocationsClient {
	return &LocationsClient{client: client}
}

var locationsAllowedParams = []string{
	"id", "id__in", "router", "limit", "offset",
}

// List implements ncm.LocationsClient.List.
func (c *LocationsClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/locations/", "Locations", params, locationsAllowedParams)
}

// Create implements ncm.LocationsClient.Create.
func (c *LocationsClient) Create(ctx context.Context, accountID string, latitude, longitude float64, routerID string) (*ncm.CallResult, error) {
	body := map[string]interface{}{
		"account":   c.client.BaseURL() + "/accounts/" + accountID + "/",
		"accuracy":  0,
		"latitude":  latitude,
		"longitude": longitude,
		"method":    "manual",
		"router":    c.client.BaseURL() + "/routers/" + routerID + "/",
	}

	return c.client.do(ctx, http.MethodPost, "/locations/", body, "Locations")
}

// DeleteForRouter implements ncm.LocationsClient.DeleteForRouter.
func (c *LocationsClient) DeleteForRouter(ctx context.Context, routerID string) (*ncm.CallResult, error) {
	resultSet, err := c.List(ctx, ncm.Params{"router": routerID})
	if err != nil {
		return nil, err
	}

	location, err := resultSet.First()
	if err != nil {
		return nil, fmt.Errorf("router %s: %w", routerID, ncm.ErrLocationNotFound)
	}

	return c.client.do(ctx, http.MethodDelete, "/locations/"+location.ID()+"/", nil, "Locations")
}
