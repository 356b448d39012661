package client

import (
	"context"
	"fmt"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// FirmwaresClient implements ncm.FirmwaresClient.
type FirmwaresClient struct {
	client *Client
}

// NewFirmwaresClient creates a new firmwares client.
func NewFirmwaresClient(client *Client) *FirmwaresClient {
	return &FirmwaresClient{client: client}
}

var firmwaresAllowedParams = []string{
	"id", "id__in", "version", "version__in", "limit", "offset",
}

// List implements ncm.FirmwaresClient.List.
func (c *FirmwaresClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/firmwares/", "Firmwares", params, firmwaresAllowedParams)
}

// ForProductByVersion implements ncm.FirmwaresClient.ForProductByVersion.
// Firmware records reference their product by resource URL, so matches are
// found by scanning the version's records for the product link.
func (c *FirmwaresClient) ForProductByVersion(ctx context.Context, productID, version string) (ncm.Record, error) {
	resultSet, err := c.List(ctx, ncm.Params{"version": version})
	if err != nil {
		return nil, err
	}

	productURL := c.client.BaseURL() + "/products/" + productID + "/"

	for _, firmware := range resultSet.Records {
		if firmware.String("product") == productURL {
			return firmware, nil
		}
	}

	return nil, fmt.Errorf("product %s version %s: %w", productID, version, ncm.ErrFirmwareNotFound)
}

// ForProductNameByVersion implements ncm.FirmwaresClient.ForProductNameByVersion.
func (c *FirmwaresClient) ForProductNameByVersion(ctx context.Context, productName, version string) (ncm.Record, error) {
	product, err := c.client.Products().GetByName(ctx, productName)
	if err != nil {
		return nil, err
	}

	return c.ForProductByVersion(ctx, product.ID(), version)
}
