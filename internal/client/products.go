package client

import (
	"context"
	"fmt"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// ProductsClient implements ncm.ProductsClient.
type ProductsClient struct {
	client *Client
}

// NewProductsClient creates a new products client.
func NewProductsClient(client *Client) *ProductsClient {
	return &ProductsClient{client: client}
}

var productsAllowedParams = []string{
	"id", "id__in", "limit", "offset",
}

// List implements ncm.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/products/", "Products", params, productsAllowedParams)
}

// GetByID implements ncm.ProductsClient.GetByID.
func (c *ProductsClient) GetByID(ctx context.Context, productID string) (ncm.Record, error) {
	resultSet, err := c.List(ctx, ncm.Params{"id": productID})
	if err != nil {
		return nil, err
	}

	record, err := resultSet.First()
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", productID, ncm.ErrProductNotFound)
	}

	return record, nil
}

// GetByName implements ncm.ProductsClient.GetByName. The products endpoint
// does not filter by name, so the catalog is scanned client-side.
func (c *ProductsClient) GetByName(ctx context.Context, name string) (ncm.Record, error) {
	resultSet, err := c.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	for _, product := range resultSet.Records {
		if product.String("name") == name {
			return product, nil
		}
	}

	return nil, fmt.Errorf("product %q: %w", name, ncm.ErrProductNotFound)
}
