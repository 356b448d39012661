package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// GroupsClient implements ncm.GroupsClient.
type GroupsClient struct {
	client *Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(client *Client) *GroupsClient {
	return &GroupsClient{client: client}
}

var groupsAllowedParams = []string{
	"account", "account__in", "id", "id__in", "name", "name__in", "expand", "limit", "offset",
}

// List implements ncm.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/groups/", "Groups", params, groupsAllowedParams)
}

// GetByID implements ncm.GroupsClient.GetByID.
func (c *GroupsClient) GetByID(ctx context.Context, groupID string) (ncm.Record, error) {
	resultSet, err := c.List(ctx, ncm.Params{"id": groupID})
	if err != nil {
		return nil, err
	}

	record, err := resultSet.First()
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", groupID, ncm.ErrGroupNotFound)
	}

	return record, nil
}

// GetByName implements ncm.GroupsClient.GetByName.
func (c *GroupsClient) GetByName(ctx context.Context, name string) (ncm.Record, error) {
	resultSet, err := c.List(ctx, ncm.Params{"name": name})
	if err != nil {
		return nil, err
	}

	record, err := resultSet.First()
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", name, ncm.ErrGroupNotFound)
	}

	return record, nil
}

// Create implements ncm.GroupsClient.Create. The product and firmware are
// referenced by resource URL, resolved from their names first.
func (c *GroupsClient) Create(ctx context.Context, parentAccountID, name, productName, firmwareVersion string) (*ncm.CallResult, error) {
	firmware, err := c.client.Firmwares().ForProductNameByVersion(ctx, productName, firmwareVersion)
	if err != nil {
		return nil, err
	}

	product, err := c.client.Products().GetByName(ctx, productName)
	if err != nil {
		return nil, err
	}

	body := map[string]string{
		"account":         "/api/v1/accounts/" + parentAccountID + "/",
		"name":            name,
		"product":         product.String("resource_url"),
		"target_firmware": firmware.String("resource_url"),
	}

	return c.client.do(ctx, http.MethodPost, "/groups/", body, "Group")
}

// CreateByParentName implements ncm.GroupsClient.CreateByParentName.
func (c *GroupsClient) CreateByParentName(ctx context.Context, parentAccountName, name, productName, firmwareVersion string) (*ncm.CallResult, error) {
	parent, err := c.client.Accounts().GetByName(ctx, parentAccountName)
	if err != nil {
		return nil, err
	}

	return c.Create(ctx, parent.ID(), name, productName, firmwareVersion)
}

// Rename implements ncm.GroupsClient.Rename.
func (c *GroupsClient) Rename(ctx context.Context, groupID, newName string) (*ncm.CallResult, error) {
	body := map[string]string{"name": newName}

	return c.client.do(ctx, http.MethodPut, "/groups/"+groupID+"/", body, "Group")
}

// RenameByName implements ncm.GroupsClient.RenameByName.
func (c *GroupsClient) RenameByName(ctx context.Context, name, newName string) (*ncm.CallResult, error) {
	group, err := c.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return c.Rename(ctx, group.ID(), newName)
}

// Delete implements ncm.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, groupID string) (*ncm.CallResult, error) {
	return c.client.do(ctx, http.MethodDelete, "/groups/"+groupID+"/", nil, "Group")
}

// DeleteByName implements ncm.GroupsClient.DeleteByName.
func (c *GroupsClient) DeleteByName(ctx context.Context, name string) (*ncm.CallResult, error) {
	group, err := c.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return c.Delete(ctx, group.ID())
}

// PatchConfiguration implements ncm.GroupsClient.PatchConfiguration.
func (c *GroupsClient) PatchConfiguration(ctx context.Context, groupID string, configuration interface{}) (*ncm.CallResult, error) {
	return c.client.do(ctx, http.MethodPatch, "/groups/"+groupID+"/", configuration, "Group")
}
