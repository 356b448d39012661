package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// AccountsClient implements ncm.AccountsClient.
type AccountsClient struct {
	client *Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(client *Client) *AccountsClient {
	return &AccountsClient{client: client}
}

var accountsAllowedParams = []string{
	"account", "account__in", "id", "id__in", "name",
	"name__in", "expand", "limit", "offset",
}

// List implements ncm.AccountsClient.List.
func (c *AccountsClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/accounts/", "Accounts", params, accountsAllowedParams)
}

// GetByID implements ncm.AccountsClient.GetByID.
func (c *AccountsClient) GetByID(ctx context.Context, accountID string) (ncm.Record, error) {
	resultSet, err := c.List(ctx, ncm.Params{"id": accountID})
	if err != nil {
		return nil, err
	}

	record, err := resultSet.First()
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", accountID, ncm.ErrAccountNotFound)
	}

	return record, nil
}

// GetByName implements ncm.AccountsClient.GetByName.
func (c *AccountsClient) GetByName(ctx context.Context, name string) (ncm.Record, error) {
	resultSet, err := c.List(ctx, ncm.Params{"name": name})
	if err != nil {
		return nil, err
	}

	record, err := resultSet.First()
	if err != nil {
		return nil, fmt.Errorf("account %q: %w", name, ncm.ErrAccountNotFound)
	}

	return record, nil
}

// CreateSubaccount implements ncm.AccountsClient.CreateSubaccount.
func (c *AccountsClient) CreateSubaccount(ctx context.Context, parentAccountID, name string) (*ncm.CallResult, error) {
	body := map[string]string{
		"account": "/api/v1/accounts/" + parentAccountID + "/",
		"name":    name,
	}

	return c.client.do(ctx, http.MethodPost, "/accounts/", body, "Subaccount")
}

// CreateSubaccountByParentName implements ncm.AccountsClient.CreateSubaccountByParentName.
func (c *AccountsClient) CreateSubaccountByParentName(ctx context.Context, parentName, name string) (*ncm.CallResult, error) {
	parent, err := c.GetByName(ctx, parentName)
	if err != nil {
		return nil, err
	}

	return c.CreateSubaccount(ctx, parent.ID(), name)
}

// RenameSubaccount implements ncm.AccountsClient.RenameSubaccount.
func (c *AccountsClient) RenameSubaccount(ctx context.Context, subaccountID, newName string) (*ncm.CallResult, error) {
	body := map[string]string{"name": newName}

	return c.client.do(ctx, http.MethodPut, "/accounts/"+subaccountID+"/", body, "Subaccount")
}

// RenameSubaccountByName implements ncm.AccountsClient.RenameSubaccountByName.
func (c *AccountsClient) RenameSubaccountByName(ctx context.Context, name, newName string) (*ncm.CallResult, error) {
	account, err := c.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return c.RenameSubaccount(ctx, account.ID(), newName)
}

// DeleteSubaccount implements ncm.AccountsClient.DeleteSubaccount.
func (c *AccountsClient) DeleteSubaccount(ctx context.Context, subaccountID string) (*ncm.CallResult, error) {
	return c.client.do(ctx, http.MethodDelete, "/accounts/"+subaccountID+"/", nil, "Subaccount")
}

// DeleteSubaccountByName implements ncm.AccountsClient.DeleteSubaccountByName.
func (c *AccountsClient) DeleteSubaccountByName(ctx context.Context, name string) (*ncm.CallResult, error) {
	account, err := c.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return c.DeleteSubaccount(ctx, account.ID())
}
