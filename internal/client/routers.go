package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/netcloudkit/ncm-client/internal/constants"
	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// RoutersClient implements ncm.RoutersClient.
type RoutersClient struct {
	client *Client
	now    func() time.Time
}

// NewRoutersClient creates a new routers client.
func NewRoutersClient(client *Client) *RoutersClient {
	return &RoutersClient{client: client, now: time.Now}
}

var routersAllowedParams = []string{
	"account", "account__in", "fields", "group", "group__in", "id", "id__in",
	"ipv4_address", "ipv4_address__in", "mac", "mac__in", "name", "name__in", "state",
	"state__in", "state_updated_at__lt", "state_updated_at__gt", "updated_at__lt",
	"updated_at__gt", "expand", "order_by", "limit", "offset",
}

var routerLogsAllowedParams = []string{
	"router",
	"created_at", "created_at__lt", "created_at__gt", "created_at_timeuuid",
	"created_at_timeuuid__in", "created_at_timeuuid__gt", "created_at_timeuuid__gte",
	"created_at_timeuuid__lt", "created_at_timeuuid__lte", "order_by", "limit", "offset",
}

var routerSamplesAllowedParams = []string{
	"router", "router__in", "created_at", "created_at__lt", "created_at__gt",
	"created_at_timeuuid", "created_at_timeuuid__in", "created_at_timeuuid__gt",
	"created_at_timeuuid__gte", "created_at_timeuuid__lt", "created_at_timeuuid__lte",
	"order_by", "limit", "offset",
}

// List implements ncm.RoutersClient.List.
func (c *RoutersClient) List(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/routers/", "Routers", params, routersAllowedParams)
}

// GetByID implements ncm.RoutersClient.GetByID.
func (c *RoutersClient) GetByID(ctx context.Context, routerID string) (ncm.Record, error) {
	resultSet, err := c.List(ctx, ncm.Params{"id": routerID})
	if err != nil {
		return nil, err
	}

	record, err := resultSet.First()
	if err != nil {
		return nil, fmt.Errorf("router %s: %w", routerID, ncm.ErrRouterNotFound)
	}

	return record, nil
}

// GetByName implements ncm.RoutersClient.GetByName.
func (c *RoutersClient) GetByName(ctx context.Context, name string) (ncm.Record, error) {
	resultSet, err := c.List(ctx, ncm.Params{"name": name})
	if err != nil {
		return nil, err
	}

	record, err := resultSet.First()
	if err != nil {
		return nil, fmt.Errorf("router %q: %w", name, ncm.ErrRouterNotFound)
	}

	return record, nil
}

// ForAccount implements ncm.RoutersClient.ForAccount.
func (c *RoutersClient) ForAccount(ctx context.Context, accountID string, params ncm.Params) (*ncm.ResultSet, error) {
	return c.List(ctx, mergeParams(params, ncm.Params{"account": accountID}))
}

// ForGroup implements ncm.RoutersClient.ForGroup.
func (c *RoutersClient) ForGroup(ctx context.Context, groupID string, params ncm.Params) (*ncm.ResultSet, error) {
	return c.List(ctx, mergeParams(params, ncm.Params{"group": groupID}))
}

// Rename implements ncm.RoutersClient.Rename.
func (c *RoutersClient) Rename(ctx context.Context, routerID, newName string) (*ncm.CallResult, error) {
	body := map[string]string{"name": newName}

	return c.client.do(ctx, http.MethodPut, "/routers/"+routerID+"/", body, "Router")
}

// RenameByName implements ncm.RoutersClient.RenameByName.
func (c *RoutersClient) RenameByName(ctx context.Context, name, newName string) (*ncm.CallResult, error) {
	router, err := c.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return c.Rename(ctx, router.ID(), newName)
}

// AssignToGroup implements ncm.RoutersClient.AssignToGroup.
func (c *RoutersClient) AssignToGroup(ctx context.Context, routerID, groupID string) (*ncm.CallResult, error) {
	body := map[string]string{
		"group": c.client.BaseURL() + "/groups/" + groupID + "/",
	}

	return c.client.do(ctx, http.MethodPut, "/routers/"+routerID+"/", body, "Routers")
}

// AssignToAccount implements ncm.RoutersClient.AssignToAccount.
func (c *RoutersClient) AssignToAccount(ctx context.Context, routerID, accountID string) (*ncm.CallResult, error) {
	body := map[string]string{
		"account": c.client.BaseURL() + "/accounts/" + accountID + "/",
	}

	return c.client.do(ctx, http.MethodPut, "/routers/"+routerID+"/", body, "Routers")
}

// Delete implements ncm.RoutersClient.Delete.
func (c *RoutersClient) Delete(ctx context.Context, routerID string) (*ncm.CallResult, error) {
	return c.client.do(ctx, http.MethodDelete, "/routers/"+routerID+"/", nil, "Router")
}

// DeleteByName implements ncm.RoutersClient.DeleteByName.
func (c *RoutersClient) DeleteByName(ctx context.Context, name string) (*ncm.CallResult, error) {
	router, err := c.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return c.Delete(ctx, router.ID())
}

// SetCustom1 implements ncm.RoutersClient.SetCustom1.
func (c *RoutersClient) SetCustom1(ctx context.Context, routerID, text string) (*ncm.CallResult, error) {
	body := map[string]string{"custom1": text}

	return c.client.do(ctx, http.MethodPut, "/routers/"+routerID+"/", body, "NCM Field Update")
}

// SetCustom2 implements ncm.RoutersClient.SetCustom2.
func (c *RoutersClient) SetCustom2(ctx context.Context, routerID, text string) (*ncm.CallResult, error) {
	body := map[string]string{"custom2": text}

	return c.client.do(ctx, http.MethodPut, "/routers/"+routerID+"/", body, "NCM Field Update")
}

// Reboot implements ncm.RoutersClient.Reboot.
func (c *RoutersClient) Reboot(ctx context.Context, routerID string) (*ncm.CallResult, error) {
	body := map[string]string{
		"router": c.client.BaseURL() + "/routers/" + routerID + "/",
	}

	return c.client.do(ctx, http.MethodPost, "/reboot_activity/", body, "Reboot Device")
}

// RebootGroup implements ncm.RoutersClient.RebootGroup.
func (c *RoutersClient) RebootGroup(ctx context.Context, groupID string) (*ncm.CallResult, error) {
	body := map[string]string{
		"group": c.client.BaseURL() + "/groups/" + groupID + "/",
	}

	return c.client.do(ctx, http.MethodPost, "/reboot_activity/", body, "Reboot Group")
}

// Logs implements ncm.RoutersClient.Logs. Device logs must be enabled on
// the group settings form before the device reports any.
func (c *RoutersClient) Logs(ctx context.Context, routerID string, params ncm.Params) (*ncm.ResultSet, error) {
	merged := mergeParams(params, ncm.Params{"router": routerID})

	return c.client.list(ctx, "/router_logs/", "Router Logs", merged, routerLogsAllowedParams)
}

// LogsLast24Hours implements ncm.RoutersClient.LogsLast24Hours.
func (c *RoutersClient) LogsLast24Hours(ctx context.Context, routerID string, tzOffsetHours int) (*ncm.ResultSet, error) {
	end := c.now().UTC().Add(time.Duration(tzOffsetHours) * time.Hour)
	start := end.Add(-24 * time.Hour)

	return c.Logs(ctx, routerID, windowParams(start, end))
}

// LogsForDate implements ncm.RoutersClient.LogsForDate.
func (c *RoutersClient) LogsForDate(ctx context.Context, routerID, date string, tzOffsetHours int) (*ncm.ResultSet, error) {
	day, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	start := day.Add(time.Duration(tzOffsetHours) * time.Hour)
	end := start.Add(24 * time.Hour)

	return c.Logs(ctx, routerID, windowParams(start, end))
}

// StateSamples implements ncm.RoutersClient.StateSamples.
func (c *RoutersClient) StateSamples(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/router_state_samples/", "Router State Samples", params, routerSamplesAllowedParams)
}

// StreamUsageSamples implements ncm.RoutersClient.StreamUsageSamples.
func (c *RoutersClient) StreamUsageSamples(ctx context.Context, params ncm.Params) (*ncm.ResultSet, error) {
	return c.client.list(ctx, "/router_stream_usage_samples/", "Router Stream Usage Samples", params, routerSamplesAllowedParams)
}
