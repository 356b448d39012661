package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// SpeedTestsClient implements ncm.SpeedTestsClient.
type SpeedTestsClient struct {
	client *Client
}

// NewSpeedTestsClient creates a new speed tests client.
func NewSpeedTestsClient(client *Client) *SpeedTestsClient {
	return &SpeedTestsClient{client: client}
}

// Create implements ncm.SpeedTestsClient.Create. The test starts on every
// named interface; poll Get for results.
func (c *SpeedTestsClient) Create(ctx context.Context, accountID string, netDeviceIDs []string, config interface{}) (*ncm.CallResult, error) {
	body := map[string]interface{}{
		"account":        c.client.BaseURL() + "/accounts/" + accountID + "/",
		"net_device_ids": netDeviceIDs,
	}
	if config != nil {
		body["config"] = config
	}

	return c.client.do(ctx, http.MethodPost, "/speed_test/", body, "Speed Test")
}

// Get implements ncm.SpeedTestsClient.Get. The job record carries the
// latest known state of the tests.
func (c *SpeedTestsClient) Get(ctx context.Context, speedTestID string) (ncm.Record, error) {
	result, err := c.client.get(ctx, "/speed_test/"+speedTestID+"/", "Speed Test", nil)
	if err != nil {
		return nil, err
	}

	if !result.OK() {
		return nil, fmt.Errorf("speed test %s: unexpected status %d", speedTestID, result.StatusCode)
	}

	var envelope struct {
		Data ncm.Record `json:"data"`
	}

	err = json.Unmarshal(result.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing speed test: %w", err)
	}

	return envelope.Data, nil
}

// Delete implements ncm.SpeedTestsClient.Delete. Deleting a job aborts it,
// but a test already started on a router will finish.
func (c *SpeedTestsClient) Delete(ctx context.Context, speedTestID string) (*ncm.CallResult, error) {
	return c.client.do(ctx, http.MethodDelete, "/speed_test/"+speedTestID+"/", nil, "Speed Test")
}
