// Package client implements the concrete NCM API client.
package client

import (
	"time"

	"github.com/netcloudkit/ncm-client/internal/constants"
	"github.com/netcloudkit/ncm-client/internal/http"
	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// Client implements the ncm.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     ncm.Logger
	logEvents  bool
	keys       *ncm.APIKeys

	// Resource clients
	accounts            ncm.AccountsClient
	activityLogs        ncm.ActivityLogsClient
	alerts              ncm.AlertsClient
	routerAlerts        ncm.RouterAlertsClient
	configManagers      ncm.ConfigManagersClient
	failovers           ncm.FailoversClient
	firmwares           ncm.FirmwaresClient
	groups              ncm.GroupsClient
	historicalLocations ncm.HistoricalLocationsClient
	locations           ncm.LocationsClient
	netDevices          ncm.NetDevicesClient
	products            ncm.ProductsClient
	routers             ncm.RoutersClient
	speedTests          ncm.SpeedTestsClient
	deviceApps          ncm.DeviceAppsClient
}

// New creates a new NCM API client. config.BaseURL must already be
// normalized (pkg/ncmclient does this). Keys may be nil; calls fail with a
// credential error until SetKeys installs a complete set.
func New(config *ncm.Config) (*Client, error) {
	if config == nil {
		return nil, ncm.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, ncm.ErrBaseURLRequired
	}

	if config.Keys != nil {
		if err := config.Keys.Validate(); err != nil {
			return nil, err
		}
	}

	httpClient := http.NewClient(config.BaseURL, config.Keys, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
		logEvents:  config.LogEvents,
		keys:       config.Keys,
	}

	client.initializeResourceClients()

	return client, nil
}

// httpOptions translates client configuration into transport options.
func httpOptions(config *ncm.Config) []http.Option {
	opts := []http.Option{}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return opts
}

// initializeResourceClients wires every resource client to the transport.
func (c *Client) initializeResourceClients() {
	c.accounts = NewAccountsClient(c)
	c.activityLogs = NewActivityLogsClient(c)
	c.alerts = NewAlertsClient(c)
	c.routerAlerts = NewRouterAlertsClient(c)
	c.configManagers = NewConfigManagersClient(c)
	c.failovers = NewFailoversClient(c)
	c.firmwares = NewFirmwaresClient(c)
	c.groups = NewGroupsClient(c)
	c.historicalLocations = NewHistoricalLocationsClient(c)
	c.locations = NewLocationsClient(c)
	c.netDevices = NewNetDevicesClient(c)
	c.products = NewProductsClient(c)
	c.routers = NewRoutersClient(c)
	c.speedTests = NewSpeedTestsClient(c)
	c.deviceApps = NewDeviceAppsClient(c)
}

// SetKeys validates and installs a new credential set.
func (c *Client) SetKeys(keys *ncm.APIKeys) error {
	if err := keys.Validate(); err != nil {
		return err
	}

	c.keys = keys
	c.httpClient.SetKeys(keys)

	return nil
}

// BaseURL returns the API base URL the client dispatches against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ensureKeys rejects calls made before a complete credential set is
// installed.
func (c *Client) ensureKeys() error {
	if c.keys == nil {
		return ncm.ErrKeysRequired
	}

	return c.keys.Validate()
}

// report logs the advisory outcome message when event logging is enabled.
func (c *Client) report(label string, result *ncm.CallResult) {
	if !c.logEvents || c.logger == nil || result == nil {
		return
	}

	fields := map[string]interface{}{
		"status": result.StatusCode,
	}

	switch result.Outcome {
	case ncm.OutcomeSuccess, ncm.OutcomeSuccessWithPayload, ncm.OutcomeDeleted:
		c.logger.Info(result.Outcome.Notice(label), fields)
	default:
		c.logger.Warn(result.Outcome.Notice(label), fields)
	}
}

// Accounts returns the accounts resource client.
func (c *Client) Accounts() ncm.AccountsClient { return c.accounts }

// ActivityLogs returns the activity log resource client.
func (c *Client) ActivityLogs() ncm.ActivityLogsClient { return c.activityLogs }

// Alerts returns the alerts resource client.
func (c *Client) Alerts() ncm.AlertsClient { return c.alerts }

// RouterAlerts returns the router alerts resource client.
func (c *Client) RouterAlerts() ncm.RouterAlertsClient { return c.routerAlerts }

// ConfigManagers returns the configuration managers resource client.
func (c *Client) ConfigManagers() ncm.ConfigManagersClient { return c.configManagers }

// Failovers returns the failover events resource client.
func (c *Client) Failovers() ncm.FailoversClient { return c.failovers }

// Firmwares returns the firmwares resource client.
func (c *Client) Firmwares() ncm.FirmwaresClient { return c.firmwares }

// Groups returns the groups resource client.
func (c *Client) Groups() ncm.GroupsClient { return c.groups }

// HistoricalLocations returns the historical locations resource client.
func (c *Client) HistoricalLocations() ncm.HistoricalLocationsClient { return c.historicalLocations }

// Locations returns the locations resource client.
func (c *Client) Locations() ncm.LocationsClient { return c.locations }

// NetDevices returns the net devices resource client.
func (c *Client) NetDevices() ncm.NetDevicesClient { return c.netDevices }

// Products returns the products resource client.
func (c *Client) Products() ncm.ProductsClient { return c.products }

// Routers returns the routers resource client.
func (c *Client) Routers() ncm.RoutersClient { return c.routers }

// SpeedTests returns the speed tests resource client.
func (c *Client) SpeedTests() ncm.SpeedTestsClient { return c.speedTests }

// DeviceApps returns the device apps resource client.
func (c *Client) DeviceApps() ncm.DeviceAppsClient { return c.deviceApps }

var _ ncm.Client = (*Client)(nil)

// timeWindow renders a [start, end) created-at window as wire filters.
func timeWindow(start, end time.Time) (string, string) {
	return start.Format(constants.TimestampLayout), end.Format(constants.TimestampLayout)
}
