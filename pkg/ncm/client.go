package ncm

import (
	"context"
	"time"
)

// AccountsClient provides access to accounts and subaccounts.
type AccountsClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
	GetByID(ctx context.Context, accountID string) (Record, error)
	GetByName(ctx context.Context, name string) (Record, error)
	CreateSubaccount(ctx context.Context, parentAccountID, name string) (*CallResult, error)
	CreateSubaccountByParentName(ctx context.Context, parentName, name string) (*CallResult, error)
	RenameSubaccount(ctx context.Context, subaccountID, newName string) (*CallResult, error)
	RenameSubaccountByName(ctx context.Context, name, newName string) (*CallResult, error)
	DeleteSubaccount(ctx context.Context, subaccountID string) (*CallResult, error)
	DeleteSubaccountByName(ctx context.Context, name string) (*CallResult, error)
}

// ActivityLogsClient provides access to the account activity log.
type ActivityLogsClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
}

// AlertsClient provides access to device alerts.
type AlertsClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
}

// RouterAlertsClient provides access to router alerts, including the
// timezone-aware date-window helpers.
type RouterAlertsClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
	// Last24Hours lists router alerts created in the last 24 hours,
	// ordered oldest first. tzOffsetHours shifts the window for callers
	// not in UTC.
	Last24Hours(ctx context.Context, tzOffsetHours int, params Params) (*ResultSet, error)
	// ForDate lists router alerts created on the given date (YYYY-MM-DD),
	// ordered oldest first.
	ForDate(ctx context.Context, date string, tzOffsetHours int, params Params) (*ResultSet, error)
}

// ConfigManagersClient provides access to device configuration managers.
type ConfigManagersClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
	// IDForRouter resolves the configuration manager ID for a router.
	IDForRouter(ctx context.Context, routerID string) (string, error)
	Update(ctx context.Context, managerID string, configuration interface{}) (*CallResult, error)
	// PatchForRouter applies a configuration fragment to the router's
	// configuration manager, resolving the manager ID first.
	PatchForRouter(ctx context.Context, routerID string, configuration interface{}) (*CallResult, error)
	// CopyRouterConfiguration copies the source router's pending
	// configuration onto the destination router.
	CopyRouterConfiguration(ctx context.Context, srcRouterID, dstRouterID string) (*CallResult, error)
	// SetLANIPAddress patches the primary LAN IP address and netmask of
	// the router's configuration.
	SetLANIPAddress(ctx context.Context, routerID, ipAddress, netmask string) (*CallResult, error)
	// Suspend pauses or resumes configuration synchronization for the
	// router's configuration manager.
	Suspend(ctx context.Context, routerID string, suspended bool) (*CallResult, error)
}

// FailoversClient provides access to WAN failover events.
type FailoversClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
}

// FirmwaresClient provides access to firmware versions.
type FirmwaresClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
	// ForProductByVersion resolves the firmware record for a product ID
	// and version string (e.g. "7.2.0").
	ForProductByVersion(ctx context.Context, productID, version string) (Record, error)
	// ForProductNameByVersion resolves the firmware record by product
	// name instead of ID.
	ForProductNameByVersion(ctx context.Context, productName, version string) (Record, error)
}

// GroupsClient provides access to router groups.
type GroupsClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
	GetByID(ctx context.Context, groupID string) (Record, error)
	GetByName(ctx context.Context, name string) (Record, error)
	Create(ctx context.Context, parentAccountID, name, productName, firmwareVersion string) (*CallResult, error)
	CreateByParentName(ctx context.Context, parentAccountName, name, productName, firmwareVersion string) (*CallResult, error)
	Rename(ctx context.Context, groupID, newName string) (*CallResult, error)
	RenameByName(ctx context.Context, name, newName string) (*CallResult, error)
	Delete(ctx context.Context, groupID string) (*CallResult, error)
	DeleteByName(ctx context.Context, name string) (*CallResult, error)
	// PatchConfiguration applies a configuration fragment to the group's
	// target configuration.
	PatchConfiguration(ctx context.Context, groupID string, configuration interface{}) (*CallResult, error)
}

// HistoricalLocationsClient provides access to historical GPS locations.
type HistoricalLocationsClient interface {
	ForRouter(ctx context.Context, routerID string, params Params) (*ResultSet, error)
	ForRouterAndDate(ctx context.Context, routerID, date string, tzOffsetHours int, params Params) (*ResultSet, error)
}

// LocationsClient provides access to current device locations.
type LocationsClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
	Create(ctx context.Context, accountID string, latitude, longitude float64, routerID string) (*CallResult, error)
	// DeleteForRouter removes the location record attached to a router.
	DeleteForRouter(ctx context.Context, routerID string) (*CallResult, error)
}

// NetDevicesClient provides access to network interfaces and their sample
// streams.
type NetDevicesClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
	ForRouter(ctx context.Context, routerID string, params Params) (*ResultSet, error)
	ForRouterByMode(ctx context.Context, routerID, mode string, params Params) (*ResultSet, error)
	Health(ctx context.Context, params Params) (*ResultSet, error)
	Metrics(ctx context.Context, params Params) (*ResultSet, error)
	// MetricsForWAN returns the latest metrics for every WAN interface on
	// the account, resolving the interface IDs first.
	MetricsForWAN(ctx context.Context, params Params) (*ResultSet, error)
	// MetricsForMDM returns the latest metrics for every modem interface
	// on the account.
	MetricsForMDM(ctx context.Context, params Params) (*ResultSet, error)
	SignalSamples(ctx context.Context, params Params) (*ResultSet, error)
	UsageSamples(ctx context.Context, params Params) (*ResultSet, error)
}

// ProductsClient provides access to the router product catalog.
type ProductsClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
	GetByID(ctx context.Context, productID string) (Record, error)
	GetByName(ctx context.Context, name string) (Record, error)
}

// RoutersClient provides access to routers, their logs, and their sample
// streams.
type RoutersClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
	GetByID(ctx context.Context, routerID string) (Record, error)
	GetByName(ctx context.Context, name string) (Record, error)
	ForAccount(ctx context.Context, accountID string, params Params) (*ResultSet, error)
	ForGroup(ctx context.Context, groupID string, params Params) (*ResultSet, error)
	Rename(ctx context.Context, routerID, newName string) (*CallResult, error)
	RenameByName(ctx context.Context, name, newName string) (*CallResult, error)
	AssignToGroup(ctx context.Context, routerID, groupID string) (*CallResult, error)
	AssignToAccount(ctx context.Context, routerID, accountID string) (*CallResult, error)
	Delete(ctx context.Context, routerID string) (*CallResult, error)
	DeleteByName(ctx context.Context, name string) (*CallResult, error)
	SetCustom1(ctx context.Context, routerID, text string) (*CallResult, error)
	SetCustom2(ctx context.Context, routerID, text string) (*CallResult, error)
	Reboot(ctx context.Context, routerID string) (*CallResult, error)
	RebootGroup(ctx context.Context, groupID string) (*CallResult, error)
	Logs(ctx context.Context, routerID string, params Params) (*ResultSet, error)
	LogsLast24Hours(ctx context.Context, routerID string, tzOffsetHours int) (*ResultSet, error)
	LogsForDate(ctx context.Context, routerID, date string, tzOffsetHours int) (*ResultSet, error)
	StateSamples(ctx context.Context, params Params) (*ResultSet, error)
	StreamUsageSamples(ctx context.Context, params Params) (*ResultSet, error)
}

// SpeedTestsClient provides access to speed test runs.
type SpeedTestsClient interface {
	Create(ctx context.Context, accountID string, netDeviceIDs []string, config interface{}) (*CallResult, error)
	Get(ctx context.Context, speedTestID string) (Record, error)
	Delete(ctx context.Context, speedTestID string) (*CallResult, error)
}

// DeviceAppsClient provides access to the NCM device application catalog
// and rollout state.
type DeviceAppsClient interface {
	List(ctx context.Context, params Params) (*ResultSet, error)
	Versions(ctx context.Context, params Params) (*ResultSet, error)
	Bindings(ctx context.Context, params Params) (*ResultSet, error)
	States(ctx context.Context, params Params) (*ResultSet, error)
}

// DeviceClients provides access to device-centric resource clients.
type DeviceClients interface {
	Routers() RoutersClient
	NetDevices() NetDevicesClient
	ConfigManagers() ConfigManagersClient
	Locations() LocationsClient
	HistoricalLocations() HistoricalLocationsClient
}

// FleetClients provides access to account-structure resource clients.
type FleetClients interface {
	Accounts() AccountsClient
	Groups() GroupsClient
	Products() ProductsClient
	Firmwares() FirmwaresClient
	DeviceApps() DeviceAppsClient
}

// TelemetryClients provides access to event and measurement resource
// clients.
type TelemetryClients interface {
	ActivityLogs() ActivityLogsClient
	Alerts() AlertsClient
	RouterAlerts() RouterAlertsClient
	Failovers() FailoversClient
	SpeedTests() SpeedTestsClient
}

// Client is the full NCM API client surface.
type Client interface {
	DeviceClients
	FleetClients
	TelemetryClients

	// SetKeys validates and installs a new credential set for subsequent
	// calls.
	SetKeys(keys *APIKeys) error
	// BaseURL returns the API base URL the client dispatches against.
	BaseURL() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an ncm.Client.
//
// BaseURL is normalized by ncmclient.New: a trailing slash is trimmed and
// "https://" is added when no scheme is present. When empty, the CP_BASE_URL
// environment variable is consulted before falling back to the production
// endpoint.
//
// Keys may be nil at construction time and installed later via SetKeys;
// every API call fails with a MissingCredentialError until all four keys
// are present.
type Config struct {
	// BaseURL: base URL for the NCM API
	// (e.g. "https://www.cradlepointecm.com/api/v2").
	BaseURL string

	// Keys: the four API key credentials sent as request headers.
	Keys *APIKeys

	// LogEvents: when true, the client logs an advisory message for every
	// call outcome (success, deleted, unauthorized, ...).
	LogEvents bool

	// HTTPTimeout: optional default HTTP timeout. Most calls should rely
	// on context timeouts instead.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, and connection errors). If 0, a sensible default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
