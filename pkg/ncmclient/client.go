// Package ncmclient provides the main entry point for creating NCM API clients
package ncmclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/netcloudkit/ncm-client/internal/client"
	"github.com/netcloudkit/ncm-client/internal/constants"
	"github.com/netcloudkit/ncm-client/pkg/ncm"
)

// New creates a new NCM API client.
//
// The base URL is normalized: a trailing slash is trimmed and "https://" is
// added when no scheme is present. When Config.BaseURL is empty the
// CP_BASE_URL environment variable is consulted, then the production
// endpoint.
func New(config *ncm.Config) (ncm.Client, error) {
	if config == nil {
		return nil, ncm.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = os.Getenv(constants.EnvBaseURL)
	}

	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	ncmClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return ncmClient, nil
}

// NewWithKeys creates a new client for the production endpoint with the
// given credentials.
func NewWithKeys(keys *ncm.APIKeys) (ncm.Client, error) {
	return New(&ncm.Config{Keys: keys})
}

// NewWithEndpoint creates a new client for a specific endpoint without
// credentials; install them later via SetKeys.
func NewWithEndpoint(endpoint string) (ncm.Client, error) {
	return New(&ncm.Config{BaseURL: endpoint})
}
