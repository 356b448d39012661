package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/netcloudkit/ncm-client/internal/constants"
	"github.com/netcloudkit/ncm-client/pkg/ncm"
	"github.com/netcloudkit/ncm-client/pkg/ncmclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration persisted under ~/.ncm/config.yml.
type Config struct {
	BaseURL string      `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Keys    ncm.APIKeys `json:"keys,omitempty"     yaml:"keys,omitempty"`
	Output  string      `json:"output"             yaml:"output"`
}

func loadConfig() *Config {
	return &Config{
		BaseURL: viper.GetString("base_url"),
		Output:  viper.GetString("output"),
		Keys: ncm.APIKeys{
			CPAPIID:   viper.GetString("keys.cp_api_id"),
			CPAPIKey:  viper.GetString("keys.cp_api_key"),
			ECMAPIID:  viper.GetString("keys.ecm_api_id"),
			ECMAPIKey: viper.GetString("keys.ecm_api_key"),
		},
	}
}

func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".ncm")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// createClient builds an API client from the persisted configuration and
// any overriding flags or environment variables.
func createClient() (ncm.Client, error) {
	config := loadConfig()

	if err := config.Keys.Validate(); err != nil {
		return nil, fmt.Errorf("%w, use 'ncm keys set' first", err)
	}

	client, err := ncmclient.New(&ncm.Config{
		BaseURL:   config.BaseURL,
		Keys:      &config.Keys,
		LogEvents: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
