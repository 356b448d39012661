package commands

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/netcloudkit/ncm-client/internal/constants"
	"github.com/netcloudkit/ncm-client/pkg/ncm"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewKeysCommand creates the keys command group.
func NewKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage API credentials",
		Long:  "Store and inspect the four NetCloud API credential headers",
	}

	cmd.AddCommand(newKeysSetCommand())
	cmd.AddCommand(newKeysShowCommand())

	return cmd
}

func newKeysSetCommand() *cobra.Command {
	var (
		cpAPIID   string
		cpAPIKey  string
		ecmAPIID  string
		ecmAPIKey string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set API credentials",
		Long:  "Store the X-CP-API and X-ECM-API credential headers in the CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := ncm.APIKeys{
				CPAPIID:   cpAPIID,
				CPAPIKey:  cpAPIKey,
				ECMAPIID:  ecmAPIID,
				ECMAPIKey: ecmAPIKey,
			}

			prompts := []struct {
				label string
				value *string
			}{
				{ncm.HeaderCPAPIID, &keys.CPAPIID},
				{ncm.HeaderCPAPIKey, &keys.CPAPIKey},
				{ncm.HeaderECMID, &keys.ECMAPIID},
				{ncm.HeaderECMKey, &keys.ECMAPIKey},
			}

			for _, prompt := range prompts {
				if *prompt.value != "" {
					continue
				}

				fmt.Printf("%s: ", prompt.label)

				secret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", prompt.label, err)
				}

				fmt.Println()

				*prompt.value = strings.TrimSpace(string(secret))
			}

			if err := keys.Validate(); err != nil {
				return err
			}

			config := loadConfig()
			config.Keys = keys

			if err := saveConfigStruct(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("API credentials saved")

			return nil
		},
	}

	cmd.Flags().StringVar(&cpAPIID, "cp-api-id", "", "X-CP-API-ID header value")
	cmd.Flags().StringVar(&cpAPIKey, "cp-api-key", "", "X-CP-API-KEY header value")
	cmd.Flags().StringVar(&ecmAPIID, "ecm-api-id", "", "X-ECM-API-ID header value")
	cmd.Flags().StringVar(&ecmAPIKey, "ecm-api-key", "", "X-ECM-API-KEY header value")

	return cmd
}

func newKeysShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show configured credentials",
		Long:  "Display which credential headers are configured, with values masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Header", "Value")

			headers := config.Keys.Headers()
			for _, header := range []string{ncm.HeaderCPAPIID, ncm.HeaderCPAPIKey, ncm.HeaderECMID, ncm.HeaderECMKey} {
				masked := constants.NotAvailable
				if headers[header] != "" {
					masked = constants.MaskedSecret
				}

				_ = table.Append([]string{header, masked})
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
