package commands

import (
	"context"
	"fmt"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
	"github.com/spf13/cobra"
)

func routerAlertParams(routerID string) ncm.Params {
	return ncm.Params{"router": routerID}
}

// NewAlertsCommand creates the alerts command group.
func NewAlertsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "alerts",
		Aliases: []string{"alert"},
		Short:   "View alerts",
		Long:    "List account alerts and per-router alert history",
	}

	cmd.AddCommand(newAlertsListCommand())
	cmd.AddCommand(newRouterAlertsCommand())

	return cmd
}

func newAlertsListCommand() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List account alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params, err := parseFilterFlags(filters)
			if err != nil {
				return err
			}

			alerts, err := client.Alerts().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list alerts: %w", err)
			}

			return renderRecords(alerts, "created_at", "type", "friendly_info", "router")
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "query filter (key=value, repeatable)")

	return cmd
}

func newRouterAlertsCommand() *cobra.Command {
	var (
		date     string
		tzOffset int
	)

	cmd := &cobra.Command{
		Use:   "router ROUTER_ID",
		Short: "Show alerts for a router",
		Long:  "Show router alerts for the last 24 hours, or for a specific day with --date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := routerAlertParams(args[0])

			if date != "" {
				alerts, err := client.RouterAlerts().ForDate(ctx, date, tzOffset, params)
				if err != nil {
					return err
				}

				return renderRecords(alerts, "created_at", "type", "friendly_info")
			}

			alerts, err := client.RouterAlerts().Last24Hours(ctx, tzOffset, params)
			if err != nil {
				return err
			}

			return renderRecords(alerts, "created_at", "type", "friendly_info")
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to fetch (YYYY-MM-DD)")
	cmd.Flags().IntVar(&tzOffset, "tz-offset", 0, "timezone offset in hours applied to the window")

	return cmd
}
