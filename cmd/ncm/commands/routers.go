package commands

import (
	"context"
	"fmt"

	"github.com/netcloudkit/ncm-client/pkg/ncm"
	"github.com/spf13/cobra"
)

func listRouters(ctx context.Context, client ncm.Client, account, group string, params ncm.Params) (*ncm.ResultSet, error) {
	switch {
	case account != "":
		return client.Routers().ForAccount(ctx, account, params)
	case group != "":
		return client.Routers().ForGroup(ctx, group, params)
	default:
		return client.Routers().List(ctx, params)
	}
}

// NewRoutersCommand creates the routers command group.
func NewRoutersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "routers",
		Aliases: []string{"router"},
		Short:   "Manage routers",
		Long:    "List, inspect, and operate on NetCloud routers",
	}

	cmd.AddCommand(newRoutersListCommand())
	cmd.AddCommand(newRoutersGetCommand())
	cmd.AddCommand(newRoutersRenameCommand())
	cmd.AddCommand(newRoutersRebootCommand())
	cmd.AddCommand(newRoutersLogsCommand())
	cmd.AddCommand(newRoutersDeleteCommand())

	return cmd
}

func newRoutersListCommand() *cobra.Command {
	var (
		filters []string
		account string
		group   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List routers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params, err := parseFilterFlags(filters)
			if err != nil {
				return err
			}

			ctx := context.Background()

			routers, err := listRouters(ctx, client, account, group, params)
			if err != nil {
				return fmt.Errorf("failed to list routers: %w", err)
			}

			return renderRecords(routers, "id", "name", "state", "group", "account")
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "query filter (key=value, repeatable)")
	cmd.Flags().StringVar(&account, "account", "", "restrict to an account ID")
	cmd.Flags().StringVar(&group, "group", "", "restrict to a group ID")

	return cmd
}

func newRoutersGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get ROUTER_NAME_OR_ID",
		Short: "Get a router",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			router, err := client.Routers().GetByID(ctx, args[0])
			if err != nil {
				router, err = client.Routers().GetByName(ctx, args[0])
			}

			if err != nil {
				return err
			}

			return renderRecord(router)
		},
	}

	return cmd
}

func newRoutersRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename ROUTER_NAME NEW_NAME",
		Short: "Rename a router",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Routers().RenameByName(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			return reportCallResult("Rename Router", result)
		},
	}

	return cmd
}

func newRoutersRebootCommand() *cobra.Command {
	var group bool

	cmd := &cobra.Command{
		Use:   "reboot ID",
		Short: "Reboot a router or a whole group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if group {
				result, err := client.Routers().RebootGroup(ctx, args[0])
				if err != nil {
					return err
				}

				return reportCallResult("Reboot Group", result)
			}

			result, err := client.Routers().Reboot(ctx, args[0])
			if err != nil {
				return err
			}

			return reportCallResult("Reboot Device", result)
		},
	}

	cmd.Flags().BoolVar(&group, "group", false, "treat ID as a group ID and reboot every member")

	return cmd
}

func newRoutersLogsCommand() *cobra.Command {
	var (
		date     string
		tzOffset int
	)

	cmd := &cobra.Command{
		Use:   "logs ROUTER_ID",
		Short: "Show router logs",
		Long:  "Show router logs for the last 24 hours, or for a specific day with --date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if date != "" {
				logs, err := client.Routers().LogsForDate(ctx, args[0], date, tzOffset)
				if err != nil {
					return err
				}

				return renderRecords(logs, "created_at", "level", "source", "message")
			}

			logs, err := client.Routers().LogsLast24Hours(ctx, args[0], tzOffset)
			if err != nil {
				return err
			}

			return renderRecords(logs, "created_at", "level", "source", "message")
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to fetch (YYYY-MM-DD)")
	cmd.Flags().IntVar(&tzOffset, "tz-offset", 0, "timezone offset in hours applied to the window")

	return cmd
}

func newRoutersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ROUTER_NAME",
		Short: "Delete a router",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmDeletion("router", args[0]) {
				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Routers().DeleteByName(context.Background(), args[0])
			if err != nil {
				return err
			}

			return reportCallResult("Delete Router", result)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
