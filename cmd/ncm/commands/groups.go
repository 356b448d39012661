package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewGroupsCommand creates the groups command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage groups",
		Long:    "List and manage NetCloud router groups",
	}

	cmd.AddCommand(newGroupsListCommand())
	cmd.AddCommand(newGroupsCreateCommand())
	cmd.AddCommand(newGroupsRenameCommand())
	cmd.AddCommand(newGroupsDeleteCommand())

	return cmd
}

func newGroupsListCommand() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params, err := parseFilterFlags(filters)
			if err != nil {
				return err
			}

			groups, err := client.Groups().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}

			return renderRecords(groups, "id", "name", "product", "target_firmware")
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "query filter (key=value, repeatable)")

	return cmd
}

func newGroupsCreateCommand() *cobra.Command {
	var (
		accountID       string
		productName     string
		firmwareVersion string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a group",
		Long:  "Create a router group for a product at a specific firmware version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Groups().Create(context.Background(), accountID, args[0], productName, firmwareVersion)
			if err != nil {
				return err
			}

			return reportCallResult("Create Group", result)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "account ID that owns the group (required)")
	cmd.Flags().StringVar(&productName, "product", "", "product name, e.g. IBR200 (required)")
	cmd.Flags().StringVar(&firmwareVersion, "firmware", "", "target firmware version, e.g. 7.2.0 (required)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("firmware")

	return cmd
}

func newGroupsRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename GROUP_NAME NEW_NAME",
		Short: "Rename a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Groups().RenameByName(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			return reportCallResult("Rename Group", result)
		},
	}

	return cmd
}

func newGroupsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete GROUP_NAME",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmDeletion("group", args[0]) {
				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Groups().DeleteByName(context.Background(), args[0])
			if err != nil {
				return err
			}

			return reportCallResult("Delete Group", result)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
