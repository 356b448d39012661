package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Manage accounts",
		Long:    "List and manage NetCloud accounts and subaccounts",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsGetCommand())
	cmd.AddCommand(newAccountsCreateSubaccountCommand())
	cmd.AddCommand(newAccountsRenameCommand())
	cmd.AddCommand(newAccountsDeleteCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params, err := parseFilterFlags(filters)
			if err != nil {
				return err
			}

			accounts, err := client.Accounts().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			return renderRecords(accounts, "id", "name", "account")
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "query filter (key=value, repeatable)")

	return cmd
}

func newAccountsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get ACCOUNT_NAME_OR_ID",
		Short: "Get an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			account, err := client.Accounts().GetByID(ctx, args[0])
			if err != nil {
				account, err = client.Accounts().GetByName(ctx, args[0])
			}

			if err != nil {
				return err
			}

			return renderRecord(account)
		},
	}

	return cmd
}

func newAccountsCreateSubaccountCommand() *cobra.Command {
	var parentName string

	cmd := &cobra.Command{
		Use:   "create-subaccount NAME",
		Short: "Create a subaccount",
		Long:  "Create a subaccount under the parent named with --parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if parentName == "" {
				return fmt.Errorf("parent %w (use --parent)", errNameRequired)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Accounts().CreateSubaccountByParentName(context.Background(), parentName, args[0])
			if err != nil {
				return err
			}

			return reportCallResult("Create Subaccount", result)
		},
	}

	cmd.Flags().StringVar(&parentName, "parent", "", "parent account name (required)")
	_ = cmd.MarkFlagRequired("parent")

	return cmd
}

func newAccountsRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename ACCOUNT_NAME NEW_NAME",
		Short: "Rename a subaccount",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Accounts().RenameSubaccountByName(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			return reportCallResult("Rename Subaccount", result)
		},
	}

	return cmd
}

func newAccountsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ACCOUNT_NAME",
		Short: "Delete a subaccount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmDeletion("subaccount", args[0]) {
				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Accounts().DeleteSubaccountByName(context.Background(), args[0])
			if err != nil {
				return err
			}

			return reportCallResult("Delete Subaccount", result)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
