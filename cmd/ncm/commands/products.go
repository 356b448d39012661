package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "View the product catalog",
	}

	cmd.AddCommand(newProductsListCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			products, err := client.Products().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			return renderRecords(products, "id", "name", "series")
		},
	}

	return cmd
}
