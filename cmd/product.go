package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	catalogrender "github.com/harnstore/harn-cli/internal/adapters/render/catalog"
	"github.com/harnstore/harn-cli/internal/domain"
)

func newProductCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Inspect catalog products",
	}

	cmd.AddCommand(newProductListCmd(app), newProductShowCmd(app))

	return cmd
}

func newProductListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products with their account counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			overviews, err := app.service.ProductOverviews(cmd.Context())
			if err != nil {
				return fmt.Errorf("load products: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(overviews)
			}

			rendered, err := app.renderProducts(overviews, catalogrender.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render products: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newProductShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show one product's pricing tiers and metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := app.service.ProductOverview(cmd.Context(), domain.PlatformID(args[0]))
			if err != nil {
				return fmt.Errorf("load product %s: %w", args[0], err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(overview)
			}

			rendered, err := app.renderProductDetail(overview, catalogrender.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render product: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
