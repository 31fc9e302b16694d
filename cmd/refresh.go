package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harnstore/harn-cli/internal/application"
)

func newRefreshCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch the latest products and weekly accounts from the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var summary application.RefreshSummary

			fetch := func(ctx context.Context) error {
				var err error
				summary, err = app.service.Refresh(ctx)
				return err
			}

			if err := runRefreshSpinner(cmd.Context(), cmd.ErrOrStderr(), fetch); err != nil {
				return fmt.Errorf("refresh catalog: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d products and %d accounts.\n", summary.Products, summary.Accounts)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
