package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	catalogrender "github.com/harnstore/harn-cli/internal/adapters/render/catalog"
)

func newBrowseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse products and accounts interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.service.NewBrowseSession(cmd.Context())
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}

			return catalogrender.RunBrowse(session, app.clipboard)
		},
	}
}
