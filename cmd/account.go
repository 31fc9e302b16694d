package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	catalogrender "github.com/harnstore/harn-cli/internal/adapters/render/catalog"
	"github.com/harnstore/harn-cli/internal/application"
	"github.com/harnstore/harn-cli/internal/domain"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect and copy credential accounts",
	}

	cmd.AddCommand(newAccountListCmd(app), newAccountShowCmd(app), newAccountCopyCmd(app))

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	var (
		productID string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a product's accounts, newest expiry first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			listing, err := app.service.AccountsForProduct(cmd.Context(), domain.PlatformID(productID))
			if err != nil {
				return fmt.Errorf("load accounts for product %s: %w", productID, err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(listing)
			}

			rendered, err := app.renderAccounts(listing, catalogrender.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render accounts: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "Product ID to list accounts for")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newAccountShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <account-id>",
		Short: "Show one account's credentials and billing dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := app.service.AccountDetail(cmd.Context(), domain.AccountID(args[0]))
			if err != nil {
				return fmt.Errorf("load account %s: %w", args[0], err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(detail)
			}

			rendered, err := app.renderAccountDetail(detail, catalogrender.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render account: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAccountCopyCmd(app *app) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "copy <account-id>",
		Short: "Copy one credential field of an account to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := application.CopyFieldKind(field)

			// The value itself stays off the terminal.
			if _, err := app.service.CopyAccountField(cmd.Context(), domain.AccountID(args[0]), kind); err != nil {
				return fmt.Errorf("copy account field: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Copied %s of account %s to the clipboard.\n", kind, args[0])
			return err
		},
	}

	cmd.Flags().StringVar(&field, "field", string(application.CopyFieldPrimary), "Credential field to copy (primary, email, password, link, screen, pin)")

	return cmd
}
