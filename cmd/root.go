package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "harn",
		Short:         "harn: browse subscription products and their accounts",
		Long:          "harn is a catalog viewer for subscription products and the credential accounts sold against them: refresh the catalog from the backend, browse products, inspect accounts, and copy credentials.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newProductCmd(app),
		newAccountCmd(app),
		newRefreshCmd(app),
		newBrowseCmd(app),
	)

	return rootCmd
}
