package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "syncgen",
		Short:   "syncgen - typed sync-aware clients from OpenAPI",
		Version: "1.0.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(GenerateCommand())

	return root
}
