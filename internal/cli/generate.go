package cli

import (
	"github.com/pattern-stack/sync-patterns/internal/config"
	"github.com/spf13/cobra"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate client code from OpenAPI specification",
	}

	config.BindCommonFlags(cmd)
	cmd.AddCommand(NewTSCmd())

	return cmd
}
