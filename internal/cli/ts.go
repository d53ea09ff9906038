package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pattern-stack/sync-patterns/internal/codegen"
	"github.com/pattern-stack/sync-patterns/internal/config"
	"github.com/pattern-stack/sync-patterns/internal/loader"
	"github.com/pattern-stack/sync-patterns/internal/resolver"
	"github.com/spf13/cobra"
)

func NewTSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ts",
		Short: "Generate TypeScript client code from OpenAPI spec",
	}

	flags := cmd.PersistentFlags()
	flags.StringP("output-dir", "o", "", "Output directory for generated TypeScript code")
	flags.String("api-base", "", "Base path prepended by the runtime HTTP client")
	flags.String("query-key-prefix", "", "Leading segment for reactive-query keys")

	cmd.AddCommand(
		newTSAPICmd(),
		newTSHooksCmd(),
		newTSCollectionsCmd(),
		newTSSchemasCmd(),
		newTSAllCmd(),
	)

	return cmd
}

func newTSAPICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "Generate the typed REST API client",
		RunE:  runTSGenerate("api"),
	}
}

func newTSHooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hooks",
		Short: "Generate reactive-query hooks",
		RunE:  runTSGenerate("hooks"),
	}
}

func newTSCollectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "Generate realtime/offline sync collection config",
		RunE:  runTSGenerate("collections"),
	}
}

func newTSSchemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "Generate schema type declarations",
		RunE:  runTSGenerate("schemas"),
	}
}

func newTSAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Generate all TypeScript targets (schemas, api, hooks, collections)",
		RunE:  runTSGenerate("all"),
	}
}

func runTSGenerate(target string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd, expandTargets(target))
		if err != nil {
			return err
		}

		result, err := loader.LoadFile(cfg.Spec)
		if err != nil {
			return fmt.Errorf("loading spec: %w", err)
		}

		for _, w := range result.Warnings {
			cmd.PrintErrf("Warning: %s\n", w)
		}

		doc, err := loader.Transform(result)
		if err != nil {
			return fmt.Errorf("transforming spec: %w", err)
		}

		em, err := resolver.New().Resolve(doc)
		if err != nil {
			return fmt.Errorf("resolving entities: %w", err)
		}

		cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", result.Version, doc.Info.Title, doc.Info.Version)
		cmd.PrintErrf("  Operations: %d\n", len(doc.Operations))
		cmd.PrintErrf("  Entities: %d\n", len(em.Entities()))

		gen, err := codegen.New(cfg)
		if err != nil {
			return fmt.Errorf("creating generator: %w", err)
		}

		outputs, err := gen.Generate(em, doc.Schemas)
		if err != nil {
			return fmt.Errorf("generating code: %w", err)
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		if dryRun {
			for _, out := range outputs {
				cmd.Printf("// %s\n%s\n", out.Filename, out.Content)
			}
			return nil
		}

		if err := os.MkdirAll(cfg.TS.OutputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		for _, out := range outputs {
			path := filepath.Join(cfg.TS.OutputDir, out.Filename)
			if err := os.WriteFile(path, []byte(out.Content), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			cmd.PrintErrf("Written: %s\n", path)
		}

		return nil
	}
}

func expandTargets(target string) []string {
	if target == "all" {
		return []string{"schemas", "api", "hooks", "collections"}
	}
	return []string{target}
}
