package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Spec      string         `koanf:"spec"`
	Templates TemplateConfig `koanf:"templates"`
	TS        TSConfig       `koanf:"ts"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

type TSConfig struct {
	OutputDir      string   `koanf:"output-dir"`
	APIBase        string   `koanf:"api-base"`
	QueryKeyPrefix string   `koanf:"query-key-prefix"`
	Targets        []string `koanf:"targets"`
}

// BindCommonFlags binds language-agnostic flags to the generate command
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: syncgen.yaml)")
	flags.StringP("spec", "s", "", "OpenAPI spec file path")
	flags.String("templates", "", "Custom templates directory")
	flags.Bool("dry-run", false, "Print output without writing files")
}

func Load(cmd *cobra.Command, targets []string) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat("syncgen.yaml"); err == nil {
			configFile = "syncgen.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// CLI targets override config file targets
	if len(targets) > 0 {
		cfg.TS.Targets = targets
	}

	cfg.TS.Targets = expandTargets(cfg.TS.Targets)

	if cfg.TS.APIBase == "" {
		cfg.TS.APIBase = "/api/v1"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func expandTargets(targets []string) []string {
	var result []string
	for _, t := range targets {
		if t == "all" {
			result = append(result, "api", "hooks", "collections", "schemas")
		} else {
			result = append(result, t)
		}
	}
	return result
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("templates"); v != "" {
		m["templates.dir"] = v
	}

	// TS-specific flags (under ts. namespace)
	if v := getString("output-dir"); v != "" {
		m["ts.output-dir"] = v
	}
	if v := getString("api-base"); v != "" {
		m["ts.api-base"] = v
	}
	if v := getString("query-key-prefix"); v != "" {
		m["ts.query-key-prefix"] = v
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if c.TS.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}

	validTargets := map[string]bool{
		"api": true, "hooks": true, "collections": true, "schemas": true,
	}
	for _, t := range c.TS.Targets {
		if !validTargets[t] {
			return fmt.Errorf("invalid target: %s (valid: api, hooks, collections, schemas)", t)
		}
	}

	return nil
}

// HasTarget checks if a specific target should be generated
func (c *Config) HasTarget(target string) bool {
	return slices.Contains(c.TS.Targets, target)
}
