package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config",
			config: Config{
				Spec: "openapi.yaml",
				TS: TSConfig{
					OutputDir: "src/generated",
					Targets:   []string{"api", "hooks"},
				},
			},
			wantErr: false,
		},
		{
			name: "missing spec",
			config: Config{
				TS: TSConfig{OutputDir: "src/generated"},
			},
			wantErr:     true,
			errContains: "spec file is required",
		},
		{
			name: "missing output dir",
			config: Config{
				Spec: "openapi.yaml",
			},
			wantErr:     true,
			errContains: "output directory is required",
		},
		{
			name: "invalid target",
			config: Config{
				Spec: "openapi.yaml",
				TS: TSConfig{
					OutputDir: "src/generated",
					Targets:   []string{"grpc"},
				},
			},
			wantErr:     true,
			errContains: "invalid target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestExpandTargets(t *testing.T) {
	require.Equal(t, []string{"api", "hooks", "collections", "schemas"}, expandTargets([]string{"all"}))
	require.Equal(t, []string{"hooks"}, expandTargets([]string{"hooks"}))
}

func TestHasTarget(t *testing.T) {
	cfg := Config{TS: TSConfig{Targets: []string{"api", "schemas"}}}
	require.True(t, cfg.HasTarget("api"))
	require.False(t, cfg.HasTarget("hooks"))
}

func TestLoadFromFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "syncgen.yaml")
	content := []byte(`spec: openapi.yaml
ts:
  output-dir: src/generated
  api-base: /api/v2
  query-key-prefix: app
`)
	require.NoError(t, os.WriteFile(configPath, content, 0644))

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	cmd.PersistentFlags().String("output-dir", "", "")
	cmd.PersistentFlags().String("api-base", "", "")
	cmd.PersistentFlags().String("query-key-prefix", "", "")
	require.NoError(t, cmd.PersistentFlags().Set("config", configPath))

	cfg, err := Load(cmd, []string{"api"})
	require.NoError(t, err)
	require.Equal(t, "openapi.yaml", cfg.Spec)
	require.Equal(t, "src/generated", cfg.TS.OutputDir)
	require.Equal(t, "/api/v2", cfg.TS.APIBase)
	require.Equal(t, "app", cfg.TS.QueryKeyPrefix)
	require.Equal(t, []string{"api"}, cfg.TS.Targets)
}

func TestLoadFlagOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "syncgen.yaml")
	content := []byte(`spec: openapi.yaml
ts:
  output-dir: src/generated
`)
	require.NoError(t, os.WriteFile(configPath, content, 0644))

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	cmd.PersistentFlags().String("output-dir", "", "")
	cmd.PersistentFlags().String("api-base", "", "")
	cmd.PersistentFlags().String("query-key-prefix", "", "")
	require.NoError(t, cmd.PersistentFlags().Set("config", configPath))
	require.NoError(t, cmd.PersistentFlags().Set("output-dir", "elsewhere"))

	cfg, err := Load(cmd, []string{"all"})
	require.NoError(t, err)
	require.Equal(t, "elsewhere", cfg.TS.OutputDir)
	require.Equal(t, []string{"api", "hooks", "collections", "schemas"}, cfg.TS.Targets)
	// api-base defaults when neither file nor flag sets it
	require.Equal(t, "/api/v1", cfg.TS.APIBase)
}
