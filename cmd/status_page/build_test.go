package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_DefaultsOnly(t *testing.T) {
	cfg, err := resolveConfig(&cobra.Command{}, "", "", "", "", "", "", false)
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, ".", cfg.RootDir)
	assert.Equal(t, "dist", cfg.OutDir)
	assert.Empty(t, cfg.Templates)
}

func TestResolveConfig_FlagOverridesConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath,
		[]byte(`{"data_dir": "from-config", "out_dir": "from-config-out"}`), 0o644))

	require.NoError(t, buildCommand.Flags().Set("out", "from-flag"))
	defer func() {
		require.NoError(t, buildCommand.Flags().Set("out", ""))
	}()

	cfg, err := resolveConfig(buildCommand, configPath, "", "", "from-flag", "", "", false)
	require.NoError(t, err)

	// Config file value survives where no flag was given.
	assert.Equal(t, "from-config", cfg.DataDir)
	// Explicit flag wins over the config file.
	assert.Equal(t, "from-flag", cfg.OutDir)
}

func TestResolveConfig_BadConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{ nope`), 0o644))

	_, err := resolveConfig(&cobra.Command{}, configPath, "", "", "", "", "", false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["build"])
	assert.True(t, names["validate"])
	assert.True(t, names["check"])
	assert.True(t, names["serve"])
}
