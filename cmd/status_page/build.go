package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/status-page/internal/config"
	"github.com/jonathan/status-page/internal/site"
)

var buildCommand = &cobra.Command{
	Use:   "build",
	Short: "Build the status page from tracking data",
	Long: `Reads tracker.json, tasks.json and network.json plus per-role markdown
documents and writes a static dashboard to the output directory.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runBuildCmd,
}

var (
	buildConfigPath string
	buildDataDir    string
	buildRootDir    string
	buildOutDir     string
	buildTemplates  string
	buildStages     string
	buildVerbose    bool
)

func init() {
	// Config file flag (processed first)
	buildCommand.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	buildCommand.Flags().StringVarP(&buildDataDir, "data", "d", "", "Directory holding tracker.json, tasks.json and network.json")
	buildCommand.Flags().StringVar(&buildRootDir, "root", "", "Root directory for per-role document folders")
	buildCommand.Flags().StringVarP(&buildOutDir, "out", "o", "", "Output directory for the built site")
	buildCommand.Flags().StringVarP(&buildTemplates, "templates", "t", "", "Template directory overriding the embedded templates")
	buildCommand.Flags().StringVar(&buildStages, "stages", "", "Stage model YAML file overriding the embedded one")
	buildCommand.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed build information")

	rootCmd.AddCommand(buildCommand)
}

// resolveConfig loads the optional config file, applies explicit flag
// overrides, then fills remaining gaps from defaults. Shared by the
// commands that read tracking data.
func resolveConfig(cmd *cobra.Command, configPath string, dataDir, rootDir, outDir, templates, stages string, verbose bool) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loadedCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", configPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("root") {
		cfg.RootDir = rootDir
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = outDir
	}
	if cmd.Flags().Changed("templates") {
		cfg.Templates = templates
	}
	if cmd.Flags().Changed("stages") {
		cfg.Stages = stages
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	return cfg, nil
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, buildConfigPath, buildDataDir, buildRootDir, buildOutDir, buildTemplates, buildStages, buildVerbose)
	if err != nil {
		return err
	}

	_, err = site.Build(context.Background(), site.Options{
		DataDir:   cfg.DataDir,
		RootDir:   cfg.RootDir,
		OutDir:    cfg.OutDir,
		Templates: cfg.Templates,
		Stages:    cfg.Stages,
		Verbose:   cfg.Verbose,
	})
	return err
}
