package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/status-page/internal/loader"
	"github.com/jonathan/status-page/internal/stage"
	"github.com/jonathan/status-page/internal/validate"
)

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate tracking data without building",
	Long:  "Loads the tracking documents, runs schema and record validation, and prints every warning. The data is never modified.",
	RunE:  runValidateCmd,
}

var (
	validateConfigPath string
	validateDataDir    string
	validateStages     string
)

func init() {
	validateCommand.Flags().StringVar(&validateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	validateCommand.Flags().StringVarP(&validateDataDir, "data", "d", "", "Directory holding tracker.json, tasks.json and network.json")
	validateCommand.Flags().StringVar(&validateStages, "stages", "", "Stage model YAML file overriding the embedded one")

	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, validateConfigPath, validateDataDir, "", "", "", validateStages, false)
	if err != nil {
		return err
	}

	model := stage.Default()
	if cfg.Stages != "" {
		model, err = stage.Load(cfg.Stages)
		if err != nil {
			return fmt.Errorf("failed to load stage model: %w", err)
		}
	}

	data := loader.Load(cfg.DataDir)
	warnings := append(data.Warnings, validate.Tracker(data.Tracker, model)...)

	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}

	if len(warnings) > 0 {
		return fmt.Errorf("validation found %d warning(s)", len(warnings))
	}
	fmt.Printf("Validation passed: %d active, %d closed, %d skipped, %d tasks, %d contacts\n",
		len(data.Tracker.Active), len(data.Tracker.Closed), len(data.Tracker.Skipped),
		len(data.Tasks.Tasks), len(data.Network.Contacts))
	return nil
}
