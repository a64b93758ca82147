// Package cmd defines command-line interface commands for projgen.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wellmaintained/projgen/internal/config"
	"github.com/wellmaintained/projgen/internal/errors"
	"github.com/wellmaintained/projgen/internal/ui"
	"github.com/wellmaintained/projgen/pkg/model"
)

var (
	version   string
	modelPath string
)

var rootCmd = &cobra.Command{
	Use:   "projgen",
	Short: "Project scaffolding generator for the search service",
	Long: `projgen generates the build scaffolding of the search service from a
declarative model: makefile, .env, .gitignore, requirements files, pyproject.toml and
VS Code launch and settings files.

The built-in model is used unless --model (or PROJGEN_MODEL) names a YAML file.`,
	SilenceUsage: true,
}

// Execute runs the root CLI command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = version
}

// loadModel resolves configuration and the model it points at.
func loadModel(outDirFlag string) (*config.Config, *model.Model, error) {
	cfg, err := config.LoadConfig(outDirFlag, modelPath)
	if err != nil {
		return nil, nil, errors.NewRuntimeError("failed to resolve configuration", err)
	}
	m, err := cfg.Model()
	if err != nil {
		return nil, nil, err
	}
	return cfg, m, nil
}

// exitOnError reports err and exits with the matching exit code.
func exitOnError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	ui.Error(cmd.ErrOrStderr(), "Error: %v\n", err)
	os.Exit(errors.GetExitCode(err))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "YAML model file (default: built-in search service model)")

	rootCmd.AddCommand(synthCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(dockerFlagsCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(checkCmd)
}
