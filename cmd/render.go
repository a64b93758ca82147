package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wellmaintained/projgen/internal/blueprint"
	"github.com/wellmaintained/projgen/internal/errors"
)

var renderStrictEnv bool

var renderCmd = &cobra.Command{
	Use:   "render <artifact>",
	Short: "Print one artifact without writing it",
	Long: `Render a single artifact to stdout. The artifact is named by its path
relative to the output directory, e.g. makefile, .env or .vscode/launch.json.

Run with --list to see every artifact path.`,
	Example: `  # Preview the makefile
  projgen render makefile

  # List renderable artifacts
  projgen render --list`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		list, _ := cmd.Flags().GetBool("list")
		if list && len(args) > 0 {
			return errors.NewValidationError("--list takes no artifact argument", nil)
		}
		if !list && len(args) != 1 {
			return errors.NewValidationError("exactly one artifact path is required", nil)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		list, _ := cmd.Flags().GetBool("list")
		if list {
			exitOnError(cmd, runRenderList(cmd.OutOrStdout()))
			return
		}
		exitOnError(cmd, runRender(cmd.OutOrStdout(), args[0]))
	},
}

func runRender(w io.Writer, path string) error {
	cfg, m, err := loadModel("")
	if err != nil {
		return err
	}
	project, err := blueprint.Build(m, cfg.OutDir, blueprint.Options{StrictEnv: renderStrictEnv})
	if err != nil {
		return err
	}

	data, err := project.Render(path)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func runRenderList(w io.Writer) error {
	cfg, m, err := loadModel("")
	if err != nil {
		return err
	}
	project, err := blueprint.Build(m, cfg.OutDir, blueprint.Options{})
	if err != nil {
		return err
	}

	var paths []string
	for _, f := range project.Files() {
		paths = append(paths, f.Path())
	}
	_, err = fmt.Fprintln(w, strings.Join(paths, "\n"))
	return err
}

func init() {
	renderCmd.Flags().Bool("list", false, "List artifact paths instead of rendering")
	renderCmd.Flags().BoolVar(&renderStrictEnv, "strict-env", false, "Escape shell specials in docker run -e values")
}
