package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wellmaintained/projgen/internal/blueprint"
	"github.com/wellmaintained/projgen/internal/errors"
	"github.com/wellmaintained/projgen/internal/ui"
	"github.com/wellmaintained/projgen/pkg/scaffold"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List generated makefile targets",
	Long: `List the makefile targets in the order they are generated, with their
prerequisites and the first recipe line. Aggregation targets have no recipe.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(cmd, runTargets(cmd.OutOrStdout()))
	},
}

func runTargets(w io.Writer) error {
	cfg, m, err := loadModel("")
	if err != nil {
		return err
	}
	project, err := blueprint.Build(m, cfg.OutDir, blueprint.Options{})
	if err != nil {
		return err
	}

	var mk *scaffold.Makefile
	for _, f := range project.Files() {
		if candidate, ok := f.(*scaffold.Makefile); ok {
			mk = candidate
			break
		}
	}
	if mk == nil {
		return errors.NewRuntimeError("no makefile registered", nil)
	}

	var rows [][]string
	for _, r := range mk.Rules() {
		rows = append(rows, []string{r.Target, strings.Join(r.Prerequisites, " "), recipeSummary(r.Recipe)})
	}
	return ui.PrintTable(w, []string{"TARGET", "PREREQUISITES", "RECIPE"}, rows)
}

// recipeSummary shortens a recipe to its first command.
func recipeSummary(recipe []string) string {
	if len(recipe) == 0 {
		return "-"
	}
	first := strings.TrimSpace(strings.TrimSuffix(recipe[0], "\\"))
	first = strings.TrimSpace(strings.TrimSuffix(first, "&&"))
	if len(recipe) > 1 {
		first += " ..."
	}
	return first
}
