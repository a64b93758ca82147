package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wellmaintained/projgen/internal/blueprint"
	"github.com/wellmaintained/projgen/internal/env"
	"github.com/wellmaintained/projgen/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the model without writing anything",
	Long: `Validate the model and register every artifact without writing.

The check also warns about environment entries whose names suggest they hold
a secret directly. Entries should name a secret (e.g. DB_SECRET_NAME), never
carry one, because the values end up in generated files.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(cmd, runCheck(cmd.ErrOrStderr()))
	},
}

func runCheck(w io.Writer) error {
	cfg, m, err := loadModel("")
	if err != nil {
		return err
	}
	project, err := blueprint.Build(m, cfg.OutDir, blueprint.Options{})
	if err != nil {
		return err
	}
	for _, f := range project.Files() {
		if _, err := f.Render(); err != nil {
			return err
		}
	}

	if keys := env.SensitiveKeys(m.Runtime.Entries()); len(keys) > 0 {
		ui.Warning(w, "Warning: runtime_env entries look like secrets: %s\n", strings.Join(keys, ", "))
	}
	if keys := env.SensitiveKeys(m.Deployment.Entries()); len(keys) > 0 {
		ui.Warning(w, "Warning: deployment_env entries look like secrets: %s\n", strings.Join(keys, ", "))
	}

	ui.Success(w, "Model %s is valid (%d artifacts)\n", m.Metadata.Name, len(project.Files()))
	return nil
}
