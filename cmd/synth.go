package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/wellmaintained/projgen/internal/blueprint"
	"github.com/wellmaintained/projgen/internal/ui"
)

var (
	synthOutDir    string
	synthStrictEnv bool
)

var synthCmd = &cobra.Command{
	Use:   "synth [flags]",
	Short: "Generate all artifacts",
	Long: `Generate every artifact from the model and write it to the output directory.

Artifacts are regenerated wholesale on every run; existing files are overwritten.
Nothing is written if the model is invalid.

The output directory is resolved in this order:
1. --outdir
2. PROJGEN_OUTDIR
3. the enclosing git repository root
4. the current directory`,
	Example: `  # Generate into the repository root
  projgen synth

  # Generate into a scratch directory from a custom model
  projgen synth --outdir /tmp/scaffold --model search.yaml

  # Escape shell specials in docker run -e values
  projgen synth --strict-env`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(cmd, runSynth(cmd.ErrOrStderr()))
	},
}

func runSynth(w io.Writer) error {
	cfg, m, err := loadModel(synthOutDir)
	if err != nil {
		return err
	}

	project, err := blueprint.Build(m, cfg.OutDir, blueprint.Options{StrictEnv: synthStrictEnv})
	if err != nil {
		return err
	}

	ui.Info(w, "Synthesizing %s into %s\n", m.Metadata.Name, cfg.OutDir)
	written, err := project.Synth()
	for _, path := range written {
		ui.Success(w, "  wrote %s\n", path)
	}
	return err
}

func init() {
	synthCmd.Flags().StringVar(&synthOutDir, "outdir", "", "Output directory (default: repository root)")
	synthCmd.Flags().BoolVar(&synthStrictEnv, "strict-env", false, "Escape shell specials in docker run -e values")
}
