package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Print the effective model as YAML",
	Long: `Print the model projgen would generate from, as YAML. The output is a
valid --model file and is a convenient starting point for a custom model.`,
	Example: `  projgen model > search.yaml
  projgen synth --model search.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(cmd, runModel(cmd.OutOrStdout()))
	},
}

func runModel(w io.Writer) error {
	_, m, err := loadModel("")
	if err != nil {
		return err
	}
	return m.Encode(w)
}
