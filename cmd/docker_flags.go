package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wellmaintained/projgen/internal/env"
)

var dockerFlagsStrict bool

var dockerFlagsCmd = &cobra.Command{
	Use:   "docker-flags",
	Short: "Print the runtime environment as docker run -e flags",
	Long: `Print the runtime environment table as the -e flags used by the
build-and-run-docker target, e.g.

  -e APP_ENVIRONMENT="local" -e LOG_LEVEL="DEBUG"

Values are only wrapped in double quotes. Pass --strict to also escape
backslash, double quote, dollar and backtick.`,
	Example: `  eval "docker run $(projgen docker-flags) test-container"`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(cmd, runDockerFlags(cmd.OutOrStdout()))
	},
}

func runDockerFlags(w io.Writer) error {
	_, m, err := loadModel("")
	if err != nil {
		return err
	}

	var opts []env.FormatOption
	if dockerFlagsStrict {
		opts = append(opts, env.Strict())
	}
	_, err = fmt.Fprintln(w, env.DockerFlags(m.Runtime.Entries(), opts...))
	return err
}

func init() {
	dockerFlagsCmd.Flags().BoolVar(&dockerFlagsStrict, "strict", false, "Escape shell specials inside values")
}
