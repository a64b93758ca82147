// Package config resolves where projgen reads its model and writes artifacts.
package config

import (
	"os"

	"github.com/wellmaintained/projgen/internal/workspace"
	"github.com/wellmaintained/projgen/pkg/model"
)

// Environment variables consulted when the matching flag is empty.
const (
	EnvOutDir = "PROJGEN_OUTDIR"
	EnvModel  = "PROJGEN_MODEL"
)

// Config is the resolved output directory and model location.
type Config struct {
	// OutDir is where artifacts are written.
	OutDir string
	// ModelPath is an optional YAML model; empty means the built-in model.
	ModelPath string
}

// LoadConfig resolves the configuration. Flags win over environment
// variables; the output directory falls back to the git workspace root and
// then to the current directory.
func LoadConfig(outDirFlag, modelFlag string) (*Config, error) {
	outDir := firstNonEmpty(outDirFlag, os.Getenv(EnvOutDir))
	if outDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		outDir = cwd
		if root, err := workspace.FindRoot(cwd); err == nil {
			outDir = root
		}
	}

	return &Config{
		OutDir:    outDir,
		ModelPath: firstNonEmpty(modelFlag, os.Getenv(EnvModel)),
	}, nil
}

// Model loads the configured model.
func (c *Config) Model() (*model.Model, error) {
	if c.ModelPath == "" {
		return model.Default(), nil
	}
	return model.LoadFile(c.ModelPath)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
