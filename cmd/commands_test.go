package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellmaintained/projgen/internal/env"
	"github.com/wellmaintained/projgen/internal/errors"
	"github.com/wellmaintained/projgen/pkg/model"
)

func writeModel(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestSynthFlags(t *testing.T) {
	assert.NotNil(t, synthCmd.Flags().Lookup("outdir"))
	flag := synthCmd.Flags().Lookup("strict-env")
	require.NotNil(t, flag)
	assert.Equal(t, "bool", flag.Value.Type())
}

func TestRunSynth(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	synthOutDir = dir
	t.Cleanup(func() { synthOutDir = "" })

	var out bytes.Buffer
	require.NoError(t, runSynth(&out))

	for _, rel := range []string{"makefile", ".env", ".vscode/launch.json", ".vscode/settings.json", ".gitignore", "requirements.txt", "requirements-dev.txt", "pyproject.toml"} {
		assert.FileExists(t, filepath.Join(dir, rel))
		assert.Contains(t, out.String(), "wrote "+rel)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "AWS_DEPLOYMENT_ACCOUNT_ID=\"645860363137\"\n")
}

func TestRunSynthInvalidModelWritesNothing(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	synthOutDir = dir
	modelPath = writeModel(t, "runtime_env:\n  'BAD NAME': x\n")
	t.Cleanup(func() { synthOutDir = "" })

	err := runSynth(&bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, 2, errors.GetExitCode(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRenderValidation(t *testing.T) {
	tests := []struct {
		name    string
		list    bool
		args    []string
		wantErr string
	}{
		{"one artifact", false, []string{"makefile"}, ""},
		{"no artifact", false, nil, "exactly one artifact path is required"},
		{"two artifacts", false, []string{"makefile", ".env"}, "exactly one artifact path is required"},
		{"list", true, nil, ""},
		{"list with artifact", true, []string{"makefile"}, "--list takes no artifact argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.Flags().Bool("list", tt.list, "")

			err := renderCmd.PreRunE(cmd, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, 2, errors.GetExitCode(err))
		})
	}
}

func TestRunRender(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	require.NoError(t, runRender(&out, "makefile"))
	assert.Contains(t, out.String(), "\nfull-test: unit-test functional-test\n")
	assert.Contains(t, out.String(), "\ntest-deploy-all: full-test deploy-all\n")

	err := runRender(&bytes.Buffer{}, "missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestRunRenderList(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	require.NoError(t, runRenderList(&out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, ".env", lines[0])
	assert.Contains(t, lines, ".vscode/launch.json")
}

func TestRunTargets(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	require.NoError(t, runTargets(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "TARGET"))
	assert.True(t, strings.HasPrefix(lines[1], "deploy-all"))
	assert.Contains(t, out.String(), "unit-test functional-test")
	assert.Contains(t, out.String(), "cdk synth ...")
	assert.Contains(t, out.String(), "sudo systemctl start docker")
}

func TestRunDockerFlags(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { dockerFlagsStrict = false })

	var out bytes.Buffer
	require.NoError(t, runDockerFlags(&out))
	assert.Equal(t, env.DockerFlags(model.Default().Runtime.Entries())+"\n", out.String())

	modelPath = writeModel(t, "runtime_env:\n  A: '1'\n  B: two words\n")
	out.Reset()
	require.NoError(t, runDockerFlags(&out))
	assert.Equal(t, "-e A=\"1\" -e B=\"two words\"\n", out.String())

	modelPath = writeModel(t, "runtime_env:\n  Q: 'say \"hi\"'\n")
	dockerFlagsStrict = true
	out.Reset()
	require.NoError(t, runDockerFlags(&out))
	assert.Equal(t, "-e Q=\"say \\\"hi\\\"\"\n", out.String())
}

func TestRunModelRoundTrips(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	require.NoError(t, runModel(&out))

	m, err := model.Load(&out)
	require.NoError(t, err)
	assert.Equal(t, model.Default().Metadata, m.Metadata)
	assert.Equal(t, model.Default().Runtime.Names(), m.Runtime.Names())
}

func TestRunCheck(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	require.NoError(t, runCheck(&out))
	assert.Contains(t, out.String(), "Model tai-search-service is valid (8 artifacts)")
	assert.NotContains(t, out.String(), "Warning")

	modelPath = writeModel(t, "runtime_env:\n  DB_PASSWORD: hunter2\n  LOG_LEVEL: INFO\n")
	out.Reset()
	require.NoError(t, runCheck(&out))
	assert.Contains(t, out.String(), "runtime_env entries look like secrets: DB_PASSWORD")
}

func TestRunCheckMissingModel(t *testing.T) {
	isolate(t)
	modelPath = filepath.Join(t.TempDir(), "missing.yaml")

	err := runCheck(&bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, 1, errors.GetExitCode(err))
}
