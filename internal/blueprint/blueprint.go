// Package blueprint wires the search service model into a scaffold project:
// which artifacts exist, which makefile targets they carry and what the
// editor is configured to do.
package blueprint

import (
	"fmt"
	"strings"

	"github.com/wellmaintained/projgen/internal/env"
	"github.com/wellmaintained/projgen/pkg/model"
	"github.com/wellmaintained/projgen/pkg/scaffold"
)

// Artifact paths, relative to the output directory.
const (
	MakefilePath     = "makefile"
	EnvFilePath      = ".env"
	LaunchConfigPath = ".vscode/launch.json"
	SettingsPath     = ".vscode/settings.json"
	GitIgnorePath    = ".gitignore"
)

// Options tune how the blueprint renders commands.
type Options struct {
	// StrictEnv escapes shell specials in the docker run -e values.
	StrictEnv bool
}

// Build registers every artifact for m on a new project rooted at outDir.
// The first registration error aborts the build.
func Build(m *model.Model, outDir string, opts Options) (*scaffold.Project, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	p := scaffold.New(outDir)

	if err := addEnvFile(p, m); err != nil {
		return nil, err
	}
	if err := addMakefile(p, m, opts); err != nil {
		return nil, err
	}
	if err := addLaunchConfig(p, m); err != nil {
		return nil, err
	}
	if err := addSettings(p, m); err != nil {
		return nil, err
	}
	if err := addGitIgnore(p, m); err != nil {
		return nil, err
	}
	if _, err := scaffold.NewProjectFiles(p, m); err != nil {
		return nil, err
	}
	return p, nil
}

func addEnvFile(p *scaffold.Project, m *model.Model) error {
	f, err := scaffold.NewEnvFile(p, EnvFilePath)
	if err != nil {
		return err
	}
	return f.AddTable(m.Deployment)
}

func addMakefile(p *scaffold.Project, m *model.Model, opts Options) error {
	mk, err := scaffold.NewMakefile(p, MakefilePath)
	if err != nil {
		return err
	}

	svc := m.Service
	var formatOpts []env.FormatOption
	if opts.StrictEnv {
		formatOpts = append(formatOpts, env.Strict())
	}

	buildAndRun := []string{"cdk synth && \\"}
	if svc.BuildDir != "" {
		buildAndRun = append(buildAndRun, fmt.Sprintf("cd %s && \\", svc.BuildDir))
	}
	run := []string{"docker run"}
	if svc.DockerNetwork != "" {
		run = append(run, "--network "+svc.DockerNetwork)
	}
	if flags := env.DockerFlags(m.Runtime.Entries(), formatOpts...); flags != "" {
		run = append(run, flags)
	}
	run = append(run, svc.ImageName)
	buildAndRun = append(buildAndRun,
		fmt.Sprintf("docker build -t %s . && \\", svc.ImageName),
		strings.Join(run, " "),
	)

	rules := []scaffold.Rule{
		{Target: "deploy-all", Recipe: []string{"cdk deploy --all --require-approval never"}},
		{Target: "unit-test", Recipe: []string{pytestCommand(m, "unit")}},
		{Target: "functional-test", Recipe: []string{pytestCommand(m, "functional")}},
		{Target: "full-test", Prerequisites: []string{"unit-test", "functional-test"}},
		{Target: "test-deploy-all", Prerequisites: []string{"full-test", "deploy-all"}},
		{Target: "start-docker", Recipe: []string{"sudo systemctl start docker"}},
		{Target: "build-and-run-docker", Recipe: buildAndRun},
		{Target: "test-docker-lambda", Recipe: []string{"curl " + svc.LocalURL}},
		{Target: "docker-clean-all-force", Recipe: []string{"docker system prune --all --force"}},
	}

	for _, r := range rules {
		if err := mk.AddRule(r); err != nil {
			return err
		}
	}
	return nil
}

// pytestCommand runs one test suite with terminal, XML and HTML coverage
// reports.
func pytestCommand(m *model.Model, suite string) string {
	reports := orDefault(m.Service.ReportsDir, "test-reports")
	return fmt.Sprintf(
		"python3 -m pytest -vv %s/%s --cov=%s --cov-report=term-missing --cov-report=xml:%s/coverage.xml --cov-report=html:%s/coverage",
		testsDir(m), suite, coverageTarget(m), reports, reports,
	)
}

func addLaunchConfig(p *scaffold.Project, m *model.Model) error {
	l, err := scaffold.NewLaunchConfig(p, LaunchConfigPath)
	if err != nil {
		return err
	}
	return l.AddConfiguration(scaffold.Launch{
		Name:    orDefault(m.Service.LaunchName, m.Metadata.Name),
		Type:    "python",
		Request: "launch",
		Program: "${workspaceFolder}/" + orDefault(m.Metadata.VenvDir, ".venv") + "/bin/uvicorn",
		Args:    []string{m.Service.LaunchModule, "--reload", "--factory"},
		Env:     m.Runtime.Map(),
	})
}

func addSettings(p *scaffold.Project, m *model.Model) error {
	s, err := scaffold.NewSettings(p, SettingsPath)
	if err != nil {
		return err
	}

	settings := []struct {
		key   string
		value any
	}{
		{"python.formatting.provider", "none"},
		{"python.testing.pytestEnabled", true},
		{"python.testing.pytestArgs", []string{testsDir(m)}},
		{"editor.formatOnSave", true},
	}
	for _, kv := range settings {
		if err := s.Set(kv.key, kv.value); err != nil {
			return err
		}
	}
	return nil
}

func addGitIgnore(p *scaffold.Project, m *model.Model) error {
	g, err := scaffold.NewGitIgnore(p, GitIgnorePath)
	if err != nil {
		return err
	}
	for _, pattern := range m.GitIgnore {
		if err := g.Add(pattern); err != nil {
			return err
		}
	}
	return nil
}

func testsDir(m *model.Model) string {
	return orDefault(m.Service.TestsDir, "tests")
}

func coverageTarget(m *model.Model) string {
	return orDefault(m.Service.CoverageTarget, m.Metadata.ModuleName)
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
