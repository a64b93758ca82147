// Package model defines the declarative description of the scaffolded
// project: metadata, dependency sets and the environment tables every
// artifact generator reads from.
package model

// Metadata is the project's package metadata.
type Metadata struct {
	Name          string `yaml:"name"`
	Version       string `yaml:"version"`
	ModuleName    string `yaml:"module_name"`
	Description   string `yaml:"description,omitempty"`
	AuthorName    string `yaml:"author_name"`
	AuthorEmail   string `yaml:"author_email"`
	PythonVersion string `yaml:"python_version,omitempty"`
	CdkVersion    string `yaml:"cdk_version"`
	VenvDir       string `yaml:"venv_dir"`
}

// Dependencies holds package requirement strings. Order is kept and
// duplicates are preserved as given.
type Dependencies struct {
	Runtime []string `yaml:"runtime"`
	Dev     []string `yaml:"dev"`
}

// ServiceSettings carries the values interpolated into makefile recipes and
// the editor launch profile. BuildDir may be a make variable such as $(DIR);
// LocalURL is what test-docker-lambda requests from the running container.
type ServiceSettings struct {
	ImageName      string `yaml:"image_name"`
	DockerNetwork  string `yaml:"docker_network"`
	BuildDir       string `yaml:"build_dir"`
	LocalURL       string `yaml:"local_url"`
	LaunchName     string `yaml:"launch_name"`
	LaunchModule   string `yaml:"launch_module"`
	TestsDir       string `yaml:"tests_dir"`
	CoverageTarget string `yaml:"coverage_target"`
	ReportsDir     string `yaml:"reports_dir"`
}

// Model is the full declarative configuration.
//
// Runtime is injected into local container runs and editor debug sessions.
// Deployment is written to the .env file and is authored independently of
// Runtime; the two may overlap but neither is derived from the other.
type Model struct {
	Metadata     Metadata        `yaml:"metadata"`
	Dependencies Dependencies    `yaml:"dependencies"`
	Service      ServiceSettings `yaml:"service"`
	GitIgnore    []string        `yaml:"gitignore"`
	Runtime      *EnvTable       `yaml:"runtime_env"`
	Deployment   *EnvTable       `yaml:"deployment_env"`
}
