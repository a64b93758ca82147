package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/semver/v3"
	"github.com/Masterminds/sprig/v3"

	"github.com/wellmaintained/projgen/internal/errors"
	"github.com/wellmaintained/projgen/pkg/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// templateFile renders one embedded template with fixed data.
type templateFile struct {
	path     string
	template string
	data     any
}

func (f *templateFile) Path() string {
	return f.path
}

func (f *templateFile) Render() ([]byte, error) {
	tmpl, err := loadTemplate(f.template)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, f.data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Option("missingkey=error").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

type requirementsData struct {
	Notice       string
	Requirements []string
}

type pyprojectData struct {
	Notice       string
	Metadata     model.Metadata
	Dependencies model.Dependencies
	TestsDir     string
}

// ProjectFiles are the Python packaging artifacts: requirements.txt,
// requirements-dev.txt and pyproject.toml. Their content is fixed when they
// are created.
type ProjectFiles struct {
	Requirements    File
	DevRequirements File
	PyProject       File
}

// NewProjectFiles registers the packaging artifacts for m on p. When the
// model pins a CDK version, the CDK libraries lead the runtime requirements.
func NewProjectFiles(p *Project, m *model.Model) (*ProjectFiles, error) {
	cdk, err := cdkRequirements(m.Metadata.CdkVersion)
	if err != nil {
		return nil, err
	}
	deps := model.Dependencies{
		Runtime: append(cdk, m.Dependencies.Runtime...),
		Dev:     append([]string(nil), m.Dependencies.Dev...),
	}

	pf := &ProjectFiles{
		Requirements: &templateFile{
			path:     "requirements.txt",
			template: "requirements.txt.tmpl",
			data:     requirementsData{Notice: GeneratedNotice, Requirements: deps.Runtime},
		},
		DevRequirements: &templateFile{
			path:     "requirements-dev.txt",
			template: "requirements.txt.tmpl",
			data:     requirementsData{Notice: GeneratedNotice, Requirements: deps.Dev},
		},
		PyProject: &templateFile{
			path:     "pyproject.toml",
			template: "pyproject.toml.tmpl",
			data: pyprojectData{
				Notice:       GeneratedNotice,
				Metadata:     m.Metadata,
				Dependencies: deps,
				TestsDir:     m.Service.TestsDir,
			},
		},
	}

	for _, f := range []File{pf.Requirements, pf.DevRequirements, pf.PyProject} {
		if err := p.Add(f); err != nil {
			return nil, err
		}
	}
	return pf, nil
}

// cdkRequirements pins aws-cdk-lib to the major line of version.
func cdkRequirements(version string) ([]string, error) {
	if version == "" {
		return nil, nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, errors.NewEntryError("cdk version", version, "not a semantic version", err)
	}
	return []string{
		fmt.Sprintf("aws-cdk-lib>=%s, <%d.0.0", v.String(), v.Major()+1),
		"constructs>=10.0.5, <11.0.0",
	}, nil
}
