package model

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wellmaintained/projgen/internal/errors"
)

// Load decodes a YAML model from r. Fields missing from the document keep
// their Default values; unknown fields are rejected.
func Load(r io.Reader) (*Model, error) {
	m := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.NewValidationError("invalid model", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFile reads a YAML model from path.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewRuntimeError("failed to open model "+path, err)
	}
	defer f.Close()

	return Load(f)
}

// Encode writes m as YAML.
func (m *Model) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the fields the generators cannot work without.
func (m *Model) Validate() error {
	var problems []string

	if m.Metadata.Name == "" {
		problems = append(problems, "metadata.name is required")
	}
	if m.Metadata.ModuleName == "" {
		problems = append(problems, "metadata.module_name is required")
	}
	if m.Service.ImageName == "" {
		problems = append(problems, "service.image_name is required")
	}
	if m.Service.LocalURL == "" {
		problems = append(problems, "service.local_url is required")
	}
	if m.Service.LaunchModule == "" {
		problems = append(problems, "service.launch_module is required")
	}
	for _, pattern := range m.GitIgnore {
		if strings.TrimSpace(pattern) == "" || strings.ContainsAny(pattern, "\r\n") {
			problems = append(problems, fmt.Sprintf("gitignore pattern %q is invalid", pattern))
		}
	}
	if m.Runtime == nil {
		problems = append(problems, "runtime_env is required")
	}
	if m.Deployment == nil {
		problems = append(problems, "deployment_env is required")
	}

	if len(problems) > 0 {
		return errors.NewValidationError("invalid model:\n  - "+strings.Join(problems, "\n  - "), nil)
	}
	return nil
}
