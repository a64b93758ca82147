package scaffold

import (
	"strings"

	"github.com/wellmaintained/projgen/internal/errors"
	"github.com/wellmaintained/projgen/pkg/model"
)

// EnvFile accumulates NAME="VALUE" lines in registration order.
type EnvFile struct {
	project *Project
	path    string
	lines   []model.EnvVar
	seen    map[string]struct{}
}

// NewEnvFile registers an env file at path on p.
func NewEnvFile(p *Project, path string) (*EnvFile, error) {
	f := &EnvFile{
		project: p,
		path:    path,
		seen:    make(map[string]struct{}),
	}
	if err := p.Add(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Path implements File.
func (f *EnvFile) Path() string {
	return f.path
}

// Add appends a NAME="VALUE" line. Values are written as given.
func (f *EnvFile) Add(name, value string) error {
	if err := f.project.guard("env file", name); err != nil {
		return err
	}
	if !model.ValidEnvName(name) {
		return errors.NewEntryError("env file", name, "invalid variable name", nil)
	}
	if _, dup := f.seen[name]; dup {
		return errors.NewEntryError("env file", name, "duplicate variable", nil)
	}
	if strings.ContainsAny(value, "\r\n") {
		return errors.NewEntryError("env file", name, "value contains a newline", nil)
	}
	f.seen[name] = struct{}{}
	f.lines = append(f.lines, model.EnvVar{Name: name, Value: value})
	return nil
}

// AddTable appends every entry of t in table order.
func (f *EnvFile) AddTable(t *model.EnvTable) error {
	for _, e := range t.Entries() {
		if err := f.Add(e.Name, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Render implements File.
func (f *EnvFile) Render() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("# " + GeneratedNotice + "\n")
	for _, l := range f.lines {
		sb.WriteString(l.Name + `="` + l.Value + `"` + "\n")
	}
	return []byte(sb.String()), nil
}
