package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/wellmaintained/projgen/internal/errors"
)

// Launch is one debug profile in .vscode/launch.json.
type Launch struct {
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Request    string            `json:"request"`
	Program    string            `json:"program,omitempty"`
	Module     string            `json:"module,omitempty"`
	Args       []string          `json:"args,omitempty"`
	Cwd        string            `json:"cwd,omitempty"`
	Console    string            `json:"console,omitempty"`
	JustMyCode *bool             `json:"justMyCode,omitempty"`
	Env        map[string]string `json:"env,omitempty"`
}

// LaunchConfig accumulates debug profiles.
type LaunchConfig struct {
	project        *Project
	path           string
	configurations []Launch
}

// NewLaunchConfig registers a launch configuration file at path on p.
func NewLaunchConfig(p *Project, path string) (*LaunchConfig, error) {
	l := &LaunchConfig{project: p, path: path}
	if err := p.Add(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Path implements File.
func (l *LaunchConfig) Path() string {
	return l.path
}

// AddConfiguration appends a profile. Names must be unique.
func (l *LaunchConfig) AddConfiguration(c Launch) error {
	if err := l.project.guard("launch configuration", c.Name); err != nil {
		return err
	}
	if c.Name == "" {
		return errors.NewEntryError("launch configuration", c.Name, "name is required", nil)
	}
	if c.Program == "" && c.Module == "" {
		return errors.NewEntryError("launch configuration", c.Name, "program or module is required", nil)
	}
	for _, existing := range l.configurations {
		if existing.Name == c.Name {
			return errors.NewEntryError("launch configuration", c.Name, "duplicate name", nil)
		}
	}

	c.Args = append([]string(nil), c.Args...)
	if c.Env != nil {
		env := make(map[string]string, len(c.Env))
		for k, v := range c.Env {
			env[k] = v
		}
		c.Env = env
	}
	l.configurations = append(l.configurations, c)
	return nil
}

// Configurations returns the registered profiles.
func (l *LaunchConfig) Configurations() []Launch {
	out := make([]Launch, len(l.configurations))
	copy(out, l.configurations)
	return out
}

// Render implements File.
func (l *LaunchConfig) Render() ([]byte, error) {
	doc := struct {
		Version        string   `json:"version"`
		Configurations []Launch `json:"configurations"`
	}{
		Version:        "0.2.0",
		Configurations: l.configurations,
	}
	if doc.Configurations == nil {
		doc.Configurations = []Launch{}
	}
	return marshalJSON(doc)
}

// Settings is a flat .vscode/settings.json.
type Settings struct {
	project *Project
	path    string
	values  map[string]any
}

// NewSettings registers a settings file at path on p.
func NewSettings(p *Project, path string) (*Settings, error) {
	s := &Settings{
		project: p,
		path:    path,
		values:  make(map[string]any),
	}
	if err := p.Add(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Path implements File.
func (s *Settings) Path() string {
	return s.path
}

// Set records key. Values must be a bool, a string or a []string, and a key
// may only be set once.
func (s *Settings) Set(key string, value any) error {
	if err := s.project.guard("setting", key); err != nil {
		return err
	}
	if key == "" {
		return errors.NewEntryError("setting", key, "key is required", nil)
	}
	if _, dup := s.values[key]; dup {
		return errors.NewEntryError("setting", key, "already set", nil)
	}

	switch v := value.(type) {
	case bool, string:
		s.values[key] = v
	case []string:
		s.values[key] = append([]string{}, v...)
	default:
		return errors.NewEntryError("setting", key, fmt.Sprintf("unsupported value type %T", value), nil)
	}
	return nil
}

// Get returns the value recorded for key. List values are copies.
func (s *Settings) Get(key string) (any, bool) {
	v, ok := s.values[key]
	if list, isList := v.([]string); isList {
		return append([]string{}, list...), ok
	}
	return v, ok
}

// Render implements File. Keys are emitted sorted.
func (s *Settings) Render() ([]byte, error) {
	return marshalJSON(s.values)
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
