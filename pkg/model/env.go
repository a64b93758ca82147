package model

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/wellmaintained/projgen/internal/errors"
)

var envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidEnvName reports whether name is a usable environment variable identifier.
func ValidEnvName(name string) bool {
	return envNamePattern.MatchString(name)
}

// EnvVar is a single name/value pair. Values are opaque and may name a secret,
// they never hold one.
type EnvVar struct {
	Name  string
	Value string
}

// EnvTable is an ordered table of environment variables with unique names.
// It is immutable once constructed.
type EnvTable struct {
	entries []EnvVar
	index   map[string]int
}

// NewEnvTable builds a table from vars, keeping their order. It fails on the
// first invalid or duplicate name.
func NewEnvTable(vars ...EnvVar) (*EnvTable, error) {
	t := &EnvTable{
		entries: make([]EnvVar, 0, len(vars)),
		index:   make(map[string]int, len(vars)),
	}
	for _, v := range vars {
		if !ValidEnvName(v.Name) {
			return nil, errors.NewEntryError("environment variable", v.Name, "invalid name", nil)
		}
		if _, dup := t.index[v.Name]; dup {
			return nil, errors.NewEntryError("environment variable", v.Name, "duplicate name", nil)
		}
		t.index[v.Name] = len(t.entries)
		t.entries = append(t.entries, v)
	}
	return t, nil
}

// MustEnvTable is NewEnvTable for static literals; it panics on invalid input.
func MustEnvTable(vars ...EnvVar) *EnvTable {
	t, err := NewEnvTable(vars...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of entries.
func (t *EnvTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Get returns the value for name.
func (t *EnvTable) Get(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	i, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.entries[i].Value, true
}

// Names returns the variable names in table order.
func (t *EnvTable) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the entries in table order.
func (t *EnvTable) Entries() []EnvVar {
	if t == nil {
		return nil
	}
	out := make([]EnvVar, len(t.entries))
	copy(out, t.entries)
	return out
}

// Map returns the table as an unordered map.
func (t *EnvTable) Map() map[string]string {
	m := make(map[string]string, t.Len())
	for _, e := range t.Entries() {
		m[e.Name] = e.Value
	}
	return m
}

// UnmarshalYAML decodes a YAML mapping, keeping document order.
func (t *EnvTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: environment table must be a mapping", node.Line)
	}
	vars := make([]EnvVar, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: value of %s must be a scalar", val.Line, key.Value)
		}
		vars = append(vars, EnvVar{Name: key.Value, Value: val.Value})
	}
	built, err := NewEnvTable(vars...)
	if err != nil {
		return err
	}
	*t = *built
	return nil
}

// MarshalYAML encodes the table as a mapping in table order.
func (t *EnvTable) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range t.Entries() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Value, Style: yaml.DoubleQuotedStyle},
		)
	}
	return node, nil
}
