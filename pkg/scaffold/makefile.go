package scaffold

import (
	"regexp"
	"strings"

	"github.com/wellmaintained/projgen/internal/errors"
)

var targetPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/-]*$`)

// Rule is a makefile rule. A rule with prerequisites and no recipe is a pure
// aggregation target.
type Rule struct {
	Target        string
	Prerequisites []string
	Recipe        []string
	Description   string
}

// Makefile accumulates rules; they are emitted in registration order and
// all declared .PHONY.
type Makefile struct {
	project *Project
	path    string
	rules   []Rule
	index   map[string]int
}

// NewMakefile registers a makefile at path on p.
func NewMakefile(p *Project, path string) (*Makefile, error) {
	m := &Makefile{
		project: p,
		path:    path,
		index:   make(map[string]int),
	}
	if err := p.Add(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Path implements File.
func (m *Makefile) Path() string {
	return m.path
}

// AddRule appends r. The target must be a plain make name, unique within the
// makefile, and must not list itself as a prerequisite.
func (m *Makefile) AddRule(r Rule) error {
	if err := m.project.guard("makefile rule", r.Target); err != nil {
		return err
	}
	if !targetPattern.MatchString(r.Target) {
		return errors.NewEntryError("makefile rule", r.Target, "invalid target name", nil)
	}
	if _, dup := m.index[r.Target]; dup {
		return errors.NewEntryError("makefile rule", r.Target, "duplicate target", nil)
	}
	for _, pre := range r.Prerequisites {
		if !targetPattern.MatchString(pre) {
			return errors.NewEntryError("makefile rule", r.Target, "invalid prerequisite "+quoteName(pre), nil)
		}
		if pre == r.Target {
			return errors.NewEntryError("makefile rule", r.Target, "depends on itself", nil)
		}
	}
	for _, line := range r.Recipe {
		if strings.ContainsAny(line, "\r\n") {
			return errors.NewEntryError("makefile rule", r.Target, "recipe line contains a newline", nil)
		}
	}
	if strings.ContainsAny(r.Description, "\r\n") {
		return errors.NewEntryError("makefile rule", r.Target, "description contains a newline", nil)
	}

	m.index[r.Target] = len(m.rules)
	m.rules = append(m.rules, Rule{
		Target:        r.Target,
		Prerequisites: append([]string(nil), r.Prerequisites...),
		Recipe:        append([]string(nil), r.Recipe...),
		Description:   r.Description,
	})
	return nil
}

// Rule returns a copy of the rule for target.
func (m *Makefile) Rule(target string) (Rule, bool) {
	i, ok := m.index[target]
	if !ok {
		return Rule{}, false
	}
	r := m.rules[i]
	r.Prerequisites = append([]string(nil), r.Prerequisites...)
	r.Recipe = append([]string(nil), r.Recipe...)
	return r, true
}

// Rules returns copies of all rules in registration order.
func (m *Makefile) Rules() []Rule {
	out := make([]Rule, 0, len(m.rules))
	for _, r := range m.rules {
		c, _ := m.Rule(r.Target)
		out = append(out, c)
	}
	return out
}

// Targets returns the target names in registration order.
func (m *Makefile) Targets() []string {
	targets := make([]string, len(m.rules))
	for i, r := range m.rules {
		targets[i] = r.Target
	}
	return targets
}

// Render implements File.
func (m *Makefile) Render() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("# " + GeneratedNotice + "\n")

	if len(m.rules) > 0 {
		sb.WriteString("\n.PHONY: " + strings.Join(m.Targets(), " ") + "\n")
	}

	for _, r := range m.rules {
		sb.WriteString("\n")
		if r.Description != "" {
			sb.WriteString("# " + r.Description + "\n")
		}
		sb.WriteString(r.Target + ":")
		if len(r.Prerequisites) > 0 {
			sb.WriteString(" " + strings.Join(r.Prerequisites, " "))
		}
		sb.WriteString("\n")
		for _, line := range r.Recipe {
			sb.WriteString("\t" + line + "\n")
		}
	}
	return []byte(sb.String()), nil
}

func quoteName(s string) string {
	return `"` + s + `"`
}
