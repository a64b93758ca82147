package scaffold

import (
	"strings"

	"github.com/wellmaintained/projgen/internal/errors"
)

// GitIgnore accumulates ignore patterns in registration order.
type GitIgnore struct {
	project  *Project
	path     string
	patterns []string
	seen     map[string]struct{}
}

// NewGitIgnore registers an ignore file at path on p.
func NewGitIgnore(p *Project, path string) (*GitIgnore, error) {
	g := &GitIgnore{
		project: p,
		path:    path,
		seen:    make(map[string]struct{}),
	}
	if err := p.Add(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Path implements File.
func (g *GitIgnore) Path() string {
	return g.path
}

// Add appends pattern. Blank, multi-line and repeated patterns are rejected.
func (g *GitIgnore) Add(pattern string) error {
	if err := g.project.guard("ignore pattern", pattern); err != nil {
		return err
	}
	if strings.TrimSpace(pattern) == "" {
		return errors.NewEntryError("ignore pattern", pattern, "pattern is empty", nil)
	}
	if strings.ContainsAny(pattern, "\r\n") {
		return errors.NewEntryError("ignore pattern", pattern, "pattern contains a newline", nil)
	}
	if _, dup := g.seen[pattern]; dup {
		return errors.NewEntryError("ignore pattern", pattern, "duplicate pattern", nil)
	}
	g.seen[pattern] = struct{}{}
	g.patterns = append(g.patterns, pattern)
	return nil
}

// Patterns returns the registered patterns.
func (g *GitIgnore) Patterns() []string {
	return append([]string(nil), g.patterns...)
}

// Render implements File.
func (g *GitIgnore) Render() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("# " + GeneratedNotice + "\n")
	for _, p := range g.patterns {
		sb.WriteString(p + "\n")
	}
	return []byte(sb.String()), nil
}
