// Package scaffold accumulates generated artifacts and writes them out in a
// single synthesis pass.
//
// A Project starts in the building state: generators created against it
// accept registrations and append entries. Synth renders every artifact,
// writes them under the output directory and moves the project to the
// synthesized state, after which every registration call fails with
// ErrSynthesized.
package scaffold

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wellmaintained/projgen/internal/errors"
	"github.com/wellmaintained/projgen/internal/pathutil"
)

// GeneratedNotice heads every artifact format that supports comments.
const GeneratedNotice = `Generated by projgen. Do not edit; change the model and run "projgen synth".`

// ErrSynthesized is returned by any registration made after Synth.
var ErrSynthesized = stderrors.New("project already synthesized")

// File is one generated artifact.
type File interface {
	// Path is the artifact location relative to the output directory.
	Path() string
	// Render returns the full artifact content.
	Render() ([]byte, error)
}

// Project owns the registered artifacts and the synthesis state.
type Project struct {
	outDir      string
	files       []File
	paths       map[string]struct{}
	synthesized bool
}

// New creates a project that writes under outDir.
func New(outDir string) *Project {
	return &Project{
		outDir: outDir,
		paths:  make(map[string]struct{}),
	}
}

// OutDir returns the output directory.
func (p *Project) OutDir() string {
	return p.outDir
}

// Synthesized reports whether Synth has run.
func (p *Project) Synthesized() bool {
	return p.synthesized
}

// Add registers an artifact. Paths must be unique.
func (p *Project) Add(f File) error {
	key := normalize(f.Path())
	if err := p.guard("artifact", key); err != nil {
		return err
	}
	if _, dup := p.paths[key]; dup {
		return errors.NewEntryError("artifact", key, "already registered", nil)
	}
	p.paths[key] = struct{}{}
	p.files = append(p.files, f)
	return nil
}

// Files returns the registered artifacts in registration order.
func (p *Project) Files() []File {
	out := make([]File, len(p.files))
	copy(out, p.files)
	return out
}

// Render returns the content of the artifact registered at path without
// writing anything.
func (p *Project) Render(path string) ([]byte, error) {
	key := normalize(path)
	for _, f := range p.files {
		if normalize(f.Path()) == key {
			return f.Render()
		}
	}
	return nil, errors.NewEntryError("artifact", path, "not registered", nil)
}

// Synth renders every artifact and writes them to the output directory,
// overwriting existing files. Nothing is written if any artifact fails to
// render or resolves outside the output directory. It returns the written
// paths in registration order.
func (p *Project) Synth() ([]string, error) {
	if p.synthesized {
		return nil, errors.NewValidationError("cannot synthesize twice", ErrSynthesized)
	}

	type output struct {
		rel  string
		abs  string
		data []byte
	}
	outputs := make([]output, 0, len(p.files))
	for _, f := range p.files {
		abs, err := pathutil.ArtifactPath(p.outDir, f.Path())
		if err != nil {
			return nil, errors.NewEntryError("artifact", f.Path(), "invalid path", err)
		}
		data, err := f.Render()
		if err != nil {
			return nil, errors.NewRuntimeError(fmt.Sprintf("failed to render %s", f.Path()), err)
		}
		outputs = append(outputs, output{rel: normalize(f.Path()), abs: abs, data: data})
	}

	p.synthesized = true

	written := make([]string, 0, len(outputs))
	for _, o := range outputs {
		if err := os.MkdirAll(filepath.Dir(o.abs), 0755); err != nil {
			return written, errors.NewRuntimeError(fmt.Sprintf("failed to create directory for %s", o.rel), err)
		}
		if err := os.WriteFile(o.abs, o.data, 0644); err != nil {
			return written, errors.NewRuntimeError(fmt.Sprintf("failed to write %s", o.rel), err)
		}
		written = append(written, o.rel)
	}
	return written, nil
}

// guard rejects registrations once the project has been synthesized.
func (p *Project) guard(kind, entry string) error {
	if p.synthesized {
		return errors.NewEntryError(kind, entry, "cannot register after synthesis", ErrSynthesized)
	}
	return nil
}

func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}
