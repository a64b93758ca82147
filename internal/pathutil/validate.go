// Package pathutil resolves artifact paths and keeps every write inside the
// output directory (CWE-22).
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathTraversal is returned when an artifact path escapes the output directory.
var ErrPathTraversal = errors.New("artifact path escapes output directory")

// ArtifactPath joins the relative artifact path rel onto outDir and returns
// the absolute result. rel must be relative, non-empty and must not resolve
// outside outDir, symlinks included. The target itself need not exist.
func ArtifactPath(outDir, rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("artifact path cannot be empty")
	}
	if outDir == "" {
		return "", fmt.Errorf("output directory cannot be empty")
	}
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s is absolute", ErrPathTraversal, rel)
	}

	base, err := filepath.Abs(filepath.Clean(outDir))
	if err != nil {
		return "", fmt.Errorf("cannot resolve output directory: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(base); err == nil {
		base = resolved
	}

	target := filepath.Join(base, filepath.Clean(rel))
	if !within(target, base) {
		return "", fmt.Errorf("%w: %s is not within %s", ErrPathTraversal, rel, outDir)
	}

	// Walk up to the deepest existing ancestor and check where it really points.
	existing := target
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			break
		}
		existing = parent
	}
	if resolved, err := filepath.EvalSymlinks(existing); err == nil && !within(resolved, base) {
		return "", fmt.Errorf("%w: %s is not within %s", ErrPathTraversal, rel, outDir)
	}

	return target, nil
}

func within(path, base string) bool {
	path = filepath.Clean(path)
	return path == base || strings.HasPrefix(path, base+string(filepath.Separator))
}
