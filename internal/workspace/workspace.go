// Package workspace locates the repository that generated artifacts belong to.
package workspace

import (
	"fmt"
	"os/exec"
	"strings"
)

// FindRoot returns the top-level directory of the git repository containing
// dir. It fails when dir is not inside a repository or git is missing.
func FindRoot(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", fmt.Errorf("%s is not inside a git repository: %w", dir, err)
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", fmt.Errorf("git reported an empty repository root for %s", dir)
	}
	return root, nil
}
