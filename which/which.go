// Package which locates executables on a search path. It is the lookup
// collaborator for the run package: hand its result to run as argv[0], and
// a resolution failure there surfaces as a launch failure.
package which

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// Find resolves name to an absolute executable path using the current
// process's PATH.
func Find(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", err
	}
	return filepath.Abs(path)
}

// FindIn resolves name against an explicit search path (a list in the
// platform's PATH syntax) instead of the environment's. A name containing
// a path separator is checked directly, like a shell would.
func FindIn(name, searchPath string) (string, error) {
	if filepath.Base(name) != name {
		if err := checkExecutable(name); err != nil {
			return "", err
		}
		return filepath.Abs(name)
	}

	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			dir = "."
		}
		for _, candidate := range candidates(filepath.Join(dir, name)) {
			if checkExecutable(candidate) == nil {
				return filepath.Abs(candidate)
			}
		}
	}
	return "", fmt.Errorf("%s: %w", name, exec.ErrNotFound)
}
