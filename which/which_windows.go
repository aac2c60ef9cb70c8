//go:build windows

package which

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// candidates expands a path with the PATHEXT extensions. A name that
// already carries an extension is tried as-is first.
func candidates(path string) []string {
	exts := []string{".COM", ".EXE", ".BAT", ".CMD"}
	if pathext := os.Getenv("PATHEXT"); pathext != "" {
		exts = exts[:0]
		for _, ext := range strings.Split(pathext, ";") {
			if ext != "" {
				exts = append(exts, ext)
			}
		}
	}

	var out []string
	if filepath.Ext(path) != "" {
		out = append(out, path)
	}
	for _, ext := range exts {
		out = append(out, path+ext)
	}
	return out
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, fs.ErrPermission)
	}
	return nil
}
