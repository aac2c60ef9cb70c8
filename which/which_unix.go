//go:build !windows

package which

import (
	"fmt"
	"io/fs"
	"os"
)

// candidates is the identity on POSIX; there are no implicit extensions.
func candidates(path string) []string { return []string{path} }

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, fs.ErrPermission)
	}
	if info.Mode()&0111 == 0 {
		return fmt.Errorf("%s: %w", path, fs.ErrPermission)
	}
	return nil
}
