//go:build !windows

package generator

import (
	"bufio"
	"path/filepath"

	"github.com/google/renameio"
)

// writeFile stages data in a temp file next to path and renames it into place.
func writeFile(path string, data []byte) error {
	t, err := renameio.TempFile(filepath.Dir(path), path)
	if err != nil {
		return err
	}
	defer func() {
		_ = t.Cleanup()
	}()
	if err := t.Chmod(outputPerm); err != nil {
		return err
	}
	w := bufio.NewWriter(t)
	if _, err := w.Write(data); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return t.CloseAtomicallyReplace()
}
