//go:build windows

package generator

import "os"

// writeFile writes data in place; rename-over-open-file is unreliable on Windows.
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, outputPerm)
}
