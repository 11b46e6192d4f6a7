package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "resjs"

// DefaultConfigDir returns the platform-specific configuration directory for resjs.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, appName), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", appName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return os.MkdirAll(dir, 0o755)
}

// ConfigCandidatePaths builds candidate paths for config files per format.
// If userPath is provided, it is prioritized and routed to the matching loader by extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }
	addAll := func(dir string) {
		add(&jsonPaths, filepath.Join(dir, appName+".json"))
		add(&yamlPaths, filepath.Join(dir, appName+".yaml"))
		add(&yamlPaths, filepath.Join(dir, appName+".yml"))
		add(&tomlPaths, filepath.Join(dir, appName+".toml"))
	}

	if userPath != "" {
		switch ext := filepath.Ext(userPath); ext {
		case ".json":
			add(&jsonPaths, userPath)
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	// Working directory
	if wd, err := os.Getwd(); err == nil {
		addAll(wd)
	}

	// Config home
	if dir, err := DefaultConfigDir(); err == nil {
		addAll(dir)
	}

	// System-wide (unix)
	if runtime.GOOS != "windows" {
		addAll("/etc/resjs")
	}

	return
}
