// FILE: lixenwraith/ini/discovery.go
package ini

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures where an INI file is looked up
type FileDiscoveryOptions struct {
	// Base name of the file (without extension)
	Name string

	// Extensions to try, in order
	Extensions []string

	// Custom search directories, tried before the defaults
	Paths []string

	// Environment variable holding an explicit path
	EnvVar string

	// CLI flag holding an explicit path (e.g. "--config")
	CLIFlag string

	// Search XDG config directories
	UseXDG bool

	// Search the current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns the usual lookup for appName
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".ini", ".conf", ".cfg"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		CLIFlag:       "--config",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// DiscoverFile resolves the configuration file location. An explicit CLI flag
// wins over the environment variable, which wins over the directory search.
// found is false when nothing was located.
func DiscoverFile(opts FileDiscoveryOptions, args []string) (path string, found bool) {
	if opts.CLIFlag != "" {
		for i, arg := range args {
			if arg == opts.CLIFlag && i+1 < len(args) {
				return args[i+1], true
			}
			if v, ok := strings.CutPrefix(arg, opts.CLIFlag+"="); ok {
				return v, true
			}
		}
	}

	if opts.EnvVar != "" {
		if p := os.Getenv(opts.EnvVar); p != "" {
			return p, true
		}
	}

	var dirs []string
	dirs = append(dirs, opts.Paths...)
	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			dirs = append(dirs, cwd)
		}
	}
	if opts.UseXDG {
		dirs = append(dirs, getXDGConfigPaths(opts.Name)...)
	}

	for _, dir := range dirs {
		for _, ext := range opts.Extensions {
			candidate := filepath.Join(dir, opts.Name+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}
	}

	return "", false
}

// WithFileDiscovery sets the file from DiscoverFile. When nothing is found the
// previously configured file is kept.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if path, found := DiscoverFile(opts, b.args); found {
		b.file = path
	}
	return b
}

// getXDGConfigPaths returns XDG-compliant config search paths
func getXDGConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
