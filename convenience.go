// File: lixenwraith/ini/convenience.go
package ini

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names an export encoding
type Format string

const (
	FormatINI  Format = "ini"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied name ("yml", "TOML", ...) to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ini", "":
		return FormatINI, nil
	case "toml", "tml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

// MustOpen is like Open but panics on error
func MustOpen(path string, strategy LoadStrategy) *Config {
	cfg, err := Open(path, strategy)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return cfg
}

// Export writes the current document to w. Sections become tables (TOML),
// mappings (YAML) or objects (JSON); all values stay strings.
func (c *Config) Export(w io.Writer, format Format) error {
	switch format {
	case FormatINI:
		_, err := WriteTo(w, c.doc)
		return err
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(c.doc.Map()); err != nil {
			return fmt.Errorf("failed to marshal config data to TOML: %w", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(c.doc.Map()); err != nil {
			return fmt.Errorf("failed to marshal config data to YAML: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(c.doc.Map()); err != nil {
			return fmt.Errorf("failed to marshal config data to JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Debug returns a formatted string showing all sections and values
func (c *Config) Debug() string {
	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	fmt.Fprintf(&b, "Path: %s\n", c.path)
	fmt.Fprintf(&b, "Strategy: %s\n", c.strategy)
	fmt.Fprintf(&b, "Pending changes: %v\n", c.dirty)

	for _, name := range c.doc.order {
		s := c.doc.sections[name]
		fmt.Fprintf(&b, "  [%s]\n", name)
		for _, key := range s.keys {
			fmt.Fprintf(&b, "    %s = %q\n", key, s.values[key])
		}
	}

	return b.String()
}

// Clone creates a deep copy of the configuration bound to the same file.
// The copy has no pending changes of its own.
func (c *Config) Clone() *Config {
	clone := newConfig(c.path, c.strategy, c.parser, c.fs, c.logger)
	clone.doc = c.doc.Clone()
	return clone
}
