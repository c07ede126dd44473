// FILE: lixenwraith/ini/config.go
package ini

import (
	"errors"

	"go.uber.org/zap"
)

// Config is the handle over one INI file: addressed reads and writes against
// the parsed document, plus change-tracked saving.
type Config struct {
	path     string
	strategy LoadStrategy
	parser   *Parser
	fs       FileSystem
	logger   *zap.Logger

	doc   *Document
	dirty bool // unsaved mutations exist
}

// Open parses the file at path with the given strategy.
func Open(path string, strategy LoadStrategy) (*Config, error) {
	return NewBuilder().WithFile(path).WithStrategy(strategy).Build()
}

// newConfig wires a Config with an empty document; load fills it.
func newConfig(path string, strategy LoadStrategy, parser *Parser, fs FileSystem, logger *zap.Logger) *Config {
	if parser == nil {
		parser = NewParser()
	}
	if fs == nil {
		fs = OSFileSystem{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Config{
		path:     path,
		strategy: strategy,
		parser:   parser,
		fs:       fs,
		logger:   logger,
		doc:      NewDocument(),
	}
}

// load replaces the document with the parsed file content. On failure the
// previous document is kept untouched.
func (c *Config) load(createIfMissing bool) error {
	doc, err := c.parser.ParseFile(c.fs, c.path, c.strategy)
	if err != nil {
		if createIfMissing && errors.Is(err, ErrConfigNotFound) {
			c.logger.Debug("config file not found, starting empty",
				zap.String("path", c.path))
			c.doc = NewDocument()
			return nil
		}
		return err
	}

	c.doc = doc
	c.logger.Debug("config loaded",
		zap.String("path", c.path),
		zap.Stringer("strategy", c.strategy),
		zap.Int("sections", doc.Len()))
	return nil
}

// Path returns the backing file location.
func (c *Config) Path() string { return c.path }

// Dirty reports whether there are unsaved changes.
func (c *Config) Dirty() bool { return c.dirty }

// Get returns the value at a "Section:Key" address. A missing section or key
// is reported with ok=false, not as an error.
func (c *Config) Get(address string) (value string, ok bool, err error) {
	section, key, err := SplitAddress(address)
	if err != nil {
		return "", false, err
	}
	value, ok = c.doc.Get(section, key)
	return value, ok, nil
}

// GetValue is an alias of Get.
func (c *Config) GetValue(address string) (string, bool, error) {
	return c.Get(address)
}

// Set stores value at a "Section:Key" address, creating the section if needed,
// and marks the configuration dirty. Entries that would not parse back
// unchanged (line breaks, a key containing '=' or starting with a comment
// marker) fail with ErrInvalidEntry. Surrounding whitespace in value is
// trimmed when the file is read again.
func (c *Config) Set(address, value string) error {
	section, key, err := SplitAddress(address)
	if err != nil {
		return err
	}
	if err := c.parser.checkEntry(section, key, value); err != nil {
		return err
	}
	c.doc.Set(section, key, value)
	c.dirty = true
	return nil
}

// SetValue is an alias of Set.
func (c *Config) SetValue(address, value string) error {
	return c.Set(address, value)
}

// Has reports whether a value exists at address.
func (c *Config) Has(address string) (bool, error) {
	_, ok, err := c.Get(address)
	return ok, err
}

// Delete removes the value at address. The configuration is marked dirty only
// when something was removed.
func (c *Config) Delete(address string) (bool, error) {
	section, key, err := SplitAddress(address)
	if err != nil {
		return false, err
	}
	s, ok := c.doc.Section(section)
	if !ok || !s.Delete(key) {
		return false, nil
	}
	c.dirty = true
	return true, nil
}

// DeleteSection removes a whole section.
func (c *Config) DeleteSection(name string) bool {
	if !c.doc.DeleteSection(name) {
		return false
	}
	c.dirty = true
	return true
}

// GetSection returns a copy of the named section's key/value mapping.
// Changes to the returned map do not affect the configuration.
func (c *Config) GetSection(name string) (map[string]string, bool) {
	s, ok := c.doc.Section(name)
	if !ok {
		return nil, false
	}
	return s.Map(), true
}

// Sections returns the section names in declaration order.
func (c *Config) Sections() []string {
	return c.doc.SectionNames()
}

// Keys returns the keys of a section in declaration order.
func (c *Config) Keys(section string) ([]string, bool) {
	s, ok := c.doc.Section(section)
	if !ok {
		return nil, false
	}
	return s.Keys(), true
}

// Snapshot returns a deep copy of the current document.
func (c *Config) Snapshot() *Document {
	return c.doc.Clone()
}

// Save writes the document to its backing file when there are pending
// changes. A failed write keeps the changes pending so Save can be retried.
func (c *Config) Save() error {
	if !c.dirty {
		c.logger.Debug("save skipped, no pending changes", zap.String("path", c.path))
		return nil
	}

	data := Serialize(c.doc)
	if err := c.fs.WriteFile(c.path, data); err != nil {
		c.logger.Warn("save failed", zap.String("path", c.path), zap.Error(err))
		return &StorageError{Op: "write", Path: c.path, Err: err}
	}

	c.dirty = false
	c.logger.Debug("config saved", zap.String("path", c.path), zap.Int("bytes", len(data)))
	return nil
}

// SaveChanges is an alias of Save.
func (c *Config) SaveChanges() error {
	return c.Save()
}
