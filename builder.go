// File: lixenwraith/ini/builder.go
package ini

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ValidatorFunc validates a freshly loaded Config.
// It receives the loaded *Config and should return an error if validation fails.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for opening configurations
type Builder struct {
	file            string
	strategy        LoadStrategy
	commentMarkers  []string
	fs              FileSystem
	logger          *zap.Logger
	createIfMissing bool
	args            []string
	validators      []ValidatorFunc
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		strategy:   StrategyEager,
		args:       os.Args[1:],
		validators: make([]ValidatorFunc, 0),
	}
}

// WithFile sets the configuration file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithStrategy selects eager or streaming loading
func (b *Builder) WithStrategy(strategy LoadStrategy) *Builder {
	b.strategy = strategy
	return b
}

// WithCommentMarkers replaces the default ";" comment marker
func (b *Builder) WithCommentMarkers(markers ...string) *Builder {
	b.commentMarkers = markers
	return b
}

// WithFileSystem sets the storage backend (defaults to the local disk)
func (b *Builder) WithFileSystem(fs FileSystem) *Builder {
	b.fs = fs
	return b
}

// WithLogger sets the logger (defaults to a no-op logger)
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithCreateIfMissing starts from an empty document when the file does not
// exist; the file is created by the first Save.
func (b *Builder) WithCreateIfMissing(create bool) *Builder {
	b.createIfMissing = create
	return b
}

// WithArgs sets the command-line arguments consulted by file discovery
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithValidator adds a validation function that runs at the end of Build.
// Validators run in the order they are added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build parses the file and returns the Config. Parse errors abort
// construction; no partially loaded Config is returned.
func (b *Builder) Build() (*Config, error) {
	if b.file == "" {
		return nil, &StorageError{Op: "open", Path: b.file, Err: fmt.Errorf("%w: no file configured", ErrConfigNotFound)}
	}

	cfg := newConfig(b.file, b.strategy, NewParser(b.commentMarkers...), b.fs, b.logger)
	if err := cfg.load(b.createIfMissing); err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return cfg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}

// BuildAndScan builds the configuration and binds one section into target.
func (b *Builder) BuildAndScan(section string, target any) (*Config, error) {
	cfg, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := cfg.Scan(section, target); err != nil {
		return cfg, fmt.Errorf("failed to scan section %q into target: %w", section, err)
	}
	return cfg, nil
}

// IsNotFound reports whether err means the configuration file does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrConfigNotFound)
}
