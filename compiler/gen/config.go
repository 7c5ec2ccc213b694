package gen

import (
	"log/slog"
	"runtime"
)

// schemaPkg is the import path of the runtime support package that generated
// code registers schemas through.
const schemaPkg = "github.com/kubeschema/typegen/schema"

// Config holds the code generation settings.
type Config struct {
	// Target is the directory generated files are written to.
	Target string

	// Package is the import path of the generated module root. Generated
	// files import referenced definitions relative to it.
	Package string

	// Header is the comment placed at the top of each generated file.
	Header string

	// Workers bounds the number of definitions compiled concurrently.
	Workers int

	// Cache enables the incremental-generation fingerprint cache.
	Cache bool

	// Logger receives per-artifact progress. Defaults to slog.Default.
	Logger *slog.Logger
}

// definitionPkg returns the import path of the package a definition's file
// is generated into.
func (c *Config) definitionPkg(n Names) string {
	if n.Dir == "" {
		return c.Package
	}
	return c.Package + "/" + n.Dir
}

// NewConfig creates a generation config with the given options applied.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.Target == "" {
		return nil, NewConfigError("Target", nil, "missing target directory")
	}
	if c.Package == "" {
		return nil, NewConfigError("Package", nil, "missing output package import path")
	}
	return c, nil
}

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackage sets the generated module's import path.
// For example: "github.com/org/project/models".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithHeader sets the file header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithCache enables the incremental-generation cache.
func WithCache(enabled bool) Option {
	return func(c *Config) error {
		c.Cache = enabled
		return nil
	}
}

// WithLogger sets the progress logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}
