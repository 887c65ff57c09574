package gen

import (
	"errors"
	"go/token"
	"log/slog"
	"path/filepath"
	"runtime"
)

// Defaults applied by NewConfig.
const (
	DefaultHeader          = "Code generated by cimgen, DO NOT EDIT."
	DefaultRelationPackage = "github.com/syssam/cim/relation"
)

// Config holds the output configuration of the generator.
type Config struct {
	// Target is the output directory.
	Target string
	// Package is the Go package name of the generated code.
	// Defaults to the base name of Target.
	Package string
	// Header is the first comment line of every generated file. It is also
	// used to recognize stale generated files in Target.
	Header string
	// Workers bounds the number of files rendered in parallel.
	Workers int
	// RelationPackage is the import path of the relationship runtime.
	RelationPackage string
	// Logger receives generation progress. Defaults to slog.Default().
	Logger *slog.Logger
}

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackage sets the package name of the generated code.
func WithPackage(name string) Option {
	return func(c *Config) error {
		if !token.IsIdentifier(name) {
			return NewConfigError("Package", name, "package name must be a Go identifier")
		}
		c.Package = name
		return nil
	}
}

// WithHeader sets the file header comment.
// An empty header restores the default.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithRelationPackage sets the import path of the relationship runtime.
func WithRelationPackage(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("RelationPackage", nil, "relation package cannot be empty")
		}
		c.RelationPackage = path
		return nil
	}
}

// WithLogger sets the logger used during generation.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// defaults fills the unset fields.
func (c *Config) defaults() {
	if c.Package == "" && c.Target != "" {
		c.Package = filepath.Base(filepath.Clean(c.Target))
	}
	if c.Header == "" {
		c.Header = DefaultHeader
	}
	if c.Workers < 1 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.RelationPackage == "" {
		c.RelationPackage = DefaultRelationPackage
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// check reports configuration that cannot produce a package.
func (c *Config) check() error {
	if c.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if !token.IsIdentifier(c.Package) {
		return NewConfigError("Package", c.Package, "package name must be a Go identifier")
	}
	return nil
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	c.defaults()
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
