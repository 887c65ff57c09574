package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/cim/compiler/gen"
)

// fileConfig is the content of the --config file. Flags set on the
// command line take precedence over it.
type fileConfig struct {
	Target  string `yaml:"target,omitempty"`
	Package string `yaml:"package,omitempty"`
	Header  string `yaml:"header,omitempty"`
	Workers int    `yaml:"workers,omitempty"`
}

// loadConfig reads a config file. Unknown keys are rejected, and every
// invalid setting is reported at once.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &fileConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := (&gen.Config{}).ApplyAll(cfg.options()...); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// merge overrides the fields of c that are set in o.
func (c *fileConfig) merge(o fileConfig) {
	if o.Target != "" {
		c.Target = o.Target
	}
	if o.Package != "" {
		c.Package = o.Package
	}
	if o.Header != "" {
		c.Header = o.Header
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
}

// options converts the config to generator options.
func (c *fileConfig) options() []gen.Option {
	var opts []gen.Option
	if c.Target != "" {
		opts = append(opts, gen.WithTarget(c.Target))
	}
	if c.Package != "" {
		opts = append(opts, gen.WithPackage(c.Package))
	}
	if c.Header != "" {
		opts = append(opts, gen.WithHeader(c.Header))
	}
	if c.Workers != 0 {
		opts = append(opts, gen.WithWorkers(c.Workers))
	}
	return opts
}
