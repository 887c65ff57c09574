// Package compiler provides an interface for generating the cim14 style
// entity packages from YAML class schemas.
//
// It chains the loader and the generator:
//
//	err := compiler.Generate(ctx, "./schema",
//		gen.WithTarget("./cim14"),
//		gen.WithPackage("cim14"),
//	)
package compiler

import (
	"context"
	"fmt"

	"github.com/syssam/cim/compiler/gen"
	"github.com/syssam/cim/compiler/load"
)

// LoadGraph loads the schemas found at path (a file or a directory) and
// returns the resolved graph.
func LoadGraph(path string, opts ...gen.Option) (*gen.Graph, error) {
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	schemas, err := load.Load(path)
	if err != nil {
		return nil, fmt.Errorf("cimgen: load schema: %w", err)
	}
	return gen.NewGraph(cfg, schemas...)
}

// Generate loads the schemas found at path and writes the generated
// package to the configured target.
func Generate(ctx context.Context, path string, opts ...gen.Option) error {
	graph, err := LoadGraph(path, opts...)
	if err != nil {
		return err
	}
	return gen.NewGenerator(graph).Generate(ctx)
}
