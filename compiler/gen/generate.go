package gen

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
)

// Generator renders a Graph into Go source files using jennifer.
type Generator struct {
	graph *Graph
	log   *slog.Logger
}

// NewGenerator creates a new generator for the given graph.
//
// Example:
//
//	graph, err := gen.NewGraph(config, schemas...)
//	if err != nil {
//	    return err
//	}
//	err = gen.NewGenerator(graph).Generate(ctx)
func NewGenerator(g *Graph) *Generator {
	return &Generator{
		graph: g,
		log:   g.Logger.With("package", g.Config.Package),
	}
}

// fileTask represents a single file generation task.
type fileTask struct {
	name   string // output file name, relative to the target
	render func() *jen.File
}

// files lists the files of the generated package.
func (g *Generator) files() []fileTask {
	files := make([]fileTask, 0, len(g.graph.Nodes)+3)
	for _, t := range g.graph.Nodes {
		files = append(files, fileTask{
			name:   t.FileName(),
			render: func() *jen.File { return g.genEntity(t) },
		})
	}
	files = append(files,
		fileTask{name: g.graph.Config.Package + ".go", render: g.genPackage},
		fileTask{name: "relations.go", render: g.genRelations},
	)
	if len(g.graph.Enums) > 0 {
		files = append(files, fileTask{name: "enums.go", render: g.genEnums})
	}
	return files
}

// Generate writes every file of the package to the target directory in
// parallel, then removes generated files that are no longer produced.
func (g *Generator) Generate(ctx context.Context) error {
	start := time.Now()
	target := g.graph.Config.Target
	if err := os.MkdirAll(target, 0o755); err != nil {
		return NewGenerationError("write", target, "create target directory", err)
	}
	files := g.files()
	if err := checkFileNames(files); err != nil {
		return err
	}

	var written atomic.Int64
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.graph.Config.Workers)
	for _, f := range files {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			changed, err := g.writeFile(f)
			if changed {
				written.Add(1)
			}
			return err
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}
	if err := g.cleanup(files); err != nil {
		return err
	}
	g.log.Info("generated package",
		"target", target,
		"files", len(files),
		"written", written.Load(),
		"duration", time.Since(start),
	)
	return nil
}

// newFile creates a new jennifer file with the header comment.
func (g *Generator) newFile() *jen.File {
	f := jen.NewFile(g.graph.Config.Package)
	f.HeaderComment(g.graph.Config.Header)
	f.ImportName(g.graph.Config.RelationPackage, "relation")
	f.ImportName(uuidPkg, "uuid")
	return f
}

// checkFileNames rejects packages where two files share a name, for
// example a class whose file name matches the shared package file.
func checkFileNames(files []fileTask) error {
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if seen[f.name] {
			return NewGenerationError("render", f.name, "file name produced twice", nil)
		}
		seen[f.name] = true
	}
	return nil
}
