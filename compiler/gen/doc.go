// Package gen generates Go entity code for CIM class schemas.
//
// The generated entities keep every association bidirectional: each
// relationship field is backed by a handle from package relation, and the
// generated accessors call into it so that both ends are updated by a single
// mutation.
//
// # Architecture
//
//	Schema files (*.yaml)
//	        ↓
//	   load.Schema (one per CIM package)
//	        ↓
//	   Graph (classes, enums and paired associations)
//	        ↓
//	   Generator (jennifer, parallel writes)
//	        ↓
//	   Generated package ({class}.go, relations.go, enums.go, {pkg}.go)
//
// # Key Types
//
//   - Graph: resolved classes, enums and associations
//   - Type: a CIM class, its base class, attributes and references
//   - Field: a scalar attribute
//   - Edge: one end of an association; Ref points to the other end
//   - Assoc: an association, emitted once in relations.go
//   - Config: output configuration built with functional options
//
// # Error Handling
//
// Errors are structured and match sentinel errors with errors.Is:
//
//   - SchemaError (ErrInvalidSchema): class, base or attribute errors
//   - EdgeError (ErrInvalidEdge): unresolved or mismatched inverses
//   - ConfigError (ErrMissingConfig): invalid options
//   - GenerationError (ErrGenerationFailed): render, format or write failures
//
// Example:
//
//	graph, err := gen.NewGraph(config, schemas...)
//	if err != nil {
//	    if gen.IsEdgeError(err) {
//	        // Handle association errors
//	    }
//	    return err
//	}
//
// # Configuration
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./cim14"),
//	    gen.WithWorkers(4),
//	)
//
// The package name defaults to the base name of the target directory.
//
// # Generated Output
//
//	{target}/
//	├── {pkg}.go            // Entity interface, Option type, namespaces
//	├── relations.go        // association handles
//	├── enums.go            // enumeration types
//	└── {class}.go          // entity struct, constructor, accessors
package gen
