// Package cim holds the error types shared by the relationship manager and
// the generated CIM entity packages.
//
// The repository is organized as follows:
//
//   - relation: generic bidirectional relationship manager. Every generated
//     association delegates to it, so the consistency rules live in one place.
//   - compiler/load: loads CIM class schemas written in YAML.
//   - compiler/gen: validates the loaded schemas as a type graph and renders
//     Go entity code with jennifer.
//   - compiler: one-call entry point wrapping load and gen.
//   - cmd/cimgen: command line front end for the compiler.
//   - cim14: generated CIM14 LoadModel and WiresExt entities.
//
// # Error Handling
//
// Removing a member that is not present in a collection returns a
// *NotFoundError matching ErrNotFound:
//
//	if err := season.RemoveSeasonDayTypeSchedules(s); cim.IsNotFound(err) {
//	    // s was never linked to season
//	}
//
// Validate on a generated entity reports links that do not point back with
// *InconsistencyError values matching ErrInconsistent.
package cim
