// Package main is the entry point of cimgen, the generator of CIM entity
// packages.
//
// Usage:
//
//	cimgen [flags] <command> [args]
//
// Commands:
//
//	generate   - Generate a Go package from YAML class schemas
//	describe   - Print the classes and associations of a schema
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/syssam/cim/cmd/cimgen/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
