package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/compass-routing/compass-codegen/internal/codegen"
)

type ConstraintOptions struct {
	Name  string
	Path  string
	Force bool
}

// Constraint generates a new ConstraintModel plugin package.
func (c *Controller) Constraint(ctx context.Context, opts ConstraintOptions) error {
	name, err := codegen.ParseModelName(opts.Name)
	if err != nil {
		return err
	}

	written, err := codegen.GenerateConstraint(opts.Path, name, opts.Force)
	if err != nil {
		return err
	}

	out := c.stdout()
	fmt.Fprintf(out, "✓ Generated ConstraintModel package at %s\n", filepath.Join(opts.Path, name.Snake()))
	for _, file := range written {
		fmt.Fprintf(out, "    %s\n", file)
	}
	fmt.Fprintln(out, "  Next steps:")
	fmt.Fprintln(out, "  1. Implement the interface methods in the generated file")
	fmt.Fprintln(out, "  2. Register the builder under a model name in your application's constraint registry")
	return nil
}
