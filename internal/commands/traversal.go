package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/compass-routing/compass-codegen/internal/codegen"
)

type TraversalOptions struct {
	Name       string
	Path       string
	Extensions string
	Force      bool
}

// Traversal generates a new TraversalModel plugin package. When both NAME and
// PATH arguments are omitted, the user is prompted for them interactively.
func (c *Controller) Traversal(ctx context.Context, opts TraversalOptions) error {
	if opts.Name == "" && opts.Path == "" {
		if err := promptTraversalOptions(&opts); err != nil {
			return fmt.Errorf("failed to get traversal options: %w", err)
		}
	}

	name, err := codegen.ParseModelName(opts.Name)
	if err != nil {
		return err
	}
	ext, err := codegen.ParseExtension(opts.Extensions)
	if err != nil {
		return err
	}

	written, err := codegen.GenerateTraversal(opts.Path, name, ext, opts.Force)
	if err != nil {
		return err
	}

	out := c.stdout()
	fmt.Fprintf(out, "✓ Generated TraversalModel package at %s\n", filepath.Join(opts.Path, name.Snake()))
	for _, file := range written {
		fmt.Fprintf(out, "    %s\n", file)
	}
	fmt.Fprintln(out, "  Next steps:")
	fmt.Fprintln(out, "  1. Implement the interface methods in each file")
	fmt.Fprintln(out, "  2. Register the builder under a model name in your application's traversal registry")
	return nil
}

func promptTraversalOptions(opts *TraversalOptions, teaOpts ...tea.ProgramOption) error {
	form := createTraversalForm(opts)

	if len(teaOpts) > 0 {
		// For testing: run with provided program options
		program := tea.NewProgram(form, teaOpts...)
		if _, err := program.Run(); err != nil {
			return err
		}
		return nil
	}
	return form.Run()
}

func createTraversalForm(opts *TraversalOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Model name").
				Description("PascalCase name for the new traversal model (e.g. EnergyCost)").
				Value(&opts.Name).
				Validate(func(s string) error {
					_, err := codegen.ParseModelName(s)
					return err
				}),

			huh.NewInput().
				Title("Target directory").
				Description("Existing directory the plugin package is created under").
				Value(&opts.Path).
				Validate(func(s string) error {
					info, err := os.Stat(s)
					if err != nil || !info.IsDir() {
						return fmt.Errorf("%s is not an existing directory", s)
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Extensions").
				Description("Optional typed configuration and engine files").
				Options(
					huh.NewOption("none", "none"),
					huh.NewOption("typed-config", "typed-config"),
					huh.NewOption("typed-config-and-engine", "typed-config-and-engine"),
				).
				Value(&opts.Extensions),
		),
	)
}
