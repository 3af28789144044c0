// Package schemaguard verifies that the committed configuration schema file
// matches the output of the schema emitter.
package schemaguard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog/log"

	"github.com/compass-routing/compass-codegen/internal/config"
)

var (
	// ErrMissingBaseline is returned when the committed schema file cannot
	// be read.
	ErrMissingBaseline = errors.New("committed schema file not found")

	// ErrSchemaStale is returned when the committed schema differs from the
	// emitter's output.
	ErrSchemaStale = errors.New("committed schema is out of date")
)

// CommandRunner executes the schema emitter and returns its standard output.
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s failed: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}
	return stdout.Bytes(), nil
}

// Guard compares the committed configuration schema against freshly generated
// output.
type Guard struct {
	Config *config.Config
	Runner CommandRunner
	Out    io.Writer
}

// NewGuard creates a Guard that runs the real emitter and reports to stdout.
func NewGuard(cfg *config.Config) *Guard {
	return &Guard{
		Config: cfg,
		Runner: execRunner{},
		Out:    os.Stdout,
	}
}

// Check regenerates the schema and byte-compares it against the committed
// file. On mismatch it prints a staleness report with a diff and returns
// ErrSchemaStale; the committed file is never modified.
func (g *Guard) Check(ctx context.Context) error {
	current, err := g.generate(ctx)
	if err != nil {
		return err
	}

	baseline := g.Config.Schema.Baseline
	committed, err := os.ReadFile(baseline)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMissingBaseline, baseline, err)
	}

	if bytes.Equal(committed, current) {
		fmt.Fprintf(g.Out, "schema %s is up to date\n", baseline)
		return nil
	}

	fmt.Fprintf(g.Out, "schema %s is out of date; regenerate it with 'compass-codegen schema update'\n", baseline)
	if diff := cmp.Diff(string(committed), string(current)); diff != "" {
		fmt.Fprintf(g.Out, "(-committed +generated):\n%s", diff)
	}
	return fmt.Errorf("%w: %s", ErrSchemaStale, baseline)
}

// Update regenerates the schema and overwrites the committed file with the
// result. A failing emitter leaves the committed file untouched.
func (g *Guard) Update(ctx context.Context) error {
	current, err := g.generate(ctx)
	if err != nil {
		return err
	}

	baseline := g.Config.Schema.Baseline
	if err := os.WriteFile(baseline, current, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", baseline, err)
	}

	fmt.Fprintf(g.Out, "updated schema %s\n", baseline)
	return nil
}

func (g *Guard) generate(ctx context.Context) ([]byte, error) {
	cmd := g.Config.Schema.Command
	args := g.Config.Schema.Args

	log.Debug().Str("command", cmd).Strs("args", args).Msg("running schema emitter")

	out, err := g.Runner.Output(ctx, cmd, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema: %w", err)
	}
	return out, nil
}
