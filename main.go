package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/compass-routing/compass-codegen/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "compass-codegen",
		Usage:   "Code generation tools for Compass plugin development",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "panic",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "traversal",
				Usage:     "Generate a new TraversalModel plugin package",
				ArgsUsage: "<NAME> <PATH>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "extensions",
						Usage: "optional extensions (none, typed-config, typed-config-and-engine)",
						Value: "none",
					},
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "overwrite existing files",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Traversal(ctx, commands.TraversalOptions{
						Name:       c.Args().Get(0),
						Path:       c.Args().Get(1),
						Extensions: c.String("extensions"),
						Force:      c.Bool("force"),
					})
				},
			},
			{
				Name:      "constraint",
				Usage:     "Generate a new ConstraintModel plugin package",
				ArgsUsage: "<NAME> <PATH>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "overwrite existing files",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Constraint(ctx, commands.ConstraintOptions{
						Name:  c.Args().Get(0),
						Path:  c.Args().Get(1),
						Force: c.Bool("force"),
					})
				},
			},
			{
				Name:  "schema",
				Usage: "Check or update the committed configuration schema",
				Commands: []*cli.Command{
					{
						Name:  "check",
						Usage: "Fail when the committed schema is stale relative to the emitter output",
						Action: func(ctx context.Context, c *cli.Command) error {
							return ctrl.SchemaCheck(ctx)
						},
					},
					{
						Name:  "update",
						Usage: "Regenerate the schema and overwrite the committed file",
						Action: func(ctx context.Context, c *cli.Command) error {
							return ctrl.SchemaUpdate(ctx)
						},
					},
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		// errors are reported regardless of the configured log level
		log.Logger = log.Level(zerolog.ErrorLevel)
		log.Fatal().Err(err).Msg("failed to run compass-codegen")
	}
}
