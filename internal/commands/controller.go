// Package commands contains the CLI commands for the application
package commands

import (
	"io"
	"os"
)

type Flags struct {
	LogLevel string
}

type Controller struct {
	Flags *Flags

	// Stdout receives user-facing results; defaults to os.Stdout.
	Stdout io.Writer
}

func (c *Controller) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}
