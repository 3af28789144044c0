package commands

import (
	"context"

	"github.com/compass-routing/compass-codegen/internal/config"
	"github.com/compass-routing/compass-codegen/internal/schemaguard"
)

// SchemaCheck verifies that the committed configuration schema matches the
// emitter's output, failing when it is stale.
func (c *Controller) SchemaCheck(ctx context.Context) error {
	guard, err := c.newGuard()
	if err != nil {
		return err
	}
	return guard.Check(ctx)
}

// SchemaUpdate regenerates the configuration schema and overwrites the
// committed file.
func (c *Controller) SchemaUpdate(ctx context.Context) error {
	guard, err := c.newGuard()
	if err != nil {
		return err
	}
	return guard.Update(ctx)
}

func (c *Controller) newGuard() (*schemaguard.Guard, error) {
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	guard := schemaguard.NewGuard(cfg)
	guard.Out = c.stdout()
	return guard, nil
}
