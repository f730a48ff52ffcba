package cli

import (
	"fmt"

	"github.com/jeevansaathi/saathi-cli/internal/constants"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	fmt.Printf("Initialized %s storage at %s\n", constants.AppName, ctx.Store.GetConfigPath())
	fmt.Printf("Run '%s habit add' or '%s task add' to get started.\n", constants.AppName, constants.AppName)
	return nil
}
