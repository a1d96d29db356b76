package cli

import "github.com/dials/corenote/internal/config"

// EnvCmd lists the environment variables the configuration understands.
type EnvCmd struct{}

func (cmd *EnvCmd) Run(ctx *Context) error {
	ctx.printf("%s\n", config.Help())
	return nil
}
