package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/alecthomas/kong"

	"github.com/dials/corenote/internal/cli"
	"github.com/dials/corenote/internal/config"
	"github.com/dials/corenote/internal/constants"
	apperrors "github.com/dials/corenote/internal/errors"
	"github.com/dials/corenote/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path (default: $CORENOTE_CONFIG or ./corenote.yaml)." type:"path" placeholder:"PATH"`
	Debug   bool   `help:"Log at debug level and mirror the log to stderr."`

	Run     cli.RunCmd     `cmd:"" help:"Create the next meeting note and its knowledge base stub." default:"withargs"`
	Preview cli.PreviewCmd `cmd:"" help:"Show the next meeting text for the meeting after a date."`
	Env     cli.EnvCmd     `cmd:"" help:"List the environment variables read by the configuration."`
	Keyring cli.KeyringCmd `cmd:"" help:"Manage API tokens in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Prepare the next biweekly core meeting: agenda note on HackMD, future meeting stub on GitHub."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: config.Dir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	logger.Debug("Starting", "command", ctx.Command(), "version", constants.Version)

	appCtx := &cli.Context{
		ConfigPath: CLI.Config,
		Out:        os.Stdout,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
