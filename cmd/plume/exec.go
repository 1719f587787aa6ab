package main

import (
	"context"
	"os"
	"strings"

	"github.com/plume-ci/plume/execution"

	"github.com/urfave/cli"
)

var execCommand = cli.Command{
	Name:      "exec",
	Usage:     "Run a single shell command and record its outcome",
	ArgsUsage: "command [argument...]",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "success",
			Usage: "message recorded when the command succeeds",
		},
		cli.StringFlag{
			Name:  "error",
			Usage: "message recorded when the command fails",
		},
	},
	Action: doExecCommand,
}

type execOptions struct {
	Success string `mapstructure:"success"`
	Error   string `mapstructure:"error"`
	Verbose bool   `mapstructure:"verbose"`
}

func doExecCommand(c *cli.Context) {
	x := makeContext(c)
	x.ProcessOptions(c, os.Args)

	if len(c.Args()) == 0 {
		x.LogError("no command specified")
		x.Exit(1)
		return
	}

	settings := execOptions{}
	if err := x.DecodeOptions(&settings); err != nil {
		x.LogError(err.Error())
		x.Exit(1)
		return
	}

	command := strings.Join(c.Args(), " ")
	if settings.Success == "" {
		settings.Success = "command succeeded"
	}

	wrapped := x.Wrap(execution.WrapOptions{
		Operation:      runShellStep,
		SuccessMessage: settings.Success,
		ErrorMessage:   settings.Error,
		Verbose:        settings.Verbose,
	})
	wrapped(context.Background(), command)

	x.Exit(exitCode(x))
}
