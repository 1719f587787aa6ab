package main

import (
	"os"

	"github.com/plume-ci/plume/configuration"
	"github.com/plume-ci/plume/execution"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "plume"
	app.Usage = "Run automation steps and report the results back to GitHub"
	app.Version = "0.1.0"

	app.Commands = []cli.Command{
		runCommand,
		execCommand,
		commentCommand,
	}

	app.Flags = configuration.Flags()
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func makeContext(c *cli.Context) *execution.Context {
	config := configuration.FromGlobalFlags(c)
	if config.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return execution.NewContext(config)
}

func exitCode(x *execution.Context) int {
	if x.HasErrors() {
		return 1
	}
	return 0
}
