package main

import (
	"context"
	"os"

	"github.com/plume-ci/plume/configuration"
	"github.com/plume-ci/plume/execution"

	"github.com/google/go-github/github"
	"github.com/urfave/cli"
)

var commentCommand = cli.Command{
	Name:  "comment",
	Usage: "Post an ad-hoc comment on the configured issue or pull request",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "message",
			Usage: "body of the comment to post",
		},
	},
	Action: doCommentCommand,
}

type commentOptions struct {
	Repository string `mapstructure:"repository"`
	Issue      int    `mapstructure:"issue"`
	Message    string `mapstructure:"message"`
}

func doCommentCommand(c *cli.Context) {
	x := makeContext(c)
	x.ProcessOptions(c, os.Args, "repository", "issue", "message")

	settings := commentOptions{}
	if err := x.DecodeOptions(&settings); err != nil {
		x.LogError(err.Error())
		x.Exit(1)
		return
	}

	wrapped := x.Wrap(execution.WrapOptions{
		Operation: func(ctx context.Context, args ...interface{}) (interface{}, error) {
			owner, name, err := configuration.SplitRepository(settings.Repository)
			if err != nil {
				return nil, err
			}
			comment := &github.IssueComment{Body: github.String(settings.Message)}
			_, _, err = x.GitHub().Issues().CreateComment(ctx, owner, name, settings.Issue, comment)
			return nil, err
		},
		SuccessMessage: "comment posted",
	})
	wrapped(context.Background())

	x.Exit(exitCode(x))
}
