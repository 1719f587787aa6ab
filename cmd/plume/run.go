package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"strings"

	"github.com/plume-ci/plume/execution"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	yaml "gopkg.in/yaml.v2"
)

var runCommand = cli.Command{
	Name:      "run",
	Usage:     "Run the steps described in pipeline files",
	ArgsUsage: "file [file...]",
	Action:    doRunCommand,
}

type pipelineConfiguration struct {
	Name  string              `yaml:"name"`
	Steps []stepConfiguration `yaml:"steps"`
}

type stepConfiguration struct {
	Name    string `yaml:"name"`
	Run     string `yaml:"run"`
	Success string `yaml:"success"`
	Error   string `yaml:"error"`
}

func (s *stepConfiguration) successMessage() string {
	if s.Success != "" {
		return s.Success
	}
	return fmt.Sprintf("step %q succeeded", s.Name)
}

func (s *stepConfiguration) errorMessage() string {
	if s.Error != "" {
		return s.Error
	}
	return fmt.Sprintf("step %q failed", s.Name)
}

func doRunCommand(c *cli.Context) {
	x := makeContext(c)
	opts := x.ProcessOptions(c, os.Args)

	if len(c.Args()) == 0 {
		x.LogError("no pipeline file specified")
		x.Exit(1)
		return
	}

	verbose, _ := opts["verbose"].(bool)
	for _, arg := range c.Args() {
		pipeline, err := readPipeline(arg)
		if err != nil {
			x.LogError(err.Error())
			continue
		}
		runPipeline(x, pipeline, verbose)
	}

	x.Exit(exitCode(x))
}

func readPipeline(path string) (*pipelineConfiguration, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read pipeline file %q", path)
	}
	pipeline := &pipelineConfiguration{}
	if err := yaml.Unmarshal(b, pipeline); err != nil {
		return nil, errors.Wrapf(err, "malformed pipeline file %q", path)
	}
	for i, step := range pipeline.Steps {
		if step.Run == "" {
			return nil, errors.Errorf("step %d of pipeline file %q has no run command", i, path)
		}
		if step.Name == "" {
			pipeline.Steps[i].Name = firstLine(step.Run)
		}
	}
	return pipeline, nil
}

func runPipeline(x *execution.Context, pipeline *pipelineConfiguration, verbose bool) {
	logrus.WithFields(logrus.Fields{
		"pipeline": pipeline.Name,
		"steps":    len(pipeline.Steps),
	}).Debug("running pipeline")

	for i := range pipeline.Steps {
		step := pipeline.Steps[i]
		wrapped := x.Wrap(execution.WrapOptions{
			Operation:      runShellStep,
			SuccessMessage: step.successMessage(),
			ErrorMessage:   step.errorMessage(),
			Verbose:        verbose,
		})
		wrapped(context.Background(), step.Run)
	}
}

func runShellStep(ctx context.Context, args ...interface{}) (interface{}, error) {
	command := args[0].(string)
	out, err := exec.CommandContext(ctx, "sh", "-c", command).CombinedOutput()
	if err != nil {
		return nil, errors.Wrapf(err, "%s", strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
