package execution

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/plume-ci/plume/configuration"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// interpreterNames are leading tokens stripped from the reconstructed
// command line: automation scripts are frequently launched through an
// interpreter whose name adds nothing to the report.
var interpreterNames = map[string]bool{
	"node":    true,
	"nodejs":  true,
	"python":  true,
	"python3": true,
	"ruby":    true,
	"sh":      true,
	"bash":    true,
}

// ProcessOptions merges the subcommand and global command line options into a
// single mapping, with subcommand values taking precedence. It validates that
// every required option is present, terminating the process with status 1
// when one is missing. In automated mode the acting identity and repository
// are injected from the environment configuration, overriding any explicitly
// supplied values. As a byproduct it records the reconstructed command string
// and the target issue number.
func (x *Context) ProcessOptions(c *cli.Context, rawArgs []string, required ...string) map[string]interface{} {
	if x.command == "" {
		x.command = reconstructCommand(rawArgs)
	}

	options := map[string]interface{}{}
	for _, f := range c.App.Flags {
		if v, ok := globalFlagValue(c, f); ok {
			options[flagName(f)] = v
		}
	}
	for _, f := range c.Command.Flags {
		if v, ok := localFlagValue(c, f); ok {
			options[flagName(f)] = v
		}
	}

	if x.cfg.Source == configuration.Automated {
		options["actor"] = x.cfg.Actor
		options["repository"] = x.cfg.Repository
	}

	for _, name := range required {
		if !present(options[name]) {
			x.LogError(fmt.Sprintf("option [%s] is required", name))
			x.Exit(1)
			return nil
		}
	}

	if n, ok := issueNumber(options["issue"]); ok {
		x.issueNumber = n
	}

	x.options = options
	return options
}

// DecodeOptions decodes the merged options mapping into a command-specific
// settings structure.
func (x *Context) DecodeOptions(out interface{}) error {
	if err := mapstructure.WeakDecode(x.options, out); err != nil {
		return errors.Wrap(err, "decoding options")
	}
	return nil
}

func flagName(f cli.Flag) string {
	return strings.TrimSpace(strings.Split(f.GetName(), ",")[0])
}

func globalFlagValue(c *cli.Context, f cli.Flag) (interface{}, bool) {
	name := flagName(f)
	switch f.(type) {
	case cli.BoolFlag:
		return c.GlobalBool(name), c.GlobalBool(name) || c.GlobalIsSet(name)
	case cli.IntFlag:
		return c.GlobalInt(name), c.GlobalInt(name) != 0 || c.GlobalIsSet(name)
	default:
		return c.GlobalString(name), c.GlobalString(name) != "" || c.GlobalIsSet(name)
	}
}

func localFlagValue(c *cli.Context, f cli.Flag) (interface{}, bool) {
	name := flagName(f)
	switch f.(type) {
	case cli.BoolFlag:
		return c.Bool(name), c.Bool(name) || c.IsSet(name)
	case cli.IntFlag:
		return c.Int(name), c.Int(name) != 0 || c.IsSet(name)
	default:
		return c.String(name), c.String(name) != "" || c.IsSet(name)
	}
}

func present(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	default:
		return true
	}
}

func issueNumber(v interface{}) (int, bool) {
	switch value := v.(type) {
	case int:
		return value, value != 0
	case string:
		if n, err := strconv.Atoi(value); err == nil {
			return n, n != 0
		}
	}
	return 0, false
}

// reconstructCommand builds a display-friendly command string from the raw
// argument vector: a leading interpreter token is stripped, and tokens
// containing whitespace are quoted.
func reconstructCommand(rawArgs []string) string {
	if len(rawArgs) == 0 {
		return ""
	}
	if interpreterNames[filepath.Base(rawArgs[0])] {
		rawArgs = rawArgs[1:]
	}
	tokens := make([]string, 0, len(rawArgs))
	for _, arg := range rawArgs {
		if strings.ContainsAny(arg, " \t") {
			arg = `"` + arg + `"`
		}
		tokens = append(tokens, arg)
	}
	return strings.Join(tokens, " ")
}
