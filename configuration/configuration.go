package configuration

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Source describes how the current invocation was started.
type Source int

const (
	// Interactive means the tool was invoked by a human from a shell. Logs
	// stay local, and no summary comment is ever posted.
	Interactive Source = iota

	// Automated means the tool runs inside a CI pipeline. Accumulated logs
	// are posted back to the configured issue or pull request on exit.
	Automated
)

func (s Source) String() string {
	if s == Automated {
		return "automated"
	}
	return "interactive"
}

// Config is the main configuration object for plume. It consolidates every
// ambient environment read in one place: nothing else in the codebase looks
// at process environment variables.
type Config struct {
	Source     Source
	Repository string `yaml:"repository"`
	Token      string `yaml:"token"`
	TokenFile  string `yaml:"token_file"`
	Actor      string `yaml:"actor"`
	Issue      int    `yaml:"issue"`
	Verbose    bool   `yaml:"verbose"`
}

// Flags returns the global command line flags shared by every command.
func Flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "repository",
			Usage:  "GitHub repository (owner/name form)",
			EnvVar: "GITHUB_REPOSITORY",
		},
		cli.StringFlag{
			Name:   "token",
			Usage:  "GitHub API token",
			EnvVar: "GITHUB_TOKEN",
		},
		cli.StringFlag{
			Name:  "token-file",
			Usage: "GitHub API token file",
		},
		cli.IntFlag{
			Name:  "issue",
			Usage: "issue or pull request number to comment on",
		},
		cli.BoolFlag{
			Name:  "automated",
			Usage: "force automated mode (implied by the CI environment)",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "print the result of every step",
		},
	}
}

// FromGlobalFlags creates a configuration object from command line flags,
// falling back to the ambient CI environment where flags are absent.
func FromGlobalFlags(c *cli.Context) *Config {
	config := &Config{
		Source:     detectSource(c.GlobalBool("automated")),
		Repository: c.GlobalString("repository"),
		Token:      c.GlobalString("token"),
		TokenFile:  c.GlobalString("token-file"),
		Actor:      os.Getenv("GITHUB_ACTOR"),
		Issue:      c.GlobalInt("issue"),
		Verbose:    c.GlobalBool("verbose"),
	}
	if config.Issue == 0 {
		if n, err := strconv.Atoi(os.Getenv("PLUME_ISSUE")); err == nil {
			config.Issue = n
		}
	}
	return config
}

// SplitRepository returns the owner and name components of an `owner/name`
// repository identifier.
func SplitRepository(repository string) (string, string, error) {
	return getRepository(repository)
}

// SplitRepository returns the owner and repository name associated with the
// configuration.
func (c *Config) SplitRepository() (string, string, error) {
	return getRepository(c.Repository)
}

// Validate verifies the validity of the configuration object.
func (c *Config) Validate() error {
	if _, _, err := getRepository(c.Repository); err != nil {
		return err
	}
	return nil
}

func detectSource(forced bool) Source {
	if forced {
		return Automated
	}
	if v, err := strconv.ParseBool(os.Getenv("GITHUB_ACTIONS")); err == nil && v {
		return Automated
	}
	if v, err := strconv.ParseBool(os.Getenv("CI")); err == nil && v {
		return Automated
	}
	return Interactive
}

func getRepository(repository string) (string, string, error) {
	s := strings.SplitN(repository, "/", 2)
	if len(s) != 2 || s[0] == "" || s[1] == "" {
		return "", "", errors.Errorf("invalid repository %q", repository)
	}
	return s[0], s[1], nil
}
