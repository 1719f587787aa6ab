package gh

import (
	"context"
	"io/ioutil"
	"strings"

	"github.com/plume-ci/plume/configuration"

	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

type DefaultClient struct {
	Client *github.Client
}

func (d DefaultClient) Issues() IssuesService {
	return d.Client.Issues
}

// GetToken returns the GitHub API token from the configuration, reading it
// from the configured token file when no inline token is set.
func GetToken(c *configuration.Config) string {
	if c.Token != "" {
		return c.Token
	}

	if c.TokenFile != "" {
		if b, err := ioutil.ReadFile(c.TokenFile); err == nil {
			return strings.TrimSpace(string(b))
		}
	}

	return ""
}

// MakeClient creates a GitHub API client bound to the configured token. The
// token may be empty, in which case any remote call will fail with an
// authentication error.
func MakeClient(c *configuration.Config) Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: GetToken(c)})
	tc := oauth2.NewClient(context.Background(), ts)
	return DefaultClient{github.NewClient(tc)}
}
