package execution

import (
	"fmt"
	"io"
	"os"

	"github.com/plume-ci/plume/configuration"
	"github.com/plume-ci/plume/gh"

	"github.com/sirupsen/logrus"
)

const (
	successMarker = "✓"
	failureMarker = "✗"
)

// ClientFactory constructs the GitHub client used for summary reporting. It
// exists as an injection point so tests can substitute a double without
// touching global state.
type ClientFactory func(*configuration.Config) gh.Client

// Context is the per-invocation execution context. It holds the merged
// command line options, the accumulated success/error transcript, and the
// lazily-built GitHub client. One Context is created per process run and
// finalized exactly once through Exit.
type Context struct {
	cfg *configuration.Config

	options     map[string]interface{}
	command     string
	issueNumber int

	successLogs []string
	errorLogs   []string

	client    gh.Client
	newClient ClientFactory
	stdout    io.Writer
	stderr    io.Writer
	exit      func(int)
	finalized bool
}

// Option customizes a Context at construction time.
type Option func(*Context)

// WithClientFactory overrides how the GitHub client is constructed on first
// access.
func WithClientFactory(factory ClientFactory) Option {
	return func(x *Context) { x.newClient = factory }
}

// WithOutput overrides the writers that success and error log lines are
// mirrored to.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(x *Context) { x.stdout, x.stderr = stdout, stderr }
}

// WithExitFunc overrides process termination.
func WithExitFunc(exit func(int)) Option {
	return func(x *Context) { x.exit = exit }
}

// NewContext creates the execution context for one process invocation.
func NewContext(cfg *configuration.Config, opts ...Option) *Context {
	x := &Context{
		cfg:         cfg,
		newClient:   gh.MakeClient,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		exit:        os.Exit,
		issueNumber: cfg.Issue,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Source returns the source mode the context was constructed with.
func (x *Context) Source() configuration.Source {
	return x.cfg.Source
}

// Command returns the display-friendly reconstruction of the invoked command
// line. It is empty until ProcessOptions has run.
func (x *Context) Command() string {
	return x.command
}

// IssueNumber returns the issue or pull request number targeted by the
// summary comment.
func (x *Context) IssueNumber() int {
	return x.issueNumber
}

// Log appends a message to the success transcript and mirrors it to standard
// output with the success marker.
func (x *Context) Log(message string) {
	x.successLogs = append(x.successLogs, message)
	fmt.Fprintf(x.stdout, "%s %s\n", successMarker, message)
}

// LogError appends a message to the error transcript and mirrors it to
// standard error with the failure marker.
func (x *Context) LogError(message string) {
	x.errorLogs = append(x.errorLogs, message)
	fmt.Fprintf(x.stderr, "%s %s\n", failureMarker, message)
}

// HasErrors returns whether at least one error has been logged. It is
// derived from the error transcript rather than stored separately so the two
// can never disagree.
func (x *Context) HasErrors() bool {
	return len(x.errorLogs) > 0
}

// GitHub returns the GitHub client, constructing it on first access. A
// missing token is logged but not fatal here: the eventual remote call fails
// with an authentication error instead.
func (x *Context) GitHub() gh.Client {
	if x.client != nil {
		return x.client
	}
	if gh.GetToken(x.cfg) == "" {
		x.LogError("no GitHub token configured")
	}
	logrus.WithField("repository", x.cfg.Repository).Debug("creating GitHub client")
	x.client = x.newClient(x.cfg)
	return x.client
}
