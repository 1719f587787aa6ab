package execution

import (
	"context"
	"fmt"
	"strings"

	"github.com/plume-ci/plume/configuration"

	"github.com/google/go-github/github"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Summary builds the report document: a header line quoting the
// reconstructed command, then a fenced block containing every success log
// followed by every error log.
func (x *Context) Summary() string {
	lines := make([]string, 0, len(x.successLogs)+len(x.errorLogs))
	lines = append(lines, x.successLogs...)
	lines = append(lines, x.errorLogs...)
	return fmt.Sprintf("`%s`\n```\n%s\n```", x.command, strings.Join(lines, "\n"))
}

// Finalize flushes the accumulated transcript. In interactive mode it is a
// no-op: logs were already mirrored to the console. In automated mode it
// posts the summary as a single comment on the configured issue or pull
// request.
func (x *Context) Finalize(ctx context.Context) error {
	if x.cfg.Source != configuration.Automated {
		return nil
	}

	owner, name, err := x.cfg.SplitRepository()
	if err != nil {
		return errors.Wrap(err, "no repository configured for summary comment")
	}
	if x.issueNumber == 0 {
		return errors.New("no issue number configured for summary comment")
	}

	comment := &github.IssueComment{Body: github.String(x.Summary())}
	if _, _, err := x.GitHub().Issues().CreateComment(ctx, owner, name, x.issueNumber, comment); err != nil {
		return errors.Wrapf(err, "failed to post summary comment to \"%s/%s#%d\"", owner, name, x.issueNumber)
	}

	logrus.WithFields(logrus.Fields{
		"repository": x.cfg.Repository,
		"issue":      x.issueNumber,
	}).Debug("posted summary comment")
	return nil
}

// Exit finalizes the context and terminates the process with the given
// status code. A failure of the reporting call itself is logged rather than
// masked, and does not alter the exit status.
func (x *Context) Exit(code int) {
	if !x.finalized {
		x.finalized = true
		if err := x.Finalize(context.Background()); err != nil {
			fmt.Fprintf(x.stderr, "%s %v\n", failureMarker, err)
			logrus.WithError(err).Error("summary reporting failed")
		}
	}
	x.exit(code)
}
