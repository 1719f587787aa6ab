package execution

import (
	"strings"
	"testing"

	"github.com/plume-ci/plume/configuration"
	"github.com/plume-ci/plume/test"

	"github.com/google/go-github/github"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

func TestSummary(t *testing.T) {
	x, _ := makeTestContext(&configuration.Config{})
	c := makeCLIContext(t, nil, nil, nil)
	x.ProcessOptions(c, []string{"tool", "run"})

	x.Log("ok1")
	x.LogError("bad1")

	expected := "`tool run`\n```\nok1\nbad1\n```"
	if summary := x.Summary(); summary != expected {
		t.Fatalf("unexpected summary %q, expected %q", summary, expected)
	}
}

func TestSummaryGroupsSuccessBeforeError(t *testing.T) {
	x, _ := makeTestContext(&configuration.Config{})
	c := makeCLIContext(t, nil, nil, nil)
	x.ProcessOptions(c, []string{"tool", "run"})

	// Interleaved calls: the summary still lists every success before any
	// error.
	x.LogError("bad1")
	x.Log("ok1")
	x.LogError("bad2")
	x.Log("ok2")

	expected := "`tool run`\n```\nok1\nok2\nbad1\nbad2\n```"
	if summary := x.Summary(); summary != expected {
		t.Fatalf("unexpected summary %q", summary)
	}
}

func TestExitInteractiveNeverPosts(t *testing.T) {
	x, h := makeTestContext(&configuration.Config{
		Source:     configuration.Interactive,
		Repository: "org/repo",
		Token:      "secret",
		Issue:      test.IssueNumber,
	})

	x.Log("ok1")
	x.LogError("bad1")
	x.Exit(0)

	if h.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", h.exitCode)
	}
	if h.clients != 0 {
		t.Fatal("interactive finalization must not construct a client")
	}
	test.AssertExpectations(h.client, t)
}

func TestExitAutomatedPostsSummary(t *testing.T) {
	x, h := makeTestContext(&configuration.Config{
		Source:     configuration.Automated,
		Repository: "org/repo",
		Token:      "secret",
		Issue:      test.IssueNumber,
	})
	c := makeCLIContext(t, nil, nil, nil)
	x.ProcessOptions(c, []string{"tool", "run"})

	x.Log("ok1")
	x.LogError("bad1")

	body := "`tool run`\n```\nok1\nbad1\n```"
	h.client.MockIssues.
		On("CreateComment", mock.Anything, test.Username, test.Repository, test.IssueNumber, &github.IssueComment{Body: test.MakeString(body)}).
		Return(nil, nil, nil).
		Once()

	x.Exit(0)
	if h.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", h.exitCode)
	}
	test.AssertExpectations(h.client, t)
}

func TestExitFinalizesOnce(t *testing.T) {
	x, h := makeTestContext(&configuration.Config{
		Source:     configuration.Automated,
		Repository: "org/repo",
		Token:      "secret",
		Issue:      test.IssueNumber,
	})

	h.client.MockIssues.
		On("CreateComment", mock.Anything, test.Username, test.Repository, test.IssueNumber, mock.Anything).
		Return(nil, nil, nil).
		Once()

	x.Exit(0)
	x.Exit(0)
	test.AssertExpectations(h.client, t)
}

func TestExitReportingFailureIsLogged(t *testing.T) {
	x, h := makeTestContext(&configuration.Config{
		Source:     configuration.Automated,
		Repository: "org/repo",
		Token:      "secret",
		Issue:      test.IssueNumber,
	})

	h.client.MockIssues.
		On("CreateComment", mock.Anything, test.Username, test.Repository, test.IssueNumber, mock.Anything).
		Return(nil, nil, errors.New("service unavailable")).
		Once()

	x.Exit(3)
	if h.exitCode != 3 {
		t.Fatalf("reporting failure must not alter the exit code, got %d", h.exitCode)
	}
	if !strings.Contains(h.stderr.String(), "failed to post summary comment") {
		t.Fatalf("unexpected stderr %q", h.stderr.String())
	}
	test.AssertExpectations(h.client, t)
}

func TestExitAutomatedWithoutIssue(t *testing.T) {
	x, h := makeTestContext(&configuration.Config{
		Source:     configuration.Automated,
		Repository: "org/repo",
		Token:      "secret",
	})

	x.Exit(0)
	if h.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", h.exitCode)
	}
	if !strings.Contains(h.stderr.String(), "no issue number configured") {
		t.Fatalf("unexpected stderr %q", h.stderr.String())
	}
	test.AssertExpectations(h.client, t)
}
