package gh

import (
	"context"

	"github.com/google/go-github/github"
)

// Client wraps the use of the go-github library in order to be able to mock
// it in tests.
type Client interface {
	Issues() IssuesService
}

//go:generate mockery -name=IssuesService -output ../test/mocks
type IssuesService interface {
	// Issue API.
	Get(ctx context.Context, owner string, repo string, number int) (*github.Issue, *github.Response, error)

	// Comments API.
	CreateComment(ctx context.Context, owner string, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}
