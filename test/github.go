package test

import (
	"github.com/plume-ci/plume/gh"
	"github.com/plume-ci/plume/test/mocks"
)

// TestClient implements gh.Client over testify mocks.
type TestClient struct {
	MockIssues mocks.IssuesService
}

func (t *TestClient) Issues() gh.IssuesService {
	return &t.MockIssues
}
