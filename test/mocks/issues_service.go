package mocks

import (
	"context"

	"github.com/google/go-github/github"
	"github.com/stretchr/testify/mock"
)

// IssuesService is an autogenerated mock type for the IssuesService type
type IssuesService struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, owner, repo, number
func (_m *IssuesService) Get(ctx context.Context, owner string, repo string, number int) (*github.Issue, *github.Response, error) {
	ret := _m.Called(ctx, owner, repo, number)

	var r0 *github.Issue
	if rf, ok := ret.Get(0).(func(context.Context, string, string, int) *github.Issue); ok {
		r0 = rf(ctx, owner, repo, number)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*github.Issue)
	}

	var r1 *github.Response
	if rf, ok := ret.Get(1).(func(context.Context, string, string, int) *github.Response); ok {
		r1 = rf(ctx, owner, repo, number)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(*github.Response)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, string, string, int) error); ok {
		r2 = rf(ctx, owner, repo, number)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// CreateComment provides a mock function with given fields: ctx, owner, repo, number, comment
func (_m *IssuesService) CreateComment(ctx context.Context, owner string, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error) {
	ret := _m.Called(ctx, owner, repo, number, comment)

	var r0 *github.IssueComment
	if rf, ok := ret.Get(0).(func(context.Context, string, string, int, *github.IssueComment) *github.IssueComment); ok {
		r0 = rf(ctx, owner, repo, number, comment)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*github.IssueComment)
	}

	var r1 *github.Response
	if rf, ok := ret.Get(1).(func(context.Context, string, string, int, *github.IssueComment) *github.Response); ok {
		r1 = rf(ctx, owner, repo, number, comment)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(*github.Response)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, string, string, int, *github.IssueComment) error); ok {
		r2 = rf(ctx, owner, repo, number, comment)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}
