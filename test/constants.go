package test

const (
	// Username is the owner used throughout the tests.
	Username = "org"

	// Repository is the repository name used throughout the tests.
	Repository = "repo"

	// IssueNumber is the issue number used throughout the tests.
	IssueNumber = 42
)
