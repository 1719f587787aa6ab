package execution

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Operation is an arbitrary unit of work whose outcome is standardized into
// the context's transcript by Wrap.
type Operation func(ctx context.Context, args ...interface{}) (interface{}, error)

// WrapOptions configures how an operation's outcome is recorded.
type WrapOptions struct {
	// Operation is the unit of work to execute.
	Operation Operation

	// SuccessMessage, when non-empty, is appended to the success transcript
	// after the operation completes without error.
	SuccessMessage string

	// ErrorMessage, when non-empty, replaces the operation's own error text
	// in the error transcript.
	ErrorMessage string

	// Verbose echoes the operation's result to standard output.
	Verbose bool
}

// result is the tagged outcome of one operation invocation. Exactly one of
// the success or failure paths is taken per invocation.
type result struct {
	value interface{}
	err   error
}

// Wrap returns a callable that executes the configured operation and records
// its outcome in the transcript. The operation's failure is swallowed, never
// re-raised: the callable returns the operation's result value, or nil when
// it failed, and appends at most one transcript entry either way.
func (x *Context) Wrap(opts WrapOptions) func(ctx context.Context, args ...interface{}) interface{} {
	return func(ctx context.Context, args ...interface{}) interface{} {
		res := runOperation(ctx, opts.Operation, args...)
		if res.err != nil {
			message := opts.ErrorMessage
			if message == "" {
				message = res.err.Error()
			}
			x.LogError(message)
			return nil
		}
		if opts.Verbose && res.value != nil {
			fmt.Fprintln(x.stdout, res.value)
		}
		if opts.SuccessMessage != "" {
			x.Log(opts.SuccessMessage)
		}
		return res.value
	}
}

func runOperation(ctx context.Context, op Operation, args ...interface{}) (res result) {
	defer func() {
		if r := recover(); r != nil {
			res = result{err: errors.Errorf("operation panicked: %v", r)}
		}
	}()
	value, err := op(ctx, args...)
	return result{value: value, err: err}
}
