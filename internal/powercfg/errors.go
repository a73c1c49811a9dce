package powercfg

import "fmt"

// NotFoundError reports a name query that matched zero candidates.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no match for %q", e.Query)
}

// AmbiguousMatchError reports a name query that matched more than one
// candidate where a unique match was required. There is no tie-break;
// the caller has to sharpen the query.
type AmbiguousMatchError struct {
	Query   string
	Matches int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%q matches %d entries, narrow the name", e.Query, e.Matches)
}

// ValidationError reports a precondition violated before any command ran.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ExecutionError reports a powercfg invocation the runner could not
// complete, locally or over the remote transport.
type ExecutionError struct {
	Command string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
