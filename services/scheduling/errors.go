package scheduling

import "fmt"

// RemoteError wraps a failed or timed-out call to a collaborator agent.
// The affected party is treated as fully unavailable for that query.
type RemoteError struct {
	Party string
	Op    string
	Err   error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s unreachable: %v", e.Op, e.Party, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func newRemoteError(party, op string, err error) error {
	return &RemoteError{Party: party, Op: op, Err: err}
}
