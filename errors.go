// File: envconf/errors.go
package envconf

import (
	"errors"
	"strings"
)

var (
	// ErrAlreadyValidated is returned when Validate is called more than once
	// on the same Config, regardless of the outcome of the first call.
	ErrAlreadyValidated = errors.New("env declarations have already been validated")

	// ErrNotValidated is returned by getters and Snapshot when the Config
	// has not been successfully validated yet.
	ErrNotValidated = errors.New("config retrieved before env declarations were validated")

	// ErrNotFound is returned by getters for a name with no resolved entry.
	ErrNotFound = errors.New("env config does not exist")

	// ErrIncorrectType is returned by typed getters when the requested type
	// does not match the declared type.
	ErrIncorrectType = errors.New("incorrect env config type")
)

// Issue describes one problem found while resolving a declaration.
// It is a pure value used for reporting; the Env field holds the declared
// name, or "Unknown" when the declaration has no name at all.
type Issue struct {
	Env         string
	Description string
}

func (i Issue) String() string {
	return i.Env + ": " + i.Description
}

// ValidationError aggregates every issue from a failed validation pass.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("there is an issue with the env configuration:\n\n")
	for i, issue := range e.Issues {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(issue.String())
	}
	return b.String()
}
