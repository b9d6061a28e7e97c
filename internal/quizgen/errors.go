package quizgen

import (
	"encoding/json"
	"fmt"
)

// InvalidRequestError indicates a caller-supplied parameter is out of
// range. It is raised before any LLM call is made.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// MalformedOutputError indicates the provider's tool invocation payload
// passed extraction but failed the quiz's structural rules (wrong question
// count, option count, unknown answer letter, empty fields).
type MalformedOutputError struct {
	Reason  string
	Content json.RawMessage
	Err     error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed quiz output: %s", e.Reason)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }
