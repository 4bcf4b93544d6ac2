package core

import "fmt"

// UpstreamError means the provider answered but reported a failure.
// Message is the provider's own text and is shown to users verbatim.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// TransportError means the request could not be completed or the response
// could not be parsed. The cause is for diagnostics only.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
