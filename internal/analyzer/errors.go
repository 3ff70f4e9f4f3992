package analyzer

import (
	"fmt"
	"strings"
)

// ReadError indicates the policy document could not be fully read.
// It is fatal to the analysis request.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading policy document: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// EndpointError indicates a single model endpoint failed. The failover loop
// recovers from it by trying the next endpoint.
type EndpointError struct {
	Endpoint string
	Message  string
	Err      error
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("endpoint %s: %s", e.Endpoint, e.Message)
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}

// AllEndpointsFailedError indicates every endpoint in the registry failed.
// It is fatal to the live path; the caller substitutes the fallback result.
type AllEndpointsFailedError struct {
	Failures []*EndpointError
}

func (e *AllEndpointsFailedError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("all %d endpoints failed: %s", len(e.Failures), strings.Join(msgs, "; "))
}

// ParseError indicates the model output did not match the taught contract.
// RawText carries the offending payload for diagnostics.
type ParseError struct {
	Reason  string
	RawText string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing model response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing model response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
