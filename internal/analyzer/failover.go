package analyzer

import (
	"context"
	"errors"
	"log"
)

// FirstSuccess tries each endpoint strictly in registry order and returns the
// first successful response together with the name of the endpoint that
// produced it. Each endpoint is attempted exactly once; a per-endpoint
// failure is logged and recorded, never fatal on its own. When the registry
// is exhausted the aggregated AllEndpointsFailedError is returned.
func FirstSuccess(ctx context.Context, caller EndpointCaller, endpoints []EndpointDescriptor, doc EncodedDocument, prompt string) (*GenerateResponse, string, error) {
	failures := make([]*EndpointError, 0, len(endpoints))

	for _, ep := range endpoints {
		resp, err := caller.Call(ctx, ep, doc, prompt)
		if err == nil {
			log.Printf("analyzer.FirstSuccess: %s succeeded", ep.Name)
			return resp, ep.Name, nil
		}

		log.Printf("analyzer.FirstSuccess: %s failed: %v", ep.Name, err)

		var epErr *EndpointError
		if !errors.As(err, &epErr) {
			epErr = &EndpointError{Endpoint: ep.Name, Message: err.Error(), Err: err}
		}
		failures = append(failures, epErr)

		// A cancelled or expired request context fails every remaining
		// endpoint the same way; stop early.
		if ctx.Err() != nil {
			break
		}
	}

	return nil, "", &AllEndpointsFailedError{Failures: failures}
}
