package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCaller fails every endpoint except those named in succeedOn.
type scriptedCaller struct {
	succeedOn map[string]bool
	calls     []string
}

func (c *scriptedCaller) Call(_ context.Context, ep EndpointDescriptor, _ EncodedDocument, _ string) (*GenerateResponse, error) {
	c.calls = append(c.calls, ep.Name)
	if c.succeedOn[ep.Name] {
		return &GenerateResponse{}, nil
	}
	return nil, &EndpointError{Endpoint: ep.Name, Message: "HTTP 503"}
}

func testEndpoints() []EndpointDescriptor {
	return []EndpointDescriptor{
		{Name: "alpha", Address: "http://alpha"},
		{Name: "beta", Address: "http://beta"},
		{Name: "gamma", Address: "http://gamma"},
	}
}

func TestFirstSuccess_ReturnsFirstWorkingEndpoint(t *testing.T) {
	caller := &scriptedCaller{succeedOn: map[string]bool{"gamma": true}}

	resp, name, err := FirstSuccess(context.Background(), caller, testEndpoints(), EncodedDocument{}, "prompt")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "gamma", name)
	// Strict order, one attempt each.
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, caller.calls)
}

func TestFirstSuccess_StopsAtFirstSuccess(t *testing.T) {
	caller := &scriptedCaller{succeedOn: map[string]bool{"alpha": true, "beta": true}}

	_, name, err := FirstSuccess(context.Background(), caller, testEndpoints(), EncodedDocument{}, "prompt")
	require.NoError(t, err)

	assert.Equal(t, "alpha", name)
	assert.Equal(t, []string{"alpha"}, caller.calls)
}

func TestFirstSuccess_AllFail(t *testing.T) {
	caller := &scriptedCaller{succeedOn: map[string]bool{}}

	_, _, err := FirstSuccess(context.Background(), caller, testEndpoints(), EncodedDocument{}, "prompt")
	require.Error(t, err)

	var allFailed *AllEndpointsFailedError
	require.ErrorAs(t, err, &allFailed)
	require.Len(t, allFailed.Failures, 3)
	assert.Equal(t, "alpha", allFailed.Failures[0].Endpoint)
	assert.Equal(t, "gamma", allFailed.Failures[2].Endpoint)
	assert.Contains(t, err.Error(), "all 3 endpoints failed")
}

func TestFirstSuccess_WrapsForeignErrors(t *testing.T) {
	caller := &funcCaller{fn: func(ep EndpointDescriptor) (*GenerateResponse, error) {
		return nil, errors.New("boom")
	}}

	_, _, err := FirstSuccess(context.Background(), caller, testEndpoints()[:1], EncodedDocument{}, "prompt")

	var allFailed *AllEndpointsFailedError
	require.ErrorAs(t, err, &allFailed)
	require.Len(t, allFailed.Failures, 1)
	assert.Equal(t, "alpha", allFailed.Failures[0].Endpoint)
	assert.Contains(t, allFailed.Failures[0].Message, "boom")
}

func TestFirstSuccess_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls int
	caller := &funcCaller{fn: func(ep EndpointDescriptor) (*GenerateResponse, error) {
		calls++
		cancel()
		return nil, &EndpointError{Endpoint: ep.Name, Message: "context canceled"}
	}}

	_, _, err := FirstSuccess(ctx, caller, testEndpoints(), EncodedDocument{}, "prompt")
	require.Error(t, err)

	// Remaining endpoints are skipped once the context is dead.
	assert.Equal(t, 1, calls)
}

type funcCaller struct {
	fn func(ep EndpointDescriptor) (*GenerateResponse, error)
}

func (c *funcCaller) Call(_ context.Context, ep EndpointDescriptor, _ EncodedDocument, _ string) (*GenerateResponse, error) {
	return c.fn(ep)
}

func TestDefaultEndpoints_PriorityOrder(t *testing.T) {
	endpoints := DefaultEndpoints()
	require.Len(t, endpoints, 4)

	assert.Equal(t, "gemini-exp-1206", endpoints[0].Name)
	assert.Equal(t, "gemini-2.0-flash-exp", endpoints[1].Name)
	assert.Equal(t, "gemini-1.5-flash", endpoints[2].Name)
	assert.Equal(t, "gemini-1.5-pro", endpoints[3].Name)

	for _, ep := range endpoints {
		assert.Contains(t, ep.Address, ep.Name+":generateContent")
	}
}
