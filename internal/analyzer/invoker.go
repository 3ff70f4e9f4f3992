package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Decoding is pinned near-deterministic and the output ceiling is sized for
// the full 20-scenario JSON body without truncation.
const (
	generationTemperature = 0.1
	maxOutputTokens       = 8192
)

// generateRequest is the wire format of one generateContent call.
type generateRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	InlineData *inlineData `json:"inline_data,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// GenerateResponse models the model-endpoint response envelope.
type GenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
}

// EndpointCaller performs one request/response exchange against an endpoint.
type EndpointCaller interface {
	Call(ctx context.Context, ep EndpointDescriptor, doc EncodedDocument, prompt string) (*GenerateResponse, error)
}

// Invoker is the HTTP implementation of EndpointCaller. A single Invoke is
// one request with no internal retry; retry across endpoints is the failover
// controller's job.
type Invoker struct {
	apiKey string
	client *http.Client
}

// NewInvoker creates an Invoker with a per-request timeout.
func NewInvoker(apiKey string, timeout time.Duration) *Invoker {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Invoker{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (inv *Invoker) Call(ctx context.Context, ep EndpointDescriptor, doc EncodedDocument, prompt string) (*GenerateResponse, error) {
	reqBody := generateRequest{
		Contents: []requestContent{
			{
				Parts: []requestPart{
					{InlineData: &inlineData{MimeType: doc.MimeType, Data: doc.Data}},
					{Text: prompt},
				},
			},
		},
		GenerationConfig: generationConfig{
			Temperature:     generationTemperature,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &EndpointError{Endpoint: ep.Name, Message: "marshaling request", Err: err}
	}

	addr := ep.Address + "?key=" + url.QueryEscape(inv.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, &EndpointError{Endpoint: ep.Name, Message: "creating request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := inv.client.Do(req)
	if err != nil {
		return nil, &EndpointError{Endpoint: ep.Name, Message: fmt.Sprintf("transport: %v", err), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &EndpointError{Endpoint: ep.Name, Message: "reading response", Err: err}
	}

	var decoded GenerateResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, &EndpointError{
			Endpoint: ep.Name,
			Message:  fmt.Sprintf("undecodable response (status %d)", resp.StatusCode),
			Err:      err,
		}
	}

	if decoded.Error != nil {
		return nil, &EndpointError{Endpoint: ep.Name, Message: decoded.Error.Message}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &EndpointError{Endpoint: ep.Name, Message: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}

	return &decoded, nil
}
