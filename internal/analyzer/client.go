package analyzer

import (
	"context"
	"time"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

// placeholderAPIKey is the unfilled value shipped in example env files.
// Seeing it means the operator never configured a real key.
const placeholderAPIKey = "your_api_key_here"

// Config holds everything the analysis client needs. It is explicit,
// immutable configuration; there is no process-wide state.
type Config struct {
	APIKey    string
	Endpoints []EndpointDescriptor
	Timeout   time.Duration
}

// FallbackOnly reports whether the client should skip the live path entirely.
// A missing or placeholder API key is a recognized operating mode, not an error.
func (c Config) FallbackOnly() bool {
	return c.APIKey == "" || c.APIKey == placeholderAPIKey
}

// Client runs the full policy-analysis pipeline: encode, prompt, failover
// across endpoints, parse, derive insights. It implements port.PolicyAnalyzer.
type Client struct {
	cfg    Config
	caller EndpointCaller
}

// NewClient creates a Client from explicit configuration, filling in the
// default endpoint registry and timeout where unset.
func NewClient(cfg Config) *Client {
	if len(cfg.Endpoints) == 0 {
		cfg.Endpoints = DefaultEndpoints()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		caller: NewInvoker(cfg.APIKey, cfg.Timeout),
	}
}

// NewClientWithCaller creates a Client with a custom EndpointCaller (for testing).
func NewClientWithCaller(cfg Config, caller EndpointCaller) *Client {
	if len(cfg.Endpoints) == 0 {
		cfg.Endpoints = DefaultEndpoints()
	}
	return &Client{cfg: cfg, caller: caller}
}

// Analyze runs one analysis request end to end. It either returns a complete
// live result or an error (ReadError, AllEndpointsFailedError, ParseError);
// callers substitute Fallback() after any error.
func (c *Client) Analyze(ctx context.Context, input port.AnalyzeInput) (*domain.AnalysisResult, error) {
	doc, err := EncodeDocument(input.Document, input.ContentType)
	if err != nil {
		return nil, err
	}

	prompt := BuildPolicyPrompt(input.User)

	resp, endpointName, err := FirstSuccess(ctx, c.caller, c.cfg.Endpoints, doc, prompt)
	if err != nil {
		return nil, err
	}

	outcome, err := ExtractOutcome(resp)
	if err != nil {
		return nil, err
	}

	return &domain.AnalysisResult{
		VulnerabilityScore: VulnerabilityScore(outcome.Scenarios),
		TotalScenarios:     TotalScenarios,
		Scenarios:          outcome.Scenarios,
		PolicySummary:      outcome.PolicySummary,
		Recommendations:    GenerateRecommendations(outcome.Scenarios),
		IsRealAnalysis:     true,
		ModelUsed:          endpointName,
	}, nil
}

// Fallback returns the deterministic analysis result. It always succeeds.
func (c *Client) Fallback() *domain.AnalysisResult {
	return FallbackAnalysis()
}
