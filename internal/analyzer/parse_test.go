package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimguard/internal/domain"
)

// responseWithText wraps raw model text in the response envelope.
func responseWithText(t *testing.T, text string) *GenerateResponse {
	t.Helper()
	payload := map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]any{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	return &resp
}

func validOutcomeJSON(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(policyOutcome{
		Scenarios: exampleScenarios(),
		PolicySummary: &domain.PolicySummary{
			CoverageAmount: "₹5L",
		},
	})
	require.NoError(t, err)
	return string(raw)
}

func TestExtractOutcome_PlainJSON(t *testing.T) {
	resp := responseWithText(t, validOutcomeJSON(t))

	outcome, err := ExtractOutcome(resp)
	require.NoError(t, err)

	require.Len(t, outcome.Scenarios, TotalScenarios)
	assert.Equal(t, 1, outcome.Scenarios[0].ID)
	assert.Equal(t, "Heart Attack", outcome.Scenarios[0].Name)
	require.NotNil(t, outcome.PolicySummary)
	assert.Equal(t, "₹5L", outcome.PolicySummary.CoverageAmount)
}

func TestExtractOutcome_StripsCodeFences(t *testing.T) {
	body := validOutcomeJSON(t)

	variants := map[string]string{
		"json fence":   "```json\n" + body + "\n```",
		"bare fence":   "```\n" + body + "\n```",
		"leading ws":   "  \n```json\n" + body + "\n```  ",
		"only leading": "```json\n" + body,
	}

	want, err := ExtractOutcome(responseWithText(t, body))
	require.NoError(t, err)

	for name, text := range variants {
		t.Run(name, func(t *testing.T) {
			got, err := ExtractOutcome(responseWithText(t, text))
			require.NoError(t, err)
			assert.Equal(t, want.Scenarios, got.Scenarios)
		})
	}
}

func TestExtractOutcome_InteriorBackticksUntouched(t *testing.T) {
	scenarios := exampleScenarios()
	scenarios[0].Reason = "see clause ``` 3.2.1"
	raw, err := json.Marshal(policyOutcome{Scenarios: scenarios})
	require.NoError(t, err)

	outcome, err := ExtractOutcome(responseWithText(t, string(raw)))
	require.NoError(t, err)
	assert.Equal(t, "see clause ``` 3.2.1", outcome.Scenarios[0].Reason)
}

func TestExtractOutcome_MissingPayload(t *testing.T) {
	cases := []*GenerateResponse{
		{},
		responseWithText(t, ""),
	}
	for _, resp := range cases {
		_, err := ExtractOutcome(resp)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "missing text payload", parseErr.Reason)
	}
}

func TestExtractOutcome_InvalidJSON(t *testing.T) {
	resp := responseWithText(t, "I could not analyze this document.")

	_, err := ExtractOutcome(resp)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "invalid JSON", parseErr.Reason)
	assert.Equal(t, "I could not analyze this document.", parseErr.RawText)
}

func TestExtractOutcome_WrongScenarioCount(t *testing.T) {
	raw, err := json.Marshal(policyOutcome{Scenarios: exampleScenarios()[:5]})
	require.NoError(t, err)

	_, err = ExtractOutcome(responseWithText(t, string(raw)))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "expected 20 scenarios, got 5")
}

func TestExtractOutcome_DuplicateScenarioID(t *testing.T) {
	scenarios := exampleScenarios()
	scenarios[1].ID = 1

	raw, err := json.Marshal(policyOutcome{Scenarios: scenarios})
	require.NoError(t, err)

	_, err = ExtractOutcome(responseWithText(t, string(raw)))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "duplicate scenario id 1")
}

func TestExtractOutcome_UnknownStatus(t *testing.T) {
	scenarios := exampleScenarios()
	scenarios[3].Status = "maybe"

	raw, err := json.Marshal(policyOutcome{Scenarios: scenarios})
	require.NoError(t, err)

	_, err = ExtractOutcome(responseWithText(t, string(raw)))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, `unknown status "maybe"`)
}

func TestExtractOutcome_MissingScenarios(t *testing.T) {
	_, err := ExtractOutcome(responseWithText(t, `{"policySummary":{"coverageAmount":"₹5L"}}`))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "missing scenarios")
}
