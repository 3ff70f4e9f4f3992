package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"claimguard/internal/domain"
)

// policyOutcome is the JSON object the model is instructed to return. The
// same struct is marshaled into the prompt's schema example.
type policyOutcome struct {
	Scenarios     []domain.ScenarioOutcome `json:"scenarios"`
	PolicySummary *domain.PolicySummary    `json:"policySummary,omitempty"`
}

// PolicyOutcome is the validated result of parsing one model response.
type PolicyOutcome struct {
	Scenarios     []domain.ScenarioOutcome
	PolicySummary *domain.PolicySummary
}

// ExtractOutcome decodes the model response into the scenario list and policy
// summary. A failure here is terminal for the analysis attempt; there is no
// partial or best-effort recovery.
func ExtractOutcome(resp *GenerateResponse) (*PolicyOutcome, error) {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &ParseError{Reason: "missing text payload"}
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return nil, &ParseError{Reason: "missing text payload"}
	}

	cleaned := stripCodeFences(text)

	var outcome policyOutcome
	if err := json.Unmarshal([]byte(cleaned), &outcome); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", RawText: cleaned, Err: err}
	}

	if err := validateScenarios(outcome.Scenarios); err != nil {
		return nil, &ParseError{Reason: err.Error(), RawText: cleaned}
	}

	return &PolicyOutcome{
		Scenarios:     outcome.Scenarios,
		PolicySummary: outcome.PolicySummary,
	}, nil
}

// stripCodeFences removes leading/trailing markdown fence markers the model
// may emit despite instructions. Interior content is never altered.
func stripCodeFences(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// validateScenarios enforces the structural contract: exactly TotalScenarios
// entries, ids covering 1..TotalScenarios with no duplicates, known statuses.
func validateScenarios(scenarios []domain.ScenarioOutcome) error {
	if scenarios == nil {
		return fmt.Errorf("missing scenarios")
	}
	if len(scenarios) != TotalScenarios {
		return fmt.Errorf("expected %d scenarios, got %d", TotalScenarios, len(scenarios))
	}
	seen := make(map[int]bool, TotalScenarios)
	for _, sc := range scenarios {
		if sc.ID < 1 || sc.ID > TotalScenarios {
			return fmt.Errorf("scenario id %d out of range", sc.ID)
		}
		if seen[sc.ID] {
			return fmt.Errorf("duplicate scenario id %d", sc.ID)
		}
		seen[sc.ID] = true
		if !sc.Status.Valid() {
			return fmt.Errorf("scenario %d has unknown status %q", sc.ID, sc.Status)
		}
	}
	return nil
}
