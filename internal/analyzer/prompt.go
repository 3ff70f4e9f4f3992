package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"claimguard/internal/domain"
)

// schemaExample is the verbatim JSON object embedded in every prompt. It is
// marshaled from the same domain structs the response parser decodes into,
// so field names in the instruction text and in the parser cannot drift.
var schemaExample = buildSchemaExample()

func buildSchemaExample() string {
	example := policyOutcome{
		Scenarios: exampleScenarios(),
		PolicySummary: &domain.PolicySummary{
			CoverageAmount: "₹5L",
			WaitingPeriods: []string{"48 months for joint replacement"},
			Exclusions:     []string{"Pre-existing diseases", "Maternity", "Robotic surgery"},
			Sublimits:      []string{"₹3L cancer", "₹50K ENT", "Room rent 1%"},
		},
	}
	raw, err := json.Marshal(example)
	if err != nil {
		// Static data; a marshal failure is a programming error.
		panic(fmt.Sprintf("marshaling schema example: %v", err))
	}
	return string(raw)
}

// BuildPolicyPrompt renders the analysis instruction for one policyholder.
// An empty condition list renders as the literal "None".
func BuildPolicyPrompt(user domain.UserContext) string {
	conditions := strings.Join(user.Conditions, ", ")
	if conditions == "" {
		conditions = "None"
	}

	return fmt.Sprintf(`Analyze this health insurance policy for:
Name: %s, Age: %d, Conditions: %s

Return ONLY this JSON object with no surrounding prose, no markdown and no code fences:
%s

Base every status on the actual policy document. Adjust payout and out-of-pocket amounts based on what you find; do not copy the example values.`,
		user.Name, user.Age, conditions, schemaExample)
}
