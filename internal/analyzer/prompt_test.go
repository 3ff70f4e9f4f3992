package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimguard/internal/domain"
)

func TestBuildPolicyPrompt_ContainsUserContext(t *testing.T) {
	user := domain.UserContext{
		Name:       "Rajesh Kumar",
		Age:        45,
		Conditions: []string{"Diabetes", "Hypertension"},
	}

	prompt := BuildPolicyPrompt(user)

	assert.Contains(t, prompt, "Name: Rajesh Kumar")
	assert.Contains(t, prompt, "Age: 45")
	assert.Contains(t, prompt, "Conditions: Diabetes, Hypertension")
}

func TestBuildPolicyPrompt_EmptyConditionsRenderAsNone(t *testing.T) {
	user := domain.UserContext{Name: "Priya", Age: 30}

	prompt := BuildPolicyPrompt(user)

	assert.Contains(t, prompt, "Conditions: None")
}

func TestBuildPolicyPrompt_SchemaExampleRoundTrips(t *testing.T) {
	// The embedded example must decode through the same struct the parser
	// uses, with the full scenario catalog present.
	var outcome policyOutcome
	err := json.Unmarshal([]byte(schemaExample), &outcome)
	require.NoError(t, err)

	require.Len(t, outcome.Scenarios, TotalScenarios)
	require.NotNil(t, outcome.PolicySummary)

	for i, sc := range outcome.Scenarios {
		assert.Equal(t, i+1, sc.ID)
		assert.Equal(t, ScenarioName(i+1), sc.Name)
		assert.True(t, sc.Status.Valid(), "scenario %d has invalid status %q", sc.ID, sc.Status)
	}
}

func TestBuildPolicyPrompt_EmbedsSchemaExample(t *testing.T) {
	prompt := BuildPolicyPrompt(domain.UserContext{Name: "A", Age: 1})

	assert.Contains(t, prompt, schemaExample)
	assert.Contains(t, prompt, "Return ONLY this JSON object")
}

func TestScenarioName_OutOfRange(t *testing.T) {
	assert.Equal(t, "", ScenarioName(0))
	assert.Equal(t, "", ScenarioName(TotalScenarios+1))
	assert.Equal(t, "Heart Attack", ScenarioName(1))
	assert.Equal(t, "ICU Admission", ScenarioName(20))
}

func TestCatalogNames_ReturnsCopy(t *testing.T) {
	names := CatalogNames()
	require.Len(t, names, TotalScenarios)

	names[0] = "mutated"
	assert.Equal(t, "Heart Attack", ScenarioName(1))
}
