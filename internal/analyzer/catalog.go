package analyzer

import "claimguard/internal/domain"

// TotalScenarios is the fixed size of the scenario catalog.
const TotalScenarios = 20

// scenarioNames is the single source of truth for the scenario catalog.
// Index i holds the name of scenario id i+1. The prompt schema example and
// the fallback dataset both derive their names from this table, so the
// contract taught to the model cannot drift from the deterministic result.
var scenarioNames = [TotalScenarios]string{
	"Heart Attack",
	"Knee Surgery",
	"Cancer Treatment",
	"Diabetes Management",
	"Appendicitis Surgery",
	"Cataract Surgery",
	"Dengue Treatment",
	"Hip Replacement",
	"Pneumonia",
	"Robotic Surgery",
	"Bypass Surgery",
	"Kidney Stone Removal",
	"Thyroid Surgery",
	"Hernia Repair",
	"Spinal Surgery",
	"Chemotherapy",
	"Dialysis",
	"Maternity",
	"Accident Emergency",
	"ICU Admission",
}

// ScenarioName returns the catalog name for a scenario id in [1, TotalScenarios].
func ScenarioName(id int) string {
	if id < 1 || id > TotalScenarios {
		return ""
	}
	return scenarioNames[id-1]
}

// CatalogNames returns the ordered scenario names, ids 1..TotalScenarios.
func CatalogNames() []string {
	names := make([]string, TotalScenarios)
	copy(names, scenarioNames[:])
	return names
}

// exampleOutcome is a compact row of the schema example embedded in the prompt.
type exampleOutcome struct {
	status      domain.CoverageStatus
	payout      string
	reason      string
	clause      string
	outOfPocket string
}

// promptExamples holds the per-scenario example values taught to the model.
// Index i corresponds to scenario id i+1.
var promptExamples = [TotalScenarios]exampleOutcome{
	{domain.StatusCovered, "₹X", "why", "section", "₹0"},
	{domain.StatusRejected, "₹0", "48-month waiting period", "4.7.2", "₹4.2L"},
	{domain.StatusPartial, "₹3L", "sub-limit", "5.1.3", "₹2L"},
	{domain.StatusRejected, "₹0", "pre-existing exclusion", "2.4.1", "₹80K"},
	{domain.StatusCovered, "₹1.8L", "emergency covered", "3.1.2", "₹0"},
	{domain.StatusPartial, "₹24K", "eye sub-limit", "5.2.1", "₹40K"},
	{domain.StatusCovered, "₹60K", "vector diseases covered", "3.3.1", "₹0"},
	{domain.StatusRejected, "₹0", "waiting period", "4.7.2", "₹5.5L"},
	{domain.StatusCovered, "₹1.2L", "respiratory covered", "3.3.2", "₹0"},
	{domain.StatusRejected, "₹0", "not covered", "6.2.3", "₹8L"},
	{domain.StatusCovered, "₹5L", "cardiac covered", "3.2.2", "₹0"},
	{domain.StatusCovered, "₹1.5L", "urological covered", "3.4.1", "₹0"},
	{domain.StatusPartial, "₹50K", "ENT sub-limit", "5.3.1", "₹30K"},
	{domain.StatusCovered, "₹80K", "surgery covered", "3.1.3", "₹0"},
	{domain.StatusRejected, "₹0", "waiting period", "4.7.2", "₹6.5L"},
	{domain.StatusPartial, "₹3L", "cancer sub-limit", "5.1.4", "₹4L"},
	{domain.StatusCovered, "₹2.5L", "renal covered", "3.5.1", "₹0"},
	{domain.StatusRejected, "₹0", "not included", "6.1.1", "₹1.5L"},
	{domain.StatusCovered, "₹5L", "accidents covered", "3.6.1", "₹0"},
	{domain.StatusPartial, "₹1.5L", "room rent cap", "5.4.1", "₹60K"},
}

// exampleScenarios assembles the full 20-entry schema example from the catalog.
func exampleScenarios() []domain.ScenarioOutcome {
	out := make([]domain.ScenarioOutcome, TotalScenarios)
	for i, ex := range promptExamples {
		out[i] = domain.ScenarioOutcome{
			ID:          i + 1,
			Name:        scenarioNames[i],
			Status:      ex.status,
			Payout:      ex.payout,
			Reason:      ex.reason,
			Clause:      ex.clause,
			OutOfPocket: ex.outOfPocket,
		}
	}
	return out
}
