package analyzer

import (
	"strconv"
	"strings"

	"claimguard/internal/domain"
)

// VulnerabilityScore counts the scenarios fully covered by the policy,
// an integer in [0, TotalScenarios].
func VulnerabilityScore(scenarios []domain.ScenarioOutcome) int {
	covered := 0
	for _, sc := range scenarios {
		if sc.Status == domain.StatusCovered {
			covered++
		}
	}
	return covered
}

// GenerateRecommendations derives upsell recommendations from the non-covered
// scenarios. Rules are evaluated independently and in fixed order; every
// applicable rule fires, and the comprehensive-coverage entry only when none
// did. Emission order is rule order, never re-sorted by urgency.
func GenerateRecommendations(scenarios []domain.ScenarioOutcome) []domain.Recommendation {
	var gaps []string
	for _, sc := range scenarios {
		if sc.Status != domain.StatusCovered {
			gaps = append(gaps, strings.ToLower(sc.Name))
		}
	}

	anyGap := func(keywords ...string) bool {
		for _, name := range gaps {
			for _, kw := range keywords {
				if strings.Contains(name, kw) {
					return true
				}
			}
		}
		return false
	}

	var recs []domain.Recommendation
	if anyGap("cancer", "chemo") {
		recs = append(recs, domain.Recommendation{
			Title:   "Add Cancer Coverage",
			Cost:    "₹8,000/year",
			Benefit: "₹10L cancer coverage",
			Urgency: domain.UrgencyHigh,
		})
	}
	if anyGap("knee", "hip", "spinal") {
		recs = append(recs, domain.Recommendation{
			Title:   "Joint Replacement Rider",
			Cost:    "₹6,500/year",
			Benefit: "Covers joint surgeries",
			Urgency: domain.UrgencyHigh,
		})
	}
	if anyGap("icu") {
		recs = append(recs, domain.Recommendation{
			Title:   "Remove Room Rent Cap",
			Cost:    "₹4,200/year",
			Benefit: "No ICU co-payment",
			Urgency: domain.UrgencyMedium,
		})
	}
	if len(recs) == 0 {
		recs = append(recs, domain.Recommendation{
			Title:   "Good Coverage",
			Cost:    "₹0",
			Benefit: "Policy is comprehensive",
			Urgency: domain.UrgencyLow,
		})
	}
	return recs
}

// TotalAnnualCost sums recommendation costs into a display total like
// "₹18,700". Cost strings carry a single rupee amount per year; every
// non-digit character is ignored when summing.
func TotalAnnualCost(recs []domain.Recommendation) string {
	total := 0
	for _, rec := range recs {
		total += digitsOf(rec.Cost)
	}
	return "₹" + groupThousands(total)
}

func digitsOf(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
