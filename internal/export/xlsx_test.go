package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"claimguard/internal/analyzer"
	"claimguard/internal/domain"
)

func TestWriteXLSX(t *testing.T) {
	result := &domain.AnalysisResult{
		VulnerabilityScore: 1,
		TotalScenarios:     20,
		Scenarios:          testScenarios(),
		Recommendations: []domain.Recommendation{
			{Title: "Joint Replacement Rider", Cost: "₹6,500/year", Benefit: "Covers joint surgeries", Urgency: domain.UrgencyHigh},
		},
		IsRealAnalysis: true,
		ModelUsed:      "gemini-1.5-flash",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "Meera", result))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	name, err := f.GetCellValue("Report Card", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Meera", name)

	covered, err := f.GetCellValue("Report Card", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1 of 20", covered)

	source, err := f.GetCellValue("Report Card", "B3")
	require.NoError(t, err)
	assert.Equal(t, "live", source)

	model, err := f.GetCellValue("Report Card", "B4")
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", model)

	scenario, err := f.GetCellValue("Report Card", "B7")
	require.NoError(t, err)
	assert.Equal(t, "Heart Attack", scenario)

	recTitle, err := f.GetCellValue("Recommendations", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Joint Replacement Rider", recTitle)

	totalLabel, err := f.GetCellValue("Recommendations", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Total annual cost", totalLabel)

	total, err := f.GetCellValue("Recommendations", "B3")
	require.NoError(t, err)
	assert.Equal(t, "₹6,500", total)
}

func TestWriteXLSX_FallbackRecommendationsTotal(t *testing.T) {
	result := analyzer.FallbackAnalysis()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "Ravi", result))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	// 3 recommendations, header row, then the total row.
	total, err := f.GetCellValue("Recommendations", "B5")
	require.NoError(t, err)
	assert.Equal(t, "₹18,700", total)
}

func TestWriteXLSX_SampleSourceOmitsModel(t *testing.T) {
	result := &domain.AnalysisResult{
		VulnerabilityScore: 12,
		TotalScenarios:     20,
		IsRealAnalysis:     false,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "Ravi", result))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	source, err := f.GetCellValue("Report Card", "B3")
	require.NoError(t, err)
	assert.Equal(t, "sample", source)

	model, err := f.GetCellValue("Report Card", "B4")
	require.NoError(t, err)
	assert.Empty(t, model)
}
