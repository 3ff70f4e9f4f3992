package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimguard/internal/domain"
)

func testScenarios() []domain.ScenarioOutcome {
	return []domain.ScenarioOutcome{
		{ID: 1, Name: "Heart Attack", Status: domain.StatusCovered, Payout: "₹4.5L", Reason: "Cardiac care covered", Clause: "3.2.1"},
		{ID: 2, Name: "Knee Surgery", Status: domain.StatusRejected, Payout: "₹0", Reason: "Waiting period", Clause: "4.7.2", OutOfPocket: "₹4.2L"},
	}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteScenarios(testScenarios()))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ID", "Scenario", "Status", "Payout", "Reason", "Clause", "Out of Pocket"}, rows[0])
	assert.Equal(t, []string{"1", "Heart Attack", "covered", "₹4.5L", "Cardiac care covered", "3.2.1", ""}, rows[1])
	assert.Equal(t, []string{"2", "Knee Surgery", "rejected", "₹0", "Waiting period", "4.7.2", "₹4.2L"}, rows[2])
}

func TestBOM(t *testing.T) {
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, BOM)
}
