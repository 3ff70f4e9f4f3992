package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"claimguard/internal/analyzer"
	"claimguard/internal/domain"
)

const reportSheet = "Report Card"

// WriteXLSX renders a full report card workbook: summary block, scenario
// breakdown, and recommendations.
func WriteXLSX(w io.Writer, userName string, result *domain.AnalysisResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	cells := map[string]interface{}{
		"A1": "Policyholder",
		"B1": userName,
		"A2": "Scenarios covered",
		"B2": fmt.Sprintf("%d of %d", result.VulnerabilityScore, result.TotalScenarios),
		"A3": "Analysis source",
		"B3": analysisSource(result),
	}
	if result.ModelUsed != "" {
		cells["A4"] = "Model"
		cells["B4"] = result.ModelUsed
	}
	for cell, value := range cells {
		if err := f.SetCellValue(reportSheet, cell, value); err != nil {
			return fmt.Errorf("writing summary cell %s: %w", cell, err)
		}
	}

	headerRow := 6
	for i, col := range csvColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		if err := f.SetCellValue(reportSheet, cell, col); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, sc := range result.Scenarios {
		row := headerRow + 1 + i
		values := []interface{}{sc.ID, sc.Name, string(sc.Status), sc.Payout, sc.Reason, sc.Clause, sc.OutOfPocket}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return fmt.Errorf("writing scenario row %d: %w", sc.ID, err)
			}
		}
	}

	if err := writeRecommendations(f, result.Recommendations); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeRecommendations(f *excelize.File, recs []domain.Recommendation) error {
	const sheet = "Recommendations"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating recommendations sheet: %w", err)
	}

	header := []string{"Title", "Cost", "Benefit", "Urgency"}
	for i, col := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("writing recommendations header: %w", err)
		}
	}

	for i, rec := range recs {
		values := []interface{}{rec.Title, rec.Cost, rec.Benefit, string(rec.Urgency)}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing recommendation row %d: %w", i+1, err)
			}
		}
	}

	totalRow := len(recs) + 2
	totals := map[int]interface{}{
		1: "Total annual cost",
		2: analyzer.TotalAnnualCost(recs),
	}
	for col, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(col, totalRow)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("writing recommendations total: %w", err)
		}
	}
	return nil
}

func analysisSource(result *domain.AnalysisResult) string {
	if result.IsRealAnalysis {
		return "live"
	}
	return "sample"
}
