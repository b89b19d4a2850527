// Package export writes recommendation results to spreadsheet reports.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/job-recommender/internal/recommend"
	"github.com/jonathan/job-recommender/internal/types"
)

// Sheet names
const (
	SummarySheet         = "Summary"
	RecommendationsSheet = "Recommendations"
	FactorsSheet         = "Factors"
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// score bands for row colors, highest first
var bands = []struct {
	min   float64
	color string
}{
	{0.8, "C6EFCE"},
	{0.6, "FFEB9C"},
	{0.4, "FFC7CE"},
	{0, "FF9999"},
}

// ExportRecommendations writes result to an .xlsx workbook at outputPath and
// returns the path written. The extension is added when missing.
func ExportRecommendations(result *recommend.Result, userID string, generated time.Time, outputPath string) (string, error) {
	if result == nil {
		return "", fmt.Errorf("result is nil")
	}

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath += ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return "", fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, name := range []string{RecommendationsSheet, FactorsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	header, err := headerStyle(f)
	if err != nil {
		return "", fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSummary(f, header, result, userID, generated); err != nil {
		return "", fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeRecommendations(f, header, result); err != nil {
		return "", fmt.Errorf("failed to create recommendations sheet: %w", err)
	}
	if err := writeFactors(f, header, result.Scores); err != nil {
		return "", fmt.Errorf("failed to create factors sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}
	return outputPath, nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// setRow writes values left to right starting at column A.
func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	for i, v := range values {
		name, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, name, v); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, style int, headers ...any) error {
	if err := setRow(f, sheet, 1, headers...); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeSummary(f *excelize.File, header int, result *recommend.Result, userID string, generated time.Time) error {
	_ = f.SetColWidth(SummarySheet, "A", "A", 22)
	_ = f.SetColWidth(SummarySheet, "B", "B", 40)

	if err := setRow(f, SummarySheet, 1, "Job Recommendations"); err != nil {
		return err
	}
	if err := f.MergeCell(SummarySheet, "A1", "B1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "B1", header); err != nil {
		return err
	}

	rows := [][]any{
		{"User:", userID},
		{"Generated:", generated.Format("2006-01-02 15:04:05")},
		{"Jobs:", len(result.Jobs)},
		{"Ranked:", !result.Fallback},
	}
	if result.Fallback {
		rows = append(rows, []any{"Fallback reason:", string(result.FallbackReason)})
	}
	if len(result.Scores) > 0 {
		var total float64
		for _, s := range result.Scores {
			total += s.Score
		}
		rows = append(rows,
			[]any{"Highest score:", result.Scores[0].Score},
			[]any{"Average score:", fmt.Sprintf("%.2f", total/float64(len(result.Scores)))},
		)
	}

	for i, r := range rows {
		if err := setRow(f, SummarySheet, i+3, r...); err != nil {
			return err
		}
	}
	return nil
}

func writeRecommendations(f *excelize.File, header int, result *recommend.Result) error {
	sheet := RecommendationsSheet
	widths := map[string]float64{"A": 6, "B": 32, "C": 22, "D": 20, "E": 8, "F": 10, "G": 8, "H": 50}
	for col, w := range widths {
		_ = f.SetColWidth(sheet, col, col, w)
	}

	if err := writeHeader(f, sheet, header, "Rank", "Title", "Company", "Location", "Remote", "Level", "Score", "Reasons"); err != nil {
		return err
	}

	styles := make([]int, len(bands))
	for i, b := range bands {
		s, err := f.NewStyle(&excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{b.color}, Pattern: 1},
			Border: thinBorder,
		})
		if err != nil {
			return err
		}
		styles[i] = s
	}

	for i := range result.Jobs {
		row := i + 2
		job := &result.Jobs[i]
		values := []any{i + 1, job.Title, job.CompanyName(), job.LocationText(), job.IsRemote(), string(job.EffectiveLevel())}
		if i < len(result.Scores) {
			s := result.Scores[i]
			values = append(values, s.Score, strings.Join(s.Reasons, "; "))
		}
		if err := setRow(f, sheet, row, values...); err != nil {
			return err
		}

		if job.ApplicationURL != nil && *job.ApplicationURL != "" {
			if err := f.SetCellHyperLink(sheet, cell("B", row), *job.ApplicationURL, "External"); err != nil {
				return err
			}
		}

		if i < len(result.Scores) {
			style := styles[bandFor(result.Scores[i].Score)]
			if err := f.SetCellStyle(sheet, cell("A", row), cell("H", row), style); err != nil {
				return err
			}
		}
	}

	if len(result.Jobs) > 0 {
		return f.AutoFilter(sheet, fmt.Sprintf("A1:H%d", len(result.Jobs)+1), []excelize.AutoFilterOptions{})
	}
	return nil
}

func writeFactors(f *excelize.File, header int, scores []types.JobScore) error {
	sheet := FactorsSheet
	_ = f.SetColWidth(sheet, "A", "A", 6)
	_ = f.SetColWidth(sheet, "B", "B", 32)
	_ = f.SetColWidth(sheet, "C", "F", 12)

	if err := writeHeader(f, sheet, header, "Rank", "Title", "Factor", "Score", "Weight", "Contribution"); err != nil {
		return err
	}

	row := 2
	for i, s := range scores {
		for _, factor := range s.Factors {
			contribution := factor.Score * factor.Weight
			if err := setRow(f, sheet, row, i+1, s.Job.Title, string(factor.Factor), factor.Score, factor.Weight, contribution); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func bandFor(score float64) int {
	for i, b := range bands {
		if score >= b.min {
			return i
		}
	}
	return len(bands) - 1
}
