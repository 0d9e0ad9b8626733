package export

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"wisefido-sepsis/internal/models"

	"github.com/xuri/excelize/v2"
)

// 工作表名称
const (
	SheetSummary  = "Summary"
	SheetPatients = "Patients"
	SheetCohorts  = "Cohorts"
	SheetGenders  = "Genders"
)

// PatientsHeader 患者明细表头
var PatientsHeader = []string{
	"Patient ID",
	"Age",
	"Gender",
	"Age Group",
	"Base Probability",
	"Adjusted Probability",
	"Final Probability",
	"Risk Level",
	"Total Multiplier",
	"Screen Score",
	"Screen Level",
	"Adjustments",
}

// CohortsHeader 年龄分组统计表头
var CohortsHeader = []string{
	"Age Group",
	"Count",
	"Mean Risk",
	"Std Risk",
	"High Risk Proportion",
	"Baseline Incidence Risk",
}

// GendersHeader 性别统计表头
var GendersHeader = []string{
	"Gender",
	"Count",
	"Mean Risk",
	"Std Risk",
	"High Risk Count",
}

// WritePopulationWorkbook 生成人群报告 Excel 文件
func WritePopulationWorkbook(report *models.PopulationReport, profiles []*models.RiskProfile) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("population report is required")
	}

	f := excelize.NewFile()
	// WriteTo 需要文件保持打开，出错时再 Close

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeSummarySheet(f, report, headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTable(f, SheetPatients, PatientsHeader, patientRows(profiles), headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTable(f, SheetCohorts, CohortsHeader, cohortRows(report), headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTable(f, SheetGenders, GendersHeader, genderRows(report), headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	// 删除默认的 Sheet1，Summary 为活动工作表
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	if index, err := f.GetSheetIndex(SheetSummary); err == nil {
		f.SetActiveSheet(index)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}
	return buf.Bytes(), nil
}

func newHeaderStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create header style: %w", err)
	}
	return style, nil
}

// writeSummarySheet 汇总：键值对 + 高风险分组 + 建议
func writeSummarySheet(f *excelize.File, report *models.PopulationReport, headerStyle int) error {
	rows := [][]any{
		{"Report ID", report.ReportID},
		{"Total Patients", report.Summary.TotalPatients},
		{"Overall Mean Risk", report.Summary.OverallMeanRisk},
		{"High Risk Patients", report.Summary.HighRiskPatients},
	}
	for _, h := range report.HighRiskCohorts {
		rows = append(rows, []any{"High Risk Demographic", fmt.Sprintf("%s (%.3f): %s", h.Demographic, h.MeanRisk, h.Reason)})
	}
	for _, r := range report.Recommendations {
		rows = append(rows, []any{"Recommendation", r})
	}
	return writeTable(f, SheetSummary, []string{"Metric", "Value"}, rows, headerStyle)
}

func patientRows(profiles []*models.RiskProfile) [][]any {
	rows := make([][]any, 0, len(profiles))
	for _, p := range profiles {
		if p == nil {
			continue
		}
		rows = append(rows, []any{
			p.PatientID,
			p.AgeYears,
			string(p.Gender),
			p.Cohort.String(),
			p.BaseProbability,
			p.AdjustedProbability,
			p.FinalProbability,
			p.RiskLevel.String(),
			p.TotalMultiplier,
			p.Screen.AdjustedScore,
			p.Screen.Level,
			strings.Join(p.Adjustments, "; "),
		})
	}
	return rows
}

func cohortRows(report *models.PopulationReport) [][]any {
	rows := make([][]any, 0, len(report.CohortAnalysis))
	for _, c := range models.AllCohorts() {
		stats, ok := report.CohortAnalysis[c.String()]
		if !ok {
			continue
		}
		rows = append(rows, []any{
			c.Display(),
			stats.Count,
			stats.MeanRisk,
			stats.StdRisk,
			stats.HighRiskProportion,
			stats.BaselineIncidenceRisk,
		})
	}
	return rows
}

func genderRows(report *models.PopulationReport) [][]any {
	keys := make([]string, 0, len(report.GenderAnalysis))
	for k := range report.GenderAnalysis {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]any, 0, len(keys))
	for _, k := range keys {
		stats := report.GenderAnalysis[k]
		rows = append(rows, []any{k, stats.Count, stats.MeanRisk, stats.StdRisk, stats.HighRiskCount})
	}
	return rows
}

// writeTable 写表头和数据行，冻结表头
func writeTable(f *excelize.File, sheet string, headers []string, rows [][]any, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheet, name, name, columnWidth(header)); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2) // 第1行是表头
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell value at row %d, col %d: %w", rowIdx+2, colIdx+1, err)
			}
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}
	return nil
}

func columnWidth(header string) float64 {
	switch header {
	case "Patient ID":
		return 38
	case "Value", "Adjustments":
		return 60
	default:
		return float64(max(len(header)+4, 12))
	}
}
