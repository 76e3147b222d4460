package exporter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/crebi6/passport2/internal/aggregator"
	"github.com/crebi6/passport2/internal/model"
	"github.com/crebi6/passport2/internal/registry"
)

const (
	sheetOverview  = "Overview"
	sheetCountries = "Countries"
)

// Exporter 护照报告导出器
// 无模板，每次新建工作簿填充（数据结构简单，不值得维护定稿模板）
type Exporter struct {
	colors *registry.Registry
}

// NewExporter 创建导出器
func NewExporter(colors *registry.Registry) *Exporter {
	return &Exporter{colors: colors}
}

// Export 生成选定签发国的护照报告
func (e *Exporter) Export(res aggregator.Result) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := e.fillOverview(f, res); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := e.fillCountries(f, res); err != nil {
		_ = f.Close()
		return nil, err
	}

	// 删除默认 Sheet1，激活概览页
	_ = f.DeleteSheet("Sheet1")
	idx, err := f.GetSheetIndex(sheetOverview)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(idx)
	return f, nil
}

// fillOverview 概览页：统计面板 + 实力评分
func (e *Exporter) fillOverview(f *excelize.File, res aggregator.Result) error {
	if _, err := f.NewSheet(sheetOverview); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	setCell := func(cell string, v interface{}) {
		_ = f.SetCellValue(sheetOverview, cell, v)
	}

	setCell("A1", fmt.Sprintf("Passport Power Report - %s", res.Origin))
	_ = f.SetCellStyle(sheetOverview, "A1", "A1", titleStyle)

	setCell("A3", "Metric")
	setCell("B3", "Count")
	setCell("C3", "Percentage")
	_ = f.SetCellStyle(sheetOverview, "A3", "C3", headerStyle)

	s := res.Stats
	rows := []struct {
		label string
		count int
		pct   float64
	}{
		{"Visa-Free Access", s.VisaFreeCount, s.VisaFreePct},
		{"Visa on Arrival", s.VisaOnArrivalCount, s.VisaOnArrivalPct},
		{"Electronic Visa", s.EVisaCount, s.EVisaPct},
		{"Visa Required", s.VisaRequiredCount, s.VisaRequiredPct},
	}
	for i, row := range rows {
		r := 4 + i
		setCell(fmt.Sprintf("A%d", r), row.label)
		setCell(fmt.Sprintf("B%d", r), row.count)
		setCell(fmt.Sprintf("C%d", r), fmt.Sprintf("%.1f%%", row.pct))
	}

	setCell("A9", "Total Destinations")
	setCell("B9", s.Total)
	setCell("A10", "Passport Power Score")
	setCell("B10", fmt.Sprintf("%.1f", s.PowerScore))
	_ = f.SetCellStyle(sheetOverview, "A10", "B10", headerStyle)

	_ = f.SetColWidth(sheetOverview, "A", "A", 28)
	_ = f.SetColWidth(sheetOverview, "B", "C", 14)
	return nil
}

// fillCountries 国家列表页：按类别分列，列头填充类别颜色
func (e *Exporter) fillCountries(f *excelize.File, res aggregator.Result) error {
	if _, err := f.NewSheet(sheetCountries); err != nil {
		return err
	}

	// 按 distribution 的顺序排列各类别列
	for i, cc := range res.Distribution {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: 1,
				Color:   []string{fillColor(e.colors.Color(cc.Requirement))},
			},
		})
		if err != nil {
			return err
		}

		header := fmt.Sprintf("%s (%d)", displayName(cc.Requirement), cc.Count)
		cell := fmt.Sprintf("%s1", col)
		if err := f.SetCellValue(sheetCountries, cell, header); err != nil {
			return err
		}
		_ = f.SetCellStyle(sheetCountries, cell, cell, headerStyle)

		for j, dest := range res.Groups[cc.Requirement] {
			if err := f.SetCellValue(sheetCountries, fmt.Sprintf("%s%d", col, j+2), dest); err != nil {
				return err
			}
		}

		_ = f.SetColWidth(sheetCountries, col, col, 26)
	}

	return nil
}

// displayName 类别展示名：visa_on_arrival -> Visa On Arrival
func displayName(cat model.RequirementCategory) string {
	words := strings.Split(strings.ReplaceAll(string(cat), "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// fillColor excelize 填充色不带 # 前缀
func fillColor(color string) string {
	return strings.TrimPrefix(color, "#")
}
