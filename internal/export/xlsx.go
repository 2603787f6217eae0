package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/feldges/data-extractor/internal/company"
)

// FinancialsXLSX returns an XLSX workbook (as bytes) holding the financial
// table: header row with year labels, one row per metric, numeric cells for
// disclosed values and blanks for absent ones, a trailing currency note.
func FinancialsXLSX(fd company.FinancialData) ([]byte, error) {
	table := BuildTable(fd)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Financials"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remove default sheet: %w", err)
	}

	setCell := func(col, row int, value any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, value)
	}

	if err := setCell(1, 1, "Metric"); err != nil {
		return nil, err
	}
	for i, colDef := range table.Columns {
		if err := setCell(i+2, 1, colDef.Label()); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, metric := range Metrics() {
		if err := setCell(1, row, string(metric)); err != nil {
			return nil, err
		}
		for i, colDef := range table.Columns {
			value := firstMatch(fd.Points, metric, colDef.Year)
			if value == nil {
				continue
			}
			if err := setCell(i+2, row, *value); err != nil {
				return nil, err
			}
		}
		row++
	}

	if err := setCell(1, row+1, "All values in "+table.Currency); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// firstMatch applies the same first-non-null rule as Table.Cell but keeps
// the numeric value so spreadsheet cells stay numbers.
func firstMatch(points []company.MetricPoint, metric Metric, year int) *float64 {
	for _, pt := range points {
		if pt.Year != year {
			continue
		}
		if v := metricValue(pt, metric); v != nil {
			return v
		}
	}
	return nil
}
