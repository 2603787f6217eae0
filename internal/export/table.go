// Package export derives presentation forms from stored snapshots: the
// year-indexed financial table, its tab-separated clipboard block, an XLSX
// workbook and per-field copy text. Nothing here is persisted; everything is
// computed on read.
package export

import (
	"sort"
	"strconv"

	"github.com/feldges/data-extractor/internal/company"
)

// Metric identifies one row of the financial table.
type Metric string

// Table metrics, in display order.
const (
	MetricRevenue Metric = "Revenue"
	MetricEBITDA  Metric = "EBITDA"
	MetricMargin  Metric = "Margin"
	MetricDebt    Metric = "Debt"
)

// Metrics returns the table rows in display order.
func Metrics() []Metric {
	return []Metric{MetricRevenue, MetricEBITDA, MetricMargin, MetricDebt}
}

// YearColumn is one column of the financial table. Forecast is set when any
// point for the year is a forecast, independent of point order.
type YearColumn struct {
	Year     int
	Forecast bool
}

// Label renders the column header: the year, suffixed with "E" for forecast
// years ("2024E").
func (c YearColumn) Label() string {
	label := strconv.Itoa(c.Year)
	if c.Forecast {
		label += "E"
	}
	return label
}

// Table is the year-indexed financial table derived from a FinancialData
// value: metrics as rows, years as columns.
type Table struct {
	Columns  []YearColumn
	Currency string

	points []company.MetricPoint
}

// BuildTable derives the table from financial data. Columns are the sorted
// union of all point years. Cell values follow a first-match rule: scanning
// points in stored order, the first non-null value for the metric and year
// wins. Duplicate (year, type) points are structurally permitted; the rule
// resolves them deterministically rather than merging.
func BuildTable(fd company.FinancialData) Table {
	years := make(map[int]bool)
	for _, pt := range fd.Points {
		forecast := years[pt.Year]
		years[pt.Year] = forecast || pt.Type == company.MetricForecast
	}

	columns := make([]YearColumn, 0, len(years))
	for year, forecast := range years {
		columns = append(columns, YearColumn{Year: year, Forecast: forecast})
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i].Year < columns[j].Year })

	return Table{
		Columns:  columns,
		Currency: fd.Currency,
		points:   fd.Points,
	}
}

// Cell returns the displayed value for a metric and year, or the empty
// string when no point discloses it.
func (t Table) Cell(metric Metric, year int) string {
	for _, pt := range t.points {
		if pt.Year != year {
			continue
		}
		if v := metricValue(pt, metric); v != nil {
			return formatNumber(*v)
		}
	}
	return ""
}

func metricValue(pt company.MetricPoint, metric Metric) *float64 {
	switch metric {
	case MetricRevenue:
		return pt.Revenue
	case MetricEBITDA:
		return pt.EBITDA
	case MetricMargin:
		return pt.Margin
	case MetricDebt:
		return pt.Debt
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
