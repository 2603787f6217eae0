package export

import (
	"strings"

	"github.com/feldges/data-extractor/internal/company"
)

// FinancialsTSV renders financial data as a tab-separated, year-indexed
// block suitable for pasting into spreadsheet software: metrics as rows,
// years as columns, absent values as empty cells, with a trailing currency
// annotation.
func FinancialsTSV(fd company.FinancialData) string {
	table := BuildTable(fd)

	var sb strings.Builder
	sb.WriteString("Metric")
	for _, col := range table.Columns {
		sb.WriteByte('\t')
		sb.WriteString(col.Label())
	}
	sb.WriteByte('\n')

	for _, metric := range Metrics() {
		sb.WriteString(string(metric))
		for _, col := range table.Columns {
			sb.WriteByte('\t')
			sb.WriteString(table.Cell(metric, col.Year))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("All values in ")
	sb.WriteString(table.Currency)
	sb.WriteByte('\n')

	return sb.String()
}
