package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feldges/data-extractor/internal/company"
)

func TestFinancialsTSV_Layout(t *testing.T) {
	fd := financials("USD m",
		company.MetricPoint{Year: 2022, Revenue: ptr(50), Type: company.MetricActual},
	)

	tsv := FinancialsTSV(fd)
	lines := strings.Split(strings.TrimRight(tsv, "\n"), "\n")
	require.Len(t, lines, 6, "header, four metric rows, currency note")

	assert.Equal(t, "Metric\t2022", lines[0])
	assert.Equal(t, "Revenue\t50", lines[1])
	assert.Equal(t, "EBITDA\t", lines[2], "undisclosed EBITDA is an empty cell")
	assert.Equal(t, "Margin\t", lines[3])
	assert.Equal(t, "Debt\t", lines[4])
	assert.Equal(t, "All values in USD m", lines[5])
}

func TestFinancialsTSV_ForecastColumns(t *testing.T) {
	fd := financials("EUR",
		company.MetricPoint{Year: 2023, Revenue: ptr(100), Type: company.MetricActual},
		company.MetricPoint{Year: 2024, Revenue: ptr(120), Type: company.MetricForecast},
	)

	tsv := FinancialsTSV(fd)
	lines := strings.Split(tsv, "\n")
	assert.Equal(t, "Metric\t2023\t2024E", lines[0])
	assert.Equal(t, "Revenue\t100\t120", lines[1])
}

func TestFinancialsTSV_FirstMatchRule(t *testing.T) {
	fd := financials("EUR",
		company.MetricPoint{Year: 2023, Revenue: ptr(100), Type: company.MetricActual},
		company.MetricPoint{Year: 2023, Revenue: ptr(110), Type: company.MetricForecast},
	)

	tsv := FinancialsTSV(fd)
	lines := strings.Split(tsv, "\n")
	assert.Equal(t, "Revenue\t100", lines[1], "first non-null in stored order wins")
}

func TestFinancialsTSV_EmptySeries(t *testing.T) {
	tsv := FinancialsTSV(financials("CHF k"))
	lines := strings.Split(strings.TrimRight(tsv, "\n"), "\n")
	assert.Equal(t, "Metric", lines[0])
	assert.Equal(t, "All values in CHF k", lines[len(lines)-1])
}
