package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feldges/data-extractor/internal/company"
)

func copyTestCompany() *company.Company {
	fact := func(v string) company.ScalarFact {
		return company.ScalarFact{
			Provenance: company.Provenance{Pages: []int{0}, Quality: company.QualityHigh},
			Value:      v,
		}
	}
	return &company.Company{
		ID: "abc",
		CompanyBase: company.CompanyBase{
			Name:          fact("Acme Corp"),
			Description:   fact("A maker of anvils"),
			Strategy:      fact("Expand east"),
			BusinessModel: fact("Direct sales"),
			Market:        fact("Industrial supplies"),
			Clients:       fact("Coyotes"),
			Products:      fact("Anvils and rockets"),
			Financials: financials("USD m",
				company.MetricPoint{Year: 2022, Revenue: ptr(50), Type: company.MetricActual},
			),
		},
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields() {
		got, err := ParseField(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseField("top_management")
	assert.Error(t, err, "the roster is not a copyable field")

	_, err = ParseField("")
	assert.Error(t, err)
}

func TestCopyText_ScalarFields(t *testing.T) {
	c := copyTestCompany()

	tests := []struct {
		field Field
		want  string
	}{
		{FieldName, "Acme Corp"},
		{FieldDescription, "A maker of anvils"},
		{FieldStrategy, "Expand east"},
		{FieldBusinessModel, "Direct sales"},
		{FieldMarket, "Industrial supplies"},
		{FieldClients, "Coyotes"},
		{FieldProducts, "Anvils and rockets"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			got, err := CopyText(c, tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCopyText_FinancialsIsTSV(t *testing.T) {
	c := copyTestCompany()

	got, err := CopyText(c, FieldFinancials)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "Metric\t2022"), "financials copy as the spreadsheet block")
	assert.Contains(t, got, "Revenue\t50")
	assert.Contains(t, got, "All values in USD m")
}

func TestCopyText_UnknownField(t *testing.T) {
	_, err := CopyText(copyTestCompany(), Field("bogus"))
	assert.Error(t, err)
}
