package company

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuality(t *testing.T) {
	tests := []struct {
		input     string
		want      Quality
		wantError bool
	}{
		{"high", QualityHigh, false},
		{"medium", QualityMedium, false},
		{"low", QualityLow, false},
		{"", "", true},
		{"High", "", true},
		{"excellent", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQuality(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMetricType(t *testing.T) {
	tests := []struct {
		input     string
		want      MetricType
		wantError bool
	}{
		{"actual", MetricActual, false},
		{"forecast", MetricForecast, false},
		{"estimate", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMetricType(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetricPoint_JSONRoundTrip_PreservesNulls(t *testing.T) {
	revenue := 100.5
	pt := MetricPoint{
		Year:    2023,
		Revenue: &revenue,
		// EBITDA, Margin, Debt deliberately nil: not disclosed
		Type: MetricActual,
	}

	data, err := json.Marshal(pt)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ebitda":null`)

	var decoded MetricPoint
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.NotNil(t, decoded.Revenue)
	assert.Equal(t, 100.5, *decoded.Revenue)
	assert.Nil(t, decoded.EBITDA, "absent stays absent, not zero")
	assert.Nil(t, decoded.Margin)
	assert.Nil(t, decoded.Debt)
}

func TestMetricPoint_ZeroIsNotNull(t *testing.T) {
	zero := 0.0
	pt := MetricPoint{Year: 2022, Debt: &zero, Type: MetricActual}

	data, err := json.Marshal(pt)
	require.NoError(t, err)

	var decoded MetricPoint
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.NotNil(t, decoded.Debt, "zero is a disclosed value")
	assert.Equal(t, 0.0, *decoded.Debt)
}

func TestScalarFact_JSONShape(t *testing.T) {
	fact := ScalarFact{
		Provenance: Provenance{Pages: []int{0, 4}, Quality: QualityHigh},
		Value:      "Acme Corp",
	}

	data, err := json.Marshal(fact)
	require.NoError(t, err)

	// Provenance fields are inlined, not nested under an embedded key.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "pages")
	assert.Contains(t, raw, "quality")
	assert.Contains(t, raw, "value")
}

func validBase() CompanyBase {
	fact := func(v string) ScalarFact {
		return ScalarFact{Provenance: Provenance{Pages: []int{0}, Quality: QualityHigh}, Value: v}
	}
	revenue := 120.0
	return CompanyBase{
		Name:          fact("Acme Corp"),
		Description:   fact("Makes everything"),
		Strategy:      fact("Grow"),
		BusinessModel: fact("Sells products"),
		Market:        fact("Global"),
		Clients:       fact("Everyone"),
		Products:      fact("Anvils"),
		TopManagement: TopManagement{
			Employees: []Employee{{Name: "Jo Smith", Role: "CEO", Description: "Founder"}},
			Pages:     []int{2},
		},
		Financials: FinancialData{
			Provenance: Provenance{Pages: []int{10}, Quality: QualityMedium},
			Points:     []MetricPoint{{Year: 2024, Revenue: &revenue, Type: MetricForecast}},
			Currency:   "EUR m",
		},
	}
}

func TestCompanyBase_Validate(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		base := validBase()
		assert.NoError(t, base.Validate())
	})

	t.Run("invalid quality grade", func(t *testing.T) {
		base := validBase()
		base.Market.Quality = "superb"
		err := base.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "market")
	})

	t.Run("negative page index", func(t *testing.T) {
		base := validBase()
		base.Description.Pages = []int{3, -1}
		assert.Error(t, base.Validate())
	})

	t.Run("invalid metric type", func(t *testing.T) {
		base := validBase()
		base.Financials.Points[0].Type = "estimate"
		assert.Error(t, base.Validate())
	})

	t.Run("missing currency", func(t *testing.T) {
		base := validBase()
		base.Financials.Currency = ""
		assert.Error(t, base.Validate())
	})

	t.Run("empty pages are allowed", func(t *testing.T) {
		base := validBase()
		base.Strategy.Pages = nil
		assert.NoError(t, base.Validate())
	})
}

func TestCompany_DisplayName(t *testing.T) {
	c := Company{ID: "abc123", CompanyBase: validBase()}
	assert.Equal(t, "Acme Corp", c.DisplayName())
}

func TestCompany_JSONRoundTrip(t *testing.T) {
	original := Company{ID: "deadbeef", CompanyBase: validBase()}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Company
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
