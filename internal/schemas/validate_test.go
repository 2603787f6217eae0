package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validDocument returns a conforming CompanyBase response as a mutable map.
func validDocument() map[string]any {
	fact := func(v string) map[string]any {
		return map[string]any{
			"pages":   []any{0, 3},
			"quality": "high",
			"value":   v,
		}
	}
	return map[string]any{
		"name":           fact("Acme Corp"),
		"description":    fact("Makes everything"),
		"strategy":       fact("Grow"),
		"business_model": fact("Sells products"),
		"market":         fact("Global"),
		"clients":        fact("Everyone"),
		"products":       fact("Anvils"),
		"top_management": map[string]any{
			"employees": []any{
				map[string]any{"name": "Jo Smith", "role": "CEO", "description": "Founder"},
			},
			"pages": []any{2},
		},
		"financials": map[string]any{
			"pages":    []any{10},
			"quality":  "medium",
			"currency": "EUR m",
			"data": []any{
				map[string]any{"year": 2023, "revenue": 100.0, "ebitda": nil, "margin": nil, "debt": nil, "type": "actual"},
				map[string]any{"year": 2024, "revenue": 120.0, "type": "forecast"},
			},
		},
	}
}

func marshal(t *testing.T, doc map[string]any) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

func TestCompanyBaseSchema_IsValidJSON(t *testing.T) {
	var v any
	assert.NoError(t, json.Unmarshal([]byte(CompanyBaseSchema), &v))
}

func TestValidateCompanyBase_ValidDocument(t *testing.T) {
	err := ValidateCompanyBase(marshal(t, validDocument()))
	assert.NoError(t, err)
}

func TestValidateCompanyBase_MissingQuality(t *testing.T) {
	doc := validDocument()
	name := doc["name"].(map[string]any)
	delete(name, "quality")

	err := ValidateCompanyBase(marshal(t, doc))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateCompanyBase_QualityOutsideEnum(t *testing.T) {
	doc := validDocument()
	doc["description"].(map[string]any)["quality"] = "excellent"

	err := ValidateCompanyBase(marshal(t, doc))
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestValidateCompanyBase_MetricTypeOutsideEnum(t *testing.T) {
	doc := validDocument()
	financials := doc["financials"].(map[string]any)
	financials["data"] = []any{
		map[string]any{"year": 2023, "type": "estimate"},
	}

	err := ValidateCompanyBase(marshal(t, doc))
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestValidateCompanyBase_NonNumericRevenue(t *testing.T) {
	doc := validDocument()
	financials := doc["financials"].(map[string]any)
	financials["data"] = []any{
		map[string]any{"year": 2023, "revenue": "a lot", "type": "actual"},
	}

	err := ValidateCompanyBase(marshal(t, doc))
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestValidateCompanyBase_MissingRequiredSection(t *testing.T) {
	doc := validDocument()
	delete(doc, "financials")

	err := ValidateCompanyBase(marshal(t, doc))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	found := false
	for _, fe := range validationErr.Errors {
		if fe.Field == "(root)" {
			found = true
		}
	}
	assert.True(t, found, "missing section should be reported at the root")
}

func TestValidateCompanyBase_NegativePageIndex(t *testing.T) {
	doc := validDocument()
	doc["market"].(map[string]any)["pages"] = []any{-1}

	err := ValidateCompanyBase(marshal(t, doc))
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestValidateCompanyBase_NullOptionalMetricsAreValid(t *testing.T) {
	doc := validDocument()
	financials := doc["financials"].(map[string]any)
	financials["data"] = []any{
		map[string]any{"year": 2022, "revenue": nil, "ebitda": nil, "margin": nil, "debt": nil, "type": "actual"},
	}

	assert.NoError(t, ValidateCompanyBase(marshal(t, doc)))
}

func TestValidateCompanyBase_MalformedJSON(t *testing.T) {
	err := ValidateCompanyBase("{ not json }")
	require.Error(t, err)
	assert.IsType(t, &SchemaLoadError{}, err)
}

func TestValidationError_ErrorListsFields(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "name.quality", Message: "is required"},
		{Field: "financials.currency", Message: "is required"},
	}}
	msg := ve.Error()
	assert.Contains(t, msg, "name.quality")
	assert.Contains(t, msg, "financials.currency")
}
