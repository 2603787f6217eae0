// Package company defines the data model for extracted company snapshots.
// Every leaf fact carries provenance (source pages) and a confidence grade
// assigned by the extraction step.
package company

import "fmt"

// Quality is the three-level extraction-confidence grade attached to a fact.
type Quality string

// Quality grades, from most to least reliable.
const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
	QualityLow    Quality = "low"
)

// Valid reports whether q is one of the defined grades.
func (q Quality) Valid() bool {
	switch q {
	case QualityHigh, QualityMedium, QualityLow:
		return true
	}
	return false
}

// ParseQuality parses a quality grade, rejecting anything outside the enum.
func ParseQuality(s string) (Quality, error) {
	q := Quality(s)
	if !q.Valid() {
		return "", fmt.Errorf("invalid quality grade: %q", s)
	}
	return q, nil
}

// MetricType distinguishes historical financial figures from forecasts.
type MetricType string

// Metric point types.
const (
	MetricActual   MetricType = "actual"
	MetricForecast MetricType = "forecast"
)

// Valid reports whether t is one of the defined types.
func (t MetricType) Valid() bool {
	return t == MetricActual || t == MetricForecast
}

// ParseMetricType parses a metric type, rejecting anything outside the enum.
func ParseMetricType(s string) (MetricType, error) {
	t := MetricType(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid metric type: %q", s)
	}
	return t, nil
}

// Provenance is the shape shared by every graded fact: the 0-based PDF page
// indices the fact was found on, and the confidence grade. Pages may be empty
// when a fact was inferred without a locatable source; the grade is always set.
type Provenance struct {
	Pages   []int   `json:"pages"`
	Quality Quality `json:"quality"`
}

// ScalarFact is a single free-text fact with provenance, used for the
// company's name, description, strategy, business model, market, clients
// and products.
type ScalarFact struct {
	Provenance
	Value string `json:"value"`
}

// Employee is one member of the management roster. It is a structural record,
// not a graded extraction; provenance lives on the roster as a whole.
type Employee struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

// TopManagement is the executive roster with shared provenance pages.
type TopManagement struct {
	Employees []Employee `json:"employees"`
	Pages     []int      `json:"pages"`
}

// MetricPoint holds the financial figures reported for one year. Each metric
// is a pointer so that "not disclosed" survives serialization as null,
// distinct from zero.
type MetricPoint struct {
	Year    int        `json:"year"`
	Revenue *float64   `json:"revenue"`
	EBITDA  *float64   `json:"ebitda"`
	Margin  *float64   `json:"margin"`
	Debt    *float64   `json:"debt"`
	Type    MetricType `json:"type"`
}

// FinancialData is the time series of actual and forecast figures, together
// with the currency all values are denominated in. The currency is an ISO
// code optionally suffixed with a magnitude unit ("EUR m", "USD k").
type FinancialData struct {
	Provenance
	Points   []MetricPoint `json:"data"`
	Currency string        `json:"currency"`
}

// CompanyBase is the company record without its identifier. This is the exact
// shape demanded of the extraction model; the identifier is assigned by the
// job lifecycle, never by the model.
type CompanyBase struct {
	Name          ScalarFact    `json:"name"`
	Description   ScalarFact    `json:"description"`
	Strategy      ScalarFact    `json:"strategy"`
	BusinessModel ScalarFact    `json:"business_model"`
	Market        ScalarFact    `json:"market"`
	Clients       ScalarFact    `json:"clients"`
	Products      ScalarFact    `json:"products"`
	TopManagement TopManagement `json:"top_management"`
	Financials    FinancialData `json:"financials"`
}

// Company is the aggregate root: an opaque globally-unique identifier plus
// the extracted record. Once persisted it is immutable; a re-extraction mints
// a new identifier and a new record.
type Company struct {
	ID string `json:"id"`
	CompanyBase
}

// DisplayName returns the extracted company name for listings.
func (c *Company) DisplayName() string {
	return c.Name.Value
}
