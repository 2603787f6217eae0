package export

import (
	"fmt"

	"github.com/feldges/data-extractor/internal/company"
)

// Field selects one copyable section of a company record. The closed enum
// replaces name-based attribute lookup: every field maps to an explicit
// accessor, checked exhaustively at compile time.
type Field string

// Copyable fields.
const (
	FieldName          Field = "name"
	FieldDescription   Field = "description"
	FieldStrategy      Field = "strategy"
	FieldBusinessModel Field = "business_model"
	FieldMarket        Field = "market"
	FieldClients       Field = "clients"
	FieldProducts      Field = "products"
	FieldFinancials    Field = "financials"
)

// Fields returns every copyable field.
func Fields() []Field {
	return []Field{
		FieldName, FieldDescription, FieldStrategy, FieldBusinessModel,
		FieldMarket, FieldClients, FieldProducts, FieldFinancials,
	}
}

// ParseField parses a field selector, rejecting anything outside the enum.
func ParseField(s string) (Field, error) {
	f := Field(s)
	switch f {
	case FieldName, FieldDescription, FieldStrategy, FieldBusinessModel,
		FieldMarket, FieldClients, FieldProducts, FieldFinancials:
		return f, nil
	}
	return "", fmt.Errorf("unknown field: %q", s)
}

// CopyText returns the clipboard text for one field of a company record.
// Scalar facts copy their value; financials copy the tab-separated table.
func CopyText(c *company.Company, field Field) (string, error) {
	switch field {
	case FieldName:
		return c.Name.Value, nil
	case FieldDescription:
		return c.Description.Value, nil
	case FieldStrategy:
		return c.Strategy.Value, nil
	case FieldBusinessModel:
		return c.BusinessModel.Value, nil
	case FieldMarket:
		return c.Market.Value, nil
	case FieldClients:
		return c.Clients.Value, nil
	case FieldProducts:
		return c.Products.Value, nil
	case FieldFinancials:
		return FinancialsTSV(c.Financials), nil
	}
	return "", fmt.Errorf("unknown field: %q", field)
}
