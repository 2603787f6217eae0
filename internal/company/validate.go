package company

import "fmt"

// checkProvenance rejects out-of-enum grades and negative page indices.
func checkProvenance(field string, p Provenance) error {
	if !p.Quality.Valid() {
		return fmt.Errorf("%s: invalid quality grade: %q", field, p.Quality)
	}
	for _, page := range p.Pages {
		if page < 0 {
			return fmt.Errorf("%s: negative page index: %d", field, page)
		}
	}
	return nil
}

// Validate checks the structural invariants of an extracted record: every
// quality grade and metric type is inside its enum, and page indices are
// non-negative. It does not judge content; an empty value with a "low" grade
// is a valid extraction result.
func (b *CompanyBase) Validate() error {
	scalars := []struct {
		name string
		fact ScalarFact
	}{
		{"name", b.Name},
		{"description", b.Description},
		{"strategy", b.Strategy},
		{"business_model", b.BusinessModel},
		{"market", b.Market},
		{"clients", b.Clients},
		{"products", b.Products},
	}
	for _, s := range scalars {
		if err := checkProvenance(s.name, s.fact.Provenance); err != nil {
			return err
		}
	}

	for _, page := range b.TopManagement.Pages {
		if page < 0 {
			return fmt.Errorf("top_management: negative page index: %d", page)
		}
	}

	if err := checkProvenance("financials", b.Financials.Provenance); err != nil {
		return err
	}
	if b.Financials.Currency == "" {
		return fmt.Errorf("financials: currency is required")
	}
	for i, pt := range b.Financials.Points {
		if !pt.Type.Valid() {
			return fmt.Errorf("financials.data[%d]: invalid metric type: %q", i, pt.Type)
		}
	}

	return nil
}
