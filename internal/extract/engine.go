package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/feldges/data-extractor/internal/company"
	"github.com/feldges/data-extractor/internal/llm"
	"github.com/feldges/data-extractor/internal/schemas"
	"github.com/feldges/data-extractor/internal/store"
)

// pdfMagic is the header every readable PDF starts with.
var pdfMagic = []byte("%PDF-")

// IsPDF reports whether data looks like a PDF byte stream.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfMagic)
}

// Engine turns a stored document into a persisted company snapshot. The
// model client is injected so tests can substitute a stub. The engine itself
// never retries; retry policy belongs to the caller.
type Engine struct {
	client llm.Client
	store  store.Store
	docs   *store.DocumentStore
}

// NewEngine creates an extraction engine.
func NewEngine(client llm.Client, snapshots store.Store, docs *store.DocumentStore) *Engine {
	return &Engine{
		client: client,
		store:  snapshots,
		docs:   docs,
	}
}

// Extract runs one end-to-end extraction for the document stored under
// companyID and persists the result under the same identifier. The
// identifier is supplied by the job lifecycle, never generated here.
func (e *Engine) Extract(ctx context.Context, companyID string) error {
	pdf, err := e.docs.Read(companyID)
	if err != nil {
		return &InvalidDocumentError{Reason: err.Error()}
	}
	if !IsPDF(pdf) {
		return &InvalidDocumentError{Reason: "not a PDF byte stream"}
	}

	raw, err := e.client.ExtractDocument(ctx, pdf)
	if err != nil {
		return &TransportError{Cause: err}
	}

	base, err := ParseCompanyBase(raw)
	if err != nil {
		return err
	}

	c := &company.Company{ID: companyID, CompanyBase: *base}
	if err := e.store.Save(ctx, c); err != nil {
		return fmt.Errorf("failed to persist snapshot %s: %w", companyID, err)
	}

	log.Printf("Extraction complete for %s (%s)", companyID, c.DisplayName())
	return nil
}

// ParseCompanyBase validates raw model output against the company schema and
// decodes it. Anything that does not conform is a *SchemaViolationError;
// nothing is coerced.
func ParseCompanyBase(raw string) (*company.CompanyBase, error) {
	if err := schemas.ValidateCompanyBase(raw); err != nil {
		return nil, &SchemaViolationError{Cause: err}
	}

	var base company.CompanyBase
	if err := json.Unmarshal([]byte(raw), &base); err != nil {
		return nil, &SchemaViolationError{Cause: err}
	}

	// The JSON Schema and the struct enums overlap; the structural check
	// still runs so a schema drift cannot let a bad enum through.
	if err := base.Validate(); err != nil {
		return nil, &SchemaViolationError{Cause: err}
	}

	return &base, nil
}
