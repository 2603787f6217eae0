// Package extract implements the extraction engine: it drives the model
// call, validates the response against the company schema and persists the
// resulting snapshot.
package extract

import (
	"errors"
	"fmt"
)

// Error kinds, surfaced through job status so an observer can tell why an
// extraction failed.
const (
	KindInvalidDocument = "invalid_document"
	KindTransport       = "transport_failure"
	KindSchemaViolation = "schema_violation"
)

// InvalidDocumentError indicates the input is not a readable PDF. It is
// detected before any external call.
type InvalidDocumentError struct {
	Reason string
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid document: %s", e.Reason)
}

// TransportError indicates the extraction capability was unreachable or
// returned an error.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("extraction transport failure: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// SchemaViolationError indicates the capability responded but its output
// could not be validated against the company schema.
type SchemaViolationError struct {
	Cause error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("extraction output violates schema: %v", e.Cause)
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Cause
}

// ErrorKind classifies an extraction error into one of the kind constants.
// Returns the empty string for errors outside the taxonomy.
func ErrorKind(err error) string {
	var invalid *InvalidDocumentError
	if errors.As(err, &invalid) {
		return KindInvalidDocument
	}
	var transport *TransportError
	if errors.As(err, &transport) {
		return KindTransport
	}
	var schema *SchemaViolationError
	if errors.As(err, &schema) {
		return KindSchemaViolation
	}
	return ""
}
