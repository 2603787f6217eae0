package server

import (
	"errors"
	"net/http"

	"github.com/feldges/data-extractor/internal/extract"
	"github.com/feldges/data-extractor/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	var invalid *extract.InvalidDocumentError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	var schema *extract.SchemaViolationError
	if errors.As(err, &schema) {
		return http.StatusBadGateway
	}
	var transport *extract.TransportError
	if errors.As(err, &transport) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// errorFromErr maps a domain error onto an HTTP error response.
func (s *Server) errorFromErr(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
