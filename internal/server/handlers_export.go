package server

import (
	"net/http"

	"github.com/feldges/data-extractor/internal/export"
)

// handleCopyField returns the plain-text copy payload for one field of a
// company record. The financials field yields the tab-separated table.
func (s *Server) handleCopyField(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	field, err := export.ParseField(r.PathValue("field"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := s.snapshots.Load(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	text, err := export.CopyText(c, field)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		return
	}
}

// handleFinancialsTSV returns the year-indexed financial table as a
// tab-separated block, pasteable into spreadsheet software.
func (s *Server) handleFinancialsTSV(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	c, err := s.snapshots.Load(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.FinancialsTSV(c.Financials)))
}

// handleFinancialsXLSX returns the financial table as an XLSX workbook.
func (s *Server) handleFinancialsXLSX(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	c, err := s.snapshots.Load(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	data, err := export.FinancialsXLSX(c.Financials)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build workbook: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+id+`_financials.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
