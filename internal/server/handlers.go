package server

import (
	"io"
	"net/http"

	"github.com/feldges/data-extractor/internal/store"
)

// SubmitResponse is the response for POST /companies.
type SubmitResponse struct {
	CompanyID string `json:"company_id"`
	Status    string `json:"status"`
}

// handleSubmit accepts a multipart PDF upload, creates an extraction job and
// returns its identifier immediately. The extraction itself runs in the
// background; callers poll the status endpoint.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "A 'file' upload is required")
		return
	}
	defer file.Close()

	pdf, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	id, err := s.manager.Submit(r.Context(), pdf)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	s.jsonResponse(w, http.StatusAccepted, SubmitResponse{
		CompanyID: id,
		Status:    "running",
	})
}

// handleStatus reports the lifecycle state of an extraction job.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	status, err := s.manager.Status(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, status)
}

// handleGetCompany returns the full snapshot for a completed extraction.
func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	c, err := s.snapshots.Load(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, c)
}

// handleListCompanies lists every persisted company as (name, id) pairs.
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	entries, err := s.snapshots.List(r.Context())
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	if entries == nil {
		entries = []store.Entry{} // keep the JSON an array, not null
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"companies": entries})
}
