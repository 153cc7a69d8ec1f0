package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/db"
)

// CandidateListResponse is a page of candidates.
type CandidateListResponse struct {
	Candidates []db.Candidate `json:"candidates"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := db.CandidateFilter{
		Status:  q.Get("status"),
		Search:  q.Get("search"),
		Page:    1,
		PerPage: 50,
	}

	if v := q.Get("min_score"); v != "" {
		score, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid min_score")
			return
		}
		filter.MinScore = score
	}
	if v := q.Get("job_requirement_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid job_requirement_id")
			return
		}
		filter.JobRequirementID = &id
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid page")
			return
		}
		filter.Page = page
	}
	if v := q.Get("per_page"); v != "" {
		perPage, err := strconv.Atoi(v)
		if err != nil || perPage < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid per_page")
			return
		}
		filter.PerPage = perPage
	}

	candidates, total, err := s.store.ListCandidates(r.Context(), filter)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidates == nil {
		candidates = []db.Candidate{}
	}

	s.jsonResponse(w, http.StatusOK, CandidateListResponse{
		Candidates: candidates,
		Total:      total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	})
}

// CandidateUpdateRequest carries the mutable candidate fields.
type CandidateUpdateRequest struct {
	Status *string  `json:"status"`
	Score  *float64 `json:"score"`
}

var validStatuses = map[string]bool{
	db.StatusPending:  true,
	db.StatusScreened: true,
	db.StatusSelected: true,
	db.StatusRejected: true,
}

func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var req CandidateUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status == nil && req.Score == nil {
		s.errorResponse(w, http.StatusBadRequest, "No fields to update")
		return
	}
	if req.Status != nil && !validStatuses[*req.Status] {
		s.errorResponse(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if req.Score != nil && (*req.Score < 0 || *req.Score > 1) {
		s.errorResponse(w, http.StatusBadRequest, "Score must be between 0 and 1")
		return
	}

	found, err := s.store.UpdateCandidate(r.Context(), id, db.CandidateUpdate{
		Status: req.Status,
		Score:  req.Score,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	found, err := s.store.DeleteCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleCandidateJobRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := s.store.CandidateJobRoles(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if roles == nil {
		roles = []db.JobRole{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"job_roles": roles})
}
