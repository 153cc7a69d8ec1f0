package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/db"
)

// JobRequirementRequest creates or replaces a job requirement profile.
type JobRequirementRequest struct {
	Title                 string   `json:"title"`
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	MinExperience         float64  `json:"min_experience"`
	EducationRequirements string   `json:"education_requirements"`
}

func (req *JobRequirementRequest) toRow() *db.JobRequirement {
	return &db.JobRequirement{
		Title:                 req.Title,
		RequiredSkills:        req.RequiredSkills,
		PreferredSkills:       req.PreferredSkills,
		MinExperience:         req.MinExperience,
		EducationRequirements: req.EducationRequirements,
	}
}

func (s *Server) handleListJobRequirements(w http.ResponseWriter, r *http.Request) {
	reqs, err := s.store.ListJobRequirements(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if reqs == nil {
		reqs = []db.JobRequirement{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"job_requirements": reqs})
}

func (s *Server) handleCreateJobRequirement(w http.ResponseWriter, r *http.Request) {
	var req JobRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	row := req.toRow()
	profile := row.Profile()
	if err := profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job requirement: "+err.Error())
		return
	}

	created, err := s.store.CreateJobRequirement(r.Context(), row)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateJobRequirement(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job requirement ID")
		return
	}

	var req JobRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	row := req.toRow()
	profile := row.Profile()
	if err := profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job requirement: "+err.Error())
		return
	}

	found, err := s.store.UpdateJobRequirement(r.Context(), id, row)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Job requirement not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteJobRequirement(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job requirement ID")
		return
	}

	found, err := s.store.DeleteJobRequirement(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Job requirement not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
