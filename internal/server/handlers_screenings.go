package server

import (
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxUploadBytes bounds the whole multipart request.
const maxUploadBytes = 16 << 20

// ScreeningFailure reports one file that could not be processed.
type ScreeningFailure struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// ScreeningResponse summarizes a batch upload.
type ScreeningResponse struct {
	Message       string             `json:"message"`
	UploadedCount int                `json:"uploaded_count"`
	Failed        []ScreeningFailure `json:"failed"`
}

// handleCreateScreening accepts a multipart batch of resumes under the
// "files" field, screens each against a job requirement and persists the
// screened candidates. Per-file failures do not fail the batch.
func (s *Server) handleCreateScreening(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No files provided")
		return
	}

	req, err := s.resolveJobRequirement(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if req == nil {
		s.errorResponse(w, http.StatusInternalServerError, "No job requirement available")
		return
	}
	profile := req.Profile()

	var items []screening.BatchItem
	var failures []ScreeningFailure
	for _, fh := range files {
		if fh.Filename == "" {
			continue
		}
		if types.FormatFromFilename(fh.Filename) == types.FormatUnknown {
			failures = append(failures, ScreeningFailure{
				Filename: fh.Filename,
				Reason:   "Unsupported file type. Allowed: PDF, DOCX",
			})
			continue
		}

		f, err := fh.Open()
		if err != nil {
			failures = append(failures, ScreeningFailure{Filename: fh.Filename, Reason: "Failed to read file"})
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			failures = append(failures, ScreeningFailure{Filename: fh.Filename, Reason: "Failed to read file"})
			continue
		}
		items = append(items, screening.BatchItem{Filename: fh.Filename, Data: data})
	}

	results := s.pipeline.RunBatch(r.Context(), items, profile, screening.DefaultBatchWorkers)

	uploaded := 0
	now := time.Now().UTC()
	for _, res := range results {
		if res.Err != nil {
			failures = append(failures, ScreeningFailure{
				Filename: res.Filename,
				Reason:   "Failed to extract text from file",
			})
			continue
		}

		candidate := &db.Candidate{
			Name:             res.Result.Contact.Name,
			Email:            res.Result.Contact.Email,
			Phone:            res.Result.Contact.Phone,
			Filename:         res.Filename,
			ResumeText:       res.ResumeText,
			Skills:           res.Result.Skills,
			ExperienceYears:  res.Result.ExperienceYears,
			Score:            res.Result.Score,
			Status:           db.StatusScreened,
			ScreeningDate:    &now,
			JobRequirementID: &req.ID,
		}
		if _, err := s.store.SaveCandidate(r.Context(), candidate); err != nil {
			s.logger.Error("failed to save candidate",
				zap.String("filename", res.Filename),
				zap.Error(err))
			failures = append(failures, ScreeningFailure{Filename: res.Filename, Reason: "Database error"})
			continue
		}
		uploaded++
	}

	if failures == nil {
		failures = []ScreeningFailure{}
	}
	s.jsonResponse(w, http.StatusOK, ScreeningResponse{
		Message:       "Screening completed",
		UploadedCount: uploaded,
		Failed:        failures,
	})
}

// resolveJobRequirement reads the optional job_requirement_id form field.
// Without one, the seeded default profile is used.
func (s *Server) resolveJobRequirement(r *http.Request) (*db.JobRequirement, error) {
	idStr := r.FormValue("job_requirement_id")
	if idStr == "" {
		return s.store.EnsureDefaultJobRequirement(r.Context())
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, &ErrValidation{Field: "job_requirement_id", Message: "must be a UUID"}
	}
	req, err := s.store.GetJobRequirement(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, &ErrValidation{Field: "job_requirement_id", Message: "unknown job requirement"}
	}
	return req, nil
}
