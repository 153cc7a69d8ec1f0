package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/email"
	"github.com/jonathan/resume-screener/internal/types"
)

// OutreachRequest selects the candidates to invite and how to address them.
type OutreachRequest struct {
	NumCandidates int                   `json:"num_candidates"`
	MinScore      float64               `json:"min_score"`
	EmailSettings OutreachEmailSettings `json:"email_settings"`
}

// OutreachEmailSettings customizes the invitation content.
type OutreachEmailSettings struct {
	CompanyName   string `json:"company_name"`
	CustomMessage string `json:"custom_message"`
	IncludeScore  bool   `json:"include_score"`
}

// OutreachResponse reports delivery counts. FailedEmails holds at most
// five addresses for debugging.
type OutreachResponse struct {
	Message      string   `json:"message"`
	SentCount    int      `json:"sent_count"`
	FailedCount  int      `json:"failed_count"`
	FailedEmails []string `json:"failed_emails,omitempty"`
}

const maxReportedFailures = 5

// handleOutreach sends interview invitations to the highest-scoring
// candidates that have not been emailed yet. Candidates carrying the
// placeholder email are counted as failures without a send attempt.
func (s *Server) handleOutreach(w http.ResponseWriter, r *http.Request) {
	if s.mailer == nil {
		s.errorResponse(w, http.StatusBadRequest, "Email not configured. Set the SMTP_* environment variables.")
		return
	}

	req := OutreachRequest{NumCandidates: 10, MinScore: 0.5}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	if req.NumCandidates < 1 {
		s.errorResponse(w, http.StatusBadRequest, "num_candidates must be positive")
		return
	}
	if req.MinScore < 0 || req.MinScore > 1 {
		s.errorResponse(w, http.StatusBadRequest, "min_score must be between 0 and 1")
		return
	}

	company := req.EmailSettings.CompanyName
	if company == "" {
		company = s.companyName
	}

	candidates, err := s.store.TopCandidatesForOutreach(r.Context(), req.MinScore, req.NumCandidates)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	sent, failed := 0, 0
	var failedEmails []string
	for _, c := range candidates {
		if c.Email == "" || c.Email == types.DefaultEmail {
			failed++
			s.logger.Warn("skipping candidate without usable email", zap.String("id", c.ID.String()))
			continue
		}

		err := s.mailer.SendInvitation(email.Invitation{
			To:            c.Email,
			CandidateName: c.Name,
			CompanyName:   company,
			CustomMessage: req.EmailSettings.CustomMessage,
			IncludeScore:  req.EmailSettings.IncludeScore,
			Score:         c.Score,
		})
		if err != nil {
			failed++
			if len(failedEmails) < maxReportedFailures {
				failedEmails = append(failedEmails, c.Email)
			}
			continue
		}

		if err := s.store.MarkEmailSent(r.Context(), c.ID); err != nil {
			s.logger.Error("failed to record sent email",
				zap.String("id", c.ID.String()),
				zap.Error(err))
		}
		sent++
	}

	s.jsonResponse(w, http.StatusOK, OutreachResponse{
		Message:      fmt.Sprintf("Successfully sent %d emails, %d failed", sent, failed),
		SentCount:    sent,
		FailedCount:  failed,
		FailedEmails: failedEmails,
	})
}
