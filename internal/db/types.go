package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// Candidate lifecycle states.
const (
	StatusPending  = "pending"
	StatusScreened = "screened"
	StatusSelected = "selected"
	StatusRejected = "rejected"
)

// Candidate is one screened resume stored as a candidate record.
type Candidate struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Filename         string     `json:"filename"`
	ResumeText       string     `json:"resume_text,omitempty"`
	Skills           []string   `json:"skills"`
	ExperienceYears  float64    `json:"experience_years"`
	Score            float64    `json:"score"`
	Status           string     `json:"status"`
	ScreeningDate    *time.Time `json:"screening_date,omitempty"`
	EmailSent        bool       `json:"email_sent"`
	EmailSentDate    *time.Time `json:"email_sent_date,omitempty"`
	JobRequirementID *uuid.UUID `json:"job_requirement_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// JobRequirement is a stored job requirement profile.
type JobRequirement struct {
	ID                    uuid.UUID `json:"id"`
	Title                 string    `json:"title"`
	RequiredSkills        []string  `json:"required_skills"`
	PreferredSkills       []string  `json:"preferred_skills"`
	MinExperience         float64   `json:"min_experience"`
	EducationRequirements string    `json:"education_requirements"`
	CreatedAt             time.Time `json:"created_at"`
}

// Profile converts the stored row into the value the screening core reads.
func (r *JobRequirement) Profile() types.JobRequirementProfile {
	return types.JobRequirementProfile{
		Title:                 r.Title,
		RequiredSkills:        r.RequiredSkills,
		PreferredSkills:       r.PreferredSkills,
		MinExperience:         r.MinExperience,
		EducationRequirements: r.EducationRequirements,
	}
}

// CandidateFilter narrows ListCandidates. Zero values mean "no constraint".
type CandidateFilter struct {
	Status           string
	MinScore         float64
	JobRequirementID *uuid.UUID
	Search           string
	Page             int
	PerPage          int
}

// CandidateUpdate carries the mutable candidate fields; nil means unchanged.
type CandidateUpdate struct {
	Status *string
	Score  *float64
}

// JobRole is a distinct role candidates were screened against, with a count.
type JobRole struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	CandidateCount int       `json:"candidate_count"`
}

// Statistics summarizes screening activity.
type Statistics struct {
	TotalCandidates    int     `json:"total_candidates"`
	ScreenedCandidates int     `json:"screened_candidates"`
	SelectedCandidates int     `json:"selected_candidates"`
	EmailsSent         int     `json:"emails_sent"`
	AverageScore       float64 `json:"average_score"`
}
