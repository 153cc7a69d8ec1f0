package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobRequirementProfile describes the role candidates are screened against.
// It is supplied by the requirements store; the screening core only reads it.
type JobRequirementProfile struct {
	Title                 string   `json:"title" validate:"required,min=1"`
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	MinExperience         float64  `json:"min_experience" validate:"gte=0"`
	EducationRequirements string   `json:"education_requirements"`
}

// QueryString flattens the profile into the single text the similarity
// scorer compares resumes against: title, required skills, preferred skills,
// space-joined.
func (p *JobRequirementProfile) QueryString() string {
	parts := []string{p.Title}
	parts = append(parts, p.RequiredSkills...)
	parts = append(parts, p.PreferredSkills...)
	return strings.Join(parts, " ")
}

// Validate validates the JobRequirementProfile using the validator.
func (p *JobRequirementProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
