package db

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS job_requirements (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	title TEXT NOT NULL,
	required_skills JSONB NOT NULL DEFAULT '[]',
	preferred_skills JSONB NOT NULL DEFAULT '[]',
	min_experience DOUBLE PRECISION NOT NULL DEFAULT 0,
	education_requirements TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS candidates (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	filename TEXT NOT NULL,
	resume_text TEXT NOT NULL DEFAULT '',
	skills JSONB NOT NULL DEFAULT '[]',
	experience_years DOUBLE PRECISION NOT NULL DEFAULT 0,
	score DOUBLE PRECISION NOT NULL DEFAULT 0,
	status TEXT NOT NULL DEFAULT 'pending',
	screening_date TIMESTAMPTZ,
	email_sent BOOLEAN NOT NULL DEFAULT FALSE,
	email_sent_date TIMESTAMPTZ,
	job_requirement_id UUID REFERENCES job_requirements(id) ON DELETE SET NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_candidates_score ON candidates (score DESC);
CREATE INDEX IF NOT EXISTS idx_candidates_status ON candidates (status);
CREATE INDEX IF NOT EXISTS idx_candidates_job_requirement ON candidates (job_requirement_id);
`

// InitSchema creates the tables and indexes if they do not exist.
func (db *DB) InitSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// EnsureDefaultJobRequirement seeds a starter job requirement when the table
// is empty, so batch uploads have something to screen against out of the box.
func (db *DB) EnsureDefaultJobRequirement(ctx context.Context) (*JobRequirement, error) {
	existing, err := db.ListJobRequirements(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return &existing[0], nil
	}

	return db.CreateJobRequirement(ctx, &JobRequirement{
		Title:                 "Software Developer",
		RequiredSkills:        []string{"python", "javascript", "sql"},
		PreferredSkills:       []string{"react", "node.js", "aws"},
		MinExperience:         2.0,
		EducationRequirements: "Bachelor's degree in Computer Science or related field",
	})
}
