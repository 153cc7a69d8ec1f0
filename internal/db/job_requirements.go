package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateJobRequirement inserts a job requirement and returns the stored row.
func (db *DB) CreateJobRequirement(ctx context.Context, req *JobRequirement) (*JobRequirement, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO job_requirements (title, required_skills, preferred_skills, min_experience, education_requirements)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		req.Title, req.RequiredSkills, req.PreferredSkills, req.MinExperience, req.EducationRequirements,
	)

	stored := *req
	if err := row.Scan(&stored.ID, &stored.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create job requirement: %w", err)
	}
	return &stored, nil
}

// GetJobRequirement fetches one job requirement by ID. Returns nil when the
// row does not exist.
func (db *DB) GetJobRequirement(ctx context.Context, id uuid.UUID) (*JobRequirement, error) {
	var req JobRequirement
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, required_skills, preferred_skills, min_experience, education_requirements, created_at
		 FROM job_requirements WHERE id = $1`, id,
	).Scan(&req.ID, &req.Title, &req.RequiredSkills, &req.PreferredSkills,
		&req.MinExperience, &req.EducationRequirements, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job requirement: %w", err)
	}
	return &req, nil
}

// ListJobRequirements returns all job requirements, oldest first.
func (db *DB) ListJobRequirements(ctx context.Context) ([]JobRequirement, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, required_skills, preferred_skills, min_experience, education_requirements, created_at
		 FROM job_requirements ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job requirements: %w", err)
	}
	defer rows.Close()

	var reqs []JobRequirement
	for rows.Next() {
		var req JobRequirement
		if err := rows.Scan(&req.ID, &req.Title, &req.RequiredSkills, &req.PreferredSkills,
			&req.MinExperience, &req.EducationRequirements, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job requirement: %w", err)
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// UpdateJobRequirement replaces the mutable fields of a job requirement.
// Returns false when the row does not exist.
func (db *DB) UpdateJobRequirement(ctx context.Context, id uuid.UUID, req *JobRequirement) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE job_requirements
		 SET title = $1, required_skills = $2, preferred_skills = $3, min_experience = $4, education_requirements = $5
		 WHERE id = $6`,
		req.Title, req.RequiredSkills, req.PreferredSkills, req.MinExperience, req.EducationRequirements, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update job requirement: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteJobRequirement removes a job requirement. Returns false when the row
// does not exist.
func (db *DB) DeleteJobRequirement(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM job_requirements WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job requirement: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
