package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const candidateColumns = `id, name, email, phone, filename, resume_text, skills, experience_years,
	score, status, screening_date, email_sent, email_sent_date, job_requirement_id, created_at`

// SaveCandidate inserts a screened candidate and returns its ID.
func (db *DB) SaveCandidate(ctx context.Context, c *Candidate) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, phone, filename, resume_text, skills, experience_years,
		                         score, status, screening_date, job_requirement_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		c.Name, c.Email, c.Phone, c.Filename, c.ResumeText, c.Skills, c.ExperienceYears,
		c.Score, c.Status, c.ScreeningDate, c.JobRequirementID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save candidate: %w", err)
	}
	return id, nil
}

// buildCandidateWhere translates a filter into a WHERE clause and its
// arguments. An empty filter produces an empty clause.
func buildCandidateWhere(f CandidateFilter) (string, []any) {
	var clauses []string
	var args []any

	if f.Status != "" {
		args = append(args, f.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.MinScore > 0 {
		args = append(args, f.MinScore)
		clauses = append(clauses, fmt.Sprintf("score >= $%d", len(args)))
	}
	if f.JobRequirementID != nil {
		args = append(args, *f.JobRequirementID)
		clauses = append(clauses, fmt.Sprintf("job_requirement_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR filename ILIKE $%d)", n, n, n))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// ListCandidates returns a page of candidates ordered by score descending,
// plus the total row count for the filter.
func (db *DB) ListCandidates(ctx context.Context, f CandidateFilter) ([]Candidate, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 50
	}

	where, args := buildCandidateWhere(f)

	var total int
	if err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM candidates"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM candidates%s ORDER BY score DESC LIMIT $%d OFFSET $%d",
		candidateColumns, where, len(args)+1, len(args)+2)
	args = append(args, f.PerPage, (f.Page-1)*f.PerPage)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Filename, &c.ResumeText, &c.Skills,
			&c.ExperienceYears, &c.Score, &c.Status, &c.ScreeningDate, &c.EmailSent, &c.EmailSentDate,
			&c.JobRequirementID, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, total, rows.Err()
}

// UpdateCandidate applies the non-nil fields of the update. Returns false
// when the candidate does not exist.
func (db *DB) UpdateCandidate(ctx context.Context, id uuid.UUID, upd CandidateUpdate) (bool, error) {
	var sets []string
	var args []any

	if upd.Status != nil {
		args = append(args, *upd.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if upd.Score != nil {
		args = append(args, *upd.Score)
		sets = append(sets, fmt.Sprintf("score = $%d", len(args)))
	}
	if len(sets) == 0 {
		return false, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE candidates SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update candidate: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteCandidate removes a candidate. Returns false when the row does not
// exist.
func (db *DB) DeleteCandidate(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete candidate: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// TopCandidatesForOutreach returns the highest-scoring candidates at or
// above minScore that have not been emailed yet.
func (db *DB) TopCandidatesForOutreach(ctx context.Context, minScore float64, limit int) ([]Candidate, error) {
	rows, err := db.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM candidates
		 WHERE score >= $1 AND email_sent = FALSE
		 ORDER BY score DESC LIMIT $2`, candidateColumns),
		minScore, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select outreach candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Filename, &c.ResumeText, &c.Skills,
			&c.ExperienceYears, &c.Score, &c.Status, &c.ScreeningDate, &c.EmailSent, &c.EmailSentDate,
			&c.JobRequirementID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// MarkEmailSent records a delivered invitation and promotes the candidate to
// selected.
func (db *DB) MarkEmailSent(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE candidates SET email_sent = TRUE, email_sent_date = NOW(), status = $1 WHERE id = $2`,
		StatusSelected, id)
	if err != nil {
		return fmt.Errorf("failed to mark email sent: %w", err)
	}
	return nil
}

// CandidateJobRoles lists the distinct job requirements candidates were
// screened against, with candidate counts.
func (db *DB) CandidateJobRoles(ctx context.Context) ([]JobRole, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT r.id, r.title, COUNT(c.id)
		 FROM job_requirements r
		 JOIN candidates c ON c.job_requirement_id = r.id
		 GROUP BY r.id, r.title
		 ORDER BY r.title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate job roles: %w", err)
	}
	defer rows.Close()

	var roles []JobRole
	for rows.Next() {
		var role JobRole
		if err := rows.Scan(&role.ID, &role.Title, &role.CandidateCount); err != nil {
			return nil, fmt.Errorf("failed to scan job role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// GetStatistics summarizes screening activity across all candidates.
func (db *DB) GetStatistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = $1),
		        COUNT(*) FILTER (WHERE status = $2),
		        COUNT(*) FILTER (WHERE email_sent),
		        COALESCE(AVG(score), 0)
		 FROM candidates`,
		StatusScreened, StatusSelected,
	).Scan(&stats.TotalCandidates, &stats.ScreenedCandidates, &stats.SelectedCandidates,
		&stats.EmailsSent, &stats.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}
	return &stats, nil
}
