package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/recruitment"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/database"
)

type recruitmentRepository struct {
	db *database.DB
}

func NewRecruitmentRepository(db *database.DB) recruitment.Repository {
	return &recruitmentRepository{db: db}
}

const jobPostingColumns = `id, title, department, location, job_type, applicants_count, status, posted_date, created_at, updated_at`

func scanJobPosting(row pgx.Row) (recruitment.JobPosting, error) {
	var p recruitment.JobPosting
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Department,
		&p.Location,
		&p.JobType,
		&p.ApplicantsCount,
		&p.Status,
		&p.PostedDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create implements recruitment.Repository.
func (r *recruitmentRepository) Create(ctx context.Context, p recruitment.JobPosting) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_postings (id, title, department, location, job_type, applicants_count, status, posted_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.Title, p.Department, p.Location, p.JobType, p.ApplicantsCount, p.Status, p.PostedDate,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return recruitment.JobPosting{}, fmt.Errorf("failed to create job posting: %w", err)
	}

	return p, nil
}

// GetByID implements recruitment.Repository.
func (r *recruitmentRepository) GetByID(ctx context.Context, id string) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanJobPosting(q.QueryRow(ctx, `SELECT `+jobPostingColumns+` FROM job_postings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobPosting{}, recruitment.ErrPostingNotFound
		}
		return recruitment.JobPosting{}, fmt.Errorf("failed to get job posting: %w", err)
	}

	return p, nil
}

// List implements recruitment.Repository.
func (r *recruitmentRepository) List(ctx context.Context, filter recruitment.ListFilter) ([]recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobPostingColumns + ` FROM job_postings`
	var args []any
	if filter.Status != nil && *filter.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY posted_date DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []recruitment.JobPosting
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, p)
	}

	return postings, rows.Err()
}

// Update implements recruitment.Repository.
func (r *recruitmentRepository) Update(ctx context.Context, p recruitment.JobPosting) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_postings
		SET title = $2, department = $3, location = $4, job_type = $5,
			applicants_count = $6, status = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.Title, p.Department, p.Location, p.JobType, p.ApplicantsCount, p.Status,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobPosting{}, recruitment.ErrPostingNotFound
		}
		return recruitment.JobPosting{}, fmt.Errorf("failed to update job posting: %w", err)
	}

	return p, nil
}

// Delete implements recruitment.Repository.
func (r *recruitmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrPostingNotFound
	}

	return nil
}

// Counts implements recruitment.Repository.
func (r *recruitmentRepository) Counts(ctx context.Context) (recruitment.StatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'Active'),
			   COALESCE(SUM(applicants_count), 0)
		FROM job_postings
	`

	var stats recruitment.StatsResponse
	err := q.QueryRow(ctx, query).Scan(&stats.TotalPostings, &stats.OpenPositions, &stats.TotalApplicants)
	if err != nil {
		return recruitment.StatsResponse{}, fmt.Errorf("failed to count job postings: %w", err)
	}

	return stats, nil
}
