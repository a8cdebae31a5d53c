package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/onboarding"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/database"
)

type onboardingRepository struct {
	db *database.DB
}

func NewOnboardingRepository(db *database.DB) onboarding.Repository {
	return &onboardingRepository{db: db}
}

const taskColumns = `
	t.id, t.employee_id, t.title, t.description, t.due_date, t.status,
	t.completed_at, t.created_at, t.updated_at,
	e.first_name || ' ' || e.last_name, e.employee_code
`

func scanTask(row pgx.Row) (onboarding.Task, error) {
	var t onboarding.Task
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.Title, &t.Description, &t.DueDate, &t.Status,
		&t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
		&t.EmployeeName, &t.EmployeeCode,
	)
	return t, err
}

// Create implements onboarding.Repository.
func (r *onboardingRepository) Create(ctx context.Context, t onboarding.Task) (onboarding.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO onboarding_tasks (id, employee_id, title, description, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.ID, t.EmployeeID, t.Title, t.Description, t.DueDate, t.Status).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return onboarding.Task{}, fmt.Errorf("failed to create onboarding task: %w", err)
	}

	return t, nil
}

// GetByID implements onboarding.Repository.
func (r *onboardingRepository) GetByID(ctx context.Context, id string) (onboarding.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM onboarding_tasks t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.id = $1
	`

	t, err := scanTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return onboarding.Task{}, onboarding.ErrTaskNotFound
		}
		return onboarding.Task{}, fmt.Errorf("failed to get onboarding task: %w", err)
	}

	return t, nil
}

// ListByEmployee implements onboarding.Repository.
func (r *onboardingRepository) ListByEmployee(ctx context.Context, employeeID string) ([]onboarding.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM onboarding_tasks t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.employee_id = $1
		ORDER BY t.due_date ASC NULLS LAST, t.created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// List implements onboarding.Repository.
func (r *onboardingRepository) List(ctx context.Context) ([]onboarding.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM onboarding_tasks t
		JOIN employees e ON e.id = t.employee_id
		ORDER BY t.due_date ASC NULLS LAST, t.created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]onboarding.Task, error) {
	var tasks []onboarding.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan onboarding task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update implements onboarding.Repository.
func (r *onboardingRepository) Update(ctx context.Context, t onboarding.Task) (onboarding.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE onboarding_tasks
		SET title = $2, description = $3, due_date = $4, status = $5,
			completed_at = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, t.ID, t.Title, t.Description, t.DueDate, t.Status, t.CompletedAt).
		Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return onboarding.Task{}, onboarding.ErrTaskNotFound
		}
		return onboarding.Task{}, fmt.Errorf("failed to update onboarding task: %w", err)
	}

	return t, nil
}

// Delete implements onboarding.Repository.
func (r *onboardingRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM onboarding_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete onboarding task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return onboarding.ErrTaskNotFound
	}

	return nil
}
