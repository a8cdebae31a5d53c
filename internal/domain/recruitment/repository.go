package recruitment

import "context"

type Repository interface {
	Create(ctx context.Context, p JobPosting) (JobPosting, error)
	GetByID(ctx context.Context, id string) (JobPosting, error)
	List(ctx context.Context, filter ListFilter) ([]JobPosting, error)
	Update(ctx context.Context, p JobPosting) (JobPosting, error)
	Delete(ctx context.Context, id string) error

	// Counts returns posting totals plus the applicant sum across postings.
	Counts(ctx context.Context) (StatsResponse, error)
}
