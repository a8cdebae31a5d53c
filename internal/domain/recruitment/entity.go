package recruitment

import "time"

type PostingStatus string

const (
	PostingDraft  PostingStatus = "Draft"
	PostingActive PostingStatus = "Active"
	PostingClosed PostingStatus = "Closed"
)

func (s PostingStatus) Valid() bool {
	return s == PostingDraft || s == PostingActive || s == PostingClosed
}

// JobPosting is one open role. Only Active postings count as open
// positions on the dashboard.
type JobPosting struct {
	ID              string
	Title           string
	Department      string
	Location        string
	JobType         string
	ApplicantsCount int
	Status          PostingStatus
	PostedDate      time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
