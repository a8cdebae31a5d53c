package recruitment

import "github.com/staffhub-hq/staffhub-backend-go/internal/pkg/validator"

type CreateRequest struct {
	Title      string `json:"title"`
	Department string `json:"department"`
	Location   string `json:"location"`
	JobType    string `json:"job_type"`
	Status     string `json:"status"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if r.Status != "" && !PostingStatus(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Draft, Active or Closed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	Title           *string `json:"title"`
	Department      *string `json:"department"`
	Location        *string `json:"location"`
	JobType         *string `json:"job_type"`
	ApplicantsCount *int    `json:"applicants_count"`
	Status          *string `json:"status"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title cannot be blank"})
	}
	if r.Status != nil && !PostingStatus(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Draft, Active or Closed"})
	}
	if r.ApplicantsCount != nil && *r.ApplicantsCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "applicants_count", Message: "applicants_count must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	Status *string
}

type Response struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Department      string `json:"department"`
	Location        string `json:"location,omitempty"`
	JobType         string `json:"job_type,omitempty"`
	ApplicantsCount int    `json:"applicants_count"`
	Status          string `json:"status"`
	PostedDate      string `json:"posted_date"`
}

// StatsResponse summarizes the hiring pipeline.
type StatsResponse struct {
	TotalPostings   int `json:"total_postings"`
	OpenPositions   int `json:"open_positions"`
	TotalApplicants int `json:"total_applicants"`
}
