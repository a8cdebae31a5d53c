package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/onboarding"
)

// defaultTask is one entry of the standard new-hire checklist.
type defaultTask struct {
	Title       string
	Description string
	DueInDays   int
}

// defaultOnboardingChecklist is seeded for every newly created employee.
// Due dates are offsets from the date of joining.
var defaultOnboardingChecklist = []defaultTask{
	{
		Title:       "Sign employment contract",
		Description: "Collect the signed contract and file it with HR.",
		DueInDays:   1,
	},
	{
		Title:       "Set up workstation and accounts",
		Description: "Laptop, email account and access to the tools the team uses.",
		DueInDays:   2,
	},
	{
		Title:       "Complete company orientation",
		Description: "Company policies, office tour and introduction to the team.",
		DueInDays:   5,
	},
	{
		Title:       "Submit payroll and tax documents",
		Description: "Bank details and tax forms so payroll can run on time.",
		DueInDays:   7,
	},
	{
		Title:       "30-day check-in with manager",
		Description: "Review the first month and agree on goals.",
		DueInDays:   30,
	},
}

// DefaultOnboardingTasks builds the standard checklist for a new employee.
func DefaultOnboardingTasks(employeeID string, dateOfJoining time.Time) []onboarding.Task {
	tasks := make([]onboarding.Task, 0, len(defaultOnboardingChecklist))
	for _, d := range defaultOnboardingChecklist {
		due := dateOfJoining.AddDate(0, 0, d.DueInDays)
		tasks = append(tasks, onboarding.Task{
			ID:          uuid.NewString(),
			EmployeeID:  employeeID,
			Title:       d.Title,
			Description: d.Description,
			DueDate:     &due,
			Status:      onboarding.TaskPending,
		})
	}
	return tasks
}
