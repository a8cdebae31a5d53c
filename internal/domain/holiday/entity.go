package holiday

import "time"

// Holiday is one calendar entry. Recurring holidays repeat every year on
// the same month and day.
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Recurring   bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
