package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func TestDayCount(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2025-03-10", "2025-03-10", 1},
		{"two days", "2025-03-10", "2025-03-11", 2},
		{"full week", "2025-03-10", "2025-03-16", 7},
		{"across month boundary", "2025-03-30", "2025-04-02", 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DayCount(day(c.start), day(c.end)))
		})
	}
}
