package cron

import (
	"context"
	"errors"
	"time"

	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hq/staffhub-backend-go/internal/domain/payroll"
)

// RegisterJobs wires the daily attendance generation, the auto-absent
// sweep and the monthly payroll run into the scheduler.
func RegisterJobs(s *Scheduler, attendanceService attendance.Service, payrollService payroll.Service) {
	s.AddJob("attendance-generate-daily", time.Hour, func(ctx context.Context) error {
		_, err := attendanceService.GenerateDaily(ctx, attendance.GenerateDailyRequest{})
		return err
	})

	s.AddJob("attendance-auto-absent", time.Hour, func(ctx context.Context) error {
		_, err := attendanceService.AutoAbsent(ctx)
		if errors.Is(err, attendance.ErrAutoAbsentBeforeCutoff) {
			// Expected for runs scheduled before the cutoff time.
			return nil
		}
		return err
	})

	s.AddJob("payroll-monthly-run", 12*time.Hour, func(ctx context.Context) error {
		if time.Now().Day() != 1 {
			return nil
		}
		_, err := payrollService.Run(ctx)
		return err
	})
}
