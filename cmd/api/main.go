package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/staffhub-hq/staffhub-backend-go/internal/config"
	appHTTP "github.com/staffhub-hq/staffhub-backend-go/internal/handler/http"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/cron"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/telegram"
	"github.com/staffhub-hq/staffhub-backend-go/internal/repository/postgresql"
	assetService "github.com/staffhub-hq/staffhub-backend-go/internal/service/asset"
	attendanceService "github.com/staffhub-hq/staffhub-backend-go/internal/service/attendance"
	authService "github.com/staffhub-hq/staffhub-backend-go/internal/service/auth"
	dashboardService "github.com/staffhub-hq/staffhub-backend-go/internal/service/dashboard"
	employeeService "github.com/staffhub-hq/staffhub-backend-go/internal/service/employee"
	holidayService "github.com/staffhub-hq/staffhub-backend-go/internal/service/holiday"
	leaveService "github.com/staffhub-hq/staffhub-backend-go/internal/service/leave"
	onboardingService "github.com/staffhub-hq/staffhub-backend-go/internal/service/onboarding"
	payrollService "github.com/staffhub-hq/staffhub-backend-go/internal/service/payroll"
	recruitmentService "github.com/staffhub-hq/staffhub-backend-go/internal/service/recruitment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	assetRepo := postgresql.NewAssetRepository(db)
	onboardingRepo := postgresql.NewOnboardingRepository(db)
	recruitmentRepo := postgresql.NewRecruitmentRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	notifier, err := telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		log.Fatal("Failed to initialize telegram notifier:", err)
	}

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, onboardingRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		employeeRepo,
		cfg.Attendance.LateAfter,
		cfg.Attendance.AutoAbsentAfter,
	)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		employeeRepo,
		payrollService.Defaults{
			BasicSalary: cfg.Payroll.DefaultBasicSalary,
			Allowances:  cfg.Payroll.DefaultAllowances,
			Deductions:  cfg.Payroll.DefaultDeductions,
		},
		notifier,
	)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo, attendanceRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	assetSvc := assetService.NewAssetService(db, assetRepo, employeeRepo)
	onboardingSvc := onboardingService.NewOnboardingService(onboardingRepo, employeeRepo)
	recruitmentSvc := recruitmentService.NewRecruitmentService(recruitmentRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, attendanceRepo, leaveRepo, payrollRepo, recruitmentRepo)

	scheduler := cron.NewScheduler()
	cron.RegisterJobs(scheduler, attendanceSvc, payrollSvc)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Holiday:     appHTTP.NewHolidayHandler(holidaySvc),
		Asset:       appHTTP.NewAssetHandler(assetSvc),
		Onboarding:  appHTTP.NewOnboardingHandler(onboardingSvc),
		Recruitment: appHTTP.NewRecruitmentHandler(recruitmentSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
