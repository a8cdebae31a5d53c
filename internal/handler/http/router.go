package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub-hq/staffhub-backend-go/internal/handler/http/middleware"
	"github.com/staffhub-hq/staffhub-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Attendance  AttendanceHandler
	Payroll     PayrollHandler
	Employee    EmployeeHandler
	Leave       LeaveHandler
	Holiday     HolidayHandler
	Asset       AssetHandler
	Onboarding  OnboardingHandler
	Recruitment RecruitmentHandler
	Dashboard   DashboardHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffhub"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/register", h.Auth.Register)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/today/{employeeID}", h.Attendance.Today)
				r.Get("/report", h.Attendance.Report)
				r.Get("/stats", h.Attendance.Stats)
				r.Post("/generate-daily", h.Attendance.GenerateDaily)
				r.Post("/auto-absent", h.Attendance.AutoAbsent)
				r.Get("/", h.Attendance.List)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/run", h.Payroll.Run)
				r.Post("/set-status", h.Payroll.SetStatus)
				r.Get("/employee/{employeeID}", h.Payroll.EmployeePayrolls)
				r.Get("/logs", h.Payroll.Logs)
				r.Get("/stats", h.Payroll.Stats)
				r.Get("/", h.Payroll.List)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Post("/", h.Employee.Create)
				r.Get("/", h.Employee.List)
				r.Get("/code/{employeeID}", h.Employee.GetByCode)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Deactivate)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/", h.Leave.List)
				r.Get("/{id}", h.Leave.Get)
				r.Post("/{id}/review", h.Leave.Review)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Post("/", h.Holiday.Create)
				r.Get("/", h.Holiday.List)
				r.Get("/upcoming", h.Holiday.Upcoming)
				r.Get("/{id}", h.Holiday.Get)
				r.Put("/{id}", h.Holiday.Update)
				r.Delete("/{id}", h.Holiday.Delete)
			})

			r.Route("/assets", func(r chi.Router) {
				r.Post("/", h.Asset.Create)
				r.Get("/", h.Asset.List)
				r.Get("/{id}", h.Asset.Get)
				r.Post("/{id}/assign", h.Asset.Assign)
				r.Post("/{id}/unassign", h.Asset.Unassign)
				r.Delete("/{id}", h.Asset.Delete)
			})

			r.Route("/onboarding", func(r chi.Router) {
				r.Post("/", h.Onboarding.Create)
				r.Get("/", h.Onboarding.List)
				r.Get("/employee/{employeeID}", h.Onboarding.ListByEmployee)
				r.Patch("/{id}/status", h.Onboarding.UpdateStatus)
				r.Delete("/{id}", h.Onboarding.Delete)
			})

			r.Route("/recruitment/jobs", func(r chi.Router) {
				r.Post("/", h.Recruitment.Create)
				r.Get("/", h.Recruitment.List)
				r.Get("/stats", h.Recruitment.Stats)
				r.Get("/{id}", h.Recruitment.Get)
				r.Put("/{id}", h.Recruitment.Update)
				r.Delete("/{id}", h.Recruitment.Delete)
			})

			r.Get("/dashboard/stats", h.Dashboard.Stats)
		})
	})

	return r
}
