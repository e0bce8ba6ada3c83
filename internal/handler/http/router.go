package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/handler/http/middleware"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Employee   EmployeeHandler
	Store      StoreHandler
	Shift      ShiftHandler
	Preference PreferenceHandler
	Attendance AttendanceHandler
	Event      EventHandler
	Seasonal   SeasonalHandler
	Generation GenerationHandler
	Dashboard  DashboardHandler
}

func NewRouter(JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftnavi"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/stores", func(r chi.Router) {
				r.Get("/", h.Store.List)
				r.Get("/{id}", h.Store.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Store.Create)
					r.Put("/{id}", h.Store.Update)
					r.Delete("/{id}", h.Store.Delete)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)
				r.Get("/{id}", h.Shift.Get)
				r.Post("/{id}/complete", h.Shift.Complete)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Shift.Create)
					r.Post("/batch", h.Shift.CreateBatch)
					r.Delete("/{id}", h.Shift.Delete)
				})
			})

			r.Route("/preferences", func(r chi.Router) {
				r.Post("/", h.Preference.Submit)
				r.Get("/", h.Preference.ListByPeriod)
				r.Get("/status", h.Preference.SubmissionStatus)
				r.Get("/employees/{employeeID}", h.Preference.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Preference.Delete)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/{id}/break/start", h.Attendance.StartBreak)
				r.Post("/{id}/break/end", h.Attendance.EndBreak)
				r.Post("/{id}/clock-out", h.Attendance.ClockOut)
				r.Get("/{id}", h.Attendance.Get)
				r.Get("/employees/{employeeID}", h.Attendance.ListByEmployee)
				r.Get("/employees/{employeeID}/stats", h.Attendance.EmployeeStats)
				r.Get("/stores/{storeID}/stats", h.Attendance.StoreStats)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", h.Attendance.Update)
					r.Delete("/{id}", h.Attendance.Delete)
				})
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", h.Event.List)
				r.Get("/{id}", h.Event.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Event.Create)
					r.Put("/{id}", h.Event.Update)
					r.Delete("/{id}", h.Event.Delete)
				})
			})

			r.Route("/seasonal-infos", func(r chi.Router) {
				r.Get("/", h.Seasonal.List)
				r.Get("/{id}", h.Seasonal.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Seasonal.Create)
					r.Put("/{id}", h.Seasonal.Update)
					r.Delete("/{id}", h.Seasonal.Delete)
				})
			})

			// Admin only
			r.Route("/generation", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/schedule", h.Generation.Generate)
				r.Post("/package", h.Generation.BuildPackage)
				r.Route("/constraints", func(r chi.Router) {
					r.Post("/", h.Generation.CreateConstraint)
					r.Get("/", h.Generation.ListConstraints)
					r.Delete("/{id}", h.Generation.DeleteConstraint)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard.Get)
				r.Get("/events", h.Dashboard.UpcomingEvents)
			})
		})
	})
	return r
}
