/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend

ROUTE GROUPS:
  /employees/*   Employee directory
  /attendance/*  Attendance ledger
  /dashboard/*   Statistics aggregator
  /              Liveness

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://*.vercel.app"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", h.Root)

	// Employee routes. The fixed paths must be registered before the
	// {employee_id} wildcard.
	r.Route("/employees", func(r chi.Router) {
		r.Post("/generate-id", h.GenerateEmployeeID)
		r.Get("/departments", h.ListDepartments)
		r.Get("/", h.ListEmployees)
		r.Post("/", h.CreateEmployee)
		r.Delete("/{employee_id}", h.DeleteEmployee)
	})

	// Attendance routes
	r.Route("/attendance", func(r chi.Router) {
		r.Post("/", h.MarkAttendance)
		r.Put("/{employee_id}/{date}", h.UpdateAttendance)
		r.Get("/{employee_id}", h.GetAttendance)
	})

	// Dashboard routes
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/stats", h.DashboardStats)
		r.Get("/employees", h.EmployeeDashboard)
	})

	return r
}
