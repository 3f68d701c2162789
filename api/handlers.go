/*
handlers.go - HTTP API handlers for the HR records service

PURPOSE:
  Exposes the employee directory, attendance ledger, and statistics
  aggregator via REST. Handles HTTP request/response and JSON
  serialization, and delegates everything else to domain logic.

ENDPOINTS:
  GET    /                                Liveness
  POST   /employees/generate-id           Generate an employee ID
  GET    /employees/departments           Canonical department list
  POST   /employees                       Create employee
  GET    /employees                       List employees
  DELETE /employees/{employee_id}         Delete employee
  POST   /attendance                      Mark attendance
  PUT    /attendance/{employee_id}/{date} Update a mark
  GET    /attendance/{employee_id}        List marks (?date= filter)
  GET    /dashboard/stats                 Global statistics
  GET    /dashboard/employees             Per-employee summaries

ERROR HANDLING:
  Domain errors carry their own taxonomy; statusForError maps it:
  - 400: InvalidFormat, InvalidValue
  - 404: NotFound
  - 409: Conflict
  - 503: Unavailable (no storage configured)
  - 500: everything else

DEGRADED MODE:
  With no store configured the dashboard endpoints serve canned demo
  data (see demo.go) so the service stays reachable; every other
  endpoint that needs storage returns 503.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - demo.go: Canned degraded-mode payloads
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrms/hrms-lite/hrms"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Directory *hrms.Directory
	Ledger    *hrms.Ledger
	Stats     *hrms.Aggregator
	IDs       *hrms.IDGenerator

	degraded bool
}

// NewHandler wires the domain components over the given store. A nil
// store puts the handler in degraded mode.
func NewHandler(store hrms.Store) *Handler {
	directory := hrms.NewDirectory(store)
	return &Handler{
		Directory: directory,
		Ledger:    hrms.NewLedger(store, directory),
		Stats:     hrms.NewAggregator(store),
		IDs:       hrms.NewIDGenerator(directory.Exists),
		degraded:  store == nil,
	}
}

// Root reports liveness. Works in degraded mode.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message: "HRMS Lite backend running",
		Status:  "active",
	})
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// GenerateEmployeeID derives an employee ID from a name.
func (h *Handler) GenerateEmployeeID(w http.ResponseWriter, r *http.Request) {
	var req GenerateIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := hrms.ValidateFullName(req.FullName); err != nil {
		writeDomainError(w, err)
		return
	}

	id, err := h.IDs.Generate(r.Context(), req.FullName)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, GenerateIDResponse{EmployeeID: id})
}

// ListDepartments returns the canonical department set.
func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DepartmentsResponse{Departments: hrms.Departments()})
}

// CreateEmployee creates a new employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err := h.Directory.Add(r.Context(), hrms.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Employee added successfully"})
}

// ListEmployees returns all employees.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Directory.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if employees == nil {
		employees = []hrms.Employee{}
	}
	writeJSON(w, http.StatusOK, employees)
}

// DeleteEmployee removes one employee by ID.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.Directory.Delete(r.Context(), chi.URLParam(r, "employee_id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Employee deleted successfully"})
}

// =============================================================================
// ATTENDANCE HANDLERS
// =============================================================================

// MarkAttendance creates the mark for one employee and date.
func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.Ledger.Mark(r.Context(), req.EmployeeID, req.Date, req.Status); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Attendance marked successfully"})
}

// UpdateAttendance changes the status of an existing mark.
func (h *Handler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	var req UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	employeeID := chi.URLParam(r, "employee_id")
	date := chi.URLParam(r, "date")
	if err := h.Ledger.Update(r.Context(), employeeID, date, req.Status); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Attendance updated successfully"})
}

// GetAttendance lists marks for an employee, optionally filtered to an
// exact date via ?date=YYYY-MM-DD.
func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employee_id")
	date := r.URL.Query().Get("date")

	records, presentDays, err := h.Ledger.Get(r.Context(), employeeID, date)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AttendanceResponse{
		Records:          records,
		TotalPresentDays: presentDays,
	})
}

// =============================================================================
// DASHBOARD HANDLERS
// =============================================================================

// DashboardStats returns the global rollup, or canned demo data in
// degraded mode.
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	if h.degraded {
		writeJSON(w, http.StatusOK, demoStats())
		return
	}

	stats, err := h.Stats.DashboardStats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// EmployeeDashboard returns per-employee summaries, or canned demo
// data in degraded mode.
func (h *Handler) EmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	if h.degraded {
		writeJSON(w, http.StatusOK, demoEmployeeDashboard())
		return
	}

	summaries, err := h.Stats.EmployeeSummaries(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func statusForError(err error) int {
	switch {
	case hrms.IsInvalid(err):
		return http.StatusBadRequest
	case hrms.IsNotFound(err):
		return http.StatusNotFound
	case hrms.IsConflict(err):
		return http.StatusConflict
	case hrms.IsUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError && !errors.Is(err, hrms.ErrInternal) {
		writeError(w, status, "Unexpected error", err)
		return
	}
	writeError(w, status, err.Error(), nil)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
