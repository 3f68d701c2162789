/*
handlers_test.go - HTTP-level tests against the real router

Each test drives the full stack (chi router, handlers, domain logic,
in-memory store) through httptest, asserting status codes and response
shapes on the wire.
*/
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms/hrms-lite/hrms"
	"github.com/hrms/hrms-lite/hrms/store"
)

// =============================================================================
// TEST INFRASTRUCTURE
// =============================================================================

func newTestRouter() http.Handler {
	return NewRouter(NewHandler(store.NewMemory()))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func createJohn(t *testing.T, router http.Handler) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/employees", CreateEmployeeRequest{
		EmployeeID: "EMP001",
		FullName:   "John Doe",
		Email:      "john@x.com",
		Phone:      "1234567890",
		Department: "Engineering",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

// =============================================================================
// LIVENESS AND LOOKUPS
// =============================================================================

func TestRoot(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[RootResponse](t, rec)
	assert.Equal(t, "active", body.Status)
}

func TestListDepartments(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodGet, "/employees/departments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[DepartmentsResponse](t, rec)
	assert.Len(t, body.Departments, 12)
	assert.Contains(t, body.Departments, "Engineering")
	assert.Contains(t, body.Departments, "Research & Development")
	assert.NotContains(t, body.Departments, "HR")
}

func TestGenerateEmployeeID(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/employees/generate-id", GenerateIDRequest{FullName: "John Doe"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[GenerateIDResponse](t, rec)
	assert.Regexp(t, `^JODO[0-9]{4,6}$`, body.EmployeeID)

	// Name too short
	rec = doJSON(t, router, http.MethodPost, "/employees/generate-id", GenerateIDRequest{FullName: "J"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// EMPLOYEE CRUD
// =============================================================================

func TestCreateEmployee_Validation(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		req  CreateEmployeeRequest
		code int
	}{
		{"bad phone", CreateEmployeeRequest{EmployeeID: "E1", FullName: "John Doe", Email: "a@x.com", Phone: "123", Department: "Engineering"}, http.StatusBadRequest},
		{"bad department", CreateEmployeeRequest{EmployeeID: "E1", FullName: "John Doe", Email: "a@x.com", Phone: "1234567890", Department: "HR"}, http.StatusBadRequest},
		{"bad email", CreateEmployeeRequest{EmployeeID: "E1", FullName: "John Doe", Email: "nope", Phone: "1234567890", Department: "Engineering"}, http.StatusBadRequest},
		{"empty id", CreateEmployeeRequest{EmployeeID: " ", FullName: "John Doe", Email: "a@x.com", Phone: "1234567890", Department: "Engineering"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/employees", tt.req)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestCreateEmployee_DuplicateConflicts(t *testing.T) {
	router := newTestRouter()
	createJohn(t, router)

	// Same ID
	rec := doJSON(t, router, http.MethodPost, "/employees", CreateEmployeeRequest{
		EmployeeID: "EMP001", FullName: "Jane Doe", Email: "jane@x.com", Phone: "0987654321", Department: "Sales",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Employee ID already exists", decode[ErrorResponse](t, rec).Error)

	// Same email, different case
	rec = doJSON(t, router, http.MethodPost, "/employees", CreateEmployeeRequest{
		EmployeeID: "EMP002", FullName: "Jane Doe", Email: "JOHN@X.COM", Phone: "0987654321", Department: "Sales",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already exists", decode[ErrorResponse](t, rec).Error)

	// Same phone
	rec = doJSON(t, router, http.MethodPost, "/employees", CreateEmployeeRequest{
		EmployeeID: "EMP002", FullName: "Jane Doe", Email: "jane@x.com", Phone: "1234567890", Department: "Sales",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Phone number already exists", decode[ErrorResponse](t, rec).Error)
}

func TestListAndDeleteEmployee(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/employees", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]hrms.Employee](t, rec))

	createJohn(t, router)

	rec = doJSON(t, router, http.MethodGet, "/employees", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	employees := decode[[]hrms.Employee](t, rec)
	require.Len(t, employees, 1)
	assert.Equal(t, "EMP001", employees[0].EmployeeID)

	rec = doJSON(t, router, http.MethodDelete, "/employees/EMP001", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/employees/EMP001", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =============================================================================
// ATTENDANCE
// =============================================================================

func TestAttendance_EndToEndScenario(t *testing.T) {
	router := newTestRouter()
	createJohn(t, router)

	// Mark Present
	rec := doJSON(t, router, http.MethodPost, "/attendance", MarkAttendanceRequest{
		EmployeeID: "EMP001", Date: "2024-01-01", Status: "Present",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Marking the same day again conflicts
	rec = doJSON(t, router, http.MethodPost, "/attendance", MarkAttendanceRequest{
		EmployeeID: "EMP001", Date: "2024-01-01", Status: "Present",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Update flips the status
	rec = doJSON(t, router, http.MethodPut, "/attendance/EMP001/2024-01-01", UpdateAttendanceRequest{Status: "Absent"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// One record, Absent, zero present days
	rec = doJSON(t, router, http.MethodGet, "/attendance/EMP001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[AttendanceResponse](t, rec)
	require.Len(t, body.Records, 1)
	assert.Equal(t, hrms.StatusAbsent, body.Records[0].Status)
	assert.Equal(t, 0, body.TotalPresentDays)
}

func TestMarkAttendance_Failures(t *testing.T) {
	router := newTestRouter()
	createJohn(t, router)

	tomorrow := hrms.Today().AddDays(1).String()

	tests := []struct {
		name string
		req  MarkAttendanceRequest
		code int
	}{
		{"future date", MarkAttendanceRequest{EmployeeID: "EMP001", Date: tomorrow, Status: "Present"}, http.StatusBadRequest},
		{"bad status", MarkAttendanceRequest{EmployeeID: "EMP001", Date: "2024-01-01", Status: "Late"}, http.StatusBadRequest},
		{"bad date", MarkAttendanceRequest{EmployeeID: "EMP001", Date: "01-01-2024", Status: "Present"}, http.StatusBadRequest},
		{"unknown employee", MarkAttendanceRequest{EmployeeID: "GHOST", Date: "2024-01-01", Status: "Present"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/attendance", tt.req)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestUpdateAttendance_Failures(t *testing.T) {
	router := newTestRouter()
	createJohn(t, router)

	// No prior mark
	rec := doJSON(t, router, http.MethodPut, "/attendance/EMP001/2024-01-01", UpdateAttendanceRequest{Status: "Absent"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Unparsable date
	rec = doJSON(t, router, http.MethodPut, "/attendance/EMP001/not-a-date", UpdateAttendanceRequest{Status: "Absent"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown employee
	rec = doJSON(t, router, http.MethodPut, "/attendance/GHOST/2024-01-01", UpdateAttendanceRequest{Status: "Absent"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAttendance_UnknownEmployee(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodGet, "/attendance/GHOST", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAttendance_DateFilter(t *testing.T) {
	router := newTestRouter()
	createJohn(t, router)

	for _, day := range []string{"2024-01-01", "2024-01-02"} {
		rec := doJSON(t, router, http.MethodPost, "/attendance", MarkAttendanceRequest{
			EmployeeID: "EMP001", Date: day, Status: "Present",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/attendance/EMP001?date=2024-01-02", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[AttendanceResponse](t, rec)
	require.Len(t, body.Records, 1)
	assert.Equal(t, "2024-01-02", body.Records[0].Date)
	assert.Equal(t, 1, body.TotalPresentDays)
}

// =============================================================================
// DASHBOARD
// =============================================================================

func TestDashboardStats_ZeroRecords(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodGet, "/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decode[hrms.DashboardStats](t, rec)
	assert.Equal(t, 0.0, stats.AttendanceRate)
	assert.EqualValues(t, 0, stats.TotalAttendanceRecords)
}

func TestEmployeeDashboard(t *testing.T) {
	router := newTestRouter()
	createJohn(t, router)

	today := hrms.Today().String()
	rec := doJSON(t, router, http.MethodPost, "/attendance", MarkAttendanceRequest{
		EmployeeID: "EMP001", Date: today, Status: "Present",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/dashboard/employees", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	dash := decode[hrms.EmployeeDashboard](t, rec)
	require.Len(t, dash.Employees, 1)
	assert.Equal(t, "Present", dash.Employees[0].TodayStatus)
	assert.Equal(t, 100.0, dash.Employees[0].AttendanceRate)
}

// =============================================================================
// DEGRADED MODE - no store configured
// =============================================================================

func TestDegradedMode(t *testing.T) {
	router := NewRouter(NewHandler(nil))

	// Liveness still works.
	rec := doJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Dashboard reads serve canned demo data instead of failing.
	rec = doJSON(t, router, http.MethodGet, "/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[map[string]any](t, rec)
	assert.Equal(t, "Demo data - Database not connected", stats["message"])
	assert.EqualValues(t, 80.0, stats["attendance_rate"])

	rec = doJSON(t, router, http.MethodGet, "/dashboard/employees", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Everything that needs storage is 503.
	rec = doJSON(t, router, http.MethodPost, "/employees", CreateEmployeeRequest{
		EmployeeID: "EMP001", FullName: "John Doe", Email: "john@x.com", Phone: "1234567890", Department: "Engineering",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/employees", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/attendance", MarkAttendanceRequest{
		EmployeeID: "EMP001", Date: "2024-01-01", Status: "Present",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/employees/EMP001", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
