/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Request types
  decouple the wire contract from the domain model; responses reuse the
  domain's stats/record types where the shapes are identical.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *Response: Response wrappers

VALIDATION:
  Validation is done in the domain layer, not in DTOs. DTOs are pure
  data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import "github.com/hrms/hrms-lite/hrms"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// GenerateIDRequest asks for a machine-generated employee ID.
type GenerateIDRequest struct {
	FullName string `json:"full_name"`
}

// CreateEmployeeRequest is the request to create an employee.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

// MarkAttendanceRequest creates the mark for one employee and date.
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// UpdateAttendanceRequest changes the status of an existing mark.
type UpdateAttendanceRequest struct {
	Status string `json:"status"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// GenerateIDResponse carries a freshly generated employee ID.
type GenerateIDResponse struct {
	EmployeeID string `json:"employee_id"`
}

// DepartmentsResponse lists the canonical department set.
type DepartmentsResponse struct {
	Departments []string `json:"departments"`
}

// AttendanceResponse is the per-employee attendance listing.
type AttendanceResponse struct {
	Records          []hrms.AttendanceRecord `json:"records"`
	TotalPresentDays int                     `json:"total_present_days"`
}

// MessageResponse is a plain success acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// RootResponse is the liveness payload at GET /.
type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
