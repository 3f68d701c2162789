/*
store.go - Persistence interface for employee and attendance records

PURPOSE:
  Defines the interface between the domain logic and the document store.
  The store is addressed with plain find/insert/update/delete/count
  semantics plus one aggregation (department counts); there is no
  transaction support and none is needed — every operation touches a
  single document.

CONFLICT CONTRACT:
  InsertEmployee and InsertAttendance MUST return an error wrapping
  ErrConflict when the store's unique constraint rejects the write
  (employee_id, email case-insensitively, or the (employee_id, date)
  pair). Application-level pre-checks are advisory; two racing requests
  can both pass them, and the store constraint is the final authority.

ABSENCE CONTRACT:
  Find* methods return (nil, nil) when no document matches. NotFound is
  a domain decision, not a store one.

IMPLEMENTATIONS:
  - store/mongo: Production MongoDB store (unique indexes)
  - hrms/store: In-memory store for tests and dev (same unique keys)

SEE ALSO:
  - directory.go, ledger.go, stats.go: Consumers
*/
package hrms

import "context"

// AttendanceFilter narrows attendance queries. Zero fields are ignored.
type AttendanceFilter struct {
	EmployeeID string // exact match
	Date       string // exact match (ISO date string)
	DateFrom   string // inclusive lower bound (ISO date string)
	Status     Status // exact match

	NewestFirst bool // sort by date descending
	Limit       int  // cap result count; 0 means no cap
}

// DepartmentCount is one row of the per-department employee rollup.
type DepartmentCount struct {
	Department string `json:"department" bson:"_id"`
	Count      int64  `json:"count" bson:"count"`
}

// Store handles persistence of employee and attendance documents.
type Store interface {
	// InsertEmployee persists a new employee. Returns ErrConflict if a
	// unique constraint rejects the write.
	InsertEmployee(ctx context.Context, e Employee) error

	// FindEmployee returns the employee with the given ID, or nil.
	FindEmployee(ctx context.Context, employeeID string) (*Employee, error)

	// FindEmployeeByEmail matches email case-insensitively. Returns nil
	// when absent.
	FindEmployeeByEmail(ctx context.Context, email string) (*Employee, error)

	// FindEmployeeByPhone returns the employee with the given phone, or
	// nil.
	FindEmployeeByPhone(ctx context.Context, phone string) (*Employee, error)

	// ListEmployees returns all employees in store-native order.
	ListEmployees(ctx context.Context) ([]Employee, error)

	// DeleteEmployee removes at most one employee. Reports whether a
	// document was removed.
	DeleteEmployee(ctx context.Context, employeeID string) (bool, error)

	// CountEmployees returns the total employee count.
	CountEmployees(ctx context.Context) (int64, error)

	// DepartmentCounts groups employees by department, sorted by count
	// descending.
	DepartmentCounts(ctx context.Context) ([]DepartmentCount, error)

	// InsertAttendance persists a new attendance mark. Returns
	// ErrConflict if a mark already exists for (employee_id, date).
	InsertAttendance(ctx context.Context, rec AttendanceRecord) error

	// FindAttendance returns the mark for (employeeID, date), or nil.
	FindAttendance(ctx context.Context, employeeID, date string) (*AttendanceRecord, error)

	// ListAttendance returns marks matching the filter.
	ListAttendance(ctx context.Context, f AttendanceFilter) ([]AttendanceRecord, error)

	// UpdateAttendanceStatus sets the status of an existing mark.
	// Reports whether a document matched.
	UpdateAttendanceStatus(ctx context.Context, employeeID, date string, status Status) (bool, error)

	// CountAttendance counts marks matching the filter.
	CountAttendance(ctx context.Context, f AttendanceFilter) (int64, error)
}
