/*
types.go - Core record types for the HR records service

PURPOSE:
  Defines the two persisted record shapes (Employee, AttendanceRecord)
  and the enumerations that constrain them. These are the only documents
  the service stores; everything else is derived.

DESIGN NOTES:
  - Dates are carried as ISO YYYY-MM-DD strings on records. ISO date
    strings sort lexicographically in chronological order, so the store
    can sort and range-filter on them directly. Parsing and comparison
    live in date.go.
  - There is exactly ONE department list. An earlier revision of the
    system carried a second, shorter list inside field validation; that
    list is dead. Validation and the listing endpoint both read
    Departments().

SEE ALSO:
  - validate.go: Field-level invariants over these types
  - store.go: Persistence interface
*/
package hrms

// =============================================================================
// ATTENDANCE STATUS
// =============================================================================

// Status is the attendance state for one employee on one calendar day.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// =============================================================================
// DEPARTMENTS
// =============================================================================

// departments is the canonical set. Order matters: the listing endpoint
// returns it as-is.
var departments = []string{
	"Human Resources",
	"Engineering",
	"Sales",
	"Marketing",
	"Finance",
	"Operations",
	"Customer Support",
	"IT",
	"Research & Development",
	"Administration",
	"Legal",
	"Product Management",
}

// Departments returns the canonical department list.
func Departments() []string {
	out := make([]string, len(departments))
	copy(out, departments)
	return out
}

// =============================================================================
// RECORDS
// =============================================================================

// Employee is a single employee record. EmployeeID is immutable once
// created; records are never updated in place, only created and deleted.
type Employee struct {
	EmployeeID string `json:"employee_id" bson:"employee_id"`
	FullName   string `json:"full_name" bson:"full_name"`
	Email      string `json:"email" bson:"email"`
	Phone      string `json:"phone" bson:"phone"`
	Department string `json:"department" bson:"department"`
}

// AttendanceRecord is one Present/Absent mark for a single employee on a
// single calendar date. (EmployeeID, Date) is the unique key.
type AttendanceRecord struct {
	EmployeeID string `json:"employee_id" bson:"employee_id"`
	Date       string `json:"date" bson:"date"`
	Status     Status `json:"status" bson:"status"`
}
