/*
ledger.go - Attendance Ledger

PURPOSE:
  Owns one attendance mark per (employee, calendar date). Creation and
  update are distinct operations with distinct failure modes:

    Mark:    none -> {Present, Absent}   fails Conflict if a mark exists
    Update:  {Present, Absent} -> same   fails NotFound if none exists

  There is no transition back to "none"; marks are never deleted
  independently.

VALIDATION ORDER:
  Both operations validate input (date shape, status value, not-future)
  before any store round-trip, then check the employee reference, then
  touch the mark. A validation failure never leaves partial state.

SEE ALSO:
  - directory.go: Employee existence
  - stats.go: Read-only rollups over the same records
*/
package hrms

import "context"

// Ledger owns attendance marks.
type Ledger struct {
	store     Store
	directory *Directory
}

// NewLedger creates a ledger over the given store. Employee references
// are checked against the directory.
func NewLedger(store Store, directory *Directory) *Ledger {
	return &Ledger{store: store, directory: directory}
}

func (l *Ledger) available() error {
	if l.store == nil {
		return ErrUnavailable
	}
	return nil
}

// Mark creates the attendance mark for (employeeID, date). Fails with
// Conflict if the day is already marked; use Update to change it.
func (l *Ledger) Mark(ctx context.Context, employeeID, date, status string) error {
	if err := l.available(); err != nil {
		return err
	}

	day, err := ParseDate(date)
	if err != nil {
		return err
	}
	if err := ValidateStatus(status); err != nil {
		return err
	}
	if err := ValidateDateNotFuture(day); err != nil {
		return err
	}

	if err := l.requireEmployee(ctx, employeeID); err != nil {
		return err
	}

	existing, err := l.store.FindAttendance(ctx, employeeID, day.String())
	if err != nil {
		return internalf("checking attendance: %v", err)
	}
	if existing != nil {
		return &ConflictError{Field: "date", Message: "Attendance already marked for this date. Use update endpoint to modify."}
	}

	return l.store.InsertAttendance(ctx, AttendanceRecord{
		EmployeeID: employeeID,
		Date:       day.String(),
		Status:     Status(status),
	})
}

// Update changes the status of an existing mark. Fails with NotFound if
// no mark exists for (employeeID, date).
func (l *Ledger) Update(ctx context.Context, employeeID, date, status string) error {
	if err := l.available(); err != nil {
		return err
	}

	day, err := ParseDate(date)
	if err != nil {
		return err
	}
	if err := ValidateDateNotFuture(day); err != nil {
		return err
	}
	if err := ValidateStatus(status); err != nil {
		return err
	}

	if err := l.requireEmployee(ctx, employeeID); err != nil {
		return err
	}

	matched, err := l.store.UpdateAttendanceStatus(ctx, employeeID, day.String(), Status(status))
	if err != nil {
		return err
	}
	if !matched {
		return &NotFoundError{Entity: "attendance record", Key: employeeID + "/" + day.String()}
	}
	return nil
}

// Get returns all marks for an employee, optionally filtered to an
// exact date, plus the count of Present marks among the returned set.
func (l *Ledger) Get(ctx context.Context, employeeID, date string) ([]AttendanceRecord, int, error) {
	if err := l.available(); err != nil {
		return nil, 0, err
	}

	if err := l.requireEmployee(ctx, employeeID); err != nil {
		return nil, 0, err
	}

	records, err := l.store.ListAttendance(ctx, AttendanceFilter{
		EmployeeID: employeeID,
		Date:       date,
	})
	if err != nil {
		return nil, 0, internalf("listing attendance: %v", err)
	}
	if records == nil {
		records = []AttendanceRecord{}
	}

	present := 0
	for _, rec := range records {
		if rec.Status == StatusPresent {
			present++
		}
	}
	return records, present, nil
}

func (l *Ledger) requireEmployee(ctx context.Context, employeeID string) error {
	exists, err := l.directory.Exists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{Entity: "employee", Key: employeeID}
	}
	return nil
}
