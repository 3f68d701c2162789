/*
directory.go - Employee Directory

PURPOSE:
  Owns the set of employee records and their uniqueness constraints.
  All writes run the validators first; conflict pre-checks follow in a
  fixed order (id, then email, then phone) so error messages are
  deterministic. The pre-checks are advisory — the store's unique
  indexes are the authoritative defense against racing creates, and an
  index rejection surfaces as the same Conflict category.

DEGRADED MODE:
  The directory holds an optional store handle. With no store
  configured, every operation returns ErrUnavailable instead of the
  process relying on ambient nullable globals.

SEE ALSO:
  - validate.go: Field invariants
  - identity.go: ID generation against Exists
*/
package hrms

import (
	"context"
	"strings"
)

// Directory owns employee records.
type Directory struct {
	store Store
}

// NewDirectory creates a directory over the given store. A nil store
// puts the directory in degraded mode: all operations fail with
// ErrUnavailable.
func NewDirectory(store Store) *Directory {
	return &Directory{store: store}
}

func (d *Directory) available() error {
	if d.store == nil {
		return ErrUnavailable
	}
	return nil
}

// Add validates and persists a new employee. Conflict checks run in
// order: employee_id, email (case-insensitive), phone.
func (d *Directory) Add(ctx context.Context, e Employee) error {
	if err := d.available(); err != nil {
		return err
	}

	e.EmployeeID = strings.TrimSpace(e.EmployeeID)
	e.FullName = strings.TrimSpace(e.FullName)

	if e.EmployeeID == "" {
		return invalidFormat("employee_id", "employee ID cannot be empty")
	}
	if err := ValidateFullName(e.FullName); err != nil {
		return err
	}
	if err := ValidateEmail(e.Email); err != nil {
		return err
	}
	if err := ValidatePhone(e.Phone); err != nil {
		return err
	}
	if err := ValidateDepartment(e.Department); err != nil {
		return err
	}

	if existing, err := d.store.FindEmployee(ctx, e.EmployeeID); err != nil {
		return internalf("checking employee ID: %v", err)
	} else if existing != nil {
		return &ConflictError{Field: "employee_id", Message: "Employee ID already exists"}
	}

	if existing, err := d.store.FindEmployeeByEmail(ctx, e.Email); err != nil {
		return internalf("checking email: %v", err)
	} else if existing != nil {
		return &ConflictError{Field: "email", Message: "Email already exists"}
	}

	if existing, err := d.store.FindEmployeeByPhone(ctx, e.Phone); err != nil {
		return internalf("checking phone: %v", err)
	} else if existing != nil {
		return &ConflictError{Field: "phone", Message: "Phone number already exists"}
	}

	// The store's unique indexes may still reject a racing duplicate;
	// that error already wraps ErrConflict.
	return d.store.InsertEmployee(ctx, e)
}

// List returns all employees in store-native order.
func (d *Directory) List(ctx context.Context) ([]Employee, error) {
	if err := d.available(); err != nil {
		return nil, err
	}
	return d.store.ListEmployees(ctx)
}

// Find returns the employee with the given ID, or nil when absent.
func (d *Directory) Find(ctx context.Context, employeeID string) (*Employee, error) {
	if err := d.available(); err != nil {
		return nil, err
	}
	return d.store.FindEmployee(ctx, employeeID)
}

// Exists reports whether an employee ID is taken.
func (d *Directory) Exists(ctx context.Context, employeeID string) (bool, error) {
	emp, err := d.Find(ctx, employeeID)
	if err != nil {
		return false, err
	}
	return emp != nil, nil
}

// Delete removes exactly one employee. Attendance records are NOT
// cascaded; orphaned marks stay queryable only if the ID is re-created.
func (d *Directory) Delete(ctx context.Context, employeeID string) error {
	if err := d.available(); err != nil {
		return err
	}
	deleted, err := d.store.DeleteEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Entity: "employee", Key: employeeID}
	}
	return nil
}
