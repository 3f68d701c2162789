// Package store provides an in-memory Store implementation for tests
// and development. It enforces the same unique keys as the production
// MongoDB indexes (employee_id, email case-insensitively, and the
// (employee_id, date) pair) so conflict paths behave identically.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hrms/hrms-lite/hrms"
)

// =============================================================================
// MEMORY STORE
// =============================================================================

type Memory struct {
	mu         sync.RWMutex
	employees  []hrms.Employee
	attendance map[attendanceKey]hrms.AttendanceRecord
}

type attendanceKey struct {
	EmployeeID string
	Date       string
}

func NewMemory() *Memory {
	return &Memory{
		attendance: make(map[attendanceKey]hrms.AttendanceRecord),
	}
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (m *Memory) InsertEmployee(_ context.Context, e hrms.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.employees {
		if existing.EmployeeID == e.EmployeeID {
			return &hrms.ConflictError{Field: "employee_id", Message: "duplicate key: employee_id"}
		}
		if strings.EqualFold(existing.Email, e.Email) {
			return &hrms.ConflictError{Field: "email", Message: "duplicate key: email"}
		}
	}
	m.employees = append(m.employees, e)
	return nil
}

func (m *Memory) FindEmployee(_ context.Context, employeeID string) (*hrms.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.employees {
		if e.EmployeeID == employeeID {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) FindEmployeeByEmail(_ context.Context, email string) (*hrms.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.employees {
		if strings.EqualFold(e.Email, email) {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) FindEmployeeByPhone(_ context.Context, phone string) (*hrms.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.employees {
		if e.Phone == phone {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) ListEmployees(_ context.Context) ([]hrms.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]hrms.Employee, len(m.employees))
	copy(out, m.employees)
	return out, nil
}

func (m *Memory) DeleteEmployee(_ context.Context, employeeID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.employees {
		if e.EmployeeID == employeeID {
			m.employees = append(m.employees[:i], m.employees[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) CountEmployees(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.employees)), nil
}

func (m *Memory) DepartmentCounts(_ context.Context) ([]hrms.DepartmentCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int64)
	for _, e := range m.employees {
		counts[e.Department]++
	}

	out := make([]hrms.DepartmentCount, 0, len(counts))
	for dept, n := range counts {
		out = append(out, hrms.DepartmentCount{Department: dept, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Department < out[j].Department
	})
	return out, nil
}

// =============================================================================
// ATTENDANCE
// =============================================================================

func (m *Memory) InsertAttendance(_ context.Context, rec hrms.AttendanceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := attendanceKey{EmployeeID: rec.EmployeeID, Date: rec.Date}
	if _, exists := m.attendance[k]; exists {
		return &hrms.ConflictError{Field: "date", Message: "duplicate key: employee_id, date"}
	}
	m.attendance[k] = rec
	return nil
}

func (m *Memory) FindAttendance(_ context.Context, employeeID, date string) (*hrms.AttendanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if rec, ok := m.attendance[attendanceKey{EmployeeID: employeeID, Date: date}]; ok {
		cp := rec
		return &cp, nil
	}
	return nil, nil
}

func (m *Memory) ListAttendance(_ context.Context, f hrms.AttendanceFilter) ([]hrms.AttendanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []hrms.AttendanceRecord
	for _, rec := range m.attendance {
		if matches(rec, f) {
			out = append(out, rec)
		}
	}

	// ISO date strings sort chronologically.
	sort.Slice(out, func(i, j int) bool {
		if f.NewestFirst {
			return out[i].Date > out[j].Date
		}
		return out[i].Date < out[j].Date
	})

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *Memory) UpdateAttendanceStatus(_ context.Context, employeeID, date string, status hrms.Status) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := attendanceKey{EmployeeID: employeeID, Date: date}
	rec, ok := m.attendance[k]
	if !ok {
		return false, nil
	}
	rec.Status = status
	m.attendance[k] = rec
	return true, nil
}

func (m *Memory) CountAttendance(_ context.Context, f hrms.AttendanceFilter) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, rec := range m.attendance {
		if matches(rec, f) {
			n++
		}
	}
	return n, nil
}

func matches(rec hrms.AttendanceRecord, f hrms.AttendanceFilter) bool {
	if f.EmployeeID != "" && rec.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Date != "" && rec.Date != f.Date {
		return false
	}
	if f.DateFrom != "" && rec.Date < f.DateFrom {
		return false
	}
	if f.Status != "" && rec.Status != f.Status {
		return false
	}
	return true
}
