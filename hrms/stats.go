/*
stats.go - Statistics Aggregator

PURPOSE:
  Read-only rollups over the Directory and the Ledger for the dashboard
  endpoints. The aggregator persists nothing of its own; every number
  is derived per call from store counts, the department aggregation,
  and windowed attendance queries.

ROUNDING:
  Every attendance rate uses the same rule: percentage rounded HALF-UP
  to 2 decimal places (decimal.Round rounds half away from zero, which
  is half-up for the non-negative rates produced here). A zero
  denominator yields 0, never an error.

ERROR HANDLING:
  Store failures during aggregation are wrapped as ErrInternal with a
  descriptive message rather than propagated as raw driver errors.

SEE ALSO:
  - store.go: Count/aggregate/list primitives
*/
package hrms

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

const (
	recentWindowDays     = 7
	recentGlobalLimit    = 10
	recentPerEmpLimit    = 5
	todayStatusNotMarked = "Not Marked"
)

// TodayStats is the attendance rollup for the current date.
type TodayStats struct {
	Date           string  `json:"date"`
	Present        int64   `json:"present"`
	Absent         int64   `json:"absent"`
	Total          int64   `json:"total"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// DashboardStats is the global dashboard payload.
type DashboardStats struct {
	TotalEmployees         int64              `json:"total_employees"`
	TotalAttendanceRecords int64              `json:"total_attendance_records"`
	TotalPresent           int64              `json:"total_present"`
	TotalAbsent            int64              `json:"total_absent"`
	AttendanceRate         float64            `json:"attendance_rate"`
	Today                  TodayStats         `json:"today"`
	DepartmentStats        []DepartmentCount  `json:"department_stats"`
	RecentAttendance       []AttendanceRecord `json:"recent_attendance"`
}

// EmployeeSummary is the per-employee dashboard row.
type EmployeeSummary struct {
	EmployeeID       string             `json:"employee_id"`
	FullName         string             `json:"full_name"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone"`
	Department       string             `json:"department"`
	TotalRecords     int64              `json:"total_records"`
	PresentCount     int64              `json:"present_count"`
	AbsentCount      int64              `json:"absent_count"`
	AttendanceRate   float64            `json:"attendance_rate"`
	TodayStatus      string             `json:"today_status"`
	RecentAttendance []AttendanceRecord `json:"recent_attendance"`
}

// EmployeeDashboard is the per-employee dashboard payload, sorted by
// full name ascending.
type EmployeeDashboard struct {
	TotalEmployees int               `json:"total_employees"`
	Employees      []EmployeeSummary `json:"employees"`
}

// Aggregator computes dashboard statistics.
type Aggregator struct {
	store Store
}

// NewAggregator creates an aggregator over the given store.
func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// Rate converts present/total into a percentage in [0, 100], rounded
// half-up to 2 decimals. Returns 0 when total is 0.
func Rate(present, total int64) float64 {
	if total <= 0 {
		return 0
	}
	rate := decimal.NewFromInt(present).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(2)
	f, _ := rate.Float64()
	return f
}

// DashboardStats computes the global rollup.
func (a *Aggregator) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	if a.store == nil {
		return nil, ErrUnavailable
	}

	totalEmployees, err := a.store.CountEmployees(ctx)
	if err != nil {
		return nil, internalf("counting employees: %v", err)
	}
	totalRecords, err := a.store.CountAttendance(ctx, AttendanceFilter{})
	if err != nil {
		return nil, internalf("counting attendance: %v", err)
	}
	totalPresent, err := a.store.CountAttendance(ctx, AttendanceFilter{Status: StatusPresent})
	if err != nil {
		return nil, internalf("counting present: %v", err)
	}
	totalAbsent, err := a.store.CountAttendance(ctx, AttendanceFilter{Status: StatusAbsent})
	if err != nil {
		return nil, internalf("counting absent: %v", err)
	}

	today := Today().String()
	todayPresent, err := a.store.CountAttendance(ctx, AttendanceFilter{Date: today, Status: StatusPresent})
	if err != nil {
		return nil, internalf("counting today's present: %v", err)
	}
	todayAbsent, err := a.store.CountAttendance(ctx, AttendanceFilter{Date: today, Status: StatusAbsent})
	if err != nil {
		return nil, internalf("counting today's absent: %v", err)
	}

	departmentStats, err := a.store.DepartmentCounts(ctx)
	if err != nil {
		return nil, internalf("aggregating departments: %v", err)
	}
	if departmentStats == nil {
		departmentStats = []DepartmentCount{}
	}

	recent, err := a.store.ListAttendance(ctx, AttendanceFilter{
		DateFrom:    Today().AddDays(-recentWindowDays).String(),
		NewestFirst: true,
		Limit:       recentGlobalLimit,
	})
	if err != nil {
		return nil, internalf("listing recent attendance: %v", err)
	}
	if recent == nil {
		recent = []AttendanceRecord{}
	}

	return &DashboardStats{
		TotalEmployees:         totalEmployees,
		TotalAttendanceRecords: totalRecords,
		TotalPresent:           totalPresent,
		TotalAbsent:            totalAbsent,
		AttendanceRate:         Rate(totalPresent, totalRecords),
		Today: TodayStats{
			Date:           today,
			Present:        todayPresent,
			Absent:         todayAbsent,
			Total:          todayPresent + todayAbsent,
			AttendanceRate: Rate(todayPresent, todayPresent+todayAbsent),
		},
		DepartmentStats:  departmentStats,
		RecentAttendance: recent,
	}, nil
}

// EmployeeSummaries computes one rollup row per employee, sorted by
// full name ascending.
func (a *Aggregator) EmployeeSummaries(ctx context.Context) (*EmployeeDashboard, error) {
	if a.store == nil {
		return nil, ErrUnavailable
	}

	employees, err := a.store.ListEmployees(ctx)
	if err != nil {
		return nil, internalf("listing employees: %v", err)
	}

	today := Today().String()
	weekAgo := Today().AddDays(-recentWindowDays).String()

	summaries := make([]EmployeeSummary, 0, len(employees))
	for _, emp := range employees {
		records, err := a.store.ListAttendance(ctx, AttendanceFilter{EmployeeID: emp.EmployeeID})
		if err != nil {
			return nil, internalf("listing attendance for %s: %v", emp.EmployeeID, err)
		}

		var present int64
		for _, rec := range records {
			if rec.Status == StatusPresent {
				present++
			}
		}
		total := int64(len(records))

		todayStatus := todayStatusNotMarked
		todayRec, err := a.store.FindAttendance(ctx, emp.EmployeeID, today)
		if err != nil {
			return nil, internalf("finding today's mark for %s: %v", emp.EmployeeID, err)
		}
		if todayRec != nil {
			todayStatus = string(todayRec.Status)
		}

		recent, err := a.store.ListAttendance(ctx, AttendanceFilter{
			EmployeeID:  emp.EmployeeID,
			DateFrom:    weekAgo,
			NewestFirst: true,
			Limit:       recentPerEmpLimit,
		})
		if err != nil {
			return nil, internalf("listing recent attendance for %s: %v", emp.EmployeeID, err)
		}
		if recent == nil {
			recent = []AttendanceRecord{}
		}

		summaries = append(summaries, EmployeeSummary{
			EmployeeID:       emp.EmployeeID,
			FullName:         emp.FullName,
			Email:            emp.Email,
			Phone:            emp.Phone,
			Department:       emp.Department,
			TotalRecords:     total,
			PresentCount:     present,
			AbsentCount:      total - present,
			AttendanceRate:   Rate(present, total),
			TodayStatus:      todayStatus,
			RecentAttendance: recent,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].FullName < summaries[j].FullName
	})

	return &EmployeeDashboard{
		TotalEmployees: len(summaries),
		Employees:      summaries,
	}, nil
}
