/*
demo.go - Canned payloads for degraded mode

PURPOSE:
  When no document store is configured (missing or placeholder
  connection string, or unreachable server at startup), the dashboard
  endpoints serve this fixed data instead of failing. The service stays
  reachable and its health observable without storage; mutating and
  entity-scoped endpoints still return 503.

  The payloads use the same shapes as the live responses plus a
  "message" marker, so a frontend renders them unchanged.

SEE ALSO:
  - handlers.go: Degraded-mode routing
*/
package api

import "github.com/hrms/hrms-lite/hrms"

const demoMessage = "Demo data - Database not connected"

// demoStatsResponse is the live stats shape plus the demo marker.
type demoStatsResponse struct {
	hrms.DashboardStats
	Message string `json:"message"`
}

type demoEmployeeDashboardResponse struct {
	hrms.EmployeeDashboard
	Message string `json:"message"`
}

func demoStats() demoStatsResponse {
	today := hrms.Today().String()
	return demoStatsResponse{
		DashboardStats: hrms.DashboardStats{
			TotalEmployees:         2,
			TotalAttendanceRecords: 10,
			TotalPresent:           8,
			TotalAbsent:            2,
			AttendanceRate:         80.0,
			Today:                  demoToday(today),
			DepartmentStats: []hrms.DepartmentCount{
				{Department: "Engineering", Count: 1},
				{Department: "Human Resources", Count: 1},
			},
			RecentAttendance: demoRecent(),
		},
		Message: demoMessage,
	}
}

func demoToday(date string) hrms.TodayStats {
	return hrms.TodayStats{
		Date:           date,
		Present:        2,
		Absent:         0,
		Total:          2,
		AttendanceRate: 100.0,
	}
}

func demoEmployeeDashboard() demoEmployeeDashboardResponse {
	return demoEmployeeDashboardResponse{
		EmployeeDashboard: hrms.EmployeeDashboard{
			TotalEmployees: 2,
			Employees: []hrms.EmployeeSummary{
				{
					EmployeeID:       "ENG0001",
					FullName:         "Demo Engineer",
					Email:            "engineer@example.com",
					Phone:            "1234567890",
					Department:       "Engineering",
					TotalRecords:     5,
					PresentCount:     4,
					AbsentCount:      1,
					AttendanceRate:   80.0,
					TodayStatus:      string(hrms.StatusPresent),
					RecentAttendance: demoRecentFor("ENG0001"),
				},
				{
					EmployeeID:       "HR0001",
					FullName:         "Demo Manager",
					Email:            "manager@example.com",
					Phone:            "0987654321",
					Department:       "Human Resources",
					TotalRecords:     5,
					PresentCount:     4,
					AbsentCount:      1,
					AttendanceRate:   80.0,
					TodayStatus:      string(hrms.StatusPresent),
					RecentAttendance: demoRecentFor("HR0001"),
				},
			},
		},
		Message: demoMessage,
	}
}

func demoRecent() []hrms.AttendanceRecord {
	return append(demoRecentFor("ENG0001"), demoRecentFor("HR0001")...)
}

func demoRecentFor(employeeID string) []hrms.AttendanceRecord {
	today := hrms.Today()
	return []hrms.AttendanceRecord{
		{EmployeeID: employeeID, Date: today.String(), Status: hrms.StatusPresent},
		{EmployeeID: employeeID, Date: today.AddDays(-1).String(), Status: hrms.StatusPresent},
	}
}
