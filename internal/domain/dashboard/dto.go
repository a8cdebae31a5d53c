package dashboard

import "github.com/shopspring/decimal"

// StatsResponse is the cross-module snapshot shown on the admin landing
// page. Every number is computed on read; nothing is cached.
type StatsResponse struct {
	Employees   EmployeeStats    `json:"employees"`
	Attendance  AttendanceStats  `json:"attendance"`
	Leaves      LeaveStats       `json:"leaves"`
	Payroll     PayrollStats     `json:"payroll"`
	Assets      AssetStats       `json:"assets"`
	Recruitment RecruitmentStats `json:"recruitment"`
}

type EmployeeStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type AttendanceStats struct {
	Date     string         `json:"date"`
	ByStatus map[string]int `json:"by_status"`
}

type LeaveStats struct {
	Pending int `json:"pending"`
}

type PayrollStats struct {
	Total   decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

type AssetStats struct {
	Total     int `json:"total"`
	Assigned  int `json:"assigned"`
	Available int `json:"available"`
}

type RecruitmentStats struct {
	OpenPositions   int `json:"open_positions"`
	TotalApplicants int `json:"total_applicants"`
}
