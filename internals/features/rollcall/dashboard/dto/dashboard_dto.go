// file: internals/features/rollcall/dashboard/dto/dashboard_dto.go
package dto

type FieldStat struct {
	Field          string  `json:"field"`
	TotalStudents  int64   `json:"total_students"`
	AbsenteeCount  int64   `json:"absentee_count"`
	AttendanceRate float64 `json:"attendance_rate"` // percent, 100.0 when no marks
	AbsenteeRate   float64 `json:"absentee_rate"`   // percent, 0.0 when no marks
}

type DashboardStats struct {
	TotalStudents    int64 `json:"total_students"`
	TotalFields      int64 `json:"total_fields"`
	TodayAbsentees   int64 `json:"today_absentees"`
	WeeklyAbsentees  int64 `json:"weekly_absentees"`
	MonthlyAbsentees int64 `json:"monthly_absentees"`

	FieldStats        []FieldStat `json:"field_stats"`
	TopAbsenteeFields []FieldStat `json:"top_absentee_fields"`
}
