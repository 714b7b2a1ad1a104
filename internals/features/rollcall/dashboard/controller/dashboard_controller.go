// file: internals/features/rollcall/dashboard/controller/dashboard_controller.go
package controller

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "rollcall_backend/internals/features/academics/students/model"
	"rollcall_backend/internals/features/rollcall/dashboard/dto"
	reportService "rollcall_backend/internals/features/rollcall/reports/service"
	helper "rollcall_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type DashboardController struct {
	DB *gorm.DB

	Now func() time.Time
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db, Now: time.Now}
}

/* =======================================================
   HANDLERS
   ======================================================= */

// Stats assembles the landing-page counters in one round trip for the
// client: head counts, absentee totals for today / this week / this
// month, and per-field attendance with the five worst fields called out.
func (ctl *DashboardController) Stats(c *fiber.Ctx) error {
	now := ctl.Now()

	var stats dto.DashboardStats

	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Count(&stats.TotalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}

	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Distinct("student_field").
		Count(&stats.TotalFields).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count fields")
	}

	var err error
	if stats.TodayAbsentees, err = ctl.absenteesIn(reportService.ReportTypeDaily, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count absentees")
	}
	if stats.WeeklyAbsentees, err = ctl.absenteesIn(reportService.ReportTypeWeekly, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count absentees")
	}
	if stats.MonthlyAbsentees, err = ctl.absenteesIn(reportService.ReportTypeMonthly, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count absentees")
	}

	fieldStats, err := ctl.fieldStats(now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to aggregate field stats")
	}
	stats.FieldStats = fieldStats
	stats.TopAbsenteeFields = topAbsenteeFields(fieldStats, 5)

	return helper.JsonOK(c, "dashboard stats", stats)
}

/* =======================================================
   HELPERS
   ======================================================= */

func (ctl *DashboardController) absenteesIn(reportType string, now time.Time) (int64, error) {
	from, to, err := reportService.ResolveRange(reportType, "", "", now)
	if err != nil {
		return 0, err
	}
	var total int64
	err = ctl.DB.Table("attendance_records").
		Where("attendance_record_is_present = ?", false).
		Where("attendance_record_date BETWEEN ? AND ?", from, to).
		Count(&total).Error
	return total, err
}

// fieldStats aggregates the current month per field of study.
func (ctl *DashboardController) fieldStats(now time.Time) ([]dto.FieldStat, error) {
	from, to, err := reportService.ResolveRange(reportService.ReportTypeMonthly, "", "", now)
	if err != nil {
		return nil, err
	}

	type countRow struct {
		StudentField string
		Total        int64
	}
	var studentCounts []countRow
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Select("student_field, COUNT(*) AS total").
		Group("student_field").
		Order("student_field ASC").
		Scan(&studentCounts).Error; err != nil {
		return nil, err
	}

	type markRow struct {
		StudentField string
		TotalMarks   int64
		Absences     int64
	}
	var marks []markRow
	if err := ctl.DB.Table("attendance_records").
		Select(`students.student_field,
			COUNT(*) AS total_marks,
			SUM(CASE WHEN attendance_records.attendance_record_is_present THEN 0 ELSE 1 END) AS absences`).
		Joins("JOIN students ON students.student_id = attendance_records.attendance_record_student_id").
		Where("students.student_deleted_at IS NULL").
		Where("attendance_records.attendance_record_date BETWEEN ? AND ?", from, to).
		Group("students.student_field").
		Scan(&marks).Error; err != nil {
		return nil, err
	}
	byField := make(map[string]markRow, len(marks))
	for _, r := range marks {
		byField[r.StudentField] = r
	}

	out := make([]dto.FieldStat, 0, len(studentCounts))
	for _, sc := range studentCounts {
		m := byField[sc.StudentField]
		attendance, absentee := 100.0, 0.0
		if m.TotalMarks > 0 {
			attendance = float64(m.TotalMarks-m.Absences) / float64(m.TotalMarks) * 100
			absentee = float64(m.Absences) / float64(m.TotalMarks) * 100
		}
		out = append(out, dto.FieldStat{
			Field:          sc.StudentField,
			TotalStudents:  sc.Total,
			AbsenteeCount:  m.Absences,
			AttendanceRate: attendance,
			AbsenteeRate:   absentee,
		})
	}
	return out, nil
}

// topAbsenteeFields keeps fields with at least one absence, worst
// absentee rate first, absence count breaking ties.
func topAbsenteeFields(stats []dto.FieldStat, limit int) []dto.FieldStat {
	worst := make([]dto.FieldStat, 0, len(stats))
	for _, s := range stats {
		if s.AbsenteeCount > 0 {
			worst = append(worst, s)
		}
	}
	sort.SliceStable(worst, func(i, j int) bool {
		if worst[i].AbsenteeRate != worst[j].AbsenteeRate {
			return worst[i].AbsenteeRate > worst[j].AbsenteeRate
		}
		return worst[i].AbsenteeCount > worst[j].AbsenteeCount
	})
	if len(worst) > limit {
		worst = worst[:limit]
	}
	return worst
}
