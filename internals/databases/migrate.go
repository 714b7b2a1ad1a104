package database

import (
	"log"

	fieldModel "rollcall_backend/internals/features/academics/fields/model"
	studentModel "rollcall_backend/internals/features/academics/students/model"
	timetableModel "rollcall_backend/internals/features/academics/timetable/model"
	attendanceModel "rollcall_backend/internals/features/rollcall/attendance/model"
	sessionModel "rollcall_backend/internals/features/rollcall/sessions/model"
	adminModel "rollcall_backend/internals/features/users/admins/model"
)

// RunMigrations keeps the schema in step with the models on boot.
func RunMigrations() {
	if err := DB.AutoMigrate(
		&fieldModel.FieldModel{},
		&studentModel.StudentModel{},
		&timetableModel.TimetableEntryModel{},
		&sessionModel.SessionCompletionModel{},
		&attendanceModel.AttendanceRecordModel{},
		&adminModel.AdminUserModel{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Schema migrated")
}
