package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimetableEntryModel struct {
	TimetableEntryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:timetable_entry_id" json:"timetable_entry_id"`

	TimetableEntryDay string `gorm:"not null;column:timetable_entry_day" json:"timetable_entry_day"`

	// "HH:MM - HH:MM", 24-hour. Stored verbatim; the deriver parses it and
	// skips rows it cannot parse.
	TimetableEntryTimeSlot string `gorm:"not null;column:timetable_entry_time_slot" json:"timetable_entry_time_slot"`

	TimetableEntryCourse   string `gorm:"not null;column:timetable_entry_course"   json:"timetable_entry_course"`
	TimetableEntryField    string `gorm:"not null;column:timetable_entry_field"    json:"timetable_entry_field"`
	TimetableEntryLevel    string `gorm:"not null;column:timetable_entry_level"    json:"timetable_entry_level"`
	TimetableEntryRoom     string `gorm:"not null;column:timetable_entry_room"     json:"timetable_entry_room"`
	TimetableEntryLecturer string `gorm:"not null;column:timetable_entry_lecturer" json:"timetable_entry_lecturer"`

	TimetableEntryCreatedAt time.Time      `gorm:"column:timetable_entry_created_at;autoCreateTime" json:"timetable_entry_created_at"`
	TimetableEntryUpdatedAt *time.Time     `gorm:"column:timetable_entry_updated_at;autoUpdateTime" json:"timetable_entry_updated_at,omitempty"`
	TimetableEntryDeletedAt gorm.DeletedAt `gorm:"column:timetable_entry_deleted_at;index"          json:"timetable_entry_deleted_at,omitempty"`
}

func (TimetableEntryModel) TableName() string { return "timetable_entries" }
