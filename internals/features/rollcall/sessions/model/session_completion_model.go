package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SessionCompletionModel records that attendance was submitted for a
// derived session on a given date. Server-side so every device sees the
// same truth; uniqueness on (session_id, date) makes completion
// idempotent.
type SessionCompletionModel struct {
	SessionCompletionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:session_completion_id" json:"session_completion_id"`

	SessionCompletionSessionID string `gorm:"not null;column:session_completion_session_id;uniqueIndex:uq_session_completions_session_date" json:"session_completion_session_id"`

	SessionCompletionField string `gorm:"not null;column:session_completion_field" json:"session_completion_field"`
	SessionCompletionLevel string `gorm:"not null;column:session_completion_level" json:"session_completion_level"`
	SessionCompletionDay   string `gorm:"not null;column:session_completion_day"   json:"session_completion_day"`

	SessionCompletionDate datatypes.Date `gorm:"not null;column:session_completion_date;uniqueIndex:uq_session_completions_session_date" json:"session_completion_date"`

	SessionCompletionCompletedAt time.Time `gorm:"column:session_completion_completed_at;autoCreateTime" json:"session_completion_completed_at"`
}

func (SessionCompletionModel) TableName() string { return "session_completions" }
