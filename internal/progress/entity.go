package progress

import (
	"time"

	"github.com/google/uuid"
)

// Progress is the best known outcome of a user on a quiz. One row per (user, quiz).
type Progress struct {
	ID            uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_quiz_progress_user_quiz" json:"user_id"`
	QuizID        uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_quiz_progress_user_quiz" json:"quiz_id"`
	CourseID      uuid.UUID `gorm:"type:char(36);not null;index" json:"course_id"`
	BestScore     float64   `gorm:"type:decimal(5,2);not null;default:0" json:"best_score"`
	Passed        bool      `gorm:"not null;default:false" json:"passed"`
	AttemptsCount int       `gorm:"not null;default:0" json:"attempts_count"`
	LastAttempt   time.Time `gorm:"not null" json:"last_attempt"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Progress) TableName() string { return "quiz_progress" }

// Outcome is one graded attempt folded into Progress.
type Outcome struct {
	UserID     uuid.UUID
	QuizID     uuid.UUID
	CourseID   uuid.UUID
	Percentage float64
	Passed     bool
	At         time.Time
}
