package certificate

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusCompleted = "completed"
	StatusIssued    = "issued"
)

// Certificate is issued once per (user, course) and keeps its code for good.
type Certificate struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Code      string    `gorm:"size:128;not null;uniqueIndex" json:"code"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_certificates_user_course" json:"user_id"`
	CourseID  uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_certificates_user_course" json:"course_id"`
	QuizID    uuid.UUID `gorm:"type:char(36);not null" json:"quiz_id"`
	Score     float64   `gorm:"type:decimal(5,2);not null" json:"score"`
	IssuedAt  time.Time `gorm:"not null" json:"issued_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func Code(courseID, userID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("CERT-%s-%s-%d", courseID, userID, at.Unix())
}
