package enrollment

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_enrollments_user_course" json:"user_id"`
	CourseID   uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_enrollments_user_course" json:"course_id"`
	EnrolledAt time.Time `gorm:"not null" json:"enrolled_at"`
}
