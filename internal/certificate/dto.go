package certificate

import (
	"time"

	"github.com/google/uuid"

	util "github.com/saulo-duarte/learnhub/internal/utils"
)

type Entry struct {
	CertificateID  string     `json:"certificate_id,omitempty"`
	Status         string     `json:"status"`
	CourseID       uuid.UUID  `json:"course_id"`
	CourseTitle    string     `json:"course_title"`
	InstructorName string     `json:"instructor_name"`
	QuizID         uuid.UUID  `json:"quiz_id"`
	QuizTitle      string     `json:"quiz_title"`
	StudentName    string     `json:"student_name"`
	EnrollmentDate util.Date  `json:"enrollment_date"`
	CompletionDate util.Date  `json:"completion_date"`
	Score          float64    `json:"score"`
	IssuedAt       *time.Time `json:"issued_at,omitempty"`
}

type IssuedCertificate struct {
	Entry
	VerificationToken string `json:"verification_token"`
}
