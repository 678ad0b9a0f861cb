package attempt

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusGraded     Status = "graded"
)

type Attempt struct {
	ID               uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:char(36);not null;index:idx_quiz_attempts_user_quiz" json:"user_id"`
	QuizID           uuid.UUID      `gorm:"type:char(36);not null;index:idx_quiz_attempts_user_quiz" json:"quiz_id"`
	StartedAt        time.Time      `gorm:"not null" json:"started_at"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	TimeTakenSeconds int            `gorm:"not null;default:0" json:"time_taken_seconds"`
	TotalScore       int            `gorm:"not null;default:0" json:"total_score"`
	MaxScore         int            `gorm:"not null;default:0" json:"max_score"`
	Percentage       float64        `gorm:"type:decimal(5,2);not null;default:0" json:"percentage"`
	Passed           bool           `gorm:"not null;default:false" json:"passed"`
	QuestionOrder    datatypes.JSON `json:"-"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Attempt) TableName() string { return "quiz_attempts" }

func (a *Attempt) Status() Status {
	if a.CompletedAt == nil {
		return StatusInProgress
	}
	return StatusGraded
}

// ServedOrder decodes the question ids in the order they were served.
func (a *Attempt) ServedOrder() ([]uuid.UUID, error) {
	if len(a.QuestionOrder) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(a.QuestionOrder, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

type Answer struct {
	ID               uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	AttemptID        uuid.UUID  `gorm:"type:char(36);not null;index" json:"attempt_id"`
	QuestionID       uuid.UUID  `gorm:"type:char(36);not null" json:"question_id"`
	SelectedOptionID *uuid.UUID `gorm:"type:char(36)" json:"selected_option_id,omitempty"`
	IsCorrect        bool       `gorm:"not null;default:false" json:"is_correct"`
	PointsEarned     int        `gorm:"not null;default:0" json:"points_earned"`
}

func (Answer) TableName() string { return "quiz_answers" }
