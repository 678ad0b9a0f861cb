package catalog

import (
	"time"

	"github.com/google/uuid"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
)

const (
	DefaultPassingScore   = 70
	DefaultTimeLimit      = 30
	MinQuestionsToPublish = 5
)

type Course struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	InstructorName string    `gorm:"size:255;not null" json:"instructor_name"`
	HasQuiz        bool      `gorm:"not null;default:false" json:"has_quiz"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Quiz struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	CourseID       uuid.UUID `gorm:"type:char(36);not null;index" json:"course_id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	PassingScore   int       `gorm:"not null;default:70" json:"passing_score"`
	TimeLimit      int       `gorm:"not null;default:30" json:"time_limit"` // minutes, 0 = unlimited
	IsActive       bool      `gorm:"not null;default:false" json:"is_active"`
	TotalQuestions int       `gorm:"not null;default:0" json:"total_questions"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type Question struct {
	ID        uuid.UUID    `gorm:"type:char(36);primaryKey" json:"id"`
	QuizID    uuid.UUID    `gorm:"type:char(36);not null;index" json:"quiz_id"`
	Text      string       `gorm:"type:text;not null" json:"text"`
	Type      QuestionType `gorm:"size:20;not null" json:"type"`
	Points    int          `gorm:"not null;default:1" json:"points"`
	Position  int          `gorm:"not null" json:"position"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options"`
}

type Option struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:char(36);not null;index" json:"question_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
	Position   int       `gorm:"not null" json:"position"`
}

func (Option) TableName() string { return "question_options" }

// CorrectOption returns the option flagged correct, or nil when none is.
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}

func (q *Question) Option(id uuid.UUID) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

func (q *Quiz) Question(id uuid.UUID) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}

// MaxScore sums the point values of every question in the quiz.
func (q *Quiz) MaxScore() int {
	total := 0
	for _, qs := range q.Questions {
		total += qs.Points
	}
	return total
}
