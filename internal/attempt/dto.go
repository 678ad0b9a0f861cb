package attempt

import (
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/progress"
)

type QuizSummary struct {
	ID             uuid.UUID `json:"id"`
	CourseID       uuid.UUID `json:"course_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PassingScore   int       `json:"passing_score"`
	TimeLimit      int       `json:"time_limit"`
	TotalQuestions int       `json:"total_questions"`
}

type ServedOption struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

// ServedQuestion is a question as shown to a student: no correctness flags.
type ServedQuestion struct {
	ID      uuid.UUID            `json:"id"`
	Text    string               `json:"text"`
	Type    catalog.QuestionType `json:"type"`
	Points  int                  `json:"points"`
	Options []ServedOption       `json:"options"`
}

type BeginResponse struct {
	AttemptID uuid.UUID        `json:"attempt_id"`
	Quiz      QuizSummary      `json:"quiz"`
	StartedAt time.Time        `json:"started_at"`
	Deadline  *time.Time       `json:"deadline,omitempty"`
	Questions []ServedQuestion `json:"questions"`
}

type GradeRequest struct {
	Answers map[uuid.UUID]uuid.UUID `json:"answers"`
}

type AttemptResponse struct {
	ID               uuid.UUID  `json:"id"`
	QuizID           uuid.UUID  `json:"quiz_id"`
	Status           Status     `json:"status"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	TimeTakenSeconds int        `json:"time_taken_seconds"`
	TotalScore       int        `json:"total_score"`
	MaxScore         int        `json:"max_score"`
	Percentage       float64    `json:"percentage"`
	Passed           bool       `json:"passed"`
}

type ProgressSnapshot struct {
	BestScore     float64 `json:"best_score"`
	Passed        bool    `json:"passed"`
	AttemptsCount int     `json:"attempts_count"`
}

type GradedResponse struct {
	Attempt      AttemptResponse  `json:"attempt"`
	PassingScore int              `json:"passing_score"`
	Progress     ProgressSnapshot `json:"progress"`
}

type ReviewItem struct {
	QuestionID     uuid.UUID `json:"question_id"`
	Text           string    `json:"text"`
	Points         int       `json:"points"`
	SelectedOption *string   `json:"selected_option,omitempty"`
	CorrectOption  string    `json:"correct_option"`
	IsCorrect      bool      `json:"is_correct"`
	PointsEarned   int       `json:"points_earned"`
}

type ResultResponse struct {
	Attempt      AttemptResponse `json:"attempt"`
	QuizTitle    string          `json:"quiz_title"`
	PassingScore int             `json:"passing_score"`
	Review       []ReviewItem    `json:"review"`
}

func ToAttemptResponse(a *Attempt) AttemptResponse {
	return AttemptResponse{
		ID:               a.ID,
		QuizID:           a.QuizID,
		Status:           a.Status(),
		StartedAt:        a.StartedAt,
		CompletedAt:      a.CompletedAt,
		TimeTakenSeconds: a.TimeTakenSeconds,
		TotalScore:       a.TotalScore,
		MaxScore:         a.MaxScore,
		Percentage:       a.Percentage,
		Passed:           a.Passed,
	}
}

func toQuizSummary(q *catalog.Quiz) QuizSummary {
	return QuizSummary{
		ID:             q.ID,
		CourseID:       q.CourseID,
		Title:          q.Title,
		Description:    q.Description,
		PassingScore:   q.PassingScore,
		TimeLimit:      q.TimeLimit,
		TotalQuestions: len(q.Questions),
	}
}

func toProgressSnapshot(p *progress.Progress) ProgressSnapshot {
	return ProgressSnapshot{
		BestScore:     p.BestScore,
		Passed:        p.Passed,
		AttemptsCount: p.AttemptsCount,
	}
}
