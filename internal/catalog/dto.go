package catalog

import "github.com/google/uuid"

type CreateCourseDTO struct {
	Title          string `json:"title" validate:"notblank,max=255"`
	Description    string `json:"description"`
	InstructorName string `json:"instructor_name" validate:"notblank,max=255"`
}

type CreateQuizDTO struct {
	Title        string `json:"title" validate:"notblank,max=255"`
	Description  string `json:"description"`
	PassingScore *int   `json:"passing_score" validate:"omitempty,min=1,max=100"`
	TimeLimit    *int   `json:"time_limit" validate:"omitempty,min=0"`
}

type UpdateQuizDTO struct {
	Title        *string `json:"title" validate:"omitempty,notblank,max=255"`
	Description  *string `json:"description"`
	PassingScore *int    `json:"passing_score" validate:"omitempty,min=1,max=100"`
	TimeLimit    *int    `json:"time_limit" validate:"omitempty,min=0"`
}

type OptionDTO struct {
	Text      string `json:"text" validate:"notblank"`
	IsCorrect bool   `json:"is_correct"`
}

// AddQuestionDTO describes a new question. True/false questions take CorrectAnswer and ignore Options.
type AddQuestionDTO struct {
	Text          string       `json:"text" validate:"notblank"`
	Type          QuestionType `json:"type" validate:"required,oneof=multiple_choice true_false"`
	Points        int          `json:"points" validate:"omitempty,min=1"`
	Options       []OptionDTO  `json:"options" validate:"omitempty,dive"`
	CorrectAnswer *bool        `json:"correct_answer"`
}

// QuizOverview is the student-facing view of a quiz: settings only, no questions.
type QuizOverview struct {
	ID             uuid.UUID `json:"id"`
	CourseID       uuid.UUID `json:"course_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PassingScore   int       `json:"passing_score"`
	TimeLimit      int       `json:"time_limit"`
	TotalQuestions int       `json:"total_questions"`
}

func ToQuizOverview(q *Quiz) QuizOverview {
	return QuizOverview{
		ID:             q.ID,
		CourseID:       q.CourseID,
		Title:          q.Title,
		Description:    q.Description,
		PassingScore:   q.PassingScore,
		TimeLimit:      q.TimeLimit,
		TotalQuestions: q.TotalQuestions,
	}
}
