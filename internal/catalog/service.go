package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/learnhub/internal/apperror"
	"github.com/saulo-duarte/learnhub/internal/config"
)

type Service interface {
	CreateCourse(ctx context.Context, dto CreateCourseDTO) (*Course, error)
	GetCourse(ctx context.Context, courseID uuid.UUID) (*Course, error)
	ListCourses(ctx context.Context, search string) ([]Course, error)
	CreateQuiz(ctx context.Context, courseID uuid.UUID, dto CreateQuizDTO) (*Quiz, error)
	AddQuestion(ctx context.Context, quizID uuid.UUID, dto AddQuestionDTO) (*Question, error)
	Publish(ctx context.Context, quizID uuid.UUID) (*Quiz, error)
	UpdateSettings(ctx context.Context, quizID uuid.UUID, dto UpdateQuizDTO) (*Quiz, error)
	Deactivate(ctx context.Context, quizID uuid.UUID) (*Quiz, error)
	GetQuiz(ctx context.Context, quizID uuid.UUID) (*Quiz, error)
	ListQuizzesByCourse(ctx context.Context, courseID uuid.UUID) ([]Quiz, error)
	GetActiveQuizByCourse(ctx context.Context, courseID uuid.UUID) (*Quiz, error)
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) CreateCourse(ctx context.Context, dto CreateCourseDTO) (*Course, error) {
	log := config.WithContext(ctx)

	if err := config.Validate(dto); err != nil {
		return nil, err
	}

	course := &Course{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(dto.Title),
		Description:    dto.Description,
		InstructorName: strings.TrimSpace(dto.InstructorName),
	}

	err := s.store.Transaction(ctx, func(tx Store) error {
		return tx.Catalog().CreateCourse(course)
	})
	if err != nil {
		log.WithError(err).Error("Failed to create course")
		return nil, apperror.Unavailable(err)
	}

	log.WithField("course_id", course.ID).Info("Course created")
	return course, nil
}

func (s *service) GetCourse(ctx context.Context, courseID uuid.UUID) (*Course, error) {
	var course *Course
	err := s.store.Transaction(ctx, func(tx Store) error {
		c, err := tx.Catalog().FindCourseByID(courseID)
		if err != nil {
			return err
		}
		if c == nil {
			return apperror.ErrCourseNotFound
		}
		course = c
		return nil
	})
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	return course, nil
}

func (s *service) ListCourses(ctx context.Context, search string) ([]Course, error) {
	courses := []Course{}
	err := s.store.Transaction(ctx, func(tx Store) error {
		found, err := tx.Catalog().ListCourses(strings.TrimSpace(search))
		if err != nil {
			return err
		}
		courses = append(courses, found...)
		return nil
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list courses")
		return nil, apperror.Unavailable(err)
	}
	return courses, nil
}

// CreateQuiz adds an inactive quiz to a course and flags the course as having one.
func (s *service) CreateQuiz(ctx context.Context, courseID uuid.UUID, dto CreateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx).WithField("course_id", courseID)

	if err := config.Validate(dto); err != nil {
		return nil, err
	}

	quiz := &Quiz{
		ID:           uuid.New(),
		CourseID:     courseID,
		Title:        strings.TrimSpace(dto.Title),
		Description:  dto.Description,
		PassingScore: DefaultPassingScore,
		TimeLimit:    DefaultTimeLimit,
	}
	if dto.PassingScore != nil {
		quiz.PassingScore = *dto.PassingScore
	}
	if dto.TimeLimit != nil {
		quiz.TimeLimit = *dto.TimeLimit
	}

	err := s.store.Transaction(ctx, func(tx Store) error {
		repo := tx.Catalog()

		course, err := repo.FindCourseByID(courseID)
		if err != nil {
			return err
		}
		if course == nil {
			return apperror.ErrCourseNotFound
		}

		if err := repo.CreateQuiz(quiz); err != nil {
			return err
		}
		return repo.SetCourseHasQuiz(courseID, true)
	})
	if err != nil {
		if apperror.Recoverable(err) {
			log.WithError(err).Warn("Quiz not created")
		} else {
			log.WithError(err).Error("Failed to create quiz")
		}
		return nil, apperror.Unavailable(err)
	}

	log.WithField("quiz_id", quiz.ID).Info("Quiz created")
	return quiz, nil
}

func buildQuestion(quizID uuid.UUID, dto AddQuestionDTO) (*Question, error) {
	q := &Question{
		ID:     uuid.New(),
		QuizID: quizID,
		Text:   strings.TrimSpace(dto.Text),
		Type:   dto.Type,
		Points: dto.Points,
	}
	if q.Points == 0 {
		q.Points = 1
	}

	switch dto.Type {
	case TrueFalse:
		if dto.CorrectAnswer == nil {
			return nil, apperror.Invalid("invalid request", apperror.FieldError{
				Field: "correct_answer",
				Error: "correct_answer is required for true_false questions",
			})
		}
		q.Options = []Option{
			{ID: uuid.New(), QuestionID: q.ID, Text: "True", IsCorrect: *dto.CorrectAnswer, Position: 0},
			{ID: uuid.New(), QuestionID: q.ID, Text: "False", IsCorrect: !*dto.CorrectAnswer, Position: 1},
		}
	default:
		if len(dto.Options) < 2 {
			return nil, apperror.Invalid("invalid request", apperror.FieldError{
				Field: "options",
				Error: "at least two options are required",
			})
		}
		correct := 0
		for i, o := range dto.Options {
			if o.IsCorrect {
				correct++
			}
			q.Options = append(q.Options, Option{
				ID:         uuid.New(),
				QuestionID: q.ID,
				Text:       strings.TrimSpace(o.Text),
				IsCorrect:  o.IsCorrect,
				Position:   i,
			})
		}
		if correct != 1 {
			return nil, apperror.Invalid("invalid request", apperror.FieldError{
				Field: "options",
				Error: "exactly one option must be marked correct",
			})
		}
	}
	return q, nil
}

// AddQuestion stores a question with its options and bumps the quiz's question count atomically.
func (s *service) AddQuestion(ctx context.Context, quizID uuid.UUID, dto AddQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx).WithField("quiz_id", quizID)

	if err := config.Validate(dto); err != nil {
		return nil, err
	}
	question, err := buildQuestion(quizID, dto)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx Store) error {
		repo := tx.Catalog()

		quiz, err := repo.FindQuizByID(quizID)
		if err != nil {
			return err
		}
		if quiz == nil {
			return apperror.ErrQuizNotFound
		}

		question.Position = quiz.TotalQuestions
		if err := repo.CreateQuestion(question); err != nil {
			return err
		}
		return repo.IncrementQuestionCount(quizID)
	})
	if err != nil {
		if apperror.Recoverable(err) {
			log.WithError(err).Warn("Question not added")
		} else {
			log.WithError(err).Error("Failed to add question")
		}
		return nil, apperror.Unavailable(err)
	}

	log.WithField("question_id", question.ID).Info("Question added")
	return question, nil
}

func (s *service) mutateQuiz(ctx context.Context, quizID uuid.UUID, action string, fn func(q *Quiz) error) (*Quiz, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"quiz_id": quizID, "action": action})

	var updated *Quiz
	err := s.store.Transaction(ctx, func(tx Store) error {
		repo := tx.Catalog()

		quiz, err := repo.FindQuizByID(quizID)
		if err != nil {
			return err
		}
		if quiz == nil {
			return apperror.ErrQuizNotFound
		}
		if err := fn(quiz); err != nil {
			return err
		}
		if err := repo.UpdateQuiz(quiz); err != nil {
			return err
		}
		updated = quiz
		return nil
	})
	if err != nil {
		if apperror.Recoverable(err) {
			log.WithError(err).Warn("Quiz not updated")
		} else {
			log.WithError(err).Error("Failed to update quiz")
		}
		return nil, apperror.Unavailable(err)
	}

	log.Info("Quiz updated")
	return updated, nil
}

func (s *service) Publish(ctx context.Context, quizID uuid.UUID) (*Quiz, error) {
	return s.mutateQuiz(ctx, quizID, "publish", func(q *Quiz) error {
		if q.TotalQuestions < MinQuestionsToPublish {
			return apperror.ErrNotEnoughQuestions
		}
		q.IsActive = true
		return nil
	})
}

func (s *service) Deactivate(ctx context.Context, quizID uuid.UUID) (*Quiz, error) {
	return s.mutateQuiz(ctx, quizID, "deactivate", func(q *Quiz) error {
		q.IsActive = false
		return nil
	})
}

func (s *service) UpdateSettings(ctx context.Context, quizID uuid.UUID, dto UpdateQuizDTO) (*Quiz, error) {
	if err := config.Validate(dto); err != nil {
		return nil, err
	}

	return s.mutateQuiz(ctx, quizID, "update", func(q *Quiz) error {
		if dto.Title != nil {
			q.Title = strings.TrimSpace(*dto.Title)
		}
		if dto.Description != nil {
			q.Description = *dto.Description
		}
		if dto.PassingScore != nil {
			q.PassingScore = *dto.PassingScore
		}
		if dto.TimeLimit != nil {
			q.TimeLimit = *dto.TimeLimit
		}
		return nil
	})
}

func (s *service) GetQuiz(ctx context.Context, quizID uuid.UUID) (*Quiz, error) {
	var quiz *Quiz
	err := s.store.Transaction(ctx, func(tx Store) error {
		q, err := tx.Catalog().FindQuizWithQuestions(quizID)
		if err != nil {
			return err
		}
		if q == nil {
			return apperror.ErrQuizNotFound
		}
		quiz = q
		return nil
	})
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	return quiz, nil
}

func (s *service) ListQuizzesByCourse(ctx context.Context, courseID uuid.UUID) ([]Quiz, error) {
	var quizzes []Quiz
	err := s.store.Transaction(ctx, func(tx Store) error {
		var err error
		quizzes, err = tx.Catalog().ListQuizzesByCourse(courseID)
		return err
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list quizzes")
		return nil, apperror.Unavailable(err)
	}
	return quizzes, nil
}

func (s *service) GetActiveQuizByCourse(ctx context.Context, courseID uuid.UUID) (*Quiz, error) {
	var quiz *Quiz
	err := s.store.Transaction(ctx, func(tx Store) error {
		q, err := tx.Catalog().FindActiveQuizByCourse(courseID)
		if err != nil {
			return err
		}
		if q == nil {
			return apperror.ErrQuizNotFound
		}
		quiz = q
		return nil
	})
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	return quiz, nil
}
