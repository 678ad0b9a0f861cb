package catalog

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the question bank. Lookups return (nil, nil) when nothing matches.
type Repository interface {
	CreateCourse(c *Course) error
	FindCourseByID(id uuid.UUID) (*Course, error)
	ListCourses(search string) ([]Course, error)
	SetCourseHasQuiz(courseID uuid.UUID, hasQuiz bool) error

	CreateQuiz(q *Quiz) error
	FindQuizByID(id uuid.UUID) (*Quiz, error)
	FindQuizWithQuestions(id uuid.UUID) (*Quiz, error)
	FindActiveQuizByCourse(courseID uuid.UUID) (*Quiz, error)
	ListQuizzesByCourse(courseID uuid.UUID) ([]Quiz, error)
	UpdateQuiz(q *Quiz) error

	CreateQuestion(q *Question) error
	IncrementQuestionCount(quizID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateCourse(c *Course) error {
	return r.db.Create(c).Error
}

func (r *repository) FindCourseByID(id uuid.UUID) (*Course, error) {
	var c Course
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// ListCourses returns the newest courses first, filtered on title, description or instructor when
// search is set.
func (r *repository) ListCourses(search string) ([]Course, error) {
	var courses []Course
	q := r.db.Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("title LIKE ? OR description LIKE ? OR instructor_name LIKE ?", like, like, like)
	}
	if err := q.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *repository) SetCourseHasQuiz(courseID uuid.UUID, hasQuiz bool) error {
	return r.db.Model(&Course{}).Where("id = ?", courseID).Update("has_quiz", hasQuiz).Error
}

func (r *repository) CreateQuiz(q *Quiz) error {
	return r.db.Omit("Questions").Create(q).Error
}

func (r *repository) FindQuizByID(id uuid.UUID) (*Quiz, error) {
	var q Quiz
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) FindQuizWithQuestions(id uuid.UUID) (*Quiz, error) {
	var q Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) FindActiveQuizByCourse(courseID uuid.UUID) (*Quiz, error) {
	var q Quiz
	err := r.db.
		Where("course_id = ? AND is_active = ?", courseID, true).
		Order("created_at DESC").
		First(&q).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) ListQuizzesByCourse(courseID uuid.UUID) ([]Quiz, error) {
	var quizzes []Quiz
	if err := r.db.
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *repository) UpdateQuiz(q *Quiz) error {
	return r.db.Model(&Quiz{}).Where("id = ?", q.ID).Updates(map[string]interface{}{
		"title":         q.Title,
		"description":   q.Description,
		"passing_score": q.PassingScore,
		"time_limit":    q.TimeLimit,
		"is_active":     q.IsActive,
	}).Error
}

func (r *repository) CreateQuestion(q *Question) error {
	return r.db.Create(q).Error
}

func (r *repository) IncrementQuestionCount(quizID uuid.UUID) error {
	return r.db.Model(&Quiz{}).
		Where("id = ?", quizID).
		UpdateColumn("total_questions", gorm.Expr("total_questions + ?", 1)).Error
}
