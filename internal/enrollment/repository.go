package enrollment

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(e *Enrollment) error
	FindByUserAndCourse(userID, courseID uuid.UUID) (*Enrollment, error)
	ListByUser(userID uuid.UUID) ([]Enrollment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(e *Enrollment) error {
	return r.db.Create(e).Error
}

func (r *repository) FindByUserAndCourse(userID, courseID uuid.UUID) (*Enrollment, error) {
	var e Enrollment
	if err := r.db.First(&e, "user_id = ? AND course_id = ?", userID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) ListByUser(userID uuid.UUID) ([]Enrollment, error) {
	var enrollments []Enrollment
	if err := r.db.
		Where("user_id = ?", userID).
		Order("enrolled_at ASC").
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}
