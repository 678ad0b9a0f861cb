package certificate

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Certificate) error
	FindByUserAndCourse(userID, courseID uuid.UUID) (*Certificate, error)
	FindByCode(code string) (*Certificate, error)
	ListByUser(userID uuid.UUID) ([]Certificate, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *Certificate) error {
	return r.db.Create(c).Error
}

func (r *repository) first(where string, args ...interface{}) (*Certificate, error) {
	var c Certificate
	if err := r.db.Where(where, args...).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByUserAndCourse(userID, courseID uuid.UUID) (*Certificate, error) {
	return r.first("user_id = ? AND course_id = ?", userID, courseID)
}

func (r *repository) FindByCode(code string) (*Certificate, error) {
	return r.first("code = ?", code)
}

func (r *repository) ListByUser(userID uuid.UUID) ([]Certificate, error) {
	var certs []Certificate
	if err := r.db.Where("user_id = ?", userID).Order("issued_at DESC").Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}
