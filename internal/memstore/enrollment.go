package memstore

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/learnhub/internal/enrollment"
)

type enrollmentRepository struct {
	s *session
}

func (repo enrollmentRepository) Create(e *enrollment.Enrollment) error {
	return repo.s.do(func(t *tables) error {
		if err := repo.s.fail("enrollment.create"); err != nil {
			return err
		}
		for _, existing := range t.enrollments {
			if existing.ID == e.ID || (existing.UserID == e.UserID && existing.CourseID == e.CourseID) {
				return gorm.ErrDuplicatedKey
			}
		}
		if e.EnrolledAt.IsZero() {
			e.EnrolledAt = repo.s.now()
		}
		t.enrollments[e.ID] = *e
		return nil
	})
}

func (repo enrollmentRepository) FindByUserAndCourse(userID, courseID uuid.UUID) (*enrollment.Enrollment, error) {
	var found *enrollment.Enrollment
	err := repo.s.do(func(t *tables) error {
		if err := repo.s.fail("enrollment.find"); err != nil {
			return err
		}
		for _, e := range t.enrollments {
			if e.UserID == userID && e.CourseID == courseID {
				found = &e
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (repo enrollmentRepository) ListByUser(userID uuid.UUID) ([]enrollment.Enrollment, error) {
	var out []enrollment.Enrollment
	err := repo.s.do(func(t *tables) error {
		for _, e := range t.enrollments {
			if e.UserID == userID {
				out = append(out, e)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].EnrolledAt.Before(out[j].EnrolledAt) })
	return out, err
}
