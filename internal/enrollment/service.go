package enrollment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/saulo-duarte/learnhub/internal/apperror"
	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/config"
)

type Service interface {
	IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	Enroll(ctx context.Context, identity auth.Identity, courseID uuid.UUID) (*Enrollment, error)
	ListByUser(ctx context.Context, identity auth.Identity) ([]Enrollment, error)
}

type service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	var enrolled bool
	err := s.store.Transaction(ctx, func(tx Store) error {
		e, err := tx.Enrollments().FindByUserAndCourse(userID, courseID)
		enrolled = e != nil
		return err
	})
	if err != nil {
		return false, apperror.Unavailable(err)
	}
	return enrolled, nil
}

// Enroll registers the caller in a course. Enrolling twice returns the existing row.
func (s *service) Enroll(ctx context.Context, identity auth.Identity, courseID uuid.UUID) (*Enrollment, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id":   identity.UserID,
		"course_id": courseID,
	})

	var result *Enrollment
	err := s.store.Transaction(ctx, func(tx Store) error {
		course, err := tx.Catalog().FindCourseByID(courseID)
		if err != nil {
			return err
		}
		if course == nil {
			return apperror.ErrCourseNotFound
		}

		existing, err := tx.Enrollments().FindByUserAndCourse(identity.UserID, courseID)
		if err != nil {
			return err
		}
		if existing != nil {
			result = existing
			return nil
		}

		e := &Enrollment{
			ID:         uuid.New(),
			UserID:     identity.UserID,
			CourseID:   courseID,
			EnrolledAt: s.now(),
		}
		if err := tx.Enrollments().Create(e); err != nil {
			return err
		}
		result = e
		return nil
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = s.store.Transaction(ctx, func(tx Store) error {
			existing, ferr := tx.Enrollments().FindByUserAndCourse(identity.UserID, courseID)
			result = existing
			return ferr
		})
	}
	if err != nil {
		if apperror.Recoverable(err) {
			log.WithError(err).Warn("Enrollment refused")
		} else {
			log.WithError(err).Error("Failed to enroll user")
		}
		return nil, apperror.Unavailable(err)
	}

	log.Info("User enrolled")
	return result, nil
}

func (s *service) ListByUser(ctx context.Context, identity auth.Identity) ([]Enrollment, error) {
	var enrollments []Enrollment
	err := s.store.Transaction(ctx, func(tx Store) error {
		var err error
		enrollments, err = tx.Enrollments().ListByUser(identity.UserID)
		return err
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list enrollments")
		return nil, apperror.Unavailable(err)
	}
	return enrollments, nil
}
