package certificate

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/saulo-duarte/learnhub/internal/apperror"
	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/config"
	"github.com/saulo-duarte/learnhub/internal/enrollment"
	"github.com/saulo-duarte/learnhub/internal/metrics"
	util "github.com/saulo-duarte/learnhub/internal/utils"
)

// TokenCodec seals certificate codes into opaque verification tokens.
type TokenCodec interface {
	Encrypt(text string) (string, error)
	Decrypt(encoded string) (string, error)
}

type Service interface {
	ListCertificates(ctx context.Context, identity auth.Identity) ([]Entry, error)
	GenerateCertificate(ctx context.Context, identity auth.Identity, courseID uuid.UUID) (*IssuedCertificate, error)
	Verify(ctx context.Context, token string) (*Entry, error)
}

type service struct {
	store Store
	codec TokenCodec
	now   func() time.Time
}

func NewService(store Store, codec TokenCodec, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{store: store, codec: codec, now: now}
}

func studentName(tx Store, userID uuid.UUID) (string, error) {
	u, err := tx.Users().FindByID(userID)
	if err != nil || u == nil {
		return "", err
	}
	return u.Name, nil
}

func baseEntry(course *catalog.Course, quiz *catalog.Quiz, e *enrollment.Enrollment, name string) Entry {
	return Entry{
		Status:         StatusCompleted,
		CourseID:       course.ID,
		CourseTitle:    course.Title,
		InstructorName: course.InstructorName,
		QuizID:         quiz.ID,
		QuizTitle:      quiz.Title,
		StudentName:    name,
		EnrollmentDate: util.DateOf(e.EnrolledAt),
	}
}

// issuedEntry describes a persisted certificate. The completion date comes from the last graded
// attempt on the certified quiz, or the issue time when that progress row is gone.
func issuedEntry(tx Store, cert *Certificate, name string) (*Entry, error) {
	course, err := tx.Catalog().FindCourseByID(cert.CourseID)
	if err != nil {
		return nil, err
	}
	quiz, err := tx.Catalog().FindQuizByID(cert.QuizID)
	if err != nil {
		return nil, err
	}
	e, err := tx.Enrollments().FindByUserAndCourse(cert.UserID, cert.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil || quiz == nil || e == nil {
		return nil, apperror.ErrCertificateNotFound
	}
	p, err := tx.Progress().FindByUserAndQuiz(cert.UserID, cert.QuizID)
	if err != nil {
		return nil, err
	}

	entry := baseEntry(course, quiz, e, name)
	entry.CertificateID = cert.Code
	entry.Status = StatusIssued
	entry.Score = cert.Score
	issuedAt := cert.IssuedAt
	entry.IssuedAt = &issuedAt
	entry.CompletionDate = util.DateOf(cert.IssuedAt)
	if p != nil {
		entry.CompletionDate = util.DateOf(p.LastAttempt)
	}
	return &entry, nil
}

// ListCertificates lists, for every course the caller is enrolled in, the issued certificate or the
// passed active quiz that makes one available.
func (s *service) ListCertificates(ctx context.Context, identity auth.Identity) ([]Entry, error) {
	log := config.WithContext(ctx).WithField("user_id", identity.UserID)

	entries := []Entry{}
	err := s.store.Transaction(ctx, func(tx Store) error {
		name, err := studentName(tx, identity.UserID)
		if err != nil {
			return err
		}

		certs, err := tx.Certificates().ListByUser(identity.UserID)
		if err != nil {
			return err
		}
		issued := make(map[uuid.UUID]*Certificate, len(certs))
		for i := range certs {
			issued[certs[i].CourseID] = &certs[i]
		}

		enrollments, err := tx.Enrollments().ListByUser(identity.UserID)
		if err != nil {
			return err
		}

		for i := range enrollments {
			e := &enrollments[i]

			if cert, ok := issued[e.CourseID]; ok {
				entry, err := issuedEntry(tx, cert, name)
				if errors.Is(err, apperror.ErrCertificateNotFound) {
					continue
				}
				if err != nil {
					return err
				}
				entries = append(entries, *entry)
				continue
			}

			course, err := tx.Catalog().FindCourseByID(e.CourseID)
			if err != nil {
				return err
			}
			if course == nil {
				continue
			}
			quiz, err := tx.Catalog().FindActiveQuizByCourse(e.CourseID)
			if err != nil {
				return err
			}
			if quiz == nil {
				continue
			}
			p, err := tx.Progress().FindByUserAndQuiz(identity.UserID, quiz.ID)
			if err != nil {
				return err
			}
			if p == nil || !p.Passed {
				continue
			}

			entry := baseEntry(course, quiz, e, name)
			entry.CompletionDate = util.DateOf(p.LastAttempt)
			entry.Score = p.BestScore
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to list certificates")
		return nil, apperror.Unavailable(err)
	}
	return entries, nil
}

func (s *service) issue(ctx context.Context, identity auth.Identity, courseID uuid.UUID) (*Entry, bool, error) {
	var (
		entry   *Entry
		created bool
	)
	err := s.store.Transaction(ctx, func(tx Store) error {
		course, err := tx.Catalog().FindCourseByID(courseID)
		if err != nil {
			return err
		}
		if course == nil {
			return apperror.ErrCourseNotFound
		}

		e, err := tx.Enrollments().FindByUserAndCourse(identity.UserID, courseID)
		if err != nil {
			return err
		}
		if e == nil {
			return apperror.ErrNotEnrolled
		}

		name, err := studentName(tx, identity.UserID)
		if err != nil {
			return err
		}

		existing, err := tx.Certificates().FindByUserAndCourse(identity.UserID, courseID)
		if err != nil {
			return err
		}
		if existing != nil {
			entry, err = issuedEntry(tx, existing, name)
			return err
		}

		quiz, err := tx.Catalog().FindActiveQuizByCourse(courseID)
		if err != nil {
			return err
		}
		if quiz == nil {
			return apperror.ErrQuizNotPassed
		}
		p, err := tx.Progress().FindByUserAndQuiz(identity.UserID, quiz.ID)
		if err != nil {
			return err
		}
		if p == nil || !p.Passed {
			return apperror.ErrQuizNotPassed
		}

		now := s.now()
		cert := &Certificate{
			ID:       uuid.New(),
			Code:     Code(courseID, identity.UserID, now),
			UserID:   identity.UserID,
			CourseID: courseID,
			QuizID:   quiz.ID,
			Score:    p.BestScore,
			IssuedAt: now,
		}
		if err := tx.Certificates().Create(cert); err != nil {
			return err
		}
		created = true

		entry, err = issuedEntry(tx, cert, name)
		return err
	})
	return entry, created, err
}

func (s *service) lookup(ctx context.Context, identity auth.Identity, courseID uuid.UUID) (*Entry, error) {
	var entry *Entry
	err := s.store.Transaction(ctx, func(tx Store) error {
		cert, err := tx.Certificates().FindByUserAndCourse(identity.UserID, courseID)
		if err != nil {
			return err
		}
		if cert == nil {
			return apperror.ErrCertificateNotFound
		}
		name, err := studentName(tx, identity.UserID)
		if err != nil {
			return err
		}
		entry, err = issuedEntry(tx, cert, name)
		return err
	})
	return entry, err
}

// GenerateCertificate issues the caller's certificate for a course on first call and returns the
// same certificate on every later call.
func (s *service) GenerateCertificate(ctx context.Context, identity auth.Identity, courseID uuid.UUID) (*IssuedCertificate, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id":   identity.UserID,
		"course_id": courseID,
	})

	entry, created, err := s.issue(ctx, identity, courseID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		created = false
		entry, err = s.lookup(ctx, identity, courseID)
	}
	if err != nil {
		if apperror.Recoverable(err) {
			metrics.Refusals.WithLabelValues("certificate", string(apperror.KindOf(err))).Inc()
			log.WithError(err).Warn("Certificate refused")
		} else {
			log.WithError(err).Error("Failed to generate certificate")
		}
		return nil, apperror.Unavailable(err)
	}

	token, err := s.codec.Encrypt(entry.CertificateID)
	if err != nil {
		log.WithError(err).Error("Failed to seal verification token")
		return nil, apperror.Unavailable(err)
	}

	if created {
		metrics.CertificatesIssued.Inc()
		log.WithField("certificate_id", entry.CertificateID).Info("Certificate issued")
	}
	return &IssuedCertificate{Entry: *entry, VerificationToken: token}, nil
}

// Verify resolves a verification token to the public certificate entry.
func (s *service) Verify(ctx context.Context, token string) (*Entry, error) {
	log := config.WithContext(ctx)

	code, err := s.codec.Decrypt(token)
	if err != nil {
		log.WithError(err).Warn("Unreadable verification token")
		return nil, apperror.ErrCertificateNotFound
	}

	var entry *Entry
	err = s.store.Transaction(ctx, func(tx Store) error {
		cert, err := tx.Certificates().FindByCode(code)
		if err != nil {
			return err
		}
		if cert == nil {
			return apperror.ErrCertificateNotFound
		}
		name, err := studentName(tx, cert.UserID)
		if err != nil {
			return err
		}
		entry, err = issuedEntry(tx, cert, name)
		return err
	})
	if err != nil {
		if !apperror.Recoverable(err) {
			log.WithError(err).Error("Failed to verify certificate")
		}
		return nil, apperror.Unavailable(err)
	}
	return entry, nil
}
