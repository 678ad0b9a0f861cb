package memstore

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/learnhub/internal/certificate"
)

type certificateRepository struct {
	s *session
}

func (repo certificateRepository) Create(c *certificate.Certificate) error {
	return repo.s.do(func(t *tables) error {
		if err := repo.s.fail("certificate.create"); err != nil {
			return err
		}
		for _, existing := range t.certificates {
			if existing.ID == c.ID || existing.Code == c.Code ||
				(existing.UserID == c.UserID && existing.CourseID == c.CourseID) {
				return gorm.ErrDuplicatedKey
			}
		}
		c.CreatedAt = repo.s.now()
		t.certificates[c.ID] = *c
		return nil
	})
}

func (repo certificateRepository) first(match func(c certificate.Certificate) bool) (*certificate.Certificate, error) {
	var found *certificate.Certificate
	err := repo.s.do(func(t *tables) error {
		if err := repo.s.fail("certificate.find"); err != nil {
			return err
		}
		for _, c := range t.certificates {
			if match(c) {
				found = &c
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (repo certificateRepository) FindByUserAndCourse(userID, courseID uuid.UUID) (*certificate.Certificate, error) {
	return repo.first(func(c certificate.Certificate) bool {
		return c.UserID == userID && c.CourseID == courseID
	})
}

func (repo certificateRepository) FindByCode(code string) (*certificate.Certificate, error) {
	return repo.first(func(c certificate.Certificate) bool { return c.Code == code })
}

func (repo certificateRepository) ListByUser(userID uuid.UUID) ([]certificate.Certificate, error) {
	var out []certificate.Certificate
	err := repo.s.do(func(t *tables) error {
		for _, c := range t.certificates {
			if c.UserID == userID {
				out = append(out, c)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })
	return out, err
}
