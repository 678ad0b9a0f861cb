package memstore

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/learnhub/internal/user"
)

type userRepository struct {
	s *session
}

func (repo userRepository) Create(u *user.User) error {
	return repo.s.do(func(t *tables) error {
		if err := repo.s.fail("user.create"); err != nil {
			return err
		}
		for _, existing := range t.users {
			if existing.ID == u.ID || existing.Email == u.Email {
				return gorm.ErrDuplicatedKey
			}
		}
		now := repo.s.now()
		if u.CreatedAt.IsZero() {
			u.CreatedAt = now
		}
		u.UpdatedAt = now
		t.users[u.ID] = *u
		return nil
	})
}

func (repo userRepository) FindByID(id uuid.UUID) (*user.User, error) {
	var found *user.User
	err := repo.s.do(func(t *tables) error {
		if err := repo.s.fail("user.find"); err != nil {
			return err
		}
		if u, ok := t.users[id]; ok {
			found = &u
		}
		return nil
	})
	return found, err
}
