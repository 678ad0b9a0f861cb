package enrollment

import (
	"context"

	"gorm.io/gorm"

	"github.com/saulo-duarte/learnhub/internal/catalog"
)

type Store interface {
	Enrollments() Repository
	Catalog() catalog.Repository
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Enrollments() Repository { return NewRepository(s.db) }
func (s *gormStore) Catalog() catalog.Repository { return catalog.NewRepository(s.db) }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
