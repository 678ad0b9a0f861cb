package attempt

import (
	"context"

	"gorm.io/gorm"

	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/enrollment"
	"github.com/saulo-duarte/learnhub/internal/progress"
)

// Store hands out repositories bound to one unit of work.
type Store interface {
	Attempts() Repository
	Catalog() catalog.Repository
	Enrollments() enrollment.Repository
	Progress() progress.Repository
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Attempts() Repository { return NewRepository(s.db) }
func (s *gormStore) Catalog() catalog.Repository { return catalog.NewRepository(s.db) }
func (s *gormStore) Enrollments() enrollment.Repository { return enrollment.NewRepository(s.db) }
func (s *gormStore) Progress() progress.Repository { return progress.NewRepository(s.db) }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
