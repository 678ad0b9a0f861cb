package certificate

import (
	"context"

	"gorm.io/gorm"

	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/enrollment"
	"github.com/saulo-duarte/learnhub/internal/progress"
	"github.com/saulo-duarte/learnhub/internal/user"
)

type Store interface {
	Certificates() Repository
	Catalog() catalog.Repository
	Enrollments() enrollment.Repository
	Progress() progress.Repository
	Users() user.Repository
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Certificates() Repository { return NewRepository(s.db) }
func (s *gormStore) Catalog() catalog.Repository { return catalog.NewRepository(s.db) }
func (s *gormStore) Enrollments() enrollment.Repository { return enrollment.NewRepository(s.db) }
func (s *gormStore) Progress() progress.Repository { return progress.NewRepository(s.db) }
func (s *gormStore) Users() user.Repository { return user.NewRepository(s.db) }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
