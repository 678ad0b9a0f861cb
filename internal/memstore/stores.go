package memstore

import (
	"context"

	"github.com/saulo-duarte/learnhub/internal/attempt"
	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/certificate"
	"github.com/saulo-duarte/learnhub/internal/enrollment"
	"github.com/saulo-duarte/learnhub/internal/progress"
	"github.com/saulo-duarte/learnhub/internal/user"
)

// Root repositories run each call on its own, outside any transaction.
func (db *DB) Users() user.Repository { return userRepository{s: db.root()} }
func (db *DB) Catalog() catalog.Repository { return catalogRepository{s: db.root()} }
func (db *DB) Enrollments() enrollment.Repository { return enrollmentRepository{s: db.root()} }
func (db *DB) Progress() progress.Repository { return progressRepository{s: db.root()} }
func (db *DB) Attempts() attempt.Repository { return attemptRepository{s: db.root()} }

type catalogStore struct{ s *session }

func (db *DB) CatalogStore() catalog.Store { return catalogStore{s: db.root()} }

func (c catalogStore) Catalog() catalog.Repository { return catalogRepository{s: c.s} }

func (c catalogStore) Transaction(ctx context.Context, fn func(tx catalog.Store) error) error {
	return c.s.transaction(ctx, func(s *session) error { return fn(catalogStore{s: s}) })
}

type enrollmentStore struct{ s *session }

func (db *DB) EnrollmentStore() enrollment.Store { return enrollmentStore{s: db.root()} }

func (e enrollmentStore) Enrollments() enrollment.Repository { return enrollmentRepository{s: e.s} }
func (e enrollmentStore) Catalog() catalog.Repository { return catalogRepository{s: e.s} }

func (e enrollmentStore) Transaction(ctx context.Context, fn func(tx enrollment.Store) error) error {
	return e.s.transaction(ctx, func(s *session) error { return fn(enrollmentStore{s: s}) })
}

type progressStore struct{ s *session }

func (db *DB) ProgressStore() progress.Store { return progressStore{s: db.root()} }

func (p progressStore) Progress() progress.Repository { return progressRepository{s: p.s} }

func (p progressStore) Transaction(ctx context.Context, fn func(tx progress.Store) error) error {
	return p.s.transaction(ctx, func(s *session) error { return fn(progressStore{s: s}) })
}

type attemptStore struct{ s *session }

func (db *DB) AttemptStore() attempt.Store { return attemptStore{s: db.root()} }

func (a attemptStore) Attempts() attempt.Repository { return attemptRepository{s: a.s} }
func (a attemptStore) Catalog() catalog.Repository { return catalogRepository{s: a.s} }
func (a attemptStore) Enrollments() enrollment.Repository { return enrollmentRepository{s: a.s} }
func (a attemptStore) Progress() progress.Repository { return progressRepository{s: a.s} }

func (a attemptStore) Transaction(ctx context.Context, fn func(tx attempt.Store) error) error {
	return a.s.transaction(ctx, func(s *session) error { return fn(attemptStore{s: s}) })
}

type certificateStore struct{ s *session }

func (db *DB) CertificateStore() certificate.Store { return certificateStore{s: db.root()} }

func (c certificateStore) Certificates() certificate.Repository { return certificateRepository{s: c.s} }
func (c certificateStore) Catalog() catalog.Repository { return catalogRepository{s: c.s} }
func (c certificateStore) Enrollments() enrollment.Repository { return enrollmentRepository{s: c.s} }
func (c certificateStore) Progress() progress.Repository { return progressRepository{s: c.s} }
func (c certificateStore) Users() user.Repository { return userRepository{s: c.s} }

func (c certificateStore) Transaction(ctx context.Context, fn func(tx certificate.Store) error) error {
	return c.s.transaction(ctx, func(s *session) error { return fn(certificateStore{s: s}) })
}
