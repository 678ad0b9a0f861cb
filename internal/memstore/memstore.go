// Package memstore keeps every repository in process memory. A transaction holds the store lock for
// its whole duration and restores a snapshot when it fails, so it behaves like a serializable
// database for tests and for DB_DRIVER=memory.
package memstore

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/learnhub/internal/attempt"
	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/certificate"
	"github.com/saulo-duarte/learnhub/internal/enrollment"
	"github.com/saulo-duarte/learnhub/internal/progress"
	"github.com/saulo-duarte/learnhub/internal/user"
)

type tables struct {
	users        map[uuid.UUID]user.User
	courses      map[uuid.UUID]catalog.Course
	quizzes      map[uuid.UUID]catalog.Quiz
	questions    map[uuid.UUID]catalog.Question
	options      map[uuid.UUID]catalog.Option
	enrollments  map[uuid.UUID]enrollment.Enrollment
	progress     map[uuid.UUID]progress.Progress
	attempts     map[uuid.UUID]attempt.Attempt
	answers      map[uuid.UUID]attempt.Answer
	certificates map[uuid.UUID]certificate.Certificate
}

func newTables() *tables {
	return &tables{
		users:        map[uuid.UUID]user.User{},
		courses:      map[uuid.UUID]catalog.Course{},
		quizzes:      map[uuid.UUID]catalog.Quiz{},
		questions:    map[uuid.UUID]catalog.Question{},
		options:      map[uuid.UUID]catalog.Option{},
		enrollments:  map[uuid.UUID]enrollment.Enrollment{},
		progress:     map[uuid.UUID]progress.Progress{},
		attempts:     map[uuid.UUID]attempt.Attempt{},
		answers:      map[uuid.UUID]attempt.Answer{},
		certificates: map[uuid.UUID]certificate.Certificate{},
	}
}

// clone copies every table. Rows are stored by value and replaced on write, never mutated in place.
func (t *tables) clone() *tables {
	return &tables{
		users:        maps.Clone(t.users),
		courses:      maps.Clone(t.courses),
		quizzes:      maps.Clone(t.quizzes),
		questions:    maps.Clone(t.questions),
		options:      maps.Clone(t.options),
		enrollments:  maps.Clone(t.enrollments),
		progress:     maps.Clone(t.progress),
		attempts:     maps.Clone(t.attempts),
		answers:      maps.Clone(t.answers),
		certificates: maps.Clone(t.certificates),
	}
}

type DB struct {
	mu       sync.Mutex
	t        *tables
	failures map[string]error

	NowFunc func() time.Time // mockable
}

func New() *DB {
	return &DB{
		t:        newTables(),
		failures: map[string]error{},
		NowFunc:  time.Now,
	}
}

// InjectFailure makes the next call to the named operation (for example "progress.upsert") fail with err.
func (db *DB) InjectFailure(op string, err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.failures[op] = err
}

// session is a handle on the tables. Inside a transaction the lock is already held.
type session struct {
	db   *DB
	inTx bool
}

func (s *session) do(fn func(t *tables) error) error {
	if !s.inTx {
		s.db.mu.Lock()
		defer s.db.mu.Unlock()
	}
	return fn(s.db.t)
}

func (s *session) fail(op string) error {
	if err, ok := s.db.failures[op]; ok {
		delete(s.db.failures, op)
		return err
	}
	return nil
}

func (s *session) now() time.Time {
	return s.db.NowFunc()
}

func (s *session) transaction(ctx context.Context, fn func(s *session) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	snapshot := s.db.t.clone()
	committed := false
	defer func() {
		if !committed {
			s.db.t = snapshot
		}
	}()

	if err := fn(&session{db: s.db, inTx: true}); err != nil {
		return err
	}
	committed = true
	return nil
}

func (db *DB) root() *session { return &session{db: db} }
