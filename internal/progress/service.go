package progress

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/learnhub/internal/apperror"
	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/config"
)

var errRowMissing = errors.New("progress row missing after upsert")

// Recorder folds outcomes into Progress through a repository that may be bound to the caller's transaction.
type Recorder struct {
	Policy string
}

func (r Recorder) Record(repo Repository, o Outcome) (*Progress, error) {
	if err := repo.Upsert(o, r.Policy); err != nil {
		return nil, err
	}
	p, err := repo.FindByUserAndQuiz(o.UserID, o.QuizID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errRowMissing
	}
	return p, nil
}

type Service interface {
	RecordOutcome(ctx context.Context, o Outcome) (*Progress, error)
	Get(ctx context.Context, identity auth.Identity, quizID uuid.UUID) (*Progress, error)
	ListByUser(ctx context.Context, identity auth.Identity) ([]Progress, error)
}

type service struct {
	store    Store
	recorder Recorder
}

func NewService(store Store, recorder Recorder) Service {
	return &service{store: store, recorder: recorder}
}

func (s *service) RecordOutcome(ctx context.Context, o Outcome) (*Progress, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id": o.UserID,
		"quiz_id": o.QuizID,
	})

	if o.Percentage < 0 || o.Percentage > 100 {
		return nil, apperror.Invalid("percentage must be between 0 and 100")
	}

	var p *Progress
	err := s.store.Transaction(ctx, func(tx Store) error {
		var err error
		p, err = s.recorder.Record(tx.Progress(), o)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to record outcome")
		return nil, apperror.Unavailable(err)
	}

	log.WithFields(logrus.Fields{
		"best_score":     p.BestScore,
		"passed":         p.Passed,
		"attempts_count": p.AttemptsCount,
	}).Info("Progress updated")
	return p, nil
}

// Get returns the caller's progress on a quiz, or nil when there is no graded attempt yet.
func (s *service) Get(ctx context.Context, identity auth.Identity, quizID uuid.UUID) (*Progress, error) {
	var p *Progress
	err := s.store.Transaction(ctx, func(tx Store) error {
		var err error
		p, err = tx.Progress().FindByUserAndQuiz(identity.UserID, quizID)
		return err
	})
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	return p, nil
}

func (s *service) ListByUser(ctx context.Context, identity auth.Identity) ([]Progress, error) {
	var rows []Progress
	err := s.store.Transaction(ctx, func(tx Store) error {
		var err error
		rows, err = tx.Progress().ListByUser(identity.UserID)
		return err
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list progress")
		return nil, apperror.Unavailable(err)
	}
	return rows, nil
}
