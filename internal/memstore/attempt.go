package memstore

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/learnhub/internal/attempt"
)

type attemptRepository struct {
	s *session
}

func (repo attemptRepository) Create(a *attempt.Attempt) error {
	return repo.s.do(func(t *tables) error {
		if err := repo.s.fail("attempt.create"); err != nil {
			return err
		}
		if _, ok := t.attempts[a.ID]; ok {
			return gorm.ErrDuplicatedKey
		}
		a.CreatedAt = repo.s.now()
		t.attempts[a.ID] = *a
		return nil
	})
}

func (repo attemptRepository) FindByID(id uuid.UUID) (*attempt.Attempt, error) {
	var found *attempt.Attempt
	err := repo.s.do(func(t *tables) error {
		if err := repo.s.fail("attempt.find"); err != nil {
			return err
		}
		if a, ok := t.attempts[id]; ok {
			found = &a
		}
		return nil
	})
	return found, err
}

func (repo attemptRepository) Finalize(a *attempt.Attempt) (bool, error) {
	var finalized bool
	err := repo.s.do(func(t *tables) error {
		if err := repo.s.fail("attempt.finalize"); err != nil {
			return err
		}
		row, ok := t.attempts[a.ID]
		if !ok || row.CompletedAt != nil {
			return nil
		}
		completed := *a.CompletedAt
		row.CompletedAt = &completed
		row.TimeTakenSeconds = a.TimeTakenSeconds
		row.TotalScore = a.TotalScore
		row.MaxScore = a.MaxScore
		row.Percentage = a.Percentage
		row.Passed = a.Passed
		t.attempts[a.ID] = row
		finalized = true
		return nil
	})
	return finalized, err
}

func (repo attemptRepository) SaveAnswers(answers []attempt.Answer) error {
	return repo.s.do(func(t *tables) error {
		if err := repo.s.fail("attempt.save_answers"); err != nil {
			return err
		}
		for _, ans := range answers {
			if _, ok := t.answers[ans.ID]; ok {
				return gorm.ErrDuplicatedKey
			}
		}
		for _, ans := range answers {
			t.answers[ans.ID] = ans
		}
		return nil
	})
}

func (repo attemptRepository) ListAnswers(attemptID uuid.UUID) ([]attempt.Answer, error) {
	var out []attempt.Answer
	err := repo.s.do(func(t *tables) error {
		for _, ans := range t.answers {
			if ans.AttemptID == attemptID {
				out = append(out, ans)
			}
		}
		return nil
	})
	return out, err
}

func (repo attemptRepository) ListByUserAndQuiz(userID, quizID uuid.UUID) ([]attempt.Attempt, error) {
	var out []attempt.Attempt
	err := repo.s.do(func(t *tables) error {
		for _, a := range t.attempts {
			if a.UserID == userID && a.QuizID == quizID {
				out = append(out, a)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, err
}
