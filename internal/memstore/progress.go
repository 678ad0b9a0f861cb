package memstore

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/saulo-duarte/learnhub/internal/config"
	"github.com/saulo-duarte/learnhub/internal/progress"
)

type progressRepository struct {
	s *session
}

// Upsert applies the same column rules as the SQL conflict clause in progress.UpsertAssignments.
func (repo progressRepository) Upsert(o progress.Outcome, policy string) error {
	return repo.s.do(func(t *tables) error {
		if err := repo.s.fail("progress.upsert"); err != nil {
			return err
		}
		now := repo.s.now()
		for id, p := range t.progress {
			if p.UserID != o.UserID || p.QuizID != o.QuizID {
				continue
			}
			p.BestScore = math.Max(p.BestScore, o.Percentage)
			p.AttemptsCount++
			p.LastAttempt = o.At
			if policy == config.PassPolicyEverPassed {
				p.Passed = p.Passed || o.Passed
			} else {
				p.Passed = o.Passed
			}
			p.UpdatedAt = now
			t.progress[id] = p
			return nil
		}

		row := progress.Progress{
			ID:            uuid.New(),
			UserID:        o.UserID,
			QuizID:        o.QuizID,
			CourseID:      o.CourseID,
			BestScore:     o.Percentage,
			Passed:        o.Passed,
			AttemptsCount: 1,
			LastAttempt:   o.At,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		t.progress[row.ID] = row
		return nil
	})
}

func (repo progressRepository) FindByUserAndQuiz(userID, quizID uuid.UUID) (*progress.Progress, error) {
	var found *progress.Progress
	err := repo.s.do(func(t *tables) error {
		if err := repo.s.fail("progress.find"); err != nil {
			return err
		}
		for _, p := range t.progress {
			if p.UserID == userID && p.QuizID == quizID {
				found = &p
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (repo progressRepository) ListByUser(userID uuid.UUID) ([]progress.Progress, error) {
	var out []progress.Progress
	err := repo.s.do(func(t *tables) error {
		for _, p := range t.progress {
			if p.UserID == userID {
				out = append(out, p)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].LastAttempt.After(out[j].LastAttempt) })
	return out, err
}
