package progress

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saulo-duarte/learnhub/internal/config"
)

type Repository interface {
	Upsert(o Outcome, policy string) error
	FindByUserAndQuiz(userID, quizID uuid.UUID) (*Progress, error)
	ListByUser(userID uuid.UUID) ([]Progress, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// UpsertAssignments builds the conflict update for a dialect: keep the best score, count the
// attempt, move last_attempt forward and set passed according to policy.
func UpsertAssignments(dialect, policy string) map[string]interface{} {
	table := Progress{}.TableName()

	if dialect == config.DriverMySQL {
		passed := gorm.Expr("VALUES(passed)")
		if policy == config.PassPolicyEverPassed {
			passed = gorm.Expr("(passed OR VALUES(passed))")
		}
		return map[string]interface{}{
			"best_score":     gorm.Expr("GREATEST(best_score, VALUES(best_score))"),
			"attempts_count": gorm.Expr("attempts_count + 1"),
			"last_attempt":   gorm.Expr("VALUES(last_attempt)"),
			"passed":         passed,
			"updated_at":     gorm.Expr("VALUES(updated_at)"),
		}
	}

	passed := gorm.Expr("EXCLUDED.passed")
	if policy == config.PassPolicyEverPassed {
		passed = gorm.Expr(fmt.Sprintf("(%s.passed OR EXCLUDED.passed)", table))
	}
	return map[string]interface{}{
		"best_score":     gorm.Expr(fmt.Sprintf("GREATEST(%s.best_score, EXCLUDED.best_score)", table)),
		"attempts_count": gorm.Expr(fmt.Sprintf("%s.attempts_count + 1", table)),
		"last_attempt":   gorm.Expr("EXCLUDED.last_attempt"),
		"passed":         passed,
		"updated_at":     gorm.Expr("EXCLUDED.updated_at"),
	}
}

func (r *repository) Upsert(o Outcome, policy string) error {
	row := Progress{
		ID:            uuid.New(),
		UserID:        o.UserID,
		QuizID:        o.QuizID,
		CourseID:      o.CourseID,
		BestScore:     o.Percentage,
		Passed:        o.Passed,
		AttemptsCount: 1,
		LastAttempt:   o.At,
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "quiz_id"}},
		DoUpdates: clause.Assignments(UpsertAssignments(r.db.Dialector.Name(), policy)),
	}).Create(&row).Error
}

func (r *repository) FindByUserAndQuiz(userID, quizID uuid.UUID) (*Progress, error) {
	var p Progress
	if err := r.db.First(&p, "user_id = ? AND quiz_id = ?", userID, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByUser(userID uuid.UUID) ([]Progress, error) {
	var rows []Progress
	if err := r.db.
		Where("user_id = ?", userID).
		Order("last_attempt DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
