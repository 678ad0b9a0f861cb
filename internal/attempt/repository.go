package attempt

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(a *Attempt) error
	FindByID(id uuid.UUID) (*Attempt, error)
	// Finalize writes the grading columns only while the attempt is still in progress.
	// It reports false when another grading got there first.
	Finalize(a *Attempt) (bool, error)
	SaveAnswers(answers []Answer) error
	ListAnswers(attemptID uuid.UUID) ([]Answer, error)
	ListByUserAndQuiz(userID, quizID uuid.UUID) ([]Attempt, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(a *Attempt) error {
	return r.db.Create(a).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Attempt, error) {
	var a Attempt
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) Finalize(a *Attempt) (bool, error) {
	res := r.db.Model(&Attempt{}).
		Where("id = ? AND completed_at IS NULL", a.ID).
		Updates(map[string]interface{}{
			"completed_at":       a.CompletedAt,
			"time_taken_seconds": a.TimeTakenSeconds,
			"total_score":        a.TotalScore,
			"max_score":          a.MaxScore,
			"percentage":         a.Percentage,
			"passed":             a.Passed,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) SaveAnswers(answers []Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.Create(&answers).Error
}

func (r *repository) ListAnswers(attemptID uuid.UUID) ([]Answer, error) {
	var answers []Answer
	if err := r.db.Where("attempt_id = ?", attemptID).Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *repository) ListByUserAndQuiz(userID, quizID uuid.UUID) ([]Attempt, error) {
	var attempts []Attempt
	if err := r.db.
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("started_at DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}
