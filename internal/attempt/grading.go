package attempt

import (
	"math"

	"github.com/google/uuid"

	"github.com/saulo-duarte/learnhub/internal/catalog"
)

// Submission maps a question id to the selected option id.
type Submission map[uuid.UUID]uuid.UUID

type Result struct {
	TotalScore int
	MaxScore   int
	Percentage float64
	Passed     bool
	Answers    []Answer
}

// Percentage is 100*raw/max rounded to two decimals, and 0 when max is 0.
func Percentage(raw, max int) float64 {
	if max <= 0 {
		return 0
	}
	p := 100 * float64(raw) / float64(max)
	return math.Round(p*100) / 100
}

func orderedQuestions(quiz *catalog.Quiz, order []uuid.UUID) []catalog.Question {
	if len(order) == 0 {
		return quiz.Questions
	}
	out := make([]catalog.Question, 0, len(order))
	seen := make(map[uuid.UUID]bool, len(order))
	for _, id := range order {
		if seen[id] {
			continue
		}
		seen[id] = true
		if q := quiz.Question(id); q != nil {
			out = append(out, *q)
		}
	}
	return out
}

// Grade scores a submission against the stored correctness flags, weighting each question by its
// points. Only the questions in order are graded; an empty order grades the whole quiz. An option
// that does not belong to its question counts as unanswered.
func Grade(quiz *catalog.Quiz, order []uuid.UUID, submitted Submission) Result {
	var res Result

	for _, q := range orderedQuestions(quiz, order) {
		res.MaxScore += q.Points

		ans := Answer{QuestionID: q.ID}
		if optID, ok := submitted[q.ID]; ok {
			if opt := q.Option(optID); opt != nil {
				selected := opt.ID
				ans.SelectedOptionID = &selected
				if opt.IsCorrect {
					ans.IsCorrect = true
					ans.PointsEarned = q.Points
					res.TotalScore += q.Points
				}
			}
		}
		res.Answers = append(res.Answers, ans)
	}

	res.Percentage = Percentage(res.TotalScore, res.MaxScore)
	res.Passed = res.Percentage >= float64(quiz.PassingScore)
	return res
}
