package memstore

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/learnhub/internal/catalog"
)

type catalogRepository struct {
	s *session
}

func (repo catalogRepository) CreateCourse(c *catalog.Course) error {
	return repo.s.do(func(t *tables) error {
		if err := repo.s.fail("catalog.create_course"); err != nil {
			return err
		}
		if _, ok := t.courses[c.ID]; ok {
			return gorm.ErrDuplicatedKey
		}
		now := repo.s.now()
		c.CreatedAt, c.UpdatedAt = now, now
		t.courses[c.ID] = *c
		return nil
	})
}

func (repo catalogRepository) FindCourseByID(id uuid.UUID) (*catalog.Course, error) {
	var found *catalog.Course
	err := repo.s.do(func(t *tables) error {
		if c, ok := t.courses[id]; ok {
			found = &c
		}
		return nil
	})
	return found, err
}

func (repo catalogRepository) ListCourses(search string) ([]catalog.Course, error) {
	needle := strings.ToLower(search)
	var out []catalog.Course
	err := repo.s.do(func(t *tables) error {
		for _, c := range t.courses {
			if needle == "" ||
				strings.Contains(strings.ToLower(c.Title), needle) ||
				strings.Contains(strings.ToLower(c.Description), needle) ||
				strings.Contains(strings.ToLower(c.InstructorName), needle) {
				out = append(out, c)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, err
}

func (repo catalogRepository) SetCourseHasQuiz(courseID uuid.UUID, hasQuiz bool) error {
	return repo.s.do(func(t *tables) error {
		if c, ok := t.courses[courseID]; ok {
			c.HasQuiz = hasQuiz
			c.UpdatedAt = repo.s.now()
			t.courses[courseID] = c
		}
		return nil
	})
}

func (repo catalogRepository) CreateQuiz(q *catalog.Quiz) error {
	return repo.s.do(func(t *tables) error {
		if err := repo.s.fail("catalog.create_quiz"); err != nil {
			return err
		}
		if _, ok := t.quizzes[q.ID]; ok {
			return gorm.ErrDuplicatedKey
		}
		now := repo.s.now()
		q.CreatedAt, q.UpdatedAt = now, now
		row := *q
		row.Questions = nil
		t.quizzes[q.ID] = row
		return nil
	})
}

func (repo catalogRepository) FindQuizByID(id uuid.UUID) (*catalog.Quiz, error) {
	var found *catalog.Quiz
	err := repo.s.do(func(t *tables) error {
		if err := repo.s.fail("catalog.find_quiz"); err != nil {
			return err
		}
		if q, ok := t.quizzes[id]; ok {
			found = &q
		}
		return nil
	})
	return found, err
}

func questionsOf(t *tables, quizID uuid.UUID) []catalog.Question {
	var questions []catalog.Question
	for _, q := range t.questions {
		if q.QuizID != quizID {
			continue
		}
		q.Options = nil
		for _, o := range t.options {
			if o.QuestionID == q.ID {
				q.Options = append(q.Options, o)
			}
		}
		sort.Slice(q.Options, func(i, j int) bool { return q.Options[i].Position < q.Options[j].Position })
		questions = append(questions, q)
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].Position < questions[j].Position })
	return questions
}

func (repo catalogRepository) FindQuizWithQuestions(id uuid.UUID) (*catalog.Quiz, error) {
	var found *catalog.Quiz
	err := repo.s.do(func(t *tables) error {
		if err := repo.s.fail("catalog.find_quiz"); err != nil {
			return err
		}
		q, ok := t.quizzes[id]
		if !ok {
			return nil
		}
		q.Questions = questionsOf(t, id)
		found = &q
		return nil
	})
	return found, err
}

func (repo catalogRepository) FindActiveQuizByCourse(courseID uuid.UUID) (*catalog.Quiz, error) {
	var found *catalog.Quiz
	err := repo.s.do(func(t *tables) error {
		for _, q := range t.quizzes {
			if q.CourseID != courseID || !q.IsActive {
				continue
			}
			if found == nil || q.CreatedAt.After(found.CreatedAt) {
				found = &q
			}
		}
		return nil
	})
	return found, err
}

func (repo catalogRepository) ListQuizzesByCourse(courseID uuid.UUID) ([]catalog.Quiz, error) {
	var out []catalog.Quiz
	err := repo.s.do(func(t *tables) error {
		for _, q := range t.quizzes {
			if q.CourseID == courseID {
				out = append(out, q)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, err
}

func (repo catalogRepository) UpdateQuiz(q *catalog.Quiz) error {
	return repo.s.do(func(t *tables) error {
		if err := repo.s.fail("catalog.update_quiz"); err != nil {
			return err
		}
		row, ok := t.quizzes[q.ID]
		if !ok {
			return nil
		}
		row.Title = q.Title
		row.Description = q.Description
		row.PassingScore = q.PassingScore
		row.TimeLimit = q.TimeLimit
		row.IsActive = q.IsActive
		row.UpdatedAt = repo.s.now()
		t.quizzes[q.ID] = row
		return nil
	})
}

func (repo catalogRepository) CreateQuestion(q *catalog.Question) error {
	return repo.s.do(func(t *tables) error {
		if err := repo.s.fail("catalog.create_question"); err != nil {
			return err
		}
		if _, ok := t.questions[q.ID]; ok {
			return gorm.ErrDuplicatedKey
		}
		q.CreatedAt = repo.s.now()
		row := *q
		row.Options = nil
		t.questions[q.ID] = row
		for _, o := range q.Options {
			o.QuestionID = q.ID
			t.options[o.ID] = o
		}
		return nil
	})
}

func (repo catalogRepository) IncrementQuestionCount(quizID uuid.UUID) error {
	return repo.s.do(func(t *tables) error {
		if err := repo.s.fail("catalog.increment_questions"); err != nil {
			return err
		}
		if q, ok := t.quizzes[quizID]; ok {
			q.TotalQuestions++
			t.quizzes[quizID] = q
		}
		return nil
	})
}
