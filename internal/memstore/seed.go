package memstore

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/enrollment"
	"github.com/saulo-duarte/learnhub/internal/user"
)

func (db *DB) AddUser(name, role string) (*user.User, error) {
	u := &user.User{
		ID:    uuid.New(),
		Name:  name,
		Email: fmt.Sprintf("%s@learnhub.local", uuid.NewString()[:8]),
		Role:  role,
	}
	if err := db.Users().Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (db *DB) AddCourse(title, instructor string) (*catalog.Course, error) {
	c := &catalog.Course{ID: uuid.New(), Title: title, InstructorName: instructor}
	if err := db.Catalog().CreateCourse(c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddQuiz creates a quiz of n one-point multiple choice questions with four options each. The
// first option of every question is the correct one.
func (db *DB) AddQuiz(courseID uuid.UUID, n, passingScore, timeLimit int, active bool) (*catalog.Quiz, error) {
	repo := db.Catalog()

	q := &catalog.Quiz{
		ID:           uuid.New(),
		CourseID:     courseID,
		Title:        "Final assessment",
		PassingScore: passingScore,
		TimeLimit:    timeLimit,
		IsActive:     active,
	}
	if err := repo.CreateQuiz(q); err != nil {
		return nil, err
	}
	if err := repo.SetCourseHasQuiz(courseID, true); err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		question := &catalog.Question{
			ID:       uuid.New(),
			QuizID:   q.ID,
			Text:     fmt.Sprintf("Question %d", i+1),
			Type:     catalog.MultipleChoice,
			Points:   1,
			Position: i,
		}
		for j := 0; j < 4; j++ {
			question.Options = append(question.Options, catalog.Option{
				ID:         uuid.New(),
				QuestionID: question.ID,
				Text:       fmt.Sprintf("Option %c", 'A'+j),
				IsCorrect:  j == 0,
				Position:   j,
			})
		}
		if err := repo.CreateQuestion(question); err != nil {
			return nil, err
		}
		if err := repo.IncrementQuestionCount(q.ID); err != nil {
			return nil, err
		}
	}
	return repo.FindQuizWithQuestions(q.ID)
}

func (db *DB) Enroll(userID, courseID uuid.UUID) (*enrollment.Enrollment, error) {
	e := &enrollment.Enrollment{ID: uuid.New(), UserID: userID, CourseID: courseID}
	if err := db.Enrollments().Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

// SeedDemo loads one published course quiz and a student enrolled in it, for DB_DRIVER=memory.
func SeedDemo(db *DB) (*user.User, error) {
	student, err := db.AddUser("Demo Student", auth.RoleStudent)
	if err != nil {
		return nil, err
	}
	if _, err := db.AddUser("Demo Admin", auth.RoleAdmin); err != nil {
		return nil, err
	}
	course, err := db.AddCourse("Introduction to Go", "Learnhub Staff")
	if err != nil {
		return nil, err
	}
	if _, err := db.AddQuiz(course.ID, catalog.MinQuestionsToPublish, catalog.DefaultPassingScore, catalog.DefaultTimeLimit, true); err != nil {
		return nil, err
	}
	if _, err := db.Enroll(student.ID, course.ID); err != nil {
		return nil, err
	}
	return student, nil
}
