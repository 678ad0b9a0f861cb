package attempt

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/saulo-duarte/learnhub/internal/apperror"
	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/config"
	"github.com/saulo-duarte/learnhub/internal/metrics"
	"github.com/saulo-duarte/learnhub/internal/progress"
)

type Options struct {
	// EnforceTimeLimit rejects gradings later than the quiz time limit plus Grace.
	EnforceTimeLimit bool
	Grace            time.Duration

	Now     func() time.Time
	Shuffle func(n int, swap func(i, j int))
}

type Service interface {
	BeginAttempt(ctx context.Context, identity auth.Identity, quizID uuid.UUID) (*BeginResponse, error)
	GradeAttempt(ctx context.Context, identity auth.Identity, attemptID uuid.UUID, submitted Submission) (*GradedResponse, error)
	GetResult(ctx context.Context, identity auth.Identity, attemptID uuid.UUID) (*ResultResponse, error)
	ListAttempts(ctx context.Context, identity auth.Identity, quizID uuid.UUID) ([]AttemptResponse, error)
}

type service struct {
	store    Store
	recorder progress.Recorder
	opts     Options
}

func NewService(store Store, recorder progress.Recorder, opts Options) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Shuffle == nil {
		opts.Shuffle = rand.Shuffle
	}
	return &service{store: store, recorder: recorder, opts: opts}
}

func logFailure(log *logrus.Entry, operation string, err error) {
	if apperror.Recoverable(err) {
		metrics.Refusals.WithLabelValues(operation, string(apperror.KindOf(err))).Inc()
		log.WithError(err).Warn("Attempt operation refused")
		return
	}
	log.WithError(err).Error("Attempt operation failed")
}

// serve copies the quiz questions in random order, each with its options in random order.
func (s *service) serve(quiz *catalog.Quiz) []ServedQuestion {
	served := make([]ServedQuestion, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		sq := ServedQuestion{
			ID:      q.ID,
			Text:    q.Text,
			Type:    q.Type,
			Points:  q.Points,
			Options: make([]ServedOption, 0, len(q.Options)),
		}
		for _, o := range q.Options {
			sq.Options = append(sq.Options, ServedOption{ID: o.ID, Text: o.Text})
		}
		s.opts.Shuffle(len(sq.Options), func(i, j int) {
			sq.Options[i], sq.Options[j] = sq.Options[j], sq.Options[i]
		})
		served = append(served, sq)
	}
	s.opts.Shuffle(len(served), func(i, j int) {
		served[i], served[j] = served[j], served[i]
	})
	return served
}

// BeginAttempt opens an attempt for an enrolled student who has not yet passed the quiz.
func (s *service) BeginAttempt(ctx context.Context, identity auth.Identity, quizID uuid.UUID) (*BeginResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id": identity.UserID,
		"quiz_id": quizID,
	})

	var resp *BeginResponse
	err := s.store.Transaction(ctx, func(tx Store) error {
		quiz, err := tx.Catalog().FindQuizWithQuestions(quizID)
		if err != nil {
			return err
		}
		if quiz == nil {
			return apperror.ErrQuizNotFound
		}
		if !quiz.IsActive {
			return apperror.ErrQuizInactive
		}

		enrolled, err := tx.Enrollments().FindByUserAndCourse(identity.UserID, quiz.CourseID)
		if err != nil {
			return err
		}
		if enrolled == nil {
			return apperror.ErrNotEnrolled
		}

		p, err := tx.Progress().FindByUserAndQuiz(identity.UserID, quizID)
		if err != nil {
			return err
		}
		if p != nil && p.Passed {
			return apperror.ErrAlreadyPassed
		}

		served := s.serve(quiz)
		order := make([]uuid.UUID, len(served))
		for i, q := range served {
			order[i] = q.ID
		}
		rawOrder, err := json.Marshal(order)
		if err != nil {
			return err
		}

		a := &Attempt{
			ID:            uuid.New(),
			UserID:        identity.UserID,
			QuizID:        quizID,
			StartedAt:     s.opts.Now(),
			QuestionOrder: datatypes.JSON(rawOrder),
		}
		if err := tx.Attempts().Create(a); err != nil {
			return err
		}

		resp = &BeginResponse{
			AttemptID: a.ID,
			Quiz:      toQuizSummary(quiz),
			StartedAt: a.StartedAt,
			Questions: served,
		}
		if quiz.TimeLimit > 0 {
			deadline := a.StartedAt.Add(time.Duration(quiz.TimeLimit) * time.Minute)
			resp.Deadline = &deadline
		}
		return nil
	})
	if err != nil {
		logFailure(log, "begin", err)
		return nil, apperror.Unavailable(err)
	}

	metrics.AttemptsStarted.Inc()
	log.WithField("attempt_id", resp.AttemptID).Info("Attempt started")
	return resp, nil
}

// GradeAttempt scores an in-progress attempt, finalizes it exactly once and folds the outcome into
// Progress, all in one transaction.
func (s *service) GradeAttempt(ctx context.Context, identity auth.Identity, attemptID uuid.UUID, submitted Submission) (*GradedResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id":    identity.UserID,
		"attempt_id": attemptID,
	})

	var resp *GradedResponse
	err := s.store.Transaction(ctx, func(tx Store) error {
		a, err := tx.Attempts().FindByID(attemptID)
		if err != nil {
			return err
		}
		if a == nil {
			return apperror.ErrAttemptNotFound
		}
		if a.UserID != identity.UserID {
			return apperror.ErrAttemptNotOwned
		}
		if a.CompletedAt != nil {
			return apperror.ErrAlreadyGraded
		}

		quiz, err := tx.Catalog().FindQuizWithQuestions(a.QuizID)
		if err != nil {
			return err
		}
		if quiz == nil {
			return apperror.ErrQuizNotFound
		}

		now := s.opts.Now()
		elapsed := now.Sub(a.StartedAt)
		if elapsed < 0 {
			elapsed = 0
		}
		if s.opts.EnforceTimeLimit && quiz.TimeLimit > 0 &&
			elapsed > time.Duration(quiz.TimeLimit)*time.Minute+s.opts.Grace {
			return apperror.ErrTimeLimitExceeded
		}

		order, err := a.ServedOrder()
		if err != nil {
			return err
		}
		result := Grade(quiz, order, submitted)

		a.CompletedAt = &now
		a.TimeTakenSeconds = int(elapsed / time.Second)
		a.TotalScore = result.TotalScore
		a.MaxScore = result.MaxScore
		a.Percentage = result.Percentage
		a.Passed = result.Passed

		finalized, err := tx.Attempts().Finalize(a)
		if err != nil {
			return err
		}
		if !finalized {
			return apperror.ErrAlreadyGraded
		}

		for i := range result.Answers {
			result.Answers[i].ID = uuid.New()
			result.Answers[i].AttemptID = a.ID
		}
		if err := tx.Attempts().SaveAnswers(result.Answers); err != nil {
			return err
		}

		p, err := s.recorder.Record(tx.Progress(), progress.Outcome{
			UserID:     a.UserID,
			QuizID:     a.QuizID,
			CourseID:   quiz.CourseID,
			Percentage: a.Percentage,
			Passed:     a.Passed,
			At:         now,
		})
		if err != nil {
			return err
		}

		resp = &GradedResponse{
			Attempt:      ToAttemptResponse(a),
			PassingScore: quiz.PassingScore,
			Progress:     toProgressSnapshot(p),
		}
		return nil
	})
	if err != nil {
		logFailure(log, "grade", err)
		return nil, apperror.Unavailable(err)
	}

	metrics.ObserveGraded(resp.Attempt.Passed)
	log.WithFields(logrus.Fields{
		"percentage": resp.Attempt.Percentage,
		"passed":     resp.Attempt.Passed,
	}).Info("Attempt graded")
	return resp, nil
}

// GetResult returns the caller's attempt with a per-question review once it is graded.
func (s *service) GetResult(ctx context.Context, identity auth.Identity, attemptID uuid.UUID) (*ResultResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id":    identity.UserID,
		"attempt_id": attemptID,
	})

	var resp *ResultResponse
	err := s.store.Transaction(ctx, func(tx Store) error {
		a, err := tx.Attempts().FindByID(attemptID)
		if err != nil {
			return err
		}
		if a == nil {
			return apperror.ErrAttemptNotFound
		}
		if a.UserID != identity.UserID {
			return apperror.ErrAttemptNotOwned
		}

		quiz, err := tx.Catalog().FindQuizWithQuestions(a.QuizID)
		if err != nil {
			return err
		}
		if quiz == nil {
			return apperror.ErrQuizNotFound
		}

		resp = &ResultResponse{
			Attempt:      ToAttemptResponse(a),
			QuizTitle:    quiz.Title,
			PassingScore: quiz.PassingScore,
			Review:       []ReviewItem{},
		}
		if a.Status() != StatusGraded {
			return nil
		}

		answers, err := tx.Attempts().ListAnswers(a.ID)
		if err != nil {
			return err
		}
		byQuestion := make(map[uuid.UUID]Answer, len(answers))
		for _, ans := range answers {
			byQuestion[ans.QuestionID] = ans
		}

		order, err := a.ServedOrder()
		if err != nil {
			return err
		}
		for _, q := range orderedQuestions(quiz, order) {
			item := ReviewItem{QuestionID: q.ID, Text: q.Text, Points: q.Points}
			if correct := q.CorrectOption(); correct != nil {
				item.CorrectOption = correct.Text
			}
			if ans, ok := byQuestion[q.ID]; ok {
				item.IsCorrect = ans.IsCorrect
				item.PointsEarned = ans.PointsEarned
				if ans.SelectedOptionID != nil {
					if opt := q.Option(*ans.SelectedOptionID); opt != nil {
						text := opt.Text
						item.SelectedOption = &text
					}
				}
			}
			resp.Review = append(resp.Review, item)
		}
		return nil
	})
	if err != nil {
		logFailure(log, "result", err)
		return nil, apperror.Unavailable(err)
	}
	return resp, nil
}

func (s *service) ListAttempts(ctx context.Context, identity auth.Identity, quizID uuid.UUID) ([]AttemptResponse, error) {
	var out []AttemptResponse
	err := s.store.Transaction(ctx, func(tx Store) error {
		attempts, err := tx.Attempts().ListByUserAndQuiz(identity.UserID, quizID)
		if err != nil {
			return err
		}
		out = make([]AttemptResponse, 0, len(attempts))
		for i := range attempts {
			out = append(out, ToAttemptResponse(&attempts[i]))
		}
		return nil
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list attempts")
		return nil, apperror.Unavailable(err)
	}
	return out, nil
}
