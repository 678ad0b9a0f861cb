package aiquiz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/learnhub/internal/aiquiz"
	"github.com/saulo-duarte/learnhub/internal/apperror"
	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/memstore"
)

type fakeProvider struct {
	drafts []aiquiz.Draft
	err    error
	user   string
}

func (p *fakeProvider) SendPrompt(_ context.Context, _, user string) ([]aiquiz.Draft, error) {
	p.user = user
	return p.drafts, p.err
}

func draft(question, correct string) aiquiz.Draft {
	return aiquiz.Draft{
		Question:      question,
		Alternatives:  []string{"A) Goroutine", "B) Thread", "C) Fiber", "D) Process"},
		CorrectAnswer: correct,
	}
}

func TestToQuestionDTO(t *testing.T) {
	dto, err := aiquiz.ToQuestionDTO(draft("What does the go statement start?", "a"))
	require.NoError(t, err)
	assert.Equal(t, catalog.MultipleChoice, dto.Type)
	require.Len(t, dto.Options, 4)
	assert.Equal(t, "Goroutine", dto.Options[0].Text)
	assert.True(t, dto.Options[0].IsCorrect)
	assert.False(t, dto.Options[1].IsCorrect)

	_, err = aiquiz.ToQuestionDTO(draft("Out of range", "E"))
	assert.Error(t, err)

	_, err = aiquiz.ToQuestionDTO(draft("No answer", ""))
	assert.Error(t, err)
}

func TestBuildUserPrompt(t *testing.T) {
	assert.Contains(t, aiquiz.BuildUserPrompt(aiquiz.DraftRequest{Topic: "channels"}), "Write 3 multiple choice questions")
	assert.Contains(t, aiquiz.BuildUserPrompt(aiquiz.DraftRequest{Topic: "channels", Count: 50}), "Write 10 ")
	assert.Contains(t, aiquiz.BuildUserPrompt(aiquiz.DraftRequest{Topic: "channels", Difficulty: "hard"}), "hard difficulty")
}

func TestParseDrafts(t *testing.T) {
	drafts, err := aiquiz.ParseDrafts("```json\n[{\"question\":\"Q\",\"alternatives\":[\"A) x\",\"B) y\"],\"correct_answer\":\"B\"}]\n```")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "B", drafts[0].CorrectAnswer)

	_, err = aiquiz.ParseDrafts("   ")
	assert.ErrorIs(t, err, aiquiz.ErrEmptyReply)

	_, err = aiquiz.ParseDrafts("not json")
	assert.Error(t, err)
}

func TestDraftQuestions(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (catalog.Service, *catalog.Quiz) {
		t.Helper()
		cat := catalog.NewService(memstore.New().CatalogStore())
		course, err := cat.CreateCourse(ctx, catalog.CreateCourseDTO{Title: "Go", InstructorName: "Rob"})
		require.NoError(t, err)
		quiz, err := cat.CreateQuiz(ctx, course.ID, catalog.CreateQuizDTO{Title: "Basics"})
		require.NoError(t, err)
		return cat, quiz
	}

	t.Run("AddsUsableDrafts", func(t *testing.T) {
		cat, quiz := setup(t)
		provider := &fakeProvider{drafts: []aiquiz.Draft{
			draft("What does the go statement start?", "A"),
			draft("", "B"),
			draft("Which one is scheduled by the Go runtime?", "Z"),
		}}
		svc := aiquiz.NewService(provider, cat)

		resp, err := svc.DraftQuestions(ctx, quiz.ID, aiquiz.DraftRequest{Topic: "goroutines", Count: 3})
		require.NoError(t, err)
		assert.Len(t, resp.Questions, 1)
		assert.Equal(t, 2, resp.Skipped)
		assert.Contains(t, provider.user, "goroutines")

		stored, err := cat.GetQuiz(ctx, quiz.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.TotalQuestions)
	})

	t.Run("NoProvider", func(t *testing.T) {
		cat, quiz := setup(t)
		svc := aiquiz.NewService(nil, cat)

		_, err := svc.DraftQuestions(ctx, quiz.ID, aiquiz.DraftRequest{Topic: "goroutines"})
		require.Error(t, err)
		assert.Equal(t, apperror.StoreUnavailable, apperror.KindOf(err))
	})

	t.Run("ProviderFailure", func(t *testing.T) {
		cat, quiz := setup(t)
		svc := aiquiz.NewService(&fakeProvider{err: errors.New("quota exceeded")}, cat)

		_, err := svc.DraftQuestions(ctx, quiz.ID, aiquiz.DraftRequest{Topic: "goroutines"})
		assert.Equal(t, apperror.StoreUnavailable, apperror.KindOf(err))
	})

	t.Run("UnknownQuiz", func(t *testing.T) {
		cat, _ := setup(t)
		svc := aiquiz.NewService(&fakeProvider{}, cat)

		_, err := svc.DraftQuestions(ctx, uuid.New(), aiquiz.DraftRequest{Topic: "goroutines"})
		assert.ErrorIs(t, err, apperror.ErrQuizNotFound)
	})

	t.Run("BlankTopic", func(t *testing.T) {
		cat, quiz := setup(t)
		svc := aiquiz.NewService(&fakeProvider{}, cat)

		_, err := svc.DraftQuestions(ctx, quiz.ID, aiquiz.DraftRequest{Topic: " "})
		assert.Equal(t, apperror.Validation, apperror.KindOf(err))
	})
}
