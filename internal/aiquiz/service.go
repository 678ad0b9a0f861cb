package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/learnhub/internal/apperror"
	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/config"
)

var (
	ErrProviderUnavailable = errors.New("question generator is not configured")

	letterPrefix = regexp.MustCompile(`^[A-Za-z][).:-]\s*`)
)

type Service interface {
	DraftQuestions(ctx context.Context, quizID uuid.UUID, req DraftRequest) (*DraftResponse, error)
}

type service struct {
	provider Provider
	catalog  catalog.Service
}

// NewService accepts a nil provider; drafting then fails with ErrProviderUnavailable.
func NewService(provider Provider, catalog catalog.Service) Service {
	return &service{provider: provider, catalog: catalog}
}

// ToQuestionDTO turns a draft into a multiple choice question, marking the alternative named by
// the correct letter.
func ToQuestionDTO(d Draft) (catalog.AddQuestionDTO, error) {
	dto := catalog.AddQuestionDTO{
		Text: strings.TrimSpace(d.Question),
		Type: catalog.MultipleChoice,
	}

	letter := strings.ToUpper(strings.TrimSpace(d.CorrectAnswer))
	if letter == "" {
		return dto, errors.New("draft has no correct answer")
	}
	correct := int(letter[0] - 'A')
	if correct < 0 || correct >= len(d.Alternatives) {
		return dto, fmt.Errorf("correct answer %q is not one of %d alternatives", d.CorrectAnswer, len(d.Alternatives))
	}

	for i, alt := range d.Alternatives {
		dto.Options = append(dto.Options, catalog.OptionDTO{
			Text:      letterPrefix.ReplaceAllString(strings.TrimSpace(alt), ""),
			IsCorrect: i == correct,
		})
	}
	return dto, nil
}

// DraftQuestions asks the model for questions and adds every usable one to the quiz. Drafts the
// catalog rejects are skipped and counted.
func (s *service) DraftQuestions(ctx context.Context, quizID uuid.UUID, req DraftRequest) (*DraftResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"quiz_id": quizID,
		"topic":   req.Topic,
	})

	if err := config.Validate(req); err != nil {
		return nil, err
	}
	if s.provider == nil {
		log.Warn("Question generation requested without a provider")
		return nil, apperror.Unavailable(ErrProviderUnavailable)
	}

	if _, err := s.catalog.GetQuiz(ctx, quizID); err != nil {
		return nil, err
	}

	drafts, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		log.WithError(err).Error("Failed to draft questions")
		return nil, apperror.Unavailable(err)
	}

	resp := &DraftResponse{Questions: []catalog.Question{}}
	for i, d := range drafts {
		dto, err := ToQuestionDTO(d)
		if err != nil {
			resp.Skipped++
			log.WithError(err).WithField("draft", i).Warn("Draft question skipped")
			continue
		}

		q, err := s.catalog.AddQuestion(ctx, quizID, dto)
		if err != nil {
			if !apperror.Recoverable(err) {
				return nil, err
			}
			resp.Skipped++
			log.WithError(err).WithField("draft", i).Warn("Draft question rejected")
			continue
		}
		resp.Questions = append(resp.Questions, *q)
	}

	log.WithFields(logrus.Fields{
		"added":   len(resp.Questions),
		"skipped": resp.Skipped,
	}).Info("Questions drafted")
	return resp, nil
}
