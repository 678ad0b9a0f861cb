package aiquiz

import (
	"context"

	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/config"
)

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer(ctx context.Context, catalogService catalog.Service, model string) *AIQuizContainer {
	provider, err := NewGeminiProvider(ctx, model)
	if err != nil {
		config.Logger.WithError(err).Warn("Gemini unavailable, question drafting disabled")
		provider = nil
	}
	service := NewService(provider, catalogService)

	return &AIQuizContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}
