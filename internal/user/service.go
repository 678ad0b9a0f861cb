package user

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/learnhub/internal/apperror"
	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/config"
)

type Service interface {
	GetCurrentUser(ctx context.Context, identity auth.Identity) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCurrentUser(ctx context.Context, identity auth.Identity) (*User, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"user_id": identity.UserID})

	u, err := s.repo.FindByID(identity.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		return nil, apperror.Unavailable(err)
	}
	return u, nil
}
