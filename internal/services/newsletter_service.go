// internal/services/newsletter_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
	"github.com/projectgichatbot-max/gitag-backend/internal/utils"
)

type NewsletterService struct {
	provider *repository.Provider
	logger   *logrus.Logger
}

func NewNewsletterService(provider *repository.Provider, logger *logrus.Logger) *NewsletterService {
	return &NewsletterService{provider: provider, logger: logger}
}

func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	if err := utils.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", repository.ErrValidation)
	}

	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	sub, err := store.SubscribeNewsletter(ctx, email)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// A concurrent subscribe won the unique-index race. The record
		// exists now, so a second pass returns it: no-op success.
		sub, err = store.SubscribeNewsletter(ctx, email)
	}
	if err != nil {
		return nil, err
	}
	s.logger.WithField("email", sub.Email).Info("newsletter subscription")
	return sub, nil
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	if err := utils.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", repository.ErrValidation)
	}

	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	sub, err := store.UnsubscribeNewsletter(ctx, email)
	if err != nil {
		return nil, err
	}
	s.logger.WithField("email", sub.Email).Info("newsletter unsubscription")
	return sub, nil
}

func (s *NewsletterService) List(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.NewsletterSubscriber, repository.PageInfo, error) {
	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}
	return store.ListNewsletterSubscribers(ctx, f, p)
}
