// internal/services/newsletter_service_test.go
package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

func newNewsletterService() *NewsletterService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewNewsletterService(demoProvider(), logger)
}

func TestNewsletterSubscribeValidatesEmail(t *testing.T) {
	svc := newNewsletterService()
	for _, bad := range []string{"", "not-an-email", "@nobody"} {
		_, err := svc.Subscribe(context.Background(), bad)
		assert.ErrorIs(t, err, repository.ErrValidation, "email %q", bad)
	}
}

func TestNewsletterSubscribeAndUnsubscribe(t *testing.T) {
	svc := newNewsletterService()
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, "reader@example.org")
	assert.NoError(t, err)
	assert.True(t, sub.Active)

	gone, err := svc.Unsubscribe(ctx, "reader@example.org")
	assert.NoError(t, err)
	assert.False(t, gone.Active)
}

func TestNewsletterUnsubscribeUnknownEmail(t *testing.T) {
	svc := newNewsletterService()
	_, err := svc.Unsubscribe(context.Background(), "stranger@example.org")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// subscribeRaceStore loses the unique-index race on its first call and
// returns the existing record after that, the way the postgres driver
// behaves when a concurrent subscribe commits first.
type subscribeRaceStore struct {
	repository.Store
	calls int
}

func (s *subscribeRaceStore) SubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	s.calls++
	if s.calls == 1 {
		return nil, fmt.Errorf("subscribe: %w", repository.ErrDuplicateEmail)
	}
	return &models.NewsletterSubscriber{Email: email, Active: true}, nil
}

func (s *subscribeRaceStore) Name() string { return "stub" }
func (s *subscribeRaceStore) Close() error { return nil }

func TestNewsletterSubscribeResolvesDuplicateRace(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	store := &subscribeRaceStore{}
	provider := repository.NewProvider(
		nil,
		func(ctx context.Context) (repository.Store, error) { return store, nil },
		logger,
	)
	svc := NewNewsletterService(provider, logger)

	sub, err := svc.Subscribe(context.Background(), "reader@example.org")
	assert.NoError(t, err)
	assert.True(t, sub.Active)
	assert.Equal(t, 2, store.calls)
}
