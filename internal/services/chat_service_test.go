// internal/services/chat_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository/fire"
)

func demoProvider() *repository.Provider {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return repository.NewProvider(
		nil,
		func(ctx context.Context) (repository.Store, error) { return fire.NewDemo(), nil },
		logger,
	)
}

func newChatService() *ChatService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewChatService(NewSearchService(demoProvider(), logger), logger)
}

func TestChatReplyGreetingIntent(t *testing.T) {
	svc := newChatService()
	reply, err := svc.Reply(context.Background(), "Hello there")
	assert.NoError(t, err)
	assert.Contains(t, reply.Reply, "Namaste")
	assert.Empty(t, reply.Suggestions)
}

func TestChatReplyWorkshopIntent(t *testing.T) {
	svc := newChatService()
	reply, err := svc.Reply(context.Background(), "do you run any workshop near Almora?")
	assert.NoError(t, err)
	assert.Contains(t, reply.Reply, "workshops")
}

func TestChatReplySearchBacked(t *testing.T) {
	svc := newChatService()
	reply, err := svc.Reply(context.Background(), "rajma")
	assert.NoError(t, err)
	assert.Contains(t, reply.Suggestions, "Munsiyari Rajma")
	assert.Contains(t, reply.Reply, "Munsiyari Rajma")
}

func TestChatReplyNoMatch(t *testing.T) {
	svc := newChatService()
	reply, err := svc.Reply(context.Background(), "pashmina shawls")
	assert.NoError(t, err)
	assert.Empty(t, reply.Suggestions)
	assert.Contains(t, reply.Reply, "could not find")
}

func TestChatReplyEmptyMessage(t *testing.T) {
	svc := newChatService()
	_, err := svc.Reply(context.Background(), "   ")
	assert.ErrorIs(t, err, repository.ErrValidation)
}
