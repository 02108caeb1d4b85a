// internal/services/chat_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

// ChatService is the keyword-matching reply generator: canned prose keyed on
// intent keywords, optionally informed by a search call into the facade. It
// is a thin collaborator, not a conversational model.
type ChatService struct {
	search *SearchService
	logger *logrus.Logger
}

type ChatReply struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func NewChatService(search *SearchService, logger *logrus.Logger) *ChatService {
	return &ChatService{search: search, logger: logger}
}

var intentReplies = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"hello", "hi", "namaste", "namaskar"},
		reply:    "Namaste! Ask me about GI-tagged products of Uttarakhand, the artisans who make them, or workshops you can join.",
	},
	{
		keywords: []string{"workshop", "learn", "class", "training"},
		reply:    "Many of our artisans host hands-on workshops, from Aipan painting to ringaal weaving. Open any artisan's page to see their current offers.",
	},
	{
		keywords: []string{"gi tag", "gi-tag", "geographical indication", "certification"},
		reply:    "A GI tag certifies that a product comes from a specific region and carries its traditional know-how. Products marked GI-certified on this site hold that registration.",
	},
	{
		keywords: []string{"ship", "delivery", "order"},
		reply:    "Orders are shipped by the artisan collectives themselves. Use the contact details on a product's page, or send us an inquiry and we will connect you.",
	},
}

// Reply matches the message against the canned intents first, then falls
// back to a facade search so product questions get concrete suggestions.
func (s *ChatService) Reply(ctx context.Context, message string) (*ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", repository.ErrValidation)
	}
	lower := strings.ToLower(message)

	for _, intent := range intentReplies {
		for _, kw := range intent.keywords {
			if strings.Contains(lower, kw) {
				return &ChatReply{Reply: intent.reply}, nil
			}
		}
	}

	result, err := s.search.Search(ctx, lower, repository.ScopeAll, 5)
	if err != nil {
		// A failing backend shouldn't kill the conversation; degrade to
		// the generic reply instead.
		if errors.Is(err, repository.ErrValidation) {
			return nil, err
		}
		s.logger.WithError(err).Warn("chat search failed")
		result = nil
	}

	if result != nil && result.Total > 0 {
		var names []string
		for _, p := range result.Products {
			names = append(names, p.Name)
		}
		for _, a := range result.Artisans {
			names = append(names, a.Name)
		}
		return &ChatReply{
			Reply:       fmt.Sprintf("Here is what I found for %q: %s. Open any of them for details.", message, strings.Join(names, ", ")),
			Suggestions: names,
		}, nil
	}

	return &ChatReply{
		Reply: "I could not find that yet. Try asking about a product like Munsiyari Rajma, an artisan, or a craft such as Aipan.",
	}, nil
}
