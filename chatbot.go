package cropchat

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fieldworks/cropchat/knowledge"
)

// Bot answers farming questions by matching keywords in a message against
// a crop knowledge base. It holds no mutable state, so a single Bot is
// safe for concurrent use.
type Bot struct {
	kb     *knowledge.Base
	logger *slog.Logger
}

// Response is the answer to a single message. CropType is set only when
// the answer is about a specific crop, and Suggestions only when there
// are follow-up prompts to offer.
type Response struct {
	Response    string   `json:"response"`
	CropType    string   `json:"crop_type,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// New creates a Bot that answers from the given knowledge base.
func New(kb *knowledge.Base, logger *slog.Logger) *Bot {
	return &Bot{
		kb:     kb,
		logger: logger,
	}
}

// Crops returns the names of all known crops in knowledge base order.
func (b *Bot) Crops() []string {
	return b.kb.Crops()
}

// DetectCrop returns the first known crop whose name appears in the
// message. Matching is case insensitive, the returned name is the
// knowledge base key as stored. The boolean is false when no crop is
// found.
func (b *Bot) DetectCrop(message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, name := range b.kb.Crops() {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name, true
		}
	}
	return "", false
}

// Advice answers a question about one crop. An empty topic yields a
// general summary of the crop's main topics. Unknown crops and unknown
// topics produce apology text rather than an error, the reply is always
// something to show the user.
func (b *Bot) Advice(crop, topic string) string {
	rec, ok := b.kb.Record(crop)
	if !ok {
		return fmt.Sprintf("Sorry, I don't have information about %s. Available crops: %s",
			crop, strings.Join(b.Crops(), ", "))
	}

	if topic != "" {
		fact, ok := rec[topic]
		if !ok {
			return fmt.Sprintf("No information available for %s of %s.", topic, crop)
		}
		if fact.IsList() {
			return "• " + strings.Join(fact.Items, "\n• ")
		}
		return fact.Text
	}

	sb := strings.Builder{}
	fmt.Fprintf(&sb, "Here's general information about %s:\n\n", crop)
	for _, name := range mainTopics {
		fact, ok := rec[name]
		if !ok {
			continue
		}
		value := fact.Text
		if fact.IsList() {
			value = strings.Join(fact.Items, "\n• ")
		}
		fmt.Fprintf(&sb, "**%s:** %s\n\n", titleTopic(name), value)
	}
	return sb.String()
}

// Process handles one chat message and returns the reply. The cropHint,
// when not empty, names the crop the conversation is about and must match
// a knowledge base key exactly. Without a hint the crop is detected from
// the message itself.
//
// Rules apply in a fixed order: greetings first, then requests to list the
// available crops, then crop questions, and finally a generic help reply.
func (b *Bot) Process(message, cropHint string) Response {
	logger := b.logger.With(
		slog.String("package", "cropchat"),
		slog.String("function", "Process"),
	)
	now := time.Now()

	lower := strings.ToLower(message)

	crop := cropHint
	if crop == "" {
		if detected, ok := b.DetectCrop(message); ok {
			crop = detected
		}
	}

	var rule string
	var res Response

	switch {
	case containsAny(lower, greetings):
		rule = "greeting"
		res = Response{
			Response: greetingResponse,
			Suggestions: []string{
				"What crops do you know about?",
				"Tell me about wheat farming",
			},
		}
	case strings.Contains(lower, "what crops") || strings.Contains(lower, "available crops"):
		rule = "crop listing"
		crops := b.Crops()
		suggestions := make([]string, 0, maxCropSuggestions)
		for _, name := range crops {
			if len(suggestions) == maxCropSuggestions {
				break
			}
			suggestions = append(suggestions, "Complete guide for "+name)
		}
		res = Response{
			Response:    "I have information about: " + strings.Join(crops, ", "),
			Suggestions: suggestions,
		}
	case b.knownCrop(crop):
		rule = "crop advice"
		topic, _ := ResolveTopic(message)
		res = Response{
			Response: b.Advice(crop, topic),
			CropType: crop,
		}
	default:
		rule = "fallback"
		res = Response{
			Response: fallbackResponse,
			Suggestions: []string{
				"Available crops",
				"Organic farming tips",
			},
		}
	}

	logger.Debug("Processed message",
		"rule", rule,
		"crop", crop,
		"duration in milliseconds", time.Since(now).Milliseconds())

	return res
}

func (b *Bot) knownCrop(crop string) bool {
	if crop == "" {
		return false
	}
	_, ok := b.kb.Record(crop)
	return ok
}
