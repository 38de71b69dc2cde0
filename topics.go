package cropchat

import "strings"

// keywordTopic binds a trigger word that may appear anywhere in a message
// to the knowledge topic it asks about.
type keywordTopic struct {
	keyword string
	topic   string
}

// keywordTopics is scanned top to bottom and the first keyword contained
// in the message wins. Table order, not message order, decides ties.
var keywordTopics = []keywordTopic{
	{"plant", "season"},
	{"sow", "season"},
	{"water", "watering"},
	{"irrigation", "irrigation_methods"},
	{"fertilizer", "fertilizer"},
	{"nutrition", "fertilizer"},
	{"harvest", "harvesting"},
	{"problem", "pests"},
	{"disease", "pests"},
	{"pest", "pests"},
	{"tip", "organic_tips"},
	{"advice", "organic_tips"},
	{"soil", "soil"},
	{"yield", "yield"},
	{"spacing", "spacing"},
	{"variety", "varieties"},
	{"germinate", "germination"},
	{"intercrop", "intercropping"},
	{"prune", "pruning"},
	{"special", "special_notes"},
	{"process", "processing"},
	{"store", "storage"},
	{"climate", "climate"},
	{"propagate", "propagation"},
	{"economic", "economic_life"},
}

// mainTopics are the topics a general crop summary covers, in presentation
// order. Topics missing from a crop's record are skipped.
var mainTopics = []string{
	"season",
	"soil",
	"watering",
	"fertilizer",
	"pests",
	"harvesting",
	"yield",
	"spacing",
	"varieties",
	"organic_tips",
}

// greetings short-circuit message handling before any crop lookup. They
// match as substrings, so a word merely containing one also triggers it.
var greetings = []string{"hello", "hi", "hey"}

const (
	greetingResponse = "Hello! I'm your farming assistant. " +
		"I can help you with crop info, irrigation, fertilizers, pests, and more."
	fallbackResponse = "I'm here to help with comprehensive farming guidance! " +
		"Ask me about specific crops or topics."
)

// maxCropSuggestions caps how many per-crop guide suggestions a crop
// listing reply carries.
const maxCropSuggestions = 4

// ResolveTopic scans the message for topic keywords and returns the topic
// the first match maps to. The boolean is false when no keyword is found.
func ResolveTopic(message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, kt := range keywordTopics {
		if strings.Contains(lower, kt.keyword) {
			return kt.topic, true
		}
	}
	return "", false
}

// titleTopic renders a snake_case topic name as a heading, so
// "organic_tips" becomes "Organic Tips".
func titleTopic(topic string) string {
	words := strings.Split(strings.ReplaceAll(topic, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
