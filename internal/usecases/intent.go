package usecases

import "strings"

// Intent is the fixed-vocabulary label summarizing the purpose of a
// visitor's message.
type Intent string

const (
	IntentGreeting Intent = "greeting"
	IntentGoodbye  Intent = "goodbye"
	IntentHours    Intent = "hours"
	IntentLocation Intent = "location"
	IntentProducts Intent = "products"
	IntentPrice    Intent = "price"
	IntentBooking  Intent = "booking"
	IntentContact  Intent = "contact"
	IntentHelp     Intent = "help"
	IntentThanks   Intent = "thanks"
	IntentUnknown  Intent = "unknown"
)

// Intents returns every intent in declaration order, including unknown.
func Intents() []Intent {
	return []Intent{
		IntentGreeting, IntentGoodbye, IntentHours, IntentLocation,
		IntentProducts, IntentPrice, IntentBooking, IntentContact,
		IntentHelp, IntentThanks, IntentUnknown,
	}
}

type keywordRule struct {
	intent   Intent
	keywords []string
}

// keywordRules drives intent detection. Evaluation order is significant:
// the first intent whose keyword appears in the message wins, so greeting
// beats location for "Hi! Where are you located?". Matching is plain
// substring containment, not word-boundary aware ("hi" matches inside
// "this"). Changing keywords or their order changes observable replies.
var keywordRules = []keywordRule{
	{IntentGreeting, []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon", "good evening"}},
	{IntentGoodbye, []string{"bye", "goodbye", "see you", "later", "good night", "thanks bye"}},
	{IntentHours, []string{"hours", "open", "close", "opening", "closing", "schedule", "when are you open"}},
	{IntentLocation, []string{"where", "location", "address", "directions", "find you", "get there"}},
	{IntentProducts, []string{"products", "items", "sell", "offer", "catalog", "menu"}},
	{IntentPrice, []string{"price", "cost", "how much", "pricing", "fee", "rates"}},
	{IntentBooking, []string{"book", "reserve", "appointment", "reservation", "schedule"}},
	{IntentContact, []string{"contact", "email", "phone", "call", "reach"}},
	{IntentHelp, []string{"help", "support", "assistance", "guide", "confused", "problem"}},
	{IntentThanks, []string{"thank", "thanks", "appreciate", "grateful"}},
}

// NormalizeUtterance trims surrounding whitespace and lowercases. No
// stemming and no punctuation stripping.
func NormalizeUtterance(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ClassifyIntent maps a visitor message to an intent via ordered keyword
// containment. Returns IntentUnknown when nothing matches. Pure.
func ClassifyIntent(utterance string) Intent {
	msg := NormalizeUtterance(utterance)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.intent
			}
		}
	}
	return IntentUnknown
}
