package interfaces

import "chatwidget/internal/entities"

// BusinessDirectory resolves widget credentials to tenant records.
type BusinessDirectory interface {
	ResolveAPIKey(apiKey string) (*entities.Business, error)
}

// RuleStore supplies a business's custom response rules in precedence
// order (creation order, oldest first).
type RuleStore interface {
	ListByBusiness(businessID int) ([]entities.CustomResponse, error)
}

// SessionStore is the persistence boundary for conversations: open-session
// reuse keyed by (token, business) and an append-only message log.
type SessionStore interface {
	GetOrCreate(token string, businessID int, visitorIP, userAgent string) (*entities.ChatSession, error)
	Append(sessionID int, text string, isBot bool) (*entities.Message, error)
	Close(token string, businessID int) error
}

// Notifier pushes visitor-message alerts to a business's configured
// notification channel.
type Notifier interface {
	NotifyVisitorMessage(chatID int64, businessName, visitorText, botReply string) error
}
