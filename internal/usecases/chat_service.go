package usecases

import (
	"fmt"
	"log"

	"chatwidget/internal/entities"
	"chatwidget/internal/interfaces"
)

// ChatService handles one inbound widget message end to end: credential
// resolution, session reuse, transcript persistence and reply resolution.
// Stateless per request; safe for concurrent use.
type ChatService struct {
	directory interfaces.BusinessDirectory
	sessions  interfaces.SessionStore
	responder *Responder
	Notifier  interfaces.Notifier // optional, nil disables alerts
}

func NewChatService(directory interfaces.BusinessDirectory, sessions interfaces.SessionStore, responder *Responder) *ChatService {
	return &ChatService{
		directory: directory,
		sessions:  sessions,
		responder: responder,
	}
}

// ChatReply is what the widget gets back.
type ChatReply struct {
	Response     string `json:"response"`
	SessionToken string `json:"session_id"`
}

// HandleMessage validates the request, resolves the tenant, persists the
// visitor message, computes the reply and persists it as the bot's turn.
// Validation and authentication failures come back as the sentinels in
// entities; any other error is a storage failure.
func (s *ChatService) HandleMessage(apiKey, message, sessionToken, visitorIP, userAgent string) (*ChatReply, error) {
	if message == "" {
		return nil, entities.ErrEmptyMessage
	}
	if sessionToken == "" {
		return nil, entities.ErrEmptySessionToken
	}

	business, err := s.resolveBusiness(apiKey)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.GetOrCreate(sessionToken, business.ID, visitorIP, userAgent)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	if _, err := s.sessions.Append(session.ID, message, false); err != nil {
		return nil, fmt.Errorf("persist visitor message: %w", err)
	}

	reply, err := s.responder.Resolve(message, business.ID, business.Category)
	if err != nil {
		return nil, err
	}

	if _, err := s.sessions.Append(session.ID, reply, true); err != nil {
		return nil, fmt.Errorf("persist bot message: %w", err)
	}

	if s.Notifier != nil && business.NotifyChatID != 0 {
		go func() {
			if err := s.Notifier.NotifyVisitorMessage(business.NotifyChatID, business.Name, message, reply); err != nil {
				log.Printf("notify business %d: %v", business.ID, err)
			}
		}()
	}

	return &ChatReply{Response: reply, SessionToken: sessionToken}, nil
}

// EndSession closes the visitor's open session. Separate from the chat
// flow; the widget calls it when the visitor dismisses the chat window.
func (s *ChatService) EndSession(apiKey, sessionToken string) error {
	if sessionToken == "" {
		return entities.ErrEmptySessionToken
	}

	business, err := s.resolveBusiness(apiKey)
	if err != nil {
		return err
	}

	return s.sessions.Close(sessionToken, business.ID)
}

func (s *ChatService) resolveBusiness(apiKey string) (*entities.Business, error) {
	if apiKey == "" {
		return nil, entities.ErrInvalidAPIKey
	}
	business, err := s.directory.ResolveAPIKey(apiKey)
	if err != nil {
		return nil, fmt.Errorf("resolve api key: %w", err)
	}
	if business == nil {
		return nil, entities.ErrInvalidAPIKey
	}
	return business, nil
}
