package usecases

import (
	"sync"
	"testing"
	"time"

	"chatwidget/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	businesses map[string]*entities.Business
}

func (d *fakeDirectory) ResolveAPIKey(apiKey string) (*entities.Business, error) {
	return d.businesses[apiKey], nil
}

type sessionKey struct {
	token      string
	businessID int
}

// fakeSessionStore mimics the Postgres store: one open session per
// (token, business), append-only messages with insertion-order ids.
type fakeSessionStore struct {
	mu       sync.Mutex
	nextID   int
	sessions map[sessionKey]*entities.ChatSession
	messages []entities.Message
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[sessionKey]*entities.ChatSession)}
}

func (s *fakeSessionStore) GetOrCreate(token string, businessID int, visitorIP, userAgent string) (*entities.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{token, businessID}
	if sess, ok := s.sessions[key]; ok && sess.Open() {
		return sess, nil
	}
	s.nextID++
	sess := &entities.ChatSession{
		ID:         s.nextID,
		Token:      token,
		BusinessID: businessID,
		VisitorIP:  visitorIP,
		UserAgent:  userAgent,
		StartedAt:  time.Now(),
	}
	s.sessions[key] = sess
	return sess, nil
}

func (s *fakeSessionStore) Append(sessionID int, text string, isBot bool) (*entities.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	m := entities.Message{
		ID:        s.nextID,
		SessionID: sessionID,
		Text:      text,
		IsBot:     isBot,
		CreatedAt: time.Now(),
	}
	s.messages = append(s.messages, m)
	return &m, nil
}

func (s *fakeSessionStore) Close(token string, businessID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionKey{token, businessID}]
	if !ok || !sess.Open() {
		return entities.ErrNoOpenSession
	}
	now := time.Now()
	sess.EndedAt = &now
	return nil
}

func (s *fakeSessionStore) sessionMessages(sessionID int) []entities.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []entities.Message{}
	for _, m := range s.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out
}

func newTestChatService(t *testing.T) (*ChatService, *fakeSessionStore) {
	t.Helper()
	templates, err := NewTemplateLibrary()
	require.NoError(t, err)

	directory := &fakeDirectory{businesses: map[string]*entities.Business{
		"key-restaurant": {ID: 1, Name: "Trattoria", Category: entities.CategoryRestaurant},
	}}
	sessions := newFakeSessionStore()
	responder := NewResponder(&stubRuleStore{}, templates)
	return NewChatService(directory, sessions, responder), sessions
}

func TestHandleMessageSessionReuse(t *testing.T) {
	svc, store := newTestChatService(t)

	first, err := svc.HandleMessage("key-restaurant", "hello", "tok-1", "1.2.3.4", "widget/1.0")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", first.SessionToken)

	_, err = svc.HandleMessage("key-restaurant", "what time do you open", "tok-1", "1.2.3.4", "widget/1.0")
	require.NoError(t, err)

	// One session, four messages (two visitor, two bot), log ordered.
	assert.Len(t, store.sessions, 1)
	sess := store.sessions[sessionKey{"tok-1", 1}]
	msgs := store.sessionMessages(sess.ID)
	require.Len(t, msgs, 4)
	assert.False(t, msgs[0].IsBot)
	assert.True(t, msgs[1].IsBot)
	assert.False(t, msgs[2].IsBot)
	assert.True(t, msgs[3].IsBot)
	assert.Equal(t, "hello", msgs[0].Text)
	assert.Equal(t, "what time do you open", msgs[2].Text)
	for i := 1; i < len(msgs); i++ {
		assert.Greater(t, msgs[i].ID, msgs[i-1].ID)
	}
}

func TestHandleMessageTokenIsolation(t *testing.T) {
	svc, store := newTestChatService(t)

	_, err := svc.HandleMessage("key-restaurant", "hello", "tok-a", "", "")
	require.NoError(t, err)
	_, err = svc.HandleMessage("key-restaurant", "hello", "tok-b", "", "")
	require.NoError(t, err)

	assert.Len(t, store.sessions, 2)
}

func TestHandleMessageValidation(t *testing.T) {
	svc, _ := newTestChatService(t)

	_, err := svc.HandleMessage("key-restaurant", "", "tok-1", "", "")
	assert.ErrorIs(t, err, entities.ErrEmptyMessage)

	_, err = svc.HandleMessage("key-restaurant", "hello", "", "", "")
	assert.ErrorIs(t, err, entities.ErrEmptySessionToken)
}

func TestHandleMessageInvalidAPIKey(t *testing.T) {
	svc, store := newTestChatService(t)

	_, err := svc.HandleMessage("no-such-key", "hello", "tok-1", "", "")
	assert.ErrorIs(t, err, entities.ErrInvalidAPIKey)

	_, err = svc.HandleMessage("", "hello", "tok-1", "", "")
	assert.ErrorIs(t, err, entities.ErrInvalidAPIKey)

	// Nothing persisted on authentication failure.
	assert.Empty(t, store.sessions)
	assert.Empty(t, store.messages)
}

func TestHandleMessageReturnsTemplateReply(t *testing.T) {
	svc, _ := newTestChatService(t)

	reply, err := svc.HandleMessage("key-restaurant", "Hi! Where are you located?", "tok-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Hello! Welcome to our restaurant. How can I assist you today? Would you like to see our menu or make a reservation?", reply.Response)
}

func TestEndSession(t *testing.T) {
	svc, store := newTestChatService(t)

	_, err := svc.HandleMessage("key-restaurant", "hello", "tok-1", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.EndSession("key-restaurant", "tok-1"))
	assert.False(t, store.sessions[sessionKey{"tok-1", 1}].Open())

	// Closing twice reports no open session.
	assert.ErrorIs(t, svc.EndSession("key-restaurant", "tok-1"), entities.ErrNoOpenSession)
}

func TestEndSessionValidation(t *testing.T) {
	svc, _ := newTestChatService(t)

	assert.ErrorIs(t, svc.EndSession("key-restaurant", ""), entities.ErrEmptySessionToken)
	assert.ErrorIs(t, svc.EndSession("bad-key", "tok-1"), entities.ErrInvalidAPIKey)
}

func TestHandleMessageAfterEndStartsNewSession(t *testing.T) {
	svc, store := newTestChatService(t)

	_, err := svc.HandleMessage("key-restaurant", "hello", "tok-1", "", "")
	require.NoError(t, err)
	require.NoError(t, svc.EndSession("key-restaurant", "tok-1"))

	_, err = svc.HandleMessage("key-restaurant", "hello again", "tok-1", "", "")
	require.NoError(t, err)

	sess := store.sessions[sessionKey{"tok-1", 1}]
	assert.True(t, sess.Open())
}
