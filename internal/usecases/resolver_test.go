package usecases

import (
	"errors"
	"testing"

	"chatwidget/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRuleStore struct {
	rules []entities.CustomResponse
	err   error
}

func (s *stubRuleStore) ListByBusiness(businessID int) ([]entities.CustomResponse, error) {
	return s.rules, s.err
}

func newTestResponder(t *testing.T, store *stubRuleStore) *Responder {
	t.Helper()
	templates, err := NewTemplateLibrary()
	require.NoError(t, err)
	return NewResponder(store, templates)
}

func TestResolveCustomRuleTakesPrecedence(t *testing.T) {
	store := &stubRuleStore{rules: []entities.CustomResponse{
		{Pattern: "hello", Response: "custom greeting that no template contains"},
	}}
	r := newTestResponder(t, store)

	// "hello" would classify as greeting, but the custom rule must win
	// and the template matrix is never consulted.
	reply, err := r.Resolve("hello there", 1, entities.CategoryRestaurant)
	require.NoError(t, err)
	assert.Equal(t, "custom greeting that no template contains", reply)
}

func TestResolveFallsThroughToTemplates(t *testing.T) {
	store := &stubRuleStore{rules: []entities.CustomResponse{
		{Pattern: "refund", Response: "refund policy"},
	}}
	r := newTestResponder(t, store)

	reply, err := r.Resolve("Hi! Where are you located?", 1, entities.CategoryRestaurant)
	require.NoError(t, err)
	// Greeting precedes location in keyword order, so the restaurant
	// greeting template is the pinned expectation.
	assert.Equal(t, "Hello! Welcome to our restaurant. How can I assist you today? Would you like to see our menu or make a reservation?", reply)
}

func TestResolveUnknownFallbackChain(t *testing.T) {
	r := newTestResponder(t, &stubRuleStore{})

	reply, err := r.Resolve("zxcvbnm", 1, entities.BusinessCategory("unrecognized"))
	require.NoError(t, err)
	assert.Equal(t, "I'm not sure I understand. Could you please rephrase your question or let me know how I can help you?", reply)
}

func TestResolveIsDeterministic(t *testing.T) {
	store := &stubRuleStore{rules: []entities.CustomResponse{
		{Pattern: "hours", Response: "reply A"},
		{Pattern: "open", Response: "reply B"},
	}}
	r := newTestResponder(t, store)

	first, err := r.Resolve("what are your open hours", 1, entities.CategoryService)
	require.NoError(t, err)
	assert.Equal(t, "reply A", first)

	for i := 0; i < 10; i++ {
		reply, err := r.Resolve("what are your open hours", 1, entities.CategoryService)
		require.NoError(t, err)
		assert.Equal(t, first, reply)
	}
}

func TestResolveNeverEmpty(t *testing.T) {
	r := newTestResponder(t, &stubRuleStore{})

	for _, cat := range entities.Categories() {
		for _, msg := range []string{"", "hello", "???", "when do you open"} {
			reply, err := r.Resolve(msg, 1, cat)
			require.NoError(t, err)
			assert.NotEmpty(t, reply)
		}
	}
}

func TestResolvePropagatesStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	r := newTestResponder(t, &stubRuleStore{err: storeErr})

	// A rule-fetch failure must surface, not degrade into template
	// replies as if the business had no rules configured.
	_, err := r.Resolve("hello", 1, entities.CategoryRestaurant)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
