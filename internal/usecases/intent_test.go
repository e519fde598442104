package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      Intent
	}{
		{"greeting", "hello there", IntentGreeting},
		{"hours", "what time do you open", IntentHours},
		{"no match", "asdfqwerty", IntentUnknown},
		{"location", "where is your office", IntentLocation},
		{"price", "how much does it cost", IntentPrice},
		{"thanks", "thank you so much", IntentThanks},
		{"trim and case", "  HELLO!  ", IntentGreeting},
		{"empty", "", IntentUnknown},
		// Matching is substring containment, not word-boundary aware:
		// "hi" matches inside "this".
		{"containment quirk", "this is nothing", IntentGreeting},
		// Order is significant: greeting precedes location, so "hi"
		// wins even though "where" and "located" also appear.
		{"greeting beats location", "Hi! Where are you located?", IntentGreeting},
		// "schedule" appears in both hours and booking keyword lists;
		// hours is declared first.
		{"hours beats booking", "send me the schedule", IntentHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.utterance))
		})
	}
}

func TestClassifyIntentIsDeterministic(t *testing.T) {
	first := ClassifyIntent("can I book a table for tonight")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ClassifyIntent("can I book a table for tonight"))
	}
}

func TestNormalizeUtterance(t *testing.T) {
	assert.Equal(t, "hello, world!", NormalizeUtterance("  Hello, World!  "))
	// No punctuation stripping beyond trim+lowercase.
	assert.Equal(t, "what?!", NormalizeUtterance("WHAT?!"))
}
