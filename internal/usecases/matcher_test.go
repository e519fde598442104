package usecases

import (
	"testing"

	"chatwidget/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestMatchCustomRuleFirstRuleWins(t *testing.T) {
	rules := []entities.CustomResponse{
		{Pattern: "hours", Response: "reply A"},
		{Pattern: "open", Response: "reply B"},
	}

	// Both rules match; the first in precedence order wins.
	reply, ok := MatchCustomRule("what are your open hours", rules)
	assert.True(t, ok)
	assert.Equal(t, "reply A", reply)
}

func TestMatchCustomRuleEmptyTokensIgnored(t *testing.T) {
	rules := []entities.CustomResponse{
		{Pattern: "hours, ,  open", Response: "we are open late"},
	}

	// A blank token must never match (it would match everything).
	reply, ok := MatchCustomRule("when do you open", rules)
	assert.True(t, ok)
	assert.Equal(t, "we are open late", reply)

	_, ok = MatchCustomRule("tell me about cats", rules)
	assert.False(t, ok)
}

func TestMatchCustomRuleNormalization(t *testing.T) {
	rules := []entities.CustomResponse{
		{Pattern: "DELIVERY, Takeout ", Response: "we deliver"},
	}

	reply, ok := MatchCustomRule("  Do you do TAKEOUT?  ", rules)
	assert.True(t, ok)
	assert.Equal(t, "we deliver", reply)
}

func TestMatchCustomRuleNoRules(t *testing.T) {
	_, ok := MatchCustomRule("hello", nil)
	assert.False(t, ok)

	_, ok = MatchCustomRule("hello", []entities.CustomResponse{})
	assert.False(t, ok)
}

func TestMatchCustomRuleResponseVerbatim(t *testing.T) {
	rules := []entities.CustomResponse{
		{Pattern: "promo", Response: "  Use code *SAVE10* — details: https://example.com  "},
	}

	reply, ok := MatchCustomRule("any promo running?", rules)
	assert.True(t, ok)
	assert.Equal(t, "  Use code *SAVE10* — details: https://example.com  ", reply)
}
