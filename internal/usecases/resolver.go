package usecases

import (
	"fmt"

	"chatwidget/internal/entities"
	"chatwidget/internal/interfaces"
)

// Responder turns a visitor message into a reply: custom rules first,
// then intent classification against the template matrix. Read-only; the
// only side effect is the rule fetch.
type Responder struct {
	rules     interfaces.RuleStore
	templates *TemplateLibrary
}

func NewResponder(rules interfaces.RuleStore, templates *TemplateLibrary) *Responder {
	return &Responder{rules: rules, templates: templates}
}

// Resolve computes the reply for a visitor message. A rule-fetch failure
// propagates as an error rather than being treated as "no custom rules":
// silently falling through to templates would misrepresent the business's
// configured behavior as absent. On success the reply is never empty.
func (r *Responder) Resolve(utterance string, businessID int, category entities.BusinessCategory) (string, error) {
	rules, err := r.rules.ListByBusiness(businessID)
	if err != nil {
		return "", fmt.Errorf("fetch custom responses for business %d: %w", businessID, err)
	}

	if reply, ok := MatchCustomRule(utterance, rules); ok {
		return reply, nil
	}

	return r.templates.Lookup(category, ClassifyIntent(utterance)), nil
}
