package usecases

import (
	"strings"

	"chatwidget/internal/entities"
)

// MatchCustomRule evaluates a business's custom response rules against a
// visitor message. Rules must arrive in precedence order (oldest first,
// as the response store returns them); the first rule with any matching
// keyword wins and its response is returned verbatim. There is no scoring
// across rules.
//
// A rule's pattern is split on commas; each token is trimmed and
// lowercased, empty tokens are discarded so a stray comma never matches
// everything. Returns ok=false when no rule matches, meaning the caller
// should fall through to the template matrix.
func MatchCustomRule(utterance string, rules []entities.CustomResponse) (string, bool) {
	msg := NormalizeUtterance(utterance)
	for _, rule := range rules {
		for _, keyword := range strings.Split(strings.ToLower(rule.Pattern), ",") {
			keyword = strings.TrimSpace(keyword)
			if keyword != "" && strings.Contains(msg, keyword) {
				return rule.Response, true
			}
		}
	}
	return "", false
}
