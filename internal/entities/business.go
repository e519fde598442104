package entities

import "time"

// BusinessCategory is the tenant's declared vertical. It selects which
// canned-reply set the responder uses when no custom rule matches.
type BusinessCategory string

const (
	CategoryRestaurant BusinessCategory = "restaurant"
	CategoryEcommerce  BusinessCategory = "ecommerce"
	CategoryService    BusinessCategory = "service"
	CategoryHealthcare BusinessCategory = "healthcare"
	CategoryEducation  BusinessCategory = "education"
	CategoryFinance    BusinessCategory = "finance"
	CategoryOther      BusinessCategory = "other" // universal fallback
)

// Categories returns every declared category in declaration order.
func Categories() []BusinessCategory {
	return []BusinessCategory{
		CategoryRestaurant,
		CategoryEcommerce,
		CategoryService,
		CategoryHealthcare,
		CategoryEducation,
		CategoryFinance,
		CategoryOther,
	}
}

// ValidCategory reports whether s is one of the declared categories.
func ValidCategory(s string) bool {
	for _, c := range Categories() {
		if string(c) == s {
			return true
		}
	}
	return false
}

type Business struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	Category     BusinessCategory `json:"category"`
	APIKey       string           `json:"api_key"`
	NotifyChatID int64            `json:"notify_chat_id"` // Telegram chat for visitor-message alerts (0 = disabled)
	AdminID      int              `json:"admin_id"`
	CreatedAt    time.Time        `json:"created_at"`
}
