package entities

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	Role         string `json:"role"`        // "admin" (business) or "super_admin"
	BusinessID   int    `json:"business_id"` // 0 for super admins
}
