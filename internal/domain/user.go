package domain

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultWallet is the balance credited to every new account.
const DefaultWallet = 10000

// User Model
type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`                 // Primary key
	Username string  `gorm:"unique;not null" json:"username"`      // Unique username
	Password string  `gorm:"not null" json:"-"`                    // Bcrypt hash, never serialized
	Email    string  `json:"email"`                                // Contact email
	Role     string  `gorm:"default:user" json:"role"`             // Role: user or admin
	Wallet   float64 `gorm:"not null;default:10000" json:"wallet"` // Balance, single implied currency
}
