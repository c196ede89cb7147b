package domain

// Deposit request states. pending is initial, approved is terminal;
// there is no rejected state.
const (
	DepositPending  = "pending"
	DepositApproved = "approved"
)

// DepositRequest Model
type DepositRequest struct {
	ID        uint    `gorm:"primaryKey" json:"id"`                 // Primary key
	UserID    uint    `gorm:"index;not null" json:"user_id"`        // Foreign key to User
	Amount    float64 `gorm:"not null" json:"amount"`               // Deposit amount, positive
	UTR       string  `json:"utr"`                                  // Free-text proof-of-payment reference
	Status    string  `gorm:"default:pending" json:"status"`        // pending or approved
	CreatedAt int64   `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
