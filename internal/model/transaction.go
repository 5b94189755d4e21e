package model

import "time"

// Category is a spending bucket.
type Category string

// Spending buckets, in ratio-vector order.
const (
	Essentials Category = "essentials"
	Savings    Category = "savings"
	Wants      Category = "wants"
)

// Categories lists the buckets in the order used by ratio vectors.
var Categories = [3]Category{Essentials, Savings, Wants}

// Valid reports whether c is a known bucket.
func (c Category) Valid() bool {
	return c == Essentials || c == Savings || c == Wants
}

// Transaction is one recorded income or spending entry. Append-only.
type Transaction struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    Category  `json:"category"`
	Timestamp   time.Time `json:"timestamp"`
}

// WishItem is a wishlist entry the user wants to save toward.
type WishItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// Sender identifies who produced a conversation turn.
type Sender string

// Turn senders.
const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Turn is one entry in the append-only conversation log.
type Turn struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// DaySpend is one point of the 14-day spending history series.
// Days with no transactions carry a zero total.
type DaySpend struct {
	Date  time.Time
	Total float64
}
