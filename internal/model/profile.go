// Package model defines domain types for duita profiles, transactions, and predictions.
package model

import "time"

// Period is the reporting cadence of an income figure.
type Period string

// Valid periods.
const (
	PerDay   Period = "day"
	PerMonth Period = "month"
	PerYear  Period = "year"
)

// Days returns the fixed day-count used to normalize a period to a daily baseline.
func (p Period) Days() int {
	switch p {
	case PerMonth:
		return 30
	case PerYear:
		return 365
	default:
		return 1
	}
}

// Valid reports whether p is one of the three known periods.
func (p Period) Valid() bool {
	return p == PerDay || p == PerMonth || p == PerYear
}

// Duration is a user-stated time span for reaching a savings target.
type Duration struct {
	Amount float64 `json:"amount"`
	Unit   Period  `json:"unit"`
}

// Profile is the financial profile collected by the chat session.
// Target and Duration are nil when the user opted out of them.
type Profile struct {
	Income     float64   `json:"income"`
	Period     Period    `json:"period"`
	SavingsNow float64   `json:"savings_now"`
	Target     *float64  `json:"target,omitempty"`
	Duration   *Duration `json:"duration,omitempty"`
	Currency   string    `json:"currency"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewProfile returns a fresh profile with the default currency.
func NewProfile() Profile {
	return Profile{Currency: "IDR"}
}
