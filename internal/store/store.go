// Package store provides the SQLite-backed local database for profiles,
// transactions, the conversation log, and vocabulary memory.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/adiwerna/duita/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the single-file sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveProfile overwrites the single persisted profile row. Each save also
// records an income sample so the advisor sees how income moves over time.
func (s *Store) SaveProfile(p model.Profile) error {
	var target, durAmount sql.NullFloat64
	var durUnit sql.NullString
	if p.Target != nil {
		target = sql.NullFloat64{Float64: *p.Target, Valid: true}
	}
	if p.Duration != nil {
		durAmount = sql.NullFloat64{Float64: p.Duration.Amount, Valid: true}
		durUnit = sql.NullString{String: string(p.Duration.Unit), Valid: true}
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO profile
		(id, income, period, savings_now, target, duration_amount, duration_unit, currency, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Income, string(p.Period), p.SavingsNow, target, durAmount, durUnit,
		p.Currency, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	if p.Income > 0 {
		return s.AddIncomeSample(p.Income)
	}
	return nil
}

// LoadProfile returns the persisted profile, or nil when none exists.
// A malformed row reads as nil rather than an error: callers start fresh.
func (s *Store) LoadProfile() *model.Profile {
	row := s.db.QueryRow(`SELECT income, period, savings_now, target,
		duration_amount, duration_unit, currency, updated_at FROM profile WHERE id = 1`)

	var p model.Profile
	var period, currency, updated string
	var target, durAmount sql.NullFloat64
	var durUnit sql.NullString

	if err := row.Scan(&p.Income, &period, &p.SavingsNow, &target,
		&durAmount, &durUnit, &currency, &updated); err != nil {
		return nil
	}

	p.Period = model.Period(period)
	p.Currency = currency
	if p.Currency == "" {
		p.Currency = "IDR"
	}
	if target.Valid {
		v := target.Float64
		p.Target = &v
	}
	if durAmount.Valid && durUnit.Valid {
		p.Duration = &model.Duration{Amount: durAmount.Float64, Unit: model.Period(durUnit.String)}
	}
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &p
}

// AppendTurn appends one entry to the conversation log.
func (s *Store) AppendTurn(turn model.Turn) error {
	ts := turn.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.Exec(`INSERT INTO conversation (sender, text, ts) VALUES (?, ?, ?)`,
		string(turn.Sender), turn.Text, ts.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("appending turn: %w", err)
	}
	return nil
}

// Conversation returns the full log in insertion order.
func (s *Store) Conversation() ([]model.Turn, error) {
	rows, err := s.db.Query(`SELECT sender, text, ts FROM conversation ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var turns []model.Turn
	for rows.Next() {
		var t model.Turn
		var sender, ts string
		if err := rows.Scan(&sender, &t.Text, &ts); err != nil {
			return nil, err
		}
		t.Sender = model.Sender(sender)
		t.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// AddTransaction appends a transaction, assigning an ID when absent.
func (s *Store) AddTransaction(t model.Transaction) (model.Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now()
	}
	_, err := s.db.Exec(`INSERT INTO transactions (id, description, amount, category, ts)
		VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.Description, t.Amount, string(t.Category), t.Timestamp.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return t, fmt.Errorf("adding transaction: %w", err)
	}
	return t, nil
}

// Transactions returns all transactions oldest first.
func (s *Store) Transactions() ([]model.Transaction, error) {
	rows, err := s.db.Query(`SELECT id, description, amount, category, ts FROM transactions ORDER BY ts, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var category, ts string
		if err := rows.Scan(&t.ID, &t.Description, &t.Amount, &category, &ts); err != nil {
			return nil, err
		}
		t.Category = model.Category(category)
		t.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// SpendingHistory returns per-calendar-day totals for the trailing window,
// oldest day first. Days without transactions report zero.
func (s *Store) SpendingHistory(days int) ([]model.DaySpend, error) {
	txs, err := s.Transactions()
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, t := range txs {
		totals[t.Timestamp.Local().Format("2006-01-02")] += t.Amount
	}

	now := time.Now()
	out := make([]model.DaySpend, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := time.Date(now.Year(), now.Month(), now.Day()-i, 0, 0, 0, 0, time.Local)
		out = append(out, model.DaySpend{Date: day, Total: totals[day.Format("2006-01-02")]})
	}
	return out, nil
}

// AddWish appends a wishlist item, assigning an ID when absent.
func (s *Store) AddWish(w model.WishItem) (model.WishItem, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Timestamp.IsZero() {
		w.Timestamp = time.Now()
	}
	_, err := s.db.Exec(`INSERT INTO wishlist (id, name, price, ts) VALUES (?, ?, ?, ?)`,
		w.ID, w.Name, w.Price, w.Timestamp.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return w, fmt.Errorf("adding wish: %w", err)
	}
	return w, nil
}

// Wishlist returns all wishlist items oldest first.
func (s *Store) Wishlist() ([]model.WishItem, error) {
	rows, err := s.db.Query(`SELECT id, name, price, ts FROM wishlist ORDER BY ts, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.WishItem
	for rows.Next() {
		var w model.WishItem
		var ts string
		if err := rows.Scan(&w.ID, &w.Name, &w.Price, &ts); err != nil {
			return nil, err
		}
		w.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		items = append(items, w)
	}
	return items, rows.Err()
}

// DeleteWish removes a wishlist item by ID.
func (s *Store) DeleteWish(id string) error {
	_, err := s.db.Exec(`DELETE FROM wishlist WHERE id = ?`, id)
	return err
}

// UpsertVocab records a learned phrase-to-value association.
func (s *Store) UpsertVocab(phrase string, value float64) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO vocab (phrase, value) VALUES (?, ?)`, phrase, value)
	if err != nil {
		return fmt.Errorf("upserting vocab: %w", err)
	}
	return nil
}

// Vocab returns the learned phrase mappings.
func (s *Store) Vocab() (map[string]float64, error) {
	rows, err := s.db.Query(`SELECT phrase, value FROM vocab`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]float64)
	for rows.Next() {
		var phrase string
		var value float64
		if err := rows.Scan(&phrase, &value); err != nil {
			return nil, err
		}
		out[phrase] = value
	}
	return out, rows.Err()
}

// maxIncomeSamples bounds the recent-income memory used as a model feature.
const maxIncomeSamples = 50

// AddIncomeSample records an income figure, trimming to the newest 50.
func (s *Store) AddIncomeSample(amount float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`INSERT INTO income_samples (amount, ts) VALUES (?, ?)`,
		amount, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("adding income sample: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM income_samples WHERE id NOT IN
		(SELECT id FROM income_samples ORDER BY id DESC LIMIT ?)`, maxIncomeSamples); err != nil {
		return fmt.Errorf("trimming income samples: %w", err)
	}
	return tx.Commit()
}

// RecentIncomes returns recorded income samples oldest first.
func (s *Store) RecentIncomes() ([]float64, error) {
	rows, err := s.db.Query(`SELECT amount FROM income_samples ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Reset wipes profile, conversation, transactions, wishlist, vocabulary,
// and income samples. The model weights file lives elsewhere and survives.
func (s *Store) Reset() error {
	for _, table := range []string{"profile", "conversation", "transactions", "wishlist", "vocab", "income_samples"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("resetting %s: %w", table, err)
		}
	}
	return nil
}
