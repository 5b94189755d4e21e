package parse

import "strings"

// idioms is the fixed set of multi-word numeric phrases the vocabulary
// memory knows how to resolve.
var idioms = map[string]float64{
	"setengah juta":   500000,
	"seperempat juta": 250000,
	"satu juta":       1000000,
	"setengah miliar": 500000000,
}

// VocabStore persists learned phrase-to-value associations.
type VocabStore interface {
	UpsertVocab(phrase string, value float64) error
}

// Vocab opportunistically records numeric idioms seen in user text.
// The mapping grows monotonically and is not consulted by Parse; it is an
// extension point for a future phrase-aware parser.
type Vocab struct {
	store VocabStore
}

// NewVocab returns a Vocab backed by the given store.
func NewVocab(store VocabStore) *Vocab {
	return &Vocab{store: store}
}

// Learn scans text for known idioms and upserts any it finds.
// A text without idioms is a no-op. Store failures are returned so the
// caller can log and move on.
func (v *Vocab) Learn(text string) error {
	if v == nil || v.store == nil {
		return nil
	}
	lower := strings.ToLower(text)
	for phrase, value := range idioms {
		if strings.Contains(lower, phrase) {
			if err := v.store.UpsertVocab(phrase, value); err != nil {
				return err
			}
		}
	}
	return nil
}
