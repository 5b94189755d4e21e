package parse

import (
	"strconv"
	"testing"
)

func TestParse_PhraseMappings(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"lima ribu", 5000},
		{"setengah juta", 500000},
		{"2.500", 2500},
		{"5.000", 5000},
		{"5000", 5000},
		{"dua juta", 2000000},
		{"3 miliar", 3000000000},
		{"50 rb", 50000},
		{"tujuh ribu", 7000},
	}
	for _, c := range cases {
		got := Parse(c.in)
		if !got.Found {
			t.Errorf("Parse(%q): no value found", c.in)
			continue
		}
		if got.Value != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got.Value, c.want)
		}
	}
}

func TestParse_NoValue(t *testing.T) {
	for _, in := range []string{"", "tidak", "halo apa kabar", "nanti saja"} {
		got := Parse(in)
		if got.Found {
			t.Errorf("Parse(%q) found value %v, want none", in, got.Value)
		}
		if got.Currency != "IDR" {
			t.Errorf("Parse(%q) currency = %q, want IDR default", in, got.Currency)
		}
	}
}

func TestParse_CurrencyHints(t *testing.T) {
	cases := []struct {
		in       string
		currency string
	}{
		{"100 usd", "USD"},
		{"$100", "USD"},
		{"gaji 50 dollar", "USD"},
		{"200 eur", "EUR"},
		{"5000 rupiah", "IDR"},
		{"5000", "IDR"},
	}
	for _, c := range cases {
		got := Parse(c.in)
		if got.Currency != c.currency {
			t.Errorf("Parse(%q) currency = %q, want %q", c.in, got.Currency, c.currency)
		}
	}
}

func TestParse_FirstCurrencyHintWins(t *testing.T) {
	// USD is checked before EUR; hints never combine.
	got := Parse("100 usd eur")
	if got.Currency != "USD" {
		t.Errorf("currency = %q, want USD", got.Currency)
	}
}

func TestParse_Idempotent(t *testing.T) {
	for _, in := range []string{"lima ribu", "5.000", "setengah juta", "2 juta"} {
		first := Parse(in)
		if !first.Found {
			t.Fatalf("Parse(%q): no value", in)
		}
		again := Parse(strconv.FormatFloat(first.Value, 'f', -1, 64))
		if !again.Found || again.Value != first.Value {
			t.Errorf("reparse of %q: got %v (found=%v), want %v", in, again.Value, again.Found, first.Value)
		}
	}
}

func TestParse_FirstDigitRunWins(t *testing.T) {
	got := Parse("butuh 30 hari atau 2 bulan")
	if !got.Found || got.Value != 30 {
		t.Errorf("Parse = %v (found=%v), want 30", got.Value, got.Found)
	}
}

type fakeVocabStore struct {
	entries map[string]float64
	fail    bool
}

func (f *fakeVocabStore) UpsertVocab(phrase string, value float64) error {
	if f.fail {
		return errFake
	}
	if f.entries == nil {
		f.entries = map[string]float64{}
	}
	f.entries[phrase] = value
	return nil
}

var errFake = &fakeErr{}

type fakeErr struct{}

func (*fakeErr) Error() string { return "fake store failure" }

func TestVocab_LearnIdiom(t *testing.T) {
	fs := &fakeVocabStore{}
	v := NewVocab(fs)

	if err := v.Learn("targetku setengah juta bulan depan"); err != nil {
		t.Fatalf("Learn: %v", err)
	}
	if got := fs.entries["setengah juta"]; got != 500000 {
		t.Errorf("learned value = %v, want 500000", got)
	}
}

func TestVocab_LearnNoIdiomIsNoop(t *testing.T) {
	fs := &fakeVocabStore{}
	v := NewVocab(fs)

	if err := v.Learn("gajiku 5000 per hari"); err != nil {
		t.Fatalf("Learn: %v", err)
	}
	if len(fs.entries) != 0 {
		t.Errorf("entries = %v, want none", fs.entries)
	}
}

func TestVocab_NilStoreIsNoop(t *testing.T) {
	var v *Vocab
	if err := v.Learn("setengah juta"); err != nil {
		t.Errorf("nil vocab Learn: %v", err)
	}
}
