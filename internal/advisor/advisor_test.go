package advisor

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adiwerna/duita/internal/model"
)

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func tx(amount float64, cat model.Category) model.Transaction {
	return model.Transaction{
		ID:          "t",
		Description: "test",
		Amount:      amount,
		Category:    cat,
		Timestamp:   time.Now(),
	}
}

func history(n int, cat model.Category) []model.Transaction {
	out := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, tx(10000, cat))
	}
	return out
}

func TestBuildExamples_WindowSizes(t *testing.T) {
	examples := BuildExamples(history(12, model.Essentials), nil)
	// windows 3, 6, 9, 12
	if len(examples) != 4 {
		t.Fatalf("examples = %d, want 4", len(examples))
	}
	for _, ex := range examples {
		if ex.Y[0] != 1 || ex.Y[1] != 0 || ex.Y[2] != 0 {
			t.Errorf("all-essentials history label = %v, want [1 0 0]", ex.Y)
		}
	}
}

func TestBuildExamples_CapsAtThirty(t *testing.T) {
	examples := BuildExamples(history(90, model.Wants), nil)
	if len(examples) != 10 {
		t.Errorf("examples = %d, want 10 (windows 3..30)", len(examples))
	}
}

func TestBuildExamples_FallbackRuleOfThumb(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		examples := BuildExamples(history(n, model.Savings), nil)
		if len(examples) != 1 {
			t.Fatalf("history=%d: examples = %d, want 1 fallback", n, len(examples))
		}
		if examples[0].Y != fallbackRatios {
			t.Errorf("fallback label = %v, want %v", examples[0].Y, fallbackRatios)
		}
	}
}

func TestObservedRatios_ZeroTotalGuard(t *testing.T) {
	zero := []model.Transaction{tx(0, model.Essentials), tx(0, model.Wants), tx(0, model.Savings)}
	ratios := observedRatios(zero)
	if ratios != [3]float64{} {
		t.Errorf("zero-sum ratios = %v, want zeros, not NaN", ratios)
	}
}

func TestPredict_NormalizedAndBounded(t *testing.T) {
	a := New(nil, quietLog())
	hist := append(history(6, model.Essentials), history(3, model.Wants)...)

	p := a.Predict(2000000, hist, []float64{2000000, 2500000})

	sum := p.Ratios[0] + p.Ratios[1] + p.Ratios[2]
	if math.Abs(sum-1) > 1e-6 {
		t.Errorf("ratio sum = %v, want 1", sum)
	}
	for i, r := range p.Ratios {
		if r < 0 || math.IsNaN(r) {
			t.Errorf("ratio[%d] = %v, want non-negative number", i, r)
		}
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		t.Errorf("confidence = %v, want within [0,1]", p.Confidence)
	}
}

func TestTrain_SequentialDisjointHistories(t *testing.T) {
	store := FileStore{Path: filepath.Join(t.TempDir(), "model.json")}
	a := New(store, quietLog())

	a.Train(history(9, model.Essentials), []float64{3000000})
	a.Train(history(9, model.Wants), []float64{1500000})

	p := a.Predict(3000000, history(9, model.Wants), []float64{1500000})
	sum := p.Ratios[0] + p.Ratios[1] + p.Ratios[2]
	if math.Abs(sum-1) > 1e-6 {
		t.Errorf("ratio sum after retrains = %v, want 1", sum)
	}
	for i, r := range p.Ratios {
		if math.IsNaN(r) {
			t.Errorf("ratio[%d] is NaN after sequential training", i)
		}
	}
}

func TestFit_ReducesLoss(t *testing.T) {
	n := newNetwork(rand.New(rand.NewSource(42)))
	examples := BuildExamples(history(30, model.Savings), nil)

	before := meanLoss(n, examples)
	n.Fit(examples, 200, 0.01)
	after := meanLoss(n, examples)

	if after >= before {
		t.Errorf("loss did not decrease: before %v after %v", before, after)
	}
}

func meanLoss(n *Network, examples []Example) float64 {
	total := 0.0
	for _, ex := range examples {
		out := n.Forward(ex.X[:])
		for i := range out {
			d := out[i] - ex.Y[i]
			total += d * d
		}
	}
	return total / float64(len(examples))
}

func TestTrain_SaveFailureIsSwallowed(t *testing.T) {
	// A store path pointing at a directory makes the final rename fail.
	dir := t.TempDir()
	a := New(FileStore{Path: dir}, quietLog())

	a.Train(history(6, model.Essentials), nil) // must not panic or abort

	p := a.Predict(1000000, history(6, model.Essentials), nil)
	if math.IsNaN(p.Ratios[0]) {
		t.Error("in-memory model unusable after failed save")
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := FileStore{Path: filepath.Join(t.TempDir(), "model.json")}

	orig := NewNetwork()
	orig.Fit(BuildExamples(history(6, model.Wants), nil), 5, 0.01)
	if err := store.Save(orig); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load returned nil for existing model")
	}

	in := []float64{1, 0.2, 0.5, 0.3, 0.3, 0.4}
	want := orig.Forward(in)
	got := loaded.Forward(in)
	for i := range want {
		if math.Abs(want[i]-got[i]) > 1e-9 {
			t.Errorf("output[%d] = %v, want %v after round trip", i, got[i], want[i])
		}
	}
}

func TestFileStore_MissingReturnsNil(t *testing.T) {
	store := FileStore{Path: filepath.Join(t.TempDir(), "absent.json")}
	n, err := store.Load()
	if err != nil || n != nil {
		t.Errorf("Load missing = (%v, %v), want (nil, nil)", n, err)
	}
}

func TestFileStore_CorruptReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	store := FileStore{Path: path}
	n, err := store.Load()
	if n != nil {
		t.Error("Load returned a network from corrupt data")
	}
	if err == nil {
		t.Error("Load of corrupt file returned nil error")
	}
}
