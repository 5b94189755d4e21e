package advisor

import (
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/adiwerna/duita/internal/model"
)

// Training hyperparameters: a small fixed number of passes per trigger,
// so each retrain nudges the weights toward recent spending patterns.
const (
	trainEpochs  = 25
	learningRate = 0.01
)

// ModelStore persists network weights. Load returns (nil, nil) for a
// missing or unreadable model; Save must be atomic so a failed write
// leaves the previous model intact.
type ModelStore interface {
	Load() (*Network, error)
	Save(*Network) error
}

// Prediction is a normalized allocation split with a heuristic confidence:
// closeness between the model output and the empirically observed ratios,
// not a calibrated probability.
type Prediction struct {
	Ratios     [3]float64
	Confidence float64
}

// Advisor owns the single in-memory model instance. Training calls are
// serialized with a mutex; a second trigger waits for the first to finish.
type Advisor struct {
	mu    sync.Mutex
	store ModelStore
	log   *logrus.Logger
	net   *Network
}

// New returns an Advisor backed by the given model store.
func New(store ModelStore, log *logrus.Logger) *Advisor {
	if log == nil {
		log = logrus.New()
	}
	return &Advisor{store: store, log: log}
}

// network returns the cached model, loading or creating it on first use.
func (a *Advisor) network() *Network {
	if a.net != nil {
		return a.net
	}
	if a.store != nil {
		n, err := a.store.Load()
		if err != nil {
			a.log.WithError(err).Warn("model load failed, starting fresh")
		}
		if n != nil {
			a.net = n
			return a.net
		}
	}
	a.net = NewNetwork()
	return a.net
}

// Train rebuilds the example set from history and runs incremental
// gradient passes on top of the existing weights, then persists the
// result. A failed save is logged and swallowed: the in-memory model keeps
// the new weights, the store keeps the old ones.
func (a *Advisor) Train(tx []model.Transaction, recentIncomes []float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := a.network()
	examples := BuildExamples(tx, recentIncomes)
	n.Fit(examples, trainEpochs, learningRate)

	if a.store != nil {
		if err := a.store.Save(n); err != nil {
			a.log.WithError(err).Warn("model save failed, keeping previous persisted weights")
		}
	}
	a.log.WithFields(logrus.Fields{
		"examples": len(examples),
		"history":  len(tx),
	}).Info("allocation model trained")
}

// Predict runs inference for the given income figure against recorded
// history. The raw output is re-normalized to sum to 1, guarding against
// a degenerate near-zero total.
func (a *Advisor) Predict(income float64, tx []model.Transaction, recentIncomes []float64) Prediction {
	a.mu.Lock()
	defer a.mu.Unlock()

	learned, ok := ObservedRatios(tx)
	if !ok {
		learned = fallbackRatios
	}

	out := a.network().Forward(predictFeatures(income, tx, recentIncomes, learned))

	sum := out[0] + out[1] + out[2]
	if sum < 1e-9 {
		sum = 1
	}
	var ratios [3]float64
	for i := range ratios {
		ratios[i] = out[i] / sum
	}

	mad := (math.Abs(ratios[0]-learned[0]) +
		math.Abs(ratios[1]-learned[1]) +
		math.Abs(ratios[2]-learned[2])) / 3
	conf := 1 - mad
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}

	return Prediction{Ratios: ratios, Confidence: conf}
}
