package advisor

import "github.com/adiwerna/duita/internal/model"

// Example is one training pair: a coarse window description and the
// observed ratio vector it should reconstruct.
type Example struct {
	X [6]float64
	Y [3]float64
}

// fallbackRatios is the 50/20/30 rule of thumb used when no history exists.
var fallbackRatios = [3]float64{0.5, 0.2, 0.3}

// incomeScale normalizes income features to roughly unit magnitude.
const incomeScale = 1e6

// BuildExamples derives training examples from windows over the most
// recent transactions: window sizes 3, 6, 9, ... up to min(30, len).
// With no constructable window it falls back to a single rule-of-thumb
// example so training always has something to chew on.
func BuildExamples(tx []model.Transaction, recentIncomes []float64) []Example {
	avgIncome := averageIncome(recentIncomes, incomeScale)

	var examples []Example
	limit := len(tx)
	if limit > 30 {
		limit = 30
	}
	for window := 3; window <= limit; window += 3 {
		slice := tx[len(tx)-window:]
		ratios := observedRatios(slice)
		examples = append(examples, Example{
			X: [6]float64{
				avgIncome,
				float64(window) / 30,
				float64(len(slice)) / 30,
				ratios[0], ratios[1], ratios[2],
			},
			Y: ratios,
		})
	}
	if len(examples) == 0 {
		examples = append(examples, Example{
			X: [6]float64{1, 0.1, 0.1, fallbackRatios[0], fallbackRatios[1], fallbackRatios[2]},
			Y: fallbackRatios,
		})
	}
	return examples
}

// ObservedRatios computes the empirical category split over the whole
// history. ok is false when there is no history to observe.
func ObservedRatios(tx []model.Transaction) (ratios [3]float64, ok bool) {
	if len(tx) == 0 {
		return [3]float64{}, false
	}
	return observedRatios(tx), true
}

func observedRatios(tx []model.Transaction) [3]float64 {
	total := 0.0
	var sums [3]float64
	for _, t := range tx {
		total += t.Amount
		switch t.Category {
		case model.Essentials:
			sums[0] += t.Amount
		case model.Savings:
			sums[1] += t.Amount
		case model.Wants:
			sums[2] += t.Amount
		}
	}
	if total == 0 {
		total = 1 // zero-sum window: all ratios read as 0
	}
	return [3]float64{sums[0] / total, sums[1] / total, sums[2] / total}
}

// averageIncome returns the mean of the last ten samples divided by scale,
// defaulting to one million rupiah when no samples exist.
func averageIncome(recentIncomes []float64, scale float64) float64 {
	samples := recentIncomes
	if len(samples) > 10 {
		samples = samples[len(samples)-10:]
	}
	if len(samples) == 0 {
		return 1000000 / scale
	}
	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples)) / scale
}

// predictFeatures builds the single inference vector from current state.
func predictFeatures(income float64, tx []model.Transaction, recentIncomes []float64, learned [3]float64) []float64 {
	avgIncome := income / incomeScale
	if len(recentIncomes) > 0 {
		sum := 0.0
		for _, v := range recentIncomes {
			sum += v
		}
		avgIncome = sum / float64(len(recentIncomes)) / incomeScale
	}

	histShare := float64(len(tx)) / 30
	if histShare > 1 {
		histShare = 1
	}
	recent := len(tx)
	if recent > 7 {
		recent = 7
	}
	recentShare := float64(recent) / 7

	return []float64{avgIncome, histShare, recentShare, learned[0], learned[1], learned[2]}
}
