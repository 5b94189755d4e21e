// Package advisor implements the adaptive allocation model: a small dense
// network that learns essentials/savings/wants ratios from transaction
// history and predicts a split with a confidence score.
package advisor

import (
	"math"
	"math/rand"
)

// Layer sizes of the allocation network: 6 features in, 3 ratios out.
var defaultLayers = []int{6, 32, 24, 3}

// Network is a dense feed-forward model with ReLU hidden layers and a
// softmax output. Weights accumulate across training calls; they are never
// reset unless the persisted model is deleted.
type Network struct {
	Layers  []int         `json:"layers"`
	Weights [][][]float64 `json:"weights"` // Weights[l][out][in]
	Biases  [][]float64   `json:"biases"`
}

// NewNetwork creates a network with small random initial weights.
func NewNetwork() *Network {
	return newNetwork(rand.New(rand.NewSource(rand.Int63())))
}

func newNetwork(rng *rand.Rand) *Network {
	n := &Network{Layers: append([]int(nil), defaultLayers...)}
	for l := 0; l < len(n.Layers)-1; l++ {
		in, out := n.Layers[l], n.Layers[l+1]
		scale := math.Sqrt(2.0 / float64(in))
		w := make([][]float64, out)
		for o := range w {
			w[o] = make([]float64, in)
			for i := range w[o] {
				w[o][i] = rng.NormFloat64() * scale
			}
		}
		n.Weights = append(n.Weights, w)
		n.Biases = append(n.Biases, make([]float64, out))
	}
	return n
}

// valid reports whether the stored shapes line up; a corrupt weights file
// fails this and is discarded by the loader.
func (n *Network) valid() bool {
	if n == nil || len(n.Layers) < 2 {
		return false
	}
	if len(n.Weights) != len(n.Layers)-1 || len(n.Biases) != len(n.Layers)-1 {
		return false
	}
	for l := 0; l < len(n.Layers)-1; l++ {
		if len(n.Weights[l]) != n.Layers[l+1] || len(n.Biases[l]) != n.Layers[l+1] {
			return false
		}
		for _, row := range n.Weights[l] {
			if len(row) != n.Layers[l] {
				return false
			}
		}
	}
	return true
}

// Forward runs inference and returns the softmax output.
func (n *Network) Forward(x []float64) []float64 {
	_, acts := n.activations(x)
	out := acts[len(acts)-1]
	return append([]float64(nil), out...)
}

// activations returns pre-activation and activation values per layer,
// with the input as layer 0 of acts.
func (n *Network) activations(x []float64) (zs [][]float64, acts [][]float64) {
	a := append([]float64(nil), x...)
	acts = append(acts, a)
	last := len(n.Weights) - 1
	for l := range n.Weights {
		z := make([]float64, len(n.Weights[l]))
		for o := range n.Weights[l] {
			sum := n.Biases[l][o]
			for i, w := range n.Weights[l][o] {
				sum += w * a[i]
			}
			z[o] = sum
		}
		zs = append(zs, z)
		if l == last {
			a = softmax(z)
		} else {
			a = relu(z)
		}
		acts = append(acts, a)
	}
	return zs, acts
}

// Fit runs epochs of per-example gradient descent with MSE loss against
// the softmax output. Updates are in place; prior weights are the starting
// point, not discarded.
func (n *Network) Fit(examples []Example, epochs int, lr float64) {
	for e := 0; e < epochs; e++ {
		for _, ex := range examples {
			n.step(ex.X[:], ex.Y[:], lr)
		}
	}
}

func (n *Network) step(x, target []float64, lr float64) {
	zs, acts := n.activations(x)
	out := acts[len(acts)-1]

	// MSE loss through the softmax: dL/dz_j = y_j * (g_j - sum_i g_i*y_i)
	// where g = dL/dy.
	g := make([]float64, len(out))
	for i := range out {
		g[i] = 2 * (out[i] - target[i]) / float64(len(out))
	}
	dot := 0.0
	for i := range out {
		dot += g[i] * out[i]
	}
	delta := make([]float64, len(out))
	for j := range out {
		delta[j] = out[j] * (g[j] - dot)
	}

	for l := len(n.Weights) - 1; l >= 0; l-- {
		prev := acts[l]
		var nextDelta []float64
		if l > 0 {
			nextDelta = make([]float64, len(prev))
			for i := range prev {
				sum := 0.0
				for o := range n.Weights[l] {
					sum += n.Weights[l][o][i] * delta[o]
				}
				if zs[l-1][i] <= 0 { // ReLU gate
					sum = 0
				}
				nextDelta[i] = sum
			}
		}
		for o := range n.Weights[l] {
			for i := range n.Weights[l][o] {
				n.Weights[l][o][i] -= lr * delta[o] * prev[i]
			}
			n.Biases[l][o] -= lr * delta[o]
		}
		delta = nextDelta
	}
}

func relu(z []float64) []float64 {
	a := make([]float64, len(z))
	for i, v := range z {
		if v > 0 {
			a[i] = v
		}
	}
	return a
}

func softmax(z []float64) []float64 {
	max := math.Inf(-1)
	for _, v := range z {
		if v > max {
			max = v
		}
	}
	a := make([]float64, len(z))
	sum := 0.0
	for i, v := range z {
		a[i] = math.Exp(v - max)
		sum += a[i]
	}
	if sum == 0 {
		sum = 1
	}
	for i := range a {
		a[i] /= sum
	}
	return a
}
