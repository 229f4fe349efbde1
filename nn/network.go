// Package nn is a minimal single-hidden-layer regression network whose
// weight update goes through matrix.Dense's Jacobian/SolveSymmetric/SolveQR
// surface, the thing this whole module exists to exercise, not a general
// deep learning library. The hidden layer is fixed at Glorot-initialized
// random weights (an extreme-learning-machine arrangement); only the output
// layer is trained, by batch Gauss-Newton (Levenberg-Marquardt) steps
// against the normal equations (JᵀJ + mu*I)*delta = Jᵀe.
package nn

import "math"

// Sample is one (input, target) training pair.
type Sample struct {
	X []float64
	Y float64
}

func sigmoid(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

// Network is a fixed-random-hidden-layer, trainable-output-layer regressor.
type Network struct {
	Hidden [][]float64 // Hid rows, each NIn+1 wide (column 0 is the bias weight)
	Output []float64   // Hid+1 wide, column 0 is the bias weight

	NIn int
	Hid int
}

// NewNetwork builds a network with nIn inputs and hid hidden units, drawing
// every weight from src (expected to be an *internal/rng.Source or
// equivalent) with Glorot-style scaling: W ~ U[-r, r], r = sqrt(6/(fan_in+fan_out)).
func NewNetwork(nIn, hid int, src interface{ Float64() float64 }) *Network {
	n := &Network{NIn: nIn, Hid: hid}

	rHidden := math.Sqrt(6.0 / float64(nIn+hid+1))
	n.Hidden = make([][]float64, hid)
	for i := range n.Hidden {
		row := make([]float64, nIn+1)
		for j := range row {
			row[j] = 2*rHidden*src.Float64() - rHidden
		}
		n.Hidden[i] = row
	}

	rOutput := math.Sqrt(6.0 / float64(hid+2))
	n.Output = make([]float64, hid+1)
	for i := range n.Output {
		n.Output[i] = 2*rOutput*src.Float64() - rOutput
	}

	return n
}

// NumWeights returns the count of trainable (output-layer) weights.
func (n *Network) NumWeights() int { return n.Hid + 1 }

// Weights returns a copy of the current output-layer weights.
func (n *Network) Weights() []float64 {
	w := make([]float64, len(n.Output))
	copy(w, n.Output)
	return w
}

// SetWeights replaces the output-layer weights, committing an accepted
// Levenberg-Marquardt step.
func (n *Network) SetWeights(w []float64) { n.Output = w }

func (n *Network) hiddenActivations(x []float64) []float64 {
	out := make([]float64, n.Hid)
	for i := 0; i < n.Hid; i++ {
		z := n.Hidden[i][0]
		for j := 0; j < n.NIn; j++ {
			z += n.Hidden[i][j+1] * x[j]
		}
		out[i] = sigmoid(z)
	}
	return out
}

func (n *Network) forwardWith(weights []float64, x []float64) (y float64, hidden []float64) {
	hidden = n.hiddenActivations(x)
	z := weights[0]
	for i := 0; i < n.Hid; i++ {
		z += weights[i+1] * hidden[i]
	}
	return sigmoid(z), hidden
}

// Forward computes the network's current output for x.
func (n *Network) Forward(x []float64) float64 {
	y, _ := n.forwardWith(n.Output, x)
	return y
}

// ReduceLossAt returns the total squared error weights would produce over
// samples, without mutating the network.
func (n *Network) ReduceLossAt(weights []float64, samples []Sample) float64 {
	var sum float64
	for _, s := range samples {
		y, _ := n.forwardWith(weights, s.X)
		d := y - s.Y
		sum += d * d
	}
	return sum
}

// ReduceLoss returns the total squared error of the network's current
// weights over samples (spec.md's reduce_loss(dataset) -> scalar).
func (n *Network) ReduceLoss(samples []Sample) float64 {
	var sum float64
	for _, s := range samples {
		d := n.Forward(s.X) - s.Y
		sum += d * d
	}
	return sum
}
