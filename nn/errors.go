package nn

import "github.com/pkg/errors"

// ErrDegraded is the sentinel wrapped around a weight update that could not
// be trusted: the Gauss-Newton normal equations (JᵀJ + mu*I) were not
// positive-definite even after SolveQR's fallback produced a non-finite
// step. The training loop treats it as a signal to dilate mu and retry,
// not a fatal condition. Train also returns it, wrapped, when its step
// budget runs out before the loss target is reached.
var ErrDegraded = errors.New("nn: weight update degraded")
