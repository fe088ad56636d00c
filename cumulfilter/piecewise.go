package cumulfilter

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// PiecewiseLinear wraps gonum's interp.PiecewiseLinear with integer
// cumul-cost semantics: the curve is clamped to its fitted domain
// rather than extrapolated, since a node's piecewise cost is only
// meaningful within the breakpoints the caller supplied.
type PiecewiseLinear struct {
	fn     interp.PiecewiseLinear
	lo, hi float64
}

// NewPiecewiseLinear fits a piecewise-linear curve over the given
// breakpoints (xs strictly increasing).
func NewPiecewiseLinear(xs, ys []float64) (*PiecewiseLinear, error) {
	var fn interp.PiecewiseLinear
	if err := fn.Fit(xs, ys); err != nil {
		return nil, err
	}

	return &PiecewiseLinear{fn: fn, lo: xs[0], hi: xs[len(xs)-1]}, nil
}

// Cost evaluates the curve at cumul value x, clamped to the fitted domain.
func (p *PiecewiseLinear) Cost(x int64) int64 {
	fx := float64(x)
	if fx < p.lo {
		fx = p.lo
	}
	if fx > p.hi {
		fx = p.hi
	}

	return int64(math.Round(p.fn.Predict(fx)))
}
