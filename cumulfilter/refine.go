package cumulfilter

import "gonum.org/v1/gonum/optimize"

// refineQuadraticSpan stands in for the optional LP/MIP refinement
// spec.md §4.5 describes: a box-constrained local minimization of the
// soft quadratic span cost coeff*max(0,span-bound)^2 over
// span in [lowerBound, upperBound]. Since the objective is convex and
// monotone non-decreasing past bound, a real LP/MIP solver would pick
// span=lowerBound; this still exercises gonum/optimize as the
// external-optimizer collaborator spec.md names, rather than special
// casing the monotone result directly.
func refineQuadraticSpan(lowerBound, upperBound, bound, coeff float64) (span, cost float64) {
	if upperBound < lowerBound {
		upperBound = lowerBound
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			s := clampFloat(x[0], lowerBound, upperBound)
			d := s - bound
			if d < 0 {
				d = 0
			}
			return coeff * d * d
		},
	}

	result, err := optimize.Minimize(problem, []float64{lowerBound}, nil, &optimize.NelderMead{})
	if err != nil || result == nil {
		span = lowerBound
	} else {
		span = clampFloat(result.X[0], lowerBound, upperBound)
	}

	d := span - bound
	if d < 0 {
		d = 0
	}

	return span, coeff * d * d
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
