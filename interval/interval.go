// Package interval implements ExtendedInterval, the arithmetic substrate
// shared by dimension and cumulfilter: a closed interval
// [Min, Max] augmented with infinity counts (NegInf, PosInf) so that
// transiting through an unbounded quantity (an unconstrained wait time,
// an uncapped slack) keeps the underlying bound arithmetic finite while
// still composing associatively (spec.md §3).
//
// An ExtendedInterval with NegInf > 0 is unbounded below: its Min is not
// consulted, and combining operations use saturate.MinInt64 in its place,
// so a later intersection with a finite interval takes that interval's
// bound without ever performing arithmetic on ±∞ itself. PosInf > 0 is
// symmetric for above.
package interval

import "github.com/katalvlaran/pathguard/saturate"

// ExtendedInterval is a closed interval [Min, Max] with infinity counts.
// NegInf > 0 means the interval is unbounded below (Min then holds a
// sentinel and is not read); PosInf > 0 is symmetric for above.
type ExtendedInterval struct {
	Min, Max       int64
	NegInf, PosInf int64
}

// Full is the universal interval: unbounded below and above.
func Full() ExtendedInterval {
	return ExtendedInterval{
		Min: saturate.MaxInt64, Max: saturate.MinInt64,
		NegInf: 1, PosInf: 1,
	}
}

// Point returns the degenerate interval [v, v] with no infinities.
func Point(v int64) ExtendedInterval {
	return ExtendedInterval{Min: v, Max: v}
}

// Closed returns the finite interval [lo, hi] with no infinities.
// If lo > hi the result IsEmpty.
func Closed(lo, hi int64) ExtendedInterval {
	return ExtendedInterval{Min: lo, Max: hi}
}

// IsEmpty reports whether the interval admits no value. A finite
// interval is empty iff Min > Max; an interval with a nonzero infinity
// count is never empty (there's always a value past the infinity).
func (e ExtendedInterval) IsEmpty() bool {
	if e.NegInf > 0 || e.PosInf > 0 {
		return false
	}

	return e.Min > e.Max
}

// lowerBound returns the effective finite lower bound used when
// combining with another interval: -∞ if NegInf > 0 (represented by
// saturate.MinInt64 so downstream Cap* arithmetic never wraps).
func (e ExtendedInterval) lowerBound() int64 {
	if e.NegInf > 0 {
		return saturate.MinInt64
	}

	return e.Min
}

// upperBound is the symmetric counterpart of lowerBound.
func (e ExtendedInterval) upperBound() int64 {
	if e.PosInf > 0 {
		return saturate.MaxInt64
	}

	return e.Max
}

// Intersect returns e & o: the tightest interval compatible with both.
// Infinity counts combine by minimum (an interval is only unbounded in
// the intersection if both operands are unbounded on that side).
func (e ExtendedInterval) Intersect(o ExtendedInterval) ExtendedInterval {
	lo := saturate.MinInt64
	if e.NegInf == 0 || o.NegInf == 0 {
		lo = maxI64(e.lowerBound(), o.lowerBound())
	}
	hi := saturate.MaxInt64
	if e.PosInf == 0 || o.PosInf == 0 {
		hi = minI64(e.upperBound(), o.upperBound())
	}
	negInf := int64(0)
	if e.NegInf > 0 && o.NegInf > 0 {
		negInf = 1
	}
	posInf := int64(0)
	if e.PosInf > 0 && o.PosInf > 0 {
		posInf = 1
	}

	return ExtendedInterval{Min: lo, Max: hi, NegInf: negInf, PosInf: posInf}
}

// Sum returns e + o, the Minkowski sum used to propagate a cumul through
// a transit interval: [e.Min+o.Min, e.Max+o.Max], saturating. Each
// infinity count of the result is 1 if either operand's is nonzero,
// else 0 (an unbounded operand makes the sum unbounded on that side
// regardless of the other operand).
func (e ExtendedInterval) Sum(o ExtendedInterval) ExtendedInterval {
	negInf := int64(0)
	if e.NegInf > 0 || o.NegInf > 0 {
		negInf = 1
	}
	posInf := int64(0)
	if e.PosInf > 0 || o.PosInf > 0 {
		posInf = 1
	}
	lo := saturate.CapAdd(e.Min, o.Min)
	hi := saturate.CapAdd(e.Max, o.Max)
	if negInf > 0 {
		lo = saturate.MinInt64
	}
	if posInf > 0 {
		hi = saturate.MaxInt64
	}

	return ExtendedInterval{Min: lo, Max: hi, NegInf: negInf, PosInf: posInf}
}

// Delta returns e - o, the transit-preserving subtraction used by the
// RIQ merge recurrence (dimension §4.3): it undoes a Sum by an interval
// that was added to produce e, recovering the tightest bound compatible
// with "e = x + o" for some x in the result.
func (e ExtendedInterval) Delta(o ExtendedInterval) ExtendedInterval {
	negInf := int64(0)
	if e.NegInf > 0 || o.PosInf > 0 {
		negInf = 1
	}
	posInf := int64(0)
	if e.PosInf > 0 || o.NegInf > 0 {
		posInf = 1
	}
	lo := saturate.CapSub(e.Min, o.Max)
	hi := saturate.CapSub(e.Max, o.Min)
	if negInf > 0 {
		lo = saturate.MinInt64
	}
	if posInf > 0 {
		hi = saturate.MaxInt64
	}

	return ExtendedInterval{Min: lo, Max: hi, NegInf: negInf, PosInf: posInf}
}

// Shift translates the interval by a finite delta, saturating and
// leaving infinity counts untouched (±∞ shifted by anything is still ±∞).
func (e ExtendedInterval) Shift(delta int64) ExtendedInterval {
	out := e
	if e.NegInf == 0 {
		out.Min = saturate.CapAdd(e.Min, delta)
	}
	if e.PosInf == 0 {
		out.Max = saturate.CapAdd(e.Max, delta)
	}

	return out
}

// ClampFinite returns the interval restricted to [lo, hi], dropping any
// infinity (the caller is asserting a known finite bound on that side).
func (e ExtendedInterval) ClampFinite(lo, hi int64) ExtendedInterval {
	min := e.lowerBound()
	max := e.upperBound()
	if min < lo {
		min = lo
	}
	if max > hi {
		max = hi
	}

	return ExtendedInterval{Min: min, Max: max}
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}
