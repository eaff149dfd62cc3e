package native

import "math"

// bisect brackets a sign change of f over [lo,hi] and narrows it by regular
// bisection. It is a simplified stand-in for the reference's toms748
// bracket-and-bisect search: slower per iteration, but dependency-free and
// adequate for the low iteration counts split-vertex placement needs.
// Returns ok=false (the "bracketing" error kind) if no sign change is found
// within a handful of range-doubling attempts.
func bisect(f func(float64) float64, lo, hi float64, maxIter int) (root float64, ok bool) {
	flo, fhi := f(lo), f(hi)
	tries := 0
	for flo*fhi > 0 && tries < 6 {
		width := hi - lo
		lo -= width / 2
		hi += width / 2
		flo, fhi = f(lo), f(hi)
		tries++
	}
	if flo*fhi > 0 {
		return 0, false
	}
	if flo == 0 {
		return lo, true
	}
	if fhi == 0 {
		return hi, true
	}
	for i := 0; i < maxIter; i++ {
		mid := (lo + hi) / 2
		fm := f(mid)
		if fm == 0 || (hi-lo) < 1e-12 {
			return mid, true
		}
		if math.Signbit(fm) == math.Signbit(flo) {
			lo, flo = mid, fm
		} else {
			hi, fhi = mid, fm
		}
	}
	return (lo + hi) / 2, true
}
