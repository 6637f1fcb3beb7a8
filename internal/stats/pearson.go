// ABOUTME: Pearson correlation over equal-length numeric series.
// ABOUTME: Returns ok=false instead of erroring when correlation is undefined.
package stats

import "math"

// Pearson computes the Pearson correlation coefficient between two
// equal-length series. Pairs are taken positionally; callers align the
// series before calling. The second return is false when the
// coefficient is undefined: mismatched lengths, fewer than two points,
// or zero variance in either series.
func Pearson(a, b []float64) (float64, bool) {
	n := len(a)
	if n != len(b) || n < 2 {
		return 0, false
	}

	var sumA, sumB float64
	for i := 0; i < n; i++ {
		sumA += a[i]
		sumB += b[i]
	}
	meanA := sumA / float64(n)
	meanB := sumB / float64(n)

	var cov, varA, varB float64
	for i := 0; i < n; i++ {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	if varA == 0 || varB == 0 {
		return 0, false
	}

	r := cov / math.Sqrt(varA*varB)

	// Guard against float drift pushing r just past the bounds.
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r, true
}
