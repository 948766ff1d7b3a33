// seehuhn.de/go/linechart - line chart layout and geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package calc

import "math"

// Strength is a coarse classification of a Pearson correlation coefficient.
type Strength int

// The correlation bands, from strongest positive to strongest negative.
const (
	StrengthPerfectPositive Strength = iota // r >= 0.95
	StrengthStrongPositive                  // 0.50 <= r < 0.95
	StrengthWeakPositive                    // 0.05 < r < 0.50
	StrengthNone                            // -0.05 <= r <= 0.05, or NaN
	StrengthWeakNegative                    // -0.50 < r < -0.05
	StrengthStrongNegative                  // -0.95 < r <= -0.50
	StrengthPerfectNegative                 // r <= -0.95
)

func (s Strength) String() string {
	switch s {
	case StrengthPerfectPositive:
		return "perfect positive"
	case StrengthStrongPositive:
		return "strong positive"
	case StrengthWeakPositive:
		return "weak positive"
	case StrengthNone:
		return "none"
	case StrengthWeakNegative:
		return "weak negative"
	case StrengthStrongNegative:
		return "strong negative"
	case StrengthPerfectNegative:
		return "perfect negative"
	default:
		return "unknown"
	}
}

// Classify returns the band containing r.  NaN is classified as
// StrengthNone.
func Classify(r float64) Strength {
	switch {
	case math.IsNaN(r):
		return StrengthNone
	case r >= 0.95:
		return StrengthPerfectPositive
	case r >= 0.50:
		return StrengthStrongPositive
	case r > 0.05:
		return StrengthWeakPositive
	case r >= -0.05:
		return StrengthNone
	case r > -0.50:
		return StrengthWeakNegative
	case r > -0.95:
		return StrengthStrongNegative
	default:
		return StrengthPerfectNegative
	}
}

// Correlation returns Pearson's correlation coefficient of the pairs
// (xs[i], ys[i]).  If the slices differ in length, only the common prefix
// is used.
//
// If there are no pairs, the result is 0.  The result is NaN if the
// denominator vanishes, for example when either sequence is constant.
func Correlation(xs, ys []float64) float64 {
	n := min(len(xs), len(ys))
	if n == 0 {
		return 0
	}

	var sx, sy, sxy, sxx, syy float64
	for i := range n {
		x, y := xs[i], ys[i]
		sx += x
		sy += y
		sxy += x * y
		sxx += x * x
		syy += y * y
	}

	fn := float64(n)
	num := fn*sxy - sx*sy
	den := math.Sqrt(fn*sxx-sx*sx) * math.Sqrt(fn*syy-sy*sy)
	if den == 0 || math.IsNaN(den) {
		return math.NaN()
	}
	return num / den
}

// SeriesCorrelation correlates ys against synthesized x-values (i+1)*scale.
// A scale of 0 is treated as 1.
func SeriesCorrelation(ys []float64, scale float64) float64 {
	if scale == 0 {
		scale = 1
	}
	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i+1) * scale
	}
	return Correlation(xs, ys)
}
