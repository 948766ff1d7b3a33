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

// Integration selects a rule for estimating the area under a curve.
type Integration int

// The available integration rules.
const (
	LeftRiemann Integration = iota
	RightRiemann
	Trapezoidal
	Parabolic
)

// Integrations lists all integration rules.
var Integrations = []Integration{LeftRiemann, RightRiemann, Trapezoidal, Parabolic}

func (m Integration) String() string {
	switch m {
	case LeftRiemann:
		return "left-riemann"
	case RightRiemann:
		return "right-riemann"
	case Trapezoidal:
		return "trapezoidal"
	case Parabolic:
		return "parabolic"
	default:
		return "unknown"
	}
}

// Area estimates the area under the samples ys, which are spaced s units
// apart horizontally.  The scale is used as given; zero and negative values
// are not rejected.
func Area(m Integration, ys []float64, s float64) float64 {
	switch m {
	case LeftRiemann:
		return LeftRiemannSum(ys, s)
	case RightRiemann:
		return RightRiemannSum(ys, s)
	case Trapezoidal:
		return TrapezoidalSum(ys, s)
	case Parabolic:
		return ParabolicSum(ys, s)
	default:
		return 0
	}
}

// LeftRiemannSum uses one rectangle per interval, with the height taken
// from the left sample.  The last sample does not contribute.
func LeftRiemannSum(ys []float64, s float64) float64 {
	if len(ys) == 0 {
		return 0
	}
	var total float64
	for _, y := range ys[:len(ys)-1] {
		total += y * s
	}
	return total
}

// RightRiemannSum uses one rectangle per interval, with the height taken
// from the right sample.  The first sample does not contribute.
func RightRiemannSum(ys []float64, s float64) float64 {
	if len(ys) == 0 {
		return 0
	}
	var total float64
	for _, y := range ys[1:] {
		total += y * s
	}
	return total
}

// TrapezoidalSum is the mean of the left and right Riemann sums.
func TrapezoidalSum(ys []float64, s float64) float64 {
	return (LeftRiemannSum(ys, s) + RightRiemannSum(ys, s)) / 2
}

// ParabolicSum groups the samples into triples (a, b, c) and adds
// (a + b*c + c)/3 * s for each triple.
//
// Series with at most two samples use the trapezoidal rule.  If the number
// of samples is not a multiple of three, the leading one or two samples are
// first accounted for as a rectangle or a trapezoid.
func ParabolicSum(ys []float64, s float64) float64 {
	n := len(ys)
	if n <= 2 {
		return TrapezoidalSum(ys, s)
	}
	if n == 3 {
		return parabolicTriple(ys[0], ys[1], ys[2], s)
	}

	var total float64
	switch n % 3 {
	case 1:
		total += ys[0] * s
		ys = ys[1:]
	case 2:
		total += (ys[0] + ys[1]) * s / 2
		ys = ys[2:]
	}
	for i := 0; i+2 < len(ys); i += 3 {
		total += parabolicTriple(ys[i], ys[i+1], ys[i+2], s)
	}
	return total
}

func parabolicTriple(a, b, c, s float64) float64 {
	return (a + b*c + c) / 3 * s
}
