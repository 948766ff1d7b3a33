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

// Package calc implements the numerical derivations offered alongside a
// line chart: descriptive statistics, area under the curve and Pearson
// correlation.
//
// All functions operate on plain float64 slices from which missing values
// have already been removed.  An empty input is a defined case: every
// statistic and every area is 0.
package calc

import (
	"github.com/montanaflynn/stats"
)

// Calculation selects one of the descriptive statistics.
type Calculation int

// The available statistics.
const (
	Sum Calculation = iota
	Average
	Median
	Mode
	Minimum
	Maximum
	StandardDeviation
)

// Calculations lists all statistics in display order.
var Calculations = []Calculation{
	Sum, Average, Median, Mode, Minimum, Maximum, StandardDeviation,
}

func (c Calculation) String() string {
	switch c {
	case Sum:
		return "sum"
	case Average:
		return "average"
	case Median:
		return "median"
	case Mode:
		return "mode"
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	case StandardDeviation:
		return "stddev"
	default:
		return "unknown"
	}
}

// Perform computes the statistic c over xs.
func Perform(c Calculation, xs []float64) float64 {
	switch c {
	case Sum:
		return SumOf(xs)
	case Average:
		return Mean(xs)
	case Median:
		return MedianOf(xs)
	case Mode:
		return ModeOf(xs)
	case Minimum:
		return Min(xs)
	case Maximum:
		return Max(xs)
	case StandardDeviation:
		return StdDev(xs)
	default:
		return 0
	}
}

// SumOf returns the sum of xs.
func SumOf(xs []float64) float64 {
	return orZero(stats.Sum(xs))
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 {
	return orZero(stats.Mean(xs))
}

// MedianOf returns the middle value of xs after sorting, or the mean of the
// two middle values if len(xs) is even.  The input is not modified.
func MedianOf(xs []float64) float64 {
	return orZero(stats.Median(xs))
}

// StdDev returns the population standard deviation of xs (the squared
// deviations are divided by N, not N-1).
func StdDev(xs []float64) float64 {
	return orZero(stats.StandardDeviationPopulation(xs))
}

// Min returns the smallest element of xs.
func Min(xs []float64) float64 {
	return orZero(stats.Min(xs))
}

// Max returns the largest element of xs.
func Max(xs []float64) float64 {
	return orZero(stats.Max(xs))
}

// ModeOf returns the most frequent value in xs.  If several values share
// the highest frequency, the one which occurs first in xs is returned.
func ModeOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	counts := make(map[float64]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}

	best := xs[0]
	bestCount := 0
	for _, x := range xs {
		if c := counts[x]; c > bestCount {
			best = x
			bestCount = c
		}
	}
	return best
}

// orZero maps the error cases of the stats package (empty input) to 0.
func orZero(x float64, err error) float64 {
	if err != nil {
		return 0
	}
	return x
}
