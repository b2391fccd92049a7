// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Min returns the smallest value of xs.
func Min(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}

	return floats.Min(xs), nil
}

// Max returns the largest value of xs.
func Max(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}

	return floats.Max(xs), nil
}

// Abs returns a new slice holding the absolute value of every element of xs.
func Abs(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Abs(x)
	}

	return out
}

// AddScalar returns xs with c added to every element.
func AddScalar(xs []float64, c float64) []float64 {
	out := clone(xs)
	floats.AddConst(c, out)

	return out
}

// AddVector returns the elementwise sum of a and b.
func AddVector(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	out := clone(a)
	floats.Add(out, b)

	return out, nil
}

// MultiplyScalar returns xs with every element multiplied by c.
func MultiplyScalar(xs []float64, c float64) []float64 {
	out := clone(xs)
	floats.Scale(c, out)

	return out
}

// MultiplyVector returns the elementwise product of a and b.
func MultiplyVector(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	out := clone(a)
	floats.Mul(out, b)

	return out, nil
}

// NormMaxAbs scales xs so that its largest absolute value becomes 1.
//
// Every element is divided by the peak rather than multiplied by its
// reciprocal, so a sample equal to the peak maps to exactly ±1.
func NormMaxAbs(xs []float64) ([]float64, error) {
	peak, err := Max(Abs(xs))
	if err != nil {
		return nil, err
	}
	if peak == 0 || math.IsNaN(peak) {
		return nil, ErrZeroPeak
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x / peak
	}

	return out, nil
}

func clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}
