// SPDX-License-Identifier: MIT

package hawkes

import "fmt"

// Outcome is either a finite value or a divergence marker. Divergence means
// the cascade at the requested θ is supercritical (or numerically on the
// edge of it) and no finite expectation exists.
//
// The zero Outcome is Value of the zero T.
type Outcome[T any] struct {
	value     T
	theta     float64
	divergent bool
}

// Value wraps a finite result.
func Value[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Divergent marks the expectation at theta as unbounded.
func Divergent[T any](theta float64) Outcome[T] {
	return Outcome[T]{theta: theta, divergent: true}
}

// IsDivergent reports whether o carries no finite value.
func (o Outcome[T]) IsDivergent() bool { return o.divergent }

// Get returns the value and true, or the zero T and false when divergent.
func (o Outcome[T]) Get() (T, bool) {
	if o.divergent {
		var zero T
		return zero, false
	}

	return o.value, true
}

// Theta returns the θ at which divergence was detected; 0 for values.
func (o Outcome[T]) Theta() float64 { return o.theta }

// String renders "divergent(θ=…)" or the value with %v.
func (o Outcome[T]) String() string {
	if o.divergent {
		return fmt.Sprintf("divergent(θ=%g)", o.theta)
	}

	return fmt.Sprintf("%v", o.value)
}
