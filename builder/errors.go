// SPDX-License-Identifier: MIT
// Package: cliffordsim/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` through builderErrorf.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewQubits indicates that a size parameter (qubits, depth, width)
// is smaller than the constructor allows.
var ErrTooFewQubits = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an emitted program
// that failed validation.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a message with the constructor name, keeping
// sentinel wrapping intact for errors.Is.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf(method+": "+format, args...)
}
