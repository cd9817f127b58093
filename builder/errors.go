// SPDX-License-Identifier: MIT
// Package: lvhawkes/builder
//
// errors.go - sentinel errors shared by all constructors.
//
// Callers branch with errors.Is; constructors wrap with
// fmt.Errorf("%s: ...: %w", method, ErrX).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates an orchestration failure (nil constructor,
// empty result).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates ByName received an unknown topology name.
var ErrUnknownKind = errors.New("builder: unknown topology")
