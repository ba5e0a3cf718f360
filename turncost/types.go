// Package turncost defines the edge-weight model for heading-aware grid
// moves: stepping straight costs StepCost, every quarter turn executed
// before the step adds TurnPenalty.
//
// Options:
//
//	– TurnPenalty: cost of one 90° rotation. Must be ≥ 0. Default 1000.
//	– StepCost:    cost of advancing one cell. Must be ≥ 0. Default 1.
//
// Errors (sentinel):
//
//	– ErrNegativePenalty if TurnPenalty < 0.
//	– ErrNegativeStep    if StepCost < 0.
//	– ErrCostOverflow    if a reversal, 2·TurnPenalty + StepCost, does not
//	  stay below math.MaxInt64.
package turncost

import (
	"errors"
	"math"
)

// Defaults of the canonical maze puzzle.
const (
	DefaultTurnPenalty int64 = 1000
	DefaultStepCost    int64 = 1
)

// Sentinel errors returned by Validate.
var (
	// ErrNegativePenalty indicates a TurnPenalty below zero.
	ErrNegativePenalty = errors.New("turncost: TurnPenalty must be non-negative")

	// ErrNegativeStep indicates a StepCost below zero.
	ErrNegativeStep = errors.New("turncost: StepCost must be non-negative")

	// ErrCostOverflow indicates weights so large that a single move's cost
	// reaches math.MaxInt64, the solver's unreached sentinel.
	ErrCostOverflow = errors.New("turncost: 2*TurnPenalty+StepCost overflows int64")
)

// Model is the pure cost function of a move. The zero value charges
// nothing for anything; use Default or New for the canonical weights.
type Model struct {
	TurnPenalty int64 // cost per 90° rotation
	StepCost    int64 // cost per cell advanced
}

// Option represents a functional option for configuring a Model.
type Option func(*Model)

// WithTurnPenalty sets the cost of a single quarter turn.
// Panics with ErrNegativePenalty on negative input and with ErrCostOverflow
// if p is too large for the StepCost already set.
func WithTurnPenalty(p int64) Option {
	return func(m *Model) {
		if p < 0 {
			panic(ErrNegativePenalty.Error())
		}
		if overflows(p, m.StepCost) {
			panic(ErrCostOverflow.Error())
		}
		m.TurnPenalty = p
	}
}

// WithStepCost sets the cost of advancing one cell.
// Panics with ErrNegativeStep on negative input and with ErrCostOverflow
// if s is too large for the TurnPenalty already set.
func WithStepCost(s int64) Option {
	return func(m *Model) {
		if s < 0 {
			panic(ErrNegativeStep.Error())
		}
		if overflows(m.TurnPenalty, s) {
			panic(ErrCostOverflow.Error())
		}
		m.StepCost = s
	}
}

// Default returns the canonical model: TurnPenalty=1000, StepCost=1.
func Default() Model {
	return Model{
		TurnPenalty: DefaultTurnPenalty,
		StepCost:    DefaultStepCost,
	}
}

// New returns Default with opts applied in order.
func New(opts ...Option) Model {
	m := Default()
	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Validate checks a Model built without the option constructors, e.g.
// decoded from a settings file.
func (m Model) Validate() error {
	if m.TurnPenalty < 0 {
		return ErrNegativePenalty
	}
	if m.StepCost < 0 {
		return ErrNegativeStep
	}
	if overflows(m.TurnPenalty, m.StepCost) {
		return ErrCostOverflow
	}

	return nil
}

// overflows reports whether 2*p+s would reach math.MaxInt64 for
// non-negative p and s.
func overflows(p, s int64) bool {
	if s >= math.MaxInt64 {
		return true
	}

	return p > (math.MaxInt64-1-s)/2
}
