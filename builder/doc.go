// Package builder provides reusable functional-options building blocks for
// the circuits the simulators run. It sits alongside circuit and quantum to
// centralize random sources, gate widths and measurement rates, keeping the
// sweep runner and the tests consistent.
//
// The package offers two kinds of components:
//
//   - Static constructors (Constructor closures composed by BuildCircuit):
//     Polarize, GHZ, Cluster and Random emit instructions into a
//     circuit.Program that can be formatted, parsed back and run on any
//     representation.
//   - Evolutions (the Evolution interface) advance a live quantum.State one
//     timestep at a time, drawing measurement decisions as they go:
//     QuantumAutomaton (CX/CZ brickwall) and RandomCliffordBrickwall.
//
// Configuration primitives:
//
//   - BuilderOption: a function that mutates builderConfig before use.
//   - builderConfig: holds the RNG, gate width and measurement probability.
//
// Guarantees:
//
//   - Determinism: equal options, equal seed and equal call order produce
//     equal programs and equal gate sequences.
//   - Fast-fail on meaningless option values via panics in option
//     constructors (WithRand(nil), WithGateWidth(0), ...).
//   - Constructors never panic at runtime; they return sentinel errors
//     wrapped with the constructor name.
package builder
