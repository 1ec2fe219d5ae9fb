// Package builder defines shared constants used by circuit builders, so
// defaults and validation stay consistent across constructors.
package builder

// Constructor names used to prefix errors.
const (
	MethodPolarize                = "Polarize"
	MethodGHZ                     = "GHZ"
	MethodCluster                 = "Cluster"
	MethodRandom                  = "Random"
	MethodQuantumAutomaton        = "QuantumAutomaton"
	MethodRandomCliffordBrickwall = "RandomCliffordBrickwall"
)

// Minimum sizes.
const (
	MinGHZQubits     = 1
	MinClusterQubits = 2
	MinGateWidth     = 1
)

// Defaults resolved by newBuilderConfig.
const (
	DefaultGateWidth   = 2
	DefaultMeasureProb = 0.0
	MinProbability     = 0.0
	MaxProbability     = 1.0
)
