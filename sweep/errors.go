package sweep

import "errors"

var (
	// ErrConfig indicates an invalid or unreadable experiment configuration.
	ErrConfig = errors.New("sweep: invalid config")

	// ErrUnknownSimulator indicates a simulator_type other than chp, graph
	// or vector.
	ErrUnknownSimulator = errors.New("sweep: unknown simulator type")

	// ErrUnknownCircuit indicates an unsupported circuit_type.
	ErrUnknownCircuit = errors.New("sweep: unknown circuit type")

	// ErrCheckpoint indicates a checkpoint that failed its digest check or
	// could not be decoded.
	ErrCheckpoint = errors.New("sweep: corrupt checkpoint")
)
