package graphstate

import "errors"

var (
	// ErrImpossibleOutcome indicates a forced measurement asked for the
	// outcome a deterministic measurement cannot produce.
	ErrImpossibleOutcome = errors.New("graphstate: outcome has zero probability")

	// ErrSnapshot indicates a serialized graph state that cannot be restored.
	ErrSnapshot = errors.New("graphstate: invalid snapshot")
)
