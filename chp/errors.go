package chp

import "errors"

var (
	// ErrImpossibleOutcome indicates a forced measurement asked for the
	// outcome a deterministic measurement cannot produce.
	ErrImpossibleOutcome = errors.New("chp: outcome has zero probability")

	// ErrSnapshot indicates a serialized tableau that cannot be restored.
	ErrSnapshot = errors.New("chp: invalid snapshot")
)
