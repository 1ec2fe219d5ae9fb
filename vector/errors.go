package vector

import "errors"

// ErrSnapshot indicates a serialized state that cannot be restored.
var ErrSnapshot = errors.New("vector: invalid snapshot")
