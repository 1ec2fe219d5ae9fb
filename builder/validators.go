package builder

// validateMin ensures got ≥ min, reporting ErrTooFewQubits otherwise.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "parameter must be ≥ %d, got %d: %w", min, got, ErrTooFewQubits)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, "probability must be in [%.1f,%.1f], got %f: %w",
			MinProbability, MaxProbability, p, ErrInvalidProbability)
	}

	return nil
}

// validateRand reports ErrNeedRandSource when cfg carries no generator.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, "%w", ErrNeedRandSource)
	}

	return nil
}
