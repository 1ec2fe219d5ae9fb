package vector

import "math"

// FinishExecution fixes the global phase so the lowest stored bitstring
// has a real positive amplitude, then sorts components by bitstring. Two
// states describing the same physical state compare Equal afterwards.
func (s *State) FinishExecution() {
	if len(s.basis) == 0 {
		return
	}
	s.sortBasis()
	ref := s.basis[0].Amp
	phase := ref / complex(abs(ref), 0)
	for i := range s.basis {
		s.basis[i].Amp /= phase
	}
}

// Equal compares two finished states component-wise with relative
// tolerance Eps.
func (s *State) Equal(o *State) bool {
	if s.n != o.n || len(s.basis) != len(o.basis) {
		return false
	}
	for i, b := range s.basis {
		c := o.basis[i]
		if b.Bits != c.Bits || !approxEqual(b.Amp, c.Amp) {
			return false
		}
	}

	return true
}

func approxEqual(a, b complex128) bool {
	norm := abs(a)
	if norm == 0 {
		return abs(b) <= Eps
	}
	d := a - b

	return math.Abs(real(d))/norm < Eps && math.Abs(imag(d))/norm < Eps
}
