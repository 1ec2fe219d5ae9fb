// SPDX-License-Identifier: MIT

package chp

import (
	"fmt"

	"github.com/katalvlaran/cliffordsim/matrix"
	"github.com/katalvlaran/cliffordsim/quantum"
)

// RenyiEntropy returns S₂(A) = rank(stabilizers restricted to A) − |A|.
//
// Implementation:
//   - Stage 1: Copy the x then z bits of each stabilizer on qubits into an
//     n × 2|A| GF(2) matrix.
//   - Stage 2: Gaussian elimination gives the rank.
//
// Complexity: O(n·|A|²/64) after the O(n·|A|) copy.
func (s *State) RenyiEntropy(qubits []int) float32 {
	quantum.CheckQubits(s.n, qubits)
	k := len(qubits)
	if k == 0 {
		return 0
	}

	m, err := matrix.NewBitMatrix(s.n, 2*k)
	if err != nil {
		panic(fmt.Errorf("chp.RenyiEntropy: %w", err))
	}
	for i := 0; i < s.n; i++ {
		row := s.tab.rows[s.n+i]
		for j, q := range qubits {
			if row.X(q) {
				_ = m.Set(i, j, true)
			}
			if row.Z(q) {
				_ = m.Set(i, j+k, true)
			}
		}
	}

	return float32(m.Rank() - k)
}
