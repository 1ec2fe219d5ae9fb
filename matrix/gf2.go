// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// BitMatrix is a rows×cols matrix over GF(2). Each row is a packed bitset,
// so row addition is a word-wise XOR.
type BitMatrix struct {
	rows []*bitset.BitSet
	cols int
}

// NewBitMatrix returns a zero rows×cols BitMatrix.
func NewBitMatrix(rows, cols int) (*BitMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	m := &BitMatrix{rows: make([]*bitset.BitSet, rows), cols: cols}
	for i := range m.rows {
		m.rows[i] = bitset.New(uint(cols))
	}

	return m, nil
}

// Rows returns the row count.
func (m *BitMatrix) Rows() int { return len(m.rows) }

// Cols returns the column count.
func (m *BitMatrix) Cols() int { return m.cols }

func (m *BitMatrix) check(method string, i, j int) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return fmt.Errorf("BitMatrix.%s(%d,%d): %w", method, i, j, ErrOutOfRange)
	}

	return nil
}

// At reports bit (i, j).
func (m *BitMatrix) At(i, j int) (bool, error) {
	if err := m.check("At", i, j); err != nil {
		return false, err
	}

	return m.rows[i].Test(uint(j)), nil
}

// Set assigns bit (i, j).
func (m *BitMatrix) Set(i, j int, v bool) error {
	if err := m.check("Set", i, j); err != nil {
		return err
	}
	m.rows[i].SetTo(uint(j), v)

	return nil
}

// XorRow adds row src into row dst.
func (m *BitMatrix) XorRow(dst, src int) error {
	if err := m.check("XorRow", dst, 0); err != nil {
		return err
	}
	if err := m.check("XorRow", src, 0); err != nil {
		return err
	}
	m.rows[dst].InPlaceSymmetricDifference(m.rows[src])

	return nil
}

// Clone returns a deep copy.
func (m *BitMatrix) Clone() *BitMatrix {
	out := &BitMatrix{rows: make([]*bitset.BitSet, len(m.rows)), cols: m.cols}
	for i, r := range m.rows {
		out.rows[i] = r.Clone()
	}

	return out
}

// Rank returns the GF(2) rank. The receiver is left untouched; elimination
// runs on a copy.
//
// Implementation:
//   - Stage 1: Clone the matrix.
//   - Stage 2: For each column, pick the first unused row with that bit set
//     as pivot and XorRow it into every other row carrying the bit.
//
// Complexity:
//   - Time O(cols * rows * cols/64), Space O(rows * cols/64).
func (m *BitMatrix) Rank() int {
	work := m.Clone()
	rank := 0
	var col, r int
	for col = 0; col < m.cols && rank < len(work.rows); col++ {
		pivot := -1
		for r = rank; r < len(work.rows); r++ {
			if work.rows[r].Test(uint(col)) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		work.rows[rank], work.rows[pivot] = work.rows[pivot], work.rows[rank]
		for r = 0; r < len(work.rows); r++ {
			if r != rank && work.rows[r].Test(uint(col)) {
				_ = work.XorRow(r, rank) // both rows are in range
			}
		}
		rank++
	}

	return rank
}

// String renders rows of 0/1 characters.
func (m *BitMatrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = range m.rows {
		for j = 0; j < m.cols; j++ {
			if m.rows[i].Test(uint(j)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
