// SPDX-License-Identifier: MIT

package chp

import (
	"strings"
)

// Tableau is an arena of Pauli rows addressed by index arithmetic.
//
// A full tableau over n qubits has 2n+1 rows: destabilizers [0,n),
// stabilizers [n,2n), scratch 2n. Gates update the first active rows only,
// so the scratch row is untouched by unitaries. A canonicalizer tableau
// has just two active rows and no destabilizers.
type Tableau struct {
	n      int
	rows   []PauliString
	active int
}

// NewTableau returns the tableau of |0…0⟩: destabilizer i is X_i and
// stabilizer i is Z_i, all signs +1.
func NewTableau(n int) *Tableau {
	t := &Tableau{n: n, rows: make([]PauliString, 2*n+1), active: 2 * n}
	for i := range t.rows {
		t.rows[i] = NewPauliString(n)
	}
	for i := 0; i < n; i++ {
		t.rows[i].x.Set(uint(i))
		t.rows[i+n].z.Set(uint(i))
	}

	return t
}

// newScratch wraps rows as a tableau with every row active.
func newScratch(rows ...PauliString) *Tableau {
	return &Tableau{n: rows[0].n, rows: rows, active: len(rows)}
}

// NumQubits returns n.
func (t *Tableau) NumQubits() int { return t.n }

// Row returns a copy of row i.
func (t *Tableau) Row(i int) PauliString { return t.rows[i].Clone() }

// Stabilizer returns a copy of stabilizer generator i.
func (t *Tableau) Stabilizer(i int) PauliString { return t.rows[t.n+i].Clone() }

// Clone deep-copies every row.
func (t *Tableau) Clone() *Tableau {
	out := &Tableau{n: t.n, rows: make([]PauliString, len(t.rows)), active: t.active}
	for i, r := range t.rows {
		out.rows[i] = r.Clone()
	}

	return out
}

// H: r ^= x·z, then swap x and z on column a.
func (t *Tableau) H(a int) {
	col := uint(a)
	for i := 0; i < t.active; i++ {
		row := &t.rows[i]
		x, z := row.x.Test(col), row.z.Test(col)
		row.r = row.r != (x && z)
		row.x.SetTo(col, z)
		row.z.SetTo(col, x)
	}
}

// S: r ^= x·z, then z ^= x on column a.
func (t *Tableau) S(a int) {
	col := uint(a)
	for i := 0; i < t.active; i++ {
		row := &t.rows[i]
		x, z := row.x.Test(col), row.z.Test(col)
		row.r = row.r != (x && z)
		row.z.SetTo(col, x != z)
	}
}

// X flips the sign of rows anticommuting with X_a (z bit set).
func (t *Tableau) X(a int) {
	for i := 0; i < t.active; i++ {
		t.rows[i].r = t.rows[i].r != t.rows[i].z.Test(uint(a))
	}
}

// Z flips the sign of rows anticommuting with Z_a (x bit set).
func (t *Tableau) Z(a int) {
	for i := 0; i < t.active; i++ {
		t.rows[i].r = t.rows[i].r != t.rows[i].x.Test(uint(a))
	}
}

// Y flips the sign of rows anticommuting with Y_a (exactly one bit set).
func (t *Tableau) Y(a int) {
	col := uint(a)
	for i := 0; i < t.active; i++ {
		t.rows[i].r = t.rows[i].r != (t.rows[i].x.Test(col) != t.rows[i].z.Test(col))
	}
}

// CX with control a and target b:
// r ^= x_a·z_b·(x_b ⊕ z_a ⊕ 1); x_b ^= x_a; z_a ^= z_b.
func (t *Tableau) CX(a, b int) {
	ca, cb := uint(a), uint(b)
	for i := 0; i < t.active; i++ {
		row := &t.rows[i]
		xa, za := row.x.Test(ca), row.z.Test(ca)
		xb, zb := row.x.Test(cb), row.z.Test(cb)
		row.r = row.r != (xa && zb && (xb == za))
		row.x.SetTo(cb, xa != xb)
		row.z.SetTo(ca, za != zb)
	}
}

// CZ is H(b)·CX(a,b)·H(b).
func (t *Tableau) CZ(a, b int) {
	t.H(b)
	t.CX(a, b)
	t.H(b)
}

// g returns the power of i picked up by qubit j when multiplying the Pauli
// (x1,z1) into (x2,z2).
func g(x1, z1, x2, z2 bool) int {
	switch {
	case !x1 && !z1:
		return 0
	case x1 && z1: // z2 - x2
		return b2i(z2) - b2i(x2)
	case x1: // z2(2x2 - 1)
		return b2i(z2) * (2*b2i(x2) - 1)
	default: // x2(1 - 2z2)
		return b2i(x2) * (1 - 2*b2i(z2))
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// rowsum replaces row h with row i · row h, resolving the sign.
//
// The exponent 2r_h + 2r_i + Σ g is taken mod 4; 2 means −1. An odd
// exponent only occurs for the anticommuting destabilizer during a random
// measurement, and that row is overwritten right after.
func (t *Tableau) rowsum(h, i int) {
	rh, ri := &t.rows[h], &t.rows[i]
	s := 2*b2i(rh.r) + 2*b2i(ri.r)
	for j := 0; j < t.n; j++ {
		col := uint(j)
		s += g(ri.x.Test(col), ri.z.Test(col), rh.x.Test(col), rh.z.Test(col))
	}
	rh.r = ((s%4)+4)%4 == 2
	rh.x.InPlaceSymmetricDifference(ri.x)
	rh.z.InPlaceSymmetricDifference(ri.z)
}

// pivot returns the first stabilizer row with an X bit on qubit a.
func (t *Tableau) pivot(a int) (int, bool) {
	for p := t.n; p < 2*t.n; p++ {
		if t.rows[p].x.Test(uint(a)) {
			return p, true
		}
	}

	return 0, false
}

// Deterministic reports whether measuring qubit a has a fixed outcome.
func (t *Tableau) Deterministic(a int) bool {
	_, random := t.pivot(a)
	return !random
}

// Measure measures qubit a in the Z basis. A random outcome is taken from
// coin; a deterministic one is computed and coin is ignored.
func (t *Tableau) Measure(a, coin int) int {
	n := t.n
	if p, ok := t.pivot(a); ok {
		for i := 0; i < 2*n; i++ {
			if i != p && t.rows[i].x.Test(uint(a)) {
				t.rowsum(i, p)
			}
		}
		t.rows[p-n].copyFrom(t.rows[p])
		t.rows[p].reset()
		t.rows[p].z.Set(uint(a))
		t.rows[p].r = coin == 1

		return coin
	}

	scratch := 2 * n
	t.rows[scratch].reset()
	for i := 0; i < n; i++ {
		if t.rows[i].x.Test(uint(a)) {
			t.rowsum(scratch, i+n)
		}
	}

	return b2i(t.rows[scratch].r)
}

// String prints destabilizers, a separator, then stabilizers.
func (t *Tableau) String() string {
	var sb strings.Builder
	for i := 0; i < t.active; i++ {
		if i == t.n && t.active == 2*t.n {
			sb.WriteString("--\n")
		}
		sb.WriteString(t.rows[i].String())
		if i != t.active-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
