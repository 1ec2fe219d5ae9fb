package quantum_test

import (
	"fmt"

	"github.com/katalvlaran/cliffordsim/quantum"
)

// recorder is a State that logs every primitive call.
type recorder struct {
	n   int
	log []string
	out int
}

func (r *recorder) SystemSize() int { return r.n }

func (r *recorder) H(q int) {
	quantum.CheckQubit(r.n, q)
	r.log = append(r.log, fmt.Sprintf("h%d", q))
}

func (r *recorder) S(q int) {
	quantum.CheckQubit(r.n, q)
	r.log = append(r.log, fmt.Sprintf("s%d", q))
}

func (r *recorder) CZ(a, b int) {
	quantum.CheckPair(r.n, a, b)
	r.log = append(r.log, fmt.Sprintf("cz%d%d", a, b))
}

func (r *recorder) MZR(q int) int {
	r.log = append(r.log, fmt.Sprintf("m%d", q))
	return r.out
}

// nativeX additionally implements XGater.
type nativeX struct{ recorder }

func (n *nativeX) X(q int) { n.log = append(n.log, fmt.Sprintf("x%d", q)) }
