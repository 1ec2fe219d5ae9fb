package chp_test

import (
	"encoding/json"
	"math/rand/v2"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/cliffordsim/chp"
	"github.com/katalvlaran/cliffordsim/quantum"
	"github.com/katalvlaran/cliffordsim/vector"
)

func TestNew(t *testing.T) {
	s := chp.New(3)
	assert.Equal(t, 3, s.SystemSize())
	assert.Equal(t, []string{"+ZII", "+IZI", "+IIZ"}, s.Stabilizers())
	assert.True(t, strings.HasPrefix(s.String(), "Tableau:\n"))
	assert.Panics(t, func() { chp.New(-1) })
}

func TestGates_PanicOnBadQubits(t *testing.T) {
	s := chp.New(2)
	assert.Panics(t, func() { s.H(2) })
	assert.Panics(t, func() { s.CX(0, 0) })
	assert.Panics(t, func() { s.MZR(-1) })
}

func TestRenyiEntropy_Scenarios(t *testing.T) {
	t.Run("cz-pairs", func(t *testing.T) {
		s := chp.New(5)
		for q := 0; q < 5; q++ {
			s.H(q)
		}
		s.CZ(0, 1)
		s.CZ(2, 3)
		assert.Equal(t, float32(1), s.RenyiEntropy([]int{0}))
		assert.Equal(t, float32(0), s.RenyiEntropy([]int{0, 1}))
		assert.Equal(t, float32(2), s.RenyiEntropy([]int{1, 3}))
		assert.Equal(t, float32(0), s.RenyiEntropy([]int{4}))
	})
	t.Run("ghz", func(t *testing.T) {
		s := chp.New(4)
		s.H(0)
		s.CX(0, 1)
		s.CX(1, 2)
		s.CX(2, 3)
		assert.Equal(t, float32(1), s.RenyiEntropy([]int{0}))
		assert.Equal(t, float32(1), s.RenyiEntropy([]int{1, 3}))
		assert.Equal(t, float32(0), s.RenyiEntropy([]int{0, 1, 2, 3}))
		assert.Equal(t, float32(0), s.RenyiEntropy(nil))
	})
}

func TestMZR_BellCorrelation(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		s := chp.New(2, quantum.WithSeed(seed))
		s.H(0)
		s.CX(0, 1)
		assert.Equal(t, s.MZR(0), s.MZR(1), "seed %d", seed)
		assert.Equal(t, float32(0), s.RenyiEntropy([]int{0}))
	}
}

func TestMZR_Statistics(t *testing.T) {
	base := chp.New(1, quantum.WithSeed(4))
	base.H(0)
	ones := 0
	for i := 0; i < 2000; i++ {
		ones += base.Clone().MZR(0)
	}
	assert.InDelta(t, 1000, ones, 150)
}

func TestMZRForced(t *testing.T) {
	s := chp.New(2)
	assert.ErrorIs(t, s.MZRForced(0, 1), chp.ErrImpossibleOutcome)
	require.NoError(t, s.MZRForced(0, 0))
	assert.ErrorIs(t, s.MZRForced(0, 3), chp.ErrImpossibleOutcome)

	s.H(0)
	s.CX(0, 1)
	require.NoError(t, s.MZRForced(1, 1))
	assert.Equal(t, 1, s.MZR(0))
	assert.Equal(t, []string{"-ZI", "-IZ"}, zSigns(s))
}

// zSigns reduces a product state to one ±Z per qubit.
func zSigns(s *chp.State) []string {
	out := make([]string, s.SystemSize())
	for q := range out {
		c := s.Clone()
		sign := "+"
		if c.MZR(q) == 1 {
			sign = "-"
		}
		ops := []byte(strings.Repeat("I", s.SystemSize()))
		ops[q] = 'Z'
		out[q] = sign + string(ops)
	}
	return out
}

func TestClone_Independent(t *testing.T) {
	s := chp.New(2)
	c := s.Clone()
	c.H(0)
	assert.Equal(t, []string{"+ZI", "+IZ"}, s.Stabilizers())
	assert.Equal(t, "+XI", c.Tableau().Stabilizer(0).String())
}

func TestToVector_Bell(t *testing.T) {
	s := chp.New(2)
	s.H(0)
	s.CX(0, 1)
	s.S(1)

	want := vector.New(2)
	want.H(0)
	want.CX(0, 1)
	want.S(1)
	want.FinishExecution()

	assert.True(t, s.ToVector().Equal(want))
	assert.Panics(t, func() { chp.New(chp.MaxVectorQubits + 1).ToVector() })
}

func TestCanonicalize_EndsAtX1Z1(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(1, 6).Draw(t, "k")
		rng := rand.New(rand.NewPCG(rapid.Uint64().Draw(t, "seed"), 3))
		target := chp.New(k)
		qubits := rapid.Permutation(identity(k)).Draw(t, "perm")

		tab := chp.Canonicalize(rng, target, qubits)

		rest := strings.Repeat("I", k-1)
		require.Equal(t, "+X"+rest, tab.Row(0).String())
		require.Equal(t, "+Z"+rest, tab.Row(1).String())
	})
}

func TestCanonicalize_EmptyIsNoop(t *testing.T) {
	target := chp.New(2)
	assert.Nil(t, chp.Canonicalize(rand.New(rand.NewPCG(1, 1)), target, nil))
	assert.Equal(t, []string{"+ZI", "+IZ"}, target.Stabilizers())
}

func TestRandomClifford_SingleQubitUniform(t *testing.T) {
	const trials = 6000
	counts := map[string]int{}
	base := chp.New(1, quantum.WithSeed(21))
	for i := 0; i < trials; i++ {
		s := base.Clone()
		s.RandomClifford([]int{0})
		counts[s.Stabilizers()[0]]++
	}

	require.Len(t, counts, 6)
	for _, p := range []string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"} {
		assert.InDelta(t, trials/6, counts[p], 150, p)
	}
}

func TestRandomClifford_TwoQubitUniform(t *testing.T) {
	const trials = 12000
	counts := map[string]int{}
	base := chp.New(2, quantum.WithSeed(34))
	for i := 0; i < trials; i++ {
		s := base.Clone()
		s.RandomClifford([]int{0, 1})
		counts[stabilizerGroup(t, s)]++
	}

	// There are 60 two-qubit stabilizer states.
	require.Len(t, counts, 60)
	for g, c := range counts {
		assert.InDelta(t, trials/60, c, 70, g)
	}
}

func TestRandomClifford_ValidAfterMeasurement(t *testing.T) {
	s := chp.New(6, quantum.WithSeed(2))
	all := identity(6)
	for i := 0; i < 10000; i++ {
		s.RandomClifford(all[:1+i%6])
		s.MZR(i % 6)
	}
	for i, p := range s.Stabilizers() {
		for j, q := range s.Stabilizers() {
			a, _ := chp.ParsePauliString(p)
			b, _ := chp.ParsePauliString(q)
			require.True(t, a.Commutes(b), "rows %d,%d", i, j)
		}
	}
}

func TestCrossWithVector(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 5).Draw(t, "n")
		s := chp.New(n, quantum.WithSeed(rapid.Uint64().Draw(t, "seed")))
		v := vector.New(n)
		steps := rapid.IntRange(0, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			q1 := rapid.IntRange(0, n-1).Draw(t, "q1")
			q2 := (q1 + rapid.IntRange(1, n-1).Draw(t, "d")) % n
			switch rapid.IntRange(0, 4).Draw(t, "op") {
			case 0:
				s.H(q1)
				v.H(q1)
			case 1:
				s.S(q1)
				v.S(q1)
			case 2:
				s.CX(q1, q2)
				v.CX(q1, q2)
			case 3:
				out := s.MZR(q1)
				require.Greater(t, v.MZRForced(q1, out), 0.0)
			case 4:
				seed := rapid.Uint64().Draw(t, "cliff")
				qs := []int{q1, q2}
				chp.RandomClifford(rand.New(rand.NewPCG(seed, 0)), s, qs)
				chp.RandomClifford(rand.New(rand.NewPCG(seed, 0)), v, qs)
			}
		}

		want := v.Clone()
		want.FinishExecution()
		require.True(t, s.ToVector().Equal(want), "tableau\n%v\nvector\n%v", s, want)

		part := rapid.Permutation(identity(n)).Draw(t, "perm")[:rapid.IntRange(1, n-1).Draw(t, "k")]
		require.InDelta(t, float64(s.RenyiEntropy(part)), float64(v.RenyiEntropy(part)), 1e-3)
	})
}

func TestJSON_RoundTrip(t *testing.T) {
	s := chp.New(3, quantum.WithSeed(8))
	s.H(0)
	s.CX(0, 1)
	s.S(2)
	s.H(2)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var back chp.State
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s.Stabilizers(), back.Stabilizers())
	assert.Equal(t, s.Tableau().String(), back.Tableau().String())
	assert.Equal(t, s.MZR(2), back.MZR(2))
}

func TestJSON_RejectsBadSnapshot(t *testing.T) {
	var s chp.State
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"num_qubits":"x"}`), &s), chp.ErrSnapshot)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"num_qubits":2,"rows":[]}`), &s), chp.ErrSnapshot)

	// Replace stabilizer Z₁ by destabilizer X₀: the stabilizers anticommute.
	data, err := json.Marshal(chp.New(2))
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	rows := raw["rows"].([]any)
	rows[3] = rows[0]
	data, err = json.Marshal(raw)
	require.NoError(t, err)
	assert.ErrorIs(t, json.Unmarshal(data, &s), chp.ErrSnapshot)
}

// stabilizerGroup renders the non-identity elements of the stabilizer group
// of a two-qubit state, sorted, as a key independent of the generators.
func stabilizerGroup(t *testing.T, s *chp.State) string {
	gens := s.Stabilizers()
	require.Len(t, gens, 2)
	elems := []string{gens[0], gens[1], pauliProduct(gens[0], gens[1])}
	sort.Strings(elems)
	return strings.Join(elems, ",")
}

// pauliProduct multiplies two commuting signed Pauli strings.
func pauliProduct(a, b string) string {
	// Powers of i picked up by single-qubit products, XY = iZ and cyclic.
	next := map[[2]byte]int{{'X', 'Y'}: 1, {'Y', 'Z'}: 1, {'Z', 'X'}: 1, {'Y', 'X'}: 3, {'Z', 'Y'}: 3, {'X', 'Z'}: 3}
	letter := map[[2]byte]byte{{'X', 'Y'}: 'Z', {'Y', 'X'}: 'Z', {'Y', 'Z'}: 'X', {'Z', 'Y'}: 'X', {'Z', 'X'}: 'Y', {'X', 'Z'}: 'Y'}
	phase := 0
	if a[0] == '-' {
		phase += 2
	}
	if b[0] == '-' {
		phase += 2
	}
	out := make([]byte, len(a)-1)
	for j := 1; j < len(a); j++ {
		p, q := a[j], b[j]
		switch {
		case p == 'I':
			out[j-1] = q
		case q == 'I':
			out[j-1] = p
		case p == q:
			out[j-1] = 'I'
		default:
			phase += next[[2]byte{p, q}]
			out[j-1] = letter[[2]byte{p, q}]
		}
	}
	sign := "+"
	if phase%4 == 2 {
		sign = "-"
	}
	return sign + string(out)
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
