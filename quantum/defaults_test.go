package quantum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cliffordsim/quantum"
)

func TestDefaults_Decompositions(t *testing.T) {
	cases := []struct {
		name string
		run  func(st quantum.State)
		want []string
	}{
		{"x", func(st quantum.State) { quantum.X(st, 0) }, []string{"h0", "s0", "s0", "h0"}},
		{"y", func(st quantum.State) { quantum.Y(st, 0) }, []string{"h0", "s0", "s0", "h0", "s0", "s0"}},
		{"z", func(st quantum.State) { quantum.Z(st, 1) }, []string{"s1", "s1"}},
		{"sd", func(st quantum.State) { quantum.Sd(st, 0) }, []string{"s0", "s0", "s0"}},
		{"sqrtxd", func(st quantum.State) { quantum.SqrtXd(st, 0) }, []string{"s0", "h0", "s0"}},
		{"sqrty", func(st quantum.State) { quantum.SqrtY(st, 0) }, []string{"s0", "s0", "h0"}},
		{"sqrtyd", func(st quantum.State) { quantum.SqrtYd(st, 0) }, []string{"h0", "s0", "s0"}},
		{"cx", func(st quantum.State) { quantum.CX(st, 0, 1) }, []string{"h1", "cz01", "h1"}},
		{"cy", func(st quantum.State) { quantum.CY(st, 0, 1) },
			[]string{"s1", "s1", "s1", "h1", "cz01", "h1", "s1"}},
		{"mxr", func(st quantum.State) { quantum.MXR(st, 1) }, []string{"h1", "m1", "h1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &recorder{n: 2}
			tc.run(r)
			assert.Equal(t, tc.want, r.log)
		})
	}
}

func TestDefaults_PreferNative(t *testing.T) {
	st := &nativeX{recorder{n: 1}}
	quantum.X(st, 0)
	quantum.Y(st, 0) // Y = X then Z, X native
	assert.Equal(t, []string{"x0", "x0", "s0", "s0"}, st.log)
}

func TestMYR_ReturnsOutcome(t *testing.T) {
	r := &recorder{n: 1, out: 1}
	assert.Equal(t, 1, quantum.MYR(r, 0))
	assert.Equal(t, []string{"s0", "s0", "s0", "h0", "m0", "h0", "s0"}, r.log)
}

func TestFinish_NoopWithoutFinisher(t *testing.T) {
	assert.NotPanics(t, func() { quantum.Finish(&recorder{n: 1}) })
}
