// Package cliffordsim simulates Clifford circuits and measures how much
// entanglement they build.
//
// 🚀 What is cliffordsim?
//
//	Three interchangeable representations of an n-qubit stabilizer state,
//	all driven through one gate/measurement contract (quantum.State):
//		• chp       : the CHP bit tableau, O(n²) per measurement
//		• graphstate: graph state + local Clifford per vertex, O(d²) per gate
//		• vector    : sparse amplitude map, exact for any circuit, exponential in general
//
//	Each reports the Rényi-2 entropy of any subsystem (quantum.Simulator),
//	so a single circuit can be cross-checked across all three.
//
// ✨ Around the core:
//
//   - circuit/: a line-based circuit assembly with Parse, Format, Run
//   - builder/: GHZ, cluster, random circuits and the monitored brickwall
//     evolutions (quantum automaton, random Clifford)
//   - sweep/  : parameter sweeps over system size, partition and
//     measurement rate, with checkpoints, metrics and result documents
//   - storage/: checkpoint blob stores (fs, memory, S3) and SQL result
//     sinks (SQLite, PostgreSQL)
//
// Lower layers:
//
//	core/   : generic index-based Graph[T] with vertex removal and local complementation
//	matrix/ : complex Dense matrices and packed GF(2) BitMatrix with Rank
//	quantum/: the State contract, the Gate enum and default decompositions
//
// Quick example, a Bell pair:
//
//	st := chp.New(2)
//	st.H(0)
//	st.CX(0, 1)
//	st.RenyiEntropy([]int{0}) // 1
//
// The cliffordsim command (cmd/cliffordsim) runs sweeps from a config file
// and executes circuit files on any representation.
//
//	go install github.com/katalvlaran/cliffordsim/cmd/cliffordsim@latest
package cliffordsim
