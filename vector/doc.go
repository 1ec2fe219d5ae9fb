// Package vector implements the sparse state-vector representation: a list
// of (bitstring, amplitude) pairs with bit j of the bitstring holding qubit
// j. It runs any single-qubit unitary, not only Cliffords, and is the
// ground truth the stabilizer representations are checked against.
//
// Cost is linear in the number of stored basis states, which is at most
// 2^n; systems are limited to 64 qubits. Amplitudes with magnitude below
// Eps are dropped after every redistributing gate.
package vector
