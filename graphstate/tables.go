// SPDX-License-Identifier: MIT

package graphstate

// VOP indices of the 24-element local Clifford group (modulo phase).
const (
	vopI      = 0
	vopX      = 1
	vopY      = 2
	vopZ      = 3
	vopH      = 12
	vopSqrtYd = 13
	vopSqrtY  = 15
	vopSqrtXd = 16
	vopSqrtX  = 17
	vopS      = 20
	vopSd     = 23

	numVOPs = 24
)

// basis is the Pauli axis a Z measurement reads after conjugation by a
// VOP: 1..3 are +X, +Y, +Z and 4..6 the same axes with flipped outcome.
type basis uint8

const (
	basisX    basis = 1
	basisY    basis = 2
	basisZ    basis = 3
	basisNegX basis = 4
	basisNegY basis = 5
	basisNegZ basis = 6
)

// axis folds the sign away.
func (b basis) axis() basis {
	if b > basisZ {
		return b - basisZ
	}
	return b
}

// negative reports whether the outcome is flipped.
func (b basis) negative() bool { return b > basisZ }

// conjugation[v] is V† Z V for VOP v.
var conjugation = [numVOPs]basis{
	3, 6, 6, 3, 1, 1, 4, 4, 5, 2, 5, 2, 1, 1, 4, 4, 5, 2, 5, 2, 3, 6, 6, 3,
}

// products[a][b] is the VOP a·b (b applied first).
var products = [numVOPs][numVOPs]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23},
	{1, 0, 3, 2, 6, 7, 4, 5, 11, 10, 9, 8, 15, 14, 13, 12, 17, 16, 19, 18, 22, 23, 20, 21},
	{2, 3, 0, 1, 7, 6, 5, 4, 9, 8, 11, 10, 14, 15, 12, 13, 19, 18, 17, 16, 21, 20, 23, 22},
	{3, 2, 1, 0, 5, 4, 7, 6, 10, 11, 8, 9, 13, 12, 15, 14, 18, 19, 16, 17, 23, 22, 21, 20},
	{4, 5, 6, 7, 8, 9, 10, 11, 0, 1, 2, 3, 23, 22, 21, 20, 13, 12, 15, 14, 18, 19, 16, 17},
	{5, 4, 7, 6, 10, 11, 8, 9, 3, 2, 1, 0, 20, 21, 22, 23, 12, 13, 14, 15, 16, 17, 18, 19},
	{6, 7, 4, 5, 11, 10, 9, 8, 1, 0, 3, 2, 21, 20, 23, 22, 14, 15, 12, 13, 19, 18, 17, 16},
	{7, 6, 5, 4, 9, 8, 11, 10, 2, 3, 0, 1, 22, 23, 20, 21, 15, 14, 13, 12, 17, 16, 19, 18},
	{8, 9, 10, 11, 0, 1, 2, 3, 4, 5, 6, 7, 17, 16, 19, 18, 22, 23, 20, 21, 15, 14, 13, 12},
	{9, 8, 11, 10, 2, 3, 0, 1, 7, 6, 5, 4, 18, 19, 16, 17, 23, 22, 21, 20, 13, 12, 15, 14},
	{10, 11, 8, 9, 3, 2, 1, 0, 5, 4, 7, 6, 19, 18, 17, 16, 21, 20, 23, 22, 14, 15, 12, 13},
	{11, 10, 9, 8, 1, 0, 3, 2, 6, 7, 4, 5, 16, 17, 18, 19, 20, 21, 22, 23, 12, 13, 14, 15},
	{12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	{13, 12, 15, 14, 18, 19, 16, 17, 23, 22, 21, 20, 3, 2, 1, 0, 5, 4, 7, 6, 10, 11, 8, 9},
	{14, 15, 12, 13, 19, 18, 17, 16, 21, 20, 23, 22, 2, 3, 0, 1, 7, 6, 5, 4, 9, 8, 11, 10},
	{15, 14, 13, 12, 17, 16, 19, 18, 22, 23, 20, 21, 1, 0, 3, 2, 6, 7, 4, 5, 11, 10, 9, 8},
	{16, 17, 18, 19, 20, 21, 22, 23, 12, 13, 14, 15, 11, 10, 9, 8, 1, 0, 3, 2, 6, 7, 4, 5},
	{17, 16, 19, 18, 22, 23, 20, 21, 15, 14, 13, 12, 8, 9, 10, 11, 0, 1, 2, 3, 4, 5, 6, 7},
	{18, 19, 16, 17, 23, 22, 21, 20, 13, 12, 15, 14, 9, 8, 11, 10, 2, 3, 0, 1, 7, 6, 5, 4},
	{19, 18, 17, 16, 21, 20, 23, 22, 14, 15, 12, 13, 10, 11, 8, 9, 3, 2, 1, 0, 5, 4, 7, 6},
	{20, 21, 22, 23, 12, 13, 14, 15, 16, 17, 18, 19, 5, 4, 7, 6, 10, 11, 8, 9, 3, 2, 1, 0},
	{21, 20, 23, 22, 14, 15, 12, 13, 19, 18, 17, 16, 6, 7, 4, 5, 11, 10, 9, 8, 1, 0, 3, 2},
	{22, 23, 20, 21, 15, 14, 13, 12, 17, 16, 19, 18, 7, 6, 5, 4, 9, 8, 11, 10, 2, 3, 0, 1},
	{23, 22, 21, 20, 13, 12, 15, 14, 18, 19, 16, 17, 4, 5, 6, 7, 8, 9, 10, 11, 0, 1, 2, 3},
}

// lcDecomps[v] spells v as local complementations: 'x' complements the
// vertex itself (√X† correction), 'z' complements a neighbor (√Z
// correction on the vertex). Applying the sequence left to right drives
// the vertex's VOP to the identity.
var lcDecomps = [numVOPs]string{
	"",      // 0
	"xx",    // 1
	"zzxx",  // 2
	"zz",    // 3
	"zzzx",  // 4
	"zxxx",  // 5
	"zxzz",  // 6
	"zx",    // 7
	"xxxz",  // 8
	"xz",    // 9
	"zxzx",  // 10
	"xzzz",  // 11
	"xzzzx", // 12
	"xzxxx", // 13
	"zxz",   // 14
	"zxzzz", // 15
	"xxx",   // 16
	"x",     // 17
	"zzx",   // 18
	"zzxxx", // 19
	"zzz",   // 20
	"xxzzz", // 21
	"xxz",   // 22
	"z",     // 23
}

// czEntry is the outcome of CZ on a pair whose VOPs have been cleared
// relative to each other.
type czEntry struct {
	edge bool
	a, b uint8
}

// czTable[va][vb][edge] gives the new edge flag and VOPs.
var czTable = [numVOPs][numVOPs][2]czEntry{
	{
		{{true, 0, 0}, {false, 0, 0}},
		{{true, 0, 0}, {false, 3, 0}},
		{{true, 0, 3}, {false, 3, 2}},
		{{true, 0, 3}, {false, 0, 3}},
		{{false, 0, 4}, {true, 0, 5}},
		{{false, 0, 4}, {true, 0, 4}},
		{{false, 3, 6}, {true, 0, 6}},
		{{false, 3, 6}, {true, 0, 7}},
		{{true, 0, 23}, {false, 23, 8}},
		{{true, 0, 23}, {false, 20, 8}},
		{{true, 0, 20}, {false, 23, 10}},
		{{true, 0, 20}, {false, 20, 10}},
		{{false, 0, 4}, {true, 0, 13}},
		{{false, 0, 4}, {true, 0, 12}},
		{{false, 3, 6}, {true, 0, 14}},
		{{false, 3, 6}, {true, 0, 15}},
		{{true, 0, 0}, {false, 23, 0}},
		{{true, 0, 0}, {false, 20, 0}},
		{{true, 0, 3}, {false, 23, 2}},
		{{true, 0, 3}, {false, 20, 2}},
		{{true, 0, 20}, {false, 0, 20}},
		{{true, 0, 20}, {false, 3, 10}},
		{{true, 0, 23}, {false, 3, 8}},
		{{true, 0, 23}, {false, 0, 23}},
	},
	{
		{{true, 0, 0}, {false, 0, 3}},
		{{true, 0, 0}, {false, 2, 2}},
		{{true, 0, 3}, {false, 2, 0}},
		{{true, 0, 3}, {false, 0, 0}},
		{{false, 0, 4}, {true, 0, 7}},
		{{false, 0, 4}, {true, 0, 6}},
		{{false, 2, 6}, {true, 0, 4}},
		{{false, 2, 6}, {true, 0, 5}},
		{{true, 0, 23}, {false, 10, 10}},
		{{true, 0, 23}, {false, 8, 10}},
		{{true, 0, 20}, {false, 10, 8}},
		{{true, 0, 20}, {false, 8, 8}},
		{{false, 0, 4}, {true, 0, 15}},
		{{false, 0, 4}, {true, 0, 14}},
		{{false, 2, 6}, {true, 0, 12}},
		{{false, 2, 6}, {true, 0, 13}},
		{{true, 0, 0}, {false, 10, 2}},
		{{true, 0, 0}, {false, 8, 2}},
		{{true, 0, 3}, {false, 10, 0}},
		{{true, 0, 3}, {false, 8, 0}},
		{{true, 0, 20}, {false, 0, 23}},
		{{true, 0, 20}, {false, 2, 8}},
		{{true, 0, 23}, {false, 2, 10}},
		{{true, 0, 23}, {false, 0, 20}},
	},
	{
		{{true, 2, 3}, {false, 2, 3}},
		{{true, 0, 1}, {false, 0, 2}},
		{{true, 0, 2}, {false, 0, 0}},
		{{true, 2, 0}, {false, 2, 0}},
		{{false, 2, 4}, {true, 0, 6}},
		{{false, 2, 4}, {true, 0, 7}},
		{{false, 0, 6}, {true, 0, 5}},
		{{false, 0, 6}, {true, 0, 4}},
		{{true, 0, 22}, {false, 8, 10}},
		{{true, 0, 22}, {false, 10, 10}},
		{{true, 0, 21}, {false, 8, 8}},
		{{true, 0, 21}, {false, 10, 8}},
		{{false, 2, 4}, {true, 0, 14}},
		{{false, 2, 4}, {true, 0, 15}},
		{{false, 0, 6}, {true, 0, 13}},
		{{false, 0, 6}, {true, 0, 12}},
		{{true, 0, 1}, {false, 8, 2}},
		{{true, 0, 1}, {false, 10, 2}},
		{{true, 0, 2}, {false, 8, 0}},
		{{true, 0, 2}, {false, 10, 0}},
		{{true, 2, 23}, {false, 2, 23}},
		{{true, 0, 21}, {false, 0, 8}},
		{{true, 0, 22}, {false, 0, 10}},
		{{true, 2, 20}, {false, 2, 20}},
	},
	{
		{{true, 3, 0}, {false, 3, 0}},
		{{true, 0, 1}, {false, 0, 0}},
		{{true, 0, 2}, {false, 0, 2}},
		{{true, 3, 3}, {false, 3, 3}},
		{{false, 3, 4}, {true, 0, 4}},
		{{false, 3, 4}, {true, 0, 5}},
		{{false, 0, 6}, {true, 0, 7}},
		{{false, 0, 6}, {true, 0, 6}},
		{{true, 0, 22}, {false, 20, 8}},
		{{true, 0, 22}, {false, 23, 8}},
		{{true, 0, 21}, {false, 20, 10}},
		{{true, 0, 21}, {false, 23, 10}},
		{{false, 3, 4}, {true, 0, 12}},
		{{false, 3, 4}, {true, 0, 13}},
		{{false, 0, 6}, {true, 0, 15}},
		{{false, 0, 6}, {true, 0, 14}},
		{{true, 0, 1}, {false, 20, 0}},
		{{true, 0, 1}, {false, 23, 0}},
		{{true, 0, 2}, {false, 20, 2}},
		{{true, 0, 2}, {false, 23, 2}},
		{{true, 3, 20}, {false, 3, 20}},
		{{true, 0, 21}, {false, 0, 10}},
		{{true, 0, 22}, {false, 0, 8}},
		{{true, 3, 23}, {false, 3, 23}},
	},
	{
		{{false, 4, 0}, {true, 4, 3}},
		{{false, 4, 0}, {true, 0, 6}},
		{{false, 4, 2}, {true, 0, 7}},
		{{false, 4, 3}, {true, 4, 0}},
		{{false, 4, 4}, {false, 8, 8}},
		{{false, 4, 4}, {false, 8, 10}},
		{{false, 4, 6}, {false, 10, 10}},
		{{false, 4, 6}, {false, 10, 8}},
		{{false, 4, 8}, {false, 0, 0}},
		{{false, 4, 8}, {false, 2, 2}},
		{{false, 4, 10}, {false, 0, 2}},
		{{false, 4, 10}, {false, 2, 0}},
		{{false, 4, 4}, {false, 8, 0}},
		{{false, 4, 4}, {false, 8, 2}},
		{{false, 4, 6}, {false, 10, 2}},
		{{false, 4, 6}, {false, 10, 0}},
		{{false, 4, 0}, {false, 0, 10}},
		{{false, 4, 0}, {false, 2, 8}},
		{{false, 4, 2}, {false, 0, 8}},
		{{false, 4, 2}, {false, 2, 10}},
		{{false, 4, 20}, {true, 4, 23}},
		{{false, 4, 10}, {true, 0, 14}},
		{{false, 4, 8}, {true, 0, 15}},
		{{false, 4, 23}, {true, 4, 20}},
	},
	{
		{{false, 4, 0}, {true, 4, 0}},
		{{false, 4, 0}, {true, 0, 7}},
		{{false, 4, 2}, {true, 0, 6}},
		{{false, 4, 3}, {true, 4, 3}},
		{{false, 4, 4}, {false, 10, 8}},
		{{false, 4, 4}, {false, 10, 10}},
		{{false, 4, 6}, {false, 8, 10}},
		{{false, 4, 6}, {false, 8, 8}},
		{{false, 4, 8}, {false, 2, 0}},
		{{false, 4, 8}, {false, 0, 2}},
		{{false, 4, 10}, {false, 2, 2}},
		{{false, 4, 10}, {false, 0, 0}},
		{{false, 4, 4}, {false, 10, 0}},
		{{false, 4, 4}, {false, 10, 2}},
		{{false, 4, 6}, {false, 8, 2}},
		{{false, 4, 6}, {false, 8, 0}},
		{{false, 4, 0}, {false, 2, 10}},
		{{false, 4, 0}, {false, 0, 8}},
		{{false, 4, 2}, {false, 2, 8}},
		{{false, 4, 2}, {false, 0, 10}},
		{{false, 4, 20}, {true, 4, 20}},
		{{false, 4, 10}, {true, 0, 15}},
		{{false, 4, 8}, {true, 0, 14}},
		{{false, 4, 23}, {true, 4, 23}},
	},
	{
		{{false, 6, 3}, {true, 6, 0}},
		{{false, 6, 2}, {true, 0, 4}},
		{{false, 6, 0}, {true, 0, 5}},
		{{false, 6, 0}, {true, 6, 3}},
		{{false, 6, 4}, {false, 10, 10}},
		{{false, 6, 4}, {false, 10, 8}},
		{{false, 6, 6}, {false, 8, 8}},
		{{false, 6, 6}, {false, 8, 10}},
		{{false, 6, 10}, {false, 0, 2}},
		{{false, 6, 10}, {false, 2, 0}},
		{{false, 6, 8}, {false, 0, 0}},
		{{false, 6, 8}, {false, 2, 2}},
		{{false, 6, 4}, {false, 10, 2}},
		{{false, 6, 4}, {false, 10, 0}},
		{{false, 6, 6}, {false, 8, 0}},
		{{false, 6, 6}, {false, 8, 2}},
		{{false, 6, 2}, {false, 0, 8}},
		{{false, 6, 2}, {false, 2, 10}},
		{{false, 6, 0}, {false, 0, 10}},
		{{false, 6, 0}, {false, 2, 8}},
		{{false, 6, 23}, {true, 6, 20}},
		{{false, 6, 8}, {true, 0, 12}},
		{{false, 6, 10}, {true, 0, 13}},
		{{false, 6, 20}, {true, 6, 23}},
	},
	{
		{{false, 6, 3}, {true, 6, 3}},
		{{false, 6, 2}, {true, 0, 5}},
		{{false, 6, 0}, {true, 0, 4}},
		{{false, 6, 0}, {true, 6, 0}},
		{{false, 6, 4}, {false, 8, 10}},
		{{false, 6, 4}, {false, 8, 8}},
		{{false, 6, 6}, {false, 10, 8}},
		{{false, 6, 6}, {false, 10, 10}},
		{{false, 6, 10}, {false, 2, 2}},
		{{false, 6, 10}, {false, 0, 0}},
		{{false, 6, 8}, {false, 2, 0}},
		{{false, 6, 8}, {false, 0, 2}},
		{{false, 6, 4}, {false, 8, 2}},
		{{false, 6, 4}, {false, 8, 0}},
		{{false, 6, 6}, {false, 10, 0}},
		{{false, 6, 6}, {false, 10, 2}},
		{{false, 6, 2}, {false, 2, 8}},
		{{false, 6, 2}, {false, 0, 10}},
		{{false, 6, 0}, {false, 2, 10}},
		{{false, 6, 0}, {false, 0, 8}},
		{{false, 6, 23}, {true, 6, 23}},
		{{false, 6, 8}, {true, 0, 13}},
		{{false, 6, 10}, {true, 0, 12}},
		{{false, 6, 20}, {true, 6, 20}},
	},
	{
		{{true, 8, 20}, {false, 8, 23}},
		{{true, 0, 16}, {false, 10, 10}},
		{{true, 0, 18}, {false, 10, 8}},
		{{true, 8, 23}, {false, 8, 20}},
		{{false, 8, 4}, {false, 0, 0}},
		{{false, 8, 4}, {false, 0, 2}},
		{{false, 10, 6}, {false, 2, 0}},
		{{false, 10, 6}, {false, 2, 2}},
		{{true, 0, 8}, {true, 0, 5}},
		{{true, 0, 8}, {true, 0, 7}},
		{{true, 0, 10}, {true, 0, 4}},
		{{true, 0, 10}, {true, 0, 6}},
		{{false, 8, 4}, {false, 0, 10}},
		{{false, 8, 4}, {false, 0, 8}},
		{{false, 10, 6}, {false, 2, 10}},
		{{false, 10, 6}, {false, 2, 8}},
		{{true, 0, 16}, {true, 0, 13}},
		{{true, 0, 16}, {true, 0, 15}},
		{{true, 0, 18}, {true, 0, 12}},
		{{true, 0, 18}, {true, 0, 14}},
		{{true, 8, 3}, {false, 8, 0}},
		{{true, 0, 10}, {false, 10, 2}},
		{{true, 0, 8}, {false, 10, 0}},
		{{true, 8, 0}, {false, 8, 3}},
	},
	{
		{{true, 8, 20}, {false, 8, 20}},
		{{true, 0, 16}, {false, 10, 8}},
		{{true, 0, 18}, {false, 10, 10}},
		{{true, 8, 23}, {false, 8, 23}},
		{{false, 8, 4}, {false, 2, 2}},
		{{false, 8, 4}, {false, 2, 0}},
		{{false, 10, 6}, {false, 0, 2}},
		{{false, 10, 6}, {false, 0, 0}},
		{{true, 0, 8}, {true, 0, 6}},
		{{true, 0, 8}, {true, 0, 4}},
		{{true, 0, 10}, {true, 0, 7}},
		{{true, 0, 10}, {true, 0, 5}},
		{{false, 8, 4}, {false, 2, 8}},
		{{false, 8, 4}, {false, 2, 10}},
		{{false, 10, 6}, {false, 0, 8}},
		{{false, 10, 6}, {false, 0, 10}},
		{{true, 0, 16}, {true, 0, 14}},
		{{true, 0, 16}, {true, 0, 12}},
		{{true, 0, 18}, {true, 0, 15}},
		{{true, 0, 18}, {true, 0, 13}},
		{{true, 8, 3}, {false, 8, 3}},
		{{true, 0, 10}, {false, 10, 0}},
		{{true, 0, 8}, {false, 10, 2}},
		{{true, 8, 0}, {false, 8, 0}},
	},
	{
		{{true, 10, 20}, {false, 10, 23}},
		{{true, 0, 17}, {false, 8, 10}},
		{{true, 0, 19}, {false, 8, 8}},
		{{true, 10, 23}, {false, 10, 20}},
		{{false, 10, 4}, {false, 2, 0}},
		{{false, 10, 4}, {false, 2, 2}},
		{{false, 8, 6}, {false, 0, 0}},
		{{false, 8, 6}, {false, 0, 2}},
		{{true, 0, 9}, {true, 0, 4}},
		{{true, 0, 9}, {true, 0, 6}},
		{{true, 0, 11}, {true, 0, 5}},
		{{true, 0, 11}, {true, 0, 7}},
		{{false, 10, 4}, {false, 2, 10}},
		{{false, 10, 4}, {false, 2, 8}},
		{{false, 8, 6}, {false, 0, 10}},
		{{false, 8, 6}, {false, 0, 8}},
		{{true, 0, 17}, {true, 0, 12}},
		{{true, 0, 17}, {true, 0, 14}},
		{{true, 0, 19}, {true, 0, 13}},
		{{true, 0, 19}, {true, 0, 15}},
		{{true, 10, 3}, {false, 10, 0}},
		{{true, 0, 11}, {false, 8, 2}},
		{{true, 0, 9}, {false, 8, 0}},
		{{true, 10, 0}, {false, 10, 3}},
	},
	{
		{{true, 10, 20}, {false, 10, 20}},
		{{true, 0, 17}, {false, 8, 8}},
		{{true, 0, 19}, {false, 8, 10}},
		{{true, 10, 23}, {false, 10, 23}},
		{{false, 10, 4}, {false, 0, 2}},
		{{false, 10, 4}, {false, 0, 0}},
		{{false, 8, 6}, {false, 2, 2}},
		{{false, 8, 6}, {false, 2, 0}},
		{{true, 0, 9}, {true, 0, 7}},
		{{true, 0, 9}, {true, 0, 5}},
		{{true, 0, 11}, {true, 0, 6}},
		{{true, 0, 11}, {true, 0, 4}},
		{{false, 10, 4}, {false, 0, 8}},
		{{false, 10, 4}, {false, 0, 10}},
		{{false, 8, 6}, {false, 2, 8}},
		{{false, 8, 6}, {false, 2, 10}},
		{{true, 0, 17}, {true, 0, 15}},
		{{true, 0, 17}, {true, 0, 13}},
		{{true, 0, 19}, {true, 0, 14}},
		{{true, 0, 19}, {true, 0, 12}},
		{{true, 10, 3}, {false, 10, 3}},
		{{true, 0, 11}, {false, 8, 0}},
		{{true, 0, 9}, {false, 8, 2}},
		{{true, 10, 0}, {false, 10, 0}},
	},
	{
		{{false, 4, 0}, {true, 4, 23}},
		{{false, 4, 0}, {true, 0, 15}},
		{{false, 4, 2}, {true, 0, 14}},
		{{false, 4, 3}, {true, 4, 20}},
		{{false, 4, 4}, {false, 0, 8}},
		{{false, 4, 4}, {false, 0, 10}},
		{{false, 4, 6}, {false, 2, 10}},
		{{false, 4, 6}, {false, 2, 8}},
		{{false, 4, 8}, {false, 10, 0}},
		{{false, 4, 8}, {false, 8, 2}},
		{{false, 4, 10}, {false, 10, 2}},
		{{false, 4, 10}, {false, 8, 0}},
		{{false, 4, 4}, {false, 0, 0}},
		{{false, 4, 4}, {false, 0, 2}},
		{{false, 4, 6}, {false, 2, 2}},
		{{false, 4, 6}, {false, 2, 0}},
		{{false, 4, 0}, {false, 10, 10}},
		{{false, 4, 0}, {false, 8, 8}},
		{{false, 4, 2}, {false, 10, 8}},
		{{false, 4, 2}, {false, 8, 10}},
		{{false, 4, 20}, {true, 4, 0}},
		{{false, 4, 10}, {true, 0, 6}},
		{{false, 4, 8}, {true, 0, 7}},
		{{false, 4, 23}, {true, 4, 3}},
	},
	{
		{{false, 4, 0}, {true, 4, 20}},
		{{false, 4, 0}, {true, 0, 14}},
		{{false, 4, 2}, {true, 0, 15}},
		{{false, 4, 3}, {true, 4, 23}},
		{{false, 4, 4}, {false, 2, 8}},
		{{false, 4, 4}, {false, 2, 10}},
		{{false, 4, 6}, {false, 0, 10}},
		{{false, 4, 6}, {false, 0, 8}},
		{{false, 4, 8}, {false, 8, 0}},
		{{false, 4, 8}, {false, 10, 2}},
		{{false, 4, 10}, {false, 8, 2}},
		{{false, 4, 10}, {false, 10, 0}},
		{{false, 4, 4}, {false, 2, 0}},
		{{false, 4, 4}, {false, 2, 2}},
		{{false, 4, 6}, {false, 0, 2}},
		{{false, 4, 6}, {false, 0, 0}},
		{{false, 4, 0}, {false, 8, 10}},
		{{false, 4, 0}, {false, 10, 8}},
		{{false, 4, 2}, {false, 8, 8}},
		{{false, 4, 2}, {false, 10, 10}},
		{{false, 4, 20}, {true, 4, 3}},
		{{false, 4, 10}, {true, 0, 7}},
		{{false, 4, 8}, {true, 0, 6}},
		{{false, 4, 23}, {true, 4, 0}},
	},
	{
		{{false, 6, 3}, {true, 6, 23}},
		{{false, 6, 2}, {true, 0, 12}},
		{{false, 6, 0}, {true, 0, 13}},
		{{false, 6, 0}, {true, 6, 20}},
		{{false, 6, 4}, {false, 2, 10}},
		{{false, 6, 4}, {false, 2, 8}},
		{{false, 6, 6}, {false, 0, 8}},
		{{false, 6, 6}, {false, 0, 10}},
		{{false, 6, 10}, {false, 10, 2}},
		{{false, 6, 10}, {false, 8, 0}},
		{{false, 6, 8}, {false, 10, 0}},
		{{false, 6, 8}, {false, 8, 2}},
		{{false, 6, 4}, {false, 2, 2}},
		{{false, 6, 4}, {false, 2, 0}},
		{{false, 6, 6}, {false, 0, 0}},
		{{false, 6, 6}, {false, 0, 2}},
		{{false, 6, 2}, {false, 10, 8}},
		{{false, 6, 2}, {false, 8, 10}},
		{{false, 6, 0}, {false, 10, 10}},
		{{false, 6, 0}, {false, 8, 8}},
		{{false, 6, 23}, {true, 6, 0}},
		{{false, 6, 8}, {true, 0, 5}},
		{{false, 6, 10}, {true, 0, 4}},
		{{false, 6, 20}, {true, 6, 3}},
	},
	{
		{{false, 6, 3}, {true, 6, 20}},
		{{false, 6, 2}, {true, 0, 13}},
		{{false, 6, 0}, {true, 0, 12}},
		{{false, 6, 0}, {true, 6, 23}},
		{{false, 6, 4}, {false, 0, 10}},
		{{false, 6, 4}, {false, 0, 8}},
		{{false, 6, 6}, {false, 2, 8}},
		{{false, 6, 6}, {false, 2, 10}},
		{{false, 6, 10}, {false, 8, 2}},
		{{false, 6, 10}, {false, 10, 0}},
		{{false, 6, 8}, {false, 8, 0}},
		{{false, 6, 8}, {false, 10, 2}},
		{{false, 6, 4}, {false, 0, 2}},
		{{false, 6, 4}, {false, 0, 0}},
		{{false, 6, 6}, {false, 2, 0}},
		{{false, 6, 6}, {false, 2, 2}},
		{{false, 6, 2}, {false, 8, 8}},
		{{false, 6, 2}, {false, 10, 10}},
		{{false, 6, 0}, {false, 8, 10}},
		{{false, 6, 0}, {false, 10, 8}},
		{{false, 6, 23}, {true, 6, 3}},
		{{false, 6, 8}, {true, 0, 4}},
		{{false, 6, 10}, {true, 0, 5}},
		{{false, 6, 20}, {true, 6, 0}},
	},
	{
		{{true, 0, 0}, {false, 0, 23}},
		{{true, 0, 0}, {false, 2, 10}},
		{{true, 0, 3}, {false, 2, 8}},
		{{true, 0, 3}, {false, 0, 20}},
		{{false, 0, 4}, {false, 10, 0}},
		{{false, 0, 4}, {false, 10, 2}},
		{{false, 2, 6}, {false, 8, 0}},
		{{false, 2, 6}, {false, 8, 2}},
		{{true, 0, 23}, {true, 0, 13}},
		{{true, 0, 23}, {true, 0, 14}},
		{{true, 0, 20}, {true, 0, 12}},
		{{true, 0, 20}, {true, 0, 15}},
		{{false, 0, 4}, {false, 10, 10}},
		{{false, 0, 4}, {false, 10, 8}},
		{{false, 2, 6}, {false, 8, 10}},
		{{false, 2, 6}, {false, 8, 8}},
		{{true, 0, 0}, {true, 0, 4}},
		{{true, 0, 0}, {true, 0, 7}},
		{{true, 0, 3}, {true, 0, 5}},
		{{true, 0, 3}, {true, 0, 6}},
		{{true, 0, 20}, {false, 0, 0}},
		{{true, 0, 20}, {false, 2, 2}},
		{{true, 0, 23}, {false, 2, 0}},
		{{true, 0, 23}, {false, 0, 3}},
	},
	{
		{{true, 0, 0}, {false, 0, 20}},
		{{true, 0, 0}, {false, 2, 8}},
		{{true, 0, 3}, {false, 2, 10}},
		{{true, 0, 3}, {false, 0, 23}},
		{{false, 0, 4}, {false, 8, 2}},
		{{false, 0, 4}, {false, 8, 0}},
		{{false, 2, 6}, {false, 10, 2}},
		{{false, 2, 6}, {false, 10, 0}},
		{{true, 0, 23}, {true, 0, 15}},
		{{true, 0, 23}, {true, 0, 12}},
		{{true, 0, 20}, {true, 0, 14}},
		{{true, 0, 20}, {true, 0, 13}},
		{{false, 0, 4}, {false, 8, 8}},
		{{false, 0, 4}, {false, 8, 10}},
		{{false, 2, 6}, {false, 10, 8}},
		{{false, 2, 6}, {false, 10, 10}},
		{{true, 0, 0}, {true, 0, 6}},
		{{true, 0, 0}, {true, 0, 5}},
		{{true, 0, 3}, {true, 0, 7}},
		{{true, 0, 3}, {true, 0, 4}},
		{{true, 0, 20}, {false, 0, 3}},
		{{true, 0, 20}, {false, 2, 0}},
		{{true, 0, 23}, {false, 2, 2}},
		{{true, 0, 23}, {false, 0, 0}},
	},
	{
		{{true, 2, 3}, {false, 2, 23}},
		{{true, 0, 1}, {false, 0, 10}},
		{{true, 0, 2}, {false, 0, 8}},
		{{true, 2, 0}, {false, 2, 20}},
		{{false, 2, 4}, {false, 8, 0}},
		{{false, 2, 4}, {false, 8, 2}},
		{{false, 0, 6}, {false, 10, 0}},
		{{false, 0, 6}, {false, 10, 2}},
		{{true, 0, 22}, {true, 0, 12}},
		{{true, 0, 22}, {true, 0, 15}},
		{{true, 0, 21}, {true, 0, 13}},
		{{true, 0, 21}, {true, 0, 14}},
		{{false, 2, 4}, {false, 8, 10}},
		{{false, 2, 4}, {false, 8, 8}},
		{{false, 0, 6}, {false, 10, 10}},
		{{false, 0, 6}, {false, 10, 8}},
		{{true, 0, 1}, {true, 0, 5}},
		{{true, 0, 1}, {true, 0, 6}},
		{{true, 0, 2}, {true, 0, 4}},
		{{true, 0, 2}, {true, 0, 7}},
		{{true, 2, 23}, {false, 2, 0}},
		{{true, 0, 21}, {false, 0, 2}},
		{{true, 0, 22}, {false, 0, 0}},
		{{true, 2, 20}, {false, 2, 3}},
	},
	{
		{{true, 2, 3}, {false, 2, 20}},
		{{true, 0, 1}, {false, 0, 8}},
		{{true, 0, 2}, {false, 0, 10}},
		{{true, 2, 0}, {false, 2, 23}},
		{{false, 2, 4}, {false, 10, 2}},
		{{false, 2, 4}, {false, 10, 0}},
		{{false, 0, 6}, {false, 8, 2}},
		{{false, 0, 6}, {false, 8, 0}},
		{{true, 0, 22}, {true, 0, 14}},
		{{true, 0, 22}, {true, 0, 13}},
		{{true, 0, 21}, {true, 0, 15}},
		{{true, 0, 21}, {true, 0, 12}},
		{{false, 2, 4}, {false, 10, 8}},
		{{false, 2, 4}, {false, 10, 10}},
		{{false, 0, 6}, {false, 8, 8}},
		{{false, 0, 6}, {false, 8, 10}},
		{{true, 0, 1}, {true, 0, 7}},
		{{true, 0, 1}, {true, 0, 4}},
		{{true, 0, 2}, {true, 0, 6}},
		{{true, 0, 2}, {true, 0, 5}},
		{{true, 2, 23}, {false, 2, 3}},
		{{true, 0, 21}, {false, 0, 0}},
		{{true, 0, 22}, {false, 0, 2}},
		{{true, 2, 20}, {false, 2, 0}},
	},
	{
		{{true, 20, 0}, {false, 20, 0}},
		{{true, 0, 17}, {false, 23, 0}},
		{{true, 0, 19}, {false, 23, 2}},
		{{true, 20, 3}, {false, 20, 3}},
		{{false, 20, 4}, {true, 0, 13}},
		{{false, 20, 4}, {true, 0, 12}},
		{{false, 23, 6}, {true, 0, 15}},
		{{false, 23, 6}, {true, 0, 14}},
		{{true, 0, 9}, {false, 0, 8}},
		{{true, 0, 9}, {false, 3, 8}},
		{{true, 0, 11}, {false, 0, 10}},
		{{true, 0, 11}, {false, 3, 10}},
		{{false, 20, 4}, {true, 0, 4}},
		{{false, 20, 4}, {true, 0, 5}},
		{{false, 23, 6}, {true, 0, 6}},
		{{false, 23, 6}, {true, 0, 7}},
		{{true, 0, 17}, {false, 0, 0}},
		{{true, 0, 17}, {false, 3, 0}},
		{{true, 0, 19}, {false, 0, 2}},
		{{true, 0, 19}, {false, 3, 2}},
		{{true, 20, 20}, {false, 20, 20}},
		{{true, 0, 11}, {false, 23, 10}},
		{{true, 0, 9}, {false, 23, 8}},
		{{true, 20, 23}, {false, 20, 23}},
	},
	{
		{{true, 10, 20}, {false, 10, 3}},
		{{true, 0, 17}, {false, 8, 2}},
		{{true, 0, 19}, {false, 8, 0}},
		{{true, 10, 23}, {false, 10, 0}},
		{{false, 10, 4}, {true, 0, 14}},
		{{false, 10, 4}, {true, 0, 15}},
		{{false, 8, 6}, {true, 0, 12}},
		{{false, 8, 6}, {true, 0, 13}},
		{{true, 0, 9}, {false, 2, 10}},
		{{true, 0, 9}, {false, 0, 10}},
		{{true, 0, 11}, {false, 2, 8}},
		{{true, 0, 11}, {false, 0, 8}},
		{{false, 10, 4}, {true, 0, 7}},
		{{false, 10, 4}, {true, 0, 6}},
		{{false, 8, 6}, {true, 0, 5}},
		{{false, 8, 6}, {true, 0, 4}},
		{{true, 0, 17}, {false, 2, 2}},
		{{true, 0, 17}, {false, 0, 2}},
		{{true, 0, 19}, {false, 2, 0}},
		{{true, 0, 19}, {false, 0, 0}},
		{{true, 10, 3}, {false, 10, 23}},
		{{true, 0, 11}, {false, 8, 8}},
		{{true, 0, 9}, {false, 8, 10}},
		{{true, 10, 0}, {false, 10, 20}},
	},
	{
		{{true, 8, 20}, {false, 8, 3}},
		{{true, 0, 16}, {false, 10, 2}},
		{{true, 0, 18}, {false, 10, 0}},
		{{true, 8, 23}, {false, 8, 0}},
		{{false, 8, 4}, {true, 0, 15}},
		{{false, 8, 4}, {true, 0, 14}},
		{{false, 10, 6}, {true, 0, 13}},
		{{false, 10, 6}, {true, 0, 12}},
		{{true, 0, 8}, {false, 0, 10}},
		{{true, 0, 8}, {false, 2, 10}},
		{{true, 0, 10}, {false, 0, 8}},
		{{true, 0, 10}, {false, 2, 8}},
		{{false, 8, 4}, {true, 0, 6}},
		{{false, 8, 4}, {true, 0, 7}},
		{{false, 10, 6}, {true, 0, 4}},
		{{false, 10, 6}, {true, 0, 5}},
		{{true, 0, 16}, {false, 0, 2}},
		{{true, 0, 16}, {false, 2, 2}},
		{{true, 0, 18}, {false, 0, 0}},
		{{true, 0, 18}, {false, 2, 0}},
		{{true, 8, 3}, {false, 8, 23}},
		{{true, 0, 10}, {false, 10, 8}},
		{{true, 0, 8}, {false, 10, 10}},
		{{true, 8, 0}, {false, 8, 20}},
	},
	{
		{{true, 23, 0}, {false, 23, 0}},
		{{true, 0, 16}, {false, 20, 0}},
		{{true, 0, 18}, {false, 20, 2}},
		{{true, 23, 3}, {false, 23, 3}},
		{{false, 23, 4}, {true, 0, 12}},
		{{false, 23, 4}, {true, 0, 13}},
		{{false, 20, 6}, {true, 0, 14}},
		{{false, 20, 6}, {true, 0, 15}},
		{{true, 0, 8}, {false, 3, 8}},
		{{true, 0, 8}, {false, 0, 8}},
		{{true, 0, 10}, {false, 3, 10}},
		{{true, 0, 10}, {false, 0, 10}},
		{{false, 23, 4}, {true, 0, 5}},
		{{false, 23, 4}, {true, 0, 4}},
		{{false, 20, 6}, {true, 0, 7}},
		{{false, 20, 6}, {true, 0, 6}},
		{{true, 0, 16}, {false, 3, 0}},
		{{true, 0, 16}, {false, 0, 0}},
		{{true, 0, 18}, {false, 3, 2}},
		{{true, 0, 18}, {false, 0, 2}},
		{{true, 23, 20}, {false, 23, 20}},
		{{true, 0, 10}, {false, 20, 10}},
		{{true, 0, 8}, {false, 20, 8}},
		{{true, 23, 23}, {false, 23, 23}},
	},
}

// hsDecomps[v] is v as a sequence of H and S gates in application order.
var hsDecomps = [numVOPs]string{
	"",           // 0
	"hssh",       // 1
	"sshssh",     // 2
	"ss",         // 3
	"shsh",       // 4
	"hsshshsh",   // 5
	"sshsshshsh", // 6
	"ssshsh",     // 7
	"sh",         // 8
	"hsshsh",     // 9
	"sshsshsh",   // 10
	"sssh",       // 11
	"h",          // 12
	"hss",        // 13
	"sshss",      // 14
	"ssh",        // 15
	"shs",        // 16
	"hsshshs",    // 17
	"sshsshshs",  // 18
	"ssshs",      // 19
	"s",          // 20
	"hsshs",      // 21
	"sshsshs",    // 22
	"sss",        // 23
}
