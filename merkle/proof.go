// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package merkle verifies and builds the binary keccak merkle trees that carry
// cumulative reward entitlements.
//
// Sibling order at every level is fully determined by the leaf index: bit i of
// the index tells whether the node at level i is a left (0) or right (1) child.
// A proof paired with the wrong index recomputes to a different root rather than
// failing, so proof generators must hand out the leaf's true position.
package merkle

import (
	"encoding/binary"

	"github.com/vechain/ncn/thor"
)

// Proof is the ordered list of sibling hashes from the leaf level upwards.
type Proof []thor.Bytes32

// MaxDepth is the deepest tree an uint32 index can address.
const MaxDepth = 32

// HashPair hashes two nodes in the given order.
func HashPair(left, right thor.Bytes32) thor.Bytes32 {
	return thor.Keccak256(left[:], right[:])
}

// RecomputeRoot walks the proof bottom-up and returns the root it implies for leaf.
func RecomputeRoot(leaf thor.Bytes32, proof Proof, index uint32) thor.Bytes32 {
	node := leaf
	for i, sibling := range proof {
		if i < MaxDepth && (index>>uint(i))&1 == 1 {
			node = HashPair(sibling, node)
		} else {
			node = HashPair(node, sibling)
		}
	}
	return node
}

// Verify reports whether leaf at index is included under root.
func Verify(root, leaf thor.Bytes32, proof Proof, index uint32) bool {
	return RecomputeRoot(leaf, proof, index) == root
}

// RewardLeaf returns the leaf committing to a recipient's cumulative entitlement:
// keccak256(recipient ‖ little-endian uint64 amount).
func RewardLeaf(recipient thor.Address, cumulative uint64) thor.Bytes32 {
	var amount [8]byte
	binary.LittleEndian.PutUint64(amount[:], cumulative)
	return thor.Keccak256(recipient[:], amount[:])
}
