// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package merkle

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vechain/ncn/thor"
)

func node(b byte) thor.Bytes32 {
	return thor.BytesToBytes32([]byte{b})
}

func TestRecomputeRootOrder(t *testing.T) {
	leaf := node(1)
	proof := Proof{node(2), node(3), node(4)}

	// index 5 = 0b101: sibling first at levels 0 and 2, leaf first at level 1
	l0 := thor.Keccak256(proof[0][:], leaf[:])
	l1 := thor.Keccak256(l0[:], proof[1][:])
	l2 := thor.Keccak256(proof[2][:], l1[:])

	assert.Equal(t, l2, RecomputeRoot(leaf, proof, 5))
	assert.True(t, Verify(l2, leaf, proof, 5))
	assert.False(t, Verify(l2, leaf, proof, 4))
}

func TestRecomputeRootPure(t *testing.T) {
	leaf := node(9)
	proof := Proof{node(1), node(2), node(3), node(4)}

	for index := uint32(0); index < 16; index++ {
		assert.Equal(t, RecomputeRoot(leaf, proof, index), RecomputeRoot(leaf, proof, index))
	}
	// proof is not mutated
	assert.Equal(t, Proof{node(1), node(2), node(3), node(4)}, proof)
}

func TestRecomputeRootBitFlip(t *testing.T) {
	leaf := node(7)
	proof := Proof{node(1), node(2), node(3)}
	base := uint32(0b010)

	for i := 0; i < len(proof); i++ {
		flipped := base ^ (1 << uint(i))

		// recompute by hand and make sure only level i changed order
		cur := leaf
		for l, s := range proof {
			bit := (flipped >> uint(l)) & 1
			if bit == 1 {
				cur = thor.Keccak256(s[:], cur[:])
			} else {
				cur = thor.Keccak256(cur[:], s[:])
			}
		}
		assert.Equal(t, cur, RecomputeRoot(leaf, proof, flipped))
		assert.NotEqual(t, RecomputeRoot(leaf, proof, base), RecomputeRoot(leaf, proof, flipped))
	}
}

func TestRecomputeRootEmptyProof(t *testing.T) {
	leaf := node(3)
	assert.Equal(t, leaf, RecomputeRoot(leaf, nil, 0))
	assert.Equal(t, leaf, RecomputeRoot(leaf, Proof{}, 12345))
}

func TestRewardLeaf(t *testing.T) {
	recipient := thor.MustParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ffed")

	var amount [8]byte
	binary.LittleEndian.PutUint64(amount[:], 1000)
	expected := thor.Keccak256(recipient.Bytes(), amount[:])

	assert.Equal(t, expected, RewardLeaf(recipient, 1000))
	assert.NotEqual(t, expected, RewardLeaf(recipient, 1001))
}
