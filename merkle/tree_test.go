// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package merkle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/ncn/thor"
)

func TestDepthFor(t *testing.T) {
	for n, depth := range map[int]int{0: 0, 1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4} {
		assert.Equal(t, depth, DepthFor(n), "n=%d", n)
	}
}

func TestTreeProofs(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 13} {
		t.Run(fmt.Sprintf("%d leaves", n), func(t *testing.T) {
			leaves := make([]thor.Bytes32, n)
			for i := range leaves {
				leaves[i] = thor.Keccak256([]byte{byte(i)})
			}
			tree, err := NewTree(leaves)
			require.NoError(t, err)
			assert.Equal(t, DepthFor(n), tree.Depth())

			for i := range leaves {
				proof, err := tree.Proof(i)
				require.NoError(t, err)
				assert.Len(t, proof, tree.Depth())
				assert.True(t, Verify(tree.Root(), leaves[i], proof, uint32(i)))
				if n > 1 {
					assert.False(t, Verify(tree.Root(), leaves[i], proof, uint32(i^1)))
				}
			}
		})
	}
}

func TestTreePadding(t *testing.T) {
	a, b, c := node(1), node(2), node(3)
	tree, err := NewTree([]thor.Bytes32{a, b, c})
	require.NoError(t, err)

	zero := thor.Bytes32{}
	expected := HashPair(HashPair(a, b), HashPair(c, zero))
	assert.Equal(t, expected, tree.Root())
}

func TestTreeErrors(t *testing.T) {
	_, err := NewTree(nil)
	assert.EqualError(t, err, "no leaves")

	_, err = NewTreeWithDepth([]thor.Bytes32{node(1), node(2), node(3)}, 1)
	assert.EqualError(t, err, "3 leaves exceed capacity of depth 1")

	tree, err := NewTree([]thor.Bytes32{node(1)})
	require.NoError(t, err)
	_, err = tree.Proof(1)
	assert.Error(t, err)
}

func TestRewardsTree(t *testing.T) {
	alice := thor.BytesToAddress([]byte("alice"))
	bob := thor.BytesToAddress([]byte("bob"))
	carol := thor.BytesToAddress([]byte("carol"))

	tree, err := NewRewardsTree([]Entitlement{
		{alice, 1000},
		{bob, 250},
		{carol, 1},
	})
	require.NoError(t, err)

	claims, err := tree.Claims()
	require.NoError(t, err)
	require.Len(t, claims, 3)

	for _, c := range claims {
		leaf := RewardLeaf(c.Recipient, c.Amount)
		assert.Equal(t, tree.Root(), RecomputeRoot(leaf, c.Proof, c.Index))
	}

	c, err := tree.ClaimFor(bob)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), c.Index)
	assert.Equal(t, uint64(250), c.Amount)

	_, err = tree.ClaimFor(thor.BytesToAddress([]byte("dave")))
	assert.Error(t, err)

	_, err = NewRewardsTree([]Entitlement{{alice, 1}, {alice, 2}})
	assert.Error(t, err)
}
