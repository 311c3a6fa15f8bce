// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package merkle

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/vechain/ncn/thor"
)

// Tree is a complete binary tree built over a fixed set of leaves. Missing leaves
// up to 2^depth are zero hashes.
type Tree struct {
	// levels[0] holds the leaves, levels[depth] holds the root.
	levels [][]thor.Bytes32
}

// DepthFor returns the smallest depth able to hold n leaves.
func DepthFor(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// NewTree builds a tree of the minimal depth over leaves.
func NewTree(leaves []thor.Bytes32) (*Tree, error) {
	return NewTreeWithDepth(leaves, DepthFor(len(leaves)))
}

// NewTreeWithDepth builds a tree of the given depth, padding with zero leaves.
func NewTreeWithDepth(leaves []thor.Bytes32, depth int) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, errors.New("no leaves")
	}
	if depth < 0 || depth > MaxDepth {
		return nil, errors.Errorf("depth %d out of range", depth)
	}
	if depth < MaxDepth && len(leaves) > 1<<uint(depth) {
		return nil, errors.Errorf("%d leaves exceed capacity of depth %d", len(leaves), depth)
	}

	levels := make([][]thor.Bytes32, depth+1)
	levels[0] = append([]thor.Bytes32(nil), leaves...)

	// an all-zero subtree at level l hashes to zeros[l]
	zero := thor.Bytes32{}
	for l := 0; l < depth; l++ {
		cur := levels[l]
		next := make([]thor.Bytes32, (len(cur)+1)/2)
		for i := range next {
			left := cur[2*i]
			right := zero
			if 2*i+1 < len(cur) {
				right = cur[2*i+1]
			}
			next[i] = HashPair(left, right)
		}
		levels[l+1] = next
		zero = HashPair(zero, zero)
	}
	return &Tree{levels: levels}, nil
}

// Depth returns the number of levels above the leaves.
func (t *Tree) Depth() int {
	return len(t.levels) - 1
}

// Len returns the number of non-padding leaves.
func (t *Tree) Len() int {
	return len(t.levels[0])
}

// Root returns the root hash.
func (t *Tree) Root() thor.Bytes32 {
	return t.levels[len(t.levels)-1][0]
}

// Leaf returns the leaf at index.
func (t *Tree) Leaf(index int) thor.Bytes32 {
	return t.levels[0][index]
}

// Proof returns the sibling path of the leaf at index.
func (t *Tree) Proof(index int) (Proof, error) {
	if index < 0 || index >= t.Len() {
		return nil, errors.Errorf("leaf index %d out of range", index)
	}
	proof := make(Proof, 0, t.Depth())
	zero := thor.Bytes32{}
	for l := 0; l < t.Depth(); l++ {
		sibling := index ^ 1
		if sibling < len(t.levels[l]) {
			proof = append(proof, t.levels[l][sibling])
		} else {
			proof = append(proof, zero)
		}
		zero = HashPair(zero, zero)
		index >>= 1
	}
	return proof, nil
}
