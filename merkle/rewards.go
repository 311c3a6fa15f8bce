// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package merkle

import (
	"github.com/pkg/errors"

	"github.com/vechain/ncn/thor"
)

// Entitlement is the cumulative amount owed to a recipient.
type Entitlement struct {
	Recipient thor.Address `yaml:"recipient" json:"recipient"`
	Amount    uint64       `yaml:"amount" json:"amount"`
}

// RewardsTree is a tree of entitlements, leaves kept in input order.
type RewardsTree struct {
	*Tree
	entitlements []Entitlement
	index        map[thor.Address]int
}

// NewRewardsTree builds the rewards tree. Recipients must be unique.
func NewRewardsTree(entitlements []Entitlement) (*RewardsTree, error) {
	leaves := make([]thor.Bytes32, 0, len(entitlements))
	index := make(map[thor.Address]int, len(entitlements))
	for i, e := range entitlements {
		if _, dup := index[e.Recipient]; dup {
			return nil, errors.Errorf("duplicated recipient %v", e.Recipient)
		}
		index[e.Recipient] = i
		leaves = append(leaves, RewardLeaf(e.Recipient, e.Amount))
	}
	tree, err := NewTree(leaves)
	if err != nil {
		return nil, err
	}
	return &RewardsTree{
		Tree:         tree,
		entitlements: append([]Entitlement(nil), entitlements...),
		index:        index,
	}, nil
}

// Claim is everything a recipient needs to redeem its entitlement.
type Claim struct {
	Entitlement
	Index uint32 `json:"index"`
	Proof Proof  `json:"proof"`
}

// ClaimFor returns the claim material of recipient.
func (t *RewardsTree) ClaimFor(recipient thor.Address) (*Claim, error) {
	i, ok := t.index[recipient]
	if !ok {
		return nil, errors.Errorf("recipient %v not in tree", recipient)
	}
	proof, err := t.Proof(i)
	if err != nil {
		return nil, err
	}
	return &Claim{
		Entitlement: t.entitlements[i],
		Index:       uint32(i),
		Proof:       proof,
	}, nil
}

// Claims returns claim material for all recipients in input order.
func (t *RewardsTree) Claims() ([]*Claim, error) {
	claims := make([]*Claim, 0, len(t.entitlements))
	for _, e := range t.entitlements {
		c, err := t.ClaimFor(e.Recipient)
		if err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, nil
}
