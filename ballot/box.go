// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package ballot implements the epoch-scoped, stake-weighted ballot box.
//
// A round opens implicitly with the first vote of a new epoch: the counters are
// reset, the first proposal becomes the round's candidate and the consensus
// denominator is pinned. The candidate is finalized as the rewards root once the
// approving stake reaches two thirds of the denominator.
package ballot

import (
	"math"

	"github.com/holiman/uint256"

	"github.com/vechain/ncn/reverts"
	"github.com/vechain/ncn/thor"
)

// Box is the ballot box of a network.
type Box struct {
	Epoch              uint64
	LastConsensusEpoch uint64
	OperatorsVoted     uint64
	ApprovedVotes      uint64
	TotalVotes         uint64
	// Denominator is the total stake the round is measured against, pinned when
	// the round opens.
	Denominator         uint64
	RewardsRoot         thor.Bytes32
	ProposedRewardsRoot thor.Bytes32
}

// Outcome describes the effect of an accepted vote.
type Outcome struct {
	// NewRound is set if the vote opened the round.
	NewRound bool
	// Approved is set if the vote backed the round's candidate.
	Approved bool
	// Finalized is set if the vote finalized the candidate.
	Finalized bool
}

// Finalized returns whether the current round has reached consensus.
func (b *Box) Finalized() bool {
	return b.Epoch > 0 && b.Epoch == b.LastConsensusEpoch
}

// Vote tallies weight for proposedRoot at epoch and returns the resulting box.
// The receiver is never modified, so a rejected vote leaves nothing to undo.
func (b *Box) Vote(proposedRoot thor.Bytes32, epoch, weight, denominator uint64) (*Box, Outcome, error) {
	var (
		next    = *b
		outcome Outcome
	)

	switch {
	case epoch > next.Epoch:
		next.Epoch = epoch
		next.OperatorsVoted = 0
		next.ApprovedVotes = 0
		next.TotalVotes = 0
		next.Denominator = denominator
		next.ProposedRewardsRoot = proposedRoot
		outcome.NewRound = true
	case epoch < next.Epoch:
		return nil, Outcome{}, reverts.ErrStaleEpoch
	}

	outcome.Approved = proposedRoot == next.ProposedRewardsRoot

	if next.OperatorsVoted == math.MaxUint64 || next.TotalVotes > math.MaxUint64-weight {
		return nil, Outcome{}, reverts.ErrOverflow
	}
	next.OperatorsVoted++
	next.TotalVotes += weight
	if outcome.Approved {
		// approved never exceeds total, so it can't overflow here
		next.ApprovedVotes += weight
	}

	if next.Epoch > next.LastConsensusEpoch && Supermajority(next.ApprovedVotes, next.Denominator) {
		next.LastConsensusEpoch = next.Epoch
		next.RewardsRoot = next.ProposedRewardsRoot
		outcome.Finalized = true
	}
	return &next, outcome, nil
}

// Supermajority reports whether approved*3 >= denominator*2, evaluated without overflow.
func Supermajority(approved, denominator uint64) bool {
	var lhs, rhs uint256.Int
	lhs.Mul(uint256.NewInt(approved), uint256.NewInt(3))
	rhs.Mul(uint256.NewInt(denominator), uint256.NewInt(2))
	return !lhs.Lt(&rhs)
}
