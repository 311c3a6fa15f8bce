// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ballots

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/vechain/ncn/ballot"
	"github.com/vechain/ncn/network"
	"github.com/vechain/ncn/thor"
	"github.com/vechain/ncn/voter"
)

type Box struct {
	Epoch               uint64       `json:"epoch"`
	LastConsensusEpoch  uint64       `json:"lastConsensusEpoch"`
	OperatorsVoted      uint64       `json:"operatorsVoted"`
	ApprovedVotes       uint64       `json:"approvedVotes"`
	TotalVotes          uint64       `json:"totalVotes"`
	Denominator         uint64       `json:"denominator"`
	RewardsRoot         thor.Bytes32 `json:"rewardsRoot"`
	ProposedRewardsRoot thor.Bytes32 `json:"proposedRewardsRoot"`
	Finalized           bool         `json:"finalized"`
}

func convertBox(b *ballot.Box) *Box {
	return &Box{
		Epoch:               b.Epoch,
		LastConsensusEpoch:  b.LastConsensusEpoch,
		OperatorsVoted:      b.OperatorsVoted,
		ApprovedVotes:       b.ApprovedVotes,
		TotalVotes:          b.TotalVotes,
		Denominator:         b.Denominator,
		RewardsRoot:         b.RewardsRoot,
		ProposedRewardsRoot: b.ProposedRewardsRoot,
		Finalized:           b.Finalized(),
	}
}

type Voter struct {
	Operator       thor.Address `json:"operator"`
	Vault          thor.Address `json:"vault"`
	LastVotedEpoch uint64       `json:"lastVotedEpoch"`
}

func convertVoter(s *voter.State) *Voter {
	return &Voter{
		Operator:       s.Operator,
		Vault:          s.Vault,
		LastVotedEpoch: s.LastVotedEpoch,
	}
}

type Epoch struct {
	Current uint64 `json:"current"`
}

// VoteRequest is a vote signed by the operator admin over the network id and
// all other fields.
type VoteRequest struct {
	Operator     thor.Address  `json:"operator"`
	Vault        thor.Address  `json:"vault"`
	ProposedRoot thor.Bytes32  `json:"proposedRoot"`
	Epoch        uint64        `json:"epoch"`
	Signature    hexutil.Bytes `json:"signature"`
}

func (r *VoteRequest) message() *network.VoteMessage {
	return &network.VoteMessage{
		Operator:     r.Operator,
		Vault:        r.Vault,
		ProposedRoot: r.ProposedRoot,
		Epoch:        r.Epoch,
		Sig:          r.Signature,
	}
}

type VoteResponse struct {
	Epoch     uint64 `json:"epoch"`
	Weight    uint64 `json:"weight"`
	Approved  bool   `json:"approved"`
	Finalized bool   `json:"finalized"`
	Ballot    *Box   `json:"ballot"`
}
