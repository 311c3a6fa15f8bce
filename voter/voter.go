// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package voter gates operator votes: at most one vote per operator per epoch,
// cast by the operator's admin and weighted by the stake the vault delegates.
package voter

import (
	"github.com/vechain/ncn/ballot"
	"github.com/vechain/ncn/reverts"
	"github.com/vechain/ncn/stake"
	"github.com/vechain/ncn/thor"
)

// State is the voting record of an operator.
type State struct {
	Operator thor.Address
	// Vault is the vault of the last vote. It does not bind later votes.
	Vault          thor.Address
	LastVotedEpoch uint64
}

// Vote is a proposal submitted on behalf of an operator.
type Vote struct {
	Signer       thor.Address
	Operator     thor.Address
	Vault        thor.Address
	ProposedRoot thor.Bytes32
	Epoch        uint64
}

// Result is the outcome of an accepted vote, to be committed by the caller.
type Result struct {
	State   *State
	Box     *ballot.Box
	Weight  uint64
	Outcome ballot.Outcome
}

// Registry casts votes into a ballot box.
type Registry struct {
	stake stake.Registry
}

// New creates a registry resolving identities and stake through r.
func New(r stake.Registry) *Registry {
	return &Registry{stake: r}
}

// CastVote checks v against the operator's record and tallies it into box.
// Neither state nor box is modified; the updated copies are returned in Result.
func (r *Registry) CastVote(state *State, box *ballot.Box, v *Vote) (*Result, error) {
	if v.Epoch <= state.LastVotedEpoch {
		return nil, reverts.ErrEpochAlreadyVoted
	}

	admin, err := r.stake.OperatorAdmin(v.Operator)
	if err != nil {
		return nil, err
	}
	if v.Signer != admin || (!state.Operator.IsZero() && state.Operator != v.Operator) {
		return nil, reverts.ErrInvalidOperator
	}

	ticket, err := r.stake.Ticket(v.Operator, v.Vault)
	if err != nil {
		return nil, err
	}
	if ticket.Operator != v.Operator {
		return nil, reverts.ErrInvalidOperatorVaultTicket
	}

	weight, err := r.stake.StakedAmount(v.Vault, v.Operator)
	if err != nil {
		return nil, err
	}
	if weight == 0 {
		return nil, reverts.ErrNoDelegation
	}

	// the denominator only matters to the vote opening the round
	var denominator uint64
	if v.Epoch > box.Epoch {
		if denominator, err = r.stake.TotalSupply(v.Vault); err != nil {
			return nil, err
		}
	}

	next, outcome, err := box.Vote(v.ProposedRoot, v.Epoch, weight, denominator)
	if err != nil {
		return nil, err
	}
	return &Result{
		State: &State{
			Operator:       v.Operator,
			Vault:          v.Vault,
			LastVotedEpoch: v.Epoch,
		},
		Box:     next,
		Weight:  weight,
		Outcome: outcome,
	}, nil
}
