// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package claim pays out cumulative rewards proven against the rewards root.
// Each recipient's claimed amount only grows, so a proof can never release the
// same tokens twice.
package claim

import (
	"github.com/pkg/errors"

	"github.com/vechain/ncn/kv"
	"github.com/vechain/ncn/merkle"
	"github.com/vechain/ncn/reverts"
	"github.com/vechain/ncn/thor"
)

// State is the claim record of an owner.
type State struct {
	Owner         thor.Address
	ClaimedAmount uint64
}

// Request asks for the cumulative entitlement of Recipient, proven by Proof
// to be the leaf at Index.
type Request struct {
	Recipient  thor.Address
	Cumulative uint64
	Proof      merkle.Proof
	Index      uint32
}

// Receipt describes an accepted claim.
type Receipt struct {
	Owner         thor.Address
	Paid          uint64
	ClaimedAmount uint64
}

// Payer transfers amount from the rewards custody to a recipient.
type Payer func(to thor.Address, amount uint64) error

const bucket = kv.Bucket("claim/")

// Ledger holds the claim records of a network.
type Ledger struct {
	r       kv.Getter
	w       kv.Putter
	network thor.Address
}

// NewLedger creates a ledger reading from r and writing to w.
func NewLedger(r kv.Getter, w kv.Putter, network thor.Address) *Ledger {
	return &Ledger{
		r:       bucket.NewGetter(r),
		w:       bucket.NewPutter(w),
		network: network,
	}
}

// the key consists of: ( network | owner )
func (l *Ledger) key(owner thor.Address) []byte {
	return append(l.network.Bytes(), owner[:]...)
}

// State returns the claim record of owner, nil if it never claimed.
func (l *Ledger) State(owner thor.Address) (*State, error) {
	var state State
	if err := kv.GetRLP(l.r, l.key(owner), &state); err != nil {
		if l.r.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "load claim state")
	}
	return &state, nil
}

func (l *Ledger) claimed(owner thor.Address) (uint64, error) {
	state, err := l.State(owner)
	if err != nil || state == nil {
		return 0, err
	}
	return state.ClaimedAmount, nil
}

// Claim verifies req against root and pays the unclaimed part of the
// entitlement through pay. If the record changed while pay ran,
// ErrClaimConflict is returned and the caller must discard the writes of pay.
// The record is re-read before the put is queued, but the queued write itself
// is unconditional: callers must serialize claims of the same owner until the
// writes are committed.
func (l *Ledger) Claim(root thor.Bytes32, req *Request, pay Payer) (*Receipt, error) {
	leaf := merkle.RewardLeaf(req.Recipient, req.Cumulative)
	if merkle.RecomputeRoot(leaf, req.Proof, req.Index) != root {
		return nil, reverts.ErrInvalidProof
	}

	claimed, err := l.claimed(req.Recipient)
	if err != nil {
		return nil, err
	}
	if req.Cumulative <= claimed {
		return nil, reverts.ErrAlreadyClaimed
	}
	payable := req.Cumulative - claimed

	if err := pay(req.Recipient, payable); err != nil {
		return nil, err
	}

	current, err := l.claimed(req.Recipient)
	if err != nil {
		return nil, err
	}
	if current != claimed {
		return nil, reverts.ErrClaimConflict
	}

	state := &State{Owner: req.Recipient, ClaimedAmount: req.Cumulative}
	if err := kv.PutRLP(l.w, l.key(req.Recipient), state); err != nil {
		return nil, errors.Wrap(err, "save claim state")
	}
	return &Receipt{
		Owner:         req.Recipient,
		Paid:          payable,
		ClaimedAmount: req.Cumulative,
	}, nil
}
