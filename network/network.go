// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package network runs the operations of a network against its store. Every
// operation is serialized with the others and commits all of its writes in a
// single atomic bulk, or nothing at all.
package network

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/vechain/ncn/ballot"
	"github.com/vechain/ncn/claim"
	"github.com/vechain/ncn/cry"
	"github.com/vechain/ncn/epoch"
	"github.com/vechain/ncn/kv"
	"github.com/vechain/ncn/log"
	"github.com/vechain/ncn/reverts"
	"github.com/vechain/ncn/rewards"
	"github.com/vechain/ncn/stake"
	"github.com/vechain/ncn/thor"
	"github.com/vechain/ncn/token"
	"github.com/vechain/ncn/voter"
)

var logger = log.WithContext("pkg", "network")

// rootModeBucket records the root mode a network was created with.
const rootModeBucket = kv.Bucket("rootmode/")

// Network is a governed network.
type Network struct {
	cfg     Config
	db      kv.Store
	clock   epoch.Clock
	voters  *voter.Registry
	signing *cry.Signing
	lock    sync.Mutex
}

// New opens the network on db, creating its rewards state and funding its
// custody on first use. Reopening with a config that conflicts with the stored
// state fails with reverts.ErrConfigMismatch.
func New(db kv.Store, cfg *Config, registry stake.Registry, clock epoch.Clock) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := &Network{
		cfg:     *cfg,
		db:      db,
		clock:   clock,
		voters:  voter.New(registry),
		signing: cry.NewSigning(cfg.ID),
	}

	state, err := rewards.Load(db, cfg.ID)
	if err != nil {
		if !db.IsNotFound(err) {
			return nil, err
		}
		return n, n.initialize()
	}
	if state.Mint != cfg.Mint {
		return nil, configMismatch("mint", cfg.Mint, state.Mint)
	}
	if state.Custody != cfg.Custody {
		return nil, configMismatch("custody", cfg.Custody, state.Custody)
	}
	mode, err := rootModeBucket.NewGetter(db).Get(cfg.ID.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "load root mode")
	}
	if RootMode(mode) != cfg.RootMode {
		return nil, configMismatch("root mode", cfg.RootMode, RootMode(mode))
	}
	return n, nil
}

func (n *Network) initialize() error {
	state := &rewards.State{
		Authority: n.cfg.Authority,
		Mint:      n.cfg.Mint,
		Custody:   n.cfg.Custody,
	}
	if n.cfg.RootMode == RootModeBallot {
		state.Root = rewards.External{
			Account: ballot.AccountAddress(n.cfg.ID),
			Offset:  ballot.RewardsRootOffset,
		}
	}

	bulk := n.db.Bulk()
	if err := rewards.Save(bulk, n.cfg.ID, state); err != nil {
		return err
	}
	if err := rootModeBucket.NewPutter(bulk).Put(n.cfg.ID.Bytes(), []byte(n.cfg.RootMode)); err != nil {
		return err
	}
	if n.cfg.CustodyBalance > 0 {
		if err := token.NewLedger(n.db, bulk, n.cfg.Mint).Mint(n.cfg.Custody, n.cfg.CustodyBalance); err != nil {
			return err
		}
	}
	if err := bulk.Write(); err != nil {
		return errors.Wrap(err, "initialize network")
	}
	logger.Info("network initialized", "id", n.cfg.ID, "rootMode", n.cfg.RootMode, "custodyBalance", n.cfg.CustodyBalance)
	return nil
}

// ID returns the network id.
func (n *Network) ID() thor.Address { return n.cfg.ID }

// Signing returns the signing object of the network.
func (n *Network) Signing() *cry.Signing { return n.signing }

// Epoch returns the current epoch.
func (n *Network) Epoch() uint64 { return n.clock.Current() }

// VoteReceipt describes an accepted vote.
type VoteReceipt struct {
	Epoch     uint64
	Weight    uint64
	Approved  bool
	Finalized bool
	Ballot    *ballot.Box
}

// CastVote casts a vote of operator for proposedRoot in the current epoch.
func (n *Network) CastVote(signer, operator, vault thor.Address, proposedRoot thor.Bytes32) (*VoteReceipt, error) {
	return n.CastVoteAt(&voter.Vote{
		Signer:       signer,
		Operator:     operator,
		Vault:        vault,
		ProposedRoot: proposedRoot,
		Epoch:        n.clock.Current(),
	})
}

// CastVoteAt casts v at the epoch it names, which must be the current one.
func (n *Network) CastVoteAt(v *voter.Vote) (receipt *VoteReceipt, err error) {
	defer func() {
		if err != nil {
			metricVotes().AddWithLabel(1, map[string]string{"result": resultLabel(err)})
			logger.Debug("vote rejected", "operator", v.Operator, "epoch", v.Epoch, "err", err)
		}
	}()
	n.lock.Lock()
	defer n.lock.Unlock()

	// read under the lock, the epoch may have moved on while waiting for it
	switch current := n.clock.Current(); {
	case v.Epoch < current:
		return nil, reverts.ErrStaleEpoch
	case v.Epoch > current:
		return nil, reverts.ErrEpochNotStarted
	}

	box, err := ballot.Load(n.db, n.cfg.ID)
	if err != nil {
		return nil, err
	}
	state, err := voter.Load(n.db, n.cfg.ID, v.Operator)
	if err != nil {
		return nil, err
	}

	res, err := n.voters.CastVote(state, box, v)
	if err != nil {
		return nil, err
	}

	bulk := n.db.Bulk()
	if err := ballot.Save(bulk, n.cfg.ID, res.Box); err != nil {
		return nil, err
	}
	if err := voter.Save(bulk, n.cfg.ID, res.State); err != nil {
		return nil, err
	}
	if res.Outcome.Finalized && n.cfg.RootMode == RootModeInline {
		if err := n.project(bulk, res.Box); err != nil {
			return nil, err
		}
	}
	if err := bulk.Write(); err != nil {
		return nil, errors.Wrap(err, "commit vote")
	}

	result := "dissent"
	if res.Outcome.Approved {
		result = "approved"
	}
	metricVotes().AddWithLabel(1, map[string]string{"result": result})
	metricBallotEpoch().Set(int64(res.Box.Epoch))

	logger.Debug("vote accepted", "operator", v.Operator, "epoch", v.Epoch, "weight", res.Weight, "result", result)
	if res.Outcome.NewRound {
		logger.Info("voting round opened", "epoch", res.Box.Epoch, "candidate", res.Box.ProposedRewardsRoot, "denominator", res.Box.Denominator)
	}
	if res.Outcome.Finalized {
		metricConsensusEpoch().Set(int64(res.Box.LastConsensusEpoch))
		logger.Info("consensus reached", "epoch", res.Box.LastConsensusEpoch, "root", res.Box.RewardsRoot,
			"approved", res.Box.ApprovedVotes, "denominator", res.Box.Denominator)
	}

	return &VoteReceipt{
		Epoch:     v.Epoch,
		Weight:    res.Weight,
		Approved:  res.Outcome.Approved,
		Finalized: res.Outcome.Finalized,
		Ballot:    res.Box,
	}, nil
}

func (n *Network) project(w kv.Putter, box *ballot.Box) error {
	state, err := rewards.Load(n.db, n.cfg.ID)
	if err != nil {
		return err
	}
	if !state.ProjectFinalized(box) {
		return nil
	}
	logger.Debug("projected finalized root", "epoch", box.LastConsensusEpoch, "root", box.RewardsRoot)
	return rewards.Save(w, n.cfg.ID, state)
}

// Claim pays out the unclaimed entitlement of req.Recipient, who must be the signer.
func (n *Network) Claim(signer thor.Address, req *claim.Request) (receipt *claim.Receipt, err error) {
	defer func() {
		result := "paid"
		if err != nil {
			result = resultLabel(err)
			logger.Debug("claim rejected", "owner", req.Recipient, "err", err)
		}
		metricClaims().AddWithLabel(1, map[string]string{"result": result})
	}()
	if signer != req.Recipient {
		return nil, errors.Wrap(reverts.ErrInvalidOwner, "claim must be signed by the recipient")
	}

	// claims of an owner are serialized here until their writes commit
	n.lock.Lock()
	defer n.lock.Unlock()

	state, err := rewards.Load(n.db, n.cfg.ID)
	if err != nil {
		return nil, err
	}
	root, err := state.VerifyAndGetRoot(&accounts{r: n.db, network: n.cfg.ID})
	if err != nil {
		return nil, err
	}

	bulk := n.db.Bulk()
	tokens := token.NewLedger(n.db, bulk, state.Mint)
	receipt, err = claim.NewLedger(n.db, bulk, n.cfg.ID).Claim(root, req, func(to thor.Address, amount uint64) error {
		return tokens.Transfer(state.Custody, to, amount)
	})
	if err != nil {
		return nil, err
	}
	if err := bulk.Write(); err != nil {
		return nil, errors.Wrap(err, "commit claim")
	}

	metricClaimedAmount().Add(int64(receipt.Paid))
	logger.Info("rewards claimed", "owner", receipt.Owner, "paid", receipt.Paid, "claimed", receipt.ClaimedAmount)
	return receipt, nil
}

// UpdateRoot replaces the rewards root on behalf of the authority, provided the
// current root is still previous and nonce is the current rewards nonce.
func (n *Network) UpdateRoot(signer thor.Address, nonce uint64, previous, root rewards.MerkleRoot) error {
	return n.updateRewards(nonce, func(s *rewards.State) error {
		if s.Root != previous {
			return errors.Wrap(reverts.ErrConfigMismatch, "rewards root changed")
		}
		if err := s.UpdateRoot(signer, root); err != nil {
			return err
		}
		logger.Info("rewards root updated", "root", root, "nonce", s.Nonce)
		return nil
	})
}

// UpdateAuthority hands the rewards authority over to newAuthority, provided
// previous is still the authority and nonce is the current rewards nonce.
func (n *Network) UpdateAuthority(signer thor.Address, nonce uint64, previous, newAuthority thor.Address) error {
	return n.updateRewards(nonce, func(s *rewards.State) error {
		if s.Authority != previous {
			return errors.Wrap(reverts.ErrConfigMismatch, "rewards authority changed")
		}
		if err := s.UpdateAuthority(n.cfg.Admin, signer, newAuthority); err != nil {
			return err
		}
		logger.Info("rewards authority updated", "authority", newAuthority, "nonce", s.Nonce)
		return nil
	})
}

// updateRewards applies update to the rewards state at nonce, and advances the
// nonce so a signed update applies at most once.
func (n *Network) updateRewards(nonce uint64, update func(*rewards.State) error) error {
	n.lock.Lock()
	defer n.lock.Unlock()

	state, err := rewards.Load(n.db, n.cfg.ID)
	if err != nil {
		return err
	}
	if state.Nonce != nonce {
		return errors.Wrapf(reverts.ErrConfigMismatch, "rewards nonce is %d, not %d", state.Nonce, nonce)
	}
	if err := update(state); err != nil {
		return err
	}
	state.Nonce++
	return rewards.Save(n.db, n.cfg.ID, state)
}

// Ballot returns the ballot box.
func (n *Network) Ballot() (*ballot.Box, error) {
	return ballot.Load(n.db, n.cfg.ID)
}

// Voter returns the voting record of operator.
func (n *Network) Voter(operator thor.Address) (*voter.State, error) {
	return voter.Load(n.db, n.cfg.ID, operator)
}

// Rewards returns the rewards state.
func (n *Network) Rewards() (*rewards.State, error) {
	return rewards.Load(n.db, n.cfg.ID)
}

// Root resolves the authoritative rewards root.
func (n *Network) Root() (thor.Bytes32, error) {
	snapshot := n.db.Snapshot()
	defer snapshot.Release()

	state, err := rewards.Load(snapshot, n.cfg.ID)
	if err != nil {
		return thor.Bytes32{}, err
	}
	return state.VerifyAndGetRoot(&accounts{r: snapshot, network: n.cfg.ID})
}

// ClaimState returns the claim record of owner, nil if it never claimed.
func (n *Network) ClaimState(owner thor.Address) (*claim.State, error) {
	return claim.NewLedger(n.db, nil, n.cfg.ID).State(owner)
}

// Balance returns the reward token balance of owner.
func (n *Network) Balance(owner thor.Address) (uint64, error) {
	return token.NewLedger(n.db, nil, n.cfg.Mint).Balance(owner)
}

// accounts serves the ballot box account image, the only account an External
// root may reference.
type accounts struct {
	r       kv.Getter
	network thor.Address
}

func (a *accounts) Account(addr thor.Address) (*rewards.Account, error) {
	if addr != ballot.AccountAddress(a.network) {
		return nil, nil
	}
	box, err := ballot.Load(a.r, a.network)
	if err != nil {
		return nil, err
	}
	return &rewards.Account{Address: addr, Data: box.AccountData(a.network)}, nil
}
