// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package roots

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/vechain/ncn/network"
	"github.com/vechain/ncn/rewards"
	"github.com/vechain/ncn/thor"
)

// Source is where the rewards root is read from: an inline hash or 32 bytes at
// offset of an external account.
type Source struct {
	Hash    *thor.Bytes32 `json:"hash,omitempty"`
	Account *thor.Address `json:"account,omitempty"`
	Offset  *uint64       `json:"offset,omitempty"`
}

func convertSource(root rewards.MerkleRoot) *Source {
	switch r := root.(type) {
	case nil:
		return nil
	case rewards.Inline:
		return &Source{Hash: &r.Hash}
	case rewards.External:
		return &Source{Account: &r.Account, Offset: &r.Offset}
	default:
		panic("unexpected merkle root")
	}
}

func (s *Source) merkleRoot() (rewards.MerkleRoot, error) {
	switch {
	case s == nil:
		return nil, nil
	case s.Hash != nil && s.Account == nil && s.Offset == nil:
		return rewards.Inline{Hash: *s.Hash}, nil
	case s.Hash == nil && s.Account != nil && s.Offset != nil:
		return rewards.External{Account: *s.Account, Offset: *s.Offset}, nil
	default:
		return nil, errors.New("either hash, or account and offset must be given")
	}
}

type Root struct {
	Root   *thor.Bytes32 `json:"root"`
	Source *Source       `json:"source"`
	// Error tells why the root can't be resolved.
	Error string `json:"error,omitempty"`
}

type Rewards struct {
	Authority      thor.Address `json:"authority"`
	Mint           thor.Address `json:"mint"`
	Custody        thor.Address `json:"custody"`
	Source         *Source      `json:"source"`
	ProjectedEpoch uint64       `json:"projectedEpoch"`
	Nonce          uint64       `json:"nonce"`
}

func convertRewards(s *rewards.State) *Rewards {
	return &Rewards{
		Authority:      s.Authority,
		Mint:           s.Mint,
		Custody:        s.Custody,
		Source:         convertSource(s.Root),
		ProjectedEpoch: s.ProjectedEpoch,
		Nonce:          s.Nonce,
	}
}

// UpdateRootRequest is signed by the authority. Nonce is the current nonce of
// the rewards state.
type UpdateRootRequest struct {
	Nonce     uint64        `json:"nonce"`
	Previous  *Source       `json:"previous"`
	Root      *Source       `json:"root"`
	Signature hexutil.Bytes `json:"signature"`
}

func (r *UpdateRootRequest) message() (*network.RootMessage, error) {
	previous, err := r.Previous.merkleRoot()
	if err != nil {
		return nil, errors.WithMessage(err, "previous")
	}
	root, err := r.Root.merkleRoot()
	if err != nil {
		return nil, errors.WithMessage(err, "root")
	}
	if root == nil {
		return nil, errors.New("root: required")
	}
	return &network.RootMessage{Nonce: r.Nonce, Previous: previous, Root: root, Sig: r.Signature}, nil
}

// UpdateAuthorityRequest is signed by the global admin or the current authority.
type UpdateAuthorityRequest struct {
	Nonce        uint64        `json:"nonce"`
	Previous     thor.Address  `json:"previous"`
	NewAuthority thor.Address  `json:"newAuthority"`
	Signature    hexutil.Bytes `json:"signature"`
}

func (r *UpdateAuthorityRequest) message() *network.AuthorityMessage {
	return &network.AuthorityMessage{Nonce: r.Nonce, Previous: r.Previous, NewAuthority: r.NewAuthority, Sig: r.Signature}
}
