// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package rewards holds the authoritative rewards root and the identities
// administering it.
package rewards

import (
	"io"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/ncn/ballot"
	"github.com/vechain/ncn/reverts"
	"github.com/vechain/ncn/thor"
)

// Account is the data served for an account identity.
type Account struct {
	Address thor.Address
	Data    []byte
}

// AccountReader serves accounts that External roots point into.
type AccountReader interface {
	// Account returns the account of addr, or nil if absent.
	Account(addr thor.Address) (*Account, error)
}

// State is the rewards state of a network.
type State struct {
	// Authority may replace the root.
	Authority thor.Address
	// Mint is the token the rewards are paid in.
	Mint thor.Address
	// Custody is the account paying the rewards.
	Custody thor.Address
	Root    MerkleRoot
	// ProjectedEpoch is the last consensus epoch copied into an Inline root.
	ProjectedEpoch uint64
	// Nonce counts the signed root and authority updates applied so far.
	Nonce uint64
}

// VerifyAndGetRoot resolves the current root.
func (s *State) VerifyAndGetRoot(accounts AccountReader) (thor.Bytes32, error) {
	switch r := s.Root.(type) {
	case nil:
		return thor.Bytes32{}, reverts.ErrRootUnavailable
	case Inline:
		return r.Hash, nil
	case External:
		acc, err := accounts.Account(r.Account)
		if err != nil {
			return thor.Bytes32{}, err
		}
		if acc == nil || acc.Address != r.Account {
			return thor.Bytes32{}, reverts.ErrRootUnavailable
		}
		if r.Offset > uint64(len(acc.Data)) || uint64(len(acc.Data))-r.Offset < 32 {
			return thor.Bytes32{}, reverts.ErrRootUnavailable
		}
		return thor.BytesToBytes32(acc.Data[r.Offset : r.Offset+32]), nil
	default:
		panic("unexpected merkle root")
	}
}

// SetRoot replaces the root. The caller is responsible for authorization.
func (s *State) SetRoot(root MerkleRoot) {
	s.Root = root
}

// UpdateRoot replaces the root on behalf of signer, which must be the authority.
func (s *State) UpdateRoot(signer thor.Address, root MerkleRoot) error {
	if signer != s.Authority {
		return reverts.ErrInvalidAuthority
	}
	s.SetRoot(root)
	return nil
}

// UpdateAuthority hands the authority over to newAuthority. Either the global
// admin or the current authority may do it.
func (s *State) UpdateAuthority(admin, signer, newAuthority thor.Address) error {
	if signer != admin && signer != s.Authority {
		return reverts.ErrInvalidAuthority
	}
	s.Authority = newAuthority
	return nil
}

// ProjectFinalized copies the finalized root of box into an Inline root. It
// returns false if nothing was finalized since the last projection, or if the
// root is held externally.
func (s *State) ProjectFinalized(box *ballot.Box) bool {
	if box.LastConsensusEpoch <= s.ProjectedEpoch {
		return false
	}
	switch s.Root.(type) {
	case nil, Inline:
		s.Root = Inline{Hash: box.RewardsRoot}
		s.ProjectedEpoch = box.LastConsensusEpoch
		return true
	case External:
		return false
	default:
		panic("unexpected merkle root")
	}
}

type stateRLP struct {
	Authority      thor.Address
	Mint           thor.Address
	Custody        thor.Address
	Root           []byte
	ProjectedEpoch uint64
	Nonce          uint64
}

// EncodeRLP implements rlp.Encoder.
func (s *State) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &stateRLP{
		Authority:      s.Authority,
		Mint:           s.Mint,
		Custody:        s.Custody,
		Root:           EncodeRoot(s.Root),
		ProjectedEpoch: s.ProjectedEpoch,
		Nonce:          s.Nonce,
	})
}

// DecodeRLP implements rlp.Decoder.
func (s *State) DecodeRLP(stream *rlp.Stream) error {
	var obj stateRLP
	if err := stream.Decode(&obj); err != nil {
		return err
	}
	root, err := DecodeRoot(obj.Root)
	if err != nil {
		return err
	}
	*s = State{
		Authority:      obj.Authority,
		Mint:           obj.Mint,
		Custody:        obj.Custody,
		Root:           root,
		ProjectedEpoch: obj.ProjectedEpoch,
		Nonce:          obj.Nonce,
	}
	return nil
}
