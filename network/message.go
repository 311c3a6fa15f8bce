// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package network

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/ncn/merkle"
	"github.com/vechain/ncn/rewards"
	"github.com/vechain/ncn/thor"
)

func rlpHash(x any) thor.Bytes32 {
	data, err := rlp.EncodeToBytes(x)
	if err != nil {
		panic(err)
	}
	return thor.Keccak256(data)
}

// VoteMessage is a vote signed by an operator admin.
type VoteMessage struct {
	Operator     thor.Address
	Vault        thor.Address
	ProposedRoot thor.Bytes32
	Epoch        uint64
	Sig          []byte
}

func (m *VoteMessage) SigningHash() thor.Bytes32 {
	return rlpHash([]any{"vote", m.Operator, m.Vault, m.ProposedRoot, m.Epoch})
}

func (m *VoteMessage) Signature() []byte { return m.Sig }

// ClaimMessage is a claim signed by the recipient.
type ClaimMessage struct {
	Owner  thor.Address
	Amount uint64
	Index  uint32
	Proof  merkle.Proof
	Sig    []byte
}

func (m *ClaimMessage) SigningHash() thor.Bytes32 {
	return rlpHash([]any{"claim", m.Owner, m.Amount, m.Index, m.Proof})
}

func (m *ClaimMessage) Signature() []byte { return m.Sig }

// RootMessage replaces the rewards root, signed by the authority. It only
// applies while the current root is still Previous and the rewards nonce is
// still Nonce.
type RootMessage struct {
	Nonce    uint64
	Previous rewards.MerkleRoot
	Root     rewards.MerkleRoot
	Sig      []byte
}

func (m *RootMessage) SigningHash() thor.Bytes32 {
	return rlpHash([]any{"root", m.Nonce, rewards.EncodeRoot(m.Previous), rewards.EncodeRoot(m.Root)})
}

func (m *RootMessage) Signature() []byte { return m.Sig }

// AuthorityMessage hands the rewards authority over, signed by the global
// admin or the current authority. It only applies while Previous is the
// authority and the rewards nonce is still Nonce.
type AuthorityMessage struct {
	Nonce        uint64
	Previous     thor.Address
	NewAuthority thor.Address
	Sig          []byte
}

func (m *AuthorityMessage) SigningHash() thor.Bytes32 {
	return rlpHash([]any{"authority", m.Nonce, m.Previous, m.NewAuthority})
}

func (m *AuthorityMessage) Signature() []byte { return m.Sig }
