// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package cry signs and recovers signers of network messages.
package cry

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/vechain/ncn/cache"
	"github.com/vechain/ncn/reverts"
	"github.com/vechain/ncn/thor"
)

const signerCacheSize = 1024

// Signable is a message that carries its own signature.
type Signable interface {
	// SigningHash is the hash of the message content, signature excluded.
	SigningHash() thor.Bytes32
	Signature() []byte
}

// Signing signs messages for, and recovers signers on, a network.
type Signing struct {
	network thor.Address
	cache   *cache.LRU[thor.Bytes32, thor.Address]
}

// NewSigning creates a signing object. Binding the network into the signed
// hash prevents replaying messages across networks.
func NewSigning(network thor.Address) *Signing {
	c, _ := cache.NewLRU[thor.Bytes32, thor.Address](signerCacheSize)
	return &Signing{
		network: network,
		cache:   c,
	}
}

// Hash returns the hash actually signed for target.
func (s *Signing) Hash(target Signable) thor.Bytes32 {
	h := target.SigningHash()
	return thor.Keccak256(s.network[:], h[:])
}

// Sign signs the target with the given private key.
func (s *Signing) Sign(target Signable, privateKey []byte) ([]byte, error) {
	priv, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, err
	}
	hash := s.Hash(target)
	return crypto.Sign(hash[:], priv)
}

// Signer recovers the signer of target. Malformed signatures yield
// reverts.ErrInvalidSignature.
func (s *Signing) Signer(target Signable) (thor.Address, error) {
	hash := s.Hash(target)
	sig := target.Signature()
	if len(sig) != crypto.SignatureLength {
		return thor.Address{}, reverts.ErrInvalidSignature
	}

	key := thor.Keccak256(hash[:], sig)
	if addr, ok := s.cache.Get(key); ok {
		return addr, nil
	}

	pub, err := crypto.SigToPub(hash[:], sig)
	if err != nil {
		return thor.Address{}, reverts.ErrInvalidSignature
	}
	addr := thor.Address(crypto.PubkeyToAddress(*pub))
	s.cache.Add(key, addr)
	return addr, nil
}
