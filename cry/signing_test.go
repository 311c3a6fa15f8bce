// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cry

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/ncn/reverts"
	"github.com/vechain/ncn/thor"
)

type message struct {
	body string
	sig  []byte
}

func (m *message) SigningHash() thor.Bytes32 { return thor.Keccak256([]byte(m.body)) }
func (m *message) Signature() []byte         { return m.sig }

func TestSigning(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := thor.Address(crypto.PubkeyToAddress(key.PublicKey))

	network := thor.BytesToAddress([]byte("network"))
	signing := NewSigning(network)

	msg := &message{body: "hello"}
	msg.sig, err = signing.Sign(msg, crypto.FromECDSA(key))
	require.NoError(t, err)

	for range 2 {
		signer, err := signing.Signer(msg)
		require.NoError(t, err)
		assert.Equal(t, addr, signer)
	}

	// same signature on another network recovers someone else
	signer, err := NewSigning(thor.Address{}).Signer(msg)
	require.NoError(t, err)
	assert.NotEqual(t, addr, signer)

	// tampered content
	tampered := &message{body: "hello!", sig: msg.sig}
	signer, err = signing.Signer(tampered)
	if err == nil {
		assert.NotEqual(t, addr, signer)
	}

	_, err = signing.Signer(&message{body: "hello", sig: msg.sig[:10]})
	assert.ErrorIs(t, err, reverts.ErrInvalidSignature)

	_, err = signing.Sign(msg, []byte{1, 2})
	assert.Error(t, err)
}
