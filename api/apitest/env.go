// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package apitest sets up an in-memory network with staked operators for
// exercising the http handlers.
package apitest

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/vechain/ncn/cry"
	"github.com/vechain/ncn/epoch"
	"github.com/vechain/ncn/lvldb"
	"github.com/vechain/ncn/merkle"
	"github.com/vechain/ncn/network"
	"github.com/vechain/ncn/stake"
	"github.com/vechain/ncn/thor"
)

const (
	Epoch          = 5
	CustodyBalance = 10_000
)

type Operator struct {
	Address thor.Address
	Key     *ecdsa.PrivateKey
}

type Env struct {
	Network   *network.Network
	Clock     *epoch.Fixed
	Vault     thor.Address
	Admin     *ecdsa.PrivateKey
	Authority *ecdsa.PrivateKey
	Operators []*Operator
}

func KeyAddress(key *ecdsa.PrivateKey) thor.Address {
	return thor.Address(crypto.PubkeyToAddress(key.PublicKey))
}

func NewKey(t *testing.T) *ecdsa.PrivateKey {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key
}

// New creates a network at epoch 5 whose operators stake the given weights
// out of a single vault of the given supply.
func New(t *testing.T, mode network.RootMode, supply uint64, weights ...uint64) *Env {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	env := &Env{
		Clock:     epoch.NewFixed(Epoch),
		Vault:     thor.BytesToAddress([]byte("vault")),
		Admin:     NewKey(t),
		Authority: NewKey(t),
	}

	registry := stake.NewStatic()
	registry.SetSupply(env.Vault, supply)
	for i, w := range weights {
		op := &Operator{Address: thor.BytesToAddress(fmt.Appendf(nil, "operator-%d", i)), Key: NewKey(t)}
		registry.SetOperator(op.Address, KeyAddress(op.Key))
		registry.AddTicket(op.Address, env.Vault)
		registry.SetDelegation(env.Vault, op.Address, w)
		env.Operators = append(env.Operators, op)
	}

	env.Network, err = network.New(db, &network.Config{
		ID:             thor.BytesToAddress([]byte("network")),
		Admin:          KeyAddress(env.Admin),
		Authority:      KeyAddress(env.Authority),
		Mint:           thor.BytesToAddress([]byte("mint")),
		Custody:        thor.BytesToAddress([]byte("custody")),
		CustodyBalance: CustodyBalance,
		RootMode:       mode,
	}, registry, env.Clock)
	require.NoError(t, err)
	return env
}

// Sign signs msg for the env's network.
func (e *Env) Sign(t *testing.T, msg cry.Signable, key *ecdsa.PrivateKey) []byte {
	sig, err := e.Network.Signing().Sign(msg, crypto.FromECDSA(key))
	require.NoError(t, err)
	return sig
}

// Tree builds a rewards tree, leaves in the given order.
func Tree(t *testing.T, entitlements ...merkle.Entitlement) *merkle.RewardsTree {
	tree, err := merkle.NewRewardsTree(entitlements)
	require.NoError(t, err)
	return tree
}

func Get(t *testing.T, url string) ([]byte, int) {
	res, err := http.Get(url) // nolint:gosec
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return body, res.StatusCode
}

func Post(t *testing.T, url string, obj any) ([]byte, int) {
	data, err := json.Marshal(obj)
	require.NoError(t, err)
	res, err := http.Post(url, "application/x-www-form-urlencoded", bytes.NewReader(data)) // nolint:gosec
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return body, res.StatusCode
}
