// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package roots_test

import (
	"crypto/ecdsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/ncn/api/apitest"
	"github.com/vechain/ncn/api/roots"
	"github.com/vechain/ncn/ballot"
	"github.com/vechain/ncn/network"
	"github.com/vechain/ncn/rewards"
	"github.com/vechain/ncn/thor"
)

func initServer(t *testing.T, env *apitest.Env) *httptest.Server {
	router := mux.NewRouter()
	roots.New(env.Network).Mount(router, "/rewards")
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func rootRequest(t *testing.T, env *apitest.Env, key *ecdsa.PrivateKey, nonce uint64, previous, root *thor.Bytes32) *roots.UpdateRootRequest {
	msg := &network.RootMessage{Nonce: nonce, Root: rewards.Inline{Hash: *root}}
	req := &roots.UpdateRootRequest{Nonce: nonce, Root: &roots.Source{Hash: root}}
	if previous != nil {
		msg.Previous = rewards.Inline{Hash: *previous}
		req.Previous = &roots.Source{Hash: previous}
	}
	req.Signature = env.Sign(t, msg, key)
	return req
}

func getRoot(t *testing.T, ts *httptest.Server) *roots.Root {
	body, code := apitest.Get(t, ts.URL+"/rewards/root")
	require.Equal(t, http.StatusOK, code, string(body))
	var root roots.Root
	require.NoError(t, json.Unmarshal(body, &root))
	return &root
}

func TestRootsInline(t *testing.T) {
	env := apitest.New(t, network.RootModeInline, 100, 100)
	ts := initServer(t, env)

	body, code := apitest.Get(t, ts.URL+"/rewards")
	require.Equal(t, http.StatusOK, code)
	var state roots.Rewards
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, apitest.KeyAddress(env.Authority), state.Authority)
	assert.Nil(t, state.Source)

	root := getRoot(t, ts)
	assert.Nil(t, root.Root)
	assert.NotEmpty(t, root.Error)

	first := thor.Bytes32{1}
	body, code = apitest.Post(t, ts.URL+"/rewards/root", rootRequest(t, env, env.Authority, 0, nil, &first))
	require.Equal(t, http.StatusOK, code, string(body))
	root = getRoot(t, ts)
	require.NotNil(t, root.Root)
	assert.Equal(t, first, *root.Root)
	assert.Equal(t, first, *root.Source.Hash)

	// replay of an applied update
	_, code = apitest.Post(t, ts.URL+"/rewards/root", rootRequest(t, env, env.Authority, 0, nil, &first))
	assert.Equal(t, http.StatusForbidden, code)

	second := thor.Bytes32{2}
	_, code = apitest.Post(t, ts.URL+"/rewards/root", rootRequest(t, env, env.Admin, 1, &first, &second))
	assert.Equal(t, http.StatusForbidden, code)

	_, code = apitest.Post(t, ts.URL+"/rewards/root", rootRequest(t, env, env.Authority, 1, &first, &second))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, second, *getRoot(t, ts).Root)

	// back to the first root, then the update away from it again
	_, code = apitest.Post(t, ts.URL+"/rewards/root", rootRequest(t, env, env.Authority, 2, &second, &first))
	require.Equal(t, http.StatusOK, code)
	_, code = apitest.Post(t, ts.URL+"/rewards/root", rootRequest(t, env, env.Authority, 1, &first, &second))
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, first, *getRoot(t, ts).Root)

	body, code = apitest.Get(t, ts.URL+"/rewards")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, uint64(3), state.Nonce)
}

func TestRootsBallot(t *testing.T) {
	env := apitest.New(t, network.RootModeBallot, 100, 100)
	ts := initServer(t, env)

	root := getRoot(t, ts)
	require.NotNil(t, root.Source)
	assert.Equal(t, ballot.AccountAddress(env.Network.ID()), *root.Source.Account)
	assert.Equal(t, uint64(ballot.RewardsRootOffset), *root.Source.Offset)
	// zero until the first consensus
	assert.Equal(t, thor.Bytes32{}, *root.Root)

	proposed := thor.Bytes32{0xbb}
	op := env.Operators[0]
	_, err := env.Network.CastVote(apitest.KeyAddress(op.Key), op.Address, env.Vault, proposed)
	require.NoError(t, err)
	assert.Equal(t, proposed, *getRoot(t, ts).Root)
}

func TestUpdateRootBadRequest(t *testing.T) {
	env := apitest.New(t, network.RootModeInline, 100, 100)
	ts := initServer(t, env)

	hash := thor.Bytes32{1}
	account := thor.Address{1}
	for name, req := range map[string]*roots.UpdateRootRequest{
		"missing root":     {},
		"ambiguous root":   {Root: &roots.Source{Hash: &hash, Account: &account}},
		"incomplete root":  {Root: &roots.Source{Account: &account}},
		"ambiguous source": {Previous: &roots.Source{}, Root: &roots.Source{Hash: &hash}},
	} {
		t.Run(name, func(t *testing.T) {
			_, code := apitest.Post(t, ts.URL+"/rewards/root", req)
			assert.Equal(t, http.StatusBadRequest, code)
		})
	}

	_, code := apitest.Post(t, ts.URL+"/rewards/root", "bad")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUpdateAuthority(t *testing.T) {
	env := apitest.New(t, network.RootModeInline, 100, 100)
	ts := initServer(t, env)

	authority := apitest.KeyAddress(env.Authority)
	next := apitest.NewKey(t)

	request := func(key *ecdsa.PrivateKey, previous, newAuthority thor.Address) *roots.UpdateAuthorityRequest {
		msg := &network.AuthorityMessage{Previous: previous, NewAuthority: newAuthority}
		return &roots.UpdateAuthorityRequest{Previous: previous, NewAuthority: newAuthority, Signature: env.Sign(t, msg, key)}
	}

	_, code := apitest.Post(t, ts.URL+"/authority", request(next, authority, apitest.KeyAddress(next)))
	assert.Equal(t, http.StatusNotFound, code)

	_, code = apitest.Post(t, ts.URL+"/rewards/authority", request(next, authority, apitest.KeyAddress(next)))
	assert.Equal(t, http.StatusForbidden, code)

	body, code := apitest.Post(t, ts.URL+"/rewards/authority", request(env.Admin, authority, apitest.KeyAddress(next)))
	require.Equal(t, http.StatusOK, code, string(body))
	var state roots.Rewards
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, apitest.KeyAddress(next), state.Authority)

	// the former authority is out
	hash := thor.Bytes32{1}
	_, code = apitest.Post(t, ts.URL+"/rewards/root", rootRequest(t, env, env.Authority, 1, nil, &hash))
	assert.Equal(t, http.StatusForbidden, code)
	_, code = apitest.Post(t, ts.URL+"/rewards/root", rootRequest(t, env, next, 1, nil, &hash))
	assert.Equal(t, http.StatusOK, code)
}
