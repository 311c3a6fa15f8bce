// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package voter

import (
	"github.com/pkg/errors"

	"github.com/vechain/ncn/kv"
	"github.com/vechain/ncn/thor"
)

const bucket = kv.Bucket("voter/")

// the key consists of: ( network | operator )
func stateKey(network, operator thor.Address) []byte {
	return append(network.Bytes(), operator[:]...)
}

// Load reads the voting record of operator. An operator that never voted gets
// an empty record bound to it.
func Load(r kv.Getter, network, operator thor.Address) (*State, error) {
	var state State
	if err := kv.GetRLP(bucket.NewGetter(r), stateKey(network, operator), &state); err != nil {
		if r.IsNotFound(err) {
			return &State{Operator: operator}, nil
		}
		return nil, errors.Wrap(err, "load voter state")
	}
	return &state, nil
}

// Save writes the voting record of its operator.
func Save(w kv.Putter, network thor.Address, state *State) error {
	return errors.Wrap(kv.PutRLP(bucket.NewPutter(w), stateKey(network, state.Operator), state), "save voter state")
}
