// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewards

import (
	"github.com/pkg/errors"

	"github.com/vechain/ncn/kv"
	"github.com/vechain/ncn/thor"
)

const bucket = kv.Bucket("rewards/")

// Load reads the rewards state of network. The returned error satisfies
// r.IsNotFound if the network has no rewards state.
func Load(r kv.Getter, network thor.Address) (*State, error) {
	var state State
	if err := kv.GetRLP(bucket.NewGetter(r), network.Bytes(), &state); err != nil {
		return nil, errors.Wrap(err, "load rewards state")
	}
	return &state, nil
}

// Save writes the rewards state of network.
func Save(w kv.Putter, network thor.Address, state *State) error {
	return errors.Wrap(kv.PutRLP(bucket.NewPutter(w), network.Bytes(), state), "save rewards state")
}
