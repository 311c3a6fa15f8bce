// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ballot

import (
	"github.com/pkg/errors"

	"github.com/vechain/ncn/kv"
	"github.com/vechain/ncn/thor"
)

const bucket = kv.Bucket("ballot/")

// Load reads the ballot box of network. A network nobody voted on yet has a zero box.
func Load(r kv.Getter, network thor.Address) (*Box, error) {
	var box Box
	if err := kv.GetRLP(bucket.NewGetter(r), network.Bytes(), &box); err != nil {
		if r.IsNotFound(err) {
			return &Box{}, nil
		}
		return nil, errors.Wrap(err, "load ballot box")
	}
	return &box, nil
}

// Save writes the ballot box of network.
func Save(w kv.Putter, network thor.Address, box *Box) error {
	return errors.Wrap(kv.PutRLP(bucket.NewPutter(w), network.Bytes(), box), "save ballot box")
}
