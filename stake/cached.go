// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stake

import (
	"github.com/vechain/ncn/cache"
	"github.com/vechain/ncn/thor"
)

// Cached caches operator admin lookups of the wrapped registry. Stake amounts and
// supplies are always read through, since they move between votes.
type Cached struct {
	Registry
	admins *cache.LRU[thor.Address, thor.Address]
}

// NewCached wraps r with an admin cache of the given size.
func NewCached(r Registry, size int) (*Cached, error) {
	admins, err := cache.NewLRU[thor.Address, thor.Address](size)
	if err != nil {
		return nil, err
	}
	return &Cached{Registry: r, admins: admins}, nil
}

func (c *Cached) OperatorAdmin(operator thor.Address) (thor.Address, error) {
	return c.admins.GetOrLoad(operator, c.Registry.OperatorAdmin)
}

// Forget drops the cached admin of operator, e.g. after an admin rotation.
func (c *Cached) Forget(operator thor.Address) {
	c.admins.Remove(operator)
}
