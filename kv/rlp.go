// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

import (
	"github.com/ethereum/go-ethereum/rlp"
)

// PutRLP rlp-encodes val and puts it under key.
func PutRLP(w Putter, key []byte, val any) error {
	data, err := rlp.EncodeToBytes(val)
	if err != nil {
		return err
	}
	return w.Put(key, data)
}

// GetRLP loads the value under key and rlp-decodes it into val.
// The returned error satisfies r.IsNotFound if the key is absent.
func GetRLP(r Getter, key []byte, val any) error {
	data, err := r.Get(key)
	if err != nil {
		return err
	}
	return rlp.DecodeBytes(data, val)
}
