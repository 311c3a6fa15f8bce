// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token keeps token balances, one ledger per mint.
package token

import (
	"math"

	"github.com/pkg/errors"

	"github.com/vechain/ncn/kv"
	"github.com/vechain/ncn/log"
	"github.com/vechain/ncn/reverts"
	"github.com/vechain/ncn/thor"
)

var logger = log.WithContext("pkg", "token")

const bucket = kv.Bucket("token/")

// Ledger reads balances from r and writes changes to w. Writes are not visible
// through r, so a ledger is meant to serve a single operation.
type Ledger struct {
	r    kv.Getter
	w    kv.Putter
	mint thor.Address
}

// NewLedger creates the ledger of mint.
func NewLedger(r kv.Getter, w kv.Putter, mint thor.Address) *Ledger {
	return &Ledger{
		r:    bucket.NewGetter(r),
		w:    bucket.NewPutter(w),
		mint: mint,
	}
}

// the key consists of: ( mint | owner )
func (l *Ledger) key(owner thor.Address) []byte {
	return append(l.mint.Bytes(), owner[:]...)
}

// Balance returns the balance of owner.
func (l *Ledger) Balance(owner thor.Address) (uint64, error) {
	var balance uint64
	if err := kv.GetRLP(l.r, l.key(owner), &balance); err != nil {
		if l.r.IsNotFound(err) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "load balance")
	}
	return balance, nil
}

func (l *Ledger) setBalance(owner thor.Address, balance uint64) error {
	if balance == 0 {
		return errors.Wrap(l.w.Delete(l.key(owner)), "delete balance")
	}
	return errors.Wrap(kv.PutRLP(l.w, l.key(owner), balance), "save balance")
}

// Mint credits amount to owner.
func (l *Ledger) Mint(owner thor.Address, amount uint64) error {
	balance, err := l.Balance(owner)
	if err != nil {
		return err
	}
	if balance > math.MaxUint64-amount {
		return reverts.ErrOverflow
	}
	logger.Debug("mint", "mint", l.mint, "owner", owner, "amount", amount)
	return l.setBalance(owner, balance+amount)
}

// Transfer moves amount from one owner to another.
func (l *Ledger) Transfer(from, to thor.Address, amount uint64) error {
	fromBalance, err := l.Balance(from)
	if err != nil {
		return err
	}
	if fromBalance < amount {
		return reverts.ErrInsufficientFunds
	}
	if from == to {
		return nil
	}
	toBalance, err := l.Balance(to)
	if err != nil {
		return err
	}
	if toBalance > math.MaxUint64-amount {
		return reverts.ErrOverflow
	}
	if err := l.setBalance(from, fromBalance-amount); err != nil {
		return err
	}
	logger.Debug("transfer", "mint", l.mint, "from", from, "to", to, "amount", amount)
	return l.setBalance(to, toBalance+amount)
}
