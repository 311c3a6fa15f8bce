// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package epoch provides the current voting epoch.
package epoch

import (
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Clock tells the current epoch.
type Clock interface {
	Current() uint64
}

// Fixed is a manually advanced clock.
type Fixed struct {
	epoch atomic.Uint64
}

// NewFixed creates a clock standing at epoch.
func NewFixed(epoch uint64) *Fixed {
	f := &Fixed{}
	f.epoch.Store(epoch)
	return f
}

func (f *Fixed) Current() uint64 { return f.epoch.Load() }

// Set moves the clock to epoch.
func (f *Fixed) Set(epoch uint64) { f.epoch.Store(epoch) }

// Advance moves the clock one epoch forward and returns the new epoch.
func (f *Fixed) Advance() uint64 { return f.epoch.Add(1) }

// Timed derives the epoch from wall-clock time. Epoch 1 starts at genesis.
type Timed struct {
	genesis time.Time
	length  time.Duration
	now     func() time.Time
}

// NewTimed creates a clock with epochs of the given length starting at genesis.
func NewTimed(genesis time.Time, length time.Duration) (*Timed, error) {
	if length <= 0 {
		return nil, errors.New("epoch length must be positive")
	}
	return &Timed{genesis: genesis, length: length, now: time.Now}, nil
}

// Current returns 0 before genesis.
func (t *Timed) Current() uint64 {
	elapsed := t.now().Sub(t.genesis)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed/t.length) + 1
}

// Start returns the start time of epoch.
func (t *Timed) Start(epoch uint64) time.Time {
	if epoch == 0 {
		return time.Time{}
	}
	return t.genesis.Add(time.Duration(epoch-1) * t.length)
}
