// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package network

import (
	"github.com/pkg/errors"

	"github.com/vechain/ncn/reverts"
	"github.com/vechain/ncn/thor"
)

// RootMode selects where the authoritative rewards root is held.
type RootMode string

const (
	// RootModeInline copies each finalized ballot root into the rewards state.
	RootModeInline RootMode = "inline"
	// RootModeBallot points the rewards state at the ballot box account.
	RootModeBallot RootMode = "ballot"
)

// Config is the genesis configuration of a network.
type Config struct {
	ID        thor.Address `yaml:"id"`
	Admin     thor.Address `yaml:"admin"`
	Authority thor.Address `yaml:"authority"`
	Mint      thor.Address `yaml:"mint"`
	Custody   thor.Address `yaml:"custody"`
	// CustodyBalance is minted to the custody when the network is created.
	CustodyBalance uint64   `yaml:"custodyBalance"`
	RootMode       RootMode `yaml:"rootMode"`
}

// Validate checks the config is complete.
func (c *Config) Validate() error {
	for name, addr := range map[string]thor.Address{
		"id":        c.ID,
		"admin":     c.Admin,
		"authority": c.Authority,
		"mint":      c.Mint,
		"custody":   c.Custody,
	} {
		if addr.IsZero() {
			return errors.Errorf("network config: %s is required", name)
		}
	}
	switch c.RootMode {
	case RootModeInline, RootModeBallot:
	default:
		return errors.Errorf("network config: unknown root mode %q", c.RootMode)
	}
	return nil
}

func configMismatch(field string, want, got any) error {
	return errors.Wrapf(reverts.ErrConfigMismatch, "stored %s %v, configured %v", field, got, want)
}
