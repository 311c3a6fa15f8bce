// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vechain/ncn/epoch"
	"github.com/vechain/ncn/network"
	"github.com/vechain/ncn/stake"
)

// EpochConfig selects the epoch clock. A non-zero Fixed pins the epoch, which
// is meant for dev setups. Otherwise epochs of Length run from Genesis.
type EpochConfig struct {
	Genesis time.Time     `yaml:"genesis"`
	Length  time.Duration `yaml:"length"`
	Fixed   uint64        `yaml:"fixed"`
}

func (c *EpochConfig) clock() (epoch.Clock, error) {
	if c.Fixed > 0 {
		return epoch.NewFixed(c.Fixed), nil
	}
	if c.Genesis.IsZero() {
		return nil, errors.New("epoch config: genesis is required")
	}
	return epoch.NewTimed(c.Genesis, c.Length)
}

// Config is the layout of the config file.
type Config struct {
	Network  network.Config `yaml:"network"`
	Epoch    EpochConfig    `yaml:"epoch"`
	Registry stake.Document `yaml:"registry"`
}

func loadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if cfg.Network.RootMode == "" {
		cfg.Network.RootMode = network.RootModeBallot
	}
	if err := cfg.Network.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
