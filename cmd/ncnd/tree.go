// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/vechain/ncn/merkle"
	"github.com/vechain/ncn/thor"
)

// Entitlements is the layout of an entitlements file.
type Entitlements struct {
	Entitlements []merkle.Entitlement `yaml:"entitlements"`
}

// ClaimsDocument is everything the recipients of a tree need, keyed by recipient.
type ClaimsDocument struct {
	Root   thor.Bytes32                   `json:"root"`
	Total  uint64                         `json:"total"`
	Claims map[thor.Address]*merkle.Claim `json:"claims"`
}

func buildClaims(r io.Reader) (*ClaimsDocument, error) {
	var doc Entitlements
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode entitlements")
	}
	tree, err := merkle.NewRewardsTree(doc.Entitlements)
	if err != nil {
		return nil, err
	}
	claims, err := tree.Claims()
	if err != nil {
		return nil, err
	}

	out := &ClaimsDocument{
		Root:   tree.Root(),
		Claims: make(map[thor.Address]*merkle.Claim, len(claims)),
	}
	for _, c := range claims {
		if out.Total+c.Amount < out.Total {
			return nil, errors.New("total entitlement overflows")
		}
		out.Total += c.Amount
		out.Claims[c.Recipient] = c
	}
	return out, nil
}

func treeAction(ctx *cli.Context) error {
	in := io.Reader(os.Stdin)
	if path := ctx.String(entitlementsFlag.Name); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "open entitlements file")
		}
		defer file.Close()
		in = file
	}

	doc, err := buildClaims(in)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if path := ctx.String(outFlag.Name); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "create claims file")
		}
		defer file.Close()
		out = file
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
