// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/ncn/merkle"
	"github.com/vechain/ncn/thor"
)

const entitlementsYAML = `
entitlements:
  - recipient: "0x00000000000000000000000000000000000000c1"
    amount: 1000
  - recipient: "0x00000000000000000000000000000000000000c2"
    amount: 50
  - recipient: "0x00000000000000000000000000000000000000c3"
    amount: 7
`

func TestBuildClaims(t *testing.T) {
	doc, err := buildClaims(strings.NewReader(entitlementsYAML))
	require.NoError(t, err)
	assert.Equal(t, uint64(1057), doc.Total)
	require.Len(t, doc.Claims, 3)

	// claims survive a json round trip and verify against the root
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	var decoded ClaimsDocument
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, doc.Root, decoded.Root)

	for addr, c := range decoded.Claims {
		assert.Equal(t, addr, c.Recipient)
		leaf := merkle.RewardLeaf(c.Recipient, c.Amount)
		assert.Equal(t, doc.Root, merkle.RecomputeRoot(leaf, c.Proof, c.Index), addr.String())
	}
	assert.Equal(t, uint64(50), decoded.Claims[thor.MustParseAddress("0x00000000000000000000000000000000000000c2")].Amount)
}

func TestBuildClaimsInvalid(t *testing.T) {
	dup := `
entitlements:
  - recipient: "0x00000000000000000000000000000000000000c1"
    amount: 1
  - recipient: "0x00000000000000000000000000000000000000c1"
    amount: 2
`
	overflow := fmt.Sprintf(`
entitlements:
  - recipient: "0x00000000000000000000000000000000000000c1"
    amount: %d
  - recipient: "0x00000000000000000000000000000000000000c2"
    amount: 1
`, uint64(1<<64-1))

	for name, input := range map[string]string{
		"empty":     "entitlements: []\n",
		"duplicate": dup,
		"overflow":  overflow,
		"malformed": "entitlements: 1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := buildClaims(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}
