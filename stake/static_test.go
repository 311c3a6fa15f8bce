// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/ncn/reverts"
	"github.com/vechain/ncn/thor"
)

const registryYAML = `
operators:
  - address: "0x00000000000000000000000000000000000000a1"
    admin: "0x00000000000000000000000000000000000000f1"
  - address: "0x00000000000000000000000000000000000000a2"
    admin: "0x00000000000000000000000000000000000000f2"
vaults:
  - address: "0x00000000000000000000000000000000000000b1"
    supply: 160
    delegations:
      - operator: "0x00000000000000000000000000000000000000a1"
        amount: 100
tickets:
  - operator: "0x00000000000000000000000000000000000000a1"
    vault: "0x00000000000000000000000000000000000000b1"
`

var (
	opA    = thor.MustParseAddress("0x00000000000000000000000000000000000000a1")
	opB    = thor.MustParseAddress("0x00000000000000000000000000000000000000a2")
	adminA = thor.MustParseAddress("0x00000000000000000000000000000000000000f1")
	vault  = thor.MustParseAddress("0x00000000000000000000000000000000000000b1")
)

func TestLoadStatic(t *testing.T) {
	reg, err := LoadStatic(strings.NewReader(registryYAML))
	require.NoError(t, err)

	admin, err := reg.OperatorAdmin(opA)
	assert.NoError(t, err)
	assert.Equal(t, adminA, admin)

	_, err = reg.OperatorAdmin(thor.Address{})
	assert.ErrorIs(t, err, reverts.ErrInvalidOperator)

	ticket, err := reg.Ticket(opA, vault)
	assert.NoError(t, err)
	assert.Equal(t, opA, ticket.Operator)

	_, err = reg.Ticket(opB, vault)
	assert.ErrorIs(t, err, reverts.ErrInvalidOperatorVaultTicket)

	amount, err := reg.StakedAmount(vault, opA)
	assert.NoError(t, err)
	assert.Equal(t, uint64(100), amount)

	amount, err = reg.StakedAmount(vault, opB)
	assert.NoError(t, err)
	assert.Zero(t, amount)

	supply, err := reg.TotalSupply(vault)
	assert.NoError(t, err)
	assert.Equal(t, uint64(160), supply)

	_, err = reg.TotalSupply(opA)
	assert.ErrorIs(t, err, reverts.ErrInvalidVault)
}

func TestLoadStaticInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "operators: ["},
		{"missing admin", `
operators:
  - address: "0x00000000000000000000000000000000000000a1"
`},
		{"unknown delegate", `
vaults:
  - address: "0x00000000000000000000000000000000000000b1"
    supply: 1
    delegations:
      - operator: "0x00000000000000000000000000000000000000a1"
        amount: 1
`},
		{"unknown ticket vault", `
tickets:
  - operator: "0x00000000000000000000000000000000000000a1"
    vault: "0x00000000000000000000000000000000000000b1"
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadStatic(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

type countingRegistry struct {
	*Static
	adminCalls int
}

func (c *countingRegistry) OperatorAdmin(operator thor.Address) (thor.Address, error) {
	c.adminCalls++
	return c.Static.OperatorAdmin(operator)
}

func TestCached(t *testing.T) {
	static := NewStatic()
	static.SetOperator(opA, adminA)
	static.SetSupply(vault, 10)
	static.SetDelegation(vault, opA, 5)

	counting := &countingRegistry{Static: static}
	cached, err := NewCached(counting, 16)
	require.NoError(t, err)

	for range 3 {
		admin, err := cached.OperatorAdmin(opA)
		assert.NoError(t, err)
		assert.Equal(t, adminA, admin)
	}
	assert.Equal(t, 1, counting.adminCalls)

	// failures are not cached
	for range 2 {
		_, err := cached.OperatorAdmin(opB)
		assert.ErrorIs(t, err, reverts.ErrInvalidOperator)
	}
	assert.Equal(t, 3, counting.adminCalls)

	cached.Forget(opA)
	_, err = cached.OperatorAdmin(opA)
	assert.NoError(t, err)
	assert.Equal(t, 4, counting.adminCalls)

	// amounts read through
	static.SetDelegation(vault, opA, 7)
	amount, err := cached.StakedAmount(vault, opA)
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), amount)
}
