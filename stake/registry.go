// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package stake is the boundary to the external operator registry and the
// stake-delegation ledger. Voting only consumes what they expose: who administers
// an operator, whether an operator may represent a vault, how much is delegated
// and the vault's total supply.
package stake

import (
	"github.com/vechain/ncn/thor"
)

// Ticket proves an operator is authorized to represent stake of a vault.
type Ticket struct {
	Operator thor.Address `yaml:"operator"`
	Vault    thor.Address `yaml:"vault"`
}

// Registry is the read side of the external operator and delegation ledgers.
type Registry interface {
	// OperatorAdmin returns the administrative signer of operator.
	// Unknown operators yield reverts.ErrInvalidOperator.
	OperatorAdmin(operator thor.Address) (thor.Address, error)
	// Ticket returns the operator-vault ticket. A missing ticket yields
	// reverts.ErrInvalidOperatorVaultTicket.
	Ticket(operator, vault thor.Address) (*Ticket, error)
	// StakedAmount returns the amount vault currently delegates to operator, zero if none.
	StakedAmount(vault, operator thor.Address) (uint64, error)
	// TotalSupply returns the vault's total supply, the consensus denominator.
	// Unknown vaults yield reverts.ErrInvalidVault.
	TotalSupply(vault thor.Address) (uint64, error)
}
