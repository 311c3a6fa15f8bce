// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stake

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vechain/ncn/reverts"
	"github.com/vechain/ncn/thor"
)

// OperatorRecord is an operator as configured in the registry document.
type OperatorRecord struct {
	Address thor.Address `yaml:"address"`
	Admin   thor.Address `yaml:"admin"`
}

// DelegationRecord is the amount a vault delegates to an operator.
type DelegationRecord struct {
	Operator thor.Address `yaml:"operator"`
	Amount   uint64       `yaml:"amount"`
}

// VaultRecord is a vault with its supply and delegations.
type VaultRecord struct {
	Address     thor.Address       `yaml:"address"`
	Supply      uint64             `yaml:"supply"`
	Delegations []DelegationRecord `yaml:"delegations"`
}

// Document is the yaml layout of a static registry.
type Document struct {
	Operators []OperatorRecord `yaml:"operators"`
	Vaults    []VaultRecord    `yaml:"vaults"`
	Tickets   []Ticket         `yaml:"tickets"`
}

type delegationKey struct {
	vault, operator thor.Address
}

// Static is an in-memory registry. It's mainly used by solo deployments and tests,
// where stake data is provided up-front and adjusted by hand.
type Static struct {
	lock        sync.RWMutex
	admins      map[thor.Address]thor.Address
	supplies    map[thor.Address]uint64
	delegations map[delegationKey]uint64
	tickets     map[delegationKey]Ticket
}

var _ Registry = (*Static)(nil)

// NewStatic creates an empty static registry.
func NewStatic() *Static {
	return &Static{
		admins:      make(map[thor.Address]thor.Address),
		supplies:    make(map[thor.Address]uint64),
		delegations: make(map[delegationKey]uint64),
		tickets:     make(map[delegationKey]Ticket),
	}
}

// NewStaticFromDocument creates a static registry from a parsed document.
func NewStaticFromDocument(doc *Document) (*Static, error) {
	s := NewStatic()
	for _, op := range doc.Operators {
		if op.Address.IsZero() || op.Admin.IsZero() {
			return nil, errors.New("operator address and admin are required")
		}
		if _, dup := s.admins[op.Address]; dup {
			return nil, errors.Errorf("duplicated operator %v", op.Address)
		}
		s.SetOperator(op.Address, op.Admin)
	}
	for _, v := range doc.Vaults {
		if _, dup := s.supplies[v.Address]; dup {
			return nil, errors.Errorf("duplicated vault %v", v.Address)
		}
		s.SetSupply(v.Address, v.Supply)
		for _, d := range v.Delegations {
			if _, ok := s.admins[d.Operator]; !ok {
				return nil, errors.Errorf("vault %v delegates to unknown operator %v", v.Address, d.Operator)
			}
			s.SetDelegation(v.Address, d.Operator, d.Amount)
		}
	}
	for _, t := range doc.Tickets {
		if _, ok := s.supplies[t.Vault]; !ok {
			return nil, errors.Errorf("ticket references unknown vault %v", t.Vault)
		}
		s.AddTicket(t.Operator, t.Vault)
	}
	return s, nil
}

// LoadStatic decodes a yaml registry document.
func LoadStatic(r io.Reader) (*Static, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode registry")
	}
	return NewStaticFromDocument(&doc)
}

// SetOperator registers operator with its admin signer.
func (s *Static) SetOperator(operator, admin thor.Address) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.admins[operator] = admin
}

// SetSupply sets the total supply of vault.
func (s *Static) SetSupply(vault thor.Address, supply uint64) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.supplies[vault] = supply
}

// SetDelegation sets the amount vault delegates to operator.
func (s *Static) SetDelegation(vault, operator thor.Address, amount uint64) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.delegations[delegationKey{vault, operator}] = amount
}

// AddTicket authorizes operator to represent vault.
func (s *Static) AddTicket(operator, vault thor.Address) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.tickets[delegationKey{vault, operator}] = Ticket{Operator: operator, Vault: vault}
}

func (s *Static) OperatorAdmin(operator thor.Address) (thor.Address, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	admin, ok := s.admins[operator]
	if !ok {
		return thor.Address{}, reverts.ErrInvalidOperator
	}
	return admin, nil
}

func (s *Static) Ticket(operator, vault thor.Address) (*Ticket, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	t, ok := s.tickets[delegationKey{vault, operator}]
	if !ok {
		return nil, reverts.ErrInvalidOperatorVaultTicket
	}
	return &t, nil
}

func (s *Static) StakedAmount(vault, operator thor.Address) (uint64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.delegations[delegationKey{vault, operator}], nil
}

func (s *Static) TotalSupply(vault thor.Address) (uint64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	supply, ok := s.supplies[vault]
	if !ok {
		return 0, reverts.ErrInvalidVault
	}
	return supply, nil
}
