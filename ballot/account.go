// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ballot

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/vechain/ncn/thor"
)

// Layout of the ballot box account image:
//
//	network              [20]byte
//	epoch                le64
//	last_consensus_epoch le64
//	operators_voted      le64
//	approved_votes       le64
//	total_votes          le64
//	rewards_root         [32]byte
//	proposed_root        [32]byte
//	denominator          le64
const (
	counterOffset     = 20
	RewardsRootOffset = counterOffset + 5*8
	proposedOffset    = RewardsRootOffset + 32
	denominatorOffset = proposedOffset + 32
	AccountSize       = denominatorOffset + 8
)

// AccountAddress returns the account identity under which the ballot box of
// network is published.
func AccountAddress(network thor.Address) thor.Address {
	return thor.DeriveAddress([]byte("ballot_box"), network.Bytes())
}

// AccountData encodes the box into its fixed size account image.
func (b *Box) AccountData(network thor.Address) []byte {
	data := make([]byte, AccountSize)
	copy(data, network[:])
	for i, v := range []uint64{b.Epoch, b.LastConsensusEpoch, b.OperatorsVoted, b.ApprovedVotes, b.TotalVotes} {
		binary.LittleEndian.PutUint64(data[counterOffset+i*8:], v)
	}
	copy(data[RewardsRootOffset:], b.RewardsRoot[:])
	copy(data[proposedOffset:], b.ProposedRewardsRoot[:])
	binary.LittleEndian.PutUint64(data[denominatorOffset:], b.Denominator)
	return data
}

// ParseAccountData decodes an account image produced by AccountData.
func ParseAccountData(data []byte) (network thor.Address, box *Box, err error) {
	if len(data) != AccountSize {
		return thor.Address{}, nil, errors.Errorf("ballot account: want %d bytes, got %d", AccountSize, len(data))
	}
	copy(network[:], data)
	var counters [5]uint64
	for i := range counters {
		counters[i] = binary.LittleEndian.Uint64(data[counterOffset+i*8:])
	}
	box = &Box{
		Epoch:               counters[0],
		LastConsensusEpoch:  counters[1],
		OperatorsVoted:      counters[2],
		ApprovedVotes:       counters[3],
		TotalVotes:          counters[4],
		Denominator:         binary.LittleEndian.Uint64(data[denominatorOffset:]),
		RewardsRoot:         thor.BytesToBytes32(data[RewardsRootOffset:proposedOffset]),
		ProposedRewardsRoot: thor.BytesToBytes32(data[proposedOffset:denominatorOffset]),
	}
	return network, box, nil
}
