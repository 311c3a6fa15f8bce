// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package claims

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/vechain/ncn/merkle"
	"github.com/vechain/ncn/network"
	"github.com/vechain/ncn/thor"
)

// ClaimRequest is signed by the owner.
type ClaimRequest struct {
	Owner     thor.Address  `json:"owner"`
	Index     uint32        `json:"index"`
	Amount    uint64        `json:"amount"`
	Proof     merkle.Proof  `json:"proof"`
	Signature hexutil.Bytes `json:"signature"`
}

func (r *ClaimRequest) message() *network.ClaimMessage {
	return &network.ClaimMessage{
		Owner:  r.Owner,
		Amount: r.Amount,
		Index:  r.Index,
		Proof:  r.Proof,
		Sig:    r.Signature,
	}
}

type Receipt struct {
	Owner         thor.Address `json:"owner"`
	Paid          uint64       `json:"paid"`
	ClaimedAmount uint64       `json:"claimedAmount"`
}

type Claim struct {
	Owner         thor.Address `json:"owner"`
	ClaimedAmount uint64       `json:"claimedAmount"`
	Balance       uint64       `json:"balance"`
}
