// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package network

import (
	"github.com/vechain/ncn/claim"
	"github.com/vechain/ncn/voter"
)

// SubmitVote casts a signed vote. The vote must name the current epoch.
func (n *Network) SubmitVote(msg *VoteMessage) (*VoteReceipt, error) {
	signer, err := n.signing.Signer(msg)
	if err != nil {
		return nil, err
	}
	return n.CastVoteAt(&voter.Vote{
		Signer:       signer,
		Operator:     msg.Operator,
		Vault:        msg.Vault,
		ProposedRoot: msg.ProposedRoot,
		Epoch:        msg.Epoch,
	})
}

// SubmitClaim runs a claim signed by its owner.
func (n *Network) SubmitClaim(msg *ClaimMessage) (*claim.Receipt, error) {
	signer, err := n.signing.Signer(msg)
	if err != nil {
		return nil, err
	}
	return n.Claim(signer, &claim.Request{
		Recipient:  msg.Owner,
		Cumulative: msg.Amount,
		Proof:      msg.Proof,
		Index:      msg.Index,
	})
}

// SubmitRoot applies a signed root update.
func (n *Network) SubmitRoot(msg *RootMessage) error {
	signer, err := n.signing.Signer(msg)
	if err != nil {
		return err
	}
	return n.UpdateRoot(signer, msg.Nonce, msg.Previous, msg.Root)
}

// SubmitAuthority applies a signed authority handover.
func (n *Network) SubmitAuthority(msg *AuthorityMessage) error {
	signer, err := n.signing.Signer(msg)
	if err != nil {
		return err
	}
	return n.UpdateAuthority(signer, msg.Nonce, msg.Previous, msg.NewAuthority)
}
